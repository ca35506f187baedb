// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package raster binds ggchart to the gg software rasterizer.
//
// A Surface wraps a *gg.Context. Paths collect geometry into a *gg.Path
// and replay it onto the context when stroked, so every chart operation
// starts from an empty path regardless of what the host drew before.
//
// Usage:
//
//	s := raster.New(400, 300)
//	chart := ggchart.NewChart(ggchart.NewGraph(ggchart.WithSize(400, 300)), s)
//	_ = chart.DrawColoredSingleLine(ggchart.Series{1, 10, 100}, ggchart.ColorAt(1))
//	_ = s.SavePNG("chart.png")
//
// Labels are rendered with the Go fonts from golang.org/x/image.
//
// Surface is NOT safe for concurrent use.
package raster
