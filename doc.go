// Package ggchart draws logarithmic line charts onto pluggable paint surfaces.
//
// # Overview
//
// ggchart separates what a chart looks like from how pixels get painted.
// A [Graph] maps logical series values to pixel coordinates, shapes
// ([Line], [Circle], [Curve]) describe geometry, and a [Diagram] groups
// them in painter's order. Shapes emit themselves to a [Renderer], the
// minimal "move pen" / "line to" capability that every backend provides.
//
// # Quick Start
//
//	import (
//	    "github.com/gogpu/ggchart"
//	    "github.com/gogpu/ggchart/backend/raster"
//	)
//
//	surface := raster.New(400, 300)
//	graph := ggchart.NewGraph(ggchart.WithSize(400, 300))
//	chart := ggchart.NewChart(graph, surface)
//
//	_ = chart.DrawGradient(ggchart.HexColor(0xfafafa, 1), ggchart.HexColor(0xdddddd, 1))
//	if err := chart.DrawColoredMultiLines(ggchart.Series{0.1, 2, 3.4, 1, 0.34}); err != nil {
//	    log.Fatal(err)
//	}
//	_ = surface.SavePNG("chart.png")
//
// # Coordinate System
//
// Pixel coordinates follow the usual screen convention:
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//
// [Graph.ValueY] flips the value axis so larger values sit higher on screen.
//
// # Backends
//
// Three surfaces ship with the module:
//   - backend/raster: software rasterizer via github.com/gogpu/gg
//   - backend/record: inspectable command recording via gg/recording
//   - backend/svg: vector output via gonum.org/v1/plot/vg
//
// Each registers itself with package backend, which creates output
// targets by name.
//
// # Concurrency
//
// A draw pass is synchronous. The owner must not mutate a Graph while a
// pass reads it, and surfaces must not be shared between passes.
package ggchart
