// Package backend provides a registry of chart output targets.
//
// A target is a ggchart.Surface that can also save what was drawn on it.
// Target packages register a factory from their init() functions, so
// importing a target package is enough to make it available by name:
//
//	import (
//		"github.com/gogpu/ggchart/backend"
//		_ "github.com/gogpu/ggchart/backend/raster"
//		_ "github.com/gogpu/ggchart/backend/svg"
//	)
//
// # Target Selection
//
// Use New to request a specific target, or Default to get the best
// available one:
//
//	t, err := backend.New("svg", 400, 300)
//	if err != nil {
//		log.Fatal(err)
//	}
//	chart := ggchart.NewChart(graph, t)
//	_ = chart.DrawColoredMultiLines(series...)
//	_ = t.Save("chart.svg")
//
// # Available Targets
//
//   - "raster": anti-aliased pixels through gg, saved as PNG
//   - "svg": vector output through gonum's vg, saved as SVG
//   - "record": gg command recording, played back to PNG on save
package backend
