package main

import (
	"fmt"

	"github.com/gogpu/ggchart/backend"
	_ "github.com/gogpu/ggchart/backend/raster" // registers "raster"
	_ "github.com/gogpu/ggchart/backend/record" // registers "record"
	_ "github.com/gogpu/ggchart/backend/svg"    // registers "svg"
	"github.com/gogpu/ggchart/config"
)

const (
	formatPNG    = "png"
	formatSVG    = "svg"
	formatRecord = "record"
)

// targets maps output formats to registered backend targets.
var targets = map[string]string{
	formatPNG:    backend.NameRaster,
	formatSVG:    backend.NameSVG,
	formatRecord: backend.NameRecord,
}

func render(c *config.Chart, path, f string) error {
	name, ok := targets[f]
	if !ok {
		return fmt.Errorf("unknown format %q", f)
	}
	t, err := backend.New(name, int(c.Width), int(c.Height))
	if err != nil {
		return err
	}
	if err := c.Draw(t); err != nil {
		return err
	}
	return t.Save(path)
}
