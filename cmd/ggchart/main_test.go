package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gogpu/ggchart/backend"
)

func TestResolveOutput(t *testing.T) {
	tests := []struct {
		name           string
		input, output  string
		format         string
		wantOut, wantF string
		wantErr        bool
	}{
		{"defaults to png", "chart.yaml", "", "", "chart.png", "png", false},
		{"format flag", "chart.yaml", "", "svg", "chart.svg", "svg", false},
		{"format from extension", "chart.yaml", "out/c.SVG", "", "out/c.SVG", "svg", false},
		{"flag wins over extension", "chart.yaml", "c.png", "svg", "c.png", "svg", false},
		{"record writes png", "chart.yaml", "", "record", "chart.png", "record", false},
		{"unknown format", "chart.yaml", "", "gif", "", "", true},
		{"unknown extension", "chart.yaml", "c.gif", "", "", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, f, err := resolveOutput(tt.input, tt.output, tt.format)
			if (err != nil) != tt.wantErr {
				t.Fatalf("resolveOutput() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if out != tt.wantOut || f != tt.wantF {
				t.Errorf("resolveOutput() = %q, %q; want %q, %q", out, f, tt.wantOut, tt.wantF)
			}
		})
	}
}

func TestTargetsRegistered(t *testing.T) {
	for f, name := range targets {
		if !backend.IsRegistered(name) {
			t.Errorf("format %s: target %q not registered", f, name)
		}
	}
}

func TestRenderDemo(t *testing.T) {
	dir := t.TempDir()
	for _, f := range []string{formatPNG, formatSVG} {
		path := filepath.Join(dir, "demo."+f)
		if err := render(demoChart(), path, f); err != nil {
			t.Fatalf("render(%s) error = %v", f, err)
		}
		info, err := os.Stat(path)
		if err != nil {
			t.Fatal(err)
		}
		if info.Size() == 0 {
			t.Errorf("%s output is empty", f)
		}
	}
}
