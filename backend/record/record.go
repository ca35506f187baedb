// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package record binds ggchart to gg's command recorder.
//
// A Surface records every chart operation as typed recording commands
// instead of pixels. The finished recording can be inspected, or played
// back to any registered recording backend (raster, PDF, SVG).
//
// Usage:
//
//	s := record.New(400, 300)
//	chart := ggchart.NewChart(graph, s)
//	_ = chart.DrawColoredMultiLines(series...)
//	r := s.Finish()
//	fmt.Println(len(r.Commands()))
//	_ = record.SaveToFile(r, "raster", "chart.png")
package record

import (
	"errors"
	"fmt"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/recording"
	_ "github.com/gogpu/gg/recording/backends/raster" // registers "raster"

	"github.com/gogpu/ggchart"
	"github.com/gogpu/ggchart/backend"
	"github.com/gogpu/ggchart/internal/fonts"
)

// PlaybackBackend is the recording backend Save plays back to.
const PlaybackBackend = "raster"

func init() {
	backend.Register(backend.NameRecord, func(width, height int) backend.Target {
		return New(width, height)
	})
}

// ErrNotFileBackend is returned by SaveToFile when the named backend
// cannot write files.
var ErrNotFileBackend = errors.New("record: backend cannot save to file")

// Surface is a ggchart.Surface writing into a recording.Recorder.
//
// Surface is NOT safe for concurrent use.
type Surface struct {
	rec *recording.Recorder
}

var (
	_ ggchart.Surface     = (*Surface)(nil)
	_ ggchart.LabelDrawer = (*Surface)(nil)
	_ backend.Target      = (*Surface)(nil)
)

// New creates a Surface recording a width×height canvas.
func New(width, height int) *Surface {
	return &Surface{rec: recording.NewRecorder(width, height)}
}

// Recorder returns the underlying recorder.
func (s *Surface) Recorder() *recording.Recorder {
	return s.rec
}

// Finish ends the recording. The Surface must not be used afterwards.
func (s *Surface) Finish() *recording.Recording {
	return s.rec.FinishRecording()
}

// Save implements backend.Target. It finishes the recording and plays it
// back to PlaybackBackend, which writes the file.
func (s *Surface) Save(path string) error {
	r := s.Finish()
	ggchart.Logger().Debug("record: save", "commands", len(r.Commands()), "path", path)
	return SaveToFile(r, PlaybackBackend, path)
}

// NewPath implements ggchart.Surface.
func (s *Surface) NewPath() ggchart.Path {
	return &Path{
		rec:    s.rec,
		path:   gg.NewPath(),
		stroke: ggchart.Black,
		fill:   ggchart.Black,
		width:  1,
	}
}

// DrawLinearGradient implements ggchart.Surface.
func (s *Surface) DrawLinearGradient(start, end ggchart.Point, stops []ggchart.ColorStop, bounds ggchart.Rect) error {
	brush := recording.NewLinearGradientBrush(start.X, start.Y, end.X, end.Y)
	for _, st := range stops {
		brush.AddColorStop(st.Offset, st.Color.ToRGBA())
	}
	s.rec.ClearPath()
	s.rec.SetFillStyle(brush)
	s.rec.DrawRectangle(bounds.X, bounds.Y, bounds.W, bounds.H)
	s.rec.Fill()
	return nil
}

// DrawLabel implements ggchart.LabelDrawer. The text position is anchored
// here since recording backends receive only a baseline origin.
func (s *Surface) DrawLabel(l ggchart.Label) error {
	size := l.FontSize
	if size <= 0 {
		size = ggchart.LabelFontSize
	}
	face, err := fonts.Face(l.Bold, size)
	if err != nil {
		return fmt.Errorf("record: label font: %w", err)
	}
	s.rec.SetFont(face)
	s.rec.SetFontFamily(fonts.Family)
	s.rec.SetFontSize(size)
	s.rec.SetFillRGBA(l.Color.R, l.Color.G, l.Color.B, l.Color.A)

	w, h := s.rec.MeasureString(l.Text)
	c := l.Frame.Center()
	x := c.X - w/2
	switch l.Align {
	case ggchart.AlignLeft:
		x = l.Frame.X
	case ggchart.AlignRight:
		x = l.Frame.X + l.Frame.W - w
	}
	s.rec.DrawString(l.Text, x, c.Y+h/2)
	return nil
}

// Playback replays r into a new instance of the named recording backend.
func Playback(r *recording.Recording, backend string) (recording.Backend, error) {
	b, err := recording.NewBackend(backend)
	if err != nil {
		return nil, fmt.Errorf("record: %w", err)
	}
	if err := r.Playback(b); err != nil {
		return nil, fmt.Errorf("record: playback to %s: %w", backend, err)
	}
	return b, nil
}

// SaveToFile plays r back to the named backend and saves its output.
func SaveToFile(r *recording.Recording, backend, path string) error {
	b, err := Playback(r, backend)
	if err != nil {
		return err
	}
	fb, ok := b.(recording.FileBackend)
	if !ok {
		return fmt.Errorf("%w: %s", ErrNotFileBackend, backend)
	}
	return fb.SaveToFile(path)
}
