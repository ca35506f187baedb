package ggchart

import (
	"context"
	"log/slog"
	"sync/atomic"

	"github.com/gogpu/gg"
)

// nopHandler drops every record. Chart drawing logs on hot paths (one
// Debug per stroked curve), so the default must cost nothing.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

var logger atomic.Pointer[slog.Logger]

func init() {
	logger.Store(slog.New(nopHandler{}))
}

// SetLogger routes ggchart's diagnostics to l; nil silences them again.
// The same logger is installed in github.com/gogpu/gg, so rasterizer
// messages from the raster and record backends land next to the chart's.
//
// Chart operations log stroked curves and dash lines at Debug, and
// series or guide values rejected by validation at Warn. The command
// line tool's --verbose flag installs a Debug text logger on stderr.
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(nopHandler{})
	}
	logger.Store(l)
	gg.SetLogger(l)
}

// Logger returns the logger installed by SetLogger. Backend and config
// packages log through it.
func Logger() *slog.Logger {
	return logger.Load()
}
