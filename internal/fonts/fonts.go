// Package fonts provides the Go font sources used to render chart labels.
//
// Sources are parsed once per process and shared; faces created from
// them are cheap.
package fonts

import (
	"fmt"
	"sync"

	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

// Family is the font family name reported for label text.
const Family = "Go"

var (
	regularOnce sync.Once
	regular     *text.FontSource
	regularErr  error

	boldOnce sync.Once
	bold     *text.FontSource
	boldErr  error
)

// Source returns the regular or bold Go font source.
func Source(isBold bool) (*text.FontSource, error) {
	if isBold {
		boldOnce.Do(func() {
			bold, boldErr = text.NewFontSource(gobold.TTF)
			if boldErr != nil {
				boldErr = fmt.Errorf("fonts: parse Go Bold: %w", boldErr)
			}
		})
		return bold, boldErr
	}
	regularOnce.Do(func() {
		regular, regularErr = text.NewFontSource(goregular.TTF)
		if regularErr != nil {
			regularErr = fmt.Errorf("fonts: parse Go Regular: %w", regularErr)
		}
	})
	return regular, regularErr
}

// Face returns a face of the given size from the regular or bold source.
func Face(isBold bool, size float64) (text.Face, error) {
	src, err := Source(isBold)
	if err != nil {
		return nil, err
	}
	return src.Face(size), nil
}
