// Package export rasterizes rendered drawings into images.
package export

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"strings"
	"unicode/utf8"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Margin is the blank border, in pixels, around the text.
const Margin = 4

var face = basicfont.Face7x13

// Cell size of one character in pixels.
var (
	CellWidth  = face.Advance
	CellHeight = face.Height
)

type Options struct {
	Foreground color.Color
	Background color.Color
}

func DefaultOptions() Options {
	return Options{Foreground: color.Black, Background: color.White}
}

// Bounds returns the image size text is drawn into: one fixed-size cell per
// character, one row per line.
func Bounds(text string) image.Rectangle {
	lines := strings.Split(text, "\n")
	cols := 0
	for _, line := range lines {
		cols = max(cols, utf8.RuneCountInString(line))
	}
	return image.Rect(0, 0, cols*CellWidth+2*Margin, len(lines)*CellHeight+2*Margin)
}

// Rasterize draws text with a monospace bitmap font.
func Rasterize(text string, opts Options) *image.RGBA {
	dst := image.NewRGBA(Bounds(text))
	draw.Draw(dst, dst.Bounds(), image.NewUniform(opts.Background), image.Point{}, draw.Src)

	d := &font.Drawer{Dst: dst, Src: image.NewUniform(opts.Foreground), Face: face}
	for row, line := range strings.Split(text, "\n") {
		d.Dot = fixed.P(Margin, Margin+row*CellHeight+face.Ascent)
		d.DrawString(line)
	}
	return dst
}

// WritePNG encodes the rasterized text to w.
func WritePNG(w io.Writer, text string, opts Options) error {
	return png.Encode(w, Rasterize(text, opts))
}
