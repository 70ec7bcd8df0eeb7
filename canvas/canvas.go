package canvas

import (
	"fmt"
	"strings"

	"console-draw/core"
)

const (
	MinSize   = 1
	MaxWidth  = 100
	MaxHeight = 100
)

// Canvas is a fixed-size grid of colors. Row index is y (0 at the top),
// column index is x (0 at the left).
type Canvas struct {
	width  int
	height int
	pixels [][]core.Color
}

// New allocates a width x height canvas with every cell created by background.
func New(width, height int, background core.ColorFactory) (*Canvas, error) {
	if width < MinSize || width > MaxWidth || height < MinSize || height > MaxHeight {
		return nil, fmt.Errorf("%w: got %dx%d", core.ErrSize, width, height)
	}

	pixels := make([][]core.Color, height)
	for y := range pixels {
		row := make([]core.Color, width)
		for x := range row {
			row[x] = background.Create()
		}
		pixels[y] = row
	}

	return &Canvas{width: width, height: height, pixels: pixels}, nil
}

func (c *Canvas) Width() int {
	return c.width
}

func (c *Canvas) Height() int {
	return c.height
}

// Contains reports whether the zero-based point lies on the canvas.
func (c *Canvas) Contains(x, y int) bool {
	return x >= 0 && x < c.width && y >= 0 && y < c.height
}

// At returns the color at the zero-based point. Callers validate bounds.
func (c *Canvas) At(x, y int) core.Color {
	return c.pixels[y][x]
}

// Set paints the zero-based point. Callers validate bounds.
func (c *Canvas) Set(x, y int, color core.Color) {
	c.pixels[y][x] = color
}

// Pixels returns a copy of the grid, rows first.
func (c *Canvas) Pixels() [][]core.Color {
	out := make([][]core.Color, c.height)
	for y, row := range c.pixels {
		out[y] = append([]core.Color(nil), row...)
	}
	return out
}

// Render draws the grid inside a frame of '-' and '|'. Cell content is
// written as-is and the last line has no trailing newline.
func (c *Canvas) Render() string {
	border := strings.Repeat("-", c.width+2)

	var b strings.Builder
	b.Grow((c.width + 3) * (c.height + 2))
	b.WriteString(border)
	b.WriteByte('\n')
	for _, row := range c.pixels {
		b.WriteByte('|')
		for _, pixel := range row {
			b.WriteString(pixel.String())
		}
		b.WriteString("|\n")
	}
	b.WriteString(border)

	return b.String()
}
