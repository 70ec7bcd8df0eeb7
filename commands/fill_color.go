package commands

import (
	"fmt"
	"image"
	"unicode/utf8"

	"console-draw/canvas"
	"console-draw/core"
)

// FillColor flood fills the region around a 1-based point with a character.
type FillColor struct {
	args  DrawArguments
	start image.Point
	fill  *core.AsciiColorFactory
}

func NewFillColor(args DrawArguments) (*FillColor, error) {
	c := &FillColor{args: args}
	if err := verifyArgs(c.NumberOfArguments(), args.Arguments); err != nil {
		return nil, err
	}
	if err := c.validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *FillColor) NumberOfArguments() int {
	return 3
}

func (c *FillColor) validate() error {
	points, err := resolvePoints(c.args.Canvas, c.args.Arg(0), c.args.Arg(1))
	if err != nil {
		return err
	}

	char := c.args.Arg(2)
	if utf8.RuneCountInString(char) != 1 {
		return fmt.Errorf("%w: the length of the color value must be 1", core.ErrInvalidColor)
	}
	fill, err := core.NewAsciiColorFactory(char)
	if err != nil {
		return err
	}

	c.start, c.fill = points[0], fill
	return nil
}

// Start returns the zero-based seed point.
func (c *FillColor) Start() image.Point {
	return c.start
}

func (c *FillColor) Execute() {
	target := c.args.Canvas.At(c.start.X, c.start.Y)
	canvas.NewGraphic(c.args.Canvas).FillColor(c.start, target, c.fill)
}

func (c *FillColor) Result() *canvas.Canvas {
	return c.args.Canvas
}
