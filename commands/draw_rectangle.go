package commands

import (
	"image"

	"console-draw/canvas"
	"console-draw/core"
)

// BorderColor is the marker painted by DrawRectangle.
const BorderColor = "x"

var borderColor = core.MustAsciiColorFactory(BorderColor)

// DrawRectangle outlines the box spanned by two opposite 1-based corners.
type DrawRectangle struct {
	args    DrawArguments
	corners image.Rectangle
}

func NewDrawRectangle(args DrawArguments) (*DrawRectangle, error) {
	c := &DrawRectangle{args: args}
	if err := verifyArgs(c.NumberOfArguments(), args.Arguments); err != nil {
		return nil, err
	}
	if err := c.validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *DrawRectangle) NumberOfArguments() int {
	return 4
}

func (c *DrawRectangle) validate() error {
	points, err := resolvePoints(c.args.Canvas, c.args.Args()...)
	if err != nil {
		return err
	}
	c.corners = image.Rectangle{Min: points[0], Max: points[1]}.Canon()
	return nil
}

// Corners returns the normalized zero-based corners, both inclusive.
func (c *DrawRectangle) Corners() image.Rectangle {
	return c.corners
}

func (c *DrawRectangle) Execute() {
	r := c.corners
	canvas.NewGraphic(c.args.Canvas).DrawRectangle(r.Min.X, r.Min.Y, r.Max.X, r.Max.Y, borderColor)
}

func (c *DrawRectangle) Result() *canvas.Canvas {
	return c.args.Canvas
}
