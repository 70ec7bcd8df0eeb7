package commands

import (
	"image"

	"console-draw/canvas"
	"console-draw/core"
)

// LineColor is the marker painted by DrawLine.
const LineColor = "x"

var lineColor = core.MustAsciiColorFactory(LineColor)

// DrawLine plots a straight segment between two 1-based points.
type DrawLine struct {
	args       DrawArguments
	start, end image.Point
}

func NewDrawLine(args DrawArguments) (*DrawLine, error) {
	c := &DrawLine{args: args}
	if err := verifyArgs(c.NumberOfArguments(), args.Arguments); err != nil {
		return nil, err
	}
	if err := c.validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *DrawLine) NumberOfArguments() int {
	return 4
}

func (c *DrawLine) validate() error {
	points, err := resolvePoints(c.args.Canvas, c.args.Args()...)
	if err != nil {
		return err
	}
	c.start, c.end = points[0], points[1]
	return nil
}

// Points returns the zero-based endpoints.
func (c *DrawLine) Points() (start, end image.Point) {
	return c.start, c.end
}

func (c *DrawLine) Execute() {
	canvas.NewGraphic(c.args.Canvas).DrawLine(c.start.X, c.start.Y, c.end.X, c.end.Y, lineColor)
}

func (c *DrawLine) Result() *canvas.Canvas {
	return c.args.Canvas
}
