package commands

import (
	"fmt"

	"console-draw/canvas"
	"console-draw/core"
)

// CreateCanvas allocates a fresh canvas of the requested size.
type CreateCanvas struct {
	args   CreateCanvasArguments
	width  int
	height int
	canvas *canvas.Canvas
}

func NewCreateCanvas(args CreateCanvasArguments) (*CreateCanvas, error) {
	c := &CreateCanvas{args: args}
	if err := verifyArgs(c.NumberOfArguments(), args.Arguments); err != nil {
		return nil, err
	}
	if err := c.validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *CreateCanvas) NumberOfArguments() int {
	return 2
}

func (c *CreateCanvas) validate() error {
	values, ok := parseInts(c.args.Args())
	if !ok {
		return fmt.Errorf("%w: got %q x %q", core.ErrSize, c.args.Arg(0), c.args.Arg(1))
	}

	width, height := values[0], values[1]
	if width < canvas.MinSize || width > canvas.MaxWidth ||
		height < canvas.MinSize || height > canvas.MaxHeight {
		return fmt.Errorf("%w: got %sx%s", core.ErrSize, c.args.Arg(0), c.args.Arg(1))
	}

	c.width, c.height = width, height
	return nil
}

func (c *CreateCanvas) Width() int {
	return c.width
}

func (c *CreateCanvas) Height() int {
	return c.height
}

func (c *CreateCanvas) Execute() {
	// Size was checked in validate, so New cannot fail here.
	c.canvas, _ = canvas.New(c.width, c.height, c.args.Background)
}

func (c *CreateCanvas) Result() *canvas.Canvas {
	return c.canvas
}
