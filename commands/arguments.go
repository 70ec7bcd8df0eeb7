package commands

import (
	"console-draw/canvas"
	"console-draw/core"
)

// Arguments is the immutable token list a command is built from.
type Arguments struct {
	args []string
}

func NewArguments(args ...string) Arguments {
	return Arguments{args: append([]string(nil), args...)}
}

func (a Arguments) Len() int {
	return len(a.args)
}

func (a Arguments) Arg(i int) string {
	return a.args[i]
}

// Args returns a copy of the tokens.
func (a Arguments) Args() []string {
	return append([]string(nil), a.args...)
}

// CreateCanvasArguments carries the color every cell of a new canvas starts with.
type CreateCanvasArguments struct {
	Arguments
	Background core.ColorFactory
}

func NewCreateCanvasArguments(background core.ColorFactory, args ...string) CreateCanvasArguments {
	return CreateCanvasArguments{Arguments: NewArguments(args...), Background: background}
}

// DrawArguments borrows the canvas a drawing command acts on. The canvas
// stays owned by the session; it is nil before any canvas was created.
type DrawArguments struct {
	Arguments
	Canvas *canvas.Canvas
}

func NewDrawArguments(c *canvas.Canvas, args ...string) DrawArguments {
	return DrawArguments{Arguments: NewArguments(args...), Canvas: c}
}
