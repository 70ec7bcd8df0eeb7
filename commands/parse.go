package commands

import (
	"strings"

	"console-draw/canvas"
	"console-draw/core"
)

// Leading command letters. Matching is case-insensitive.
const (
	CreateCanvasCommand  = "C"
	DrawLineCommand      = "L"
	DrawRectangleCommand = "R"
	FillColorCommand     = "B"
	QuitCommand          = "Q"
)

// Tokenize splits a command line on whitespace.
func Tokenize(line string) []string {
	return strings.Fields(line)
}

// Build maps tokens to a validated command. current is the canvas the
// session holds (nil if none); background seeds newly created canvases.
func Build(tokens []string, current *canvas.Canvas, background core.ColorFactory) (Command, error) {
	if len(tokens) == 0 {
		return nil, core.ErrUnrecognizedCommand
	}

	var (
		cmd  Command
		err  error
		args = tokens[1:]
	)
	switch strings.ToUpper(tokens[0]) {
	case CreateCanvasCommand:
		cmd, err = asCommand(NewCreateCanvas(NewCreateCanvasArguments(background, args...)))
	case DrawLineCommand:
		cmd, err = asCommand(NewDrawLine(NewDrawArguments(current, args...)))
	case DrawRectangleCommand:
		cmd, err = asCommand(NewDrawRectangle(NewDrawArguments(current, args...)))
	case FillColorCommand:
		cmd, err = asCommand(NewFillColor(NewDrawArguments(current, args...)))
	case QuitCommand:
		cmd, err = asCommand(NewQuit(NewArguments(args...)))
	default:
		return nil, core.ErrUnrecognizedCommand
	}
	return cmd, err
}

// asCommand keeps a failed constructor's typed nil out of the interface.
func asCommand[T Command](cmd T, err error) (Command, error) {
	if err != nil {
		return nil, err
	}
	return cmd, nil
}

// Parse tokenizes line and builds the command it names.
func Parse(line string, current *canvas.Canvas, background core.ColorFactory) (Command, error) {
	return Build(Tokenize(line), current, background)
}
