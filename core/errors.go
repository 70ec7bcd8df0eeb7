package core

import (
	"errors"
	"fmt"
)

var (
	ErrArgumentCount       = errors.New("invalid arguments")
	ErrArgumentType        = errors.New("coordinates input contains non integer values")
	ErrSize                = errors.New("the width and height of the canvas must be integer with min=1, max=100")
	ErrUninitializedCanvas = errors.New("the canvas has not been created yet")
	ErrCoordinateRange     = errors.New("coordinates input out of canvas bounds")
	ErrInvalidColor        = errors.New("invalid color")
	ErrUnrecognizedCommand = errors.New("unrecognized command")
)

// ArgumentCountError reports a command invoked with the wrong number of tokens.
type ArgumentCountError struct {
	Expected int
	Actual   int
}

func (e *ArgumentCountError) Error() string {
	return fmt.Sprintf("%v: expected %d arguments, but got %d", ErrArgumentCount, e.Expected, e.Actual)
}

func (e *ArgumentCountError) Unwrap() error {
	return ErrArgumentCount
}
