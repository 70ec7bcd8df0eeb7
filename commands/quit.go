package commands

import "console-draw/canvas"

// Quit ends the session. It holds no canvas; once executed the caller is
// expected to discard the session.
type Quit struct {
	done bool
}

func NewQuit(args Arguments) (*Quit, error) {
	c := &Quit{}
	if err := verifyArgs(c.NumberOfArguments(), args); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Quit) NumberOfArguments() int {
	return 0
}

func (c *Quit) Execute() {
	c.done = true
}

// Done reports whether Execute has run.
func (c *Quit) Done() bool {
	return c.done
}

func (c *Quit) Result() *canvas.Canvas {
	return nil
}
