package commands

import (
	"errors"
	"fmt"
	"image"
	"math"
	"strconv"
	"strings"

	"console-draw/canvas"
	"console-draw/core"
)

// Command is a validated unit of work. Constructors run every check before
// returning, so Execute never fails and never sees bad input.
type Command interface {
	// NumberOfArguments is the exact token count the command accepts.
	NumberOfArguments() int
	Execute()
	// Result is the canvas after Execute, or nil for commands that hold none.
	Result() *canvas.Canvas
}

// verifyArgs is the arity check shared by every command.
func verifyArgs(expected int, args Arguments) error {
	if args.Len() != expected {
		return &core.ArgumentCountError{Expected: expected, Actual: args.Len()}
	}
	return nil
}

// parseInts accepts base-10 integer tokens. An integer too large for int
// is clamped to the nearest bound so it fails range checks, not the type
// check.
func parseInts(tokens []string) ([]int, bool) {
	values := make([]int, len(tokens))
	for i, token := range tokens {
		v, err := strconv.Atoi(token)
		var numErr *strconv.NumError
		switch {
		case err == nil:
		case errors.As(err, &numErr) && errors.Is(numErr.Err, strconv.ErrRange):
			v = math.MaxInt
			if strings.HasPrefix(token, "-") {
				v = math.MinInt
			}
		default:
			return nil, false
		}
		values[i] = v
	}
	return values, true
}

// resolvePoints turns 1-based coordinate tokens into 0-based points on c.
// Checks run in order: integer tokens, canvas presence, then bounds.
func resolvePoints(c *canvas.Canvas, tokens ...string) ([]image.Point, error) {
	values, ok := parseInts(tokens)
	if !ok {
		return nil, core.ErrArgumentType
	}

	if c == nil {
		return nil, core.ErrUninitializedCanvas
	}

	points := make([]image.Point, 0, len(values)/2)
	for i := 0; i+1 < len(values); i += 2 {
		x, y := values[i], values[i+1]
		if x < 1 || y < 1 || !c.Contains(x-1, y-1) {
			return nil, fmt.Errorf("%w: (%s,%s) is outside %dx%d",
				core.ErrCoordinateRange, tokens[i], tokens[i+1], c.Width(), c.Height())
		}
		p := image.Pt(x-1, y-1)
		points = append(points, p)
	}
	return points, nil
}
