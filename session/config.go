package session

import (
	"os"

	"console-draw/core"
)

// BackgroundFromEnv reads the background color for new canvases from
// CANVAS_BACKGROUND. Unset or empty means EmptyColor.
func BackgroundFromEnv() (core.ColorFactory, error) {
	value := os.Getenv("CANVAS_BACKGROUND")
	if value == "" {
		value = EmptyColor
	}
	factory, err := core.NewAsciiColorFactory(value)
	if err != nil {
		return nil, err
	}
	return factory, nil
}
