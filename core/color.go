package core

import (
	"fmt"
	"unicode/utf8"
)

type (
	// Color is the content of a single canvas cell. Colors compare by value.
	Color interface {
		Equal(other Color) bool
		String() string
	}

	// ColorFactory produces the Color painted into a cell.
	ColorFactory interface {
		Create() Color
	}
)

// AsciiColor is a Color backed by one printable character.
type AsciiColor struct {
	char rune
}

// NewAsciiColor returns the color for char, which must be exactly one
// printable ASCII character (0x20-0x7E).
func NewAsciiColor(char string) (AsciiColor, error) {
	return newAsciiColor(char, false)
}

// NewExtendedAsciiColor is like NewAsciiColor but also accepts the
// printable Latin-1 range 0xA0-0xFF.
func NewExtendedAsciiColor(char string) (AsciiColor, error) {
	return newAsciiColor(char, true)
}

func newAsciiColor(char string, extended bool) (AsciiColor, error) {
	r, size := utf8.DecodeRuneInString(char)
	if size == 0 || size != len(char) || !isPrintableAscii(r, extended) {
		return AsciiColor{}, fmt.Errorf("%w: only ASCII character is supported", ErrInvalidColor)
	}
	return AsciiColor{char: r}, nil
}

func isPrintableAscii(r rune, extended bool) bool {
	if r >= 0x20 && r <= 0x7E {
		return true
	}
	return extended && r >= 0xA0 && r <= 0xFF
}

func (c AsciiColor) Equal(other Color) bool {
	o, ok := other.(AsciiColor)
	return ok && o.char == c.char
}

func (c AsciiColor) String() string {
	return string(c.char)
}

// AsciiColorFactory hands out the same validated AsciiColor on every call.
type AsciiColorFactory struct {
	color AsciiColor
}

func NewAsciiColorFactory(char string) (*AsciiColorFactory, error) {
	color, err := NewAsciiColor(char)
	if err != nil {
		return nil, err
	}
	return &AsciiColorFactory{color: color}, nil
}

// MustAsciiColorFactory is NewAsciiColorFactory for compile-time constants.
func MustAsciiColorFactory(char string) *AsciiColorFactory {
	f, err := NewAsciiColorFactory(char)
	if err != nil {
		panic(err)
	}
	return f
}

func (f *AsciiColorFactory) Create() Color {
	return f.color
}
