package core

import (
	"errors"
	"testing"
)

func TestNewAsciiColor_Printable(t *testing.T) {
	for r := rune(0x20); r <= 0x7E; r++ {
		c, err := NewAsciiColor(string(r))
		if err != nil {
			t.Fatalf("NewAsciiColor(%q) failed: %v", r, err)
		}
		if c.String() != string(r) {
			t.Errorf("String() mismatch: got %q, want %q", c.String(), string(r))
		}
	}
}

func TestNewAsciiColor_Invalid(t *testing.T) {
	testCases := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"two characters", "ab"},
		{"tab", "\t"},
		{"newline", "\n"},
		{"delete", "\x7f"},
		{"latin-1", "é"},
		{"emoji", "🌍"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewAsciiColor(tc.input)
			if !errors.Is(err, ErrInvalidColor) {
				t.Errorf("Error mismatch: got %v, want %v", err, ErrInvalidColor)
			}
		})
	}
}

func TestNewExtendedAsciiColor(t *testing.T) {
	if _, err := NewExtendedAsciiColor("é"); err != nil {
		t.Errorf("NewExtendedAsciiColor(%q) failed: %v", "é", err)
	}
	if _, err := NewExtendedAsciiColor("a"); err != nil {
		t.Errorf("NewExtendedAsciiColor(%q) failed: %v", "a", err)
	}
	if _, err := NewExtendedAsciiColor("\u0085"); !errors.Is(err, ErrInvalidColor) {
		t.Errorf("Error mismatch for C1 control: got %v, want %v", err, ErrInvalidColor)
	}
	if _, err := NewExtendedAsciiColor("Ā"); !errors.Is(err, ErrInvalidColor) {
		t.Errorf("Error mismatch above 0xFF: got %v, want %v", err, ErrInvalidColor)
	}
}

type otherColor string

func (c otherColor) Equal(other Color) bool { return false }
func (c otherColor) String() string         { return string(c) }

func TestAsciiColor_Equal(t *testing.T) {
	a, _ := NewAsciiColor("a")
	a2, _ := NewAsciiColor("a")
	b, _ := NewAsciiColor("b")

	if !a.Equal(a2) {
		t.Error("Equal() should hold for the same character")
	}
	if a.Equal(b) {
		t.Error("Equal() should not hold for different characters")
	}
	if a.Equal(otherColor("a")) {
		t.Error("Equal() should not hold for a different Color type")
	}
	if a.Equal(nil) {
		t.Error("Equal() should not hold for nil")
	}
}

func TestAsciiColorFactory(t *testing.T) {
	f, err := NewAsciiColorFactory("_")
	if err != nil {
		t.Fatalf("NewAsciiColorFactory() failed: %v", err)
	}

	if !f.Create().Equal(f.Create()) {
		t.Error("Create() should return equal colors")
	}
	if f.Create().String() != "_" {
		t.Errorf("Create() mismatch: got %q, want %q", f.Create().String(), "_")
	}

	if _, err := NewAsciiColorFactory("\x01"); !errors.Is(err, ErrInvalidColor) {
		t.Errorf("Error mismatch: got %v, want %v", err, ErrInvalidColor)
	}
}

func TestArgumentCountError(t *testing.T) {
	err := error(&ArgumentCountError{Expected: 4, Actual: 2})

	if !errors.Is(err, ErrArgumentCount) {
		t.Error("ArgumentCountError should match ErrArgumentCount")
	}

	want := "invalid arguments: expected 4 arguments, but got 2"
	if err.Error() != want {
		t.Errorf("Error() mismatch: got %q, want %q", err.Error(), want)
	}
}
