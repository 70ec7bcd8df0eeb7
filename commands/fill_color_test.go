package commands

import (
	"errors"
	"image"
	"testing"

	"console-draw/core"
)

func TestFillColor_ValidationOrder(t *testing.T) {
	c := createCanvas(t, 20, 10)

	testCases := []struct {
		name string
		args DrawArguments
		want error
	}{
		{"non integer x", NewDrawArguments(nil, "a", "1", "o"), core.ErrArgumentType},
		{"non integer y", NewDrawArguments(c, "1", "b", "o"), core.ErrArgumentType},
		{"missing canvas", NewDrawArguments(nil, "1", "1", "oo"), core.ErrUninitializedCanvas},
		{"out of range before color", NewDrawArguments(c, "21", "1", "oo"), core.ErrCoordinateRange},
		{"overflowing integer", NewDrawArguments(c, "99999999999999999999", "1", "o"), core.ErrCoordinateRange},
		{"overflowing integer on missing canvas", NewDrawArguments(nil, "1", "99999999999999999999", "o"), core.ErrUninitializedCanvas},
		{"color too long", NewDrawArguments(c, "1", "1", "xx"), core.ErrInvalidColor},
		{"color empty", NewDrawArguments(c, "1", "1", ""), core.ErrInvalidColor},
		{"color not ascii", NewDrawArguments(c, "1", "1", "é"), core.ErrInvalidColor},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cmd, err := NewFillColor(tc.args)
			if !errors.Is(err, tc.want) {
				t.Errorf("Error mismatch: got %v, want %v", err, tc.want)
			}
			if cmd != nil {
				t.Error("NewFillColor() returned a command for invalid input")
			}
		})
	}
}

func TestFillColor_Start(t *testing.T) {
	c := createCanvas(t, 20, 10)
	cmd, err := NewFillColor(NewDrawArguments(c, "20", "10", "o"))
	if err != nil {
		t.Fatalf("NewFillColor() failed: %v", err)
	}

	if cmd.Start() != image.Pt(19, 9) {
		t.Errorf("Start() mismatch: got %v, want (19,9)", cmd.Start())
	}
}

func fillOutsideRectangle(t *testing.T, fill string) string {
	t.Helper()
	c := createCanvas(t, 20, 10)

	rect, err := NewDrawRectangle(NewDrawArguments(c, "2", "2", "10", "6"))
	if err != nil {
		t.Fatalf("NewDrawRectangle() failed: %v", err)
	}
	rect.Execute()

	cmd, err := NewFillColor(NewDrawArguments(c, "3", "8", fill))
	if err != nil {
		t.Fatalf("NewFillColor() failed: %v", err)
	}
	cmd.Execute()

	return cmd.Result().Render()
}

func TestFillColor_Execute(t *testing.T) {
	want := "----------------------\n" +
		"|!!!!!!!!!!!!!!!!!!!!|\n" +
		"|!xxxxxxxxx!!!!!!!!!!|\n" +
		"|!x       x!!!!!!!!!!|\n" +
		"|!x       x!!!!!!!!!!|\n" +
		"|!x       x!!!!!!!!!!|\n" +
		"|!xxxxxxxxx!!!!!!!!!!|\n" +
		"|!!!!!!!!!!!!!!!!!!!!|\n" +
		"|!!!!!!!!!!!!!!!!!!!!|\n" +
		"|!!!!!!!!!!!!!!!!!!!!|\n" +
		"|!!!!!!!!!!!!!!!!!!!!|\n" +
		"----------------------"

	if got := fillOutsideRectangle(t, "!"); got != want {
		t.Errorf("FillColor() mismatch:\ngot\n%s\nwant\n%s", got, want)
	}
}

func TestFillColor_Idempotent(t *testing.T) {
	c := createCanvas(t, 20, 10)
	for i := 0; i < 2; i++ {
		cmd, err := NewFillColor(NewDrawArguments(c, "3", "4", "o"))
		if err != nil {
			t.Fatalf("NewFillColor() failed: %v", err)
		}
		cmd.Execute()
	}

	first := createCanvas(t, 20, 10)
	cmd, _ := NewFillColor(NewDrawArguments(first, "3", "4", "o"))
	cmd.Execute()

	if c.Render() != first.Render() {
		t.Errorf("Second fill changed the canvas:\n%s\n%s", c.Render(), first.Render())
	}
}

func TestFillColor_RefillWithNewColor(t *testing.T) {
	c := createCanvas(t, 5, 2)
	for _, color := range []string{"o", "^"} {
		cmd, err := NewFillColor(NewDrawArguments(c, "3", "1", color))
		if err != nil {
			t.Fatalf("NewFillColor(%q) failed: %v", color, err)
		}
		cmd.Execute()
	}

	want := "-------\n|^^^^^|\n|^^^^^|\n-------"
	if got := c.Render(); got != want {
		t.Errorf("Render() mismatch: got %q, want %q", got, want)
	}
}
