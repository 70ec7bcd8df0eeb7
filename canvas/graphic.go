package canvas

import (
	"image"

	"console-draw/core"
)

// Graphic rasterizes shapes onto one canvas. All coordinates are zero-based
// and must already be inside the canvas.
type Graphic struct {
	canvas *Canvas
}

func NewGraphic(c *Canvas) *Graphic {
	return &Graphic{canvas: c}
}

// DrawLine plots the segment between the two points with Bresenham's
// algorithm. Endpoint order does not affect the result.
func (g *Graphic) DrawLine(x0, y0, x1, y1 int, color core.ColorFactory) {
	if abs(x1-x0) > abs(y1-y0) {
		if x1 > x0 {
			g.plotLineLow(x0, y0, x1, y1, color)
		} else {
			g.plotLineLow(x1, y1, x0, y0, color)
		}
		return
	}

	if y1 > y0 {
		g.plotLineHigh(x0, y0, x1, y1, color)
	} else {
		g.plotLineHigh(x1, y1, x0, y0, color)
	}
}

// plotLineLow walks x from x0 to x1 for slopes in (-1, 1). Requires x0 < x1.
func (g *Graphic) plotLineLow(x0, y0, x1, y1 int, color core.ColorFactory) {
	dx := x1 - x0
	dy := y1 - y0
	yi := 1
	if dy < 0 {
		yi = -1
		dy = -dy
	}

	p := 2*dy - dx
	y := y0
	g.set(x0, y0, color)
	for x := x0 + 1; x <= x1; x++ {
		if p >= 0 {
			y += yi
			p -= 2 * dx
		}
		p += 2 * dy
		g.set(x, y, color)
	}
}

// plotLineHigh walks y from y0 to y1 for the steep case. Requires y0 <= y1.
func (g *Graphic) plotLineHigh(x0, y0, x1, y1 int, color core.ColorFactory) {
	dx := x1 - x0
	dy := y1 - y0
	xi := 1
	if dx < 0 {
		xi = -1
		dx = -dx
	}

	p := 2*dx - dy
	x := x0
	g.set(x0, y0, color)
	for y := y0 + 1; y <= y1; y++ {
		if p >= 0 {
			x += xi
			p -= 2 * dy
		}
		p += 2 * dx
		g.set(x, y, color)
	}
}

// DrawRectangle paints the border of the axis-aligned box spanned by two
// opposite corners. The interior is left untouched.
func (g *Graphic) DrawRectangle(x0, y0, x1, y1 int, color core.ColorFactory) {
	minX, maxX := min(x0, x1), max(x0, x1)
	minY, maxY := min(y0, y1), max(y0, y1)

	for x := minX; x <= maxX; x++ {
		g.set(x, minY, color)
		g.set(x, maxY, color)
	}
	for y := minY; y <= maxY; y++ {
		g.set(minX, y, color)
		g.set(maxX, y, color)
	}
}

// FillColor replaces the 4-connected region of target around start with
// the replacement color. It scans whole horizontal spans and queues the
// cells above and below each span, so memory stays bounded by the queue.
func (g *Graphic) FillColor(start image.Point, target core.Color, replacement core.ColorFactory) {
	fill := replacement.Create()
	if target.Equal(fill) {
		return
	}
	if !g.canvas.At(start.X, start.Y).Equal(target) {
		return
	}

	width, height := g.canvas.Width(), g.canvas.Height()
	queue := []image.Point{start}
	for len(queue) > 0 {
		n := queue[0]
		queue = queue[1:]

		w := n.X
		for w >= 0 && g.canvas.At(w, n.Y).Equal(target) {
			w--
		}
		e := n.X + 1
		for e < width && g.canvas.At(e, n.Y).Equal(target) {
			e++
		}

		for x := w + 1; x < e; x++ {
			g.canvas.Set(x, n.Y, fill)

			if n.Y > 0 && g.canvas.At(x, n.Y-1).Equal(target) {
				queue = append(queue, image.Pt(x, n.Y-1))
			}
			if n.Y < height-1 && g.canvas.At(x, n.Y+1).Equal(target) {
				queue = append(queue, image.Pt(x, n.Y+1))
			}
		}
	}
}

func (g *Graphic) set(x, y int, color core.ColorFactory) {
	g.canvas.Set(x, y, color.Create())
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
