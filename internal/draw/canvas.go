package draw

import (
	"math"
	"sort"
	"strings"
)

// Canvas is a pixel buffer drawn with half-block characters, giving two
// pixels per terminal cell vertically. Drawing happens in logical
// coordinates that are scaled onto the terminal area.
type Canvas struct {
	termWidth      int
	termHeight     int
	subPixelHeight int    // termHeight * 2
	pixels         []bool // [y*termWidth + x]

	logicalWidth  float64
	logicalHeight float64 // In sub-pixels
	scaleX        float64
	scaleY        float64

	// 0-based terminal offsets of the canvas area.
	offsetCol int
	offsetRow int

	scaledBuf       []Point
	intersectionBuf []float64
	polygonBuf      []Point
}

// NewScaledCanvas creates a canvas mapping a logicalWidth x logicalHeight
// space onto termWidth x termHeight cells.
func NewScaledCanvas(termWidth, termHeight int, logicalWidth, logicalHeight float64) *Canvas {
	c := &Canvas{
		logicalWidth:  logicalWidth,
		logicalHeight: logicalHeight,
	}
	c.Resize(termWidth, termHeight)
	return c
}

// Resize updates the terminal area while keeping the logical size.
func (c *Canvas) Resize(termWidth, termHeight int) {
	if termWidth < 1 {
		termWidth = 1
	}
	if termHeight < 1 {
		termHeight = 1
	}
	if termWidth != c.termWidth || termHeight != c.termHeight {
		c.termWidth = termWidth
		c.termHeight = termHeight
		c.subPixelHeight = termHeight * 2
		c.pixels = make([]bool, c.subPixelHeight*termWidth)
	}
	c.scaleX = float64(termWidth) / c.logicalWidth
	c.scaleY = float64(c.subPixelHeight) / c.logicalHeight
}

// SetOffset places the canvas at (col+1, row+1) on the terminal.
func (c *Canvas) SetOffset(col, row int) {
	c.offsetCol = col
	c.offsetRow = row
}

// Clear resets all pixels.
func (c *Canvas) Clear() {
	clear(c.pixels)
}

func (c *Canvas) setPixel(x, y int) {
	if x >= 0 && x < c.termWidth && y >= 0 && y < c.subPixelHeight {
		c.pixels[y*c.termWidth+x] = true
	}
}

func (c *Canvas) toPixel(p Point) (int, int) {
	return int(math.Round(p.X * c.scaleX)), int(math.Round(p.Y * c.scaleY))
}

// SetFloat sets the pixel at a logical position.
func (c *Canvas) SetFloat(x, y float64) {
	c.setPixel(c.toPixel(Point{X: x, Y: y}))
}

// Pixel reports whether the pixel at a logical position is set.
func (c *Canvas) Pixel(x, y float64) bool {
	px, py := c.toPixel(Point{X: x, Y: y})
	if px < 0 || px >= c.termWidth || py < 0 || py >= c.subPixelHeight {
		return false
	}
	return c.pixels[py*c.termWidth+px]
}

// DrawLine draws a line between two logical points (Bresenham).
func (c *Canvas) DrawLine(p1, p2 Point) {
	x1, y1 := c.toPixel(p1)
	x2, y2 := c.toPixel(p2)

	dx := abs(x2 - x1)
	dy := abs(y2 - y1)
	sx, sy := 1, 1
	if x1 > x2 {
		sx = -1
	}
	if y1 > y2 {
		sy = -1
	}

	err := dx - dy
	for {
		c.setPixel(x1, y1)
		if x1 == x2 && y1 == y2 {
			return
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x1 += sx
		}
		if e2 < dx {
			err += dx
			y1 += sy
		}
	}
}

// DrawPolygon draws a closed outline, filling the interior when filled is set.
func (c *Canvas) DrawPolygon(points []Point, filled bool) {
	if len(points) < 3 {
		return
	}
	if filled {
		c.fillPolygon(points)
	}
	for i := range points {
		c.DrawLine(points[i], points[(i+1)%len(points)])
	}
}

// DrawCircle draws a circle outline of logical radius r around (cx, cy).
func (c *Canvas) DrawCircle(cx, cy, r float64) {
	if r <= 0 {
		c.SetFloat(cx, cy)
		return
	}
	// Enough segments that neighbouring vertices are about a pixel apart.
	segments := int(2 * math.Pi * r * math.Max(c.scaleX, c.scaleY))
	if segments < 8 {
		segments = 8
	}
	pts := c.BorrowPoints(segments)
	for i := range pts {
		a := 2 * math.Pi * float64(i) / float64(segments)
		pts[i] = Point{X: cx + math.Cos(a)*r, Y: cy + math.Sin(a)*r}
	}
	c.DrawPolygon(pts, false)
}

// fillPolygon fills in pixel space with a scanline pass.
func (c *Canvas) fillPolygon(points []Point) {
	if cap(c.scaledBuf) < len(points) {
		c.scaledBuf = make([]Point, len(points))
	}
	scaled := c.scaledBuf[:len(points)]
	for i, p := range points {
		scaled[i] = Point{X: p.X * c.scaleX, Y: p.Y * c.scaleY}
	}

	minY, maxY := scaled[0].Y, scaled[0].Y
	for _, p := range scaled {
		minY = math.Min(minY, p.Y)
		maxY = math.Max(maxY, p.Y)
	}

	for y := int(math.Floor(minY)); y <= int(math.Ceil(maxY)); y++ {
		scanY := float64(y) + 0.5
		xs := c.intersectionBuf[:0]
		for i := range scaled {
			p1, p2 := scaled[i], scaled[(i+1)%len(scaled)]
			if (p1.Y <= scanY && p2.Y > scanY) || (p2.Y <= scanY && p1.Y > scanY) {
				t := (scanY - p1.Y) / (p2.Y - p1.Y)
				xs = append(xs, p1.X+t*(p2.X-p1.X))
			}
		}
		c.intersectionBuf = xs
		sort.Float64s(xs)

		for i := 0; i+1 < len(xs); i += 2 {
			for x := int(math.Ceil(xs[i])); x <= int(math.Floor(xs[i+1])); x++ {
				c.setPixel(x, y)
			}
		}
	}
}

// Render appends the set cells to cw. Runs of adjacent cells share one
// cursor move.
func (c *Canvas) Render(cw *ChunkWriter) {
	for row := 0; row < c.termHeight; row++ {
		top := row * 2 * c.termWidth
		bottom := top + c.termWidth
		next := -1 // Column the cursor sits at after the last write

		for col := 0; col < c.termWidth; col++ {
			up := c.pixels[top+col]
			down := c.pixels[bottom+col]

			var ch rune
			switch {
			case up && down:
				ch = BlockFull
			case up:
				ch = BlockUpperHalf
			case down:
				ch = BlockLowerHalf
			default:
				continue
			}
			if col != next {
				cw.moveAbs(col+1+c.offsetCol, row+1+c.offsetRow)
			}
			cw.WriteRune(ch)
			next = col + 1
		}
	}
}

// RenderBorder frames the canvas area when the terminal leaves room around it.
func (c *Canvas) RenderBorder(cw *ChunkWriter) {
	hasH := c.offsetCol >= 1
	hasV := c.offsetRow >= 1

	left := c.offsetCol
	right := c.offsetCol + c.termWidth + 1
	top := c.offsetRow
	bottom := c.offsetRow + c.termHeight + 1
	line := strings.Repeat("─", c.termWidth)

	if hasV {
		if hasH {
			cw.moveAbs(left, top)
			cw.WriteString("┌" + line + "┐")
			cw.moveAbs(left, bottom)
			cw.WriteString("└" + line + "┘")
		} else {
			cw.moveAbs(c.offsetCol+1, top)
			cw.WriteString(line)
			cw.moveAbs(c.offsetCol+1, bottom)
			cw.WriteString(line)
		}
	}
	if hasH {
		for row := c.offsetRow + 1; row <= c.offsetRow+c.termHeight; row++ {
			cw.moveAbs(left, row)
			cw.WriteRune('│')
			cw.moveAbs(right, row)
			cw.WriteRune('│')
		}
	}
}

// TerminalWidth returns the canvas width in cells.
func (c *Canvas) TerminalWidth() int {
	return c.termWidth
}

// TerminalHeight returns the canvas height in cells.
func (c *Canvas) TerminalHeight() int {
	return c.termHeight
}

// BorrowPoints returns a reusable slice valid until the next call. Each
// session draws on its own canvas, so no locking is needed.
func (c *Canvas) BorrowPoints(n int) []Point {
	if cap(c.polygonBuf) < n {
		c.polygonBuf = make([]Point, n)
	}
	return c.polygonBuf[:n]
}
