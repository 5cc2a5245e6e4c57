package engine

import "fmt"

// Coord represents a position on the map.
// X is the column, Y is the row, both 0-based.
type Coord struct {
	X int
	Y int
}

// C is a convenience constructor for Coord.
func C(x, y int) Coord {
	return Coord{X: x, Y: y}
}

// String returns a string representation of the coordinate.
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Add returns a new Coord offset by (dx, dy).
func (c Coord) Add(dx, dy int) Coord {
	return Coord{X: c.X + dx, Y: c.Y + dy}
}

// Step returns the coordinate n steps away in direction d.
func (c Coord) Step(d Dir, n int) Coord {
	dx, dy := d.Delta()
	return c.Add(dx*n, dy*n)
}
