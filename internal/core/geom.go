// Package core provides fundamental types and utilities shared by the game
// logic and the terminal front-ends. It has no external dependencies so the
// battle rules stay pure and testable.
package core

import "fmt"

// Coord is a cell position on a board.
// X increases to the right (column), Y increases downward (row).
// Coord is comparable and can be used as a map key.
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

// neighborOffsets lists the 8-neighbourhood, row by row.
var neighborOffsets = [8][2]int{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0}, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
}

// Neighbors returns the eight cells surrounding c, diagonals included.
// No bounds are applied.
func (c Coord) Neighbors() []Coord {
	out := make([]Coord, 0, len(neighborOffsets))
	for _, d := range neighborOffsets {
		out = append(out, c.Add(d[0], d[1]))
	}
	return out
}

// Clamp restricts a value to be within [lo, hi].
func Clamp(val, lo, hi int) int {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}
