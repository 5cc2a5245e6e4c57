// Package engine provides the puzzle state engine for Sokoban.
// It covers the level model, move resolution, victory detection and the
// session state machine. This package is UI-agnostic and deterministic.
package engine

import (
	"fmt"
	"strings"
)

// Dir represents a movement direction.
type Dir uint8

const (
	DirUp Dir = iota
	DirDown
	DirLeft
	DirRight
)

// Dirs lists every direction in declaration order.
var Dirs = []Dir{DirUp, DirDown, DirLeft, DirRight}

// String returns the lower-case name of the direction.
func (d Dir) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// Delta returns the (dx, dy) offset for one step in this direction.
// Up decreases Y, Down increases Y (screen coordinates).
func (d Dir) Delta() (dx, dy int) {
	switch d {
	case DirUp:
		return 0, -1
	case DirDown:
		return 0, 1
	case DirLeft:
		return -1, 0
	case DirRight:
		return 1, 0
	default:
		return 0, 0
	}
}

// ParseDir converts a direction name to a Dir.
// Accepts full names and the single letters u, d, l, r (case-insensitive).
func ParseDir(s string) (Dir, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "up", "u":
		return DirUp, nil
	case "down", "d":
		return DirDown, nil
	case "left", "l":
		return DirLeft, nil
	case "right", "r":
		return DirRight, nil
	}
	return 0, fmt.Errorf("invalid direction %q", s)
}

// Cell is a static map square.
type Cell uint8

const (
	CellWall Cell = iota
	CellFloor
	CellTarget
)

// Level file symbols for each cell kind.
const (
	SymbolWall   = '#'
	SymbolFloor  = '-'
	SymbolTarget = 'X'
)

// ParseCell converts a level symbol to a Cell.
func ParseCell(r rune) (Cell, bool) {
	switch r {
	case SymbolWall:
		return CellWall, true
	case SymbolFloor:
		return CellFloor, true
	case SymbolTarget:
		return CellTarget, true
	}
	return CellWall, false
}

// Symbol returns the level file symbol for the cell.
func (c Cell) Symbol() rune {
	switch c {
	case CellFloor:
		return SymbolFloor
	case CellTarget:
		return SymbolTarget
	default:
		return SymbolWall
	}
}

// Walkable reports whether the player or a crate may occupy the cell.
func (c Cell) Walkable() bool {
	return c == CellFloor || c == CellTarget
}
