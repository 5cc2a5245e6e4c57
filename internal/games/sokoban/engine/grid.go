package engine

import "fmt"

// Map is the static layout of a level as rows of cells.
// Rows may have different lengths.
type Map [][]Cell

// At returns the cell at the given coordinate.
// Anything outside the defined rows or beyond a row's width is a wall.
func (m Map) At(c Coord) Cell {
	if c.Y < 0 || c.Y >= len(m) {
		return CellWall
	}
	row := m[c.Y]
	if c.X < 0 || c.X >= len(row) {
		return CellWall
	}
	return row[c.X]
}

// Height returns the number of rows.
func (m Map) Height() int {
	return len(m)
}

// Width returns the length of the longest row.
func (m Map) Width() int {
	w := 0
	for _, row := range m {
		if len(row) > w {
			w = len(row)
		}
	}
	return w
}

// Targets returns every target coordinate in row-major order.
func (m Map) Targets() []Coord {
	var targets []Coord
	for y, row := range m {
		for x, cell := range row {
			if cell == CellTarget {
				targets = append(targets, C(x, y))
			}
		}
	}
	return targets
}

// Clone returns a deep copy of the map.
func (m Map) Clone() Map {
	if m == nil {
		return nil
	}
	out := make(Map, len(m))
	for y, row := range m {
		out[y] = append([]Cell(nil), row...)
	}
	return out
}

// Rows renders the map back to level file symbols, one string per row.
func (m Map) Rows() []string {
	rows := make([]string, len(m))
	for y, row := range m {
		runes := make([]rune, len(row))
		for x, cell := range row {
			runes[x] = cell.Symbol()
		}
		rows[y] = string(runes)
	}
	return rows
}

// ParseRow converts a line of level symbols into cells.
func ParseRow(line string) ([]Cell, error) {
	row := make([]Cell, 0, len(line))
	for x, r := range []rune(line) {
		cell, ok := ParseCell(r)
		if !ok {
			return nil, fmt.Errorf("unknown symbol %q at column %d", r, x+1)
		}
		row = append(row, cell)
	}
	return row, nil
}

// ParseMap converts symbol rows into a Map.
func ParseMap(rows []string) (Map, error) {
	m := make(Map, len(rows))
	for y, line := range rows {
		row, err := ParseRow(line)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", y+1, err)
		}
		m[y] = row
	}
	return m, nil
}
