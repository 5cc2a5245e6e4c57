package engine

// IsVictory reports whether every target cell holds a crate.
// Crates resting off target do not matter.
func IsVictory(s *Session) bool {
	for y, row := range s.Map {
		for x, cell := range row {
			if cell == CellTarget && !s.Crates.Has(C(x, y)) {
				return false
			}
		}
	}
	return true
}
