package engine

// MoveResult reports what a move attempt changed.
type MoveResult struct {
	Moved  bool // Player changed cell
	Pushed bool // A crate changed cell
}

// Move applies one move attempt in direction d.
//
// The push check runs before the step check: a crate directly ahead is
// pushed when the cell beyond it is free of crates and not a wall, then the
// player steps forward if the cell ahead is walkable and no longer holds a
// crate. Facing is set to d whether or not anything moved.
func Move(s *Session, d Dir) MoveResult {
	var res MoveResult
	target := s.Player.Step(d, 1)
	beyond := s.Player.Step(d, 2)

	if s.Crates.Has(target) && !s.Crates.Has(beyond) && s.Map.At(beyond) != CellWall {
		s.Crates.move(target, beyond)
		res.Pushed = true
	}

	if s.Map.At(target).Walkable() && !s.Crates.Has(target) {
		s.Player = target
		res.Moved = true
	}

	s.Facing = d
	return res
}
