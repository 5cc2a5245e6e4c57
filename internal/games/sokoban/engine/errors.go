package engine

import (
	"errors"
	"fmt"
)

// ErrIndexOutOfRange is returned when a level index outside [1, Count] is requested.
var ErrIndexOutOfRange = errors.New("level index out of range")

// ErrNoLevels is returned when a catalog would be empty.
var ErrNoLevels = errors.New("no levels defined")

// MalformedLevelError describes level input that violates the level grammar
// or the level invariants.
type MalformedLevelError struct {
	Source string // File name or pack name, may be empty
	Line   int    // 1-based line number, 0 if unknown
	Level  int    // 1-based level number within the source, 0 if unknown
	Reason string
}

func (e *MalformedLevelError) Error() string {
	msg := "malformed level"
	if e.Source != "" {
		msg += " in " + e.Source
	}
	if e.Line > 0 {
		msg += fmt.Sprintf(" at line %d", e.Line)
	}
	if e.Level > 0 {
		msg += fmt.Sprintf(" (level %d)", e.Level)
	}
	return msg + ": " + e.Reason
}
