package formats

import (
	"errors"
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-sokoban/internal/games/sokoban/engine"
)

// checkLevel applies the rules every level file grammar shares on top of
// engine validation. Levels that pass can be written by EncodeText and read
// back unchanged, which is how the level library stores them.
func checkLevel(def engine.LevelDefinition) error {
	if strings.ContainsAny(def.Name, "\r\n") {
		return errors.New("level name must be a single line")
	}
	for y, row := range def.Map {
		if len(row) == 0 {
			return fmt.Errorf("map row %d is empty", y+1)
		}
	}
	if len(def.Map.Targets()) == 0 {
		return errors.New("map has no target cells")
	}
	return nil
}
