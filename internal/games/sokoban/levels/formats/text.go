// Package formats provides the level file grammars for Sokoban.
package formats

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/vovakirdan/tui-sokoban/internal/games/sokoban/engine"
)

// Text grammar keywords.
const (
	keyLevel    = "LEVEL"
	keyEndLevel = "END LEVEL"
	keyPlayer   = "P:"
	keyCrates   = "C:"
	commentMark = ";"
)

// textBlock accumulates one LEVEL ... END LEVEL block.
type textBlock struct {
	startLine int
	name      string
	player    *engine.Coord
	crates    []engine.Coord
	rows      [][]engine.Cell
}

// ParseText parses the block-based text level grammar:
//
//	LEVEL <name>
//	P: x,y
//	C: x,y x,y
//	#--X#
//	END LEVEL
//
// Blank lines and lines starting with ';' are ignored.
func ParseText(data []byte, source string) ([]engine.LevelDefinition, error) {
	var (
		levels []engine.LevelDefinition
		block  *textBlock
		lineNo int
	)

	fail := func(line int, format string, args ...any) error {
		return &engine.MalformedLevelError{
			Source: source,
			Line:   line,
			Level:  len(levels) + 1,
			Reason: fmt.Sprintf(format, args...),
		}
	}

	scanner := bufio.NewScanner(bytes.NewReader(data))
	for scanner.Scan() {
		lineNo++
		line := strings.TrimRight(scanner.Text(), " \t\r")
		if line == "" || strings.HasPrefix(line, commentMark) {
			continue
		}

		switch {
		case line == keyEndLevel:
			if block == nil {
				return nil, fail(lineNo, "END LEVEL without LEVEL")
			}
			def, err := block.definition()
			if err != nil {
				return nil, fail(block.startLine, "%v", err)
			}
			levels = append(levels, def)
			block = nil

		case strings.HasPrefix(line, keyLevel):
			if block != nil {
				return nil, fail(lineNo, "LEVEL inside unterminated block started at line %d", block.startLine)
			}
			block = &textBlock{
				startLine: lineNo,
				name:      strings.TrimSpace(strings.TrimPrefix(line, keyLevel)),
			}

		case block == nil:
			return nil, fail(lineNo, "content outside LEVEL block: %q", line)

		case strings.HasPrefix(line, keyPlayer):
			if block.player != nil {
				return nil, fail(lineNo, "more than one player position")
			}
			c, err := parseCoord(strings.TrimSpace(strings.TrimPrefix(line, keyPlayer)))
			if err != nil {
				return nil, fail(lineNo, "player: %v", err)
			}
			block.player = &c

		case strings.HasPrefix(line, keyCrates):
			for _, field := range strings.Fields(strings.TrimPrefix(line, keyCrates)) {
				c, err := parseCoord(field)
				if err != nil {
					return nil, fail(lineNo, "crate: %v", err)
				}
				block.crates = append(block.crates, c)
			}

		default:
			row, err := engine.ParseRow(line)
			if err != nil {
				return nil, fail(lineNo, "%v", err)
			}
			block.rows = append(block.rows, row)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading %s: %w", source, err)
	}

	if block != nil {
		return nil, fail(block.startLine, "LEVEL block is not terminated by END LEVEL")
	}
	if len(levels) == 0 {
		return nil, fail(0, "no levels found")
	}
	return levels, nil
}

// definition converts the block into a validated level.
func (b *textBlock) definition() (engine.LevelDefinition, error) {
	if b.player == nil {
		return engine.LevelDefinition{}, errors.New("missing player position (P: x,y)")
	}

	def := engine.LevelDefinition{
		Name:   b.name,
		Map:    engine.Map(b.rows),
		Player: *b.player,
		Crates: b.crates,
	}
	if err := def.Validate(); err != nil {
		return engine.LevelDefinition{}, err
	}
	if err := checkLevel(def); err != nil {
		return engine.LevelDefinition{}, err
	}
	return def, nil
}

// parseCoord parses "x,y".
func parseCoord(s string) (engine.Coord, error) {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return engine.Coord{}, fmt.Errorf("expected x,y, got %q", s)
	}
	x, err := strconv.Atoi(strings.TrimSpace(xs))
	if err != nil {
		return engine.Coord{}, fmt.Errorf("bad x in %q", s)
	}
	y, err := strconv.Atoi(strings.TrimSpace(ys))
	if err != nil {
		return engine.Coord{}, fmt.Errorf("bad y in %q", s)
	}
	return engine.C(x, y), nil
}

// EncodeText renders levels in the text grammar accepted by ParseText.
func EncodeText(levels []engine.LevelDefinition) []byte {
	var b bytes.Buffer
	for i, lvl := range levels {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(keyLevel)
		if lvl.Name != "" {
			b.WriteString(" " + lvl.Name)
		}
		b.WriteByte('\n')
		fmt.Fprintf(&b, "%s %d,%d\n", keyPlayer, lvl.Player.X, lvl.Player.Y)
		if len(lvl.Crates) > 0 {
			b.WriteString(keyCrates)
			for _, c := range lvl.Crates {
				fmt.Fprintf(&b, " %d,%d", c.X, c.Y)
			}
			b.WriteByte('\n')
		}
		for _, row := range lvl.Map.Rows() {
			b.WriteString(row + "\n")
		}
		b.WriteString(keyEndLevel + "\n")
	}
	return b.Bytes()
}

// TextExtensions returns file extensions handled by the text grammar.
func TextExtensions() []string {
	return []string{".txt", ".lvl"}
}
