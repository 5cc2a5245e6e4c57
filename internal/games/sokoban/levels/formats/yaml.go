package formats

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-sokoban/internal/games/sokoban/engine"
)

// YAMLPack represents the YAML structure for a level pack file.
type YAMLPack struct {
	Name   string      `yaml:"name,omitempty"`
	Levels []YAMLLevel `yaml:"levels"`
}

// YAMLLevel represents a single level in YAML format.
type YAMLLevel struct {
	Name   string   `yaml:"name,omitempty"`
	Player []int    `yaml:"player,flow"`
	Crates [][]int  `yaml:"crates,flow,omitempty"`
	Map    []string `yaml:"map"`
}

// ParseYAML parses a YAML level pack.
func ParseYAML(data []byte, source string) ([]engine.LevelDefinition, error) {
	var pack YAMLPack
	if err := yaml.Unmarshal(data, &pack); err != nil {
		return nil, &engine.MalformedLevelError{Source: source, Reason: fmt.Sprintf("yaml unmarshal: %v", err)}
	}
	if len(pack.Levels) == 0 {
		return nil, &engine.MalformedLevelError{Source: source, Reason: "no levels found"}
	}

	levels := make([]engine.LevelDefinition, 0, len(pack.Levels))
	for i, yl := range pack.Levels {
		def, err := yl.definition()
		if err != nil {
			return nil, &engine.MalformedLevelError{Source: source, Level: i + 1, Reason: err.Error()}
		}
		levels = append(levels, def)
	}
	return levels, nil
}

// definition converts the YAML level into a validated level.
func (yl YAMLLevel) definition() (engine.LevelDefinition, error) {
	player, err := pairToCoord(yl.Player)
	if err != nil {
		return engine.LevelDefinition{}, fmt.Errorf("player: %w", err)
	}

	crates := make([]engine.Coord, 0, len(yl.Crates))
	for _, p := range yl.Crates {
		c, err := pairToCoord(p)
		if err != nil {
			return engine.LevelDefinition{}, fmt.Errorf("crate: %w", err)
		}
		crates = append(crates, c)
	}

	m, err := engine.ParseMap(yl.Map)
	if err != nil {
		return engine.LevelDefinition{}, err
	}

	def := engine.LevelDefinition{
		Name:   strings.TrimSpace(yl.Name),
		Map:    m,
		Player: player,
		Crates: crates,
	}
	if err := def.Validate(); err != nil {
		return engine.LevelDefinition{}, err
	}
	if err := checkLevel(def); err != nil {
		return engine.LevelDefinition{}, err
	}
	return def, nil
}

func pairToCoord(p []int) (engine.Coord, error) {
	if len(p) != 2 {
		return engine.Coord{}, fmt.Errorf("expected [x, y], got %v", p)
	}
	return engine.C(p[0], p[1]), nil
}

// EncodeYAML renders levels as a YAML pack accepted by ParseYAML.
func EncodeYAML(name string, levels []engine.LevelDefinition) ([]byte, error) {
	pack := YAMLPack{Name: name, Levels: make([]YAMLLevel, len(levels))}
	for i, lvl := range levels {
		yl := YAMLLevel{
			Name:   lvl.Name,
			Player: []int{lvl.Player.X, lvl.Player.Y},
			Map:    lvl.Map.Rows(),
		}
		for _, c := range lvl.Crates {
			yl.Crates = append(yl.Crates, []int{c.X, c.Y})
		}
		pack.Levels[i] = yl
	}

	data, err := yaml.Marshal(&pack)
	if err != nil {
		return nil, fmt.Errorf("yaml marshal: %w", err)
	}
	return data, nil
}

// YAMLExtensions returns file extensions handled by the YAML grammar.
func YAMLExtensions() []string {
	return []string{".yaml", ".yml"}
}
