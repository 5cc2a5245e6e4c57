// Package levels loads Sokoban level catalogs from files, directories, the
// embedded default pack and the SQLite level library.
// This package depends on engine but engine does not depend on levels.
package levels

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/vovakirdan/tui-sokoban/internal/games/sokoban/engine"
	"github.com/vovakirdan/tui-sokoban/internal/games/sokoban/levels/formats"
	"github.com/vovakirdan/tui-sokoban/internal/storage"
)

// DefaultSource is the source name reported for the embedded pack.
const DefaultSource = "default.txt"

//go:embed data/default.txt
var defaultPack []byte

// ErrUnsupportedFormat is returned for files whose extension has no grammar.
var ErrUnsupportedFormat = errors.New("unsupported level format")

// Loader resolves a level source into a catalog.
type Loader struct {
	Root string // file or directory; empty selects the embedded pack
}

// NewLoader creates a new level loader.
func NewLoader(root string) *Loader {
	return &Loader{Root: root}
}

// Load is a shorthand for NewLoader(source).Catalog().
func Load(source string) (*engine.Catalog, error) {
	return NewLoader(source).Catalog()
}

// Catalog loads every level from the source and builds a catalog.
func (l *Loader) Catalog() (*engine.Catalog, error) {
	defs, err := l.LoadAll()
	if err != nil {
		return nil, err
	}
	return engine.NewCatalog(defs)
}

// LoadAll returns the level definitions of the source in order.
// Directories contribute every supported file, sorted by file name.
func (l *Loader) LoadAll() ([]engine.LevelDefinition, error) {
	if l.Root == "" {
		return Default()
	}

	info, err := os.Stat(l.Root)
	if err != nil {
		return nil, fmt.Errorf("reading level source: %w", err)
	}
	if !info.IsDir() {
		return l.LoadFile(l.Root)
	}

	entries, err := os.ReadDir(l.Root)
	if err != nil {
		return nil, fmt.Errorf("reading directory %s: %w", l.Root, err)
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() || !IsSupported(e.Name()) {
			continue
		}
		names = append(names, e.Name())
	}
	slices.Sort(names)

	var defs []engine.LevelDefinition
	for _, name := range names {
		fileDefs, err := l.LoadFile(filepath.Join(l.Root, name))
		if err != nil {
			return nil, err
		}
		defs = append(defs, fileDefs...)
	}
	if len(defs) == 0 {
		return nil, fmt.Errorf("directory %s: %w", l.Root, engine.ErrNoLevels)
	}
	return defs, nil
}

// LoadFile loads a single level file.
func (l *Loader) LoadFile(path string) ([]engine.LevelDefinition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading file %s: %w", path, err)
	}
	return Parse(data, filepath.Base(path))
}

// Parse routes data to the grammar matching the extension of source.
func Parse(data []byte, source string) ([]engine.LevelDefinition, error) {
	ext := strings.ToLower(filepath.Ext(source))
	switch {
	case slices.Contains(formats.TextExtensions(), ext):
		return formats.ParseText(data, source)
	case slices.Contains(formats.YAMLExtensions(), ext):
		return formats.ParseYAML(data, source)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
}

// IsSupported reports whether the file name has a level grammar.
func IsSupported(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	return slices.Contains(formats.TextExtensions(), ext) ||
		slices.Contains(formats.YAMLExtensions(), ext)
}

// Default returns the embedded default pack.
func Default() ([]engine.LevelDefinition, error) {
	return formats.ParseText(defaultPack, DefaultSource)
}

// Encode renders definitions in the text grammar.
func Encode(defs []engine.LevelDefinition) []byte {
	return formats.EncodeText(defs)
}

// LoadPack builds a catalog from a pack stored in the level library.
func LoadPack(store *storage.Store, name string) (*engine.Catalog, error) {
	data, err := store.PackSource(name)
	if err != nil {
		return nil, err
	}
	defs, err := formats.ParseText(data, name)
	if err != nil {
		return nil, err
	}
	return engine.NewCatalog(defs)
}

// ImportPack validates the levels in path and stores them as a named pack
// in the text grammar. Nothing is stored unless the text form parses back.
// It returns the number of stored levels.
func ImportPack(store *storage.Store, name, path string) (int, error) {
	defs, err := NewLoader(path).LoadAll()
	if err != nil {
		return 0, err
	}
	if _, err := engine.NewCatalog(defs); err != nil {
		return 0, err
	}

	names := make([]string, len(defs))
	for i, def := range defs {
		names[i] = def.Name
	}
	body := Encode(defs)
	if _, err := formats.ParseText(body, name); err != nil {
		return 0, fmt.Errorf("pack %q cannot be stored as text: %w", name, err)
	}
	if err := store.SavePack(name, filepath.Base(path), body, names); err != nil {
		return 0, err
	}
	return len(defs), nil
}
