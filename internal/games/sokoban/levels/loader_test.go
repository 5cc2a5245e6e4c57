package levels

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/vovakirdan/tui-sokoban/internal/games/sokoban/engine"
	"github.com/vovakirdan/tui-sokoban/internal/storage"
)

// getTestdataPath returns path to testdata/levels.
func getTestdataPath() string {
	_, filename, _, _ := runtime.Caller(0)
	return filepath.Join(filepath.Dir(filename), "testdata", "levels")
}

func TestLoadDefault(t *testing.T) {
	cat, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") failed: %v", err)
	}
	if cat.Count() != 6 {
		t.Errorf("expected 6 embedded levels, got %d", cat.Count())
	}
	if names := cat.Names(); names[0] != "First push" {
		t.Errorf("expected first level 'First push', got %q", names[0])
	}
}

func TestDefaultLevelsStartUnsolved(t *testing.T) {
	defs, err := Default()
	if err != nil {
		t.Fatalf("Default failed: %v", err)
	}
	for i, def := range defs {
		if engine.IsVictory(engine.NewSession(def)) {
			t.Errorf("level %d (%s) starts solved", i+1, def.Name)
		}
		if len(def.Crates) < len(def.Map.Targets()) {
			t.Errorf("level %d (%s) has fewer crates than targets", i+1, def.Name)
		}
	}
}

func TestDefaultFirstLevelSolves(t *testing.T) {
	cat, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	ctrl := engine.NewController(cat, 1)
	ctrl.HandleInput(engine.MoveEvent(engine.DirRight))
	ctrl.HandleInput(engine.MoveEvent(engine.DirRight))
	if !ctrl.State().Victory {
		t.Error("expected two pushes right to solve the first level")
	}
}

func TestLoaderDirectory(t *testing.T) {
	defs, err := NewLoader(getTestdataPath()).LoadAll()
	if err != nil {
		t.Fatalf("LoadAll failed: %v", err)
	}
	if len(defs) != 2 {
		t.Fatalf("expected 2 levels, got %d", len(defs))
	}
	// Sorted by file name: the text file comes first.
	if defs[0].Name != "Intro" || defs[1].Name != "Twins" {
		t.Errorf("unexpected order: %q, %q", defs[0].Name, defs[1].Name)
	}
}

func TestLoaderFile(t *testing.T) {
	cat, err := Load(filepath.Join(getTestdataPath(), "02-more.yaml"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cat.Count() != 1 {
		t.Errorf("expected 1 level, got %d", cat.Count())
	}
}

func TestLoaderErrors(t *testing.T) {
	dir := t.TempDir()

	unsupported := filepath.Join(dir, "levels.json")
	os.WriteFile(unsupported, []byte("{}"), 0o644)
	if _, err := Load(unsupported); !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("expected ErrUnsupportedFormat, got %v", err)
	}

	if _, err := Load(filepath.Join(dir, "missing.txt")); err == nil {
		t.Error("expected error for missing file")
	}

	empty := filepath.Join(dir, "empty")
	os.Mkdir(empty, 0o755)
	if _, err := Load(empty); !errors.Is(err, engine.ErrNoLevels) {
		t.Errorf("expected ErrNoLevels for empty directory, got %v", err)
	}

	broken := filepath.Join(dir, "broken.txt")
	os.WriteFile(broken, []byte("LEVEL\n#-X#\nEND LEVEL\n"), 0o644)
	var mle *engine.MalformedLevelError
	if _, err := Load(broken); !errors.As(err, &mle) {
		t.Errorf("expected *MalformedLevelError, got %v", err)
	} else if mle.Source != "broken.txt" {
		t.Errorf("expected source broken.txt, got %q", mle.Source)
	}
}

func TestImportAndLoadPack(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "levels.db"))
	if err != nil {
		t.Fatalf("storage.Open failed: %v", err)
	}
	defer store.Close()

	n, err := ImportPack(store, "fixtures", getTestdataPath())
	if err != nil {
		t.Fatalf("ImportPack failed: %v", err)
	}
	if n != 2 {
		t.Errorf("expected 2 imported levels, got %d", n)
	}

	cat, err := LoadPack(store, "fixtures")
	if err != nil {
		t.Fatalf("LoadPack failed: %v", err)
	}
	if cat.Count() != 2 {
		t.Errorf("expected 2 levels from pack, got %d", cat.Count())
	}
	def, _ := cat.Get(2)
	if def.Name != "Twins" || len(def.Crates) != 2 {
		t.Errorf("unexpected level from pack: %+v", def)
	}

	names, err := store.PackLevelNames("fixtures")
	if err != nil || len(names) != 2 || names[0] != "Intro" {
		t.Errorf("PackLevelNames = %v, %v", names, err)
	}

	if _, err := LoadPack(store, "nope"); !errors.Is(err, storage.ErrPackNotFound) {
		t.Errorf("expected ErrPackNotFound, got %v", err)
	}
}

func TestImportRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		file string
		data string
	}{
		{"no target", "bad.txt", "LEVEL\nP: 1,0\n#--#\nEND LEVEL\n"},
		{"empty yaml row", "bad.yaml", "levels:\n  - player: [1, 2]\n    map: ['#####', '', '#--X#', '#####']\n"},
		{"multi-line yaml name", "bad.yaml", "levels:\n  - name: \"a\\nb\"\n    player: [1, 0]\n    map: ['#-X#']\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store, err := storage.Open(filepath.Join(t.TempDir(), "levels.db"))
			if err != nil {
				t.Fatalf("storage.Open failed: %v", err)
			}
			defer store.Close()

			bad := filepath.Join(t.TempDir(), tt.file)
			if err := os.WriteFile(bad, []byte(tt.data), 0o644); err != nil {
				t.Fatal(err)
			}
			if _, err := ImportPack(store, "bad", bad); err == nil {
				t.Fatal("expected import of invalid pack to fail")
			}

			packs, _ := store.ListPacks()
			if len(packs) != 0 {
				t.Errorf("invalid pack must not be stored, got %v", packs)
			}
		})
	}
}

func TestImportedYAMLReloads(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "levels.db"))
	if err != nil {
		t.Fatalf("storage.Open failed: %v", err)
	}
	defer store.Close()

	src := filepath.Join(t.TempDir(), "jagged.yaml")
	data := "levels:\n  - name: '  Jagged  '\n    player: [1, 1]\n    crates: [[2, 1]]\n    map: ['###', '#--X#', '#####']\n"
	if err := os.WriteFile(src, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := ImportPack(store, "jagged", src); err != nil {
		t.Fatalf("ImportPack failed: %v", err)
	}

	cat, err := LoadPack(store, "jagged")
	if err != nil {
		t.Fatalf("stored pack does not load: %v", err)
	}
	def, _ := cat.Get(1)
	if def.Name != "Jagged" || def.Player != engine.C(1, 1) || def.Map.Height() != 3 {
		t.Errorf("pack changed through storage: %+v", def)
	}
}
