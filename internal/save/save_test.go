package save

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/vovakirdan/tui-spider/internal/engine"
)

func testSnapshot(t *testing.T) engine.Snapshot {
	t.Helper()
	g := engine.New(nil, engine.Scoring{})
	g.NewGame(engine.TwoSuit, "savetest", true)
	return g.Snapshot()
}

func TestWriteLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "saved.json")
	snap := testSnapshot(t)

	if err := Write(path, snap); err != nil {
		t.Fatalf("Write() failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if loaded == nil {
		t.Fatal("Load() returned no snapshot")
	}
	if !reflect.DeepEqual(*loaded, snap) {
		t.Error("snapshot did not round-trip through the save file")
	}
}

func TestLoadMissingFile(t *testing.T) {
	loaded, err := Load(filepath.Join(t.TempDir(), "nothing.json"))
	if err != nil {
		t.Fatalf("Load() of missing file errored: %v", err)
	}
	if loaded != nil {
		t.Error("missing file should mean no saved game")
	}
}

func TestLoadCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "saved.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o600); err != nil {
		t.Fatal(err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load() of corrupt file errored: %v", err)
	}
	if loaded != nil {
		t.Error("corrupt file should mean no saved game")
	}
}

func TestLoadWrongVersion(t *testing.T) {
	path := filepath.Join(t.TempDir(), "saved.json")
	snap := testSnapshot(t)
	snap.Version = 99
	if err := Write(path, snap); err != nil {
		t.Fatal(err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load() errored: %v", err)
	}
	if loaded != nil {
		t.Error("unknown snapshot version should mean no saved game")
	}
}

func TestDelete(t *testing.T) {
	path := filepath.Join(t.TempDir(), "saved.json")
	if err := Write(path, testSnapshot(t)); err != nil {
		t.Fatal(err)
	}

	if err := Delete(path); err != nil {
		t.Fatalf("Delete() failed: %v", err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("save file still exists after Delete()")
	}

	// Deleting again is fine.
	if err := Delete(path); err != nil {
		t.Errorf("Delete() of missing file errored: %v", err)
	}
}

func TestWriteCreatesNestedDirs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "deep", "nested", "saved.json")
	if err := Write(path, testSnapshot(t)); err != nil {
		t.Fatalf("Write() with nested path failed: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("save file not created: %v", err)
	}
}
