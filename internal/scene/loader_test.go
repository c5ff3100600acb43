package scene

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"testing"
)

func writeScene(t *testing.T, dir, name, body string) string {
	t.Helper()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(dir, name+".yaml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func isolate(t *testing.T) (home, work string) {
	t.Helper()
	home = t.TempDir()
	work = t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(work)
	return home, work
}

func TestLoadEmbeddedDefault(t *testing.T) {
	isolate(t)

	sc, err := Load("", "")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if sc.Name != DefaultName || len(sc.Shapes) == 0 || len(sc.Queries) == 0 {
		t.Errorf("default scene = %q with %d shapes, %d queries", sc.Name, len(sc.Shapes), len(sc.Queries))
	}
}

func TestLoadSearchOrder(t *testing.T) {
	home, work := isolate(t)

	writeScene(t, filepath.Join(work, "scenes"), "demo", "name: local\nshapes: [{name: a, circle: [1, 1, 1]}]")
	sc, err := Load("", "demo")
	if err != nil || sc.Name != "local" {
		t.Fatalf("Load() = %v, %v, expected the local scene", sc, err)
	}

	writeScene(t, filepath.Join(home, ".shapekit", "scenes"), "demo", "name: user\nshapes: [{name: a, circle: [1, 1, 1]}]")
	sc, err = Load("", "demo")
	if err != nil || sc.Name != "user" {
		t.Fatalf("Load() = %v, %v, expected the user scene", sc, err)
	}

	custom := writeScene(t, t.TempDir(), "other", "name: custom\nshapes: [{name: a, circle: [1, 1, 1]}]")
	sc, err = Load(custom, "demo")
	if err != nil || sc.Name != "custom" {
		t.Fatalf("Load(custom) = %v, %v, expected the custom scene", sc, err)
	}
}

func TestLoadErrors(t *testing.T) {
	_, work := isolate(t)

	if _, err := Load(filepath.Join(work, "missing.yaml"), ""); !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("Load(missing custom) error = %v, expected ErrNotExist", err)
	}
	if _, err := Load("", "nowhere"); !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("Load(unknown name) error = %v, expected ErrNotExist", err)
	}

	writeScene(t, filepath.Join(work, "scenes"), "broken", "shapes: [{name: a}]")
	var verr ValidationError
	if _, err := Load("", "broken"); !errors.As(err, &verr) {
		t.Errorf("Load(broken) error = %v, expected ValidationError", err)
	}
}

func TestAvailableAndSave(t *testing.T) {
	home, work := isolate(t)
	writeScene(t, filepath.Join(work, "scenes"), "local", "shapes: [{name: a, circle: [1, 1, 1]}]")

	sc, err := Default()
	if err != nil {
		t.Fatal(err)
	}
	path, err := Save(sc, "saved")
	if err != nil {
		t.Fatalf("Save() failed: %v", err)
	}
	if path != filepath.Join(home, ".shapekit", "scenes", "saved.yaml") {
		t.Errorf("Save() path = %s", path)
	}

	got := Available()
	if !slices.Equal(got, []string{"demo", "local", "saved"}) {
		t.Errorf("Available() = %v, expected [demo local saved]", got)
	}

	again, err := Load("", "saved")
	if err != nil {
		t.Fatalf("Load(saved) failed: %v", err)
	}
	if len(again.Shapes) != len(sc.Shapes) {
		t.Errorf("saved scene has %d shapes, expected %d", len(again.Shapes), len(sc.Shapes))
	}
}
