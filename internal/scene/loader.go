package scene

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

// DefaultName is the name of the embedded scene.
const DefaultName = "demo"

//go:embed defaults/demo.yaml
var defaultSceneYAML []byte

// Load loads a scene.
// Search order: customPath -> ~/.shapekit/scenes/<name>.yaml -> ./scenes/<name>.yaml -> embedded default.
// An empty name means DefaultName. Files that exist but fail to parse are
// reported rather than skipped.
func Load(customPath, name string) (*Scene, error) {
	if customPath != "" {
		return loadFile(customPath)
	}
	if name == "" {
		name = DefaultName
	}

	candidates := []string{filepath.Join("scenes", name+".yaml")}
	if dir := userSceneDir(); dir != "" {
		candidates = slices.Insert(candidates, 0, filepath.Join(dir, name+".yaml"))
	}
	for _, path := range candidates {
		sc, err := loadFile(path)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		return sc, err
	}

	if name == DefaultName {
		return Default()
	}
	return nil, fmt.Errorf("scene %q not found: %w", name, fs.ErrNotExist)
}

// Default returns the embedded demo scene.
func Default() (*Scene, error) {
	sc, err := Parse(defaultSceneYAML)
	if err != nil {
		return nil, fmt.Errorf("embedded scene: %w", err)
	}
	return sc, nil
}

func loadFile(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scene %s: %w", path, err)
	}
	sc, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse scene %s: %w", path, err)
	}
	return sc, nil
}

// Available lists the scene names that Load can find without a custom
// path, sorted and without duplicates.
func Available() []string {
	names := []string{DefaultName}
	dirs := []string{"scenes"}
	if dir := userSceneDir(); dir != "" {
		dirs = append(dirs, dir)
	}
	for _, dir := range dirs {
		entries, err := os.ReadDir(dir)
		if err != nil {
			continue
		}
		for _, e := range entries {
			if e.IsDir() || filepath.Ext(e.Name()) != ".yaml" {
				continue
			}
			names = append(names, strings.TrimSuffix(e.Name(), ".yaml"))
		}
	}
	slices.Sort(names)
	return slices.Compact(names)
}

// Save writes the scene to the user scene directory as <name>.yaml and
// returns the path written.
func Save(sc *Scene, name string) (string, error) {
	dir := userSceneDir()
	if dir == "" {
		return "", errors.New("no home directory for saved scenes")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create scene dir: %w", err)
	}
	data, err := sc.Encode()
	if err != nil {
		return "", err
	}
	path := filepath.Join(dir, name+".yaml")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return "", fmt.Errorf("write scene %s: %w", path, err)
	}
	return path, nil
}

// userSceneDir returns ~/.shapekit/scenes, or empty if home is unavailable.
func userSceneDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".shapekit", "scenes")
}
