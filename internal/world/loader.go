package world

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Loader loads world definition files from a directory tree.
type Loader struct {
	Root string
}

// NewLoader creates a loader rooted at the given directory.
func NewLoader(root string) *Loader {
	return &Loader{Root: root}
}

// LoadAll recursively scans and loads all world files under the root.
// Returns worlds sorted by id for deterministic ordering; files that
// fail to parse are skipped.
func (l *Loader) LoadAll() ([]*World, error) {
	var worlds []*World

	err := filepath.WalkDir(l.Root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		ext := strings.ToLower(filepath.Ext(path))
		if ext != ".yaml" && ext != ".yml" {
			return nil
		}

		w, loadErr := l.LoadFile(path)
		if loadErr != nil {
			// Skip invalid files
			return nil
		}
		worlds = append(worlds, w)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("world: scanning %s: %w", l.Root, err)
	}

	sort.Slice(worlds, func(i, j int) bool {
		return worlds[i].ID < worlds[j].ID
	})
	return worlds, nil
}

// LoadFile loads a single world definition file.
func (l *Loader) LoadFile(path string) (*World, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("world: reading %s: %w", path, err)
	}
	w, err := ParseYAML(data)
	if err != nil {
		return nil, fmt.Errorf("world: parsing %s: %w", path, err)
	}
	return w, nil
}
