package levels

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

//go:embed *.json
var LevelsFS embed.FS

// Dir is where maps are looked up on disk before the embedded copies.
const Dir = "levels"

// Read returns the raw JSON of a map by name, with or without extension.
func Read(name string) ([]byte, error) {
	file := FileName(name)
	if data, err := os.ReadFile(filepath.Join(Dir, file)); err == nil {
		return data, nil
	}
	data, err := fs.ReadFile(LevelsFS, file)
	if err != nil {
		return nil, fmt.Errorf("read level: %w", err)
	}
	return data, nil
}

// LoadLevel reads and parses a map by name.
func LoadLevel(name string) (*Level, error) {
	data, err := Read(name)
	if err != nil {
		return nil, err
	}
	lvl, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("level %s: %w", name, err)
	}
	return lvl, nil
}

// Names lists the embedded maps.
func Names() ([]string, error) {
	entries, err := fs.ReadDir(LevelsFS, ".")
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || filepath.Ext(e.Name()) != ".json" {
			continue
		}
		names = append(names, strings.TrimSuffix(e.Name(), ".json"))
	}
	return names, nil
}

// FileName normalizes a map name or path to its JSON file name.
func FileName(name string) string {
	base := filepath.Base(filepath.ToSlash(name))
	if filepath.Ext(base) != ".json" {
		base += ".json"
	}
	return base
}

// NameOf is the inverse of FileName.
func NameOf(path string) string {
	return strings.TrimSuffix(filepath.Base(path), ".json")
}

var errEmptyName = errors.New("empty level name")
