package prefabs

import (
	"embed"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// Dir is the on-disk prefab directory. Files there shadow the embedded
// copies so edits show up without a rebuild.
const Dir = "prefabs"

//go:embed *.yaml scripts/*.tengo
var FS embed.FS

// Load reads a prefab spec such as "enemy.yaml".
func Load(name string) ([]byte, error) {
	return read(cleanPrefabPath(name))
}

// LoadScript reads a script from the scripts subdirectory.
func LoadScript(name string) ([]byte, error) {
	return read(cleanScriptPath(name))
}

func read(clean string) ([]byte, error) {
	if data, err := os.ReadFile(filepath.Join(Dir, filepath.FromSlash(clean))); err == nil {
		return data, nil
	}
	return fs.ReadFile(FS, clean)
}

func cleanPrefabPath(path string) string {
	s := filepath.ToSlash(path)
	if after, ok := strings.CutPrefix(s, Dir+"/"); ok {
		return after
	}
	return s
}

func cleanScriptPath(path string) string {
	s := strings.TrimPrefix(cleanPrefabPath(path), "scripts/")
	return "scripts/" + s
}
