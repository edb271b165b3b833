package prefabs

import (
	"embed"
	"os"
	"path/filepath"
	"strings"
)

//go:embed *.yaml
var PrefabsFS embed.FS

// Dir holds on-disk spec overrides. A file there wins over the embedded copy
// of the same name, so tuning can be edited while the game runs.
var Dir = "prefabs"

// Load returns the contents of a spec file, disk copy first.
func Load(name string) ([]byte, error) {
	clean := cleanPrefabPath(name)
	if data, err := os.ReadFile(diskPrefabPath(clean)); err == nil {
		return data, nil
	}
	return PrefabsFS.ReadFile(clean)
}

// Overridden reports whether name is currently read from Dir.
func Overridden(name string) bool {
	info, err := os.Stat(diskPrefabPath(cleanPrefabPath(name)))
	return err == nil && info.Mode().IsRegular()
}

// cleanPrefabPath accepts "world.yaml" and "prefabs/world.yaml" alike.
func cleanPrefabPath(path string) string {
	s := filepath.ToSlash(path)
	if after, ok := strings.CutPrefix(s, "prefabs/"); ok {
		return after
	}
	return s
}

func diskPrefabPath(clean string) string {
	return filepath.Join(Dir, filepath.FromSlash(clean))
}
