package levels

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

//go:embed *.bw
var LevelsFS embed.FS

// Dir is checked before the embedded levels so edited files take effect
// without a rebuild.
var Dir = "levels"

// LoadLevelFromFS loads and validates a level by name. The extension is
// optional.
func LoadLevelFromFS(name string) (*Level, error) {
	clean := cleanLevelName(name)
	data, err := os.ReadFile(filepath.Join(Dir, clean))
	if err != nil {
		data, err = fs.ReadFile(LevelsFS, clean)
	}
	if err != nil {
		return nil, fmt.Errorf("read level: %w", err)
	}
	return decodeNamed(clean, string(data))
}

// Load reads and validates a level file from disk.
func Load(path string) (*Level, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read level: %w", err)
	}
	return decodeNamed(filepath.Base(path), string(data))
}

// Names lists the embedded levels in play order.
func Names() []string {
	entries, err := fs.ReadDir(LevelsFS, ".")
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if IsLevelFile(e.Name()) {
			names = append(names, strings.TrimSuffix(e.Name(), Ext))
		}
	}
	sort.Strings(names)
	return names
}

func decodeNamed(name, data string) (*Level, error) {
	lvl, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("decode level %s: %w", name, err)
	}
	if err := lvl.Validate(); err != nil {
		return nil, fmt.Errorf("validate level %s: %w", name, err)
	}
	lvl.Name = strings.TrimSuffix(name, Ext)
	return lvl, nil
}

func cleanLevelName(name string) string {
	s := filepath.ToSlash(name)
	if after, ok := strings.CutPrefix(s, "levels/"); ok {
		s = after
	}
	if !IsLevelFile(s) {
		s += Ext
	}
	return s
}
