package levels

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// Ext is the level file extension.
const Ext = ".bw"

var (
	ErrEmptyLevel     = errors.New("levels: level has no rows")
	ErrNoSpawn        = errors.New("levels: level has no spawn tile")
	ErrMultipleSpawns = errors.New("levels: level has more than one spawn tile")
	ErrRaggedRows     = errors.New("levels: rows have different lengths")
)

// Level is a decoded tile grid, row 0 at the top. It is read-only once decoded.
type Level struct {
	Name  string
	Tiles [][]Tile
}

// Rows returns the number of rows.
func (l *Level) Rows() int {
	if l == nil {
		return 0
	}
	return len(l.Tiles)
}

// Width returns the length of the longest row.
func (l *Level) Width() int {
	if l == nil {
		return 0
	}
	w := 0
	for _, row := range l.Tiles {
		w = max(w, len(row))
	}
	return w
}

// At returns the tile at (row, col); cells outside a row read as Empty.
func (l *Level) At(row, col int) Tile {
	if l == nil || row < 0 || row >= len(l.Tiles) || col < 0 || col >= len(l.Tiles[row]) {
		return Empty
	}
	return l.Tiles[row][col]
}

// Count returns how many cells hold t.
func (l *Level) Count(t Tile) int {
	if l == nil {
		return 0
	}
	n := 0
	for _, row := range l.Tiles {
		for _, tile := range row {
			if tile == t {
				n++
			}
		}
	}
	return n
}

// Validate rejects content the simulation cannot run: no rows, rows of
// different lengths, or anything but exactly one spawn.
func (l *Level) Validate() error {
	if l.Rows() == 0 || l.Width() == 0 {
		return ErrEmptyLevel
	}
	width := len(l.Tiles[0])
	for i, row := range l.Tiles {
		if len(row) != width {
			return fmt.Errorf("%w: row %d has %d tiles, row 0 has %d", ErrRaggedRows, i, len(row), width)
		}
	}
	switch n := l.Count(Spawn); {
	case n == 0:
		return ErrNoSpawn
	case n > 1:
		return fmt.Errorf("%w: found %d", ErrMultipleSpawns, n)
	}
	return nil
}

// IsLevelFile reports whether path has the level file extension.
func IsLevelFile(path string) bool {
	return strings.EqualFold(filepath.Ext(path), Ext)
}
