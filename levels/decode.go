package levels

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// UnknownTileError is returned when a level file holds a glyph with no tile.
type UnknownTileError struct {
	Glyph rune
	Row   int
	Col   int
}

func (e *UnknownTileError) Error() string {
	return fmt.Sprintf("levels: unknown tile %q at row %d col %d", e.Glyph, e.Row, e.Col)
}

// Decode reads a level: one row per line, one glyph per tile. A newline ends
// a row, a carriage return before it is ignored, and a last row without a
// trailing newline is kept.
func Decode(r io.Reader) (*Level, error) {
	br := bufio.NewReader(r)
	lvl := &Level{}
	var line []Tile
	pendingCR := false
	for {
		ch, _, err := br.ReadRune()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("levels: read: %w", err)
		}
		if pendingCR && ch != '\n' {
			return nil, &UnknownTileError{Glyph: '\r', Row: len(lvl.Tiles), Col: len(line)}
		}
		pendingCR = false
		switch ch {
		case '\n':
			lvl.Tiles = append(lvl.Tiles, line)
			line = nil
			continue
		case '\r':
			pendingCR = true
			continue
		}
		tile, ok := TileForGlyph(ch)
		if !ok {
			return nil, &UnknownTileError{Glyph: ch, Row: len(lvl.Tiles), Col: len(line)}
		}
		line = append(line, tile)
	}
	if pendingCR {
		return nil, &UnknownTileError{Glyph: '\r', Row: len(lvl.Tiles), Col: len(line)}
	}
	if len(line) > 0 {
		lvl.Tiles = append(lvl.Tiles, line)
	}
	return lvl, nil
}

// Parse decodes a level from a string.
func Parse(s string) (*Level, error) {
	return Decode(strings.NewReader(s))
}

// Encode writes lvl in the level file format, every row newline-terminated.
func Encode(w io.Writer, lvl *Level) error {
	if lvl == nil {
		return nil
	}
	bw := bufio.NewWriter(w)
	for _, row := range lvl.Tiles {
		for _, t := range row {
			if _, err := bw.WriteRune(t.Glyph()); err != nil {
				return err
			}
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}

func (l *Level) String() string {
	var sb strings.Builder
	_ = Encode(&sb, l)
	return sb.String()
}
