package game

import "errors"

var ErrEmptyPlaylist = errors.New("game: no levels to play")

// Playlist is the play order of levels by name. Its position only moves once
// the level it moves to has started.
type Playlist struct {
	names   []string
	current int
}

func NewPlaylist(names []string) *Playlist {
	return &Playlist{names: append([]string(nil), names...)}
}

func (p *Playlist) Len() int {
	return len(p.names)
}

// Current returns the name at the current position.
func (p *Playlist) Current() (string, error) {
	if len(p.names) == 0 {
		return "", ErrEmptyPlaylist
	}
	return p.names[p.current], nil
}

// Seek moves to name and reports whether it is in the playlist.
func (p *Playlist) Seek(name string) bool {
	for i, n := range p.names {
		if n == name {
			p.current = i
			return true
		}
	}
	return false
}

// Advance starts the level after the current one, wrapping at the end. On
// error the position is unchanged.
func (p *Playlist) Advance(start func(name string) error) error {
	if len(p.names) == 0 {
		return ErrEmptyPlaylist
	}
	next := (p.current + 1) % len(p.names)
	if err := start(p.names[next]); err != nil {
		return err
	}
	p.current = next
	return nil
}
