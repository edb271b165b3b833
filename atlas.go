package main

import (
	"bytes"
	"fmt"
	"image"
	_ "image/png"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
)

// Atlas is a sprite sheet cut into square frames, numbered row-major.
type Atlas struct {
	frames []*ebiten.Image
	size   int
}

// LoadAtlas reads a PNG sprite sheet from disk and slices it into frames of
// frameSize pixels.
func LoadAtlas(path string, frameSize int) (*Atlas, error) {
	if frameSize <= 0 {
		return nil, fmt.Errorf("atlas: invalid frame size %d", frameSize)
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("atlas: %w", err)
	}
	img, _, err := image.Decode(bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("atlas: decode %s: %w", path, err)
	}

	sheet := ebiten.NewImageFromImage(img)
	cols := sheet.Bounds().Dx() / frameSize
	rows := sheet.Bounds().Dy() / frameSize
	if cols == 0 || rows == 0 {
		return nil, fmt.Errorf("atlas: %s is smaller than one %dpx frame", path, frameSize)
	}
	frames := make([]*ebiten.Image, 0, cols*rows)
	for i := 0; i < cols*rows; i++ {
		col := i % cols
		row := i / cols
		r := image.Rect(col*frameSize, row*frameSize, col*frameSize+frameSize, row*frameSize+frameSize)
		frames = append(frames, sheet.SubImage(r).(*ebiten.Image))
	}
	return &Atlas{frames: frames, size: frameSize}, nil
}

// Frame returns the frame at index, or nil when the sheet has no such frame.
func (a *Atlas) Frame(index int) *ebiten.Image {
	if a == nil || index < 0 || index >= len(a.frames) {
		return nil
	}
	return a.frames[index]
}
