// Copyright 2026 Nick White.
// Use of this source code is governed by the GPLv3
// license that can be found in the LICENSE file.

package gridheal

import (
	"image"
	"image/draw"
)

// bgThreshold is the grayscale value above which a pixel counts as
// background; the midpoint of the 8 bit range.
const bgThreshold = 128

// PixelGrid holds one state per source image pixel, row major. It is
// sized once at construction and mutated in place afterwards, never
// resized.
type PixelGrid struct {
	cells [][]PixelState
}

// NewPixelGrid classifies every pixel of img as Background or
// Foreground by its grayscale value.
func NewPixelGrid(img image.Image) *PixelGrid {
	b := img.Bounds()
	gray := image.NewGray(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(gray, gray.Bounds(), img, b.Min, draw.Src)

	cells := make([][]PixelState, b.Dy())
	for row := range cells {
		cells[row] = make([]PixelState, b.Dx())
		for col := range cells[row] {
			if gray.GrayAt(col, row).Y > bgThreshold {
				cells[row][col] = Background
			} else {
				cells[row][col] = Foreground
			}
		}
	}

	return &PixelGrid{cells: cells}
}

// Height returns the number of rows in the grid.
func (g *PixelGrid) Height() int {
	return len(g.cells)
}

// Width returns the number of columns in the grid.
func (g *PixelGrid) Width() int {
	if len(g.cells) == 0 {
		return 0
	}
	return len(g.cells[0])
}

func (g *PixelGrid) inBounds(col, row int) bool {
	return 0 <= row && row < g.Height() && 0 <= col && col < g.Width()
}

// StateAt returns the state of the cell at (col, row), which must be
// in bounds.
func (g *PixelGrid) StateAt(col, row int) PixelState {
	return g.cells[row][col]
}

// ErasePixel marks the cell at (col, row) Removed, and flags each of
// its 8 neighbours that is still Foreground as Adjacent. The caller
// guarantees the target is in bounds and was foreground before grid
// removal began; an out of bounds target panics rather than healing
// from a corrupt grid.
func (g *PixelGrid) ErasePixel(col, row int) {
	g.cells[row][col] = Removed

	for rowOff := -1; rowOff <= 1; rowOff++ {
		for colOff := -1; colOff <= 1; colOff++ {
			r := row + rowOff
			c := col + colOff
			if !g.inBounds(c, r) {
				continue
			}
			if g.cells[r][c] == Foreground {
				g.cells[r][c] = Adjacent
			}
		}
	}
}
