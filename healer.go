// Copyright 2026 Nick White.
// Use of this source code is governed by the GPLv3
// license that can be found in the LICENSE file.

package gridheal

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"log"
)

// HealedColor is painted onto the output image for each healed pixel.
var HealedColor color.Color = color.Black

// Centroid is the mean position of a region's pixels. It is
// fractional, as it is only ever compared against other centroids,
// never drawn.
type Centroid struct {
	Row, Col float64
}

// Region is one maximal 8-connected group of adjacent pixels. Its
// anchor is the first of its pixels reached by the row major grouping
// scan, not a central point, and it is the anchors, not the
// centroids, that connecting lines are drawn between.
type Region struct {
	ID        GroupID
	Centroid  Centroid
	AnchorRow int
	AnchorCol int
	Pixels    int
}

// Healer repairs the gaps left in curves after grid lines have been
// erased from a binarised image. One Healer handles one image: build
// it, erase every grid line pixel, then call Heal once. A Healer owns
// its grid and region records outright, so separate Healers can
// safely process separate images concurrently.
type Healer struct {
	grid          *PixelGrid
	closeDistance float64
	nextGroup     GroupID
	regions       []Region // creation order

	// Logger, if set, receives progress lines.
	Logger *log.Logger
}

// NewHealer builds a Healer over the pixel states of img. Regions
// whose centroids lie strictly closer than closeDistance are
// connected during Heal.
func NewHealer(img image.Image, closeDistance float64) *Healer {
	return &Healer{
		grid:          NewPixelGrid(img),
		closeDistance: closeDistance,
		nextGroup:     GroupFirst,
	}
}

func (h *Healer) log(v ...interface{}) {
	if h.Logger != nil {
		h.Logger.Println(v...)
	}
}

// Grid returns the Healer's pixel grid, for callers that want to
// inspect per-pixel classification after erasing or healing.
func (h *Healer) Grid() *PixelGrid {
	return h.grid
}

// Regions returns the regions found by Heal, in creation order. It is
// empty before Heal has run.
func (h *Healer) Regions() []Region {
	rs := make([]Region, len(h.regions))
	copy(rs, h.regions)
	return rs
}

// ErasePixel reports one erased grid line pixel; see
// PixelGrid.ErasePixel for the contract.
func (h *Healer) ErasePixel(col, row int) {
	h.grid.ErasePixel(col, row)
}

// EraseRow erases every cell of one grid row that was foreground when
// the call was made. Membership is decided up front, as erasing one
// cell reflags its still-foreground neighbours along the row.
func (h *Healer) EraseRow(row int) {
	var cols []int
	for col := 0; col < h.grid.Width(); col++ {
		if h.grid.StateAt(col, row) == Foreground {
			cols = append(cols, col)
		}
	}
	for _, col := range cols {
		h.grid.ErasePixel(col, row)
	}
}

// EraseCol erases every cell of one grid column that was foreground
// when the call was made.
func (h *Healer) EraseCol(col int) {
	var rows []int
	for row := 0; row < h.grid.Height(); row++ {
		if h.grid.StateAt(col, row) == Foreground {
			rows = append(rows, row)
		}
	}
	for _, row := range rows {
		h.grid.ErasePixel(col, row)
	}
}

// Heal groups the adjacent pixels left behind by erasure into
// regions, then draws a connecting line between every pair of regions
// whose centroids lie within the close distance, painting the
// connections onto out. It runs each phase exactly once; newly joined
// regions are not re-examined, and a second Heal on the same Healer
// is not a no-op.
func (h *Healer) Heal(out draw.Image) {
	h.log("heal")

	h.groupContiguousAdjacentPixels()
	h.connectCloseGroups(out)
}

// groupContiguousAdjacentPixels scans the grid row by row and starts
// a new region at each cell still marked Adjacent. The scan order
// fixes both the group id sequence and each region's anchor, so the
// results are reproducible for a given grid.
func (h *Healer) groupContiguousAdjacentPixels() {
	h.log("groupContiguousAdjacentPixels")

	for row := 0; row < h.grid.Height(); row++ {
		for col := 0; col < h.grid.Width(); col++ {
			if h.grid.cells[row][col] != Adjacent {
				continue
			}

			h.regions = append(h.regions, h.fillRegion(h.nextGroup, row, col))
			h.nextGroup++
		}
	}
}

// fillRegion recolours the 8-connected area of Adjacent cells around
// (row, col) to Grouped(id), accumulating the centroid as it goes.
// The worklist is an explicit stack, so one huge region costs an
// allocated slice rather than unbounded call depth. The starting cell
// becomes the region's anchor.
func (h *Healer) fillRegion(id GroupID, row, col int) Region {
	if h.grid.cells[row][col] != Adjacent {
		panic(fmt.Sprintf("gridheal: region fill started on %v cell at row %d col %d", h.grid.cells[row][col], row, col))
	}

	var count int
	var rowSum, colSum float64
	state := Grouped(id)

	stack := []image.Point{{X: col, Y: row}}
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		// A cell can be pushed twice before its first visit
		// recolours it
		if h.grid.cells[p.Y][p.X] != Adjacent {
			continue
		}
		h.grid.cells[p.Y][p.X] = state
		count++
		rowSum += float64(p.Y)
		colSum += float64(p.X)

		for rowOff := -1; rowOff <= 1; rowOff++ {
			for colOff := -1; colOff <= 1; colOff++ {
				r := p.Y + rowOff
				c := p.X + colOff
				if !h.grid.inBounds(c, r) {
					continue
				}
				if h.grid.cells[r][c] == Adjacent {
					stack = append(stack, image.Point{X: c, Y: r})
				}
			}
		}
	}

	return Region{
		ID:        id,
		Centroid:  Centroid{Row: rowSum / float64(count), Col: colSum / float64(count)},
		AnchorRow: row,
		AnchorCol: col,
		Pixels:    count,
	}
}

// connectCloseGroups compares every unordered pair of regions once,
// in creation order, and draws a line between the anchors of any pair
// whose centroids lie strictly closer than the close distance.
// Distances are compared squared against the squared threshold, so no
// square roots are taken. Region counts stay in the tens to low
// hundreds per image, so the quadratic scan is fine.
func (h *Healer) connectCloseGroups(out draw.Image) {
	h.log("connectCloseGroups")

	closeSquared := h.closeDistance * h.closeDistance

	for i := range h.regions {
		for j := i + 1; j < len(h.regions); j++ {
			from := &h.regions[i]
			to := &h.regions[j]

			dRow := from.Centroid.Row - to.Centroid.Row
			dCol := from.Centroid.Col - to.Centroid.Col
			if dRow*dRow+dCol*dCol >= closeSquared {
				continue
			}

			h.drawConnection(from, to, out)
		}
	}
}

// drawConnection rasterises a straight line between two regions'
// anchor pixels, marking every sample Healed in the grid (whatever
// state it held before) and painting it onto out. The sample count
// comes from the Chebyshev distance between the anchors, so diagonal
// lines get enough samples to leave no gaps.
func (h *Healer) drawConnection(from, to *Region, out draw.Image) {
	count := 1 + max(abs(from.AnchorRow-to.AnchorRow), abs(from.AnchorCol-to.AnchorCol))
	if count <= 1 {
		return
	}

	for i := 0; i < count; i++ {
		s := float64(i) / float64(count-1)
		row := int(0.5 + (1-s)*float64(from.AnchorRow) + s*float64(to.AnchorRow))
		col := int(0.5 + (1-s)*float64(from.AnchorCol) + s*float64(to.AnchorCol))

		h.grid.cells[row][col] = Healed
		out.Set(col, row, HealedColor)
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
