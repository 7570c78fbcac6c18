// Copyright 2026 Nick White.
// Use of this source code is governed by the GPLv3
// license that can be found in the LICENSE file.

package gridheal

import "fmt"

// GroupID identifies one connected region of adjacent pixels. IDs are
// assigned per Healer, starting at GroupFirst and increasing, and are
// never reused within one Healer's lifetime.
type GroupID int

// GroupFirst is the first group id a Healer assigns.
const GroupFirst GroupID = 100

type stateKind uint8

const (
	kindBackground stateKind = iota
	kindForeground
	kindAdjacent
	kindRemoved
	kindHealed
	kindGrouped
)

// PixelState is the classification of one grid cell: either one of
// the five fixed states below, or membership of a region made with
// Grouped. Keeping the group id in its own field means an id can
// never be mistaken for a fixed state.
type PixelState struct {
	kind  stateKind
	group GroupID
}

var (
	// Background is a pixel brighter than the binarisation threshold.
	Background = PixelState{kind: kindBackground}
	// Foreground is a pixel at or below the binarisation threshold.
	Foreground = PixelState{kind: kindForeground}
	// Adjacent is a foreground pixel touching a removed pixel; a
	// candidate for healing.
	Adjacent = PixelState{kind: kindAdjacent}
	// Removed is an erased grid line pixel.
	Removed = PixelState{kind: kindRemoved}
	// Healed is a pixel painted to bridge two regions.
	Healed = PixelState{kind: kindHealed}
)

// Grouped returns the state of a pixel belonging to region id.
func Grouped(id GroupID) PixelState {
	return PixelState{kind: kindGrouped, group: id}
}

// Group reports whether s marks membership of a region, and if so
// which one.
func (s PixelState) Group() (GroupID, bool) {
	return s.group, s.kind == kindGrouped
}

func (s PixelState) String() string {
	switch s.kind {
	case kindBackground:
		return "background"
	case kindForeground:
		return "foreground"
	case kindAdjacent:
		return "adjacent"
	case kindRemoved:
		return "removed"
	case kindHealed:
		return "healed"
	case kindGrouped:
		return fmt.Sprintf("group %d", s.group)
	}
	return "unknown"
}
