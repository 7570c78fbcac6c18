// Copyright 2026 Nick White.
// Use of this source code is governed by the GPLv3
// license that can be found in the LICENSE file.

/*
The gridheal package repairs the damage done to a binarised chart or
plot image when its grid lines are erased. Wherever a data curve
crossed a grid line, removing the line leaves a gap in the curve;
gridheal finds the loose curve ends either side of each gap and draws
short connecting lines between them, so the curves stay connected.

The package does not detect grid lines itself; the caller decides
which pixels make up a grid line and reports each one with ErasePixel
(or a whole line at once with EraseRow or EraseCol). Erasing a pixel
flags any foreground pixels touching it as candidates for healing.
Once every grid line pixel has been erased, a single call to Heal
groups the flagged pixels into connected regions, and draws a line
between the anchor pixels of every pair of regions whose centroids
lie closer than the configured distance.

A typical use looks like this:

	h := gridheal.NewHealer(img, 10)
	for _, row := range gridrows {
		h.EraseRow(row)
	}
	for _, col := range gridcols {
		h.EraseCol(col)
	}
	h.Heal(out)

Heal is a single pass; it does not re-examine regions that its own
connecting lines have newly joined, and calling it a second time on
the same Healer is not a no-op, as the second pass would reinterpret
the group and healed states left by the first.

The healgrid command in cmd/healgrid wraps the package up with image
decoding and encoding, optional page wiping using the
rescribe.xyz/preproc package, and a graph of region separations.
*/
package gridheal
