// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shaped

// RuneAt returns the source offset of the grapheme cluster rendered at
// the given point, relative to the top left of the lines, or -1 if the
// point is not over the visible text of a line.
func (ls *Lines) RuneAt(x, y float32) int {
	if ls.NumLines() == 0 || ls.LineHeight <= 0 || y < 0 {
		return -1
	}
	li := int(y / ls.LineHeight)
	if li >= len(ls.Lines) {
		return -1
	}
	ln := &ls.Lines[li]
	for i := ln.SourceRange.Start; i < ln.VisibleEnd; i++ {
		a, b := ln.Caret(i), ln.Caret(i+1)
		if a > b {
			a, b = b, a
		}
		if x >= a && x < b {
			return ls.Source.GraphemeStart(i)
		}
	}
	return -1
}
