// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shaped

import (
	"fmt"
	"strings"

	"cogentcore.org/readmore/text/rich"
	"cogentcore.org/readmore/text/textpos"
	"github.com/chewxy/math32"
)

// Lines is a list of Lines of shaped text, the result of one measurement
// pass by a [Shaper]. It is treated as an immutable snapshot by its consumers.
type Lines struct {

	// Source is the original input source that generated this set of lines.
	Source rich.Text

	// Lines are the shaped lines, in source order.
	Lines []Line

	// LineHeight is the line height used at the time of shaping.
	LineHeight float32

	// MaxWidth is the constraint width used at the time of shaping,
	// which RTL lines are aligned to.
	MaxWidth float32

	// Truncated indicates that text beyond the line cap was not laid out.
	Truncated bool
}

// Line is one line of shaped text.
type Line struct {

	// SourceRange is the range of runes in the original [Lines.Source] that
	// are represented in this line, including trailing whitespace and
	// the line terminator.
	SourceRange textpos.Range

	// VisibleEnd is the end of the line excluding trailing whitespace
	// and the line terminator.
	VisibleEnd int

	// Direction is the paragraph direction of the line, LTR or RTL.
	Direction rich.Directions

	// Width is the advance width of the visible part of the line.
	Width float32

	// Left is the x position of the left edge of the visible part of the
	// line. It is non-zero for RTL lines, which are right aligned.
	Left float32

	// Carets are the x positions of the caret before each source offset
	// of the line, from SourceRange.Start to SourceRange.End inclusive,
	// in the same coordinates as Left.
	Carets []float32
}

// Rect is an axis aligned rectangle in layout coordinates.
type Rect struct {
	Left, Top, Right, Bottom float32
}

// NumLines returns the number of lines.
func (ls *Lines) NumLines() int {
	if ls == nil {
		return 0
	}
	return len(ls.Lines)
}

// Width returns the width of the widest line.
func (ls *Lines) Width() float32 {
	if ls == nil {
		return 0
	}
	var wd float32
	for i := range ls.Lines {
		wd = math32.Max(wd, ls.Lines[i].Width)
	}
	return wd
}

// LastLine returns the last line, or nil if there are none.
func (ls *Lines) LastLine() *Line {
	n := ls.NumLines()
	if n == 0 {
		return nil
	}
	return &ls.Lines[n-1]
}

// End returns the source end of the last laid out line, or 0 if none.
func (ls *Lines) End() int {
	if ln := ls.LastLine(); ln != nil {
		return ln.SourceRange.End
	}
	return 0
}

// Clipped returns true if the layout fills maxLines lines and the visible
// content of the last line stops before the end of the source, meaning
// that some of the text is not shown.
func (ls *Lines) Clipped(maxLines int) bool {
	ln := ls.LastLine()
	if ln == nil {
		return false
	}
	return ls.NumLines() >= maxLines && ln.VisibleEnd < ls.Source.Len()
}

// LineAt returns the index of the line containing the given source
// offset. An offset at the end of the last line maps to the last line.
// Returns -1 if there are no lines.
func (ls *Lines) LineAt(offset int) int {
	n := ls.NumLines()
	if n == 0 {
		return -1
	}
	for li := range ls.Lines {
		if offset < ls.Lines[li].SourceRange.End {
			return li
		}
	}
	return n - 1
}

// CursorRect returns the rectangle of a zero-width cursor positioned
// before the given source offset.
func (ls *Lines) CursorRect(offset int) Rect {
	li := ls.LineAt(offset)
	if li < 0 {
		return Rect{Bottom: ls.LineHeight}
	}
	x := ls.Lines[li].Caret(offset)
	top := float32(li) * ls.LineHeight
	return Rect{Left: x, Top: top, Right: x, Bottom: top + ls.LineHeight}
}

// Caret returns the x position of the caret before the given source
// offset, which is clamped to the range of the line.
func (ln *Line) Caret(offset int) float32 {
	if len(ln.Carets) == 0 {
		return ln.Left
	}
	i := min(max(offset-ln.SourceRange.Start, 0), len(ln.Carets)-1)
	return ln.Carets[i]
}

// Right returns the x position of the right edge of the visible part of the line.
func (ln *Line) Right() float32 {
	return ln.Left + ln.Width
}

func (ln *Line) String() string {
	return fmt.Sprintf("[%d %d) visible: %d %s width: %g", ln.SourceRange.Start, ln.SourceRange.End, ln.VisibleEnd, ln.Direction, ln.Width)
}

func (ls *Lines) String() string {
	var b strings.Builder
	for li := range ls.Lines {
		ln := &ls.Lines[li]
		fmt.Fprintf(&b, "#### Line: %d %s\n", li, ln)
		b.WriteString(string(ls.Source.Subrange(ln.SourceRange.Start, ln.SourceRange.End).Join()) + "\n")
	}
	return b.String()
}
