// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shaped

import (
	"unicode"

	"cogentcore.org/readmore/text/rich"
	"cogentcore.org/readmore/text/textpos"
	"golang.org/x/text/unicode/bidi"
)

// Paragraphs splits the given runes at line terminators, returning the
// source range of each paragraph including its terminator. A CR LF pair
// is one terminator. A text ending with a terminator has no empty final
// paragraph, and an empty text has one empty paragraph.
func Paragraphs(txt []rune) []textpos.Range {
	var prs []textpos.Range
	st := 0
	n := len(txt)
	for i := 0; i < n; i++ {
		r := txt[i]
		if !rich.IsLineTerminator(r) {
			continue
		}
		if r == '\r' && i+1 < n && txt[i+1] == '\n' {
			i++
		}
		prs = append(prs, textpos.Range{Start: st, End: i + 1})
		st = i + 1
	}
	if st < n || len(prs) == 0 {
		prs = append(prs, textpos.Range{Start: st, End: n})
	}
	return prs
}

// IsTrailingSpace returns true for runes that are not part of the
// visible content at the end of a line: breaking whitespace and line
// terminators. No-break spaces are content.
func IsTrailingSpace(r rune) bool {
	switch r {
	case '\u00A0', '\u2007', '\u202F':
		return false
	}
	return unicode.IsSpace(r) || rich.IsLineTerminator(r)
}

// VisibleEnd returns the end of the given range of txt, excluding
// trailing whitespace and line terminators.
func VisibleEnd(txt []rune, r textpos.Range) int {
	ed := r.End
	for ed > r.Start && IsTrailingSpace(txt[ed-1]) {
		ed--
	}
	return ed
}

// ParagraphDirection returns the direction of the paragraph in the
// given range: the explicit direction of the style at its start if
// set, else the direction of the first strong bidi character, else LTR.
func ParagraphDirection(tx rich.Text, txt []rune, r textpos.Range) rich.Directions {
	if sty := tx.StyleAt(r.Start); sty != nil && sty.Direction != rich.Default {
		return sty.Direction
	}
	for _, c := range txt[r.Start:r.End] {
		p, _ := bidi.LookupRune(c)
		switch p.Class() {
		case bidi.L:
			return rich.LTR
		case bidi.R, bidi.AL:
			return rich.RTL
		}
	}
	return rich.LTR
}

// Align sets the Left position of the line and offsets its carets so
// that RTL lines are right aligned within the given width.
// Carets must be relative to the left edge of the visible content.
func (ln *Line) Align(width float32) {
	if ln.Direction != rich.RTL || width <= 0 {
		return
	}
	ln.Left = width - ln.Width
	for i := range ln.Carets {
		ln.Carets[i] += ln.Left
	}
}
