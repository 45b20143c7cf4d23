// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package shapedcell provides a [shaped.Shaper] that measures text in
// monospace terminal cells, where each grapheme cluster occupies the
// number of cells reported by go-runewidth.
package shapedcell

import (
	"unicode/utf8"

	"cogentcore.org/readmore/text/rich"
	"cogentcore.org/readmore/text/shaped"
	"cogentcore.org/readmore/text/textpos"
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// Shaper is a terminal cell shaper. It is stateless after construction
// and safe for concurrent use.
type Shaper struct {
	cond *runewidth.Condition
}

// NewShaper returns a new cell shaper. If eastAsian is true, characters of
// ambiguous East Asian width occupy two cells.
func NewShaper(eastAsian bool) *Shaper {
	cond := runewidth.NewCondition()
	cond.EastAsianWidth = eastAsian
	return &Shaper{cond: cond}
}

// atom is an unbreakable unit of layout: a grapheme cluster,
// or a whole placeholder span.
type atom struct {
	rng   textpos.Range
	width float32
	space bool
	ph    bool
}

// atoms segments the text into atoms, with widths.
func (sh *Shaper) atoms(tx rich.Text, txt []rune) []atom {
	bs := tx.GraphemeBoundaries()
	ats := make([]atom, 0, len(bs))
	for i := 0; i+1 < len(bs); i++ {
		st, ed := bs[i], bs[i+1]
		if pr, ph, ok := tx.PlaceholderAt(st); ok {
			for i+1 < len(bs) && bs[i+1] < pr.End {
				i++
			}
			ats = append(ats, atom{rng: textpos.Range{Start: st, End: bs[i+1]}, width: ph.Width, ph: true})
			continue
		}
		at := atom{rng: textpos.Range{Start: st, End: ed}}
		r := txt[st]
		switch {
		case rich.IsLineTerminator(r):
			at.space = true
		case r == '\t':
			at.space = true
			at.width = 1
		default:
			at.space = shaped.IsTrailingSpace(r)
			at.width = float32(sh.cond.StringWidth(string(txt[st:ed])))
		}
		ats = append(ats, at)
	}
	return ats
}

// MeasureWidth returns the number of cells of the text on one line.
func (sh *Shaper) MeasureWidth(tx rich.Text) float32 {
	var wd float32
	for _, at := range sh.atoms(tx, tx.Join()) {
		wd += at.width
	}
	return wd
}

// breaks returns the line break opportunities of the paragraph in the
// given range, according to the Unicode line breaking algorithm (UAX #14),
// indexed by offset relative to its start.
func breaks(txt []rune, pr textpos.Range) []bool {
	brk := make([]bool, pr.Len()+1)
	str := string(txt[pr.Start:pr.End])
	off := 0
	state := -1
	for len(str) > 0 {
		var seg string
		seg, str, _, state = uniseg.FirstLineSegmentInString(str, state)
		off += utf8.RuneCountInString(seg)
		brk[off] = true
	}
	return brk
}

// WrapLines wraps the text greedily at the UAX #14 break opportunities,
// and around placeholders. A segment that does not fit on a line by
// itself is broken between grapheme clusters.
func (sh *Shaper) WrapLines(tx rich.Text, cs shaped.Constraints) *shaped.Lines {
	txt := tx.Join()
	lns := &shaped.Lines{Source: tx, LineHeight: 1, MaxWidth: cs.MaxWidth}
	ats := sh.atoms(tx, txt)
	wrap := cs.SoftWrap && cs.MaxWidth > 0
	full := func() bool {
		return cs.MaxLines > 0 && len(lns.Lines) >= cs.MaxLines
	}
	ai := 0
	for _, pr := range shaped.Paragraphs(txt) {
		if full() {
			lns.Truncated = true
			break
		}
		dir := shaped.ParagraphDirection(tx, txt, pr)
		pa := ai
		for ai < len(ats) && ats[ai].rng.Start < pr.End {
			ai++
		}
		par := ats[pa:ai]
		if len(par) == 0 {
			lns.Lines = append(lns.Lines, sh.line(txt, pr, nil, dir, cs.MaxWidth))
			continue
		}
		canBreak := breaks(txt, pr)
		ls := 0   // line start atom
		brk := -1 // atom index after the last break opportunity
		var x float32
		for i, at := range par {
			if at.ph && i > 0 {
				brk = i
			}
			if !at.space && wrap && i > ls && x+at.width > cs.MaxWidth {
				end := i
				if brk > ls {
					end = brk
				}
				lns.Lines = append(lns.Lines, sh.line(txt, span(par[ls:end]), par[ls:end], dir, cs.MaxWidth))
				if full() {
					lns.Truncated = true
					return lns
				}
				ls = end
				x = 0
				for _, a := range par[ls:i] {
					x += a.width
				}
			}
			x += at.width
			if e := at.rng.End - pr.Start; at.ph || (e < len(canBreak) && canBreak[e]) {
				brk = i + 1
			}
		}
		lns.Lines = append(lns.Lines, sh.line(txt, span(par[ls:]), par[ls:], dir, cs.MaxWidth))
	}
	if !lns.Truncated && ai < len(ats) {
		lns.Truncated = true
	}
	return lns
}

// span returns the source range covered by the given atoms.
func span(ats []atom) textpos.Range {
	return textpos.Range{Start: ats[0].rng.Start, End: ats[len(ats)-1].rng.End}
}

// line makes a line from the given atoms, as a single directional run.
func (sh *Shaper) line(txt []rune, r textpos.Range, ats []atom, dir rich.Directions, maxWidth float32) shaped.Line {
	ln := shaped.Line{SourceRange: r, VisibleEnd: shaped.VisibleEnd(txt, r), Direction: dir}
	ln.Carets = make([]float32, r.Len()+1)
	var x float32
	for _, at := range ats {
		for o := at.rng.Start; o < at.rng.End; o++ {
			ln.Carets[o-r.Start] = x
		}
		if at.rng.End <= ln.VisibleEnd {
			ln.Width += at.width
		}
		x += at.width
	}
	ln.Carets[r.Len()] = x
	if dir == rich.RTL {
		for i, c := range ln.Carets {
			ln.Carets[i] = ln.Width - c
		}
	}
	ln.Align(maxWidth)
	return ln
}
