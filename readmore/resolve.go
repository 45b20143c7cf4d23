// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package readmore

import (
	"log/slog"

	"cogentcore.org/readmore/text/rich"
	"cogentcore.org/readmore/text/shaped"
)

// Resolved is the result of truncation.
type Resolved struct {

	// Collapsed is the prefix of the text shown when collapsed,
	// before the decoration. It is the full text when not Collapsible.
	Collapsed rich.Text

	// Collapsible is false when the full text already fits, or the
	// width is not yet known, in which case no decoration is shown.
	Collapsible bool
}

// Resolver computes truncations. The zero value is not usable:
// a Shaper is required.
type Resolver struct {

	// Shaper measures text.
	Shaper shaped.Shaper

	// TrimSpace removes trailing whitespace from the collapsed text,
	// so that the decoration directly follows the last visible word.
	TrimSpace bool
}

// Resolve returns the longest prefix of tx that fits within cs together
// with the given decoration, using a [Resolver] with the given shaper.
func Resolve(sh shaped.Shaper, tx rich.Text, cs shaped.Constraints, dec Decoration) (Resolved, error) {
	rs := Resolver{Shaper: sh}
	return rs.Resolve(tx, cs, dec)
}

// Resolve returns the longest prefix of tx that fits within cs together
// with the given decoration. It returns [shaped.ErrInvalidMaxLines]
// before measuring anything if cs.MaxLines < 1. A width that is not yet
// known results in the full text, not collapsible.
func (rs *Resolver) Resolve(tx rich.Text, cs shaped.Constraints, dec Decoration) (Resolved, error) {
	if err := cs.Validate(); err != nil {
		return Resolved{}, err
	}
	if !cs.HasWidth() {
		return Resolved{Collapsed: tx}, nil
	}
	return rs.ResolveLines(rs.Shaper.WrapLines(tx, cs), cs, dec.Width), nil
}

// ResolveLines resolves the truncation of lns.Source from its layout
// under cs, which must be valid, and the total decoration width.
// The last visible line is shrunk one rune at a time until it fits
// with the decoration: width is not monotonic in the prefix length
// under bidi reordering, so no binary search is possible.
func (rs *Resolver) ResolveLines(lns *shaped.Lines, cs shaped.Constraints, decWidth float32) Resolved {
	tx := lns.Source
	if !cs.HasWidth() || cs.MaxLines < 1 {
		return Resolved{Collapsed: tx}
	}
	n := tx.Len()
	if lns.NumLines() < cs.MaxLines || n <= lns.Lines[cs.MaxLines-1].SourceRange.End {
		return Resolved{Collapsed: tx}
	}
	ln := &lns.Lines[cs.MaxLines-1]
	start := ln.SourceRange.Start
	lastVisible := ln.VisibleEnd
	if lastVisible > start && lastVisible < n && rich.IsLineTerminator(tx.At(lastVisible)) {
		lastVisible--
	}
	tail := lastVisible - start
	rtl := ln.Direction == rich.RTL
	cut := 0
	for ; cut < tail; cut++ {
		if rtl {
			if ln.Caret(lastVisible-cut) >= decWidth {
				break
			}
		} else if rs.Shaper.MeasureWidth(tx.Subrange(start, lastVisible-cut))+decWidth < cs.MaxWidth {
			break
		}
	}
	boundary := safeBoundary(tx, lastVisible-cut)
	if rs.TrimSpace {
		for boundary > 0 && shaped.IsTrailingSpace(tx.At(boundary-1)) {
			boundary--
		}
		boundary = safeBoundary(tx, boundary)
	}
	slog.Debug("readmore: resolved truncation", "len", n, "lastVisible", lastVisible, "cut", cut, "boundary", boundary, "utf16", tx.UTF16Offset(boundary), "rtl", rtl, "decoration", decWidth)
	return Resolved{Collapsed: tx.Subrange(0, boundary), Collapsible: true}
}

// safeBoundary moves the boundary back until it neither splits a
// grapheme cluster or placeholder, nor directly follows a line terminator.
func safeBoundary(tx rich.Text, b int) int {
	for {
		nb := tx.SafeBoundary(b)
		for nb > 0 && rich.IsLineTerminator(tx.At(nb-1)) {
			nb--
		}
		if nb == b {
			return b
		}
		b = nb
	}
}
