// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"strings"

	"cogentcore.org/readmore/readmore"
	"cogentcore.org/readmore/text/rich"
	"cogentcore.org/readmore/text/shaped"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/muesli/termenv"
)

// renderer renders the displayed text of a view as styled terminal lines.
type renderer struct {
	out    *termenv.Output
	shaper shaped.Shaper
}

// render wraps the displayed text to the width of the view, and
// returns it with one line per terminal row. Under [readmore.ToggleMore]
// the affordances are rendered as terminal hyperlinks.
func (rd *renderer) render(v *readmore.View) string {
	tx := v.Display()
	cfg := v.Config()
	cs := cfg.Constraints(v.Width()).Unbounded()
	lns := rd.shaper.WrapLines(tx, cs)
	var b strings.Builder
	for i := range lns.Lines {
		ln := &lns.Lines[i]
		for _, sp := range tx.Subrange(ln.SourceRange.Start, ln.VisibleEnd) {
			b.WriteString(rd.span(sp))
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// span returns the styled text of the span.
func (rd *renderer) span(sp rich.Span) string {
	s := strings.ReplaceAll(string(sp.Runes), "\t", " ")
	st := sp.Style
	if st == nil {
		return s
	}
	if st.Special == rich.Link && st.URL != "" {
		s = rd.out.Hyperlink(st.URL, s)
	}
	ts := rd.out.String(s)
	if st.Weight >= rich.SemiBold {
		ts = ts.Bold()
	}
	if st.Weight != rich.WeightUnset && st.Weight < rich.Normal {
		ts = ts.Faint()
	}
	if st.Slant == rich.Italic {
		ts = ts.Italic()
	}
	if st.Decoration.HasFlag(rich.Underline) {
		ts = ts.Underline()
	}
	if st.Decoration.HasFlag(rich.LineThrough) {
		ts = ts.CrossOut()
	}
	if st.Color != nil {
		if c, ok := colorful.MakeColor(st.Color); ok {
			ts = ts.Foreground(rd.out.Color(c.Hex()))
		}
	}
	return ts.String()
}
