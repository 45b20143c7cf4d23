// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shapedgt

import (
	"slices"

	"cogentcore.org/readmore/text/rich"
	"cogentcore.org/readmore/text/shaped"
	"cogentcore.org/readmore/text/textpos"
	"github.com/chewxy/math32"
	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/shaping"
)

// noWrapWidth is the wrapping width used when lines are not wrapped.
const noWrapWidth = 1 << 24

// WrapLines performs line wrapping and shaping on the given rich text source.
// Paragraphs are split at line terminators and wrapped separately, with
// runs reordered visually within each line.
func (sh *Shaper) WrapLines(tx rich.Text, cs shaped.Constraints) *shaped.Lines {
	txt := tx.Join()
	lns := &shaped.Lines{Source: tx, MaxWidth: cs.MaxWidth, LineHeight: 1.2 * sh.FontSize}
	brk := shaping.WhenNecessary
	maxSize := int(math32.Floor(cs.MaxWidth))
	if !cs.SoftWrap || cs.MaxWidth <= 0 {
		brk = shaping.Never
		maxSize = noWrapWidth
	}
	for _, pr := range shaped.Paragraphs(txt) {
		if cs.MaxLines > 0 && len(lns.Lines) >= cs.MaxLines {
			lns.Truncated = true
			break
		}
		dir := shaped.ParagraphDirection(tx, txt, pr)
		content := textpos.Range{Start: pr.Start, End: contentEnd(txt, pr)}
		if content.Len() == 0 {
			lns.Lines = append(lns.Lines, emptyLine(pr, dir))
			continue
		}
		outs := sh.shapeParagraph(tx, txt, content, goTextDirection(dir))
		if len(outs) == 0 {
			lns.Lines = append(lns.Lines, emptyLine(pr, dir))
			continue
		}
		cfg := shaping.WrapConfig{
			Direction:                     goTextDirection(dir),
			BreakPolicy:                   brk,
			DisableTrailingWhitespaceTrim: true,
		}
		lines, _ := sh.wrapper.WrapParagraph(cfg, maxSize, txt[content.Start:content.End], shaping.NewSliceIterator(outs))
		for li, lno := range lines {
			if len(lno) == 0 {
				continue
			}
			if cs.MaxLines > 0 && len(lns.Lines) >= cs.MaxLines {
				lns.Truncated = true
				return lns
			}
			ln, lht := buildLine(txt, pr, content, lno, dir, li == len(lines)-1)
			ln.Align(cs.MaxWidth)
			lns.LineHeight = math32.Max(lns.LineHeight, lht)
			lns.Lines = append(lns.Lines, ln)
		}
	}
	return lns
}

// MeasureWidth returns the total advance of the text shaped on one line,
// including any trailing whitespace.
func (sh *Shaper) MeasureWidth(tx rich.Text) float32 {
	txt := tx.Join()
	var wd float32
	for _, pr := range shaped.Paragraphs(txt) {
		content := textpos.Range{Start: pr.Start, End: contentEnd(txt, pr)}
		if content.Len() == 0 {
			continue
		}
		dir := shaped.ParagraphDirection(tx, txt, pr)
		for _, out := range sh.shapeParagraph(tx, txt, content, goTextDirection(dir)) {
			wd += fromFixed(out.Advance)
		}
	}
	return wd
}

// contentEnd returns the end of the paragraph excluding its terminator.
func contentEnd(txt []rune, pr textpos.Range) int {
	ed := pr.End
	for ed > pr.Start && rich.IsLineTerminator(txt[ed-1]) {
		ed--
	}
	return ed
}

func emptyLine(pr textpos.Range, dir rich.Directions) shaped.Line {
	return shaped.Line{SourceRange: pr, VisibleEnd: pr.Start, Direction: dir, Carets: make([]float32, pr.Len()+1)}
}

// cluster is a glyph cluster of a run, in paragraph rune offsets.
type cluster struct {
	start, end int
	adv        float32
}

// clusters returns the clusters of the run in logical order.
func clusters(out *shaping.Output) []cluster {
	advs := map[int]float32{}
	for _, g := range out.Glyphs {
		advs[g.ClusterIndex] += fromFixed(g.XAdvance)
	}
	rst, red := out.Runes.Offset, out.Runes.Offset+out.Runes.Count
	starts := make([]int, 0, len(advs))
	for st := range advs {
		if st >= rst && st < red {
			starts = append(starts, st)
		}
	}
	slices.Sort(starts)
	if len(starts) == 0 || starts[0] > rst {
		starts = slices.Insert(starts, 0, rst)
	}
	cls := make([]cluster, len(starts))
	for i, st := range starts {
		ed := red
		if i+1 < len(starts) {
			ed = starts[i+1]
		}
		cls[i] = cluster{start: st, end: ed, adv: advs[st]}
	}
	return cls
}

// visualOrder returns the indexes of the given logically ordered runs
// in visual order, reversing sequences of runs by embedding level (rule L2).
func visualOrder(runs []shaping.Output, dir rich.Directions) []int {
	levels := make([]int, len(runs))
	maxLevel := 0
	for i := range runs {
		rtl := runs[i].Direction.Progression() != di.FromTopLeft
		lv := 0
		switch {
		case dir == rich.RTL && rtl:
			lv = 1
		case dir == rich.RTL:
			lv = 2
		case rtl:
			lv = 1
		}
		levels[i] = lv
		maxLevel = max(maxLevel, lv)
	}
	order := make([]int, len(runs))
	for i := range order {
		order[i] = i
	}
	for lv := maxLevel; lv >= 1; lv-- {
		for i := 0; i < len(order); {
			if levels[order[i]] < lv {
				i++
				continue
			}
			j := i
			for j < len(order) && levels[order[j]] >= lv {
				j++
			}
			slices.Reverse(order[i:j])
			i = j
		}
	}
	return order
}

// buildLine makes a [shaped.Line] from the wrapped runs of one line of
// the paragraph pr, whose content range is content. If last, the line
// also covers the paragraph terminator. Also returns the line height.
func buildLine(txt []rune, pr, content textpos.Range, lno shaping.Line, dir rich.Directions, last bool) (shaped.Line, float32) {
	runs := slices.Clone(lno)
	slices.SortFunc(runs, func(a, b shaping.Output) int {
		return a.Runes.Offset - b.Runes.Offset
	})
	base := content.Start
	lst := base + runs[0].Runes.Offset
	led := base + runs[len(runs)-1].Runes.Offset + runs[len(runs)-1].Runes.Count
	if last {
		led = pr.End
	}
	ln := shaped.Line{SourceRange: textpos.Range{Start: lst, End: led}, Direction: dir}
	ln.VisibleEnd = shaped.VisibleEnd(txt, ln.SourceRange)
	ln.Carets = make([]float32, ln.SourceRange.Len()+1)
	setCaret := func(off int, x float32) {
		if i := off - lst; i >= 0 && i < len(ln.Carets) {
			ln.Carets[i] = x
		}
	}

	var x, space, lht float32
	var endX float32
	for _, ri := range visualOrder(runs, dir) {
		out := &runs[ri]
		lb := out.LineBounds
		lht = math32.Max(lht, fromFixed(lb.Ascent-lb.Descent+lb.Gap))
		rtl := out.Direction.Progression() != di.FromTopLeft
		cls := clusters(out)
		if rtl {
			slices.Reverse(cls)
		}
		runLeft := x
		for _, cl := range cls {
			n := float32(cl.end - cl.start)
			for k := cl.start; k < cl.end; k++ {
				f := cl.adv * float32(k-cl.start) / n
				if rtl {
					setCaret(base+k, x+cl.adv-f)
				} else {
					setCaret(base+k, x+f)
				}
			}
			if base+cl.start >= ln.VisibleEnd {
				space += cl.adv
			}
			x += cl.adv
		}
		if ri == len(runs)-1 {
			endX = x
			if rtl {
				endX = runLeft
			}
		}
	}
	for off := base + runs[len(runs)-1].Runes.Offset + runs[len(runs)-1].Runes.Count; off <= led; off++ {
		setCaret(off, endX)
	}
	ln.Width = x - space
	if dir == rich.RTL && space > 0 {
		for i := range ln.Carets {
			ln.Carets[i] -= space
		}
	}
	return ln, lht
}
