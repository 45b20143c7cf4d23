// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package shapedgt provides a [shaped.Shaper] that measures proportional
// text with go-text/typesetting: HarfBuzz shaping and line wrapping.
package shapedgt

import (
	"slices"

	"cogentcore.org/readmore/base/errors"
	"cogentcore.org/readmore/text/fonts"
	"cogentcore.org/readmore/text/rich"
	"cogentcore.org/readmore/text/textpos"
	"github.com/chewxy/math32"
	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/math/fixed"
)

// Shaper is the text shaper and wrapper, from go-text/shaping.
// It reuses buffers and is not safe for concurrent use.
type Shaper struct {

	// FontSize is the standard font size in pixels, which
	// [rich.Style.Size] multiplies.
	FontSize float32

	faces    []*fonts.Face
	shaper   shaping.HarfbuzzShaper
	wrapper  shaping.LineWrapper
	splitter shaping.Segmenter

	// outBuff is the output buffer to avoid excessive memory consumption.
	outBuff []shaping.Output
}

// NewShaper returns a new shaper using the embedded fonts, at
// a standard font size of 16 pixels.
func NewShaper() *Shaper {
	sh := &Shaper{FontSize: 16}
	sh.faces = errors.Log1(fonts.Embedded())
	sh.shaper.SetFontCacheSize(32)
	return sh
}

// AddFaces adds faces that can be selected by style family, and that
// serve as fallbacks for runes missing from the selected face.
func (sh *Shaper) AddFaces(faces ...*fonts.Face) {
	sh.faces = append(slices.Clip(sh.faces), faces...)
}

// fontmap resolves the face for each rune of one span.
type fontmap struct {
	primary *font.Face
	faces   []*fonts.Face
}

func (fm *fontmap) ResolveFace(r rune) *font.Face {
	if _, ok := fm.primary.NominalGlyph(r); ok {
		return fm.primary
	}
	for _, f := range fm.faces {
		if _, ok := f.Face.NominalGlyph(r); ok {
			return f.Face
		}
	}
	return fm.primary
}

// shapeParagraph shapes the given range of the text, which must not
// include a line terminator, into runs whose offsets are relative to
// the start of the range.
func (sh *Shaper) shapeParagraph(tx rich.Text, txt []rune, pr textpos.Range, dir di.Direction) []shaping.Output {
	sh.outBuff = sh.outBuff[:0]
	para := txt[pr.Start:pr.End]
	for si, s := range tx {
		st, ed := tx.Range(si)
		sr := textpos.Range{Start: st, End: ed}.Intersect(pr)
		if sr.Len() <= 0 {
			continue
		}
		face := fonts.Match(sh.faces, s.Style)
		if face == nil {
			continue
		}
		size := sh.FontSize
		if s.Style != nil && s.Style.Size > 0 {
			size *= s.Style.Size
		}
		in := shaping.Input{
			Text:      para,
			RunStart:  sr.Start - pr.Start,
			RunEnd:    sr.End - pr.Start,
			Direction: dir,
			Face:      face.Face,
			Size:      toFixed(size),
		}
		if s.Placeholder != nil {
			sh.outBuff = append(sh.outBuff, sh.placeholderRun(in, s.Placeholder))
			continue
		}
		fm := &fontmap{primary: face.Face, faces: sh.faces}
		for _, in := range sh.splitter.Split(in, fm) {
			sh.outBuff = append(sh.outBuff, sh.shaper.Shape(in))
		}
	}
	return sh.outBuff
}

// placeholderRun returns a run with a single glyph of the box width
// covering all of the runes of the input.
func (sh *Shaper) placeholderRun(in shaping.Input, ph *rich.Placeholder) shaping.Output {
	n := in.RunEnd - in.RunStart
	// shaping the first rune gives the run its line metrics
	in.RunEnd = in.RunStart + 1
	out := sh.shaper.Shape(in)
	adv := toFixed(ph.Width)
	out.Runes = shaping.Range{Offset: in.RunStart, Count: n}
	out.Glyphs = []shaping.Glyph{{XAdvance: adv, Width: adv, ClusterIndex: in.RunStart, RuneCount: n, GlyphCount: 1}}
	out.Advance = adv
	return out
}

// goTextDirection gets the proper go-text direction value.
func goTextDirection(dir rich.Directions) di.Direction {
	if dir == rich.RTL {
		return di.DirectionRTL
	}
	return di.DirectionLTR
}

func toFixed(v float32) fixed.Int26_6 {
	return fixed.Int26_6(math32.Round(v * 64))
}

func fromFixed(f fixed.Int26_6) float32 {
	return float32(f) / 64
}
