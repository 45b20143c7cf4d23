// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rich

import (
	"slices"
	"strings"
)

// Text is the basic rich text representation, with spans of []rune unicode
// characters that share a common set of text styling properties.
// Offsets into a Text are always logical rune indexes into the Join'd
// source, without regard to span boundaries.
//
// A Text is treated as an immutable value once built: all of the operations
// that derive a new Text ([Text.Subrange], [Join]) return fresh span slices
// whose rune slices are capacity-clipped, so that appending to a derived
// Text can never overwrite its source.
type Text []Span

// Span is a run of runes sharing one [Style]. If Placeholder is non-nil,
// the span is an inline placeholder box, whose runes (typically a single
// object replacement character) stand in for arbitrary content of
// the given size.
type Span struct {

	// Style is the styling for this span. nil is an unset style.
	Style *Style

	// Runes are the unicode characters of the span.
	Runes []rune

	// Placeholder, if non-nil, makes this span an opaque inline box.
	Placeholder *Placeholder
}

// Index represents the [Span][Rune] index of a given rune.
type Index struct { //types:add
	Span, Rune int
}

// NewText returns a new [Text] starting with given style and runes string,
// which can be empty.
func NewText(s *Style, r []rune) Text {
	tx := Text{}
	tx.AddSpan(s, r)
	return tx
}

// NewPlainText returns a new [Text] with a single unstyled span
// with the given string.
func NewPlainText(s string) Text {
	return NewText(nil, []rune(s))
}

// NumSpans returns the number of spans in this Text.
func (tx Text) NumSpans() int {
	return len(tx)
}

// Len returns the total number of runes in this Text.
func (tx Text) Len() int {
	n := 0
	for _, s := range tx {
		n += len(s.Runes)
	}
	return n
}

// IsEmpty returns true if there are no runes in this Text.
func (tx Text) IsEmpty() bool {
	return tx.Len() == 0
}

// Range returns the start, end range of indexes into original source
// for given span index.
func (tx Text) Range(span int) (start, end int) {
	ci := 0
	for si, s := range tx {
		ns := len(s.Runes)
		if si == span {
			return ci, ci + ns
		}
		ci += ns
	}
	return -1, -1
}

// Index returns the span, rune slice [Index] for the given logical
// index, as in the original source rune slice without spans.
// If the logical index is invalid for the text, the returned index is -1,-1.
func (tx Text) Index(li int) Index {
	ci := 0
	for si, s := range tx {
		ns := len(s.Runes)
		if li >= ci && li < ci+ns {
			return Index{Span: si, Rune: li - ci}
		}
		ci += ns
	}
	return Index{Span: -1, Rune: -1}
}

// At returns the rune at given logical index. Returns 0
// if index is invalid. See AtTry for a version that also returns a bool
// indicating whether the index is valid.
func (tx Text) At(li int) rune {
	r, _ := tx.AtTry(li)
	return r
}

// AtTry returns the rune at given logical index. Returns 0
// and false if index is invalid.
func (tx Text) AtTry(li int) (rune, bool) {
	i := tx.Index(li)
	if i.Span < 0 {
		return 0, false
	}
	return tx[i.Span].Runes[i.Rune], true
}

// StyleAt returns the style of the span containing the given logical index,
// or nil if the index is invalid.
func (tx Text) StyleAt(li int) *Style {
	i := tx.Index(li)
	if i.Span < 0 {
		return nil
	}
	return tx[i.Span].Style
}

// Split returns the raw rune spans without any styles.
// The rune span slices here point directly into the Text rune slices.
func (tx Text) Split() [][]rune {
	rn := make([][]rune, 0, len(tx))
	for _, s := range tx {
		if len(s.Runes) == 0 {
			continue
		}
		rn = append(rn, s.Runes)
	}
	return rn
}

// Join returns a single slice of runes with the contents of all span runes.
func (tx Text) Join() []rune {
	rn := make([]rune, 0, tx.Len())
	for _, s := range tx {
		rn = append(rn, s.Runes...)
	}
	return rn
}

// AddSpan adds a span to the Text using the given Style and runes.
// The runes are copied.
func (tx *Text) AddSpan(s *Style, r []rune) *Text {
	*tx = append(*tx, Span{Style: s, Runes: slices.Clone(r)})
	return tx
}

// AddSpanString adds a span to the Text using the given Style and string.
func (tx *Text) AddSpanString(s *Style, str string) *Text {
	return tx.AddSpan(s, []rune(str))
}

// AddRunes adds given runes to current span.
// If no existing span, then a new default one is made.
func (tx *Text) AddRunes(r []rune) *Text {
	n := len(*tx)
	if n == 0 || (*tx)[n-1].Placeholder != nil {
		return tx.AddSpan(nil, r)
	}
	(*tx)[n-1].Runes = append(slices.Clip((*tx)[n-1].Runes), r...)
	return tx
}

// Subrange returns the portion of the text in the [start, end) logical
// rune range, preserving the per-span styles, and clipping spans
// (including placeholders) to the range. The range is clamped to the
// valid bounds of the text.
func (tx Text) Subrange(start, end int) Text {
	n := tx.Len()
	start = min(max(start, 0), n)
	end = min(max(end, start), n)
	nt := Text{}
	ci := 0
	for _, s := range tx {
		ns := len(s.Runes)
		ss, se := max(start, ci), min(end, ci+ns)
		if ss < se {
			sp := s
			sp.Runes = s.Runes[ss-ci : se-ci : se-ci]
			nt = append(nt, sp)
		}
		ci += ns
		if ci >= end {
			break
		}
	}
	return nt
}

// Prefix returns the first n runes of the text, as in [Text.Subrange](0, n).
func (tx Text) Prefix(n int) Text {
	return tx.Subrange(0, n)
}

// Clone returns a deep copy of the span structure and runes. Styles
// are shared, as they are not modified once set on a span.
func (tx Text) Clone() Text {
	nt := make(Text, len(tx))
	for i, s := range tx {
		nt[i] = s
		nt[i].Runes = slices.Clone(s.Runes)
	}
	return nt
}

// WithBaseStyle returns a copy of the text where each span style
// is resolved against the given inherited style: properties set on
// the span take precedence, see [Resolve].
func (tx Text) WithBaseStyle(base *Style) Text {
	if base.IsZero() {
		return tx
	}
	nt := make(Text, len(tx))
	for i, s := range tx {
		nt[i] = s
		nt[i].Style = base.Merge(s.Style)
	}
	return nt
}

// String returns the plain text content.
func (tx Text) String() string {
	return string(tx.Join())
}

// StyledString returns a debugging representation with each span on
// its own line preceded by its style.
func (tx Text) StyledString() string {
	var b strings.Builder
	for _, s := range tx {
		b.WriteString("[" + s.Style.String())
		if s.Placeholder != nil {
			b.WriteString(" placeholder: " + s.Placeholder.Name)
		}
		b.WriteString("]: " + string(s.Runes) + "\n")
	}
	return b.String()
}

// Join joins multiple texts into one text. Just appends the spans,
// so the styles of each text are preserved. Empty spans are dropped.
func Join(txts ...Text) Text {
	nt := Text{}
	for _, tx := range txts {
		for _, s := range tx {
			if len(s.Runes) == 0 {
				continue
			}
			s.Runes = slices.Clip(s.Runes)
			nt = append(nt, s)
		}
	}
	return nt
}
