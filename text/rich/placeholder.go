// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rich

import "cogentcore.org/readmore/text/textpos"

// ObjectReplacement is the rune conventionally used as the source
// content of a placeholder span.
const ObjectReplacement = '\uFFFC'

// Placeholder is an opaque inline box of a given size, standing in
// for content (an icon, an image) that is not text. Shapers measure
// the whole span as Width, and it is never split by truncation.
type Placeholder struct {

	// Name identifies the content of the placeholder for the caller.
	Name string

	// Width and Height are the size of the box, in shaper units.
	Width, Height float32
}

// AddPlaceholder adds a placeholder span with the given style, standing
// for the given runes. If r is empty, a single [ObjectReplacement] is used.
func (tx *Text) AddPlaceholder(s *Style, ph Placeholder, r ...rune) *Text {
	if len(r) == 0 {
		r = []rune{ObjectReplacement}
	}
	tx.AddSpan(s, r)
	(*tx)[len(*tx)-1].Placeholder = &ph
	return tx
}

// PlaceholderAt returns the source range of the placeholder span containing
// the given logical index, if that index is inside one.
func (tx Text) PlaceholderAt(li int) (textpos.Range, *Placeholder, bool) {
	i := tx.Index(li)
	if i.Span < 0 || tx[i.Span].Placeholder == nil {
		return textpos.Range{}, nil, false
	}
	st, ed := tx.Range(i.Span)
	return textpos.Range{Start: st, End: ed}, tx[i.Span].Placeholder, true
}
