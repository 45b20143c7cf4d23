// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rich

import (
	"unicode/utf16"

	"github.com/rivo/uniseg"
)

// IsLineTerminator returns true if r is a character that ends a line:
// line feed, vertical tab, form feed, carriage return, next line,
// line separator, or paragraph separator.
func IsLineTerminator(r rune) bool {
	switch r {
	case '\n', '\v', '\f', '\r', 0x85, 0x2028, 0x2029:
		return true
	}
	return false
}

// GraphemeBoundaries returns the logical indexes at which grapheme
// clusters start, followed by the total length. An empty text returns [0].
func (tx Text) GraphemeBoundaries() []int {
	bs := []int{0}
	pos := 0
	gr := uniseg.NewGraphemes(tx.String())
	for gr.Next() {
		pos += len(gr.Runes())
		bs = append(bs, pos)
	}
	return bs
}

// GraphemeStart returns the largest grapheme cluster boundary that is
// <= li, so that cutting the text at the result never splits a user
// perceived character (surrogate pair, combining sequence, emoji ZWJ
// sequence, or CR LF). li is clamped to [0, Len].
func (tx Text) GraphemeStart(li int) int {
	if li <= 0 {
		return 0
	}
	pos := 0
	gr := uniseg.NewGraphemes(tx.String())
	for gr.Next() {
		n := len(gr.Runes())
		if pos+n > li {
			return pos
		}
		pos += n
	}
	return pos
}

// SafeBoundary returns the largest offset <= li at which the text can be
// cut without splitting a grapheme cluster or an inline placeholder.
func (tx Text) SafeBoundary(li int) int {
	for {
		b := tx.GraphemeStart(li)
		if r, _, ok := tx.PlaceholderAt(b); ok && b > r.Start {
			b = r.Start
		}
		if b == li {
			return b
		}
		li = b
	}
}

// ToUTF16 returns the UTF-16 encoding of the text content.
func (tx Text) ToUTF16() []uint16 {
	return utf16.Encode(tx.Join())
}

// UTF16Len returns the length of the text in UTF-16 code units,
// which is the unit of offsets on many platform text APIs.
func (tx Text) UTF16Len() int {
	n := 0
	for _, s := range tx {
		for _, r := range s.Runes {
			n += u16len(r)
		}
	}
	return n
}

// UTF16Offset converts a logical rune index to a UTF-16 code unit offset.
func (tx Text) UTF16Offset(li int) int {
	n, ci := 0, 0
	for _, s := range tx {
		for _, r := range s.Runes {
			if ci >= li {
				return n
			}
			n += u16len(r)
			ci++
		}
	}
	return n
}

// u16len is the number of UTF-16 code units for r, where invalid runes
// are encoded as a single replacement character.
func u16len(r rune) int {
	if n := utf16.RuneLen(r); n > 0 {
		return n
	}
	return 1
}
