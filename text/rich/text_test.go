// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rich

import (
	"image/color"
	"testing"

	"cogentcore.org/readmore/text/textpos"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestText(t *testing.T) {
	src := "The lazy fox typed in some familiar text"
	sr := []rune(src)
	tx := Text{}
	plain := NewStyle()
	ital := NewStyle().SetSlant(Italic)
	boldBig := NewStyle().SetWeight(Bold).SetSize(1.5)
	tx.AddSpan(plain, sr[:4])
	tx.AddSpan(ital, sr[4:8])
	fam := []rune("familiar")
	ix := runes(sr, fam)
	tx.AddSpan(plain, sr[8:ix])
	tx.AddSpan(boldBig, sr[ix:ix+8])
	tx.AddSpan(plain, sr[ix+8:])

	assert.Equal(t, 5, tx.NumSpans())
	assert.Equal(t, len(sr), tx.Len())
	assert.Equal(t, src, tx.String())

	st, ed := tx.Range(1)
	assert.Equal(t, 4, st)
	assert.Equal(t, 8, ed)
	st, ed = tx.Range(10)
	assert.Equal(t, -1, st)
	assert.Equal(t, -1, ed)

	for i, r := range sr {
		assert.Equal(t, r, tx.At(i))
	}
	_, ok := tx.AtTry(len(sr))
	assert.False(t, ok)
	assert.Equal(t, rune(0), tx.At(-1))
	assert.Equal(t, Index{Span: 1, Rune: 2}, tx.Index(6))
	assert.Equal(t, Italic, tx.StyleAt(5).Slant)
	assert.Nil(t, tx.StyleAt(100))
}

func runes(s, sub []rune) int {
	for i := 0; i+len(sub) <= len(s); i++ {
		if string(s[i:i+len(sub)]) == string(sub) {
			return i
		}
	}
	return -1
}

func TestSubrange(t *testing.T) {
	tx := Text{}
	bold := NewStyle().SetWeight(Bold)
	tx.AddSpanString(nil, "Hello ").AddSpanString(bold, "bold").AddSpanString(nil, " world")

	sub := tx.Subrange(3, 12)
	assert.Equal(t, "lo bold w", sub.String())
	require.Equal(t, 3, sub.NumSpans())
	assert.Nil(t, sub[0].Style)
	assert.Same(t, bold, sub[1].Style)

	assert.Equal(t, "", tx.Subrange(5, 5).String())
	assert.Equal(t, 0, tx.Subrange(5, 5).NumSpans())
	assert.Equal(t, tx.String(), tx.Subrange(-3, 100).String())
	assert.Equal(t, "Hel", tx.Prefix(3).String())

	// appending to a derived text must not change the source
	sub.AddRunes([]rune("XYZ"))
	assert.Equal(t, "Hello bold world", tx.String())
	assert.Equal(t, "lo bold wXYZ", sub.String())
}

func TestJoin(t *testing.T) {
	a := NewPlainText("abc")
	b := NewText(NewStyle().SetLink("x"), []rune("def"))
	e := NewPlainText("")
	j := Join(a, e, b)
	assert.Equal(t, "abcdef", j.String())
	assert.Equal(t, 2, j.NumSpans())
	assert.Equal(t, 0, Join().Len())

	j.AddRunes([]rune("!"))
	assert.Equal(t, "def", b.String())
}

func TestLinks(t *testing.T) {
	tx := NewPlainText("read ")
	lk := NewStyle().SetLink("readmore:more")
	tx.AddSpanString(lk, "more")
	tx.AddSpanString(NewStyle().SetLink("readmore:more").SetWeight(Bold), "!")
	tx.AddSpanString(nil, " tail")

	lks := tx.GetLinks()
	require.Len(t, lks, 1)
	assert.Equal(t, "more!", lks[0].Label)
	assert.Equal(t, "readmore:more", lks[0].URL)
	assert.Equal(t, textpos.Range{Start: 5, End: 10}, lks[0].Range)

	got, ok := tx.LinkAt(7)
	assert.True(t, ok)
	assert.Equal(t, lks[0], got)
	_, ok = tx.LinkAt(2)
	assert.False(t, ok)
}

func TestPlaceholder(t *testing.T) {
	tx := NewPlainText("ab")
	tx.AddPlaceholder(nil, Placeholder{Name: "icon", Width: 3, Height: 1}, '[', 'i', ']')
	tx.AddRunes([]rune("cd"))
	assert.Equal(t, "ab[i]cd", tx.String())
	assert.Equal(t, 3, tx.NumSpans())

	r, ph, ok := tx.PlaceholderAt(3)
	require.True(t, ok)
	assert.Equal(t, "icon", ph.Name)
	assert.Equal(t, textpos.Range{Start: 2, End: 5}, r)
	_, _, ok = tx.PlaceholderAt(5)
	assert.False(t, ok)

	assert.Equal(t, 2, tx.SafeBoundary(4))
	assert.Equal(t, 2, tx.SafeBoundary(2))
	assert.Equal(t, 5, tx.SafeBoundary(5))

	sub := tx.Subrange(0, 4)
	assert.NotNil(t, sub[1].Placeholder)

	def := Text{}
	def.AddPlaceholder(nil, Placeholder{Width: 1})
	assert.Equal(t, string(ObjectReplacement), def.String())
}

func TestGraphemes(t *testing.T) {
	// family emoji ZWJ sequence is 5 runes, one cluster
	tx := NewPlainText("ab\U0001F468\u200D\U0001F469\u200D\U0001F467cd")
	assert.Equal(t, []int{0, 1, 2, 7, 8, 9}, tx.GraphemeBoundaries())
	assert.Equal(t, 2, tx.GraphemeStart(2))
	assert.Equal(t, 2, tx.GraphemeStart(4))
	assert.Equal(t, 7, tx.GraphemeStart(7))
	assert.Equal(t, 9, tx.GraphemeStart(100))
	assert.Equal(t, 0, tx.GraphemeStart(-1))
	assert.Equal(t, 2, tx.SafeBoundary(6))

	crlf := NewPlainText("a\r\nb")
	assert.Equal(t, 1, crlf.GraphemeStart(2))

	comb := NewPlainText("e\u0301x")
	assert.Equal(t, 0, comb.GraphemeStart(1))

	assert.Equal(t, []int{0}, Text{}.GraphemeBoundaries())
}

func TestUTF16(t *testing.T) {
	tx := NewPlainText("a\U0001F600b")
	assert.Equal(t, 3, tx.Len())
	assert.Equal(t, 4, tx.UTF16Len())
	assert.Equal(t, 1, tx.UTF16Offset(1))
	assert.Equal(t, 3, tx.UTF16Offset(2))
	assert.Equal(t, 4, tx.UTF16Offset(3))
}

func TestIsLineTerminator(t *testing.T) {
	for _, r := range "\n\r\v\f\u0085\u2028\u2029" {
		assert.True(t, IsLineTerminator(r), "%U", r)
	}
	for _, r := range " \ta\u00A0" {
		assert.False(t, IsLineTerminator(r), "%U", r)
	}
}

func TestResolve(t *testing.T) {
	red := color.RGBA{R: 255, A: 255}
	blue := color.RGBA{B: 255, A: 255}
	gray := color.RGBA{R: 128, G: 128, B: 128, A: 255}

	explicit := NewStyle().SetWeight(Bold)
	inherited := NewStyle().SetColor(blue).SetWeight(Light).SetSize(1.2)
	ambient := NewStyle().SetColor(gray).SetSlant(SlantNormal).SetSize(2)

	r := Resolve(explicit, inherited, ambient)
	assert.Equal(t, Bold, r.Weight)
	assert.Equal(t, color.Color(blue), r.Color)
	assert.Equal(t, float32(1.2), r.Size)
	assert.Equal(t, SlantNormal, r.Slant)

	r = Resolve(NewStyle().SetColor(red), nil, ambient)
	assert.Equal(t, color.Color(red), r.Color)
	assert.Equal(t, float32(2), r.Size)

	r = Resolve(nil, nil, nil)
	assert.Equal(t, Style{}, r)

	// explicit "none" decoration overrides an inherited underline
	r = Resolve(NewStyle().SetDecoration(NoDecoration), NewStyle().SetDecoration(Underline), nil)
	assert.False(t, r.Decoration.HasFlag(Underline))

	lk := Resolve(nil, NewStyle().SetLink("u"), nil)
	assert.Equal(t, Link, lk.Special)
	assert.Equal(t, "u", lk.URL)

	m := inherited.Merge(explicit)
	assert.Equal(t, Bold, m.Weight)
	assert.Equal(t, color.Color(blue), m.Color)
	assert.Equal(t, Light, inherited.Weight)
}

func TestWithBaseStyle(t *testing.T) {
	tx := NewPlainText("a")
	tx.AddSpanString(NewStyle().SetSlant(Italic), "b")
	nt := tx.WithBaseStyle(NewStyle().SetWeight(Bold))
	assert.Equal(t, Bold, nt[0].Style.Weight)
	assert.Equal(t, Bold, nt[1].Style.Weight)
	assert.Equal(t, Italic, nt[1].Style.Slant)
	assert.Nil(t, tx[0].Style)
}

func TestStyleText(t *testing.T) {
	var w Weights
	require.NoError(t, w.UnmarshalText([]byte("Semi-Bold")))
	assert.Equal(t, SemiBold, w)
	assert.Equal(t, float32(600), w.ToFloat32())
	assert.Equal(t, float32(400), WeightUnset.ToFloat32())
	assert.Error(t, w.UnmarshalText([]byte("heavy")))
	b, err := Bold.MarshalText()
	assert.NoError(t, err)
	assert.Equal(t, "bold", string(b))

	var s Slants
	require.NoError(t, s.UnmarshalText([]byte("italic")))
	assert.Equal(t, Italic, s)
	assert.Error(t, s.UnmarshalText([]byte("oblique")))

	var d Decorations
	d.SetFlag(true, Underline|LineThrough)
	assert.Equal(t, "underline|line-through", d.String())
	d.SetFlag(false, Underline)
	assert.Equal(t, "line-through", d.String())
	require.NoError(t, d.UnmarshalText([]byte("Underline | none")))
	assert.Equal(t, Underline|NoDecoration, d)
	assert.Error(t, d.UnmarshalText([]byte("blink")))
	b, err = (Underline | LineThrough).MarshalText()
	assert.NoError(t, err)
	assert.Equal(t, "underline|line-through", string(b))

	st := NewStyle().SetWeight(Bold).SetLink("x")
	assert.Equal(t, "bold link: x", st.String())
	assert.Equal(t, "unset", (*Style)(nil).String())
}

