// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rich

import (
	"fmt"
	"image/color"
	"strings"

	"cogentcore.org/readmore/base/errors"
)

// Style contains all of the rich text styling properties, that apply
// to one span of text. Every property has an unset state (the zero value,
// or nil for Color), which means that the value is inherited from
// the surrounding style: see [Resolve] for the precedence rules.
// The truncation engine never inspects these values except to merge them;
// they are interpreted by the [shaped.Shaper] that measures the text.
type Style struct { //types:add

	// Color is the fill color of the glyphs. nil means unset.
	Color color.Color

	// Size is the font size multiplier relative to the standard font size
	// of the shaper (1 = normal). 0 means unset.
	Size float32

	// Weight is the font weight (Normal, Bold, etc).
	Weight Weights

	// Slant is the font slant (Normal, Italic).
	Slant Slants

	// Family is the font family name, e.g. "sans-serif" or "monospace".
	// Empty means unset.
	Family string

	// Decoration are the line decorations (underline, line-through),
	// with [NoDecoration] explicitly turning them off.
	Decoration Decorations

	// Direction is the text direction for this span. Default means
	// the direction is determined from the text content.
	Direction Directions

	// Special is a special kind of span, e.g., [Link].
	Special Specials

	// URL is the target of a [Link] span, used as an annotation
	// identifying the click action.
	URL string
}

// NewStyle returns a new, fully unset, [Style].
func NewStyle() *Style {
	return &Style{}
}

// Clone returns a copy of the style. A nil style clones to an unset style.
func (s *Style) Clone() *Style {
	ns := &Style{}
	if s != nil {
		*ns = *s
	}
	return ns
}

// IsZero returns true if no property is set.
func (s *Style) IsZero() bool {
	return s == nil || *s == Style{}
}

// SetColor sets the glyph fill color.
func (s *Style) SetColor(c color.Color) *Style {
	s.Color = c
	return s
}

// SetSize sets the font size multiplier.
func (s *Style) SetSize(size float32) *Style {
	s.Size = size
	return s
}

// SetWeight sets the font weight.
func (s *Style) SetWeight(w Weights) *Style {
	s.Weight = w
	return s
}

// SetSlant sets the font slant.
func (s *Style) SetSlant(sl Slants) *Style {
	s.Slant = sl
	return s
}

// SetFamily sets the font family.
func (s *Style) SetFamily(f string) *Style {
	s.Family = f
	return s
}

// SetDecoration sets the given decoration flags.
func (s *Style) SetDecoration(d Decorations) *Style {
	s.Decoration = d
	return s
}

// SetDirection sets the text direction.
func (s *Style) SetDirection(d Directions) *Style {
	s.Direction = d
	return s
}

// SetLink marks the span as a [Link] to the given URL.
func (s *Style) SetLink(url string) *Style {
	s.Special = Link
	s.URL = url
	return s
}

// Merge returns a new style where the properties set in o override
// those of s, and all other properties are inherited from s.
func (s *Style) Merge(o *Style) *Style {
	ns := Resolve(o, s, nil)
	return &ns
}

// Resolve returns the style resulting from applying the three-level
// precedence rule independently to each property:
// an explicitly set property in explicit always wins; otherwise
// the property of inherited is used if it is set; otherwise the
// property of ambient (the caller-specified default) is used.
// Any of the styles may be nil.
func Resolve(explicit, inherited, ambient *Style) Style {
	e, i, a := explicit.Clone(), inherited.Clone(), ambient.Clone()
	var r Style
	r.Color = pick(e.Color, i.Color, a.Color, func(c color.Color) bool { return c != nil })
	r.Size = pick(e.Size, i.Size, a.Size, func(v float32) bool { return v > 0 })
	r.Weight = pick(e.Weight, i.Weight, a.Weight, func(v Weights) bool { return v != WeightUnset })
	r.Slant = pick(e.Slant, i.Slant, a.Slant, func(v Slants) bool { return v != SlantUnset })
	r.Family = pick(e.Family, i.Family, a.Family, func(v string) bool { return v != "" })
	r.Decoration = pick(e.Decoration, i.Decoration, a.Decoration, func(v Decorations) bool { return v != 0 })
	r.Direction = pick(e.Direction, i.Direction, a.Direction, func(v Directions) bool { return v != Default })
	if e.Special != Nothing {
		r.Special, r.URL = e.Special, e.URL
	} else if i.Special != Nothing {
		r.Special, r.URL = i.Special, i.URL
	}
	return r
}

// pick returns the first of the given values that is set.
func pick[T any](explicit, inherited, ambient T, set func(T) bool) T {
	switch {
	case set(explicit):
		return explicit
	case set(inherited):
		return inherited
	default:
		return ambient
	}
}

func (s *Style) String() string {
	if s.IsZero() {
		return "unset"
	}
	var str []string
	if s.Color != nil {
		r, g, b, a := s.Color.RGBA()
		str = append(str, fmt.Sprintf("color: #%02x%02x%02x%02x", r>>8, g>>8, b>>8, a>>8))
	}
	if s.Size > 0 {
		str = append(str, fmt.Sprintf("size: %g", s.Size))
	}
	if s.Weight != WeightUnset {
		str = append(str, s.Weight.String())
	}
	if s.Slant != SlantUnset {
		str = append(str, s.Slant.String())
	}
	if s.Family != "" {
		str = append(str, s.Family)
	}
	if s.Decoration != 0 {
		str = append(str, s.Decoration.String())
	}
	if s.Direction != Default {
		str = append(str, s.Direction.String())
	}
	if s.Special == Link {
		str = append(str, "link: "+s.URL)
	}
	return strings.Join(str, " ")
}

// Weights are the font weights, as in the CSS font-weight property.
type Weights int32 //enums:enum -transform kebab

const (
	// WeightUnset means the weight is inherited.
	WeightUnset Weights = iota

	// Thin weight (100) is the thinnest.
	Thin

	// ExtraLight weight (200).
	ExtraLight

	// Light weight (300).
	Light

	// Normal weight (400) is the default.
	Normal

	// Medium weight (500).
	Medium

	// SemiBold weight (600).
	SemiBold

	// Bold weight (700).
	Bold

	// ExtraBold weight (800).
	ExtraBold

	// Black weight (900) is the thickest.
	Black
)

var weightNames = []string{"unset", "thin", "extra-light", "light", "normal", "medium", "semi-bold", "bold", "extra-bold", "black"}

// ToFloat32 converts the weight to its numerical 100x value.
// An unset weight is treated as [Normal].
func (w Weights) ToFloat32() float32 {
	if w == WeightUnset {
		return 400
	}
	return float32(w * 100)
}

func (w Weights) String() string {
	if w < 0 || int(w) >= len(weightNames) {
		return fmt.Sprintf("Weights(%d)", int(w))
	}
	return weightNames[w]
}

// MarshalText implements [encoding.TextMarshaler].
func (w Weights) MarshalText() ([]byte, error) {
	return []byte(w.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (w *Weights) UnmarshalText(text []byte) error {
	s := strings.ToLower(string(text))
	if s == "" {
		*w = WeightUnset
		return nil
	}
	for i, n := range weightNames {
		if n == s {
			*w = Weights(i)
			return nil
		}
	}
	return errors.Errorf("rich: %q is not a valid font weight", text)
}

// Slants are the different slant options for a font.
type Slants int32 //enums:enum -transform kebab

const (
	// SlantUnset means the slant is inherited.
	SlantUnset Slants = iota

	// SlantNormal is the normal upright style.
	SlantNormal

	// Italic is the italic (oblique) style.
	Italic
)

var slantNames = []string{"unset", "normal", "italic"}

func (s Slants) String() string {
	if s < 0 || int(s) >= len(slantNames) {
		return fmt.Sprintf("Slants(%d)", int(s))
	}
	return slantNames[s]
}

// MarshalText implements [encoding.TextMarshaler].
func (s Slants) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (s *Slants) UnmarshalText(text []byte) error {
	str := strings.ToLower(string(text))
	if str == "" {
		*s = SlantUnset
		return nil
	}
	for i, n := range slantNames {
		if n == str {
			*s = Slants(i)
			return nil
		}
	}
	return errors.Errorf("rich: %q is not a valid font slant", text)
}

// Decorations are text decoration bit flags. The zero value means
// unset (inherited); [NoDecoration] explicitly removes decorations.
type Decorations int64 //enums:bitflag

const (
	// Underline indicates to place a line below text.
	Underline Decorations = 1 << iota

	// LineThrough indicates to place a line through text.
	LineThrough

	// NoDecoration explicitly sets no decoration, overriding an
	// inherited one.
	NoDecoration
)

// HasFlag returns true if the given flag is set.
func (d Decorations) HasFlag(f Decorations) bool {
	return d&f != 0
}

// SetFlag sets or clears the given flag(s).
func (d *Decorations) SetFlag(on bool, f Decorations) {
	if on {
		*d |= f
	} else {
		*d &^= f
	}
}

func (d Decorations) String() string {
	var str []string
	if d.HasFlag(Underline) {
		str = append(str, "underline")
	}
	if d.HasFlag(LineThrough) {
		str = append(str, "line-through")
	}
	if d.HasFlag(NoDecoration) {
		str = append(str, "none")
	}
	return strings.Join(str, "|")
}

// MarshalText implements [encoding.TextMarshaler].
func (d Decorations) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler], parsing
// flag names separated by |, with "none" for [NoDecoration].
func (d *Decorations) UnmarshalText(text []byte) error {
	*d = 0
	for _, f := range strings.Split(string(text), "|") {
		switch strings.ToLower(strings.TrimSpace(f)) {
		case "":
		case "underline":
			*d |= Underline
		case "line-through":
			*d |= LineThrough
		case "none":
			*d |= NoDecoration
		default:
			return errors.Errorf("rich: %q is not a valid decoration", f)
		}
	}
	return nil
}

// Directions specifies the text layout direction.
type Directions int32 //enums:enum

const (
	// Default uses the direction determined by the text content.
	Default Directions = iota

	// LTR is Left-to-Right text.
	LTR

	// RTL is Right-to-Left text.
	RTL
)

func (d Directions) String() string {
	switch d {
	case LTR:
		return "LTR"
	case RTL:
		return "RTL"
	}
	return "Default"
}

// Specials are special kinds of spans.
type Specials int32 //enums:enum

const (
	// Nothing is a plain span.
	Nothing Specials = iota

	// Link is a clickable span, with the [Style.URL] identifying the target.
	Link
)
