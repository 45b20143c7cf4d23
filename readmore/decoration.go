// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package readmore

import (
	"strings"

	"cogentcore.org/readmore/text/rich"
	"cogentcore.org/readmore/text/shaped"
)

const (
	// EllipsisRune is the overflow indicator glyph.
	EllipsisRune = '\u2026'

	// NoBreakSpace joins the indicator and affordance, and replaces
	// the spaces of the affordance so that it never wraps.
	NoBreakSpace = '\u00A0'

	// MoreURL is the link URL of the read-more affordance under [ToggleMore].
	MoreURL = "readmore:more"

	// LessURL is the link URL of the read-less affordance under [ToggleMore].
	LessURL = "readmore:less"
)

// Decoration is the trailing unit appended to collapsed text:
// the overflow indicator followed by the affordance.
type Decoration struct {

	// Indicator is empty under [Clip], otherwise an ellipsis, followed
	// by a no-break space if the affordance is not empty.
	Indicator rich.Text

	// Affordance is the clickable label, with its spaces replaced by
	// no-break spaces.
	Affordance rich.Text

	// IndicatorWidth and AffordanceWidth are the measured
	// widths of the fragments.
	IndicatorWidth, AffordanceWidth float32

	// Width is the combined width of the decoration.
	Width float32
}

// Text returns the indicator followed by the affordance.
func (d *Decoration) Text() rich.Text {
	return rich.Join(d.Indicator, d.Affordance)
}

// IsEmpty returns true if there is neither an indicator nor an affordance.
func (d *Decoration) IsEmpty() bool {
	return d.Indicator.IsEmpty() && d.Affordance.IsEmpty()
}

// SetWidths sets the fragment widths and their sum.
func (d *Decoration) SetWidths(indicator, affordance float32) {
	d.IndicatorWidth, d.AffordanceWidth = indicator, affordance
	d.Width = indicator + affordance
}

// Decorator builds decorations from styling inputs. Each affordance
// style is resolved per attribute against the base text style and the
// ambient default with [rich.Resolve]: a property set on the affordance
// style wins, then the base style, then the ambient style.
type Decorator struct {

	// Base is the style of the text being truncated.
	Base *rich.Style

	// Ambient is the caller default for properties unset in both the
	// affordance and base styles, such as the ambient content color.
	Ambient *rich.Style

	// Overflow is the overflow policy.
	Overflow Overflows

	// ToggleArea determines whether the affordances carry a link annotation.
	ToggleArea ToggleAreas

	// More is the read-more affordance text, which can be empty.
	More string

	// MoreStyle overrides the style of the read-more affordance.
	MoreStyle *rich.Style

	// Less is the read-less affordance text shown after expanded text,
	// which can be empty.
	Less string

	// LessStyle overrides the style of the read-less affordance.
	// If nil, MoreStyle is used.
	LessStyle *rich.Style
}

// IndicatorStyle returns the resolved style of the overflow indicator,
// which follows the base text.
func (dc *Decorator) IndicatorStyle() *rich.Style {
	st := rich.Resolve(nil, dc.Base, dc.Ambient)
	return &st
}

// MoreTextStyle returns the resolved style of the read-more affordance.
func (dc *Decorator) MoreTextStyle() *rich.Style {
	st := rich.Resolve(dc.MoreStyle, dc.Base, dc.Ambient)
	if dc.ToggleArea == ToggleMore {
		st.SetLink(MoreURL)
	}
	return &st
}

// LessTextStyle returns the resolved style of the read-less affordance.
func (dc *Decorator) LessTextStyle() *rich.Style {
	ls := dc.LessStyle
	if ls == nil {
		ls = dc.MoreStyle
	}
	st := rich.Resolve(ls, dc.Base, dc.Ambient)
	if dc.ToggleArea == ToggleMore {
		st.SetLink(LessURL)
	}
	return &st
}

// Fragments returns the unmeasured indicator and affordance fragments.
func (dc *Decorator) Fragments() (indicator, affordance rich.Text) {
	if dc.More != "" {
		affordance = rich.NewText(dc.MoreTextStyle(), []rune(strings.ReplaceAll(dc.More, " ", string(NoBreakSpace))))
	}
	var ind []rune
	if dc.Overflow == Ellipsis {
		ind = append(ind, EllipsisRune)
		if dc.More != "" {
			ind = append(ind, NoBreakSpace)
		}
	}
	if len(ind) > 0 {
		indicator = rich.NewText(dc.IndicatorStyle(), ind)
	}
	return
}

// Build returns the decoration, with fragments measured by the given shaper.
// Empty fragments have zero width and are not measured.
func (dc *Decorator) Build(sh shaped.Shaper) Decoration {
	var d Decoration
	d.Indicator, d.Affordance = dc.Fragments()
	d.SetWidths(measure(sh, d.Indicator), measure(sh, d.Affordance))
	return d
}

// ReadLess returns the read-less fragment appended after expanded text,
// which is empty if no read-less text is set. Unlike the read-more
// affordance, its spaces are kept.
func (dc *Decorator) ReadLess() rich.Text {
	if dc.Less == "" {
		return nil
	}
	return rich.NewText(dc.LessTextStyle(), []rune(dc.Less))
}

func measure(sh shaped.Shaper, tx rich.Text) float32 {
	if tx.IsEmpty() {
		return 0
	}
	return sh.MeasureWidth(tx)
}
