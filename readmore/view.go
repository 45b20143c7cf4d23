// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package readmore

import (
	"log/slog"

	"cogentcore.org/readmore/base/errors"
	"cogentcore.org/readmore/text/rich"
	"cogentcore.org/readmore/text/shaped"
)

// ErrUnsupported is returned by [View] methods that would conflict
// with the truncation it manages.
var ErrUnsupported = errors.Sentinel("readmore: unsupported operation")

// View is an imperative text block that shows its text collapsed to
// a number of lines with a read-more affordance, and expands it when
// clicked. It lays out its text and decoration fragments with a
// [shaped.Shaper] and feeds the layouts to a [Coordinator].
type View struct {

	// OnStateChange, if set, is called when the expanded state changes.
	OnStateChange func(expanded bool)

	shaper   shaped.Shaper
	cfg      Config
	dec      *Decorator
	coord    *Coordinator
	text     rich.Text
	width    float32
	expanded bool
	onClick  func()

	decoration Decoration
	resolved   Resolved
}

// NewView returns a new view using the given shaper and config.
// The width is not known until [View.SetWidth] is called.
func NewView(sh shaped.Shaper, cfg *Config) (*View, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	dec, err := cfg.Decorator(nil, nil)
	if err != nil {
		return nil, err
	}
	v := &View{shaper: sh, cfg: *cfg, dec: dec}
	v.decoration = dec.Build(sh)
	v.coord, err = NewCoordinator(sh, cfg.Constraints(0), v.decoration)
	if err != nil {
		return nil, err
	}
	v.coord.SetTrimSpace(cfg.TrimSpace)
	v.layout()
	return v, nil
}

// Config returns the configuration of the view.
func (v *View) Config() Config {
	return v.cfg
}

// Text returns the full text.
func (v *View) Text() rich.Text {
	return v.text
}

// SetText sets the full text.
func (v *View) SetText(tx rich.Text) *View {
	v.text = tx
	v.coord.SetText()
	v.layout()
	return v
}

// SetStyles sets the base style of the text and the ambient
// defaults that the decoration styles resolve against.
// Properties set on the spans of the text take precedence over base.
func (v *View) SetStyles(base, ambient *rich.Style) *View {
	v.dec.Base, v.dec.Ambient = base, ambient
	v.decoration = v.dec.Build(v.shaper)
	v.coord.SetText()
	v.coord.SetDecoration(v.decoration)
	v.layout()
	return v
}

// styled returns the text resolved against the base style.
func (v *View) styled() rich.Text {
	return v.text.WithBaseStyle(v.dec.Base)
}

// Width returns the available width.
func (v *View) Width() float32 {
	return v.width
}

// SetWidth sets the available width. The truncation is only
// recomputed if the width changes.
func (v *View) SetWidth(width float32) *View {
	if width == v.width {
		return v
	}
	v.width = width
	errors.Log(v.coord.SetConstraints(v.cfg.Constraints(width)))
	v.layout()
	return v
}

// Expanded returns whether the full text is shown.
func (v *View) Expanded() bool {
	return v.expanded
}

// SetExpanded sets whether the full text is shown.
func (v *View) SetExpanded(expanded bool) *View {
	if expanded == v.expanded {
		return v
	}
	v.expanded = expanded
	slog.Debug("readmore: view state changed", "expanded", expanded)
	if v.OnStateChange != nil {
		v.OnStateChange(expanded)
	}
	return v
}

// Toggle toggles the expanded state if the text is collapsible.
func (v *View) Toggle() *View {
	if !v.resolved.Collapsible {
		return v
	}
	return v.SetExpanded(!v.expanded)
}

// Resolved returns the current truncation.
func (v *View) Resolved() Resolved {
	return v.resolved
}

// Decoration returns the measured decoration.
func (v *View) Decoration() Decoration {
	return v.decoration
}

// SetOnClick sets a function called when the view is clicked. It returns
// [ErrUnsupported] while clicks toggle the expanded state.
func (v *View) SetOnClick(fun func()) error {
	if v.cfg.ToggleEnabled {
		return errors.Errorf("%w: SetOnClick while toggling is enabled; disable Config.ToggleEnabled", ErrUnsupported)
	}
	v.onClick = fun
	return nil
}

// Click handles a click anywhere on the view. Under [ToggleAll] it
// toggles the expanded state; otherwise only links do, see [View.ClickLink].
func (v *View) Click() {
	if !v.cfg.ToggleEnabled {
		if v.onClick != nil {
			v.onClick()
		}
		return
	}
	if v.cfg.ToggleArea == ToggleAll {
		v.Toggle()
	}
}

// ClickLink handles a click on a link with the given URL, returning
// whether it was an affordance link that toggled the state.
func (v *View) ClickLink(url string) bool {
	if !v.cfg.ToggleEnabled || v.cfg.ToggleArea != ToggleMore {
		return false
	}
	if (url == MoreURL && !v.expanded) || (url == LessURL && v.expanded) {
		v.Toggle()
		return true
	}
	return false
}

// ClickAt handles a click at the given point, relative to the top left
// of the displayed text laid out at the width of the view. A click on an
// affordance link is handled by [View.ClickLink], others by [View.Click].
func (v *View) ClickAt(x, y float32) {
	tx := v.Display()
	lns := v.shaper.WrapLines(tx, v.cfg.Constraints(v.width).Unbounded())
	if i := lns.RuneAt(x, y); i >= 0 {
		if lk, ok := tx.LinkAt(i); ok && v.ClickLink(lk.URL) {
			return
		}
	}
	v.Click()
}

// Display returns the text to show: the collapsed text followed by the
// decoration, or the full text followed by the read-less affordance.
func (v *View) Display() rich.Text {
	tx := v.styled()
	if !v.resolved.Collapsible {
		return tx
	}
	if v.expanded {
		less := v.dec.ReadLess()
		if less.IsEmpty() {
			return tx
		}
		return rich.Join(tx, rich.NewText(v.dec.Base, []rune(" ")), less)
	}
	return rich.Join(v.resolved.Collapsed, v.decoration.Text())
}

// Links returns the links in the displayed text.
func (v *View) Links() []rich.LinkRec {
	return v.Display().GetLinks()
}

// SetLines returns [ErrUnsupported]: the number of lines is
// managed by the view.
func (v *View) SetLines(lines int) error {
	return errors.Errorf("%w: SetLines(%d); use Config.MaxLines", ErrUnsupported, lines)
}

// SetMaxLines returns [ErrUnsupported]: the number of lines is
// managed by the view.
func (v *View) SetMaxLines(lines int) error {
	return errors.Errorf("%w: SetMaxLines(%d); use Config.MaxLines", ErrUnsupported, lines)
}

// SetEllipsize returns [ErrUnsupported]: the overflow indicator is
// managed by the view.
func (v *View) SetEllipsize(overflow Overflows) error {
	return errors.Errorf("%w: SetEllipsize(%v); use Config.Overflow", ErrUnsupported, overflow)
}

// layout lays out the text and decoration fragments and
// delivers them to the coordinator.
func (v *View) layout() {
	cs := v.coord.Constraints()
	fcs := shaped.Constraints{}
	tx := v.styled()
	rs, ok := v.coord.OnPrimaryLayout(v.shaper.WrapLines(tx, cs))
	if r, k := v.coord.OnOverflowLayout(v.shaper.WrapLines(v.decoration.Indicator, fcs)); k {
		rs, ok = r, k
	}
	if r, k := v.coord.OnAffordanceLayout(v.shaper.WrapLines(v.decoration.Affordance, fcs)); k {
		rs, ok = r, k
	}
	if !ok {
		if r, k := v.coord.Resolved(); k {
			rs = r
		} else {
			rs = Resolved{Collapsed: tx}
		}
	}
	v.resolved = rs
	if !rs.Collapsible && v.expanded {
		v.SetExpanded(false)
	}
}
