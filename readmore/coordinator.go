// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package readmore

import (
	"log/slog"

	"cogentcore.org/readmore/text/shaped"
)

// Coordinator resolves truncation incrementally from three layouts
// that arrive separately, in any order: the full text under the line
// budget (the primary layout), the overflow indicator, and the affordance.
// It caches the last accepted layout of each, and only recomputes when
// an event changes something the result depends on, so that publishing
// a result that triggers a new layout pass cannot oscillate.
//
// A Coordinator is owned by one text block and is not safe for
// concurrent use. Events delivered while a recompute is running, for
// example from the OnResolved callback, update the cached layouts, and
// if they changed anything the result is recomputed once more after
// the callback returns.
type Coordinator struct {

	// OnResolved, if set, is called with each published result.
	OnResolved func(r Resolved)

	resolver Resolver
	cs       shaped.Constraints
	state    States

	primary        *shaped.Lines
	primaryClipped bool

	indicator, affordance fragment

	result  Resolved
	busy    bool
	pending bool
}

// fragment is the cached measurement of one decoration fragment.
type fragment struct {
	measured bool
	width    float32
}

// set records the width of the fragment, returning whether it changed.
// The first measurement always counts as a change.
func (f *fragment) set(w float32) bool {
	if f.measured && f.width == w {
		return false
	}
	f.measured, f.width = true, w
	return true
}

// reset forgets the measurement. An empty fragment is measured
// at zero width from the start.
func (f *fragment) reset(empty bool) {
	*f = fragment{measured: empty}
}

// NewCoordinator returns a new coordinator for the given constraints,
// using the shaper for LTR measurement. The decoration only determines
// which fragments are empty, and thus need no layout: its widths
// are ignored. Returns [shaped.ErrInvalidMaxLines] if cs.MaxLines < 1.
func NewCoordinator(sh shaped.Shaper, cs shaped.Constraints, dec Decoration) (*Coordinator, error) {
	if err := cs.Validate(); err != nil {
		return nil, err
	}
	c := &Coordinator{resolver: Resolver{Shaper: sh}, cs: cs}
	c.indicator.reset(dec.Indicator.IsEmpty())
	c.affordance.reset(dec.Affordance.IsEmpty())
	return c, nil
}

// SetTrimSpace sets whether trailing whitespace is trimmed from the collapsed text.
func (c *Coordinator) SetTrimSpace(trim bool) {
	c.resolver.TrimSpace = trim
}

// State returns the current state.
func (c *Coordinator) State() States {
	return c.state
}

// Resolved returns the published result, and whether it is current.
func (c *Coordinator) Resolved() (Resolved, bool) {
	return c.result, c.state == Published
}

// Constraints returns the current constraints.
func (c *Coordinator) Constraints() shaped.Constraints {
	return c.cs
}

// SetText notifies that the text has changed, so that the next
// primary layout is accepted.
func (c *Coordinator) SetText() {
	c.resetPrimary()
}

// SetConstraints sets new constraints. If they differ from the current
// ones, the cached primary layout is dropped.
func (c *Coordinator) SetConstraints(cs shaped.Constraints) error {
	if err := cs.Validate(); err != nil {
		return err
	}
	if cs == c.cs {
		return nil
	}
	c.cs = cs
	c.resetPrimary()
	return nil
}

// SetDecoration resets the cached fragment widths for a new decoration.
// If the new decoration is empty and the primary layout is known,
// the result is recomputed immediately.
func (c *Coordinator) SetDecoration(dec Decoration) (Resolved, bool) {
	c.indicator.reset(dec.Indicator.IsEmpty())
	c.affordance.reset(dec.Affordance.IsEmpty())
	if c.state == Published {
		c.state = AwaitingDecoration
	}
	return c.recompute()
}

func (c *Coordinator) resetPrimary() {
	c.primary = nil
	c.primaryClipped = false
	c.updateState()
}

// OnPrimaryLayout handles a layout of the full text under the current
// constraints. It is only considered if whether the layout is clipped
// differs from the cached primary layout, or there is none.
func (c *Coordinator) OnPrimaryLayout(lns *shaped.Lines) (Resolved, bool) {
	clipped := lns.Clipped(c.cs.MaxLines)
	if c.primary != nil && clipped == c.primaryClipped {
		return Resolved{}, false
	}
	c.primary, c.primaryClipped = lns, clipped
	return c.recompute()
}

// OnOverflowLayout handles a layout of the overflow indicator. It is
// only considered if its width differs from the cached width.
func (c *Coordinator) OnOverflowLayout(lns *shaped.Lines) (Resolved, bool) {
	return c.onFragment(&c.indicator, "indicator", lns)
}

// OnAffordanceLayout handles a layout of the affordance. It is
// only considered if its width differs from the cached width.
func (c *Coordinator) OnAffordanceLayout(lns *shaped.Lines) (Resolved, bool) {
	return c.onFragment(&c.affordance, "affordance", lns)
}

func (c *Coordinator) onFragment(f *fragment, name string, lns *shaped.Lines) (Resolved, bool) {
	if !f.set(lns.Width()) {
		return Resolved{}, false
	}
	slog.Debug("readmore: fragment measured", "fragment", name, "width", f.width)
	return c.recompute()
}

// recompute resolves and publishes if all three layouts are known.
// While publishing, it only records that another pass is needed:
// a change made from the OnResolved callback is published by one
// more pass, after which further changes wait for the next event.
func (c *Coordinator) recompute() (Resolved, bool) {
	c.updateState()
	if c.busy {
		c.pending = true
		return Resolved{}, false
	}
	r, ok := c.publish()
	if ok && c.pending {
		c.pending = false
		slog.Debug("readmore: recomputing after re-entrant layout")
		if r2, ok2 := c.publish(); ok2 {
			r = r2
		}
	}
	if c.pending {
		c.pending = false
		slog.Debug("readmore: deferred re-entrant layout to the next event")
	}
	return r, ok
}

// publish resolves and publishes if all three layouts are known.
func (c *Coordinator) publish() (Resolved, bool) {
	c.updateState()
	if c.state == AwaitingPrimary || !c.indicator.measured || !c.affordance.measured {
		return Resolved{}, false
	}
	c.busy = true
	defer func() { c.busy = false }()
	r := c.resolver.ResolveLines(c.primary, c.cs, c.indicator.width+c.affordance.width)
	c.result = r
	c.state = Published
	slog.Debug("readmore: published", "collapsible", r.Collapsible, "len", r.Collapsed.Len())
	if c.OnResolved != nil {
		c.OnResolved(r)
	}
	return r, true
}

func (c *Coordinator) updateState() {
	switch {
	case c.primary == nil:
		c.state = AwaitingPrimary
	case !c.indicator.measured || !c.affordance.measured:
		c.state = AwaitingDecoration
	case c.state == AwaitingPrimary:
		c.state = AwaitingDecoration
	}
}
