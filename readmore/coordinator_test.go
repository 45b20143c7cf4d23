// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package readmore

import (
	"strings"
	"testing"

	"cogentcore.org/readmore/text/rich"
	"cogentcore.org/readmore/text/shaped"
	"cogentcore.org/readmore/text/shaped/shapedcell"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// layouts holds the three layouts delivered to a coordinator.
type layouts struct {
	primary, indicator, affordance *shaped.Lines
}

func layOut(sh shaped.Shaper, tx rich.Text, cs shaped.Constraints, dec Decoration) layouts {
	return layouts{
		primary:    sh.WrapLines(tx, cs),
		indicator:  sh.WrapLines(dec.Indicator, shaped.Constraints{}),
		affordance: sh.WrapLines(dec.Affordance, shaped.Constraints{}),
	}
}

// deliver delivers the layouts in the given order, returning the
// last published result.
func (ls layouts) deliver(c *Coordinator, order []int) (Resolved, bool) {
	var res Resolved
	published := false
	for _, i := range order {
		var r Resolved
		var ok bool
		switch i {
		case 0:
			r, ok = c.OnPrimaryLayout(ls.primary)
		case 1:
			r, ok = c.OnOverflowLayout(ls.indicator)
		case 2:
			r, ok = c.OnAffordanceLayout(ls.affordance)
		}
		if ok {
			res, published = r, true
		}
	}
	return res, published
}

var orders = [][]int{{0, 1, 2}, {0, 2, 1}, {1, 0, 2}, {1, 2, 0}, {2, 0, 1}, {2, 1, 0}}

func TestCoordinatorEquivalence(t *testing.T) {
	sh := shapedcell.NewShaper(false)
	texts := []string{
		strings.Repeat("a", 200),
		strings.Repeat("Lorem ipsum dolor sit amet. ", 8),
		"Hi",
		"abc\n\nxyz",
		"\u05D0\u05D1\u05D2\u05D3 \u05D4\u05D5\u05D6\u05D7 \u05D8\u05D9\u05DB\u05DC \u05DE\u05E0\u05E1\u05E2",
	}
	decs := []Decoration{
		decorate(sh, Ellipsis, "Read more"),
		decorate(sh, Clip, "more"),
		decorate(sh, Ellipsis, ""),
		decorate(sh, Clip, ""),
	}
	for _, src := range texts {
		tx := rich.NewPlainText(src)
		for _, dec := range decs {
			for _, cs := range []shaped.Constraints{
				{MaxWidth: 40, SoftWrap: true, MaxLines: 2},
				{MaxWidth: 10, SoftWrap: true, MaxLines: 1},
			} {
				exp, err := Resolve(sh, tx, cs, dec)
				require.NoError(t, err)
				ls := layOut(sh, tx, cs, dec)
				for _, order := range orders {
					c, err := NewCoordinator(sh, cs, dec)
					require.NoError(t, err)
					r, ok := ls.deliver(c, order)
					require.True(t, ok, "%q %v", src, order)
					assert.Equal(t, exp, r, "%q %v", src, order)
					assert.Equal(t, Published, c.State())
					cr, ok := c.Resolved()
					assert.True(t, ok)
					assert.Equal(t, exp, cr)
				}
			}
		}
	}
}

func TestCoordinatorStates(t *testing.T) {
	sh := shapedcell.NewShaper(false)
	cs := shaped.Constraints{MaxWidth: 40, SoftWrap: true, MaxLines: 2}
	dec := decorate(sh, Ellipsis, "Read more")
	tx := rich.NewPlainText(strings.Repeat("a", 200))
	ls := layOut(sh, tx, cs, dec)

	c, err := NewCoordinator(sh, cs, dec)
	require.NoError(t, err)
	assert.Equal(t, AwaitingPrimary, c.State())
	_, ok := c.Resolved()
	assert.False(t, ok)

	_, ok = c.OnOverflowLayout(ls.indicator)
	assert.False(t, ok)
	assert.Equal(t, AwaitingPrimary, c.State())

	_, ok = c.OnPrimaryLayout(ls.primary)
	assert.False(t, ok)
	assert.Equal(t, AwaitingDecoration, c.State())

	var published []Resolved
	c.OnResolved = func(r Resolved) { published = append(published, r) }
	r, ok := c.OnAffordanceLayout(ls.affordance)
	require.True(t, ok)
	assert.Equal(t, Published, c.State())
	assert.Equal(t, 68, r.Collapsed.Len())
	assert.Len(t, published, 1)
	assert.Equal(t, "published", c.State().String())
}

func TestCoordinatorGuards(t *testing.T) {
	sh := shapedcell.NewShaper(false)
	cs := shaped.Constraints{MaxWidth: 40, SoftWrap: true, MaxLines: 2}
	dec := decorate(sh, Ellipsis, "Read more")
	tx := rich.NewPlainText(strings.Repeat("a", 200))
	ls := layOut(sh, tx, cs, dec)

	c, err := NewCoordinator(sh, cs, dec)
	require.NoError(t, err)
	first, ok := ls.deliver(c, orders[0])
	require.True(t, ok)

	// repeated layouts with the same clipping and widths are ignored
	_, ok = ls.deliver(c, orders[3])
	assert.False(t, ok)

	// a still clipped primary layout of other text is ignored
	_, ok = c.OnPrimaryLayout(sh.WrapLines(rich.NewPlainText(strings.Repeat("b", 300)), cs))
	assert.False(t, ok)
	r, _ := c.Resolved()
	assert.Equal(t, first, r)

	// an unclipped layout is accepted
	r, ok = c.OnPrimaryLayout(sh.WrapLines(rich.NewPlainText("Hi"), cs))
	require.True(t, ok)
	assert.False(t, r.Collapsible)

	// a changed affordance width is accepted
	r, ok = c.OnPrimaryLayout(ls.primary)
	require.True(t, ok)
	wide := sh.WrapLines(rich.NewPlainText("Read\u00A0much\u00A0more"), shaped.Constraints{})
	r2, ok := c.OnAffordanceLayout(wide)
	require.True(t, ok)
	assert.Equal(t, r.Collapsed.Len()-5, r2.Collapsed.Len())
}

func TestCoordinatorReset(t *testing.T) {
	sh := shapedcell.NewShaper(false)
	cs := shaped.Constraints{MaxWidth: 40, SoftWrap: true, MaxLines: 2}
	dec := decorate(sh, Ellipsis, "Read more")
	tx := rich.NewPlainText(strings.Repeat("a", 200))
	ls := layOut(sh, tx, cs, dec)

	c, err := NewCoordinator(sh, cs, dec)
	require.NoError(t, err)
	_, ok := ls.deliver(c, orders[0])
	require.True(t, ok)

	c.SetText()
	assert.Equal(t, AwaitingPrimary, c.State())
	_, ok = c.Resolved()
	assert.False(t, ok)
	r, ok := c.OnPrimaryLayout(sh.WrapLines(rich.NewPlainText(strings.Repeat("b", 300)), cs))
	require.True(t, ok)
	assert.Equal(t, strings.Repeat("b", 68), r.Collapsed.String())

	assert.ErrorIs(t, c.SetConstraints(shaped.Constraints{MaxWidth: 20}), shaped.ErrInvalidMaxLines)
	assert.Equal(t, cs, c.Constraints())
	require.NoError(t, c.SetConstraints(cs))
	assert.Equal(t, Published, c.State())

	ncs := shaped.Constraints{MaxWidth: 20, SoftWrap: true, MaxLines: 2}
	require.NoError(t, c.SetConstraints(ncs))
	assert.Equal(t, AwaitingPrimary, c.State())
	r, ok = c.OnPrimaryLayout(sh.WrapLines(tx, ncs))
	require.True(t, ok)
	assert.Equal(t, 28, r.Collapsed.Len())

	// an empty decoration resolves immediately
	r, ok = c.SetDecoration(Decoration{})
	require.True(t, ok)
	assert.Equal(t, 39, r.Collapsed.Len())
	assert.Equal(t, Published, c.State())

	_, ok = c.SetDecoration(dec)
	assert.False(t, ok)
	assert.Equal(t, AwaitingDecoration, c.State())
}

func TestCoordinatorDegenerate(t *testing.T) {
	sh := shapedcell.NewShaper(false)
	cs := shaped.Constraints{MaxWidth: 10, SoftWrap: true, MaxLines: 1}
	c, err := NewCoordinator(sh, cs, decorate(sh, Clip, ""))
	require.NoError(t, err)
	r, ok := c.OnPrimaryLayout(sh.WrapLines(rich.NewPlainText("abcdefghijklmnop"), cs))
	require.True(t, ok)
	assert.Equal(t, "abcdefghi", r.Collapsed.String())
	assert.True(t, r.Collapsible)

	_, err = NewCoordinator(sh, shaped.Constraints{MaxWidth: 10}, Decoration{})
	assert.ErrorIs(t, err, shaped.ErrInvalidMaxLines)
}

func TestCoordinatorReentrant(t *testing.T) {
	sh := shapedcell.NewShaper(false)
	cs := shaped.Constraints{MaxWidth: 40, SoftWrap: true, MaxLines: 2}
	dec := decorate(sh, Ellipsis, "Read more")
	ls := layOut(sh, rich.NewPlainText(strings.Repeat("a", 200)), cs, dec)
	narrow := sh.WrapLines(rich.NewPlainText("x"), shaped.Constraints{})
	wide := sh.WrapLines(rich.NewPlainText("xx"), shaped.Constraints{})

	c, err := NewCoordinator(sh, cs, dec)
	require.NoError(t, err)
	calls := 0
	var last Resolved
	c.OnResolved = func(r Resolved) {
		calls++
		last = r
		if calls > 1 {
			return
		}
		// publishing triggers a new layout pass with a narrower affordance
		_, ok := c.OnAffordanceLayout(narrow)
		assert.False(t, ok)
		_, ok = c.OnPrimaryLayout(ls.primary)
		assert.False(t, ok)
	}
	r, ok := ls.deliver(c, orders[0])
	require.True(t, ok)
	assert.Equal(t, 2, calls)
	rs := Resolver{Shaper: sh}
	exp := rs.ResolveLines(ls.primary, cs, dec.IndicatorWidth+1)
	assert.Equal(t, exp.Collapsed.Len(), r.Collapsed.Len())
	assert.Equal(t, exp.Collapsed.Len(), last.Collapsed.Len())
	assert.Greater(t, r.Collapsed.Len(), 68)
	cur, ok := c.Resolved()
	assert.True(t, ok)
	assert.Equal(t, r.Collapsed.Len(), cur.Collapsed.Len())

	// a callback that always changes the layout is recomputed only once
	c, err = NewCoordinator(sh, cs, dec)
	require.NoError(t, err)
	calls = 0
	c.OnResolved = func(r Resolved) {
		calls++
		if calls%2 == 1 {
			c.OnAffordanceLayout(narrow)
		} else {
			c.OnAffordanceLayout(wide)
		}
	}
	_, ok = ls.deliver(c, orders[0])
	require.True(t, ok)
	assert.Equal(t, 2, calls)
	assert.Equal(t, Published, c.State())
	_, ok = c.OnAffordanceLayout(narrow)
	assert.True(t, ok)
	assert.Equal(t, 3, calls)
}
