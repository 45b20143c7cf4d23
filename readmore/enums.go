// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package readmore

import (
	"strings"

	"cogentcore.org/readmore/base/errors"
)

// Overflows are the overflow policies for collapsed text.
type Overflows int32 //enums:enum

const (
	// Clip shows no indicator between the collapsed text and the affordance.
	Clip Overflows = iota

	// Ellipsis inserts an ellipsis before the affordance.
	Ellipsis
)

func (o Overflows) String() string {
	if o == Clip {
		return "clip"
	}
	return "ellipsis"
}

// MarshalText implements [encoding.TextMarshaler].
func (o Overflows) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (o *Overflows) UnmarshalText(text []byte) error {
	switch strings.ToLower(string(text)) {
	case "clip":
		*o = Clip
	case "ellipsis":
		*o = Ellipsis
	default:
		return errors.Errorf("readmore: %q is not a valid overflow (clip, ellipsis)", text)
	}
	return nil
}

// ToggleAreas are the regions of a text block that toggle its
// expanded state when clicked.
type ToggleAreas int32 //enums:enum

const (
	// ToggleAll makes the entire block toggle when it is collapsible.
	ToggleAll ToggleAreas = iota

	// ToggleMore makes only the affordance toggle, by annotating it as a link.
	ToggleMore
)

func (ta ToggleAreas) String() string {
	if ta == ToggleMore {
		return "more"
	}
	return "all"
}

// MarshalText implements [encoding.TextMarshaler].
func (ta ToggleAreas) MarshalText() ([]byte, error) {
	return []byte(ta.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (ta *ToggleAreas) UnmarshalText(text []byte) error {
	switch strings.ToLower(string(text)) {
	case "all":
		*ta = ToggleAll
	case "more":
		*ta = ToggleMore
	default:
		return errors.Errorf("readmore: %q is not a valid toggle area (all, more)", text)
	}
	return nil
}

// States are the states of a [Coordinator].
type States int32 //enums:enum

const (
	// AwaitingPrimary means no layout of the full text has been accepted.
	AwaitingPrimary States = iota

	// AwaitingDecoration means the full text layout is known, but not
	// yet all of the decoration fragment widths.
	AwaitingDecoration

	// Published means a truncation has been resolved and published.
	Published
)

func (s States) String() string {
	switch s {
	case AwaitingDecoration:
		return "awaiting-decoration"
	case Published:
		return "published"
	}
	return "awaiting-primary"
}
