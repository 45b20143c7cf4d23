// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shaped

import (
	"fmt"

	"cogentcore.org/readmore/base/errors"
)

// ErrInvalidMaxLines is returned when truncation is requested with
// a line budget of less than one line.
var ErrInvalidMaxLines = errors.Sentinel("shaped: max lines must be at least 1")

// Constraints are the layout constraints for wrapping text.
type Constraints struct {

	// MaxWidth is the available width. A value <= 0 means the width
	// is not yet known.
	MaxWidth float32

	// SoftWrap enables wrapping at word boundaries when a line
	// exceeds MaxWidth. Without it, each paragraph is a single line.
	SoftWrap bool

	// MaxLines is the maximum number of lines to lay out.
	// 0 means no limit when measuring.
	MaxLines int
}

// Validate returns [ErrInvalidMaxLines] if the constraints cannot be
// used for truncation.
func (cs Constraints) Validate() error {
	if cs.MaxLines <= 0 {
		return errors.Errorf("%w: got %d", ErrInvalidMaxLines, cs.MaxLines)
	}
	return nil
}

// HasWidth returns true if the available width is known.
func (cs Constraints) HasWidth() bool {
	return cs.MaxWidth > 0
}

// Unbounded returns constraints with the same wrapping behavior and
// no line cap, for measuring text in its expanded form.
func (cs Constraints) Unbounded() Constraints {
	cs.MaxLines = 0
	return cs
}

func (cs Constraints) String() string {
	return fmt.Sprintf("width: %g wrap: %v lines: %d", cs.MaxWidth, cs.SoftWrap, cs.MaxLines)
}
