// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shaped

import (
	"cogentcore.org/readmore/text/rich"
)

// Shaper is a text shaping system that can measure the layout of [rich.Text],
// including line wrapping. Implementations must be deterministic: the
// same text and constraints always produce the same layout.
type Shaper interface {

	// WrapLines performs line wrapping and shaping on the given rich text source,
	// subject to the given constraints. Paragraphs are split at line terminators
	// (see [rich.IsLineTerminator]) and wrapped separately. At most
	// cs.MaxLines lines are returned (no cap if MaxLines is 0), and text beyond
	// the cap is never ellipsized: it is reported by [Lines.Truncated].
	WrapLines(tx rich.Text, cs Constraints) *Lines

	// MeasureWidth returns the width of the given text laid out on a single
	// unconstrained line.
	MeasureWidth(tx rich.Text) float32
}
