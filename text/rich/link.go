// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rich

import "cogentcore.org/readmore/text/textpos"

// LinkRec represents a hyperlink within the text.
type LinkRec struct {
	// Label is the text label for the link.
	Label string

	// URL is the full URL for the link.
	URL string

	// Range defines the starting and ending positions of the link,
	// in terms of source rune indexes.
	Range textpos.Range
}

// GetLinks gets all the links from the source. Adjacent [Link] spans
// with the same URL are merged into one link.
func (tx Text) GetLinks() []LinkRec {
	var lks []LinkRec
	ci := 0
	for _, s := range tx {
		ns := len(s.Runes)
		st := ci
		ci += ns
		if s.Style == nil || s.Style.Special != Link || ns == 0 {
			continue
		}
		if n := len(lks); n > 0 && lks[n-1].URL == s.Style.URL && lks[n-1].Range.End == st {
			lks[n-1].Range.End = ci
			lks[n-1].Label += string(s.Runes)
			continue
		}
		lks = append(lks, LinkRec{Label: string(s.Runes), URL: s.Style.URL, Range: textpos.Range{Start: st, End: ci}})
	}
	return lks
}

// LinkAt returns the link containing the given logical index, if any.
func (tx Text) LinkAt(li int) (LinkRec, bool) {
	for _, lk := range tx.GetLinks() {
		if lk.Range.Contains(li) {
			return lk, true
		}
	}
	return LinkRec{}, false
}
