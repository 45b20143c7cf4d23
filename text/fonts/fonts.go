// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package fonts provides the font faces used for proportional text
// measurement: the Go fonts and Latin Modern Roman are always embedded,
// and additional fonts can be loaded from any file system.
package fonts

import (
	"bytes"
	"io/fs"
	"path"
	"strings"
	"sync"

	"cogentcore.org/readmore/base/errors"
	"cogentcore.org/readmore/text/rich"
	"github.com/go-fonts/latin-modern/lmroman10bold"
	"github.com/go-fonts/latin-modern/lmroman10bolditalic"
	"github.com/go-fonts/latin-modern/lmroman10italic"
	"github.com/go-fonts/latin-modern/lmroman10regular"
	"github.com/go-text/typesetting/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gobolditalic"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/gomonobold"
	"golang.org/x/image/font/gofont/goregular"
)

// Standard family names of the embedded fonts.
const (
	SansSerif = "Go"
	Serif     = "Latin Modern Roman"
	Monospace = "Go Mono"
)

// Face is a loaded font face, with the style properties it provides.
type Face struct {

	// Family is the font family name.
	Family string

	// Weight is the weight of the face.
	Weight rich.Weights

	// Slant is the slant of the face.
	Slant rich.Slants

	// Face is the parsed face.
	Face *font.Face
}

var (
	once       sync.Once
	collection []*Face
	loadErr    error
)

// Embedded returns the collection of embedded fonts. The
// returned slice must not be modified.
func Embedded() ([]*Face, error) {
	once.Do(func() {
		var errs []error
		add := func(family string, w rich.Weights, sl rich.Slants, ttf []byte) {
			faces, err := font.ParseTTC(bytes.NewReader(ttf))
			if err != nil {
				errs = append(errs, errors.Errorf("fonts: parsing %s %s %s: %w", family, w, sl, err))
				return
			}
			collection = append(collection, &Face{Family: family, Weight: w, Slant: sl, Face: faces[0]})
		}
		add(SansSerif, rich.Normal, rich.SlantNormal, goregular.TTF)
		add(SansSerif, rich.Bold, rich.SlantNormal, gobold.TTF)
		add(SansSerif, rich.Normal, rich.Italic, goitalic.TTF)
		add(SansSerif, rich.Bold, rich.Italic, gobolditalic.TTF)
		add(Serif, rich.Normal, rich.SlantNormal, lmroman10regular.TTF)
		add(Serif, rich.Bold, rich.SlantNormal, lmroman10bold.TTF)
		add(Serif, rich.Normal, rich.Italic, lmroman10italic.TTF)
		add(Serif, rich.Bold, rich.Italic, lmroman10bolditalic.TTF)
		add(Monospace, rich.Normal, rich.SlantNormal, gomono.TTF)
		add(Monospace, rich.Bold, rich.SlantNormal, gomonobold.TTF)
		n := len(collection)
		collection = collection[:n:n]
		loadErr = errors.Join(errs...)
	})
	return collection, loadErr
}

// Load parses all of the .ttf, .otf and .ttc files in the given file system,
// describing each face from its own metadata.
func Load(fsys fs.FS) ([]*Face, error) {
	var faces []*Face
	var errs []error
	err := fs.WalkDir(fsys, ".", func(fpath string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		switch strings.ToLower(path.Ext(fpath)) {
		case ".ttf", ".otf", ".ttc":
		default:
			return nil
		}
		b, err := fs.ReadFile(fsys, fpath)
		if err != nil {
			errs = append(errs, err)
			return nil
		}
		fcs, err := font.ParseTTC(bytes.NewReader(b))
		if err != nil {
			errs = append(errs, errors.Errorf("fonts: parsing %q: %w", fpath, err))
			return nil
		}
		for _, fc := range fcs {
			desc := fc.Describe()
			faces = append(faces, &Face{
				Family: desc.Family,
				Weight: rich.Weights(int(desc.Aspect.Weight / 100)),
				Slant:  rich.Slants(desc.Aspect.Style),
				Face:   fc,
			})
		}
		return nil
	})
	if err != nil {
		errs = append(errs, err)
	}
	return faces, errors.Join(errs...)
}

// FamilyName maps a generic or alias family name to the name of
// an embedded family. Other names are returned unchanged.
func FamilyName(family string) string {
	switch strings.ToLower(strings.TrimSpace(family)) {
	case "", "sans-serif", "sans", "go", "default":
		return SansSerif
	case "serif", "latin modern roman", "roman":
		return Serif
	case "monospace", "mono", "go mono":
		return Monospace
	}
	return family
}

// Match returns the face among the given faces that best matches
// the family, weight and slant of the given style. The family is
// decisive, then slant, then the closest weight. If no face has the
// family, the embedded sans-serif family is used. Returns nil if
// faces is empty.
func Match(faces []*Face, sty *rich.Style) *Face {
	if len(faces) == 0 {
		return nil
	}
	sty = sty.Clone()
	fam := FamilyName(sty.Family)
	if !hasFamily(faces, fam) {
		fam = SansSerif
		if !hasFamily(faces, fam) {
			fam = faces[0].Family
		}
	}
	wt := sty.Weight
	if wt == rich.WeightUnset {
		wt = rich.Normal
	}
	sl := sty.Slant
	if sl == rich.SlantUnset {
		sl = rich.SlantNormal
	}
	var best *Face
	bestScore := 0
	for _, f := range faces {
		if !strings.EqualFold(f.Family, fam) {
			continue
		}
		score := 100 - abs(int(f.Weight)-int(wt))
		if f.Slant == sl {
			score += 1000
		}
		if best == nil || score > bestScore {
			best, bestScore = f, score
		}
	}
	return best
}

func hasFamily(faces []*Face, fam string) bool {
	for _, f := range faces {
		if strings.EqualFold(f.Family, fam) {
			return true
		}
	}
	return false
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
