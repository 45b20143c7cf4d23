// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package readmore

import (
	"cogentcore.org/readmore/base/config"
	"cogentcore.org/readmore/base/errors"
	"cogentcore.org/readmore/text/rich"
	"cogentcore.org/readmore/text/shaped"
	"github.com/lucasb-eyer/go-colorful"
)

// Config contains the user options for a read-more text block.
// Use [NewConfig] or [LoadConfig] to get the defaults set.
type Config struct {

	// MaxLines is the number of lines shown when collapsed.
	MaxLines int `default:"2" toml:"max-lines" yaml:"max-lines"`

	// Overflow is the overflow indicator policy.
	Overflow Overflows `default:"ellipsis" toml:"overflow" yaml:"overflow"`

	// ToggleArea is the region that toggles the expanded state.
	ToggleArea ToggleAreas `default:"all" toml:"toggle-area" yaml:"toggle-area"`

	// SoftWrap wraps lines at word boundaries.
	SoftWrap bool `default:"true" toml:"soft-wrap" yaml:"soft-wrap"`

	// ToggleEnabled makes clicks toggle the expanded state.
	// While it is set, custom click handlers are not supported.
	ToggleEnabled bool `default:"true" toml:"toggle-enabled" yaml:"toggle-enabled"`

	// TrimSpace trims trailing whitespace before the decoration.
	TrimSpace bool `toml:"trim-space" yaml:"trim-space"`

	// ReadMore is the text of the read-more affordance.
	ReadMore string `default:"Read more" toml:"read-more" yaml:"read-more"`

	// ReadLess is the text of the read-less affordance shown
	// after expanded text. It can be empty.
	ReadLess string `default:"Read less" toml:"read-less" yaml:"read-less"`

	// MoreStyle overrides the style of the read-more affordance.
	MoreStyle StyleConfig `toml:"more-style" yaml:"more-style"`

	// LessStyle overrides the style of the read-less affordance.
	// If it is not set, MoreStyle is used.
	LessStyle StyleConfig `toml:"less-style" yaml:"less-style"`
}

// StyleConfig is the serializable form of a [rich.Style].
// Unset fields inherit from the text style.
type StyleConfig struct {

	// Color is a hex color such as "#1e88e5".
	Color string `toml:"color" yaml:"color"`

	// Size is the font size multiplier.
	Size float32 `toml:"size" yaml:"size"`

	Weight rich.Weights `toml:"weight" yaml:"weight"`

	Slant rich.Slants `toml:"slant" yaml:"slant"`

	Family string `toml:"family" yaml:"family"`

	// Decoration is a list of line decorations, such as "underline".
	Decoration rich.Decorations `toml:"decoration" yaml:"decoration"`
}

// NewConfig returns a new [Config] with default values.
func NewConfig() *Config {
	cfg := &Config{}
	errors.Log(config.SetFromDefaults(cfg))
	return cfg
}

// LoadConfig returns a new [Config] with default values, overridden
// by the given TOML or YAML files in order, and validated.
func LoadConfig(files ...string) (*Config, error) {
	cfg := &Config{}
	if err := config.SetFromDefaults(cfg); err != nil {
		return nil, err
	}
	if err := config.Open(cfg, files...); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate returns an error if the configuration cannot be used.
func (cfg *Config) Validate() error {
	if err := cfg.Constraints(0).Validate(); err != nil {
		return err
	}
	_, err1 := cfg.MoreStyle.Style()
	_, err2 := cfg.LessStyle.Style()
	return errors.Join(err1, err2)
}

// Constraints returns the layout constraints for the given width.
func (cfg *Config) Constraints(width float32) shaped.Constraints {
	return shaped.Constraints{MaxWidth: width, SoftWrap: cfg.SoftWrap, MaxLines: cfg.MaxLines}
}

// Decorator returns a [Decorator] for text in the given base style,
// with the given ambient defaults.
func (cfg *Config) Decorator(base, ambient *rich.Style) (*Decorator, error) {
	ms, err := cfg.MoreStyle.Style()
	if err != nil {
		return nil, err
	}
	ls, err := cfg.LessStyle.Style()
	if err != nil {
		return nil, err
	}
	return &Decorator{
		Base:       base,
		Ambient:    ambient,
		Overflow:   cfg.Overflow,
		ToggleArea: cfg.ToggleArea,
		More:       cfg.ReadMore,
		MoreStyle:  ms,
		Less:       cfg.ReadLess,
		LessStyle:  ls,
	}, nil
}

// Style returns the style, or nil if no field is set.
func (sc *StyleConfig) Style() (*rich.Style, error) {
	if *sc == (StyleConfig{}) {
		return nil, nil
	}
	st := &rich.Style{Size: sc.Size, Weight: sc.Weight, Slant: sc.Slant, Family: sc.Family, Decoration: sc.Decoration}
	if sc.Color != "" {
		c, err := colorful.Hex(sc.Color)
		if err != nil {
			return nil, errors.Errorf("readmore: invalid color %q: %w", sc.Color, err)
		}
		st.Color = c
	}
	return st, nil
}
