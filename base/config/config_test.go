// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mode int

func (m *mode) UnmarshalText(b []byte) error {
	switch strings.ToLower(string(b)) {
	case "fast":
		*m = 1
	default:
		*m = 0
	}
	return nil
}

type inner struct {
	Label string `default:"more" toml:"label" yaml:"label"`
}

type testConfig struct {
	Name  string  `default:"readmore" toml:"name" yaml:"name"`
	Lines int     `default:"2" toml:"lines" yaml:"lines"`
	Wrap  bool    `default:"true" toml:"wrap" yaml:"wrap"`
	Scale float32 `default:"1.5" toml:"scale" yaml:"scale"`
	Mode  mode    `default:"fast" toml:"mode" yaml:"mode"`
	Inner inner   `toml:"inner" yaml:"inner"`
	Plain string  `toml:"plain" yaml:"plain"`
}

func TestSetFromDefaults(t *testing.T) {
	cfg := &testConfig{}
	require.NoError(t, SetFromDefaults(cfg))
	assert.Equal(t, "readmore", cfg.Name)
	assert.Equal(t, 2, cfg.Lines)
	assert.True(t, cfg.Wrap)
	assert.Equal(t, float32(1.5), cfg.Scale)
	assert.Equal(t, mode(1), cfg.Mode)
	assert.Equal(t, "more", cfg.Inner.Label)
	assert.Empty(t, cfg.Plain)

	assert.Error(t, SetFromDefaults(*cfg))
}

func TestOpen(t *testing.T) {
	dir := t.TempDir()
	tf := filepath.Join(dir, "a.toml")
	yf := filepath.Join(dir, "b.yaml")
	require.NoError(t, os.WriteFile(tf, []byte("lines = 3\n[inner]\nlabel = \"Read more\"\n"), 0o644))
	require.NoError(t, os.WriteFile(yf, []byte("lines: 4\nplain: x\n"), 0o644))

	cfg := &testConfig{}
	require.NoError(t, SetFromDefaults(cfg))
	require.NoError(t, Open(cfg, tf, yf))
	assert.Equal(t, 4, cfg.Lines)
	assert.Equal(t, "Read more", cfg.Inner.Label)
	assert.Equal(t, "x", cfg.Plain)
	assert.Equal(t, "readmore", cfg.Name)

	assert.Equal(t, []string{tf}, FindFilesOnPaths([]string{dir, filepath.Join(dir, "none")}, "a.toml"))
}

func TestOpenErrors(t *testing.T) {
	dir := t.TempDir()
	bad := filepath.Join(dir, "c.toml")
	require.NoError(t, os.WriteFile(bad, []byte("unknown = 1\n"), 0o644))

	cfg := &testConfig{}
	assert.Error(t, Open(cfg, bad))
	assert.Error(t, Open(cfg, filepath.Join(dir, "c.json")))
	assert.Error(t, Open(cfg, filepath.Join(dir, "missing.toml")))
}
