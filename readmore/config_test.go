// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package readmore

import (
	"os"
	"path/filepath"
	"testing"

	"cogentcore.org/readmore/text/rich"
	"cogentcore.org/readmore/text/shaped"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigDefaults(t *testing.T) {
	cfg := NewConfig()
	assert.Equal(t, 2, cfg.MaxLines)
	assert.Equal(t, Ellipsis, cfg.Overflow)
	assert.Equal(t, ToggleAll, cfg.ToggleArea)
	assert.True(t, cfg.SoftWrap)
	assert.True(t, cfg.ToggleEnabled)
	assert.False(t, cfg.TrimSpace)
	assert.Equal(t, "Read more", cfg.ReadMore)
	assert.Equal(t, "Read less", cfg.ReadLess)
	assert.NoError(t, cfg.Validate())
	assert.Equal(t, shaped.Constraints{MaxWidth: 30, SoftWrap: true, MaxLines: 2}, cfg.Constraints(30))

	dc, err := cfg.Decorator(nil, nil)
	require.NoError(t, err)
	assert.Nil(t, dc.MoreStyle)
	assert.Nil(t, dc.LessStyle)
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	tf := filepath.Join(dir, "readmore.toml")
	require.NoError(t, os.WriteFile(tf, []byte(`
max-lines = 3
overflow = "clip"
toggle-area = "more"

[more-style]
color = "#ff0000"
weight = "bold"
decoration = "underline"
`), 0o644))
	yf := filepath.Join(dir, "readmore.yaml")
	require.NoError(t, os.WriteFile(yf, []byte(`
read-more: Show more
trim-space: true
less-style:
  slant: italic
`), 0o644))

	cfg, err := LoadConfig(tf, yf)
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.MaxLines)
	assert.Equal(t, Clip, cfg.Overflow)
	assert.Equal(t, ToggleMore, cfg.ToggleArea)
	assert.Equal(t, "Show more", cfg.ReadMore)
	assert.Equal(t, "Read less", cfg.ReadLess)
	assert.True(t, cfg.TrimSpace)
	assert.True(t, cfg.SoftWrap)

	dc, err := cfg.Decorator(rich.NewStyle().SetSize(2), nil)
	require.NoError(t, err)
	require.NotNil(t, dc.MoreStyle)
	assert.Equal(t, rich.Bold, dc.MoreStyle.Weight)
	assert.True(t, dc.MoreStyle.Decoration.HasFlag(rich.Underline))
	r, g, b := dc.MoreStyle.Color.(colorful.Color).RGB255()
	assert.Equal(t, []uint8{255, 0, 0}, []uint8{r, g, b})
	require.NotNil(t, dc.LessStyle)
	assert.Equal(t, rich.Italic, dc.LessStyle.Slant)
	assert.Equal(t, float32(2), dc.MoreTextStyle().Size)
	assert.Equal(t, ToggleMore, dc.ToggleArea)
}

func TestLoadConfigErrors(t *testing.T) {
	dir := t.TempDir()
	write := func(name, content string) string {
		fn := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(fn, []byte(content), 0o644))
		return fn
	}
	_, err := LoadConfig(write("zero.toml", "max-lines = 0\n"))
	assert.ErrorIs(t, err, shaped.ErrInvalidMaxLines)

	_, err = LoadConfig(write("color.yaml", "more-style:\n  color: notacolor\n"))
	assert.ErrorContains(t, err, "invalid color")

	_, err = LoadConfig(write("overflow.toml", "overflow = \"fade\"\n"))
	assert.Error(t, err)

	_, err = LoadConfig(write("unknown.yaml", "lines: 3\n"))
	assert.Error(t, err)
}
