// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"cogentcore.org/readmore/base/errors"
	"cogentcore.org/readmore/base/logx"
	"cogentcore.org/readmore/readmore"
	"cogentcore.org/readmore/text/rich"
	"cogentcore.org/readmore/text/shaped/shapedcell"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"golang.org/x/term"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// options are the command line options.
type options struct {
	lines    int
	width    int
	more     string
	less     string
	overflow string
	toggle   string
	expanded bool
	watch    bool
	trim     bool
	configs  []string

	vv, v, q bool
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:           "readmore [file]",
		Short:         "Print text collapsed to a number of lines with a read-more affordance",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			logx.SetLevelFromFlags(opts.vv, opts.v, opts.q)
			cfg, err := opts.config(cmd)
			if err != nil {
				return err
			}
			file := ""
			if len(args) > 0 {
				file = args[0]
			}
			if opts.watch {
				if file == "" {
					return errors.New("readmore: --watch requires a file")
				}
				return watch(cmd.Context(), file, func() error {
					return opts.run(cmd, cfg, file)
				})
			}
			return opts.run(cmd, cfg, file)
		},
	}
	fs := cmd.Flags()
	fs.IntVarP(&opts.lines, "lines", "n", 2, "number of lines shown when collapsed")
	fs.IntVarP(&opts.width, "width", "w", 0, "width in cells (default: terminal width)")
	fs.StringVar(&opts.more, "more", "Read more", "read-more affordance text")
	fs.StringVar(&opts.less, "less", "Read less", "read-less affordance text")
	fs.StringVar(&opts.overflow, "overflow", "ellipsis", "overflow indicator: clip or ellipsis")
	fs.StringVar(&opts.toggle, "toggle", "all", "toggle area: all or more")
	fs.BoolVarP(&opts.expanded, "expanded", "e", false, "print the expanded text")
	fs.BoolVar(&opts.watch, "watch", false, "print again whenever the file changes")
	fs.BoolVar(&opts.trim, "trim", false, "trim trailing whitespace before the affordance")
	fs.StringSliceVarP(&opts.configs, "config", "c", nil, "TOML or YAML config files")
	fs.BoolVar(&opts.vv, "vv", false, "show debug messages")
	fs.BoolVarP(&opts.v, "verbose", "v", false, "show info messages")
	fs.BoolVarP(&opts.q, "quiet", "q", false, "only show errors")
	return cmd
}

// config returns the configuration from the config files,
// overridden by the flags set on the command line.
func (o *options) config(cmd *cobra.Command) (*readmore.Config, error) {
	cfg, err := readmore.LoadConfig(o.configs...)
	if err != nil {
		return nil, err
	}
	fs := cmd.Flags()
	if fs.Changed("lines") {
		cfg.MaxLines = o.lines
	}
	if fs.Changed("more") {
		cfg.ReadMore = o.more
	}
	if fs.Changed("less") {
		cfg.ReadLess = o.less
	}
	if fs.Changed("overflow") {
		if err := cfg.Overflow.UnmarshalText([]byte(o.overflow)); err != nil {
			return nil, err
		}
	}
	if fs.Changed("toggle") {
		if err := cfg.ToggleArea.UnmarshalText([]byte(o.toggle)); err != nil {
			return nil, err
		}
	}
	if fs.Changed("trim") {
		cfg.TrimSpace = o.trim
	}
	return cfg, cfg.Validate()
}

// run prints the file, or standard input if file is empty.
func (o *options) run(cmd *cobra.Command, cfg *readmore.Config, file string) error {
	var b []byte
	var err error
	if file == "" {
		b, err = io.ReadAll(cmd.InOrStdin())
	} else {
		b, err = os.ReadFile(file)
	}
	if err != nil {
		return errors.Wrap(err)
	}
	w := cmd.OutOrStdout()
	sh := shapedcell.NewShaper(false)
	v, err := readmore.NewView(sh, cfg)
	if err != nil {
		return err
	}
	tx, err := decodeText(b)
	if err != nil {
		return err
	}
	v.SetText(tx)
	v.SetWidth(float32(o.termWidth()))
	v.SetExpanded(o.expanded)
	slog.Info("readmore", "file", file, "collapsible", v.Resolved().Collapsible, "width", v.Width(), "runes", v.Text().Len(), "utf16", v.Text().UTF16Len())
	slog.Debug("readmore: display", "spans", v.Display().StyledString())
	rd := &renderer{out: termenv.NewOutput(w), shaper: sh}
	_, err = io.WriteString(w, rd.render(v))
	return errors.Wrap(err)
}

// decodeText decodes the input without its trailing newlines. Input
// starting with a byte order mark is decoded accordingly, anything
// else as UTF-8.
func decodeText(b []byte) (rich.Text, error) {
	d, _, err := transform.Bytes(unicode.BOMOverride(unicode.UTF8.NewDecoder()), b)
	if err != nil {
		return nil, errors.Wrap(err)
	}
	return rich.NewPlainText(strings.TrimRight(string(d), "\n")), nil
}

// termWidth returns the width flag, or the width of the terminal,
// or 80 if standard output is not a terminal.
func (o *options) termWidth() int {
	if o.width > 0 {
		return o.width
	}
	fd := int(os.Stdout.Fd())
	if term.IsTerminal(fd) {
		if w, _, err := term.GetSize(fd); err == nil && w > 0 {
			return w
		}
	}
	return 80
}
