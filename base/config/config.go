// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config loads configuration structs from TOML and YAML files,
// after setting their fields from `default:` struct tags.
package config

import (
	"bufio"
	"io"
	"os"
	"path/filepath"
	"strings"

	"cogentcore.org/readmore/base/errors"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Decoder is an interface for standard decoder types.
type Decoder interface {
	// Decode decodes from io.Reader specified at creation
	Decode(v any) error
}

// DecoderFunc is a function that creates a new Decoder for given reader.
type DecoderFunc func(r io.Reader) Decoder

// Formats maps lowercase file extensions to the [DecoderFunc] used
// to read files with that extension.
var Formats = map[string]DecoderFunc{
	".toml": func(r io.Reader) Decoder {
		return toml.NewDecoder(r).DisallowUnknownFields()
	},
	".yaml": yamlDecoder,
	".yml":  yamlDecoder,
}

func yamlDecoder(r io.Reader) Decoder {
	d := yaml.NewDecoder(r)
	d.KnownFields(true)
	return d
}

// DecoderFor returns the [DecoderFunc] for the given filename,
// based on its extension.
func DecoderFor(filename string) (DecoderFunc, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	f, ok := Formats[ext]
	if !ok {
		return nil, errors.Errorf("config: unsupported file format %q for %q", ext, filename)
	}
	return f, nil
}

// Read reads the object from the given reader using the given [DecoderFunc].
func Read(v any, r io.Reader, f DecoderFunc) error {
	err := f(r).Decode(v)
	if err == io.EOF { // empty file
		return nil
	}
	return err
}

// Open reads the object from the given files in order, so that
// later files overwrite settings from earlier ones. The format of
// each file is determined by its extension.
func Open(v any, files ...string) error {
	for _, fn := range files {
		f, err := DecoderFor(fn)
		if err != nil {
			return err
		}
		fp, err := os.Open(fn)
		if err != nil {
			return errors.Wrap(err)
		}
		err = Read(v, bufio.NewReader(fp), f)
		fp.Close()
		if err != nil {
			return errors.Errorf("config: reading %q: %w", fn, err)
		}
	}
	return nil
}

// FindFilesOnPaths attempts to locate given file(s) on given list of paths,
// returning the full paths of the files found, in path order.
func FindFilesOnPaths(paths []string, files ...string) []string {
	var res []string
	for _, path := range paths {
		for _, fn := range files {
			fp := filepath.Join(path, fn)
			if _, err := os.Stat(fp); err == nil {
				res = append(res, fp)
			}
		}
	}
	return res
}
