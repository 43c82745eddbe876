// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"cogentcore.org/hero/base/errors"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Decoder is an interface for standard decoder types
type Decoder interface {
	// Decode decodes from io.Reader specified at creation
	Decode(v any) error
}

// DecoderFunc is a function that creates a new Decoder for given reader
type DecoderFunc func(r io.Reader) Decoder

// NewDecoderFunc returns a DecoderFunc for a specific Decoder type
func NewDecoderFunc[T Decoder](f func(r io.Reader) T) DecoderFunc {
	return func(r io.Reader) Decoder { return f(r) }
}

var (
	// TOML decodes TOML files, rejecting unknown keys.
	TOML DecoderFunc = func(r io.Reader) Decoder {
		return toml.NewDecoder(r).DisallowUnknownFields()
	}

	// YAML decodes YAML files, rejecting unknown keys.
	YAML DecoderFunc = func(r io.Reader) Decoder {
		d := yaml.NewDecoder(r)
		d.KnownFields(true)
		return d
	}
)

// DecoderFor returns the decoder for the given filename,
// based on its extension.
func DecoderFor(filename string) (DecoderFunc, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".toml":
		return TOML, nil
	case ".yaml", ".yml":
		return YAML, nil
	}
	return nil, fmt.Errorf("config: unsupported file type %q", filename)
}

// Open reads object from the given filename using the given [DecoderFunc]
func Open(v any, filename string, f DecoderFunc) error {
	fp, err := os.Open(filename)
	if err != nil {
		return err
	}
	defer fp.Close()
	return Read(v, bufio.NewReader(fp), f)
}

// Read reads object encoding from the given reader,
// using the given [DecoderFunc]
func Read(v any, reader io.Reader, f DecoderFunc) error {
	d := f(reader)
	return d.Decode(v)
}

// ReadBytes reads object encoding from the given bytes,
// using the given [DecoderFunc]
func ReadBytes(v any, data []byte, f DecoderFunc) error {
	b := bytes.NewBuffer(data)
	return Read(v, b, f)
}

// Load returns the config in the given TOML or YAML file, on top of the
// default values, validated. Errors are logged in addition to being returned.
func Load(filename string) (*Config, error) {
	f, err := DecoderFor(filename)
	if err != nil {
		return nil, errors.Log(err)
	}
	cf := New()
	if err := Open(cf, filename, f); err != nil {
		return nil, errors.Log(fmt.Errorf("config: loading %q: %w", filename, err))
	}
	if err := cf.Validate(); err != nil {
		return nil, errors.Log(fmt.Errorf("config: %q: %w", filename, err))
	}
	return cf, nil
}
