// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"fmt"
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// Color is an opaque color that is written as a hex string in
// config files, e.g., "#4f46e5" or "#333".
type Color struct {
	color.RGBA
}

// IsNil returns true if the color has not been set.
func (c Color) IsNil() bool {
	return c.A == 0
}

// MarshalText implements [encoding.TextMarshaler].
func (c Color) MarshalText() ([]byte, error) {
	if c.IsNil() {
		return []byte{}, nil
	}
	cf, _ := colorful.MakeColor(c.RGBA)
	return []byte(cf.Hex()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
// An empty string is the unset color.
func (c *Color) UnmarshalText(text []byte) error {
	if len(text) == 0 {
		c.RGBA = color.RGBA{}
		return nil
	}
	cf, err := colorful.Hex(string(text))
	if err != nil {
		return fmt.Errorf("config: invalid color %q: %w", text, err)
	}
	r, g, b := cf.RGB255()
	c.RGBA = color.RGBA{r, g, b, 255}
	return nil
}
