// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config contains the configuration of a hero section,
// read from TOML or YAML files and optionally watched for changes.
package config

import (
	"fmt"
	"image/color"
	"slices"
)

// Layouts are the names of the supported proxy placements.
var Layouts = []string{"ring", "sphere", "globe"}

// Config is the configuration of a hero section.
type Config struct {

	// Width and Height are the initial size of the surface in pixels
	Width  int
	Height int

	// Seed is the seed of the random placement of proxies
	Seed int64

	// Layout is the placement of proxies: ring, sphere or globe
	Layout string

	// Proxies is the number of proxies
	Proxies int

	// Entries is the number of list entries
	Entries int

	// Active is the id activated at startup
	Active int

	// Accent is the color of the active proxy, overlay and marker
	Accent Color

	// ProxyColor is the base color of the proxies
	ProxyColor Color

	// Background is the background color of the primary scene
	Background Color

	// HighlightScale is the scale factor of the active proxy
	HighlightScale float32

	// Radius is the radius of the sphere and globe layouts
	Radius float32

	// the camera rig that follows the pointer
	Rig Rig

	// Locations are the labelled points of the globe layout
	Locations []Location

	// Cards are the miniature views rendered over page cards
	Cards []Card
}

// Rig configures the camera rig.
type Rig struct {

	// Enabled turns on the pointer-follow camera
	Enabled bool

	// Factor is the fraction of the remaining rotation per frame
	Factor float32

	// Range is the rotation in radians at the edge of the surface
	Range float32
}

// Location is a labelled point on the globe, in degrees.
type Location struct {
	Name string
	Lat  float32
	Lon  float32
}

// Card is a miniature view over a page card.
type Card struct {
	Name string

	// Shape of the card solid: sphere, box, tetrahedron or octahedron
	Shape string

	Color      Color
	Edge       Color
	HoverColor Color
	Distort    float32
	Wireframe  bool
}

// Defaults sets the default values, which reproduce the chain
// visualization section.
func (cf *Config) Defaults() {
	cf.Width = 800
	cf.Height = 600
	cf.Seed = 1
	cf.Layout = "ring"
	cf.Proxies = 18
	cf.Entries = 20
	cf.Active = 6
	cf.Accent = Color{color.RGBA{0, 0, 0, 255}}
	cf.ProxyColor = Color{color.RGBA{0x33, 0x33, 0x33, 255}}
	cf.Background = Color{color.RGBA{0xfa, 0xfa, 0xfa, 255}}
	cf.HighlightScale = 1.5
	cf.Radius = 2.5
	cf.Rig = Rig{Enabled: true, Factor: 0.05, Range: 0.5}
	cf.Locations = nil
	cf.Cards = []Card{
		{Name: "tokens", Shape: "octahedron", Color: Color{color.RGBA{0x4f, 0x46, 0xe5, 255}}, HoverColor: Color{color.RGBA{0x81, 0x8c, 0xf8, 255}}},
		{Name: "nodes", Shape: "sphere", Color: Color{color.RGBA{0x05, 0x96, 0x69, 255}}, Distort: 0.1},
		{Name: "blocks", Shape: "box", Color: Color{color.RGBA{0xd9, 0x77, 0x06, 255}}, Wireframe: true},
	}
}

// New returns a new config with default values.
func New() *Config {
	cf := &Config{}
	cf.Defaults()
	return cf
}

// Validate returns an error if the config cannot be used.
func (cf *Config) Validate() error {
	switch {
	case cf.Width <= 0 || cf.Height <= 0:
		return fmt.Errorf("config: invalid size %dx%d", cf.Width, cf.Height)
	case cf.Proxies < 0:
		return fmt.Errorf("config: negative number of proxies %d", cf.Proxies)
	case cf.Entries < 0:
		return fmt.Errorf("config: negative number of entries %d", cf.Entries)
	case !slices.Contains(Layouts, cf.Layout):
		return fmt.Errorf("config: unknown layout %q; must be one of %v", cf.Layout, Layouts)
	case cf.Layout == "globe" && len(cf.Locations) == 0:
		return fmt.Errorf("config: the globe layout needs at least one location")
	}
	return nil
}
