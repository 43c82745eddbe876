// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"context"
	"image/color"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	fn := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(fn, []byte(content), 0666))
	return fn
}

func TestDefaults(t *testing.T) {
	cf := New()
	assert.NoError(t, cf.Validate())
	assert.Equal(t, 18, cf.Proxies)
	assert.Equal(t, 20, cf.Entries)
	assert.Equal(t, 6, cf.Active)
	assert.Equal(t, "ring", cf.Layout)
	assert.Len(t, cf.Cards, 3)
}

func TestLoadTOML(t *testing.T) {
	fn := writeFile(t, t.TempDir(), "hero.toml", `
Seed = 42
Proxies = 12
Accent = "#4f46e5"
Layout = "globe"

[Rig]
Enabled = false

[[Locations]]
Name = "Lagos"
Lat = 6.5
Lon = 3.4
`)
	cf, err := Load(fn)
	require.NoError(t, err)
	assert.Equal(t, int64(42), cf.Seed)
	assert.Equal(t, 12, cf.Proxies)
	assert.Equal(t, 20, cf.Entries)
	assert.Equal(t, color.RGBA{0x4f, 0x46, 0xe5, 255}, cf.Accent.RGBA)
	assert.False(t, cf.Rig.Enabled)
	assert.Equal(t, float32(0.05), cf.Rig.Factor)
	require.Len(t, cf.Locations, 1)
	assert.Equal(t, Location{Name: "Lagos", Lat: 6.5, Lon: 3.4}, cf.Locations[0])
}

func TestLoadYAML(t *testing.T) {
	fn := writeFile(t, t.TempDir(), "hero.yaml", `
proxies: 9
proxycolor: "#333"
cards:
  - name: solo
    shape: sphere
    color: "#ff0000"
    wireframe: true
`)
	cf, err := Load(fn)
	require.NoError(t, err)
	assert.Equal(t, 9, cf.Proxies)
	assert.Equal(t, color.RGBA{0x33, 0x33, 0x33, 255}, cf.ProxyColor.RGBA)
	require.Len(t, cf.Cards, 1)
	assert.Equal(t, "solo", cf.Cards[0].Name)
	assert.Equal(t, color.RGBA{255, 0, 0, 255}, cf.Cards[0].Color.RGBA)
	assert.True(t, cf.Cards[0].HoverColor.IsNil())
	assert.True(t, cf.Cards[0].Wireframe)
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()
	_, err := Load(filepath.Join(dir, "missing.toml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = Load(writeFile(t, dir, "hero.json", `{}`))
	assert.ErrorContains(t, err, "unsupported")

	_, err = Load(writeFile(t, dir, "color.toml", `Accent = "blue"`))
	assert.ErrorContains(t, err, "invalid color")

	_, err = Load(writeFile(t, dir, "unknown.toml", `Speed = 3`))
	assert.Error(t, err)

	_, err = Load(writeFile(t, dir, "layout.toml", `Layout = "cube"`))
	assert.ErrorContains(t, err, "unknown layout")

	_, err = Load(writeFile(t, dir, "globe.toml", `Layout = "globe"`))
	assert.ErrorContains(t, err, "location")
}

func TestColorText(t *testing.T) {
	c := Color{color.RGBA{0x4f, 0x46, 0xe5, 255}}
	b, err := c.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "#4f46e5", string(b))
	var d Color
	require.NoError(t, d.UnmarshalText(b))
	assert.Equal(t, c, d)
	require.NoError(t, d.UnmarshalText(nil))
	assert.True(t, d.IsNil())
}

func TestWatch(t *testing.T) {
	dir := t.TempDir()
	fn := writeFile(t, dir, "hero.toml", `Proxies = 5`)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	reloads := make(chan *Config, 8)
	done := make(chan error, 1)
	go func() {
		done <- Watch(ctx, fn, func(cf *Config) { reloads <- cf })
	}()

	// keep writing until the watcher has picked up a change
	deadline := time.After(10 * time.Second)
	tick := time.NewTicker(100 * time.Millisecond)
	defer tick.Stop()
	for got := false; !got; {
		select {
		case cf := <-reloads:
			// a reload can observe the file while it is being rewritten
			got = cf.Proxies == 7
		case <-tick.C:
			writeFile(t, dir, "hero.toml", `Proxies = 7`)
		case <-deadline:
			t.Fatal("no reload")
		}
	}
	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("watch did not stop")
	}
}
