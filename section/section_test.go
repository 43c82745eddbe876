// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package section

import (
	"image"
	"image/color"
	"testing"
	"time"

	"cogentcore.org/hero/config"
	"cogentcore.org/hero/events"
	"cogentcore.org/hero/gpu"
	"cogentcore.org/hero/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var t0 = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

func newTestSection(t *testing.T, cf *config.Config) (*Section, *gpu.Raster) {
	t.Helper()
	surf := gpu.NewRaster(image.Pt(cf.Width, cf.Height))
	sc, err := New(cf, surf)
	require.NoError(t, err)
	return sc, surf
}

func TestNewRing(t *testing.T) {
	sc, surf := newTestSection(t, config.New())
	assert.Len(t, sc.Registry.Proxies, 18)
	assert.Len(t, sc.Items, 20)
	assert.Len(t, sc.Compositor.Descriptors, 3)
	assert.NotNil(t, sc.Scheduler.Rig)
	assert.Nil(t, sc.Scheduler.Spinner)
	id, ok := sc.Selection.Active()
	require.True(t, ok)
	assert.Equal(t, 6, id)
	assert.True(t, sc.Items[6].Active)

	require.NoError(t, sc.Scheduler.Tick(t0))
	assert.True(t, sc.Overlay.Overlay.Visible)
	// the cards are below the fold
	for _, vd := range sc.Compositor.Descriptors {
		assert.False(t, vd.Rendered)
	}
	// the background is cleared
	assert.Equal(t, color.RGBA{0xfa, 0xfa, 0xfa, 255}, surf.Image().RGBAAt(5, 5))
}

func TestScrollCards(t *testing.T) {
	sc, _ := newTestSection(t, config.New())
	sc.Context.Inbox.Send(events.NewScroll(image.Point{}, math32.Vec2(0, 300)))
	require.NoError(t, sc.Scheduler.Tick(t0))
	// clamped to the end of the content
	assert.Equal(t, sc.Page.MaxScroll().Y, sc.Page.Scroll.Y)
	n := 0
	for _, vd := range sc.Compositor.Descriptors {
		if vd.Rendered {
			n++
		}
	}
	assert.Equal(t, 3, n)
}

func TestHoverEntry(t *testing.T) {
	sc, _ := newTestSection(t, config.New())
	r, ok := sc.Items[2].Bounds()
	require.True(t, ok)
	for _, ev := range sc.Page.PointerMove(r.Min.Add(image.Pt(3, 3))) {
		sc.Context.Inbox.Send(ev)
	}
	require.NoError(t, sc.Scheduler.Tick(t0))
	id, _ := sc.Selection.Active()
	assert.Equal(t, 2, id)
	assert.True(t, sc.Items[2].Active)
	assert.False(t, sc.Items[6].Active)
	assert.Equal(t, float32(r.Min.X), sc.Overlay.Overlay.End.X)
}

func TestApplyReload(t *testing.T) {
	sc, _ := newTestSection(t, config.New())
	ncf := config.New()
	ncf.Accent = config.Color{RGBA: color.RGBA{255, 0, 0, 255}}
	ncf.ProxyColor = config.Color{RGBA: color.RGBA{0, 0, 255, 255}}
	ncf.Rig.Enabled = false
	sc.Context.Inbox.Send(events.NewCustom(ncf))
	require.NoError(t, sc.Scheduler.Tick(t0))

	assert.Equal(t, ncf.Accent.RGBA, sc.Registry.Proxies[6].Solid.Material.Color)
	assert.Equal(t, ncf.ProxyColor.RGBA, sc.Registry.Proxies[5].Solid.Material.Color)
	assert.Nil(t, sc.Scheduler.Rig)

	// a later change of selection reverts to the new base color
	sc.Selection.SetActive(5)
	assert.Equal(t, ncf.ProxyColor.RGBA, sc.Registry.Proxies[6].Solid.Material.Color)
	assert.Equal(t, ncf.Accent.RGBA, sc.Registry.Proxies[5].Solid.Material.Color)
}

func TestGlobe(t *testing.T) {
	cf := config.New()
	cf.Layout = "globe"
	cf.Proxies = 4
	cf.Active = 0
	cf.Locations = []config.Location{{Name: "Lagos", Lat: 6.5, Lon: 3.4}, {Name: "Quito", Lat: -0.2, Lon: -78.5}}
	sc, _ := newTestSection(t, cf)
	fs := sc.Scheduler
	assert.Nil(t, fs.Rig)
	require.NotNil(t, fs.Spinner)
	require.NotNil(t, fs.Routes)
	assert.Equal(t, "Quito", sc.Registry.Proxies[3].Label)

	sc.Context.Inbox.Send(events.NewMouseDrag(events.Left, image.Pt(120, 100), image.Pt(100, 100), image.Pt(100, 100)))
	require.NoError(t, fs.Tick(t0))
	assert.Equal(t, float32(0), fs.Spinner.Speed)
	assert.Equal(t, events.CursorGrabbing, sc.Context.Cursor)
}

func TestInvalid(t *testing.T) {
	cf := config.New()
	cf.Layout = "cube"
	_, err := New(cf, gpu.NewRaster(image.Pt(10, 10)))
	assert.Error(t, err)
}

func TestDrawPage(t *testing.T) {
	sc, surf := newTestSection(t, config.New())
	require.NoError(t, sc.Scheduler.Tick(t0))
	bg := surf.Image().RGBAAt(5, 5)
	sc.DrawPage(surf)
	r, _ := sc.Items[0].Bounds()
	assert.NotEqual(t, bg, surf.Image().RGBAAt(r.Min.X+10, r.Min.Y))
	r, _ = sc.Items[6].Bounds()
	assert.NotEqual(t, bg, surf.Image().RGBAAt(r.Min.X+10, r.Min.Y+3))
}

func TestResize(t *testing.T) {
	sc, surf := newTestSection(t, config.New())
	sc.Resize(image.Pt(400, 300))
	assert.Equal(t, image.Pt(400, 300), sc.Page.Size)
	assert.Equal(t, image.Pt(800, 600), surf.Size())
	require.NoError(t, sc.Scheduler.Tick(t0))
	assert.Equal(t, image.Pt(400, 300), surf.Size())
	assert.InDelta(t, 400.0/300.0, sc.Context.Camera.Aspect, 1e-6)
}
