// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hero

import (
	"image"
	"testing"

	"cogentcore.org/hero/base/randx"
	"cogentcore.org/hero/base/tolassert"
	"cogentcore.org/hero/math32"
	"cogentcore.org/hero/xyz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newSection returns a context, registry with nProxies column proxies,
// and selection over nEntries list elements.
func newSection(t *testing.T, nProxies, nEntries int) (*Context, *Registry, *Selection, []*testElement) {
	t.Helper()
	ctx, _ := newTestContext(800, 600)
	reg := NewRegistry(ctx, nil)
	reg.Generate(nProxies, column)
	els := listElements(nEntries)
	sel := NewSelection(ctx, reg, NewEntries(els...))
	return ctx, reg, sel, els
}

// assertSingleActive checks that at most one proxy and one entry are
// highlighted, and that they belong to the active id.
func assertSingleActive(t *testing.T, reg *Registry, sel *Selection) {
	t.Helper()
	id, ok := sel.Active()
	require.True(t, ok)
	nhl := 0
	for _, px := range reg.Proxies {
		if px.Highlight {
			nhl++
			assert.Same(t, reg.ProxyFor(id), px)
			assert.Equal(t, float32(1.5), px.Solid.Pose.Scale.X)
		} else {
			assert.Equal(t, px.BaseColor, px.Solid.Material.Color)
			assert.Equal(t, float32(1), px.Solid.Pose.Scale.X)
		}
	}
	assert.Equal(t, 1, nhl)
	nact := 0
	for _, le := range sel.Entries {
		if le.Active {
			nact++
			assert.Equal(t, id, le.ID)
		}
	}
	assert.LessOrEqual(t, nact, 1)
}

func TestSelectionIdle(t *testing.T) {
	_, _, sel, _ := newSection(t, 18, 20)
	assert.Equal(t, Idle, sel.State())
	assert.Nil(t, sel.ActiveProxy())
	assert.Nil(t, sel.ActiveEntry())
	_, ok := sel.Previous()
	assert.False(t, ok)
	assert.Equal(t, "Idle", sel.State().String())
}

func TestSelectionSingleActive(t *testing.T) {
	ctx, reg, sel, els := newSection(t, 18, 20)
	sel.Seed(6)
	assert.Equal(t, Active, sel.State())
	assert.Equal(t, ctx.Accent, reg.Proxies[6].Solid.Material.Color)
	assert.True(t, els[6].active)
	assertSingleActive(t, reg, sel)

	for _, id := range []int{3, 3, 19, 7, 24, 6, 0} {
		sel.SetActive(id)
		assertSingleActive(t, reg, sel)
	}
	prev, ok := sel.Previous()
	assert.True(t, ok)
	assert.Equal(t, 6, prev)
	for i, el := range els {
		assert.Equal(t, i == 0, el.active, "element %d", i)
	}
}

func TestSelectionModuloEntries(t *testing.T) {
	_, reg, sel, els := newSection(t, 18, 20)
	sel.Seed(1)
	sel.SetActive(19)
	// entry 19 maps to proxy 1, which stays highlighted
	assert.True(t, reg.Proxies[1].Highlight)
	assert.True(t, els[19].active)
	assert.False(t, els[1].active)
	assertSingleActive(t, reg, sel)

	// entry 24 does not exist: only the proxy is highlighted
	sel.SetActive(24)
	assert.Same(t, reg.Proxies[6], sel.ActiveProxy())
	assert.Nil(t, sel.ActiveEntry())
	assertSingleActive(t, reg, sel)
}

func TestSelectionSetEntries(t *testing.T) {
	_, _, sel, els := newSection(t, 18, 20)
	sel.Seed(4)
	nels := listElements(10)
	sel.SetEntries(NewEntries(nels...))
	assert.False(t, els[4].active)
	assert.True(t, nels[4].active)
	sel.SetActive(5)
	assert.False(t, nels[4].active)
	assert.True(t, nels[5].active)
}

func TestProjectCenter(t *testing.T) {
	ctx, _ := newTestContext(800, 600)
	ref := image.Rect(0, 0, 800, 600)

	sd := xyz.NewSolid(&ctx.Scene.Group, "axis", &xyz.Sphere{Radius: 0.1})
	sd.SetPos(0, 0, -3)
	pt, ok := Project(math32.Vector3{}, sd, ctx.Camera, ref)
	require.True(t, ok)
	tolassert.EqualTol(t, float32(400), pt.X, 1e-3)
	tolassert.EqualTol(t, float32(300), pt.Y, 1e-3)

	// on the axis only through a translated and rotated parent
	arm := xyz.NewGroup(&ctx.Scene.Group, "arm").SetPos(2, 0, 0).SetEulerRotation(0, 180, 0)
	child := xyz.NewSolid(arm, "child", &xyz.Sphere{Radius: 0.1})
	child.SetPos(2, 0, 3)
	pt, ok = Project(math32.Vector3{}, child, ctx.Camera, ref)
	require.True(t, ok)
	tolassert.EqualTol(t, float32(400), pt.X, 1e-2)
	tolassert.EqualTol(t, float32(300), pt.Y, 1e-2)

	// relative to an offset reference of another size
	pt, ok = Project(math32.Vector3{}, sd, ctx.Camera, image.Rect(100, 50, 300, 150))
	require.True(t, ok)
	tolassert.EqualTol(t, float32(100), pt.X, 1e-3)
	tolassert.EqualTol(t, float32(50), pt.Y, 1e-3)

	// behind the camera
	sd.SetPos(0, 0, 9)
	_, ok = Project(math32.Vector3{}, sd, ctx.Camera, ref)
	assert.False(t, ok)

	// degenerate camera
	sd.SetPos(0, 0, -3)
	ctx.Camera.FOV = 0
	ctx.Camera.UpdateMatrix()
	_, ok = Project(math32.Vector3{}, sd, ctx.Camera, ref)
	assert.False(t, ok)
}

func TestPixelNDC(t *testing.T) {
	sz := image.Pt(800, 600)
	assert.Equal(t, math32.Vec2(0, 0), PixelToNDC(image.Pt(400, 300), sz))
	assert.Equal(t, math32.Vec2(-1, 1), PixelToNDC(image.Pt(0, 0), sz))
	assert.Equal(t, math32.Vec2(800, 600), NDCToPixel(math32.Vec2(1, -1), sz))
	ndc := PixelToNDC(image.Pt(5, 5), image.Point{})
	assert.False(t, math32.IsNaN(ndc.X) || math32.IsNaN(ndc.Y))
}

func TestResolve(t *testing.T) {
	ctx, reg, _, _ := newSection(t, 18, 20)
	assert.Nil(t, Resolve(math32.Vec2(0, 0), ctx.Camera, nil))
	assert.Nil(t, Resolve(math32.Vec2(0, 0), nil, reg.Proxies))

	// proxy 9 is on the camera axis
	assert.Same(t, reg.Proxies[9], Resolve(math32.Vec2(0, 0), ctx.Camera, reg.Proxies))
	assert.Nil(t, Resolve(math32.Vec2(0.9, 0.9), ctx.Camera, reg.Proxies))

	// nearest wins
	near := reg.Generate(1, func(i, n int, rnd randx.Rand) Placement {
		return Placement{Shape: &xyz.Sphere{Radius: 0.15}, Orbit: Orbit{Polar: 0.5 * math32.Pi, Radius: 2, Angle: 0.5 * math32.Pi}}
	})[0]
	assert.Same(t, near, Resolve(math32.Vec2(0, 0), ctx.Camera, reg.Proxies))

	ctx.Camera.FOV = 0
	ctx.Camera.UpdateMatrix()
	assert.Nil(t, Resolve(math32.Vec2(0, 0), ctx.Camera, reg.Proxies))
}
