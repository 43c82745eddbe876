// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hero

import (
	"image"
	"testing"
	"time"

	"cogentcore.org/hero/events"
	"cogentcore.org/hero/gpu"
	"cogentcore.org/hero/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var t0 = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

func newTestScheduler(t *testing.T, place PlacementFunc) (*Scheduler, *recSurface, []*testElement) {
	t.Helper()
	ctx, surf := newTestContext(800, 600)
	reg := NewRegistry(ctx, nil)
	reg.Generate(18, place)
	els := listElements(20)
	sel := NewSelection(ctx, reg, NewEntries(els...))
	fs := NewScheduler(ctx, reg, sel, NewOverlayRenderer(ctx, sel), NewCompositor(ctx))
	return fs, surf, els
}

func pixel(v math32.Vector2) image.Point {
	return image.Pt(int(v.X+0.5), int(v.Y+0.5))
}

func TestSchedulerFrame(t *testing.T) {
	fs, _, _ := newTestScheduler(t, Ring())
	f := fs.frame(t0)
	assert.Equal(t, Frame{Step: 1}, f)
	f = fs.frame(t0.Add(time.Second / 60))
	assert.InDelta(t, 1, f.Step, 1e-3)
	assert.InDelta(t, 1.0/60, f.Elapsed, 1e-5)
	f = fs.frame(t0.Add(time.Minute))
	assert.Equal(t, float32(MaxStep), f.Step)
	f = fs.frame(t0)
	assert.Equal(t, float32(0), f.Step)
}

func TestStickyHover(t *testing.T) {
	fs, _, _ := newTestScheduler(t, column)
	ctx := fs.Context()
	require.NoError(t, fs.Tick(t0))
	_, ok := fs.Selection.Active()
	assert.False(t, ok)

	pt, ok := ProjectProxy(fs.Registry.Proxies[6], ctx.Camera, image.Rect(0, 0, 800, 600))
	require.True(t, ok)
	ctx.Inbox.Send(events.NewMouseMove(pixel(pt), image.Point{}))
	require.NoError(t, fs.Tick(t0))
	id, ok := fs.Selection.Active()
	assert.True(t, ok)
	assert.Equal(t, 6, id)
	assert.Equal(t, events.CursorPointer, ctx.Cursor)

	ctx.Inbox.Send(events.NewMouseMove(image.Pt(10, 10), pixel(pt)))
	require.NoError(t, fs.Tick(t0))
	id, _ = fs.Selection.Active()
	assert.Equal(t, 6, id)
	assert.True(t, fs.Registry.Proxies[6].Highlight)
	assert.Equal(t, events.CursorDefault, ctx.Cursor)

	ctx.Inbox.Send(events.NewLeave(-1))
	require.NoError(t, fs.Tick(t0))
	id, _ = fs.Selection.Active()
	assert.Equal(t, 6, id)
}

func TestSchedulerHover(t *testing.T) {
	fs, _, els := newTestScheduler(t, column)
	ctx := fs.Context()
	fs.Selection.Seed(6)
	ctx.Inbox.Send(events.NewEnter(3, image.Point{}))
	require.NoError(t, fs.Tick(t0))
	id, _ := fs.Selection.Active()
	assert.Equal(t, 3, id)
	assert.True(t, els[3].active)
	assert.False(t, els[6].active)
	assert.True(t, fs.Registry.Proxies[3].Highlight)
	assert.False(t, fs.Registry.Proxies[6].Highlight)

	// leaving the entry keeps the selection
	ctx.Inbox.Send(events.NewLeave(3))
	require.NoError(t, fs.Tick(t0))
	id, _ = fs.Selection.Active()
	assert.Equal(t, 3, id)
	assert.True(t, els[3].active)
}

func TestOverlayHiddenBeforeSeed(t *testing.T) {
	fs, _, els := newTestScheduler(t, Ring())
	require.NoError(t, fs.Tick(t0))
	ov := &fs.Overlay.Overlay
	assert.False(t, ov.Visible)
	assert.Empty(t, ov.PathData())
	assert.Nil(t, ov.Points(8))

	fs.Selection.Seed(6)
	require.NoError(t, fs.Tick(t0))
	assert.True(t, ov.Visible)
	eb := els[6].rect
	assert.Equal(t, math32.Vec2(float32(eb.Min.X), float32(eb.Min.Y)+0.5*float32(eb.Dy())), ov.End)
	assert.Equal(t, ov.End, ov.Marker)
	assert.Equal(t, ov.Start.Y, ov.C1.Y)
	assert.Equal(t, ov.End.Y, ov.C2.Y)
	assert.Equal(t, ov.C1.X, ov.C2.X)

	// missing entry element
	els[6].missing = true
	require.NoError(t, fs.Tick(t0))
	assert.False(t, ov.Visible)
}

func TestResizeScenario(t *testing.T) {
	fs, _, _ := newTestScheduler(t, Ring())
	ctx := fs.Context()
	fs.Selection.Seed(6)
	ctx.Inbox.Send(events.NewResize(image.Pt(800, 600)))
	require.NoError(t, fs.Tick(t0))
	ov := &fs.Overlay.Overlay
	require.True(t, ov.Visible)
	start := ov.Start

	ctx.Inbox.Send(events.NewResize(image.Pt(400, 300)))
	require.NoError(t, fs.Tick(t0))
	require.True(t, ov.Visible)
	assert.Equal(t, image.Pt(400, 300), ctx.Surface.Size())
	assert.Equal(t, start.MulScalar(0.5), ov.Start)
	assert.NotEqual(t, start, ov.Start)
}

func TestSchedulerRecovers(t *testing.T) {
	fs, surf, _ := newTestScheduler(t, Ring())
	calls := 0
	fs.OnFrame = func(f Frame) {
		calls++
		if calls == 1 {
			surf.SetScissorTest(true)
			panic("boom")
		}
	}
	err := fs.Tick(t0)
	assert.ErrorContains(t, err, "boom")
	assert.Equal(t, 1, fs.Failures)

	assert.NoError(t, fs.Tick(t0.Add(time.Second/60)))
	assert.Equal(t, 2, fs.Frames)
	assert.Equal(t, 1, fs.Failures)
	assert.False(t, surf.ScissorTest())
	assert.Equal(t, gpu.Full(surf), surf.Viewport())
}

type testPage struct {
	scrolled math32.Vector2
}

func (tp *testPage) ScrollBy(delta math32.Vector2) {
	tp.scrolled = tp.scrolled.Add(delta)
}

func TestSchedulerInput(t *testing.T) {
	fs, _, _ := newTestScheduler(t, Ring())
	ctx := fs.Context()
	pg := &testPage{}
	fs.Page = pg
	var cfg any
	fs.OnConfig = func(data any) { cfg = data }
	fs.Spinner = NewSpinner(fs.Registry.Group, 0, 0)
	fs.Rig = NewCameraRig(ctx.Camera)

	ctx.Inbox.Send(events.NewScroll(image.Point{}, math32.Vec2(0, 40)))
	ctx.Inbox.Send(events.NewScroll(image.Point{}, math32.Vec2(0, 60)))
	ctx.Inbox.Send(events.NewCustom("reload"))
	ctx.Inbox.Send(events.NewMouseDrag(events.Left, image.Pt(20, 10), image.Pt(10, 10), image.Pt(10, 10)))
	require.NoError(t, fs.Tick(t0))
	assert.Equal(t, math32.Vec2(0, 100), pg.scrolled)
	assert.Equal(t, "reload", cfg)
	assert.Equal(t, float32(0), fs.Spinner.Speed)
	assert.InDelta(t, 0.05, fs.Spinner.Rot.Y, 1e-6)

	cfg = nil
	require.NoError(t, fs.Tick(t0))
	assert.Nil(t, cfg)
	assert.Equal(t, math32.Vec2(0, 100), pg.scrolled)
}

func TestOverlayFollowsEasedCamera(t *testing.T) {
	fs, _, _ := newTestScheduler(t, column)
	ctx := fs.Context()
	fs.Rig = NewCameraRig(ctx.Camera)
	fs.Selection.Seed(6)

	ctx.Inbox.Send(events.NewMouseMove(image.Pt(790, 10), image.Point{}))
	require.NoError(t, fs.Tick(t0))
	require.NoError(t, fs.Tick(t0.Add(time.Second/60)))
	assert.NotEqual(t, float32(0), ctx.Camera.Pose.Pos.X)

	// the overlay is projected with the camera the frame was rendered with
	want, ok := ProjectProxy(fs.Registry.Proxies[6], ctx.Camera, image.Rect(0, 0, 800, 600))
	require.True(t, ok)
	ov := fs.Overlay.Overlay
	require.True(t, ov.Visible)
	assert.InDelta(t, want.X, ov.Start.X, 1e-3)
	assert.InDelta(t, want.Y, ov.Start.Y, 1e-3)
}

func TestSchedulerRoutes(t *testing.T) {
	fs, _, _ := newTestScheduler(t, Globe(2, Location{Name: "Lagos"}, Location{Name: "Quito", Lon: 90}))
	ctx := fs.Context()
	fs.Routes = &RouteForm{}
	require.NoError(t, fs.Tick(t0))

	ref := image.Rect(0, 0, 800, 600)
	click := func(px *Proxy) {
		pt, ok := ProjectProxy(px, ctx.Camera, ref)
		require.True(t, ok)
		ctx.Inbox.Send(events.NewMouse(events.Click, events.Left, pixel(pt)))
		require.NoError(t, fs.Tick(t0))
	}
	click(fs.Registry.Proxies[0])
	assert.Equal(t, "Lagos", fs.Routes.Pickup)
	click(fs.Registry.Proxies[1])
	assert.Equal(t, "Quito", fs.Routes.Delivery)
	assert.True(t, fs.Routes.Complete())
}
