// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hero

import (
	"fmt"
	"log/slog"
	"time"

	"cogentcore.org/hero/events"
	"cogentcore.org/hero/gpu"
	"cogentcore.org/hero/math32"
)

// MaxStep is the largest frame step, in nominal frames, so that a long
// pause (e.g., a hidden window) does not make proxies jump.
const MaxStep = 4

// Scroller is implemented by pages that scroll in response to the wheel.
type Scroller interface {
	ScrollBy(delta math32.Vector2)
}

// Scheduler runs one frame of a hero section per [Scheduler.Tick].
// It never schedules itself: the host calls Tick once per frame.
type Scheduler struct {
	ctx *Context

	Registry   *Registry
	Selection  *Selection
	Overlay    *OverlayRenderer
	Compositor *Compositor

	// Rig, Spinner, Routes and Page are optional
	Rig     *CameraRig
	Spinner *Spinner
	Routes  *RouteForm
	Page    Scroller

	// OnConfig is called at the start of a frame with the payload of
	// the last Custom event since the previous frame
	OnConfig func(data any)

	// OnFrame is called after the proxies advance, for other animation
	OnFrame func(f Frame)

	// Frames is the number of ticks so far
	Frames int

	// Failures is the number of ticks that failed
	Failures int

	start time.Time
	last  time.Time
}

// NewScheduler returns a new scheduler running the given components.
// The overlay and compositor may be nil.
func NewScheduler(ctx *Context, reg *Registry, sel *Selection, ovr *OverlayRenderer, cp *Compositor) *Scheduler {
	return &Scheduler{ctx: ctx, Registry: reg, Selection: sel, Overlay: ovr, Compositor: cp}
}

// Context returns the context of the scheduler.
func (fs *Scheduler) Context() *Context {
	return fs.ctx
}

// frame returns the timing of the frame at the given time.
// The first frame has a step of one nominal frame.
func (fs *Scheduler) frame(now time.Time) Frame {
	if fs.start.IsZero() {
		fs.start = now
		fs.last = now
		return Frame{Step: 1}
	}
	step := float32(now.Sub(fs.last).Seconds() * 60)
	fs.last = now
	return Frame{Elapsed: float32(now.Sub(fs.start).Seconds()), Step: math32.Clamp(step, 0, MaxStep)}
}

// Tick runs one frame at the given time: it drains the input, advances
// the proxies, resolves the pick and hover, updates the camera and the
// overlay, and renders the primary scene followed by all views.
// A panic within the frame is recovered, logged and returned as an
// error, and the next Tick runs normally.
func (fs *Scheduler) Tick(now time.Time) (err error) {
	fs.Frames++
	defer func() {
		if r := recover(); r != nil {
			fs.Failures++
			err = fmt.Errorf("hero: frame %d failed: %v", fs.Frames, r)
			slog.Error("hero: frame failed", "frame", fs.Frames, "err", r)
		}
	}()
	ctx := fs.ctx
	st := ctx.Inbox.Drain()
	ctx.Input = st
	if st.Data != nil && fs.OnConfig != nil {
		fs.OnConfig(st.Data)
	}
	if st.Resized {
		ctx.Resize(st.Size)
	}
	if fs.Page != nil && st.ScrollDelta != (math32.Vector2{}) {
		fs.Page.ScrollBy(st.ScrollDelta)
	}

	f := fs.frame(now)
	fs.Registry.Advance(f)
	if fs.OnFrame != nil {
		fs.OnFrame(f)
	}

	size := ctx.Surface.Size()
	ndc := PixelToNDC(st.Pointer, size)
	var hit *Proxy
	if st.InSurface {
		hit = Resolve(ndc, ctx.Camera, fs.Registry.Proxies)
	}
	if hit != nil {
		fs.Selection.SetActive(hit.ID)
	}
	if st.HoverSet && st.Hover >= 0 {
		fs.Selection.SetActive(st.Hover)
	}
	if st.Clicked && fs.Routes != nil {
		if px := Resolve(PixelToNDC(st.ClickPos, size), ctx.Camera, fs.Registry.Proxies); px != nil {
			fs.Routes.Select(px.Label)
		}
	}
	switch {
	case hit != nil:
		ctx.Cursor = events.CursorPointer
	case st.Dragging && fs.Spinner != nil:
		ctx.Cursor = events.CursorGrabbing
	default:
		ctx.Cursor = events.CursorDefault
	}

	if fs.Rig != nil {
		fs.Rig.Update(ndc, st.InSurface && !st.Dragging, f.Step)
	}
	if fs.Spinner != nil {
		fs.Spinner.Update(st.Dragging, st.DragDelta, f.Step)
	}
	if fs.Overlay != nil {
		fs.Overlay.Update(ctx.Camera)
	}

	gpu.ResetViewport(ctx.Surface)
	ctx.Scene.Render(ctx.Surface, ctx.Camera)
	if fs.Compositor != nil {
		fs.Compositor.RenderAll(st.Pointer, st.InSurface)
	}
	return nil
}
