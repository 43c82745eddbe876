// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package hero keeps an animated 3D scene in sync with page layout:
// proxies orbiting in the scene are highlighted in lockstep with list
// entries on the page, a connector curve links the active proxy to its
// entry, and miniature views of other scenes are rendered into page
// regions of one shared surface.
//
// All render state is owned by the frame loop ([Scheduler.Tick]);
// host event handlers only write to the [events.Inbox] of the [Context].
package hero

import (
	"image"
	"image/color"

	"cogentcore.org/hero/base/randx"
	"cogentcore.org/hero/events"
	"cogentcore.org/hero/gpu"
	"cogentcore.org/hero/xyz"
)

// Context holds the state shared by all components of one hero section.
// It is constructed once and passed to every component constructor.
type Context struct {

	// Surface is the shared render surface
	Surface gpu.Surface

	// Scene is the primary scene, rendered to the full surface
	Scene *xyz.Scene

	// Camera views the primary scene; it is the scene camera
	Camera *xyz.Camera

	// Rand is the seeded random source for placement
	Rand randx.Rand

	// Inbox collects host events between frames
	Inbox *events.Inbox

	// Origin is the top-left of the surface in window (page) coordinates,
	// used to convert element bounds into surface space
	Origin image.Point

	// Accent is the color of highlighted proxies
	Accent color.RGBA

	// HighlightScale is the uniform scale factor applied to highlighted proxies
	HighlightScale float32

	// Cursor is the cursor hint computed by the last frame
	Cursor events.Cursors

	// Input is the input state drained at the start of the current frame
	Input events.State
}

// NewContext returns a new Context for the given surface and random
// source, with a new primary scene sized to the surface.
func NewContext(surf gpu.Surface, rnd randx.Rand) *Context {
	ctx := &Context{Surface: surf, Rand: rnd}
	ctx.Scene = xyz.NewScene("hero")
	ctx.Camera = &ctx.Scene.Camera
	ctx.Inbox = events.NewInbox()
	ctx.Accent = color.RGBA{0, 0, 0, 255}
	ctx.HighlightScale = 1.5
	sz := surf.Size()
	ctx.Camera.SetAspectSize(sz.X, sz.Y)
	return ctx
}

// SurfaceRect returns the bounds of the given window-space rectangle
// in surface space (top-left origin).
func (ctx *Context) SurfaceRect(r image.Rectangle) image.Rectangle {
	return r.Sub(ctx.Origin)
}

// Resize resizes the surface and updates the camera aspect ratio.
func (ctx *Context) Resize(sz image.Point) {
	ctx.Surface.SetSize(sz)
	ctx.Camera.SetAspectSize(sz.X, sz.Y)
}
