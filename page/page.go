// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package page provides a minimal in-memory page layout: rectangular
// boxes in page coordinates, viewed through a scrollable window.
// Boxes satisfy the element interfaces of the hero package, and the
// page turns pointer motion into enter / leave events for list boxes.
package page

import (
	"image"

	"cogentcore.org/hero/events"
	"cogentcore.org/hero/math32"
)

// Box is a rectangular element of a [Page].
type Box struct {

	// Name is for finding and logging
	Name string

	// ID is the logical id of list boxes, and -1 for other boxes
	ID int

	// Rect is the bounding rectangle in page coordinates
	Rect image.Rectangle

	// Hidden boxes report no bounds and are never hovered
	Hidden bool

	// Active is set by the selection on exactly one list box
	Active bool

	page *Page
}

// Bounds returns the bounding rectangle in window coordinates,
// i.e., offset by the current scroll position of the page.
// It returns false if the box is hidden.
func (bx *Box) Bounds() (image.Rectangle, bool) {
	if bx.Hidden || bx.page == nil {
		return image.Rectangle{}, false
	}
	return bx.Rect.Sub(bx.page.ScrollOffset()), true
}

// SetActive sets the active marker of the box.
func (bx *Box) SetActive(on bool) {
	bx.Active = on
}

// InView returns true if any part of the box is within the window.
func (bx *Box) InView() bool {
	r, ok := bx.Bounds()
	return ok && r.Overlaps(image.Rectangle{Max: bx.page.Size})
}

// Page is a set of boxes viewed through a window of a given size.
type Page struct {

	// Size is the size of the window onto the page
	Size image.Point

	// Scroll is the current scroll position, in page pixels
	Scroll math32.Vector2

	// HasScroll is whether the page scrolls horizontally and vertically
	HasScroll [2]bool

	// Boxes in the order they were added; later boxes are on top
	Boxes []*Box

	hover *Box
}

// New returns a new page with a window of the given size,
// scrolling vertically.
func New(size image.Point) *Page {
	return &Page{Size: size, HasScroll: [2]bool{false, true}}
}

// Add adds a box with the given name and page rectangle.
func (pg *Page) Add(name string, r image.Rectangle) *Box {
	bx := &Box{Name: name, ID: -1, Rect: r, page: pg}
	pg.Boxes = append(pg.Boxes, bx)
	return bx
}

// AddList adds n list boxes of the given size, stacked vertically
// from the given top-left position with the given gap, with ids 0..n-1.
func (pg *Page) AddList(name string, at image.Point, size image.Point, gap, n int) []*Box {
	bxs := make([]*Box, n)
	for i := 0; i < n; i++ {
		tl := at.Add(image.Pt(0, i*(size.Y+gap)))
		bx := pg.Add(name, image.Rectangle{Min: tl, Max: tl.Add(size)})
		bx.ID = i
		bxs[i] = bx
	}
	return bxs
}

// BoxByName returns the first box with the given name, or nil.
func (pg *Page) BoxByName(name string) *Box {
	for _, bx := range pg.Boxes {
		if bx.Name == name {
			return bx
		}
	}
	return nil
}

// ContentSize returns the size of the page content,
// which extends from the page origin to the furthest box.
func (pg *Page) ContentSize() image.Point {
	var sz image.Point
	for _, bx := range pg.Boxes {
		sz.X = max(sz.X, bx.Rect.Max.X)
		sz.Y = max(sz.Y, bx.Rect.Max.Y)
	}
	return sz
}

// MaxScroll returns the largest scroll position in each dimension.
func (pg *Page) MaxScroll() math32.Vector2 {
	cs := pg.ContentSize()
	return math32.Vec2(float32(max(cs.X-pg.Size.X, 0)), float32(max(cs.Y-pg.Size.Y, 0)))
}

// ScrollOffset returns the scroll position rounded to whole pixels.
func (pg *Page) ScrollOffset() image.Point {
	return image.Pt(int(math32.Round(pg.Scroll.X)), int(math32.Round(pg.Scroll.Y)))
}

// ScrollBy moves the scroll position by the given delta in each
// dimension that scrolls, keeping it within the content.
func (pg *Page) ScrollBy(delta math32.Vector2) {
	pg.ScrollTo(pg.Scroll.Add(delta))
}

// ScrollTo sets the scroll position in each dimension that scrolls,
// keeping it within the content.
func (pg *Page) ScrollTo(pos math32.Vector2) {
	mx := pg.MaxScroll()
	if pg.HasScroll[0] {
		pg.Scroll.X = math32.Clamp(pos.X, 0, mx.X)
	}
	if pg.HasScroll[1] {
		pg.Scroll.Y = math32.Clamp(pos.Y, 0, mx.Y)
	}
}

// ScrollToBox scrolls vertically so that the given box is in view,
// and returns true if scrolling was needed.
func (pg *Page) ScrollToBox(bx *Box) bool {
	r, ok := bx.Bounds()
	if !ok {
		return false
	}
	switch {
	case r.Min.Y < 0:
		pg.ScrollBy(math32.Vec2(0, float32(r.Min.Y)))
	case r.Max.Y > pg.Size.Y:
		pg.ScrollBy(math32.Vec2(0, float32(min(r.Max.Y-pg.Size.Y, r.Min.Y))))
	default:
		return false
	}
	return true
}

// Resize sets the window size, keeping the scroll position
// within the content.
func (pg *Page) Resize(size image.Point) {
	pg.Size = size
	pg.ScrollTo(pg.Scroll)
}

// BoxAt returns the topmost visible box under the given window
// position, or nil.
func (pg *Page) BoxAt(pt image.Point) *Box {
	for i := len(pg.Boxes) - 1; i >= 0; i-- {
		bx := pg.Boxes[i]
		if r, ok := bx.Bounds(); ok && pt.In(r) {
			return bx
		}
	}
	return nil
}

// ListAt returns the topmost visible list box under the given window
// position, or nil.
func (pg *Page) ListAt(pt image.Point) *Box {
	for i := len(pg.Boxes) - 1; i >= 0; i-- {
		bx := pg.Boxes[i]
		if bx.ID < 0 {
			continue
		}
		if r, ok := bx.Bounds(); ok && pt.In(r) {
			return bx
		}
	}
	return nil
}

// Hovered returns the list box the pointer was last over, or nil.
func (pg *Page) Hovered() *Box {
	return pg.hover
}

// PointerMove updates the hovered list box for the pointer at the given
// window position, and returns the leave and enter events for any change.
func (pg *Page) PointerMove(pt image.Point) []*events.Event {
	bx := pg.ListAt(pt)
	if bx == pg.hover {
		return nil
	}
	var evs []*events.Event
	if pg.hover != nil {
		evs = append(evs, events.NewLeave(pg.hover.ID))
	}
	if bx != nil {
		evs = append(evs, events.NewEnter(bx.ID, pt))
	}
	pg.hover = bx
	return evs
}
