// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

import (
	"image"
	"sync"

	"cogentcore.org/hero/math32"
)

// State is the input target state accumulated from events between
// two frames. It is a value snapshot: the frame loop owns it once drained.
type State struct {

	// Pointer is the last pointer position in surface pixels
	Pointer image.Point

	// InSurface is whether the pointer is currently over the surface
	InSurface bool

	// Hover is the id of the page element last entered by the pointer,
	// or -1 if the pointer left it
	Hover int

	// HoverSet is true if an element was entered since the last drain
	HoverSet bool

	// Clicked is true if a Click happened since the last drain
	Clicked bool

	// ClickPos is the position of the last Click
	ClickPos image.Point

	// Dragging is true while a button is held and the pointer moves
	Dragging bool

	// DragDelta is the total drag motion since the last drain
	DragDelta math32.Vector2

	// Size is the last known surface size
	Size image.Point

	// Resized is true if Size changed since the last drain
	Resized bool

	// ScrollDelta is the total scroll motion since the last drain
	ScrollDelta math32.Vector2

	// Data is the last Custom event payload since the last drain, if any
	Data any
}

// Inbox collects events from host callbacks, which may run on any
// goroutine, into a single last-write-wins [State]. The frame loop
// calls [Inbox.Drain] once per frame.
type Inbox struct {
	mu sync.Mutex
	st State
}

// NewInbox returns a new Inbox with no hover target.
func NewInbox() *Inbox {
	ib := &Inbox{}
	ib.st.Hover = -1
	return ib
}

// Send records the given event.
func (ib *Inbox) Send(ev *Event) {
	ib.mu.Lock()
	defer ib.mu.Unlock()
	st := &ib.st
	switch ev.Typ {
	case MouseMove:
		st.Pointer = ev.Where
		st.InSurface = true
	case MouseDrag:
		st.Pointer = ev.Where
		st.InSurface = true
		st.Dragging = true
		st.DragDelta = st.DragDelta.Add(math32.FromPoint(ev.Where.Sub(ev.Prev)))
	case MouseDown:
		st.Pointer = ev.Where
	case MouseUp:
		st.Pointer = ev.Where
		st.Dragging = false
	case Click:
		st.Clicked = true
		st.ClickPos = ev.Where
	case MouseEnter:
		if ev.Target < 0 {
			st.InSurface = true
			st.Pointer = ev.Where
			break
		}
		st.Hover = ev.Target
		st.HoverSet = true
	case MouseLeave:
		if ev.Target < 0 {
			st.InSurface = false
			st.Dragging = false
			break
		}
		if st.Hover == ev.Target {
			st.Hover = -1
		}
	case Scroll:
		st.ScrollDelta = st.ScrollDelta.Add(ev.Delta)
	case WindowResize:
		if st.Size != ev.Size {
			st.Size = ev.Size
			st.Resized = true
		}
	case Custom:
		st.Data = ev.Data
	}
}

// Drain returns the accumulated state and resets the one-shot
// fields (HoverSet, Clicked, DragDelta, Resized, ScrollDelta, Data).
func (ib *Inbox) Drain() State {
	ib.mu.Lock()
	defer ib.mu.Unlock()
	st := ib.st
	ib.st.HoverSet = false
	ib.st.Clicked = false
	ib.st.DragDelta = math32.Vector2{}
	ib.st.Resized = false
	ib.st.ScrollDelta = math32.Vector2{}
	ib.st.Data = nil
	return st
}
