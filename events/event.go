// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

import (
	"fmt"
	"image"
	"time"

	"cogentcore.org/hero/math32"
)

// Buttons is a mouse button.
type Buttons int32

const (
	NoButton Buttons = iota
	Left
	Middle
	Right
)

// Event is a single input event as delivered by the host.
// Fields that do not apply to the event Type are left zero.
type Event struct {

	// Typ is the type of event
	Typ Types

	// Button is the mouse button for mouse events
	Button Buttons

	// Where is the pointer position in surface pixels (top-left origin)
	Where image.Point

	// Prev is the previous pointer position for move and drag events
	Prev image.Point

	// Start is where the button was first pressed for drag events
	Start image.Point

	// Delta is the scroll amount in pixels for Scroll events
	Delta math32.Vector2

	// Size is the new surface size for WindowResize events
	Size image.Point

	// Target is the id of the page element for MouseEnter / MouseLeave
	// events on elements; -1 means the surface itself.
	Target int

	// Data is the payload of Custom events
	Data any

	// GenTime is when the event was generated
	GenTime time.Time
}

// Type returns the type of event.
func (ev *Event) Type() Types {
	return ev.Typ
}

// Time returns when the event was generated.
func (ev *Event) Time() time.Time {
	return ev.GenTime
}

func (ev *Event) String() string {
	switch ev.Typ {
	case Scroll:
		return fmt.Sprintf("%v{Delta: %v, Pos: %v}", ev.Typ, ev.Delta, ev.Where)
	case WindowResize:
		return fmt.Sprintf("%v{Size: %v}", ev.Typ, ev.Size)
	case Custom:
		return fmt.Sprintf("%v{Data: %v}", ev.Typ, ev.Data)
	}
	return fmt.Sprintf("%v{Button: %v, Pos: %v, Target: %d}", ev.Typ, ev.Button, ev.Where, ev.Target)
}

func newEvent(typ Types) *Event {
	return &Event{Typ: typ, Target: -1, GenTime: time.Now()}
}

func NewMouse(typ Types, but Buttons, where image.Point) *Event {
	ev := newEvent(typ)
	ev.Button = but
	ev.Where = where
	return ev
}

func NewMouseMove(where, prev image.Point) *Event {
	ev := newEvent(MouseMove)
	ev.Where = where
	ev.Prev = prev
	return ev
}

func NewMouseDrag(but Buttons, where, prev, start image.Point) *Event {
	ev := newEvent(MouseDrag)
	ev.Button = but
	ev.Where = where
	ev.Prev = prev
	ev.Start = start
	return ev
}

func NewScroll(where image.Point, delta math32.Vector2) *Event {
	ev := newEvent(Scroll)
	ev.Where = where
	ev.Delta = delta
	return ev
}

func NewResize(size image.Point) *Event {
	ev := newEvent(WindowResize)
	ev.Size = size
	return ev
}

// NewEnter returns a MouseEnter event for the page element with the given id,
// or for the surface when id is -1.
func NewEnter(id int, where image.Point) *Event {
	ev := newEvent(MouseEnter)
	ev.Target = id
	ev.Where = where
	return ev
}

// NewLeave returns a MouseLeave event for the page element with the given id,
// or for the surface when id is -1.
func NewLeave(id int) *Event {
	ev := newEvent(MouseLeave)
	ev.Target = id
	return ev
}

func NewCustom(data any) *Event {
	ev := newEvent(Custom)
	ev.Data = data
	return ev
}
