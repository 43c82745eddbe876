// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

// Types determines the type of input event delivered by the host.
// Unless otherwise noted, all events are Unique, meaning each one is
// recorded. Non-Unique events are compressed: only the latest value
// is kept until the frame loop drains the [Inbox].
type Types int32

const (
	// zero value is an unknown type
	UnknownType Types = iota

	// MouseDown happens when a mouse button is pressed down.
	MouseDown

	// MouseUp happens when a mouse button is released.
	MouseUp

	// MouseMove is sent when the mouse is moving but no button is down.
	// Not unique.
	MouseMove

	// MouseDrag is sent when the mouse is moving and there is a button down.
	// The start pos indicates where the button was first pressed.
	// Not unique, but the drag delta is integrated.
	MouseDrag

	// Click represents a MouseDown followed by MouseUp in sequence
	// without an intervening drag.
	Click

	// MouseEnter is when the mouse enters the surface or a page element.
	MouseEnter

	// MouseLeave is when the mouse leaves the surface or a page element.
	MouseLeave

	// Scroll is for scroll wheel motion. Not unique, but delta is integrated.
	Scroll

	// WindowResize happens when the surface changes size. Not unique.
	WindowResize

	// Custom is a user-defined event with a Data payload,
	// such as a reloaded configuration.
	Custom
)

var typesNames = [...]string{"UnknownType", "MouseDown", "MouseUp", "MouseMove", "MouseDrag", "Click", "MouseEnter", "MouseLeave", "Scroll", "WindowResize", "Custom"}

// String returns the name of the event type.
func (tp Types) String() string {
	if tp < 0 || int(tp) >= len(typesNames) {
		return "UnknownType"
	}
	return typesNames[tp]
}

// IsUnique returns true if events of this type are never compressed.
func (tp Types) IsUnique() bool {
	switch tp {
	case MouseMove, MouseDrag, Scroll, WindowResize:
		return false
	}
	return true
}
