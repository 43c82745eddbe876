// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

// Cursors is the cursor shape the host should show,
// as a hint computed by the frame loop.
type Cursors int32

const (
	// CursorDefault is the normal arrow cursor.
	CursorDefault Cursors = iota

	// CursorPointer indicates something clickable is under the pointer.
	CursorPointer

	// CursorGrabbing indicates a drag rotation is in progress.
	CursorGrabbing
)

var cursorsNames = [...]string{"Default", "Pointer", "Grabbing"}

func (c Cursors) String() string {
	if c < 0 || int(c) >= len(cursorsNames) {
		return "Default"
	}
	return cursorsNames[c]
}
