// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

import (
	"image/color"

	"cogentcore.org/hero/math32"
)

// Line is a thin line segment between two points, in the local
// coordinates of the line node. Width is in surface pixels.
type Line struct {
	NodeBase

	// Start is the starting point of the line
	Start math32.Vector3

	// End is the ending point of the line
	End math32.Vector3

	// Width is the width of the line in pixels
	Width float32

	// Color is the color of the line
	Color color.RGBA
}

// NewLine returns a new line with the given name and end points,
// added as a child of the given parent (which may be nil).
func NewLine(parent *Group, name string, start, end math32.Vector3) *Line {
	ln := &Line{Start: start, End: end, Width: 1, Color: color.RGBA{255, 255, 255, 255}}
	ln.Name = name
	ln.Pose.Defaults()
	if parent != nil {
		parent.AddChild(ln)
	}
	return ln
}

// test for impl
var _ Node = &Line{}
