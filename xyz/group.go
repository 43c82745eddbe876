// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

import (
	"slices"
	"sort"

	"cogentcore.org/hero/math32"
)

// Group collects individual elements in a scene but does not have a Shape or Material of
// its own.  It does have a transform that applies to all nodes under it.
type Group struct {
	NodeBase

	// Children are the nodes under this group, in creation order
	Children []Node
}

// NewGroup returns a new group with the given name, added as a child of
// the given parent (which may be nil).
func NewGroup(parent *Group, name string) *Group {
	gp := &Group{}
	gp.Name = name
	gp.Defaults()
	if parent != nil {
		parent.AddChild(gp)
	}
	return gp
}

func (gp *Group) Defaults() {
	gp.Pose.Defaults()
}

// AddChild adds the given node as the last child of this group,
// removing it from any previous parent.
func (gp *Group) AddChild(n Node) {
	nb := n.AsNodeBase()
	if nb.parent != nil {
		nb.parent.RemoveChild(n)
	}
	nb.parent = gp
	gp.Children = append(gp.Children, n)
}

// RemoveChild removes the given node from this group, if present.
func (gp *Group) RemoveChild(n Node) {
	idx := slices.Index(gp.Children, n)
	if idx < 0 {
		return
	}
	gp.Children = slices.Delete(gp.Children, idx, idx+1)
	n.AsNodeBase().parent = nil
}

// ChildByName returns the first direct child with the given name, or nil.
func (gp *Group) ChildByName(name string) Node {
	for _, kid := range gp.Children {
		if kid.AsNodeBase().Name == name {
			return kid
		}
	}
	return nil
}

// WalkDown calls the given function on this group and every node under it,
// depth first. If fun returns false, the children of that node are skipped.
func (gp *Group) WalkDown(fun func(n Node) bool) {
	if !fun(gp) {
		return
	}
	for _, kid := range gp.Children {
		if kg, ok := kid.(*Group); ok {
			kg.WalkDown(fun)
			continue
		}
		fun(kid)
	}
}

// Solids returns all of the visible solids under this group.
func (gp *Group) Solids() []*Solid {
	var sds []*Solid
	gp.WalkDown(func(n Node) bool {
		if n.AsNodeBase().Invisible {
			return false
		}
		if n.IsSolid() {
			sds = append(sds, n.AsSolid())
		}
		return true
	})
	return sds
}

// SetPos sets the [Pose.Pos] position of the group
func (gp *Group) SetPos(x, y, z float32) *Group {
	gp.Pose.Pos.Set(x, y, z)
	return gp
}

// SetEulerRotation sets the [Pose.Quat] rotation of the group,
// from Euler angles in degrees
func (gp *Group) SetEulerRotation(x, y, z float32) *Group {
	gp.Pose.SetEulerRotation(x, y, z)
	return gp
}

// SolidPoint contains a Solid and a Point on that solid
type SolidPoint struct {
	Solid *Solid
	Point math32.Vector3

	// Dist is the distance of Point from the ray origin
	Dist float32
}

// RaySolidIntersections returns a list of the visible solids under this group
// whose world bounding sphere intersects with the given ray, with the point
// of intersection. Results are sorted from closest to furthest.
func (gp *Group) RaySolidIntersections(ray math32.Ray) []*SolidPoint {
	return RaySolids(ray, gp.Solids()...)
}

// RaySolids returns the given solids whose world bounding sphere intersects
// with the given ray, sorted from closest to furthest. Invisible solids are skipped.
func RaySolids(ray math32.Ray, solids ...*Solid) []*SolidPoint {
	var sp []*SolidPoint
	for _, sd := range solids {
		if sd == nil || !sd.IsVisible() {
			continue
		}
		pt, dist, has := ray.IntersectSphere(sd.WorldSphere())
		if !has {
			continue
		}
		sp = append(sp, &SolidPoint{Solid: sd, Point: pt, Dist: dist})
	}
	sort.SliceStable(sp, func(i, j int) bool {
		return sp[i].Dist < sp[j].Dist
	})
	return sp
}

// test for impl
var _ Node = &Group{}
