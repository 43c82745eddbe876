// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

import (
	"cogentcore.org/hero/math32"
)

// Node is the common interface for all xyz scenegraph nodes
type Node interface {
	// AsNodeBase returns the generic NodeBase for our node -- gives generic
	// access to all the base-level data structures without needing interface methods.
	AsNodeBase() *NodeBase

	// IsSolid returns true if this is an [*Solid] node (else a [*Group] or [*Line]).
	IsSolid() bool

	// AsSolid returns the node as a [*Solid] (only valid if IsSolid true).
	AsSolid() *Solid
}

// NodeBase is the basic xyz node, which has a name, a pose,
// and a pointer to its parent group.
type NodeBase struct {

	// Name is the name of the node, unique within its parent
	Name string

	// Invisible hides this node and all of its children from rendering and picking
	Invisible bool

	// complete specification of position and orientation
	Pose Pose

	// parent group, nil for the scene root
	parent *Group
}

func (nb *NodeBase) AsNodeBase() *NodeBase {
	return nb
}

func (nb *NodeBase) IsSolid() bool {
	return false
}

func (nb *NodeBase) AsSolid() *Solid {
	return nil
}

// Parent returns the parent group, or nil for a root.
func (nb *NodeBase) Parent() *Group {
	return nb.parent
}

// IsVisible returns true if this node and all of its parents are visible.
func (nb *NodeBase) IsVisible() bool {
	for p := nb; p != nil; {
		if p.Invisible {
			return false
		}
		if p.parent == nil {
			break
		}
		p = &p.parent.NodeBase
	}
	return true
}

// SetPos sets the [Pose.Pos] position of the node
func (nb *NodeBase) SetPos(x, y, z float32) {
	nb.Pose.Pos.Set(x, y, z)
}

// SetScale sets the [Pose.Scale] scale of the node
func (nb *NodeBase) SetScale(x, y, z float32) {
	nb.Pose.Scale.Set(x, y, z)
}

// WorldMatrix returns the world transform of the given node, composing
// the local matrices of the full ancestor chain as it is right now.
// It does not rely on any cached parent matrix, so it is correct even
// when an ancestor moved earlier in the same frame.
func WorldMatrix(n Node) math32.Matrix4 {
	nb := n.AsNodeBase()
	nb.Pose.UpdateMatrix()
	wm := nb.Pose.Matrix
	for p := nb.parent; p != nil; p = p.parent {
		p.Pose.UpdateMatrix()
		var m math32.Matrix4
		m.MulMatrices(&p.Pose.Matrix, &wm)
		wm = m
	}
	return wm
}

// UpdateWorldMatrix updates the local and world matrices for the given node
// and all of its children, in top-down order, starting from the given
// parent world matrix (nil for a root).
func UpdateWorldMatrix(n Node, parWorld *math32.Matrix4) {
	nb := n.AsNodeBase()
	nb.Pose.UpdateMatrix()
	nb.Pose.UpdateWorldMatrix(parWorld)
	gp, ok := n.(*Group)
	if !ok {
		return
	}
	for _, kid := range gp.Children {
		UpdateWorldMatrix(kid, &nb.Pose.WorldMatrix)
	}
}
