// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hero

import (
	"fmt"
	"image/color"

	"cogentcore.org/hero/math32"
	"cogentcore.org/hero/xyz"
)

// Orbit holds the kinematic parameters of a proxy. Only Angle is
// integrated over time; the position is always recomputed from the
// parameters so the radius never drifts.
type Orbit struct {

	// Radius is the distance from the center of the group
	Radius float32

	// Angle is the azimuthal angle in radians, advanced by Speed
	Angle float32

	// Speed is the change in Angle per nominal frame
	Speed float32

	// Polar is the polar angle in radians from the +Y axis;
	// pi/2 is the horizontal plane
	Polar float32

	// YOffset is added to the vertical position
	YOffset float32

	// BobPhase is the phase of the vertical bob
	BobPhase float32

	// BobAmp is the amplitude of the vertical bob
	BobAmp float32

	// SpinSpeed is the self rotation about X and Y per nominal frame
	SpinSpeed float32
}

// Position returns the position for the orbit at the given elapsed
// time in seconds. The bob is a pure function of time and phase.
// Angle 0 is on +X and increasing angles turn toward +Z.
func (ob Orbit) Position(elapsed float32) math32.Vector3 {
	sp := math32.Sin(ob.Polar)
	bob := ob.BobAmp * math32.Sin(elapsed+ob.BobPhase)
	return math32.Vec3(ob.Radius*sp*math32.Cos(ob.Angle),
		ob.Radius*math32.Cos(ob.Polar)+ob.YOffset+bob,
		ob.Radius*sp*math32.Sin(ob.Angle))
}

// Proxy is a 3D stand-in for a list entry.
type Proxy struct {

	// ID is the creation index, stable for the session
	ID int

	// Orbit holds the kinematic parameters
	Orbit Orbit

	// Solid is the scene node of the proxy; its world position is
	// derived from its pose and the parent chain
	Solid *xyz.Solid

	// Group is the group that owns the proxy solid
	Group *xyz.Group

	// Highlight is true while the proxy is the active one
	Highlight bool

	// BaseColor is the color restored when the highlight is removed
	BaseColor color.RGBA

	// BaseScale is the uniform scale restored when the highlight is removed
	BaseScale float32

	// Label is an optional name, e.g., for globe locations
	Label string

	// spoke is a line from the group center, if any
	spoke *xyz.Line
}

func (px *Proxy) String() string {
	if px.Label != "" {
		return fmt.Sprintf("Proxy %d (%s)", px.ID, px.Label)
	}
	return fmt.Sprintf("Proxy %d", px.ID)
}

// Frame is the timing of one frame.
type Frame struct {

	// Elapsed is the wall time since the start, in seconds
	Elapsed float32

	// Step is the number of nominal (60 Hz) frames since the last frame
	Step float32
}

// Registry owns the proxies of a section. Proxies are created once
// by [Registry.Generate] and never destroyed.
type Registry struct {
	ctx *Context

	// Proxies in creation order; Proxies[i].ID == i
	Proxies []*Proxy

	// Group holds all proxy solids and spokes
	Group *xyz.Group

	// Material is the base material that each proxy material is cloned from
	Material *xyz.Material

	// SpokeEvery adds a spoke line from the center to every n-th proxy; 0 for none
	SpokeEvery int

	// SpokeColor is the color of spoke lines
	SpokeColor color.RGBA

	// GroupSpin is the rotation of the group about Y per nominal frame
	GroupSpin float32
}

// NewRegistry returns a new registry whose proxy group is added
// to the given parent group (the primary scene if nil).
func NewRegistry(ctx *Context, parent *xyz.Group) *Registry {
	if parent == nil {
		parent = &ctx.Scene.Group
	}
	rg := &Registry{ctx: ctx}
	rg.Group = xyz.NewGroup(parent, "proxies")
	rg.Material = xyz.NewMaterial(color.RGBA{0x33, 0x33, 0x33, 255})
	rg.SpokeEvery = 3
	rg.SpokeColor = color.RGBA{0, 0, 0, 26}
	return rg
}

// Len returns the number of proxies.
func (rg *Registry) Len() int {
	return len(rg.Proxies)
}

// Generate creates count proxies placed by place, using the random
// source of the Context. Proxies are appended, with ids continuing
// from the current count.
func (rg *Registry) Generate(count int, place PlacementFunc) []*Proxy {
	start := len(rg.Proxies)
	for i := 0; i < count; i++ {
		pl := place(i, count, rg.ctx.Rand)
		id := start + i
		if pl.Shape == nil {
			pl.Shape = xyz.NewBox(0.2, 0.2, 0.2)
		}
		sd := xyz.NewSolid(rg.Group, fmt.Sprintf("proxy-%d", id), pl.Shape)
		sd.SetMaterial(rg.Material.Clone())
		px := &Proxy{ID: id, Orbit: pl.Orbit, Solid: sd, Group: rg.Group, Label: pl.Label,
			BaseColor: rg.Material.Color, BaseScale: 1}
		if rg.SpokeEvery > 0 && i%rg.SpokeEvery == 0 {
			px.spoke = xyz.NewLine(rg.Group, fmt.Sprintf("spoke-%d", id), math32.Vector3{}, math32.Vector3{})
			px.spoke.Color = rg.SpokeColor
		}
		rg.Proxies = append(rg.Proxies, px)
		px.place(0)
	}
	return rg.Proxies[start:]
}

// place sets the solid position from the orbit at the given time.
func (px *Proxy) place(elapsed float32) {
	pos := px.Orbit.Position(elapsed)
	px.Solid.Pose.Pos = pos
	if px.spoke != nil {
		px.spoke.End = pos
	}
}

// Advance moves all proxies by one frame: angles advance by their speed
// times the frame step, positions are recomputed, and each proxy spins
// about its own X and Y axes. It touches no page state.
func (rg *Registry) Advance(f Frame) {
	for _, px := range rg.Proxies {
		ob := &px.Orbit
		ob.Angle += ob.Speed * f.Step
		px.place(f.Elapsed)
		if ob.SpinSpeed != 0 {
			sp := ob.SpinSpeed * f.Step
			px.Solid.Pose.RotateEulerRad(sp, sp, 0)
		}
	}
	if rg.GroupSpin != 0 {
		rg.Group.Pose.RotateOnAxisRad(0, 1, 0, rg.GroupSpin*f.Step)
	}
}

// ProxyFor returns the proxy that stands in for the entry with the given
// id: proxy id mod P. It returns nil if there are no proxies.
func (rg *Registry) ProxyFor(id int) *Proxy {
	n := len(rg.Proxies)
	if n == 0 {
		return nil
	}
	return rg.Proxies[((id%n)+n)%n]
}

// Solids returns the solids of all proxies.
func (rg *Registry) Solids() []*xyz.Solid {
	sds := make([]*xyz.Solid, len(rg.Proxies))
	for i, px := range rg.Proxies {
		sds[i] = px.Solid
	}
	return sds
}
