// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package section assembles a complete hero section from a
// [config.Config]: the page layout, the proxies in one of the
// supported layouts, the selection, overlay and card views, and the
// scheduler that runs them.
package section

import (
	"fmt"
	"image"
	"image/color"
	"log/slog"

	"cogentcore.org/hero/base/errors"
	"cogentcore.org/hero/base/randx"
	"cogentcore.org/hero/config"
	"cogentcore.org/hero/events"
	"cogentcore.org/hero/gpu"
	"cogentcore.org/hero/hero"
	"cogentcore.org/hero/math32"
	"cogentcore.org/hero/page"
	"cogentcore.org/hero/xyz"
)

// Section is one hero section with its page.
type Section struct {
	Config *config.Config

	Context    *hero.Context
	Page       *page.Page
	Items      []*page.Box
	Cards      []*page.Box
	Registry   *hero.Registry
	Selection  *hero.Selection
	Overlay    *hero.OverlayRenderer
	Compositor *hero.Compositor
	Scheduler  *hero.Scheduler

	// Decor is the central decoration: a wireframe core or globe body
	Decor *xyz.Solid

	// cardSolids are the solids of the card scenes, animated per frame
	cardSolids []*xyz.Solid
}

// New returns a new section for the given config rendering to the given
// surface, with the configured active id already seeded.
func New(cf *config.Config, surf gpu.Surface) (*Section, error) {
	if err := cf.Validate(); err != nil {
		return nil, err
	}
	ctx := hero.NewContext(surf, randx.NewSysRand(cf.Seed))
	sc := &Section{Config: cf, Context: ctx}
	sc.layoutPage(surf.Size())

	var parent *xyz.Group
	var place hero.PlacementFunc
	switch cf.Layout {
	case "ring":
		place = hero.Ring()
	case "sphere":
		place = hero.Sphere(cf.Radius)
	case "globe":
		locs := make([]hero.Location, len(cf.Locations))
		for i, l := range cf.Locations {
			locs[i] = hero.Location{Name: l.Name, Lat: l.Lat, Lon: l.Lon}
		}
		place = hero.Globe(cf.Radius, locs...)
		parent = xyz.NewGroup(&ctx.Scene.Group, "globe")
	}
	reg := hero.NewRegistry(ctx, parent)
	reg.Material = xyz.NewMaterial(cf.ProxyColor.RGBA)
	if cf.Layout != "ring" {
		reg.SpokeEvery = 0
	}
	if cf.Layout == "sphere" {
		reg.GroupSpin = 0.002
	}
	reg.Generate(cf.Proxies, place)
	sc.Registry = reg

	sc.Selection = hero.NewSelection(ctx, reg, hero.NewEntries(sc.Items...))
	sc.Overlay = hero.NewOverlayRenderer(ctx, sc.Selection)
	sc.Compositor = hero.NewCompositor(ctx)
	for i, cd := range cf.Cards {
		sc.addCard(cd, sc.Cards[i])
	}
	fs := hero.NewScheduler(ctx, reg, sc.Selection, sc.Overlay, sc.Compositor)
	fs.Page = sc.Page
	fs.OnConfig = func(data any) {
		if ncf, ok := data.(*config.Config); ok {
			sc.Apply(ncf)
		}
	}
	fs.OnFrame = sc.animate
	sc.Scheduler = fs

	switch cf.Layout {
	case "globe":
		body := xyz.NewSolid(parent, "body", &xyz.Sphere{Radius: cf.Radius * 0.98})
		body.SetMaterial(wireframe(color.RGBA{0x99, 0x99, 0x99, 255}))
		sc.Decor = body
		fs.Spinner = hero.NewSpinner(parent, 0.2, 0.1)
		fs.Routes = &hero.RouteForm{OnChange: func(rf *hero.RouteForm) {
			slog.Info("route", "pickup", rf.Pickup, "delivery", rf.Delivery)
		}}
	default:
		core := xyz.NewSolid(&ctx.Scene.Group, "core", &xyz.Sphere{Radius: 0.8})
		core.SetMaterial(wireframe(color.RGBA{0xcc, 0xcc, 0xcc, 255}))
		sc.Decor = core
	}
	sc.Apply(cf)
	sc.Selection.Seed(cf.Active)
	return sc, nil
}

func wireframe(c color.RGBA) *xyz.Material {
	mt := xyz.NewMaterial(c)
	mt.Wireframe = true
	return mt
}

// layoutPage lays out the page for the given window size: a list on the
// right side of the hero area and a row of cards below it.
func (sc *Section) layoutPage(size image.Point) {
	cf := sc.Config
	pg := page.New(size)
	pg.Add("hero", image.Rectangle{Max: size})
	x := size.X * 68 / 100
	sc.Items = pg.AddList("entry", image.Pt(x, 40), image.Pt(size.X*28/100, 20), 4, cf.Entries)
	const gap = 24
	n := len(cf.Cards)
	if n > 0 {
		w := (size.X - (n+1)*gap) / n
		for i, cd := range cf.Cards {
			x := gap + i*(w+gap)
			sc.Cards = append(sc.Cards, pg.Add("card-"+cd.Name, image.Rect(x, size.Y+gap, x+w, size.Y+gap+w*3/4)))
		}
	}
	sc.Page = pg
}

// cardShape returns the shape with the given name.
func cardShape(name string) (xyz.Shape, error) {
	switch name {
	case "", "sphere":
		return &xyz.Sphere{Radius: 1}, nil
	case "box":
		return xyz.NewBox(1.4, 1.4, 1.4), nil
	case "tetrahedron":
		return &xyz.Tetrahedron{Radius: 1.2}, nil
	case "octahedron":
		return &xyz.Octahedron{Radius: 1.2}, nil
	}
	return nil, fmt.Errorf("section: unknown card shape %q", name)
}

// addCard adds the miniature view of the given card over the given box.
func (sc *Section) addCard(cd config.Card, bx *page.Box) {
	shape := errors.Log1(cardShape(cd.Shape))
	if shape == nil {
		shape = &xyz.Sphere{Radius: 1}
	}
	scn := xyz.NewScene(cd.Name)
	scn.Camera.Pose.Pos.Set(0, 0, 5)
	scn.Camera.LookAtOrigin()
	sd := xyz.NewSolid(&scn.Group, "shape", shape)
	sc.cardSolids = append(sc.cardSolids, sd)
	st := &hero.StyleOverride{Color: cd.Color.RGBA, Edge: cd.Edge.RGBA, Distort: cd.Distort, Wireframe: cd.Wireframe}
	vd := &hero.ViewportDescriptor{Name: cd.Name, Anchor: bx, Scene: scn, Style: st}
	if !cd.HoverColor.IsNil() {
		hs := *st
		hs.Color = cd.HoverColor.RGBA
		vd.HoverStyle = &hs
	}
	sc.Compositor.Add(vd)
}

// animate runs the decoration animations for one frame.
func (sc *Section) animate(f hero.Frame) {
	if sc.Decor != nil && sc.Config.Layout != "globe" {
		sc.Decor.Pose.RotateOnAxisRad(0, 1, 0, 0.003*f.Step)
	}
	for i, sd := range sc.cardSolids {
		sd.Pose.Pos.Y = 0.2 * math32.Sin(f.Elapsed+float32(i))
		sd.Pose.RotateEulerRad(0.01*f.Step, 0.01*f.Step, 0)
	}
}

// Apply applies the parts of the given config that can change while
// running: colors, highlight scale and camera rig. The layout and the
// numbers of proxies and entries stay as they are, so ids remain stable.
func (sc *Section) Apply(cf *config.Config) {
	ctx := sc.Context
	ctx.Accent = cf.Accent.RGBA
	ctx.Scene.Background = cf.Background.RGBA
	ctx.HighlightScale = cf.HighlightScale
	for _, px := range sc.Registry.Proxies {
		px.BaseColor = cf.ProxyColor.RGBA
		if px.Highlight {
			px.Solid.Material.Color = ctx.Accent
			px.Solid.Pose.SetUniformScale(px.BaseScale * ctx.HighlightScale)
		} else {
			px.Solid.Material.Color = px.BaseColor
		}
	}
	fs := sc.Scheduler
	switch {
	case cf.Rig.Enabled && cf.Layout != "globe":
		if fs.Rig == nil {
			fs.Rig = hero.NewCameraRig(ctx.Camera)
		}
		fs.Rig.Factor = cf.Rig.Factor
		fs.Rig.Range = cf.Rig.Range
	case fs.Rig != nil:
		fs.Rig = nil
		ctx.Camera.DefaultPose()
	}
	if cf != sc.Config {
		slog.Debug("section: applied config")
	}
	sc.Config.Accent = cf.Accent
	sc.Config.Background = cf.Background
	sc.Config.ProxyColor = cf.ProxyColor
	sc.Config.HighlightScale = cf.HighlightScale
	sc.Config.Rig = cf.Rig
}

// Resize resizes the page window, and queues the resize of the
// surface for the next frame.
func (sc *Section) Resize(size image.Point) {
	sc.Page.Resize(size)
	sc.Context.Inbox.Send(events.NewResize(size))
}
