// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"image"
	"image/color"
	"log/slog"
	"time"

	"cogentcore.org/hero/config"
	"cogentcore.org/hero/events"
	"cogentcore.org/hero/gpu"
	"cogentcore.org/hero/math32"
	"cogentcore.org/hero/section"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/spf13/cobra"
)

// clickSlop is the largest pointer motion in pixels between press and
// release that still counts as a click.
const clickSlop = 4

// wheelScale is the page scroll in pixels per wheel step.
const wheelScale = 40

var (
	entryColor = color.RGBA{0x99, 0x99, 0x99, 255}
	cardColor  = color.RGBA{0xdd, 0xdd, 0xdd, 255}
	textOffset = image.Pt(6, 3)
)

func newRunCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "run the hero section in a window",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), opts)
		},
	}
}

func run(ctx context.Context, opts *options) error {
	cf, err := opts.loadConfig()
	if err != nil {
		return err
	}
	surf := gpu.NewRaster(image.Pt(cf.Width, cf.Height))
	sc, err := section.New(cf, surf)
	if err != nil {
		return err
	}
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	if opts.configFile != "" {
		go func() {
			config.Watch(ctx, opts.configFile, func(ncf *config.Config) {
				sc.Context.Inbox.Send(events.NewCustom(ncf))
			})
		}()
	}
	g := &game{section: sc, surf: surf, size: surf.Size()}
	ebiten.SetWindowSize(cf.Width, cf.Height)
	ebiten.SetWindowTitle("heroview")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	return ebiten.RunGame(g)
}

// game is the ebiten host of a section. Update turns ebiten input into
// inbox events and runs one frame; Draw presents the surface and the page.
type game struct {
	section *section.Section
	surf    *gpu.Raster
	frame   *ebiten.Image

	size      image.Point
	pointer   image.Point
	inside    bool
	pressed   bool
	pressedAt image.Point
}

func (g *game) Update() error {
	ib := g.section.Context.Inbox
	mx, my := ebiten.CursorPosition()
	pt := image.Pt(mx, my)
	inside := pt.In(image.Rectangle{Max: g.size})
	switch {
	case inside && !g.inside:
		ib.Send(events.NewEnter(-1, pt))
	case !inside && g.inside:
		ib.Send(events.NewLeave(-1))
	}
	g.inside = inside

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.pressed = true
		g.pressedAt = pt
		ib.Send(events.NewMouse(events.MouseDown, events.Left, pt))
	}
	if inside && pt != g.pointer {
		if g.pressed {
			ib.Send(events.NewMouseDrag(events.Left, pt, g.pointer, g.pressedAt))
		} else {
			ib.Send(events.NewMouseMove(pt, g.pointer))
		}
		for _, ev := range g.section.Page.PointerMove(pt) {
			ib.Send(ev)
		}
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		g.pressed = false
		ib.Send(events.NewMouse(events.MouseUp, events.Left, pt))
		d := pt.Sub(g.pressedAt)
		if d.X*d.X+d.Y*d.Y <= clickSlop*clickSlop {
			ib.Send(events.NewMouse(events.Click, events.Left, pt))
		}
	}
	if _, wy := ebiten.Wheel(); wy != 0 {
		ib.Send(events.NewScroll(pt, math32.Vec2(0, float32(-wy*wheelScale))))
	}
	g.pointer = pt

	if err := g.section.Scheduler.Tick(time.Now()); err != nil {
		slog.Warn("heroview: frame skipped", "err", err)
	}
	ebiten.SetCursorShape(cursorShape(g.section.Context.Cursor))
	return nil
}

// cursorShape returns the ebiten cursor shape for the given cursor hint.
func cursorShape(c events.Cursors) ebiten.CursorShapeType {
	switch c {
	case events.CursorPointer:
		return ebiten.CursorShapePointer
	case events.CursorGrabbing:
		return ebiten.CursorShapeMove
	}
	return ebiten.CursorShapeDefault
}

func (g *game) Draw(screen *ebiten.Image) {
	img := g.surf.Image()
	sz := img.Bounds().Size()
	if g.frame == nil || g.frame.Bounds().Size() != sz {
		if g.frame != nil {
			g.frame.Deallocate()
		}
		g.frame = ebiten.NewImage(sz.X, sz.Y)
	}
	g.frame.WritePixels(img.Pix)
	screen.DrawImage(g.frame, nil)
	g.drawPage(screen)
	g.drawOverlay(screen)
}

// drawPage draws the list entries and card frames that are in view.
func (g *game) drawPage(screen *ebiten.Image) {
	sc := g.section
	accent := sc.Context.Accent
	for _, bx := range sc.Page.Boxes {
		if bx.Name == "hero" || !bx.InView() {
			continue
		}
		r, _ := bx.Bounds()
		x, y := float32(r.Min.X), float32(r.Min.Y)
		w, h := float32(r.Dx()), float32(r.Dy())
		if bx.ID < 0 {
			vector.StrokeRect(screen, x, y, w, h, 1, cardColor, true)
			continue
		}
		clr := entryColor
		if bx.Active {
			clr = accent
			vector.DrawFilledRect(screen, x, y, 3, h, accent, false)
		}
		vector.StrokeRect(screen, x, y, w, h, 1, clr, true)
		tp := r.Min.Add(textOffset)
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("entry %d", bx.ID), tp.X+4, tp.Y)
	}
	if rf := sc.Scheduler.Routes; rf != nil {
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("pickup: %s  delivery: %s", rf.Pickup, rf.Delivery), 12, 12)
	}
}

// drawOverlay draws the connector curve and its end marker.
func (g *game) drawOverlay(screen *ebiten.Image) {
	ov := &g.section.Overlay.Overlay
	pts := ov.Points(32)
	if pts == nil {
		return
	}
	accent := g.section.Context.Accent
	for i := 1; i < len(pts); i++ {
		vector.StrokeLine(screen, pts[i-1].X, pts[i-1].Y, pts[i].X, pts[i].Y, 1.5, accent, true)
	}
	vector.DrawFilledCircle(screen, ov.Marker.X, ov.Marker.Y, 4, accent, true)
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	size := image.Pt(outsideWidth, outsideHeight)
	if size != g.size && size.X > 0 && size.Y > 0 {
		g.size = size
		g.section.Resize(size)
	}
	return g.size.X, g.size.Y
}
