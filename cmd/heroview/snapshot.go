// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"image"
	"log/slog"
	"time"

	"cogentcore.org/hero/events"
	"cogentcore.org/hero/gpu"
	"cogentcore.org/hero/math32"
	"cogentcore.org/hero/section"
	"github.com/anthonynsimon/bild/clone"
	"github.com/anthonynsimon/bild/imgio"
	"github.com/anthonynsimon/bild/transform"
	"github.com/spf13/cobra"
)

type snapshotOptions struct {
	output string
	frames int
	scale  float64
	scroll float32
	hover  int
}

func newSnapshotCmd(opts *options) *cobra.Command {
	so := &snapshotOptions{}
	cmd := &cobra.Command{
		Use:   "snapshot",
		Short: "render frames without a window and save the last one as a PNG",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSnapshot(opts, so)
		},
	}
	f := cmd.Flags()
	f.StringVarP(&so.output, "output", "o", "hero.png", "output file")
	f.IntVarP(&so.frames, "frames", "n", 60, "number of frames to run at 60 frames per second")
	f.Float64Var(&so.scale, "scale", 1, "scale of the saved image")
	f.Float32Var(&so.scroll, "scroll", 0, "page scroll before the first frame, in pixels")
	f.IntVar(&so.hover, "hover", -1, "list entry to hover before the first frame")
	return cmd
}

func runSnapshot(opts *options, so *snapshotOptions) error {
	cf, err := opts.loadConfig()
	if err != nil {
		return err
	}
	if so.frames < 1 {
		return fmt.Errorf("snapshot: need at least one frame, not %d", so.frames)
	}
	surf := gpu.NewRaster(image.Pt(cf.Width, cf.Height))
	sc, err := section.New(cf, surf)
	if err != nil {
		return err
	}
	ib := sc.Context.Inbox
	if so.scroll != 0 {
		ib.Send(events.NewScroll(image.Point{}, math32.Vec2(0, so.scroll)))
	}
	if so.hover >= 0 {
		ib.Send(events.NewEnter(so.hover, image.Point{}))
	}
	now := time.Now()
	for i := range so.frames {
		if err := sc.Scheduler.Tick(now.Add(time.Duration(i) * time.Second / 60)); err != nil {
			return err
		}
	}
	sc.DrawPage(surf)

	img := clone.AsRGBA(surf.Image())
	if so.scale > 0 && so.scale != 1 {
		sz := img.Bounds().Size()
		img = transform.Resize(img, int(float64(sz.X)*so.scale), int(float64(sz.Y)*so.scale), transform.Linear)
	}
	if err := imgio.Save(so.output, img, imgio.PNGEncoder()); err != nil {
		return fmt.Errorf("snapshot: saving %q: %w", so.output, err)
	}
	slog.Info("snapshot: saved", "file", so.output, "frames", so.frames)
	return nil
}
