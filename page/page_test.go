// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package page

import (
	"image"
	"testing"

	"cogentcore.org/hero/events"
	"cogentcore.org/hero/hero"
	"cogentcore.org/hero/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestPage() (*Page, []*Box) {
	pg := New(image.Pt(800, 600))
	pg.Add("hero", image.Rect(0, 0, 800, 600))
	items := pg.AddList("item", image.Pt(560, 100), image.Pt(200, 30), 6, 20)
	pg.Add("card", image.Rect(40, 900, 240, 1100))
	return pg, items
}

func TestPageLayout(t *testing.T) {
	pg, items := newTestPage()
	require.Len(t, items, 20)
	assert.Equal(t, image.Rect(560, 136, 760, 166), items[1].Rect)
	assert.Equal(t, 19, items[19].ID)
	assert.Equal(t, -1, pg.BoxByName("card").ID)
	assert.Equal(t, image.Pt(800, 1100), pg.ContentSize())
	assert.Equal(t, math32.Vec2(0, 500), pg.MaxScroll())
}

func TestPageScroll(t *testing.T) {
	pg, items := newTestPage()
	card := pg.BoxByName("card")
	assert.False(t, card.InView())

	pg.ScrollBy(math32.Vec2(30, 400))
	assert.Equal(t, math32.Vec2(0, 400), pg.Scroll)
	r, ok := card.Bounds()
	require.True(t, ok)
	assert.Equal(t, image.Rect(40, 500, 240, 700), r)
	assert.True(t, card.InView())

	pg.ScrollBy(math32.Vec2(0, 1000))
	assert.Equal(t, float32(500), pg.Scroll.Y)
	pg.ScrollBy(math32.Vec2(0, -2000))
	assert.Equal(t, float32(0), pg.Scroll.Y)

	assert.True(t, pg.ScrollToBox(items[19]))
	r, _ = items[19].Bounds()
	assert.LessOrEqual(t, r.Max.Y, 600)
	assert.False(t, pg.ScrollToBox(items[19]))

	card.Hidden = true
	_, ok = card.Bounds()
	assert.False(t, ok)

	// the scroll position stays within the content after a resize
	pg.ScrollTo(math32.Vec2(0, 500))
	pg.Resize(image.Pt(800, 1000))
	assert.Equal(t, float32(100), pg.Scroll.Y)
}

func TestPagePointer(t *testing.T) {
	pg, items := newTestPage()
	assert.Equal(t, "hero", pg.BoxAt(image.Pt(10, 10)).Name)
	assert.Nil(t, pg.ListAt(image.Pt(10, 10)))
	assert.Nil(t, pg.PointerMove(image.Pt(10, 10)))

	evs := pg.PointerMove(image.Pt(600, 110))
	require.Len(t, evs, 1)
	assert.Equal(t, events.MouseEnter, evs[0].Type())
	assert.Equal(t, 0, evs[0].Target)
	assert.Same(t, items[0], pg.Hovered())
	assert.Nil(t, pg.PointerMove(image.Pt(610, 115)))

	evs = pg.PointerMove(image.Pt(600, 150))
	require.Len(t, evs, 2)
	assert.Equal(t, events.MouseLeave, evs[0].Type())
	assert.Equal(t, 0, evs[0].Target)
	assert.Equal(t, 1, evs[1].Target)

	// scrolling moves the list under the pointer
	pg.ScrollBy(math32.Vec2(0, 36))
	evs = pg.PointerMove(image.Pt(600, 150))
	require.Len(t, evs, 2)
	assert.Equal(t, 2, evs[1].Target)

	evs = pg.PointerMove(image.Pt(10, 10))
	require.Len(t, evs, 1)
	assert.Nil(t, pg.Hovered())
}

func TestPageEntries(t *testing.T) {
	_, items := newTestPage()
	es := hero.NewEntries(items...)
	es.ByID(3).SetActive(true)
	assert.True(t, items[3].Active)
	var _ hero.Activator = items[0]
	var _ hero.Scroller = New(image.Pt(1, 1))
}
