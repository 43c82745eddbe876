// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hero

import (
	"log/slog"
)

// SelectionStates are the states of a [Selection].
type SelectionStates int32

const (
	// Idle is the state before any id has been activated.
	Idle SelectionStates = iota

	// Active is the state once an id has been activated.
	// There is no way back to Idle.
	Active
)

func (ss SelectionStates) String() string {
	if ss == Active {
		return "Active"
	}
	return "Idle"
}

// Selection tracks the single active logical id, and mediates the
// highlight of both its proxy and its list entry. Pick hits and page
// hover both go through [Selection.SetActive].
type Selection struct {
	ctx *Context
	reg *Registry

	// Entries are the current list entries
	Entries Entries

	active      int
	previous    int
	hasActive   bool
	hasPrevious bool
}

// NewSelection returns a new idle selection over the proxies of reg
// and the given entries.
func NewSelection(ctx *Context, reg *Registry, entries Entries) *Selection {
	return &Selection{ctx: ctx, reg: reg, Entries: entries}
}

// State returns the state of the selection.
func (sel *Selection) State() SelectionStates {
	if sel.hasActive {
		return Active
	}
	return Idle
}

// Active returns the active id, and false if none.
func (sel *Selection) Active() (int, bool) {
	return sel.active, sel.hasActive
}

// Previous returns the previously active id, and false if none.
func (sel *Selection) Previous() (int, bool) {
	return sel.previous, sel.hasPrevious
}

// ActiveProxy returns the proxy of the active id, or nil.
func (sel *Selection) ActiveProxy() *Proxy {
	if !sel.hasActive {
		return nil
	}
	return sel.reg.ProxyFor(sel.active)
}

// ActiveEntry returns the list entry of the active id, or nil.
func (sel *Selection) ActiveEntry() *ListEntry {
	if !sel.hasActive {
		return nil
	}
	return sel.Entries.ByID(sel.active)
}

// Seed activates the given default id at startup.
func (sel *Selection) Seed(id int) {
	sel.SetActive(id)
}

// SetActive makes the given id the active one. It does nothing if id is
// already active. Otherwise the previous proxy and entry are reverted to
// their base look first, and then the new proxy (entry id mod P) and the
// new entry are highlighted, so there is never more than one highlight.
func (sel *Selection) SetActive(id int) {
	if sel.hasActive && id == sel.active {
		return
	}
	if sel.hasActive {
		sel.unhighlight(sel.active)
	}
	sel.highlight(id)
	sel.previous, sel.hasPrevious = sel.active, sel.hasActive
	sel.active, sel.hasActive = id, true
	slog.Debug("hero: active", "id", id)
}

func (sel *Selection) unhighlight(id int) {
	if px := sel.reg.ProxyFor(id); px != nil {
		px.Highlight = false
		px.Solid.Material.Color = px.BaseColor
		px.Solid.Pose.SetUniformScale(px.BaseScale)
	}
	if le := sel.Entries.ByID(id); le != nil {
		le.SetActive(false)
	}
}

func (sel *Selection) highlight(id int) {
	if px := sel.reg.ProxyFor(id); px != nil {
		px.Highlight = true
		px.Solid.Material.Color = sel.ctx.Accent
		px.Solid.Pose.SetUniformScale(px.BaseScale * sel.ctx.HighlightScale)
	}
	if le := sel.Entries.ByID(id); le != nil {
		le.SetActive(true)
	}
}

// SetEntries replaces the list entries, as when the page regenerates
// its list, and marks the entry of the active id.
func (sel *Selection) SetEntries(entries Entries) {
	for _, le := range sel.Entries {
		if le != nil && le.Active {
			le.SetActive(false)
		}
	}
	sel.Entries = entries
	if sel.hasActive {
		if le := sel.Entries.ByID(sel.active); le != nil {
			le.SetActive(true)
		}
	}
}
