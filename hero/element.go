// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hero

import (
	"image"
)

// Element is a page element whose layout is queried every frame.
type Element interface {
	// Bounds returns the current bounding rectangle of the element in
	// window (page) pixels, with a top-left origin. It returns false if
	// the element is missing or not yet laid out.
	Bounds() (image.Rectangle, bool)
}

// Activator is implemented by elements that show an active marker.
type Activator interface {
	SetActive(on bool)
}

// ListEntry is one entry of the page list that proxies stand in for.
type ListEntry struct {

	// ID is the stable logical id of the entry
	ID int

	// Element is the page element of the entry; may be nil
	Element Element

	// Active is set on exactly one entry once a selection exists
	Active bool
}

// SetActive sets the active flag, and forwards it to the element
// if it is an [Activator].
func (le *ListEntry) SetActive(on bool) {
	le.Active = on
	if ac, ok := le.Element.(Activator); ok {
		ac.SetActive(on)
	}
}

// Bounds returns the bounds of the entry element,
// or false if there is no element.
func (le *ListEntry) Bounds() (image.Rectangle, bool) {
	if le == nil || le.Element == nil {
		return image.Rectangle{}, false
	}
	return le.Element.Bounds()
}

// Entries is the list of entries, which may be regenerated by the page.
type Entries []*ListEntry

// ByID returns the entry with the given id, or nil.
func (es Entries) ByID(id int) *ListEntry {
	if id >= 0 && id < len(es) && es[id] != nil && es[id].ID == id {
		return es[id]
	}
	for _, le := range es {
		if le != nil && le.ID == id {
			return le
		}
	}
	return nil
}

// NewEntries returns entries with sequential ids for the given elements.
func NewEntries[E Element](elems ...E) Entries {
	es := make(Entries, len(elems))
	for i, el := range elems {
		es[i] = &ListEntry{ID: i, Element: el}
	}
	return es
}

// rectElement is a fixed-bounds [Element].
type rectElement image.Rectangle

func (r rectElement) Bounds() (image.Rectangle, bool) {
	return image.Rectangle(r), true
}

// FixedElement returns an [Element] that always has the given bounds.
func FixedElement(r image.Rectangle) Element {
	return rectElement(r)
}
