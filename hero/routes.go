// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hero

// RouteForm is a two-field pickup / delivery form filled by clicking
// labelled proxies: the first click fills Pickup, the second Delivery,
// and a third starts over with a new Pickup.
type RouteForm struct {
	Pickup   string
	Delivery string

	// OnChange is called after every change, if set
	OnChange func(rf *RouteForm)
}

// Select fills the next field of the form with the given name.
// Empty names are ignored.
func (rf *RouteForm) Select(name string) {
	if name == "" {
		return
	}
	switch {
	case rf.Pickup == "":
		rf.Pickup = name
	case rf.Delivery == "":
		rf.Delivery = name
	default:
		rf.Pickup = name
		rf.Delivery = ""
	}
	if rf.OnChange != nil {
		rf.OnChange(rf)
	}
}

// Complete returns true if both fields are filled.
func (rf *RouteForm) Complete() bool {
	return rf.Pickup != "" && rf.Delivery != ""
}

// Reset clears the form.
func (rf *RouteForm) Reset() {
	rf.Pickup, rf.Delivery = "", ""
	if rf.OnChange != nil {
		rf.OnChange(rf)
	}
}
