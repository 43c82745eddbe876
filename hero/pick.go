// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hero

import (
	"cogentcore.org/hero/math32"
	"cogentcore.org/hero/xyz"
)

// Resolve returns the proxy nearest to the camera whose world bounding
// sphere is hit by the ray from the camera through the given point in
// normalized device coordinates. It returns nil if nothing is hit,
// there are no proxies, or the camera is degenerate.
//
// A nil result must not clear the selection: selection is sticky.
func Resolve(ndc math32.Vector2, cam *xyz.Camera, proxies []*Proxy) *Proxy {
	if len(proxies) == 0 || cam == nil {
		return nil
	}
	ray, ok := cam.RayFromNDC(ndc)
	if !ok {
		return nil
	}
	byS := make(map[*xyz.Solid]*Proxy, len(proxies))
	sds := make([]*xyz.Solid, 0, len(proxies))
	for _, px := range proxies {
		if px == nil || px.Solid == nil {
			continue
		}
		byS[px.Solid] = px
		sds = append(sds, px.Solid)
	}
	hits := xyz.RaySolids(ray, sds...)
	if len(hits) == 0 {
		return nil
	}
	return byS[hits[0].Solid]
}
