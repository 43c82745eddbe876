// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hero

import (
	"cogentcore.org/hero/base/randx"
	"cogentcore.org/hero/math32"
	"cogentcore.org/hero/xyz"
)

// Placement is the initial placement of one proxy.
type Placement struct {
	Orbit Orbit

	// Shape of the proxy; a small box if nil
	Shape xyz.Shape

	// Label of the proxy, e.g., a location name
	Label string
}

// PlacementFunc returns the placement of proxy i of n,
// drawing any randomness from rnd.
type PlacementFunc func(i, n int, rnd randx.Rand) Placement

// blockShapes are the shapes proxies are randomly drawn from.
var blockShapes = []func() xyz.Shape{
	func() xyz.Shape { return xyz.NewBox(0.2, 0.2, 0.2) },
	func() xyz.Shape { return &xyz.Tetrahedron{Radius: 0.15} },
	func() xyz.Shape { return &xyz.Octahedron{Radius: 0.15} },
}

// Ring places proxies evenly around a horizontal ring, with random
// radius in [2.2, 3.0), vertical spread of 2.5, angular speed in
// [0.002, 0.005) radians per frame and a random bob phase.
func Ring() PlacementFunc {
	return func(i, n int, rnd randx.Rand) Placement {
		shape := blockShapes[rnd.Intn(len(blockShapes))]()
		return Placement{
			Shape: shape,
			Orbit: Orbit{
				Angle:     float32(i) / float32(n) * 2 * math32.Pi,
				Polar:     0.5 * math32.Pi,
				Radius:    randx.UniformRange(2.2, 3.0, rnd),
				YOffset:   randx.UniformMeanRange(0, 2.5, rnd),
				Speed:     randx.UniformRange(0.002, 0.005, rnd),
				BobPhase:  rnd.Float32() * math32.Pi,
				BobAmp:    0.2,
				SpinSpeed: 0.01,
			},
		}
	}
}

// Sphere places proxies uniformly on a sphere of the given radius,
// with the polar angle drawn as acos(2u - 1) so the density is even.
func Sphere(radius float32) PlacementFunc {
	return func(i, n int, rnd randx.Rand) Placement {
		return Placement{
			Shape: &xyz.Sphere{Radius: 0.08},
			Orbit: Orbit{
				Angle:     rnd.Float32() * 2 * math32.Pi,
				Polar:     math32.Acos(2*rnd.Float32() - 1),
				Radius:    radius,
				Speed:     randx.UniformRange(0.0005, 0.002, rnd),
				SpinSpeed: 0.01,
			},
		}
	}
}

// Location is a labelled point on a globe, in degrees.
type Location struct {
	Name string
	Lat  float32
	Lon  float32
}

// Globe places proxies at the given locations on a globe of the given
// radius. Proxies beyond the number of locations wrap around.
// Globe proxies do not orbit; rotate their group instead.
// Longitude 0 is on +X and east is toward -Z.
func Globe(radius float32, locs ...Location) PlacementFunc {
	return func(i, n int, rnd randx.Rand) Placement {
		if len(locs) == 0 {
			return Placement{Shape: &xyz.Sphere{Radius: 0.15}, Orbit: Orbit{Radius: radius}}
		}
		loc := locs[i%len(locs)]
		return Placement{
			Shape: &xyz.Sphere{Radius: 0.15},
			Label: loc.Name,
			Orbit: Orbit{
				Polar:  math32.DegToRad(90 - loc.Lat),
				Angle:  math32.DegToRad(-loc.Lon),
				Radius: radius,
			},
		}
	}
}
