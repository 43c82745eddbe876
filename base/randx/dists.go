// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package randx

// UniformRange returns a uniform random value in [lo, hi).
func UniformRange(lo, hi float32, rnd Rand) float32 {
	return lo + rnd.Float32()*(hi-lo)
}

// UniformMeanRange returns a uniform random value with given mean,
// spread over a total width of rnge, i.e., in [mean-rnge/2, mean+rnge/2).
func UniformMeanRange(mean, rnge float32, rnd Rand) float32 {
	return UniformRange(mean-0.5*rnge, mean+0.5*rnge, rnd)
}
