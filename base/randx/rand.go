// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package randx provides the seeded random source used to generate
// scene layouts, plus a few distributions drawn from it.
package randx

import "math/rand"

// Rand is the subset of [rand.Rand] used for layout generation.
// Generation code takes a Rand instead of using the global stream,
// so that a given seed always produces the same scene.
type Rand interface {
	// Seed resets the generator to the deterministic state of seed.
	Seed(seed int64)

	// Intn returns a non-negative number in [0,n). It panics if n <= 0.
	Intn(n int) int

	// Float32 returns a number in [0.0,1.0).
	Float32() float32
}

// SysRand is a [Rand] backed by its own [rand.Rand] source.
// The zero value is seeded with 0 on first use.
type SysRand struct {
	src *rand.Rand
}

// NewSysRand returns a new SysRand seeded with seed.
func NewSysRand(seed int64) *SysRand {
	r := &SysRand{}
	r.Seed(seed)
	return r
}

func (r *SysRand) Seed(seed int64) {
	r.src = rand.New(rand.NewSource(seed))
}

func (r *SysRand) source() *rand.Rand {
	if r.src == nil {
		r.Seed(0)
	}
	return r.src
}

func (r *SysRand) Intn(n int) int {
	return r.source().Intn(n)
}

func (r *SysRand) Float32() float32 {
	return r.source().Float32()
}
