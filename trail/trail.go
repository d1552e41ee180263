// Package trail computes comet-trail particle positions along a sampled
// curve, at a traversal speed synchronized to a beats-per-minute signal.
/*

The package is a pure per-frame function: given a curve, a BPM value, a
timestamp and a particle count, it derives every particle's normalized
progress (with per-particle phase offset and wraparound) and its visual
weight, and resolves progress to a point through the curve package.

No state survives between frames. The host render loop feeds wall-clock
time once per frame; recomputing a frame, skipping frames or computing
frames out of order all yield self-consistent output, and a BPM or path
change needs no reset. Timestamps shifted by whole cycle durations
produce identical frames, which is what makes the animation loop
indefinitely without drift.

BSD License

Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package trail

import (
	"math"

	"github.com/npillmayer/pulsepath"
	"github.com/npillmayer/pulsepath/curve"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'trail'
func tracer() tracing.Trace {
	return tracing.Select("trail")
}

// Params configures trail animation. The zero value is not usable
// directly; start from DefaultParams or run CheckInit.
type Params struct {
	// BeatsPerCycle is the number of heartbeats per full path traversal.
	BeatsPerCycle float64 `gcfg:"beats-per-cycle"`
	// BPMFloor is the lowest BPM value honored; lower or invalid input
	// is clamped to it.
	BPMFloor float64 `gcfg:"bpm-floor"`
	// Spacing is the fraction of path length between adjacent particles.
	Spacing float64 `gcfg:"spacing"`
	// BaseSize is the lead particle's size, in host units.
	BaseSize float64 `gcfg:"base-size"`
	// SizeDecay is the per-particle linear size shrink along the tail.
	SizeDecay float64 `gcfg:"size-decay"`
}

// DefaultParams returns the stock parameter set: one traversal per 4
// beats, BPM floor 40, particles 1.5% of the path apart.
func DefaultParams() Params {
	return Params{
		BeatsPerCycle: 4,
		BPMFloor:      40,
		Spacing:       0.015,
		BaseSize:      6.0,
		SizeDecay:     0.4,
	}
}

// Particle is one trail marker for a single frame. Particles are
// ephemeral: recomputed from scratch every frame, never stored.
type Particle struct {
	Index    int
	Progress float64
	Pos      pulsepath.Pair
	Opacity  float64
	Size     float64
	IsLead   bool
}

// clampBPM maps invalid BPM input (NaN, infinite, zero, negative) and
// values below the floor onto the floor.
func (params Params) clampBPM(bpm float64) float64 {
	if math.IsNaN(bpm) || math.IsInf(bpm, 0) || bpm < params.BPMFloor {
		return params.BPMFloor
	}
	return bpm
}

// CycleSeconds returns the duration of one full path traversal for a
// given BPM value. Doubling BPM halves the cycle.
func (params Params) CycleSeconds(bpm float64) float64 {
	return 60 / params.clampBPM(bpm) * params.BeatsPerCycle
}

// BaseProgress returns the lead particle's normalized position at time
// now (seconds since an arbitrary epoch), in [0,1).
func (params Params) BaseProgress(bpm, now float64) float64 {
	return pulsepath.Fract(now / params.CycleSeconds(bpm))
}

// Particles computes one frame of the trail: n particles, lead first,
// each 'Spacing' of the path behind its predecessor, with opacity and
// size falling off along the tail. n <= 0 yields nil, not an error.
//
// The result is a pure function of (sc, bpm, now, n).
func (params Params) Particles(sc *curve.SampledCurve, bpm, now float64, n int) []Particle {
	if n <= 0 {
		return nil
	}
	base := params.BaseProgress(bpm, now)
	particles := make([]Particle, n)
	for i := 0; i < n; i++ {
		progress := pulsepath.Fract(base - float64(i)*params.Spacing)
		size := params.BaseSize - float64(i)*params.SizeDecay
		if size < 0 {
			size = 0
		}
		particles[i] = Particle{
			Index:    i,
			Progress: progress,
			Pos:      sc.PointAt(progress),
			Opacity:  1 - float64(i)/(float64(n)*1.2),
			Size:     size,
			IsLead:   i == 0,
		}
	}
	return particles
}
