// SPDX-License-Identifier: EPL-2.0

package source

import (
	"encoding/binary"
	"math"
	"math/rand/v2"

	"github.com/ik5/scorebx/note"
)

// Pluck is a Karplus-Strong plucked string at FrequencyC4.
//
// The noise burst comes from ChaCha8 keyed with the seed in the first eight
// bytes (little endian) of an otherwise zero key. Without a seed the key is
// all zeros, so unseeded plucks are deterministic too.
type Pluck struct {
	base
	seed *uint64
}

// NewPluck synthesizes the string once. seed may be nil.
func NewPluck(seed *uint64) *Pluck {
	var key [32]byte
	var kept *uint64
	if seed != nil {
		binary.LittleEndian.PutUint64(key[:8], *seed)
		v := *seed
		kept = &v
	}

	wave := pluck(FrequencyC4, DefaultDuration, DefaultSampleRate, rand.NewChaCha8(key))

	return &Pluck{base: base{wave: wave}, seed: kept}
}

// Seed returns the seed the string was built with, or nil.
func (p *Pluck) Seed() *uint64 {
	if p.seed == nil {
		return nil
	}
	v := *p.seed
	return &v
}

func (p *Pluck) Descriptor() Descriptor {
	return Descriptor{Kind: KindPluck, Seed: p.Seed()}
}

// pluck fills a delay line of rate/frequency cells with noise in [-1, 1],
// then emits each cell and replaces it with the mean of itself and its
// neighbour.
func pluck(frequency, duration float32, rate uint32, rng *rand.ChaCha8) note.Note {
	count := sampleCount(duration, rate)
	size := max(int(float32(rate)/frequency), 1)

	ring := make([]float32, size)
	for i := range ring {
		ring[i] = float32(rng.Uint64())/float32(math.MaxUint64)*2 - 1
	}

	out := make([]float32, count)
	for i := range out {
		cur := i % size
		out[i] = ring[cur]
		ring[cur] = 0.5 * (ring[cur] + ring[(i+1)%size])
	}

	return note.New(out, rate)
}
