// SPDX-License-Identifier: EPL-2.0

package source

import (
	"fmt"
	"path/filepath"

	"github.com/ik5/scorebx/note"
	"github.com/ik5/scorebx/utils"
)

// Reference waveform parameters shared by the synthesized variants.
const (
	DefaultSampleRate uint32  = 48_000
	DefaultDuration   float32 = 2.0
	FrequencyC4       float32 = 261.6256
)

const (
	fadeRate       float32 = 0.005
	fadeSecondsMin float32 = 0.002
)

// SoundSource produces a base waveform and derives shaped notes from it.
//
// The set of implementations is closed: Sine, Triangle, Sampler and Pluck.
type SoundSource interface {
	// Base is the canonical unshaped waveform at the source's own rate.
	Base() note.Note
	// SampleRate is the rate of Base.
	SampleRate() uint32
	// Rest is a single silent sample at SampleRate.
	Rest() note.Note
	// Note renders seconds of audio. With a semitone the base waveform is
	// pitch shifted by that amount, without one the note is a rest.
	Note(seconds float32, semitone *float32) note.Note
	// Descriptor returns the parameters that rebuild this source.
	Descriptor() Descriptor

	sealed()
}

// base implements the behaviour every variant shares on top of its
// precomputed waveform.
type base struct {
	wave note.Note
}

func (b *base) Base() note.Note    { return b.wave.Clone() }
func (b *base) SampleRate() uint32 { return b.wave.SampleRate }
func (b *base) Rest() note.Note    { return note.Silence(1, b.wave.SampleRate) }
func (b *base) sealed()            {}

func (b *base) Note(seconds float32, semitone *float32) note.Note {
	var n note.Note
	if semitone != nil {
		n = note.New(utils.PitchShift(b.wave.Samples, *semitone), b.wave.SampleRate)
	} else {
		n = b.Rest()
	}

	n = fitLength(n, seconds)
	return fadeInOut(n, max(seconds*fadeRate, fadeSecondsMin))
}

// sampleCount converts seconds to a sample count, truncating toward zero.
// Negative and NaN durations give zero.
func sampleCount(seconds float32, rate uint32) int {
	v := seconds * float32(rate)
	if !(v > 0) {
		return 0
	}
	return int(v)
}

// fitLength tiles or truncates n to exactly seconds of audio.
func fitLength(n note.Note, seconds float32) note.Note {
	target := sampleCount(seconds, n.SampleRate)
	src := n.Samples

	if len(src) == 0 {
		return note.Silence(target, n.SampleRate)
	}

	out := make([]float32, target)
	for i := 0; i < target; i += len(src) {
		copy(out[i:], src)
	}

	return note.New(out, n.SampleRate)
}

// fadeInOut ramps the first and last fade seconds linearly. The ramps run
// from 0 toward 1, so the first and last samples are silenced.
func fadeInOut(n note.Note, fade float32) note.Note {
	steps := sampleCount(fade, n.SampleRate)
	data := make([]float32, len(n.Samples))
	copy(data, n.Samples)

	count := min(steps, len(data))
	div := float32(max(steps, 1))
	for i := range count {
		g := float32(i) / div
		data[i] *= g
		data[len(data)-1-i] *= g
	}

	return note.New(data, n.SampleRate)
}

// New builds the source a descriptor describes. Relative sampler paths are
// resolved against the working directory.
func New(d Descriptor) (SoundSource, error) {
	return NewIn("", d)
}

// NewIn is New with relative sampler paths resolved against dir. The
// returned source still reports the descriptor's path unchanged.
func NewIn(dir string, d Descriptor) (SoundSource, error) {
	switch d.Kind {
	case KindSine:
		return NewSine(), nil
	case KindTriangle:
		return NewTriangle(), nil
	case KindPluck:
		return NewPluck(d.Seed), nil
	case KindSampler:
		if d.Path == "" {
			return nil, ErrEmptyPath
		}
		file := d.Path
		if dir != "" && !filepath.IsAbs(file) {
			file = filepath.Join(dir, file)
		}
		return loadSampler(d.Path, file)
	}

	return nil, fmt.Errorf("%w: %q", ErrUnknownKind, d.Kind)
}
