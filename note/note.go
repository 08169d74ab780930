// SPDX-License-Identifier: EPL-2.0

// Package note holds the smallest unit of rendered audio: a mono sample
// buffer tagged with its sample rate, and the envelope that shapes it.
package note

// Note is a rendered mono sample buffer.
//
// A Note is treated as immutable: functions that derive a new Note allocate
// new sample storage instead of writing into the input. An empty Samples
// slice is valid and represents silence of zero duration.
type Note struct {
	Samples    []float32
	SampleRate uint32
	// Envelope, when set, describes the shaping this note was rendered with.
	Envelope *Envelope
}

// New returns a Note over samples at sampleRate with no envelope.
func New(samples []float32, sampleRate uint32) Note {
	return Note{Samples: samples, SampleRate: sampleRate}
}

// Silence returns a zero-valued note of n samples.
func Silence(n int, sampleRate uint32) Note {
	return New(make([]float32, max(n, 0)), sampleRate)
}

// Len is the number of samples.
func (n Note) Len() int { return len(n.Samples) }

// Seconds is the playing time of the note.
func (n Note) Seconds() float64 {
	if n.SampleRate == 0 {
		return 0
	}
	return float64(len(n.Samples)) / float64(n.SampleRate)
}

// Clone returns a deep copy of the sample data.
func (n Note) Clone() Note {
	samples := make([]float32, len(n.Samples))
	copy(samples, n.Samples)
	return Note{Samples: samples, SampleRate: n.SampleRate, Envelope: n.Envelope}
}

// WithEnvelope returns n tagged with env.
func (n Note) WithEnvelope(env *Envelope) Note {
	n.Envelope = env
	return n
}
