// SPDX-License-Identifier: EPL-2.0

package note

// Envelope is an attack/decay/sustain/release gain shape.
//
// Attack, Decay and Release are in seconds. Sustain is a gain, normally in
// [0, 1] but not clamped.
type Envelope struct {
	Attack  float32 `json:"attack" yaml:"attack"`
	Decay   float32 `json:"decay" yaml:"decay"`
	Sustain float32 `json:"sustain" yaml:"sustain"`
	Release float32 `json:"release" yaml:"release"`
}

// Gain returns the envelope level t seconds into the note.
func (e Envelope) Gain(t float32) float32 {
	switch {
	case t < e.Attack:
		// only reachable with Attack > 0
		return t / e.Attack
	case t < e.Attack+e.Decay:
		return 1 + (e.Sustain-1)*(t-e.Attack)/e.Decay
	default:
		return e.Sustain
	}
}

// Apply shapes n with the envelope and returns the result as a new Note.
//
// Every sample is scaled by Gain at its elapsed time. A release tail of
// Release*SampleRate samples is then appended; it loops the unshaped input
// at sustain level instead of fading out. An empty input gets no tail.
// The result keeps n's sample rate and envelope tag.
func (e Envelope) Apply(n Note) Note {
	if n.SampleRate == 0 {
		return n.Clone()
	}

	rate := float32(n.SampleRate)
	orig := n.Samples

	tail := 0
	if len(orig) > 0 && e.Release > 0 {
		tail = int(e.Release * rate)
	}

	out := make([]float32, len(orig), len(orig)+tail)
	for i, s := range orig {
		out[i] = s * e.Gain(float32(i)/rate)
	}

	for i := range tail {
		out = append(out, orig[i%len(orig)]*e.Sustain)
	}

	return Note{Samples: out, SampleRate: n.SampleRate, Envelope: n.Envelope}
}
