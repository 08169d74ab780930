// SPDX-License-Identifier: EPL-2.0

package score

import (
	"math"

	"github.com/ik5/scorebx/note"
	"github.com/ik5/scorebx/source"
)

const (
	DefaultVolume  float32 = 1.0
	DefaultChannel uint16  = 0
)

// Score is a whole piece: output layout plus the parts that play in it.
type Score struct {
	NumChannel uint16 `json:"num_channel" yaml:"num_channel"`
	SampleRate uint32 `json:"sample_rate" yaml:"sample_rate"`
	Tracks     []Part `json:"tracks" yaml:"tracks"`

	// directory of the file the score was loaded from
	dir string
}

// Part is one instrument: a sound source and the notes it plays.
type Part struct {
	Source source.Descriptor `json:"source" yaml:"source"`
	BPM    float32           `json:"bpm" yaml:"bpm"`
	Notes  []Note            `json:"score_notes" yaml:"score_notes"`

	// SampleRate of the part's track, the source's own rate when nil.
	SampleRate *uint32        `json:"sample_rate,omitempty" yaml:"sample_rate,omitempty"`
	Volume     *float32       `json:"volume,omitempty" yaml:"volume,omitempty"`
	Channel    *uint16        `json:"channel,omitempty" yaml:"channel,omitempty"`
	Envelope   *note.Envelope `json:"envelope,omitempty" yaml:"envelope,omitempty"`
}

// Note is a pitched note, or a rest when Semitone is nil. Start and Length
// are in beats. Start is kept for round trips but does not move the note:
// notes in a part always play back to back.
type Note struct {
	Semitone *float32 `json:"semitone,omitempty" yaml:"semitone,omitempty"`
	Start    *float32 `json:"start,omitempty" yaml:"start,omitempty"`
	Length   float32  `json:"length" yaml:"length"`
}

// PartFromSource starts a part for src, carrying its descriptor so that a
// score written from it rebuilds the same source.
func PartFromSource(src source.SoundSource, bpm float32) Part {
	return Part{Source: src.Descriptor(), BPM: bpm}
}

// ChannelIndex is the output channel, DefaultChannel when unset.
func (p Part) ChannelIndex() uint16 {
	if p.Channel == nil {
		return DefaultChannel
	}
	return *p.Channel
}

// Seconds converts beats to seconds at the part's tempo.
func (p Part) Seconds(beats float32) float32 {
	return 60 / p.BPM * beats
}

// Beats is the total length of the part's notes.
func (p Part) Beats() float32 {
	var sum float32
	for _, n := range p.Notes {
		sum += n.Length
	}
	return sum
}

// Dir is the directory relative sampler paths are resolved against.
func (s *Score) Dir() string { return s.dir }

func finitePositive(v float32) bool {
	return v > 0 && !math.IsInf(float64(v), 0)
}
