// SPDX-License-Identifier: EPL-2.0

package track

import (
	"github.com/ik5/scorebx/note"
	"github.com/ik5/scorebx/utils"
)

// InstrumentTrack accumulates notes back to back at a fixed sample rate.
type InstrumentTrack struct {
	data       []float32
	sampleRate uint32
	volume     float32
}

func NewInstrumentTrack(sampleRate uint32, volume float32) *InstrumentTrack {
	return &InstrumentTrack{
		data:       []float32{},
		sampleRate: sampleRate,
		volume:     volume,
	}
}

// AddNote resamples n to the track rate and appends it.
func (t *InstrumentTrack) AddNote(n note.Note) {
	t.data = append(t.data, utils.ResampleRate(n.Samples, n.SampleRate, t.sampleRate)...)
}

// Data returns a copy of the track peak-normalized to its volume.
func (t *InstrumentTrack) Data() []float32 {
	return utils.Normalize(t.data, t.volume)
}

// Len is the number of accumulated samples.
func (t *InstrumentTrack) Len() int { return len(t.data) }

func (t *InstrumentTrack) SampleRate() uint32 { return t.sampleRate }
func (t *InstrumentTrack) Volume() float32    { return t.volume }

// Seconds is the playing time of the accumulated samples.
func (t *InstrumentTrack) Seconds() float64 {
	if t.sampleRate == 0 {
		return 0
	}
	return float64(len(t.data)) / float64(t.sampleRate)
}
