// SPDX-License-Identifier: EPL-2.0

package source

import (
	"math"

	"github.com/ik5/scorebx/note"
)

// Sine is a pure tone at FrequencyC4.
type Sine struct{ base }

// Triangle is a triangle wave at FrequencyC4.
type Triangle struct{ base }

func NewSine() *Sine {
	return &Sine{base{wave: oscillate(math.Sin)}}
}

func NewTriangle() *Triangle {
	return &Triangle{base{wave: oscillate(func(x float64) float64 {
		return 2 / math.Pi * math.Asin(math.Sin(x))
	})}}
}

func (*Sine) Descriptor() Descriptor     { return Descriptor{Kind: KindSine} }
func (*Triangle) Descriptor() Descriptor { return Descriptor{Kind: KindTriangle} }

// oscillate samples wave(2πft) for DefaultDuration at DefaultSampleRate.
func oscillate(wave func(float64) float64) note.Note {
	n := sampleCount(DefaultDuration, DefaultSampleRate)
	data := make([]float32, n)

	w := 2 * math.Pi * float64(FrequencyC4)
	for i := range data {
		t := float64(i) / float64(DefaultSampleRate)
		data[i] = float32(wave(w * t))
	}

	return note.New(data, DefaultSampleRate)
}
