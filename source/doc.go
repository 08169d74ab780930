// SPDX-License-Identifier: EPL-2.0

// Package source provides the sound sources a score part is played with.
//
// A SoundSource computes its base waveform once, at construction, and
// derives every note from it without changing state:
//
//	src := source.NewSine()
//	semitone := float32(7)
//	n := src.Note(0.5, &semitone) // half a second, a fifth above C4
//	rest := src.Note(0.5, nil)    // half a second of silence
//
// Note pitch shifts the base waveform by linear resampling, tiles or
// truncates it to the requested length and fades both ends to avoid clicks.
//
// The variants are fixed:
//
//   - Sine and Triangle: two seconds of C4 at 48 kHz.
//   - Sampler: a WAV, AIFF, MP3 or Ogg Vorbis file, decoded to mono.
//   - Pluck: a Karplus-Strong string, seeded for reproducibility.
//
// Descriptor and New convert between a source and its score description.
package source
