// SPDX-License-Identifier: EPL-2.0

// Package score reads declarative score descriptions and renders them.
//
// A score lists parts. Each part names a sound source, a tempo and a
// sequence of notes measured in beats; optional fields pick the output
// channel, the track volume, the track sample rate and an ADSR envelope.
// Scores are written in JSON or YAML with the same field names:
//
//	num_channel: 2
//	sample_rate: 48000
//	tracks:
//	  - source: {kind: pluck, seed: 7}
//	    bpm: 120
//	    channel: 1
//	    score_notes:
//	      - {semitone: 0, length: 1}
//	      - {length: 0.5}   # rest
//
// Notes in a part play back to back. Build turns a validated score into a
// track.Mixdown ready to be written or played.
package score
