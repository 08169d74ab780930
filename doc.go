// SPDX-License-Identifier: EPL-2.0

// Package scorebx renders declarative musical scores to multi-channel audio.
//
// A score describes instrument parts: a sound source (sine, triangle,
// plucked string or a sampled file), a tempo and a list of notes with
// pitches in semitones and lengths in beats. Rendering turns every part into
// an instrument track, mixes the tracks of each output channel and
// normalizes the result.
//
// # Quick Start
//
//	m, err := scorebx.RenderFile("song.yaml")
//	if err != nil {
//	    return err
//	}
//
//	out, _ := os.Create("song.wav")
//	defer out.Close()
//	err = m.WriteWAV(out)
//
// # Packages
//
// The pipeline is split across subpackages:
//   - score reads JSON/YAML scores and builds them
//   - source holds the sound sources and note rendering
//   - note holds rendered notes and ADSR envelopes
//   - track accumulates notes into tracks and mixes channels
//   - formats/wav, formats/aiff, formats/mp3 and formats/vorbis decode
//     sampled sources; formats/wav also writes the rendered output
//   - playback plays a mixdown on the default audio device
//
// See the individual subpackages for more detailed documentation.
package scorebx
