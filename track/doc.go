// SPDX-License-Identifier: EPL-2.0

// Package track turns rendered notes into a multi-channel buffer.
//
// An InstrumentTrack lays notes end to end at its own sample rate. Note
// start times are not used: a note always begins where the previous one
// ended. A Mixdown holds tracks per output channel and renders them:
//
//	m := track.NewMixdown(2, 48000)
//	t := track.NewInstrumentTrack(48000, 0.8)
//	t.AddNote(src.Note(1, &semitone))
//	if err := m.AddTrack(1, t); err != nil {
//	    // *track.IndexError
//	}
//	interleaved, err := m.Data()
//
// Rendering never caches; every call recomputes from the stored samples.
package track
