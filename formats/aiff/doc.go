// SPDX-License-Identifier: EPL-2.0

// Package aiff decodes AIFF files for sampled instruments, using
// github.com/go-audio/aiff.
//
// Integer samples of 8, 16, 24 or 32 bits are divided by 32767, the same
// reference the WAV decoder uses, so a 16-bit AIFF and a 16-bit WAV of the
// same waveform decode identically:
//
//	src, err := aiff.Decoder{}.Decode(file)
//	mono, err := audio.ReadMono(src)
package aiff
