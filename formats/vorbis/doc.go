// SPDX-License-Identifier: EPL-2.0

// Package vorbis decodes Ogg Vorbis files for sampled instruments, using
// github.com/jfreymuth/oggvorbis.
//
// Vorbis decodes straight to float, so samples pass through unscaled.
// ReadSamples only ever asks the decoder for whole frames.
package vorbis
