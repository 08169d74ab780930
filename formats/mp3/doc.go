// SPDX-License-Identifier: EPL-2.0

// Package mp3 decodes MPEG-1/2 Layer III files for sampled instruments,
// using github.com/hajimehoshi/go-mp3.
//
// The decoder always reports two channels; mono files are duplicated by
// go-mp3. Samples are 16-bit and scaled by 32767 like every other integer
// format in this module.
package mp3
