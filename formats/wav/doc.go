// SPDX-License-Identifier: EPL-2.0

// Package wav reads sampled instruments from WAV files and writes rendered
// mixdowns back out, on top of github.com/go-audio/wav.
//
// # Decoding
//
// Decoder accepts integer PCM at 8, 16, 24 or 32 bits and 32-bit IEEE float:
//
//	src, err := wav.Decoder{}.Decode(file)
//	samples, err := audio.ReadAll(src)
//
// Integer samples of every depth are divided by 32767, so 16-bit data lands
// in [-1, 1] while deeper formats may exceed it. 8-bit data is unsigned on
// disk and is centred before scaling. Float samples are passed through.
//
// # Encoding
//
// WriteFloat32 stores interleaved samples as 32-bit float without clamping.
// WritePCM16 clamps to [-1, 1] and writes 16-bit PCM. Both need an
// io.WriteSeeker because the RIFF sizes are patched on close:
//
//	f, _ := os.Create("out.wav")
//	err := wav.WriteFloat32(f, 2, 48000, interleaved)
package wav
