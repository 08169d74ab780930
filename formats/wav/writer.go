// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"io"
	"math"

	goaudio "github.com/go-audio/audio"
	gowav "github.com/go-audio/wav"

	"github.com/ik5/scorebx/utils"
)

// frames handed to the encoder per Write call
const chunkFrames = 8192

// WriteFloat32 writes interleaved samples as a 32-bit IEEE float WAV.
// Samples are stored unchanged, without clamping.
func WriteFloat32(ws io.WriteSeeker, channels, sampleRate int, samples []float32) error {
	return write(ws, channels, sampleRate, 32, formatIEEEFloat, samples, func(x float32) int {
		// the encoder emits int32(v) little endian, which is exactly the float's bits
		return int(int32(math.Float32bits(x)))
	})
}

// WritePCM16 writes interleaved samples as 16-bit PCM, clamping to [-1, 1].
func WritePCM16(ws io.WriteSeeker, channels, sampleRate int, samples []float32) error {
	return write(ws, channels, sampleRate, 16, formatPCM, samples, func(x float32) int {
		return int(utils.Float32ToInt16(x))
	})
}

func write(ws io.WriteSeeker, channels, sampleRate, bitDepth, format int, samples []float32, conv func(float32) int) error {
	if channels < 1 {
		return ErrInvalidChannels
	}
	if len(samples)%channels != 0 {
		return fmt.Errorf("%w: %d samples, %d channels", ErrPartialFrame, len(samples), channels)
	}

	enc := gowav.NewEncoder(ws, sampleRate, bitDepth, channels, format)
	buf := &goaudio.IntBuffer{
		Format:         &goaudio.Format{NumChannels: channels, SampleRate: sampleRate},
		SourceBitDepth: bitDepth,
		Data:           make([]int, 0, min(len(samples), chunkFrames*channels)),
	}

	// an empty Write still emits the header and data chunk
	step := chunkFrames * channels
	for i := 0; i == 0 || i < len(samples); i += step {
		end := min(i+step, len(samples))

		buf.Data = buf.Data[:0]
		for _, x := range samples[i:end] {
			buf.Data = append(buf.Data, conv(x))
		}

		if err := enc.Write(buf); err != nil {
			return fmt.Errorf("encoding wav: %w", err)
		}
	}

	if err := enc.Close(); err != nil {
		return fmt.Errorf("finalizing wav: %w", err)
	}

	return nil
}
