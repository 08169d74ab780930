// SPDX-License-Identifier: EPL-2.0

package audio

import "io"

// BufferSource serves an in-memory interleaved buffer as a Source.
type BufferSource struct {
	data       []float32
	sampleRate int
	channels   int
	pos        int
}

// NewBufferSource wraps data, which must be interleaved over channels.
// The slice is read, never written.
func NewBufferSource(data []float32, sampleRate, channels int) *BufferSource {
	return &BufferSource{
		data:       data,
		sampleRate: sampleRate,
		channels:   max(channels, 1),
	}
}

func (b *BufferSource) SampleRate() int { return b.sampleRate }
func (b *BufferSource) Channels() int   { return b.channels }
func (b *BufferSource) BufSize() int    { return 4096 }
func (b *BufferSource) Close() error    { return nil }

// Len is the total number of interleaved samples.
func (b *BufferSource) Len() int { return len(b.data) }

// Remaining is the number of interleaved samples not read yet.
func (b *BufferSource) Remaining() int { return len(b.data) - b.pos }

// Reset rewinds to the start of the buffer.
func (b *BufferSource) Reset() { b.pos = 0 }

func (b *BufferSource) ReadSamples(dst []float32) (int, error) {
	if len(dst)%b.channels != 0 {
		return 0, ErrInvalidDstSize
	}
	if b.pos >= len(b.data) {
		return 0, io.EOF
	}

	n := copy(dst, b.data[b.pos:])
	b.pos += n

	if b.pos >= len(b.data) {
		return n, io.EOF
	}

	return n, nil
}
