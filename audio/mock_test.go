// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"io"
)

// mockSource generates totalFrames frames of waveform(frame, channel).
type mockSource struct {
	sampleRate  int
	channels    int
	totalFrames int
	generated   int
	waveform    func(frame int, channel int) float32
	failAfter   int // return errMockRead once this many frames were produced; 0 disables
}

var errMockRead = errors.New("mock read failure")

func newMockSource(sampleRate, channels, totalFrames int, waveform func(frame int, channel int) float32) *mockSource {
	return &mockSource{
		sampleRate:  sampleRate,
		channels:    channels,
		totalFrames: totalFrames,
		waveform:    waveform,
	}
}

func newConstantSource(sampleRate, channels, totalFrames int, value float32) *mockSource {
	return newMockSource(sampleRate, channels, totalFrames, func(int, int) float32 { return value })
}

func newSilentSource(sampleRate, channels, totalFrames int) *mockSource {
	return newConstantSource(sampleRate, channels, totalFrames, 0)
}

func (m *mockSource) SampleRate() int { return m.sampleRate }
func (m *mockSource) Channels() int   { return m.channels }
func (m *mockSource) BufSize() int    { return 64 }
func (m *mockSource) Close() error    { return nil }
func (m *mockSource) Reset()          { m.generated = 0 }

func (m *mockSource) ReadSamples(dst []float32) (int, error) {
	if m.failAfter > 0 && m.generated >= m.failAfter {
		return 0, errMockRead
	}
	if m.generated >= m.totalFrames {
		return 0, io.EOF
	}

	frames := min(len(dst)/m.channels, m.totalFrames-m.generated)
	for f := range frames {
		for ch := range m.channels {
			dst[f*m.channels+ch] = m.waveform(m.generated+f, ch)
		}
	}
	m.generated += frames

	if m.generated >= m.totalFrames {
		return frames * m.channels, io.EOF
	}

	return frames * m.channels, nil
}
