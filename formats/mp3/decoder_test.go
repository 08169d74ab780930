// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"bytes"
	"encoding/binary"
	"errors"
	"io"
	"testing"

	"github.com/ik5/scorebx/audio"
	"github.com/ik5/scorebx/internal/audiotest"
)

// mockMP3Reader simulates gomp3.Decoder; chunk limits bytes per Read call
type mockMP3Reader struct {
	sampleRate int
	pcm        []byte
	chunk      int
	err        error
}

func newMockReader(samples []int16, chunk int) *mockMP3Reader {
	pcm := make([]byte, len(samples)*2)
	for i, s := range samples {
		binary.LittleEndian.PutUint16(pcm[2*i:], uint16(s))
	}
	return &mockMP3Reader{sampleRate: 44100, pcm: pcm, chunk: chunk}
}

func (m *mockMP3Reader) SampleRate() int { return m.sampleRate }

func (m *mockMP3Reader) Read(buf []byte) (int, error) {
	if m.err != nil {
		return 0, m.err
	}
	if len(m.pcm) == 0 {
		return 0, io.EOF
	}

	limit := len(buf)
	if m.chunk > 0 {
		limit = min(limit, m.chunk)
	}
	n := copy(buf[:limit], m.pcm)
	m.pcm = m.pcm[n:]

	return n, nil
}

func TestDecoder_InvalidInput(t *testing.T) {
	t.Parallel()

	for _, data := range [][]byte{[]byte("This is not MP3 data"), nil} {
		if _, err := (Decoder{}).Decode(bytes.NewReader(data)); err == nil {
			t.Errorf("Decode(%q) error = nil, want error", data)
		}
	}
}

func TestSource_ReadSamples(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		chunk int
	}{
		{"whole reads", 0},
		// go-mp3 hands out data one frame at a time
		{"short reads", 6},
		{"odd byte reads", 3},
	}

	in := []int16{0, 32767, -32767, 16384, -16384, 1}
	want := []float32{0, 1, -1, 16384.0 / 32767, -16384.0 / 32767, 1.0 / 32767}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			src := &source{dec: newMockReader(in, tt.chunk), sampleRate: 44100}
			got, err := audio.ReadAll(src)
			if err != nil {
				t.Fatalf("ReadAll() error = %v", err)
			}
			audiotest.RequireNearlyEqual(t, got, want, 1e-6)
		})
	}
}

func TestSource_Metadata(t *testing.T) {
	t.Parallel()

	src := &source{dec: newMockReader(nil, 0), sampleRate: 22050, buf: make([]byte, 8192)}

	if src.SampleRate() != 22050 {
		t.Errorf("SampleRate() = %d, want 22050", src.SampleRate())
	}
	if src.Channels() != 2 {
		t.Errorf("Channels() = %d, want 2", src.Channels())
	}
	if src.BufSize() != 4096 {
		t.Errorf("BufSize() = %d, want 4096", src.BufSize())
	}
	if err := src.Close(); err != nil {
		t.Errorf("Close() error = %v", err)
	}
}

func TestSource_ReadSamples_EOF(t *testing.T) {
	t.Parallel()

	src := &source{dec: newMockReader(nil, 0)}
	n, err := src.ReadSamples(make([]float32, 8))
	if n != 0 || err != io.EOF {
		t.Errorf("ReadSamples() = (%d, %v), want (0, EOF)", n, err)
	}

	n, err = src.ReadSamples(nil)
	if n != 0 || err != nil {
		t.Errorf("ReadSamples(nil) = (%d, %v), want (0, nil)", n, err)
	}
}

func TestSource_ReadSamples_Error(t *testing.T) {
	t.Parallel()

	boom := errors.New("corrupt frame")
	src := &source{dec: &mockMP3Reader{err: boom}}

	if _, err := src.ReadSamples(make([]float32, 8)); !errors.Is(err, boom) {
		t.Errorf("ReadSamples() error = %v, want wrapped %v", err, boom)
	}
}

func BenchmarkSource_ReadSamples(b *testing.B) {
	samples := make([]int16, 44100*2)

	b.ReportAllocs()
	for b.Loop() {
		src := &source{dec: newMockReader(samples, 4608), sampleRate: 44100}
		if _, err := audio.ReadAll(src); err != nil {
			b.Fatal(err)
		}
	}
}
