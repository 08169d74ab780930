// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"fmt"
	"io"
	"math"

	goaudio "github.com/go-audio/audio"
	gowav "github.com/go-audio/wav"

	"github.com/ik5/scorebx/audio"
	"github.com/ik5/scorebx/utils"
)

// WAVE_FORMAT tags found in the fmt chunk.
const (
	formatPCM        = 1
	formatIEEEFloat  = 3
	formatExtensible = 0xFFFE
)

// pcmReader is the part of gowav.Decoder the source needs; tests fake it.
type pcmReader interface {
	PCMBuffer(buf *goaudio.IntBuffer) (int, error)
}

type source struct {
	dec        pcmReader
	sampleRate int
	channels   int
	convert    func(v int) float32
	intBuf     *goaudio.IntBuffer
}

func (s *source) SampleRate() int { return s.sampleRate }
func (s *source) Channels() int   { return s.channels }
func (s *source) Close() error    { return nil }
func (s *source) BufSize() int {
	if s.intBuf != nil {
		return cap(s.intBuf.Data)
	}
	return 4096
}

func (s *source) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}

	if s.intBuf == nil || cap(s.intBuf.Data) < len(dst) {
		s.intBuf = &goaudio.IntBuffer{Data: make([]int, len(dst))}
	} else {
		s.intBuf.Data = s.intBuf.Data[:len(dst)]
	}

	n, err := s.dec.PCMBuffer(s.intBuf)
	if err != nil {
		return 0, fmt.Errorf("reading wav pcm: %w", err)
	}
	if n == 0 {
		return 0, io.EOF
	}

	for i, v := range s.intBuf.Data[:n] {
		dst[i] = s.convert(v)
	}

	return n, nil
}

// converter picks the int-to-float mapping for a format tag. Extensible
// files are resolved to their sub-format before this is called. Integer
// samples of every depth are divided by utils.Int16Max; 8-bit data is
// unsigned and centred first. IEEE float samples arrive from go-audio as raw
// bit patterns. 64-bit float is not supported: go-audio cannot read it.
func converter(format, bitDepth uint16) (func(int) float32, error) {
	switch format {
	case formatIEEEFloat:
		if bitDepth != 32 {
			return nil, fmt.Errorf("%w: %d-bit float", ErrUnsupportedBitDepth, bitDepth)
		}
		return func(v int) float32 {
			return math.Float32frombits(uint32(int32(v)))
		}, nil

	case formatPCM:
		switch bitDepth {
		case 8:
			return func(v int) float32 { return utils.IntToFloat32(v - 128) }, nil
		case 16, 24, 32:
			return utils.IntToFloat32, nil
		}
		return nil, fmt.Errorf("%w: %d-bit integer", ErrUnsupportedBitDepth, bitDepth)
	}

	return nil, fmt.Errorf("%w: format tag %d", ErrUnsupportedFormat, format)
}

type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	// go-audio requires io.ReadSeeker
	rs, ok := r.(io.ReadSeeker)
	if !ok {
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, fmt.Errorf("reading wav data: %w", err)
		}
		rs = bytes.NewReader(data)
	}

	sub, err := subFormat(rs)
	if err != nil {
		return nil, err
	}

	dec := gowav.NewDecoder(rs)
	dec.ReadInfo()
	if err := dec.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotWavFile, err)
	}
	if dec.NumChans == 0 || dec.SampleRate == 0 {
		return nil, ErrNotWavFile
	}

	format := dec.WavAudioFormat
	if format == formatExtensible {
		format = sub
	}

	convert, err := converter(format, dec.BitDepth)
	if err != nil {
		return nil, err
	}

	return &source{
		dec:        dec,
		sampleRate: int(dec.SampleRate),
		channels:   int(dec.NumChans),
		convert:    convert,
	}, nil
}
