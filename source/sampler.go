// SPDX-License-Identifier: EPL-2.0

package source

import (
	"fmt"
	"math"
	"os"
	"path/filepath"

	"github.com/ik5/scorebx/audio"
	"github.com/ik5/scorebx/formats/aiff"
	"github.com/ik5/scorebx/formats/mp3"
	"github.com/ik5/scorebx/formats/vorbis"
	"github.com/ik5/scorebx/formats/wav"
	"github.com/ik5/scorebx/note"
)

var decoders = audio.NewRegistry()

func init() {
	decoders.Register("wav", wav.Decoder{})
	decoders.Register("wave", wav.Decoder{})
	decoders.Register("aif", aiff.Decoder{})
	decoders.Register("aiff", aiff.Decoder{})
	decoders.Register("mp3", mp3.Decoder{})
	decoders.Register("ogg", vorbis.Decoder{})
	decoders.Register("oga", vorbis.Decoder{})
}

// Formats lists the file extensions a Sampler can load.
func Formats() []string {
	return decoders.Formats()
}

// Sampler plays back a recorded waveform loaded from a file.
type Sampler struct {
	base
	path string
}

// NewSampler decodes the file at path in full. The decoder is picked by
// extension; multi-channel files are averaged down to mono.
func NewSampler(path string) (*Sampler, error) {
	if path == "" {
		return nil, ErrEmptyPath
	}
	return loadSampler(path, path)
}

func loadSampler(path, file string) (*Sampler, error) {
	dec, ok := decoders.ForPath(file)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(file))
	}

	f, err := os.Open(file)
	if err != nil {
		return nil, fmt.Errorf("opening sample: %w", err)
	}
	defer f.Close()

	src, err := dec.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", file, err)
	}
	defer src.Close()

	s, err := samplerFrom(path, src)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", file, err)
	}
	return s, nil
}

// samplerFrom drains a decoded source into a Sampler.
func samplerFrom(path string, src audio.Source) (*Sampler, error) {
	rate := src.SampleRate()
	if rate <= 0 || int64(rate) > math.MaxUint32 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSampleRate, rate)
	}

	samples, err := audio.ReadMono(src)
	if err != nil {
		return nil, err
	}

	return &Sampler{
		base: base{wave: note.New(samples, uint32(rate))},
		path: path,
	}, nil
}

// Path is the file path as given in the descriptor.
func (s *Sampler) Path() string { return s.path }

func (s *Sampler) Descriptor() Descriptor {
	return Descriptor{Kind: KindSampler, Path: s.path}
}
