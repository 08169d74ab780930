// SPDX-License-Identifier: EPL-2.0

package score

import (
	"fmt"
	"log/slog"

	"github.com/ik5/scorebx/source"
	"github.com/ik5/scorebx/track"
)

type buildConfig struct {
	baseDir       string
	baseDirSet    bool
	logger        *slog.Logger
	sampleRate    uint32
	defaultVolume float32
}

// Option adjusts Build.
type Option func(*buildConfig)

// WithBaseDir resolves relative sampler paths against dir instead of the
// directory the score was loaded from.
func WithBaseDir(dir string) Option {
	return func(c *buildConfig) {
		c.baseDir = dir
		c.baseDirSet = true
	}
}

// WithLogger receives a debug record per rendered part.
func WithLogger(l *slog.Logger) Option {
	return func(c *buildConfig) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithSampleRate overrides the score's output sample rate.
func WithSampleRate(rate uint32) Option {
	return func(c *buildConfig) {
		if rate > 0 {
			c.sampleRate = rate
		}
	}
}

// WithDefaultVolume sets the volume of parts that do not give one.
func WithDefaultVolume(v float32) Option {
	return func(c *buildConfig) {
		c.defaultVolume = v
	}
}

// Build validates s, constructs every part's source and renders the parts
// into a Mixdown. The first failing part aborts the build.
func (s *Score) Build(opts ...Option) (*track.Mixdown, error) {
	cfg := buildConfig{
		baseDir:       s.dir,
		logger:        slog.New(slog.DiscardHandler),
		sampleRate:    s.SampleRate,
		defaultVolume: DefaultVolume,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	if err := s.Validate(); err != nil {
		return nil, err
	}

	m := track.NewMixdown(s.NumChannel, cfg.sampleRate)

	for i, p := range s.Tracks {
		src, err := source.NewIn(cfg.baseDir, p.Source)
		if err != nil {
			return nil, fmt.Errorf("part %d: %w", i, err)
		}

		t := p.render(src, cfg.defaultVolume)
		if err := m.AddTrack(int(p.ChannelIndex()), t); err != nil {
			return nil, fmt.Errorf("part %d: %w", i, err)
		}

		cfg.logger.Debug("rendered part",
			"part", i,
			"kind", p.Source.Kind,
			"channel", p.ChannelIndex(),
			"notes", len(p.Notes),
			"seconds", t.Seconds(),
		)
	}

	return m, nil
}

// Track renders p with src into a new instrument track.
func (p Part) Track(src source.SoundSource) *track.InstrumentTrack {
	return p.render(src, DefaultVolume)
}

func (p Part) render(src source.SoundSource, defaultVolume float32) *track.InstrumentTrack {
	rate := src.SampleRate()
	if p.SampleRate != nil {
		rate = *p.SampleRate
	}
	volume := defaultVolume
	if p.Volume != nil {
		volume = *p.Volume
	}

	t := track.NewInstrumentTrack(rate, volume)
	for _, sn := range p.Notes {
		n := src.Note(p.Seconds(sn.Length), sn.Semitone)
		if p.Envelope != nil {
			n = p.Envelope.Apply(n.WithEnvelope(p.Envelope))
		}
		t.AddNote(n)
	}

	return t
}
