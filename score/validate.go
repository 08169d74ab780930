// SPDX-License-Identifier: EPL-2.0

package score

import (
	"fmt"

	"github.com/ik5/scorebx/source"
	"github.com/ik5/scorebx/track"
)

// Validate checks everything that can be checked without touching sample
// files. Errors wrap ErrInvalidScore and the specific cause.
func (s *Score) Validate() error {
	if s.NumChannel == 0 {
		return fmt.Errorf("%w: %w", ErrInvalidScore, ErrNoChannels)
	}
	if s.SampleRate == 0 {
		return fmt.Errorf("%w: %w", ErrInvalidScore, ErrInvalidSampleRate)
	}

	for i, p := range s.Tracks {
		if err := p.validate(s.NumChannel); err != nil {
			return fmt.Errorf("%w: part %d: %w", ErrInvalidScore, i, err)
		}
	}

	return nil
}

func (p Part) validate(channels uint16) error {
	switch {
	case !p.Source.Kind.Valid():
		return fmt.Errorf("%w: %q", source.ErrUnknownKind, p.Source.Kind)
	case p.Source.Kind == source.KindSampler && p.Source.Path == "":
		return source.ErrEmptyPath
	case !finitePositive(p.BPM):
		return fmt.Errorf("%w: %v", ErrInvalidBPM, p.BPM)
	case p.SampleRate != nil && *p.SampleRate == 0:
		return ErrInvalidSampleRate
	case p.ChannelIndex() >= channels:
		return &track.IndexError{Index: int(p.ChannelIndex()), Len: int(channels)}
	}

	for j, n := range p.Notes {
		if !(n.Length >= 0) {
			return fmt.Errorf("note %d: %w: %v", j, ErrInvalidLength, n.Length)
		}
	}

	return nil
}
