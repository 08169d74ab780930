// SPDX-License-Identifier: EPL-2.0

package scorebx

import (
	"fmt"
	"io"

	"github.com/ik5/scorebx/score"
	"github.com/ik5/scorebx/track"
)

// Render reads a JSON or YAML score from r and renders it.
//
// Relative sampler paths resolve against the working directory unless
// score.WithBaseDir is given.
func Render(r io.Reader, opts ...score.Option) (*track.Mixdown, error) {
	s, err := score.Read(r, score.FormatAuto)
	if err != nil {
		return nil, err
	}

	m, err := s.Build(opts...)
	if err != nil {
		return nil, fmt.Errorf("building score: %w", err)
	}

	return m, nil
}

// RenderFile loads the score at path and renders it. Relative sampler
// paths resolve against the score file's directory.
func RenderFile(path string, opts ...score.Option) (*track.Mixdown, error) {
	s, err := score.Load(path)
	if err != nil {
		return nil, err
	}

	m, err := s.Build(opts...)
	if err != nil {
		return nil, fmt.Errorf("building %s: %w", path, err)
	}

	return m, nil
}
