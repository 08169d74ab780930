// SPDX-License-Identifier: EPL-2.0

package score_test

import (
	"errors"
	"fmt"
	"os"

	"github.com/ik5/scorebx/score"
	"github.com/ik5/scorebx/source"
)

func ExampleParse() {
	doc := `
num_channel: 1
sample_rate: 24000
tracks:
  - source: {kind: sine}
    bpm: 120
    score_notes:
      - {semitone: 0, length: 1}
      - {length: 1}
`
	s, err := score.Parse([]byte(doc), score.FormatAuto)
	if err != nil {
		fmt.Println(err)
		return
	}

	m, err := s.Build()
	if err != nil {
		fmt.Println(err)
		return
	}

	data, _ := m.Data()
	fmt.Println(m.Channels(), m.SampleRate(), len(data))
	// Output: 1 24000 24000
}

func ExampleScore_Encode() {
	semitone := float32(4)
	s := &score.Score{
		NumChannel: 1,
		SampleRate: 48000,
		Tracks: []score.Part{{
			Source: source.Descriptor{Kind: source.KindTriangle},
			BPM:    90,
			Notes:  []score.Note{{Semitone: &semitone, Length: 2}},
		}},
	}

	if err := s.Encode(os.Stdout, score.FormatYAML); err != nil {
		fmt.Println(err)
	}
	// Output:
	// num_channel: 1
	// sample_rate: 48000
	// tracks:
	//   - source:
	//       kind: triangle
	//     bpm: 90
	//     score_notes:
	//       - semitone: 4
	//         length: 2
}

func ExampleScore_Validate() {
	s := &score.Score{NumChannel: 0, SampleRate: 48000}

	err := s.Validate()
	fmt.Println(err)
	fmt.Println(errors.Is(err, score.ErrNoChannels))
	// Output:
	// invalid score: score needs at least one channel
	// true
}
