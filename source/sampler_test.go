// SPDX-License-Identifier: EPL-2.0

package source

import (
	"errors"
	"testing"

	"github.com/ik5/scorebx/internal/audiotest"
)

func TestSamplerFrom(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		rate    int
		wantErr error
	}{
		{"valid", 11025, nil},
		{"zero rate", 0, ErrInvalidSampleRate},
		{"negative rate", -44100, ErrInvalidSampleRate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			src := audiotest.NewConstantSource(tt.rate, 2, 6, 0.5)
			s, err := samplerFrom("in.wav", src)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("samplerFrom() error = %v, want %v", err, tt.wantErr)
			}
			if tt.wantErr != nil {
				return
			}

			if s.SampleRate() != uint32(tt.rate) {
				t.Errorf("SampleRate() = %d, want %d", s.SampleRate(), tt.rate)
			}
			audiotest.RequireNearlyEqual(t, s.Base().Samples, []float32{0.5, 0.5, 0.5, 0.5, 0.5, 0.5}, 1e-6)
			if s.Path() != "in.wav" {
				t.Errorf("Path() = %q", s.Path())
			}
		})
	}
}
