// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"testing"
)

func TestReadAll(t *testing.T) {
	t.Parallel()

	// 1000 frames is not a multiple of the 64 sample BufSize
	src := newMockSource(8000, 2, 1000, func(frame, ch int) float32 {
		return float32(frame*2+ch) / 10000
	})

	got, err := ReadAll(src)
	if err != nil {
		t.Fatalf("ReadAll() error = %v", err)
	}
	if len(got) != 2000 {
		t.Fatalf("len(ReadAll()) = %d, want 2000", len(got))
	}
	for i, s := range got {
		if want := float32(i) / 10000; s != want {
			t.Fatalf("got[%d] = %v, want %v", i, s, want)
		}
	}
}

func TestReadAll_Empty(t *testing.T) {
	t.Parallel()

	got, err := ReadAll(newSilentSource(8000, 1, 0))
	if err != nil {
		t.Fatalf("ReadAll() error = %v", err)
	}
	if got == nil || len(got) != 0 {
		t.Errorf("ReadAll() = %v, want empty non-nil slice", got)
	}
}

func TestReadAll_PropagatesError(t *testing.T) {
	t.Parallel()

	src := newSilentSource(8000, 1, 1000)
	src.failAfter = 100

	_, err := ReadAll(src)
	if !errors.Is(err, errMockRead) {
		t.Errorf("ReadAll() error = %v, want %v", err, errMockRead)
	}
}

func TestReadMono(t *testing.T) {
	t.Parallel()

	src := newMockSource(22050, 2, 300, func(_, ch int) float32 {
		if ch == 0 {
			return 1
		}
		return 0
	})

	got, err := ReadMono(src)
	if err != nil {
		t.Fatalf("ReadMono() error = %v", err)
	}
	if len(got) != 300 {
		t.Fatalf("len(ReadMono()) = %d, want 300", len(got))
	}
	for i, s := range got {
		if s != 0.5 {
			t.Fatalf("got[%d] = %v, want 0.5", i, s)
		}
	}
}
