// SPDX-License-Identifier: EPL-2.0

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ik5/scorebx/formats/wav"
)

const song = `
num_channel: 2
sample_rate: 8000
tracks:
  - source: {kind: sine}
    bpm: 60
    score_notes:
      - {semitone: 0, length: 1}
  - source: {kind: pluck, seed: 5}
    bpm: 60
    channel: 1
    score_notes:
      - {semitone: 3, length: 0.5}
`

func writeSong(t *testing.T, name, doc string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestRun_WriteWAV(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		flags []string
		bits  int
	}{
		{"float", nil, 32},
		{"pcm16", []string{"-c"}, 16},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			in := writeSong(t, "song.yml", song)
			outDir := filepath.Join(t.TempDir(), "out")

			var stdout, stderr bytes.Buffer
			args := append([]string{"-w", "-o", outDir, "-rate", "4000"}, tt.flags...)
			if code := run(append(args, in), &stdout, &stderr); code != 0 {
				t.Fatalf("run() = %d, stderr:\n%s", code, stderr.String())
			}

			f, err := os.Open(filepath.Join(outDir, "song.wav"))
			if err != nil {
				t.Fatal(err)
			}
			defer f.Close()

			src, err := wav.Decoder{}.Decode(f)
			if err != nil {
				t.Fatalf("Decode() error = %v", err)
			}
			if src.SampleRate() != 4000 || src.Channels() != 2 {
				t.Errorf("output = %d Hz %d ch, want 4000 Hz 2 ch", src.SampleRate(), src.Channels())
			}

			if !strings.Contains(stderr.String(), "wrote wav") {
				t.Errorf("stderr = %q, want a wrote wav record", stderr.String())
			}
			if stdout.Len() != 0 {
				t.Errorf("stdout = %q, want empty", stdout.String())
			}
		})
	}
}

func TestRun_Dump(t *testing.T) {
	t.Parallel()

	in := writeSong(t, "song.score", song)

	var stdout, stderr bytes.Buffer
	if code := run([]string{"-dump", "-format", "yaml", in}, &stdout, &stderr); code != 0 {
		t.Fatalf("run() = %d, stderr:\n%s", code, stderr.String())
	}

	out := stdout.String()
	for _, want := range []string{"num_channel: 2", "kind: pluck", "seed: 5", "channel: 1"} {
		if !strings.Contains(out, want) {
			t.Errorf("dump missing %q:\n%s", want, out)
		}
	}
}

func TestRun_Directory(t *testing.T) {
	t.Parallel()

	in := writeSong(t, "a.json", `{"num_channel": 1, "sample_rate": 8000, "tracks": []}`)
	dir := filepath.Dir(in)
	if err := os.WriteFile(filepath.Join(dir, "b.yml"), []byte(song), 0o644); err != nil {
		t.Fatal(err)
	}
	outDir := t.TempDir()

	var stdout, stderr bytes.Buffer
	if code := run([]string{"-w", "-o", outDir, dir}, &stdout, &stderr); code != 0 {
		t.Fatalf("run() = %d, stderr:\n%s", code, stderr.String())
	}

	for _, name := range []string{"a.wav", "b.wav"} {
		if _, err := os.Stat(filepath.Join(outDir, name)); err != nil {
			t.Errorf("missing %s: %v", name, err)
		}
	}
}

func TestRun_Errors(t *testing.T) {
	t.Parallel()

	bad := writeSong(t, "bad.json", `{"num_channel": 0, "sample_rate": 8000}`)

	tests := []struct {
		name string
		args []string
		want int
	}{
		{"no args", nil, 2},
		{"unknown flag", []string{"-nope"}, 2},
		{"bad format", []string{"-format", "toml", "-dump", bad}, 2},
		{"invalid score", []string{"-dump", bad}, 1},
		{"missing file", []string{"-dump", filepath.Join(t.TempDir(), "x.yml")}, 1},
		{"help", []string{"-h"}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var stdout, stderr bytes.Buffer
			if got := run(tt.args, &stdout, &stderr); got != tt.want {
				t.Errorf("run(%q) = %d, want %d\nstderr:\n%s", tt.args, got, tt.want, stderr.String())
			}
		})
	}
}
