// SPDX-License-Identifier: EPL-2.0

// Command scorebx renders JSON/YAML score files to WAV or plays them.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/ik5/scorebx/playback"
	"github.com/ik5/scorebx/score"
	"github.com/ik5/scorebx/track"
)

type config struct {
	outDir  string
	wavOut  bool
	play    bool
	pcm     bool
	rate    uint
	volume  float64
	format  score.Format
	dump    bool
	verbose bool
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("scorebx", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var (
		cfg    config
		format string
	)
	fs.StringVar(&cfg.outDir, "o", "", "Directory for output files. Created if needed. Defaults to the working directory.")
	fs.BoolVar(&cfg.wavOut, "w", false, "Write the rendered score as a .wav file (32-bit float unless -c).")
	fs.BoolVar(&cfg.play, "p", false, "Play the scores (default when no other output is requested).")
	fs.BoolVar(&cfg.pcm, "c", false, "Write 16-bit signed PCM instead of 32-bit float.")
	fs.UintVar(&cfg.rate, "rate", 0, "Override the output sample rate of every score.")
	fs.Float64Var(&cfg.volume, "volume", float64(score.DefaultVolume), "Volume of parts that do not set one.")
	fs.StringVar(&format, "format", "auto", "Score format: json, yaml or auto (by extension, then JSON, then YAML).")
	fs.BoolVar(&cfg.dump, "dump", false, "Print each parsed score as YAML to standard output.")
	fs.BoolVar(&cfg.verbose, "v", false, "Verbose logging.")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "scorebx renders .json/.yml score files.\nUsage: scorebx [flags] [path ...]\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}
	if fs.NArg() == 0 {
		fs.Usage()
		return 2
	}

	level := slog.LevelInfo
	if cfg.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	f, err := score.ParseFormat(format)
	if err != nil {
		logger.Error("bad -format", "error", err)
		return 2
	}
	cfg.format = f

	if !cfg.wavOut && !cfg.dump {
		cfg.play = true
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	r := &runner{cfg: cfg, logger: logger, stdout: stdout}
	defer r.close()

	retval := 0
	for _, file := range expand(fs.Args(), logger) {
		if err := r.process(ctx, file); err != nil {
			logger.Error("could not process score", "path", file, "error", err)
			retval = 1
		}
		if ctx.Err() != nil {
			break
		}
	}

	return retval
}

// expand replaces directories with the score files they contain.
func expand(args []string, logger *slog.Logger) []string {
	var files []string
	for _, arg := range args {
		info, err := os.Stat(arg)
		if err != nil || !info.IsDir() {
			files = append(files, arg)
			continue
		}

		for _, pattern := range []string{"*.json", "*.yml", "*.yaml"} {
			matches, err := filepath.Glob(filepath.Join(arg, pattern))
			if err != nil {
				logger.Error("could not glob directory", "path", arg, "error", err)
				continue
			}
			files = append(files, matches...)
		}
	}
	return files
}

type runner struct {
	cfg    config
	logger *slog.Logger
	stdout io.Writer
	player *playback.Player
}

func (r *runner) process(ctx context.Context, file string) error {
	data, err := os.ReadFile(file)
	if err != nil {
		return fmt.Errorf("reading score: %w", err)
	}

	format := r.cfg.format
	if format == score.FormatAuto {
		format = score.FormatForPath(file)
	}
	s, err := score.Parse(data, format)
	if err != nil {
		return err
	}
	r.logger.Debug("parsed score", "path", file, "channels", s.NumChannel, "sample_rate", s.SampleRate, "parts", len(s.Tracks))

	if r.cfg.dump {
		if err := s.Encode(r.stdout, score.FormatYAML); err != nil {
			return err
		}
	}
	if !r.cfg.wavOut && !r.cfg.play {
		return nil
	}

	m, err := s.Build(
		score.WithBaseDir(filepath.Dir(file)),
		score.WithLogger(r.logger),
		score.WithSampleRate(uint32(r.cfg.rate)),
		score.WithDefaultVolume(float32(r.cfg.volume)),
	)
	if err != nil {
		return fmt.Errorf("building score: %w", err)
	}

	if r.cfg.wavOut {
		if err := r.writeWAV(file, m); err != nil {
			return err
		}
	}
	if r.cfg.play {
		return r.playMixdown(ctx, m)
	}
	return nil
}

func (r *runner) writeWAV(file string, m *track.Mixdown) error {
	dir := r.cfg.outDir
	if dir == "" {
		var err error
		if dir, err = os.Getwd(); err != nil {
			return fmt.Errorf("could not get working directory, use -o: %w", err)
		}
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	name := filepath.Base(file)
	out := filepath.Join(dir, strings.TrimSuffix(name, filepath.Ext(name))+".wav")

	f, err := os.Create(out)
	if err != nil {
		return fmt.Errorf("creating output: %w", err)
	}
	defer f.Close()

	if r.cfg.pcm {
		err = m.WritePCM16(f)
	} else {
		err = m.WriteWAV(f)
	}
	if err != nil {
		return fmt.Errorf("writing %s: %w", out, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", out, err)
	}

	r.logger.Info("wrote wav", "path", out, "channels", m.Channels(), "sample_rate", m.SampleRate(), "pcm16", r.cfg.pcm)
	return nil
}

func (r *runner) playMixdown(ctx context.Context, m *track.Mixdown) error {
	if r.player == nil {
		p, err := playback.ForMixdown(m)
		if err != nil {
			return fmt.Errorf("opening audio device: %w", err)
		}
		r.player = p
	}

	if err := r.player.Play(m); err != nil {
		return err
	}
	r.logger.Debug("playing", "channels", m.Channels(), "sample_rate", m.SampleRate())

	if err := r.player.Wait(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

func (r *runner) close() {
	if r.player == nil {
		return
	}
	if err := r.player.Close(); err != nil {
		r.logger.Error("closing player", "error", err)
	}
}
