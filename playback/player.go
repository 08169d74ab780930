// SPDX-License-Identifier: EPL-2.0

package playback

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/ebitengine/oto/v3"

	"github.com/ik5/scorebx/audio"
	"github.com/ik5/scorebx/track"
)

const (
	bufferSize   = 100 * time.Millisecond
	pollInterval = 10 * time.Millisecond
)

// voice is the part of oto.Player the Player drives; tests fake it.
type voice interface {
	Play()
	IsPlaying() bool
	Close() error
	Err() error
}

// Player sends rendered mixdowns to the default audio device. Mixdowns
// passed to Play are queued and heard one after another.
type Player struct {
	sampleRate int
	channels   int
	newVoice   func(io.Reader) voice
	queue      *queue

	mu     sync.Mutex
	voices []voice
	closed bool
}

// New opens the audio device. The device can only be opened once per
// process, so a program should keep a single Player.
func New(sampleRate, channels int) (*Player, error) {
	if err := checkFormat(sampleRate, channels); err != nil {
		return nil, err
	}

	ctx, ready, err := oto.NewContext(&oto.NewContextOptions{
		SampleRate:   sampleRate,
		ChannelCount: channels,
		Format:       oto.FormatFloat32LE,
		BufferSize:   bufferSize,
	})
	if err != nil {
		return nil, fmt.Errorf("opening audio device: %w", err)
	}
	<-ready

	return newPlayer(sampleRate, channels, func(r io.Reader) voice {
		return ctx.NewPlayer(r)
	}), nil
}

// ForMixdown opens the audio device in the format of m.
func ForMixdown(m *track.Mixdown) (*Player, error) {
	return New(int(m.SampleRate()), int(m.Channels()))
}

func newPlayer(sampleRate, channels int, newVoice func(io.Reader) voice) *Player {
	return &Player{
		sampleRate: sampleRate,
		channels:   channels,
		newVoice:   newVoice,
		queue:      newQueue(),
	}
}

func checkFormat(sampleRate, channels int) error {
	if channels < 1 || channels > 2 {
		return fmt.Errorf("%w: got %d", ErrUnsupportedChannels, channels)
	}
	if sampleRate <= 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidSampleRate, sampleRate)
	}
	return nil
}

// Play renders m and queues it. It returns once playback has been started;
// use Wait to block until everything queued has been heard.
func (p *Player) Play(m *track.Mixdown) error {
	if int(m.Channels()) != p.channels || int(m.SampleRate()) != p.sampleRate {
		return fmt.Errorf("%w: mixdown %d ch @ %d Hz, player %d ch @ %d Hz",
			ErrFormatMismatch, m.Channels(), m.SampleRate(), p.channels, p.sampleRate)
	}

	data, err := m.Data()
	if err != nil {
		return fmt.Errorf("rendering mixdown: %w", err)
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return ErrClosed
	}

	// a drained queue has lost its reader, so it needs a new voice
	if p.queue.push(audio.NewBufferSource(data, p.sampleRate, p.channels)) {
		v := p.newVoice(p.queue)
		v.Play()
		p.voices = append(p.voices, v)
	}

	return nil
}

// Wait blocks until all queued audio has played or ctx is done.
func (p *Player) Wait(ctx context.Context) error {
	ticker := time.NewTicker(pollInterval)
	defer ticker.Stop()

	for {
		done, err := p.finished()
		if done {
			return err
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
}

func (p *Player) finished() (bool, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	var errs []error
	for _, v := range p.voices {
		if err := v.Err(); err != nil {
			errs = append(errs, err)
		}
	}
	if len(errs) > 0 {
		return true, errors.Join(errs...)
	}

	if !p.queue.isIdle() {
		return false, nil
	}
	for _, v := range p.voices {
		if v.IsPlaying() {
			return false, nil
		}
	}

	return true, nil
}

// Close stops playback and releases the voices. The device itself stays
// open until the process exits.
func (p *Player) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return nil
	}
	p.closed = true

	var errs []error
	for _, v := range p.voices {
		if err := v.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	p.voices = nil

	return errors.Join(errs...)
}
