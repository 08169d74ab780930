// SPDX-License-Identifier: EPL-2.0

package track

import (
	"fmt"
	"io"

	"github.com/ik5/scorebx/formats/wav"
	"github.com/ik5/scorebx/utils"
)

// Mixdown sums instrument tracks into a fixed number of output channels.
type Mixdown struct {
	channels   uint16
	sampleRate uint32
	tracks     [][]*InstrumentTrack
}

func NewMixdown(channels uint16, sampleRate uint32) *Mixdown {
	return &Mixdown{
		channels:   channels,
		sampleRate: sampleRate,
		tracks:     make([][]*InstrumentTrack, channels),
	}
}

func (m *Mixdown) Channels() uint16   { return m.channels }
func (m *Mixdown) SampleRate() uint32 { return m.sampleRate }

func (m *Mixdown) checkChannel(ch int) error {
	if ch < 0 || ch >= len(m.tracks) {
		return &IndexError{Index: ch, Len: int(m.channels)}
	}
	return nil
}

// AddTrack registers t on channel ch.
func (m *Mixdown) AddTrack(ch int, t *InstrumentTrack) error {
	if err := m.checkChannel(ch); err != nil {
		return err
	}

	m.tracks[ch] = append(m.tracks[ch], t)
	return nil
}

// Tracks is the number of tracks on channel ch, 0 for an invalid index.
func (m *Mixdown) Tracks(ch int) int {
	if m.checkChannel(ch) != nil {
		return 0
	}
	return len(m.tracks[ch])
}

// ChannelData renders channel ch. Every track is resampled to the output
// rate from its raw samples and summed; shorter tracks are padded with
// silence. The sum is normalized to the loudest track volume on the channel.
func (m *Mixdown) ChannelData(ch int) ([]float32, error) {
	if err := m.checkChannel(ch); err != nil {
		return nil, err
	}

	var volume float32
	resampled := make([][]float32, 0, len(m.tracks[ch]))
	length := 0
	for _, t := range m.tracks[ch] {
		data := utils.ResampleRate(t.data, t.sampleRate, m.sampleRate)
		resampled = append(resampled, data)

		volume = max(volume, t.volume)
		length = max(length, len(data))
	}

	sum := make([]float32, length)
	for _, data := range resampled {
		utils.Mix(sum, data)
	}

	return utils.Normalize(sum, volume), nil
}

// Data renders every channel and interleaves them, channel c of frame i at
// index Channels()*i + c. Channels shorter than the longest are padded with
// silence. The first channel error aborts the render.
func (m *Mixdown) Data() ([]float32, error) {
	channels := int(m.channels)
	perChannel := make([][]float32, channels)
	length := 0

	for ch := range channels {
		data, err := m.ChannelData(ch)
		if err != nil {
			return nil, fmt.Errorf("rendering channel %d: %w", ch, err)
		}
		perChannel[ch] = data
		length = max(length, len(data))
	}

	out := make([]float32, length*channels)
	for c, data := range perChannel {
		for i, s := range data {
			out[channels*i+c] = s
		}
	}

	return out, nil
}

// WriteWAV renders the mixdown and writes it as a 32-bit float WAV.
func (m *Mixdown) WriteWAV(ws io.WriteSeeker) error {
	data, err := m.Data()
	if err != nil {
		return err
	}

	return wav.WriteFloat32(ws, int(m.channels), int(m.sampleRate), data)
}

// WritePCM16 renders the mixdown and writes it as a 16-bit PCM WAV.
func (m *Mixdown) WritePCM16(ws io.WriteSeeker) error {
	data, err := m.Data()
	if err != nil {
		return err
	}

	return wav.WritePCM16(ws, int(m.channels), int(m.sampleRate), data)
}
