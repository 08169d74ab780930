// SPDX-License-Identifier: EPL-2.0

package playback

import "errors"

var (
	// ErrUnsupportedChannels is returned for anything but mono or stereo,
	// the only layouts the audio device accepts.
	ErrUnsupportedChannels = errors.New("playback supports 1 or 2 channels")
	ErrInvalidSampleRate   = errors.New("playback sample rate must be positive")
	// ErrFormatMismatch is returned by Play for a mixdown whose channel
	// count or sample rate differs from the player's.
	ErrFormatMismatch = errors.New("mixdown format does not match player")
	ErrClosed         = errors.New("player is closed")
)
