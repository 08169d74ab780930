// SPDX-License-Identifier: EPL-2.0

package wav

import "errors"

var (
	ErrNotWavFile          = errors.New("not a WAV file")
	ErrUnsupportedFormat   = errors.New("unsupported WAV sample format")
	ErrUnsupportedBitDepth = errors.New("unsupported WAV bit depth")

	// ErrInvalidChannels is returned by the writers for a channel count below one.
	ErrInvalidChannels = errors.New("channel count must be at least 1")
	// ErrPartialFrame is returned by the writers when len(samples) is not a
	// multiple of the channel count.
	ErrPartialFrame = errors.New("samples do not form whole frames")
)
