// SPDX-License-Identifier: EPL-2.0

package score

import "errors"

var (
	// ErrInvalidScore wraps every parse and validation failure.
	ErrInvalidScore = errors.New("invalid score")

	ErrNoChannels        = errors.New("score needs at least one channel")
	ErrInvalidSampleRate = errors.New("sample rate must be positive")
	ErrInvalidBPM        = errors.New("bpm must be positive")
	ErrInvalidLength     = errors.New("note length must not be negative")
	ErrUnknownFormat     = errors.New("unknown score format")
)
