// SPDX-License-Identifier: EPL-2.0

package source

import "errors"

var (
	ErrUnknownKind       = errors.New("unknown sound source kind")
	ErrEmptyPath         = errors.New("sampler source needs a file path")
	ErrUnsupportedFormat = errors.New("unsupported sample file format")
	ErrInvalidSampleRate = errors.New("sample file has no valid sample rate")
)
