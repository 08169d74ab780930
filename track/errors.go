// SPDX-License-Identifier: EPL-2.0

package track

import (
	"errors"
	"fmt"
)

// ErrIndexOutOfRange matches every *IndexError through errors.Is.
var ErrIndexOutOfRange = errors.New("index out of range")

// IndexError reports a channel index outside [0, Len).
type IndexError struct {
	Index int
	Len   int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("index %d out of bounds (len = %d)", e.Index, e.Len)
}

func (e *IndexError) Is(target error) bool {
	return target == ErrIndexOutOfRange
}
