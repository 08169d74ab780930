// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"
)

// ReadAll drains src and returns every interleaved sample it produced.
// Reaching io.EOF is not an error.
func ReadAll(src Source) ([]float32, error) {
	size := src.BufSize()
	if size <= 0 {
		size = 4096
	}
	if ch := src.Channels(); ch > 1 {
		// keep reads frame aligned
		size = max(size/ch, 1) * ch
	}

	buf := make([]float32, size)
	var out []float32

	for {
		n, err := src.ReadSamples(buf)
		if n > 0 {
			out = append(out, buf[:n]...)
		}

		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading samples: %w", err)
		}
		if n == 0 {
			// a source that makes no progress without reporting EOF is done
			break
		}
	}

	if out == nil {
		out = []float32{}
	}

	return out, nil
}

// ReadMono drains src, averaging multi-channel frames down to one channel.
func ReadMono(src Source) ([]float32, error) {
	return ReadAll(NewMonoMixer(src))
}
