// SPDX-License-Identifier: EPL-2.0

package playback

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
	"sync"

	"github.com/ik5/scorebx/audio"
)

// queue plays sources one after another as a little endian float32 byte
// stream. Once it has returned io.EOF it is idle until the next push.
type queue struct {
	mu      sync.Mutex
	sources []audio.Source
	buf     []float32
	idle    bool
}

func newQueue() *queue {
	return &queue{idle: true}
}

// push appends src and reports whether the queue was idle, meaning no
// reader is consuming it anymore.
func (q *queue) push(src audio.Source) bool {
	q.mu.Lock()
	defer q.mu.Unlock()

	q.sources = append(q.sources, src)
	wasIdle := q.idle
	q.idle = false

	return wasIdle
}

func (q *queue) isIdle() bool {
	q.mu.Lock()
	defer q.mu.Unlock()

	return q.idle
}

func (q *queue) Read(p []byte) (int, error) {
	q.mu.Lock()
	defer q.mu.Unlock()

	n := 0
	for len(q.sources) > 0 {
		src := q.sources[0]
		ch := src.Channels()

		want := (len(p) - n) / 4 / ch * ch
		if want == 0 {
			break
		}
		if cap(q.buf) < want {
			q.buf = make([]float32, want)
		}
		buf := q.buf[:want]

		k, err := src.ReadSamples(buf)
		for i, s := range buf[:k] {
			binary.LittleEndian.PutUint32(p[n+4*i:], math.Float32bits(s))
		}
		n += 4 * k

		if errors.Is(err, io.EOF) || (k == 0 && err == nil) {
			src.Close()
			q.sources = q.sources[1:]
			continue
		}
		if err != nil {
			return n, fmt.Errorf("reading queued audio: %w", err)
		}
	}

	if n == 0 && len(q.sources) == 0 {
		q.idle = true
		return 0, io.EOF
	}

	return n, nil
}
