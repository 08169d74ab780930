// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"io"

	"github.com/go-audio/riff"
)

// extensibleFmt is the fmt chunk body of WAVE_FORMAT_EXTENSIBLE up to the
// first field of the sub-format GUID, which carries the real format tag.
type extensibleFmt struct {
	Format        uint16
	NumChannels   uint16
	SampleRate    uint32
	ByteRate      uint32
	BlockAlign    uint16
	BitsPerSample uint16
	ExtraSize     uint16
	ValidBits     uint16
	ChannelMask   uint32
	SubFormat     uint16
}

// extensibleFmtSize is binary.Size(extensibleFmt{}).
const extensibleFmtSize = 26

// subFormat returns the sub-format tag of an extensible fmt chunk, or 0 when
// the file is not extensible. go-audio skips the chunk extension, so the
// chunks are walked here first and rs is put back where it was.
//
// Malformed containers return 0 and no error; the go-audio decoder reports
// those.
func subFormat(rs io.ReadSeeker) (uint16, error) {
	start, err := rs.Seek(0, io.SeekCurrent)
	if err != nil {
		return 0, fmt.Errorf("reading wav data: %w", err)
	}

	tag, found := peekSubFormat(rs)

	if _, err := rs.Seek(start, io.SeekStart); err != nil {
		return 0, fmt.Errorf("rewinding wav data: %w", err)
	}
	if found && tag == 0 {
		return 0, fmt.Errorf("%w: extensible fmt chunk without sub-format", ErrUnsupportedFormat)
	}

	return tag, nil
}

// peekSubFormat reports found when the fmt chunk says extensible.
func peekSubFormat(r io.Reader) (tag uint16, found bool) {
	p := riff.New(r)
	if err := p.ParseHeaders(); err != nil || p.Format != riff.WavFormatID {
		return 0, false
	}

	for {
		ch, err := p.NextChunk()
		if err != nil {
			return 0, false
		}
		if ch.ID != riff.FmtID {
			ch.Drain()
			continue
		}

		if ch.Size < extensibleFmtSize {
			var format uint16
			return 0, ch.ReadLE(&format) == nil && format == formatExtensible
		}

		var hdr extensibleFmt
		if err := ch.ReadLE(&hdr); err != nil || hdr.Format != formatExtensible {
			return 0, false
		}

		return hdr.SubFormat, true
	}
}
