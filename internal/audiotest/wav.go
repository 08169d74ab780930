// SPDX-License-Identifier: EPL-2.0

package audiotest

import (
	"bytes"
	"encoding/binary"
	"math"
	"os"
	"path/filepath"
	"testing"
)

// PCMWAV builds a canonical 44-byte-header integer PCM WAV file. samples are
// interleaved and written with bitsPerSample (8, 16, 24 or 32); 8-bit data
// is stored unsigned, as the format requires.
func PCMWAV(sampleRate, channels, bitsPerSample int, samples []int) []byte {
	return riffWAV(fmtChunk(1, sampleRate, channels, bitsPerSample), pcmData(bitsPerSample, samples))
}

// FloatWAV builds an IEEE float (format tag 3) 32-bit WAV file.
func FloatWAV(sampleRate, channels int, samples []float32) []byte {
	return riffWAV(fmtChunk(3, sampleRate, channels, 32), floatData(samples))
}

// ExtensiblePCMWAV is PCMWAV written as WAVE_FORMAT_EXTENSIBLE with the PCM
// sub-format GUID.
func ExtensiblePCMWAV(sampleRate, channels, bitsPerSample int, samples []int) []byte {
	return riffWAV(extensibleChunk(1, sampleRate, channels, bitsPerSample), pcmData(bitsPerSample, samples))
}

// ExtensibleFloatWAV is FloatWAV written as WAVE_FORMAT_EXTENSIBLE with the
// IEEE float sub-format GUID, the layout most DAWs export.
func ExtensibleFloatWAV(sampleRate, channels int, samples []float32) []byte {
	return riffWAV(extensibleChunk(3, sampleRate, channels, 32), floatData(samples))
}

func pcmData(bitsPerSample int, samples []int) []byte {
	data := new(bytes.Buffer)

	for _, s := range samples {
		switch bitsPerSample {
		case 8:
			data.WriteByte(byte(s + 128))
		case 16:
			binary.Write(data, binary.LittleEndian, int16(s))
		case 24:
			u := uint32(int32(s))
			data.Write([]byte{byte(u), byte(u >> 8), byte(u >> 16)})
		case 32:
			binary.Write(data, binary.LittleEndian, int32(s))
		}
	}

	return data.Bytes()
}

func floatData(samples []float32) []byte {
	data := new(bytes.Buffer)
	for _, s := range samples {
		binary.Write(data, binary.LittleEndian, math.Float32bits(s))
	}
	return data.Bytes()
}

// fmtChunk is the 16-byte fmt body shared by every layout.
func fmtChunk(format uint16, sampleRate, channels, bitsPerSample int) []byte {
	bytesPer := bitsPerSample / 8
	buf := new(bytes.Buffer)

	binary.Write(buf, binary.LittleEndian, format)
	binary.Write(buf, binary.LittleEndian, uint16(channels))
	binary.Write(buf, binary.LittleEndian, uint32(sampleRate))
	binary.Write(buf, binary.LittleEndian, uint32(sampleRate*channels*bytesPer))
	binary.Write(buf, binary.LittleEndian, uint16(channels*bytesPer))
	binary.Write(buf, binary.LittleEndian, uint16(bitsPerSample))

	return buf.Bytes()
}

// KSDATAFORMAT_SUBTYPE_* GUID after its leading format tag
var guidTail = []byte{0x00, 0x00, 0x00, 0x00, 0x10, 0x00, 0x80, 0x00, 0x00, 0xAA, 0x00, 0x38, 0x9B, 0x71}

// extensibleChunk is the 40-byte fmt body of WAVE_FORMAT_EXTENSIBLE.
func extensibleChunk(subFormat uint16, sampleRate, channels, bitsPerSample int) []byte {
	buf := bytes.NewBuffer(fmtChunk(0xFFFE, sampleRate, channels, bitsPerSample))

	binary.Write(buf, binary.LittleEndian, uint16(22))
	binary.Write(buf, binary.LittleEndian, uint16(bitsPerSample))
	binary.Write(buf, binary.LittleEndian, uint32(0))
	binary.Write(buf, binary.LittleEndian, subFormat)
	buf.Write(guidTail)

	return buf.Bytes()
}

func riffWAV(fmtBody, data []byte) []byte {
	buf := new(bytes.Buffer)

	buf.WriteString("RIFF")
	binary.Write(buf, binary.LittleEndian, uint32(4+8+len(fmtBody)+8+len(data)))
	buf.WriteString("WAVE")

	buf.WriteString("fmt ")
	binary.Write(buf, binary.LittleEndian, uint32(len(fmtBody)))
	buf.Write(fmtBody)

	buf.WriteString("data")
	binary.Write(buf, binary.LittleEndian, uint32(len(data)))
	buf.Write(data)

	return buf.Bytes()
}

// WriteFile stores data under t.TempDir() and returns the path.
func WriteFile(t testing.TB, name string, data []byte) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("writing fixture %s: %v", name, err)
	}

	return path
}
