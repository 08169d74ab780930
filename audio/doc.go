// SPDX-License-Identifier: EPL-2.0

// Package audio provides the streaming primitives shared by the container
// decoders and the playback sink.
//
// # Source Interface
//
// Every decoder in formats/ produces a Source:
//
//	type Source interface {
//	    SampleRate() int
//	    Channels() int
//	    ReadSamples(dst []float32) (int, error)
//	    BufSize() int
//	    Close() error
//	}
//
// Samples are interleaved float32. Integer PCM is scaled by a fixed 16-bit
// reference (see utils.Int16Max), so samples from deeper formats may exceed
// [-1, 1]; the rendering pipeline normalizes later.
//
// # Loading a whole stream
//
// Sampled instruments keep their waveform in memory, so streams are drained
// once with ReadAll, or with ReadMono to fold channels together:
//
//	src, _ := wav.Decoder{}.Decode(file)
//	mono, err := audio.ReadMono(src)
//
// # Channel Mixing
//
// MonoMixer converts multi-channel audio to mono by averaging:
//
//	mono := audio.NewMonoMixer(source)
//
// # Format Registry
//
// The registry maps file extensions to decoders:
//
//	registry := audio.NewRegistry()
//	registry.Register("wav", wav.Decoder{})
//	decoder, ok := registry.ForPath("kick.WAV")
//
// # Rendered buffers
//
// BufferSource exposes a finished interleaved buffer as a Source, which is
// how a rendered mixdown reaches the playback sink.
//
// # Error Handling
//
// ReadSamples returns io.EOF when no more data is available, possibly
// together with the last samples:
//
//	for {
//	    n, err := source.ReadSamples(buf)
//	    // use buf[:n]
//	    if err == io.EOF {
//	        break
//	    }
//	    if err != nil {
//	        return err
//	    }
//	}
package audio
