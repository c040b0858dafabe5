// ABOUTME: Audio type definitions
// ABOUTME: Defines formats, decoded clips, and sample-rate reinterpretation
package audio

import (
	"encoding/binary"
	"fmt"
	"math"
	"time"
)

// Format describes the PCM layout of a decoded clip.
type Format struct {
	SampleRate int
	Channels   int
	BitDepth   int
}

// Clip is a fully decoded audio file: interleaved 16-bit PCM plus its format.
type Clip struct {
	Format  Format
	Samples []int16 // interleaved, Channels samples per frame
}

// Frames returns the number of sample frames in the clip.
func (c *Clip) Frames() int {
	if c.Format.Channels == 0 {
		return 0
	}
	return len(c.Samples) / c.Format.Channels
}

// Duration returns the playback duration at the clip's declared sample rate.
func (c *Clip) Duration() time.Duration {
	if c.Format.SampleRate == 0 {
		return 0
	}
	seconds := float64(c.Frames()) / float64(c.Format.SampleRate)
	return time.Duration(seconds * float64(time.Second))
}

// WithSampleRate returns a clip view over the same sample data tagged with a
// different sample rate. The samples are not resampled, so playing the result
// shifts speed and pitch together.
func (c *Clip) WithSampleRate(rate int) *Clip {
	return &Clip{
		Format: Format{
			SampleRate: rate,
			Channels:   c.Format.Channels,
			BitDepth:   c.Format.BitDepth,
		},
		Samples: c.Samples,
	}
}

// Respeed reinterprets the clip's samples at rate × factor (rounded to the
// nearest Hz). Factor > 1 speeds playback up and raises pitch; factor < 1
// slows it down and lowers pitch. The sample data itself is never touched.
func Respeed(c *Clip, factor float64) (*Clip, error) {
	if factor <= 0 {
		return nil, fmt.Errorf("speed factor must be positive, got %g", factor)
	}
	newRate := int(math.Round(float64(c.Format.SampleRate) * factor))
	if newRate < 1 {
		return nil, fmt.Errorf("factor %g collapses sample rate %d to zero", factor, c.Format.SampleRate)
	}
	return c.WithSampleRate(newRate), nil
}

// Bytes returns the clip's samples as little-endian 16-bit PCM.
func (c *Clip) Bytes() []byte {
	out := make([]byte, len(c.Samples)*2)
	for i, sample := range c.Samples {
		binary.LittleEndian.PutUint16(out[i*2:], uint16(sample))
	}
	return out
}

// SamplesFromBytes converts little-endian 16-bit PCM bytes to samples.
// A trailing odd byte is ignored.
func SamplesFromBytes(data []byte) []int16 {
	samples := make([]int16, len(data)/2)
	for i := range samples {
		samples[i] = int16(binary.LittleEndian.Uint16(data[i*2:]))
	}
	return samples
}
