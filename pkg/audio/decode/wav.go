// ABOUTME: WAV audio decoder
// ABOUTME: Decodes RIFF/WAVE files to int16 clips via go-audio
package decode

import (
	"fmt"
	"io"

	"github.com/go-audio/wav"
	"github.com/sfxkit/respeed-go/pkg/audio"
)

// WAV decodes a RIFF/WAVE stream.
func WAV(r io.ReadSeeker) (*audio.Clip, error) {
	dec := wav.NewDecoder(r)
	if !dec.IsValidFile() {
		return nil, fmt.Errorf("not a valid wav file")
	}

	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, fmt.Errorf("wav decode: %w", err)
	}
	if buf.Format == nil || buf.Format.NumChannels == 0 || buf.Format.SampleRate == 0 {
		return nil, fmt.Errorf("wav decode: missing format header")
	}

	bitDepth := buf.SourceBitDepth
	if bitDepth == 0 {
		bitDepth = int(dec.BitDepth)
	}

	samples := make([]int16, len(buf.Data))
	for i, sample := range buf.Data {
		if bitDepth == 8 {
			// 8-bit WAV is unsigned
			samples[i] = int16(sample-128) << 8
		} else {
			samples[i] = scaleToInt16(sample, bitDepth)
		}
	}

	return &audio.Clip{
		Format: audio.Format{
			SampleRate: buf.Format.SampleRate,
			Channels:   buf.Format.NumChannels,
			BitDepth:   16,
		},
		Samples: samples,
	}, nil
}
