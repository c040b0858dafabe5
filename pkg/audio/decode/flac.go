// ABOUTME: FLAC audio decoder
// ABOUTME: Decodes FLAC streams frame by frame via mewkiz/flac
package decode

import (
	"errors"
	"fmt"
	"io"

	"github.com/mewkiz/flac"
	"github.com/sfxkit/respeed-go/pkg/audio"
)

// FLAC decodes a FLAC stream.
func FLAC(r io.Reader) (*audio.Clip, error) {
	stream, err := flac.New(r)
	if err != nil {
		return nil, fmt.Errorf("flac decode: %w", err)
	}
	defer func() { _ = stream.Close() }()

	info := stream.Info
	channels := int(info.NChannels)
	bitDepth := int(info.BitsPerSample)
	if channels == 0 {
		return nil, fmt.Errorf("flac decode: zero channels in stream info")
	}

	var samples []int16
	if info.NSamples > 0 {
		samples = make([]int16, 0, int(info.NSamples)*channels)
	}

	for {
		frame, err := stream.ParseNext()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("flac decode: %w", err)
		}
		if len(frame.Subframes) != channels {
			return nil, fmt.Errorf("flac decode: frame has %d subframes, expected %d", len(frame.Subframes), channels)
		}

		// Subframes hold one channel each; interleave them.
		n := len(frame.Subframes[0].Samples)
		for i := 0; i < n; i++ {
			for ch := 0; ch < channels; ch++ {
				samples = append(samples, scaleToInt16(int(frame.Subframes[ch].Samples[i]), bitDepth))
			}
		}
	}

	return &audio.Clip{
		Format: audio.Format{
			SampleRate: int(info.SampleRate),
			Channels:   channels,
			BitDepth:   16,
		},
		Samples: samples,
	}, nil
}
