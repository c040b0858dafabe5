// ABOUTME: MP3 audio decoder
// ABOUTME: Decodes MP3 streams to int16 clips via go-mp3
package decode

import (
	"fmt"
	"io"

	mp3 "github.com/hajimehoshi/go-mp3"
	"github.com/sfxkit/respeed-go/pkg/audio"
)

// MP3 decodes an MP3 stream. go-mp3 always emits 16-bit stereo PCM at the
// file's sample rate.
func MP3(r io.Reader) (*audio.Clip, error) {
	dec, err := mp3.NewDecoder(r)
	if err != nil {
		return nil, fmt.Errorf("mp3 decode: %w", err)
	}

	data, err := io.ReadAll(dec)
	if err != nil {
		return nil, fmt.Errorf("mp3 decode: %w", err)
	}

	return &audio.Clip{
		Format: audio.Format{
			SampleRate: dec.SampleRate(),
			Channels:   2,
			BitDepth:   16,
		},
		Samples: audio.SamplesFromBytes(data),
	}, nil
}
