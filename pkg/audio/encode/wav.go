// ABOUTME: WAV audio encoder
// ABOUTME: Writes int16 clips as RIFF/WAVE via go-audio
package encode

import (
	"fmt"
	"io"

	gaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/sfxkit/respeed-go/pkg/audio"
)

// WAV writes the clip as a 16-bit PCM RIFF/WAVE stream.
func WAV(w io.WriteSeeker, clip *audio.Clip) error {
	if clip.Format.SampleRate <= 0 || clip.Format.Channels <= 0 {
		return fmt.Errorf("wav encode: invalid format %+v", clip.Format)
	}

	enc := wav.NewEncoder(w, clip.Format.SampleRate, 16, clip.Format.Channels, 1)

	data := make([]int, len(clip.Samples))
	for i, s := range clip.Samples {
		data[i] = int(s)
	}
	buf := &gaudio.IntBuffer{
		Format: &gaudio.Format{
			NumChannels: clip.Format.Channels,
			SampleRate:  clip.Format.SampleRate,
		},
		Data:           data,
		SourceBitDepth: 16,
	}

	if err := enc.Write(buf); err != nil {
		return fmt.Errorf("wav encode: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("wav encode: %w", err)
	}
	return nil
}
