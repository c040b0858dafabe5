// ABOUTME: Encoder dispatch by target extension
// ABOUTME: Routes to the native WAV writer or the ffmpeg pipe
package encode

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/sfxkit/respeed-go/pkg/audio"
)

// Encoder writes clips to audio files. The ffmpeg binary is only invoked
// for formats without a native encoder.
type Encoder struct {
	FFmpegBin string
	Bitrate   string // for lossy codecs
}

// New creates an encoder using ffmpeg from PATH and a 320k lossy bitrate.
func New() *Encoder {
	return &Encoder{FFmpegBin: "ffmpeg", Bitrate: "320k"}
}

// File encodes the clip to path in the format implied by the extension
// (lowercased comparison; the path itself keeps its original case).
func (e *Encoder) File(path string, clip *audio.Clip) error {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".wav":
		f, err := os.Create(path)
		if err != nil {
			return err
		}
		if err := WAV(f, clip); err != nil {
			_ = f.Close()
			return err
		}
		return f.Close()
	case ".mp3", ".m4a", ".ogg", ".flac":
		return e.ffmpegEncode(path, clip)
	default:
		return fmt.Errorf("no encoder for %s", ext)
	}
}
