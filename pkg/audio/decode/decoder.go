// ABOUTME: Decoder dispatch by file extension
// ABOUTME: Routes to native decoders or the ffmpeg fallback
package decode

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/sfxkit/respeed-go/pkg/audio"
)

// ErrUnsupported is returned for extensions outside the recognized set.
var ErrUnsupported = errors.New("unsupported audio format")

// Extensions is the recognized audio extension set, matched case-insensitively.
var Extensions = map[string]bool{
	".mp3":  true,
	".wav":  true,
	".m4a":  true,
	".ogg":  true,
	".flac": true,
}

// Supported reports whether the path's extension is in the recognized set.
func Supported(path string) bool {
	return Extensions[strings.ToLower(filepath.Ext(path))]
}

// Decoder decodes audio files into clips. The ffmpeg binaries are only
// invoked for formats without a native decoder.
type Decoder struct {
	FFmpegBin  string
	FFprobeBin string
}

// New creates a decoder using ffmpeg/ffprobe from PATH for fallback formats.
func New() *Decoder {
	return &Decoder{FFmpegBin: "ffmpeg", FFprobeBin: "ffprobe"}
}

// File decodes the audio file at path, selecting the decoder from the
// extension (lowercased comparison).
func (d *Decoder) File(path string) (*audio.Clip, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".wav":
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer func() { _ = f.Close() }()
		return WAV(f)
	case ".mp3":
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer func() { _ = f.Close() }()
		return MP3(f)
	case ".flac":
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer func() { _ = f.Close() }()
		return FLAC(f)
	case ".m4a", ".ogg":
		return d.ffmpegDecode(path)
	default:
		return nil, fmt.Errorf("%s: %w", ext, ErrUnsupported)
	}
}

// scaleToInt16 truncates a sample of the given bit depth to 16 bits.
func scaleToInt16(sample int, bitDepth int) int16 {
	switch {
	case bitDepth > 16:
		return int16(sample >> (bitDepth - 16))
	case bitDepth < 16:
		return int16(sample << (16 - bitDepth))
	default:
		return int16(sample)
	}
}
