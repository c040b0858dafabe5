// ABOUTME: ffmpeg encoder for lossy formats and flac
// ABOUTME: Feeds raw s16le PCM over stdin, codec chosen from the extension
package encode

import (
	"bytes"
	"fmt"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/sfxkit/respeed-go/pkg/audio"
)

// ffmpegEncode pipes the clip's PCM into ffmpeg and writes the target file.
// The -ar argument carries the clip's (possibly reinterpreted) sample rate.
func (e *Encoder) ffmpegEncode(path string, clip *audio.Clip) error {
	args := []string{
		"-y",
		"-f", "s16le",
		"-ar", strconv.Itoa(clip.Format.SampleRate),
		"-ac", strconv.Itoa(clip.Format.Channels),
		"-i", "pipe:0",
		"-vn",
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".mp3":
		args = append(args, "-c:a", "libmp3lame", "-b:a", e.Bitrate)
	case ".m4a", ".aac":
		args = append(args, "-c:a", "aac", "-b:a", e.Bitrate)
	case ".ogg":
		args = append(args, "-c:a", "libvorbis", "-b:a", e.Bitrate)
	case ".flac":
		args = append(args, "-c:a", "flac")
	default:
		args = append(args, "-c:a", "pcm_s16le")
	}
	args = append(args, "-loglevel", "error", path)

	cmd := exec.Command(e.FFmpegBin, args...)
	cmd.Stdin = bytes.NewReader(clip.Bytes())
	var errbuf bytes.Buffer
	cmd.Stderr = &errbuf
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("ffmpeg encode %s: %v: %s", path, err, errbuf.String())
	}
	return nil
}
