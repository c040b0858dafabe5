// ABOUTME: ffmpeg fallback decoder for formats without a native decoder
// ABOUTME: Probes stream parameters with ffprobe, decodes to s16le PCM
package decode

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os/exec"
	"strconv"

	"github.com/sfxkit/respeed-go/pkg/audio"
)

// probeInfo is the subset of ffprobe output we care about.
type probeInfo struct {
	sampleRate int
	channels   int
}

func (d *Decoder) probe(path string) (probeInfo, error) {
	cmd := exec.Command(d.FFprobeBin,
		"-v", "error",
		"-select_streams", "a:0",
		"-show_streams",
		"-of", "json",
		path,
	)
	var outbuf, errbuf bytes.Buffer
	cmd.Stdout = &outbuf
	cmd.Stderr = &errbuf
	if err := cmd.Run(); err != nil {
		return probeInfo{}, fmt.Errorf("ffprobe: %v: %s", err, errbuf.String())
	}

	var ff struct {
		Streams []struct {
			CodecType  string `json:"codec_type"`
			SampleRate string `json:"sample_rate"`
			Channels   int    `json:"channels"`
		} `json:"streams"`
	}
	if err := json.Unmarshal(outbuf.Bytes(), &ff); err != nil {
		return probeInfo{}, fmt.Errorf("ffprobe output: %w", err)
	}

	for _, s := range ff.Streams {
		if s.CodecType != "audio" {
			continue
		}
		rate, err := strconv.Atoi(s.SampleRate)
		if err != nil || rate <= 0 || s.Channels <= 0 {
			break
		}
		return probeInfo{sampleRate: rate, channels: s.Channels}, nil
	}
	return probeInfo{}, fmt.Errorf("no usable audio stream in %s", path)
}

// ffmpegDecode decodes any ffmpeg-readable file to PCM at its native sample
// rate and channel count.
func (d *Decoder) ffmpegDecode(path string) (*audio.Clip, error) {
	info, err := d.probe(path)
	if err != nil {
		return nil, err
	}

	cmd := exec.Command(d.FFmpegBin,
		"-i", path,
		"-f", "s16le",
		"-acodec", "pcm_s16le",
		"-ar", strconv.Itoa(info.sampleRate),
		"-ac", strconv.Itoa(info.channels),
		"-loglevel", "error",
		"pipe:1",
	)
	var outbuf, errbuf bytes.Buffer
	cmd.Stdout = &outbuf
	cmd.Stderr = &errbuf
	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("ffmpeg decode %s: %v: %s", path, err, errbuf.String())
	}

	return &audio.Clip{
		Format: audio.Format{
			SampleRate: info.sampleRate,
			Channels:   info.channels,
			BitDepth:   16,
		},
		Samples: audio.SamplesFromBytes(outbuf.Bytes()),
	}, nil
}
