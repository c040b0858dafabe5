// ABOUTME: Entry point for the preview player
// ABOUTME: Decodes a file, optionally respeeds it, and plays it through speakers
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/sfxkit/respeed-go/internal/player"
	"github.com/sfxkit/respeed-go/internal/version"
	"github.com/sfxkit/respeed-go/pkg/audio"
	"github.com/sfxkit/respeed-go/pkg/audio/decode"
)

var (
	factor     = flag.Float64("factor", 1.0, "Preview at this speed multiplier without writing anything")
	ffmpegBin  = flag.String("ffmpeg", "ffmpeg", "Path to ffmpeg")
	ffprobeBin = flag.String("ffprobe", "ffprobe", "Path to ffprobe")
	volume     = flag.Int("volume", 100, "Playback volume (0-100)")
)

func main() {
	flag.Parse()
	if flag.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "usage: respeed-preview [flags] <audio-file>\n")
		flag.PrintDefaults()
		os.Exit(2)
	}
	path := flag.Arg(0)

	log.Printf("%s preview %s", version.Product, version.Version)

	dec := decode.New()
	dec.FFmpegBin = *ffmpegBin
	dec.FFprobeBin = *ffprobeBin

	clip, err := dec.File(path)
	if err != nil {
		log.Fatalf("decode %s: %v", path, err)
	}

	if *factor != 1.0 {
		clip, err = audio.Respeed(clip, *factor)
		if err != nil {
			log.Fatalf("%v", err)
		}
	}

	log.Printf("Playing %s: %dHz, %d channels, %.2fs",
		path, clip.Format.SampleRate, clip.Format.Channels, clip.Duration().Seconds())

	out := player.NewOutput()
	if err := out.Initialize(clip.Format); err != nil {
		log.Fatalf("audio output: %v", err)
	}
	defer out.Close()
	out.SetVolume(*volume)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := out.Play(ctx, clip); err != nil {
		log.Fatalf("playback: %v", err)
	}
}
