// ABOUTME: Audio output using oto library
// ABOUTME: Plays decoded clips through the default device for previewing
package player

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"time"

	"github.com/ebitengine/oto/v3"
	"github.com/sfxkit/respeed-go/pkg/audio"
)

// Output manages preview playback
type Output struct {
	otoCtx *oto.Context
	format audio.Format
	volume int
	muted  bool
	ready  bool
}

// NewOutput creates an audio output
func NewOutput() *Output {
	return &Output{
		volume: 100,
	}
}

// Initialize sets up oto with the specified format
func (o *Output) Initialize(format audio.Format) error {
	op := &oto.NewContextOptions{
		SampleRate:   format.SampleRate,
		ChannelCount: format.Channels,
		Format:       oto.FormatSignedInt16LE,
	}

	ctx, readyChan, err := oto.NewContext(op)
	if err != nil {
		return fmt.Errorf("failed to create oto context: %w", err)
	}

	<-readyChan

	o.otoCtx = ctx
	o.format = format
	o.ready = true

	log.Printf("Audio output initialized: %dHz, %d channels",
		format.SampleRate, format.Channels)

	return nil
}

// Play plays a clip to completion. The clip's format must match the format
// passed to Initialize. Cancel the context to stop early.
func (o *Output) Play(ctx context.Context, clip *audio.Clip) error {
	if !o.ready {
		return fmt.Errorf("output not initialized")
	}
	if clip.Format.SampleRate != o.format.SampleRate || clip.Format.Channels != o.format.Channels {
		return fmt.Errorf("clip format %+v does not match output format %+v", clip.Format, o.format)
	}

	samples := applyVolume(clip.Samples, o.volume, o.muted)
	data := (&audio.Clip{Format: clip.Format, Samples: samples}).Bytes()

	p := o.otoCtx.NewPlayer(bytes.NewReader(data))
	defer func() { _ = p.Close() }()
	p.Play()

	for p.IsPlaying() {
		select {
		case <-ctx.Done():
			p.Pause()
			return ctx.Err()
		case <-time.After(10 * time.Millisecond):
		}
	}

	return nil
}

// SetVolume sets the volume (0-100)
func (o *Output) SetVolume(volume int) {
	if volume < 0 {
		volume = 0
	}
	if volume > 100 {
		volume = 100
	}
	o.volume = volume
}

// SetMuted sets mute state
func (o *Output) SetMuted(muted bool) {
	o.muted = muted
}

// Close suspends the audio output
func (o *Output) Close() {
	if o.otoCtx != nil {
		_ = o.otoCtx.Suspend()
		o.ready = false
	}
}

// applyVolume applies volume and mute to samples
func applyVolume(samples []int16, volume int, muted bool) []int16 {
	multiplier := getVolumeMultiplier(volume, muted)

	result := make([]int16, len(samples))
	for i, sample := range samples {
		result[i] = int16(float64(sample) * multiplier)
	}

	return result
}

// getVolumeMultiplier calculates volume multiplier
func getVolumeMultiplier(volume int, muted bool) float64 {
	if muted {
		return 0.0
	}
	return float64(volume) / 100.0
}
