// ABOUTME: Tests for the WAV decoder
// ABOUTME: Round-trips a synthetic clip through the WAV encoder
package decode

import (
	"bytes"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/sfxkit/respeed-go/pkg/audio"
	"github.com/sfxkit/respeed-go/pkg/audio/encode"
)

// sineClip generates a mono test tone.
func sineClip(rate int, seconds float64, freq float64) *audio.Clip {
	n := int(float64(rate) * seconds)
	samples := make([]int16, n)
	for i := range samples {
		samples[i] = int16(10000 * math.Sin(2*math.Pi*freq*float64(i)/float64(rate)))
	}
	return &audio.Clip{
		Format:  audio.Format{SampleRate: rate, Channels: 1, BitDepth: 16},
		Samples: samples,
	}
}

func writeWAV(t *testing.T, path string, clip *audio.Clip) {
	t.Helper()
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer func() { _ = f.Close() }()
	if err := encode.WAV(f, clip); err != nil {
		t.Fatal(err)
	}
}

func TestWAVRoundTrip(t *testing.T) {
	clip := sineClip(44100, 0.1, 440)
	path := filepath.Join(t.TempDir(), "tone.wav")
	writeWAV(t, path, clip)

	got, err := New().File(path)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}

	if got.Format.SampleRate != 44100 {
		t.Errorf("expected rate 44100, got %d", got.Format.SampleRate)
	}
	if got.Format.Channels != 1 {
		t.Errorf("expected 1 channel, got %d", got.Format.Channels)
	}
	if len(got.Samples) != len(clip.Samples) {
		t.Fatalf("expected %d samples, got %d", len(clip.Samples), len(got.Samples))
	}
	for i := range clip.Samples {
		if got.Samples[i] != clip.Samples[i] {
			t.Fatalf("sample %d: expected %d, got %d", i, clip.Samples[i], got.Samples[i])
		}
	}
}

func TestWAVStereoRoundTrip(t *testing.T) {
	clip := &audio.Clip{
		Format:  audio.Format{SampleRate: 22050, Channels: 2, BitDepth: 16},
		Samples: []int16{100, -100, 200, -200, 300, -300},
	}
	path := filepath.Join(t.TempDir(), "stereo.wav")
	writeWAV(t, path, clip)

	got, err := New().File(path)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.Format.Channels != 2 {
		t.Errorf("expected 2 channels, got %d", got.Format.Channels)
	}
	for i := range clip.Samples {
		if got.Samples[i] != clip.Samples[i] {
			t.Fatalf("sample %d: expected %d, got %d", i, clip.Samples[i], got.Samples[i])
		}
	}
}

func TestWAVRejectsGarbage(t *testing.T) {
	if _, err := WAV(bytes.NewReader([]byte("definitely not a riff header"))); err == nil {
		t.Error("expected error for non-wav input")
	}
}

func TestWAVRejectsEmpty(t *testing.T) {
	if _, err := WAV(bytes.NewReader(nil)); err == nil {
		t.Error("expected error for empty input")
	}
}
