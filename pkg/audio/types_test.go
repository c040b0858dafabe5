// ABOUTME: Tests for audio types
// ABOUTME: Tests sample-rate reinterpretation and byte conversions
package audio

import (
	"testing"
	"time"
)

func TestWithSampleRate(t *testing.T) {
	clip := &Clip{
		Format:  Format{SampleRate: 44100, Channels: 2, BitDepth: 16},
		Samples: []int16{1, 2, 3, 4},
	}

	out := clip.WithSampleRate(50715)

	if out.Format.SampleRate != 50715 {
		t.Errorf("expected rate 50715, got %d", out.Format.SampleRate)
	}
	if out.Format.Channels != 2 || out.Format.BitDepth != 16 {
		t.Errorf("format fields changed: %+v", out.Format)
	}
	if &out.Samples[0] != &clip.Samples[0] {
		t.Error("samples should be shared, not copied")
	}
	if clip.Format.SampleRate != 44100 {
		t.Error("original clip mutated")
	}
}

func TestRespeed(t *testing.T) {
	tests := []struct {
		name     string
		rate     int
		factor   float64
		expected int
	}{
		{"default factor", 44100, 1.15, 50715},
		{"identity", 44100, 1.0, 44100},
		{"slow down", 48000, 0.5, 24000},
		{"speed up 2x", 22050, 2.0, 44100},
		{"rounds to nearest", 44100, 1.3, 57330},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clip := &Clip{Format: Format{SampleRate: tt.rate, Channels: 1, BitDepth: 16}}
			out, err := Respeed(clip, tt.factor)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if out.Format.SampleRate != tt.expected {
				t.Errorf("expected rate %d, got %d", tt.expected, out.Format.SampleRate)
			}
		})
	}
}

func TestRespeedRejectsNonPositiveFactor(t *testing.T) {
	clip := &Clip{Format: Format{SampleRate: 44100, Channels: 1, BitDepth: 16}}
	for _, factor := range []float64{0, -1.15} {
		if _, err := Respeed(clip, factor); err == nil {
			t.Errorf("factor %g: expected error, got nil", factor)
		}
	}
}

func TestDuration(t *testing.T) {
	// 2 seconds of stereo at 44.1kHz
	clip := &Clip{
		Format:  Format{SampleRate: 44100, Channels: 2, BitDepth: 16},
		Samples: make([]int16, 44100*2*2),
	}
	if clip.Duration() != 2*time.Second {
		t.Errorf("expected 2s, got %v", clip.Duration())
	}

	// Reinterpreted at 1.15x the duration shrinks by the same factor
	faster, err := Respeed(clip, 1.15)
	if err != nil {
		t.Fatal(err)
	}
	factor := 1.15
	want := time.Duration(float64(2*time.Second) / factor)
	got := faster.Duration()
	if diff := got - want; diff > time.Millisecond || diff < -time.Millisecond {
		t.Errorf("expected ~%v, got %v", want, got)
	}
}

func TestFrames(t *testing.T) {
	clip := &Clip{
		Format:  Format{SampleRate: 44100, Channels: 2, BitDepth: 16},
		Samples: []int16{1, 2, 3, 4, 5, 6},
	}
	if clip.Frames() != 3 {
		t.Errorf("expected 3 frames, got %d", clip.Frames())
	}
}

func TestBytesRoundTrip(t *testing.T) {
	clip := &Clip{
		Format:  Format{SampleRate: 8000, Channels: 1, BitDepth: 16},
		Samples: []int16{0, 100, -100, 32767, -32768},
	}

	data := clip.Bytes()
	if len(data) != len(clip.Samples)*2 {
		t.Fatalf("expected %d bytes, got %d", len(clip.Samples)*2, len(data))
	}

	back := SamplesFromBytes(data)
	if len(back) != len(clip.Samples) {
		t.Fatalf("expected %d samples, got %d", len(clip.Samples), len(back))
	}
	for i, s := range clip.Samples {
		if back[i] != s {
			t.Errorf("sample %d: expected %d, got %d", i, s, back[i])
		}
	}
}

func TestSamplesFromBytesOddLength(t *testing.T) {
	samples := SamplesFromBytes([]byte{0x01, 0x02, 0x03})
	if len(samples) != 1 {
		t.Errorf("expected 1 sample, got %d", len(samples))
	}
}
