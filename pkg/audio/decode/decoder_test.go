// ABOUTME: Tests for decoder dispatch
// ABOUTME: Tests extension recognition and unsupported-format errors
package decode

import (
	"errors"
	"testing"
)

func TestSupported(t *testing.T) {
	tests := []struct {
		path     string
		expected bool
	}{
		{"chime.wav", true},
		{"chime.mp3", true},
		{"chime.m4a", true},
		{"chime.ogg", true},
		{"chime.flac", true},
		{"CHIME.WAV", true}, // extension match is case-insensitive
		{"chime.Mp3", true},
		{"notes.txt", false},
		{"archive.tar.gz", false},
		{"noext", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			if got := Supported(tt.path); got != tt.expected {
				t.Errorf("Supported(%q) = %v, expected %v", tt.path, got, tt.expected)
			}
		})
	}
}

func TestFileUnsupportedExtension(t *testing.T) {
	_, err := New().File("document.pdf")
	if !errors.Is(err, ErrUnsupported) {
		t.Errorf("expected ErrUnsupported, got %v", err)
	}
}

func TestScaleToInt16(t *testing.T) {
	tests := []struct {
		name     string
		sample   int
		bitDepth int
		expected int16
	}{
		{"16-bit passthrough", 1000, 16, 1000},
		{"16-bit negative", -1000, 16, -1000},
		{"24-bit max", 8388607, 24, 32767},
		{"24-bit min", -8388608, 24, -32768},
		{"24-bit mid", 1 << 15, 24, 1 << 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := scaleToInt16(tt.sample, tt.bitDepth); got != tt.expected {
				t.Errorf("expected %d, got %d", tt.expected, got)
			}
		})
	}
}
