// ABOUTME: Tests for the FLAC decoder
// ABOUTME: Tests rejection of invalid streams
package decode

import (
	"bytes"
	"testing"
)

func TestFLACRejectsGarbage(t *testing.T) {
	if _, err := FLAC(bytes.NewReader([]byte("not a flac stream"))); err == nil {
		t.Error("expected error for non-flac input")
	}
}

func TestFLACRejectsEmpty(t *testing.T) {
	if _, err := FLAC(bytes.NewReader(nil)); err == nil {
		t.Error("expected error for empty input")
	}
}
