// ABOUTME: Audio fundamentals package providing core types and utilities
// ABOUTME: Defines Format, Clip types and the respeed operation
// Package audio provides the core types for sample-rate reinterpretation.
//
// This package defines the types used throughout the respeed tool:
//   - Format: PCM layout of a decoded file (sample rate, channels, bit depth)
//   - Clip: a fully decoded file as interleaved int16 samples
//
// The central operation is Respeed, which constructs a new clip view over the
// same sample data tagged with an adjusted sample rate. This is a
// reinterpretation, not resampling: playback speed and pitch shift together,
// which is the intended effect.
//
// Example:
//
//	clip, _ := decode.New().File("chime.wav") // 44100 Hz
//	faster, _ := audio.Respeed(clip, 1.15)    // same samples, 50715 Hz
package audio
