// ABOUTME: Audio decoder package for multiple container formats
// ABOUTME: Decodes WAV, MP3, and FLAC natively, m4a/ogg via ffmpeg
// Package decode turns audio files into PCM clips.
//
// WAV, MP3, and FLAC are decoded natively (go-audio/wav, hajimehoshi/go-mp3,
// mewkiz/flac). Formats without a pure-Go decoder (m4a, ogg) fall back to an
// ffmpeg subprocess that emits 16-bit PCM at the file's native sample rate.
//
// All decoders output interleaved int16 samples; higher bit depths are
// truncated to 16 bits.
//
// Example:
//
//	clip, err := decode.New().File("chime.wav")
package decode
