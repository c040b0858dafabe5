// ABOUTME: Audio encoder package for multiple container formats
// ABOUTME: Encodes WAV natively, mp3/m4a/ogg/flac via ffmpeg
// Package encode writes PCM clips back out as audio files.
//
// The output format is chosen from the target path's extension. WAV is
// written natively (go-audio/wav); every other recognized format is piped
// through ffmpeg as raw s16le PCM, so the sample rate declared on the clip
// is exactly what ends up in the output header.
package encode
