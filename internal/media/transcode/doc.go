// Package transcode invokes ffmpeg to normalize uploaded audio before
// transcription.
package transcode
