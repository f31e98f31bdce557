// Package adapter lets an AudioPlayer, which only plays mp3 natively, play
// vlc and mp4 files through an AdvancedMediaPlayer hidden behind a MediaAdapter.
package adapter

import (
	"fmt"
	"io"
)

// Audio types understood by AudioPlayer.
const (
	TypeMP3 = "mp3"
	TypeVLC = "vlc"
	TypeMP4 = "mp4"
)

// MediaPlayer is the interface clients use.
type MediaPlayer interface {
	Play(audioType, fileName string)
}

// AdvancedMediaPlayer has its own, incompatible API.
type AdvancedMediaPlayer struct {
	out io.Writer
}

func (p AdvancedMediaPlayer) PlayVLC(fileName string) {
	_, _ = fmt.Fprintf(p.out, "Playing VLC file: %s\n", fileName)
}

func (p AdvancedMediaPlayer) PlayMP4(fileName string) {
	_, _ = fmt.Fprintf(p.out, "Playing MP4 file: %s\n", fileName)
}

// MediaAdapter exposes an AdvancedMediaPlayer as a MediaPlayer.
// It owns its player by value; nothing outlives the adapter.
type MediaAdapter struct {
	advanced AdvancedMediaPlayer
}

// NewMediaAdapter returns an adapter writing to out.
func NewMediaAdapter(out io.Writer) MediaAdapter {
	return MediaAdapter{advanced: AdvancedMediaPlayer{out: out}}
}

// Play implements MediaPlayer.
func (a MediaAdapter) Play(audioType, fileName string) {
	switch audioType {
	case TypeVLC:
		a.advanced.PlayVLC(fileName)
	case TypeMP4:
		a.advanced.PlayMP4(fileName)
	default:
		_, _ = fmt.Fprintf(a.advanced.out, "Unsupported format: %s\n", audioType)
	}
}

// AudioPlayer plays mp3 itself and delegates vlc/mp4 to a per-call adapter.
type AudioPlayer struct {
	out io.Writer
}

// NewAudioPlayer returns a player writing to out.
func NewAudioPlayer(out io.Writer) *AudioPlayer { return &AudioPlayer{out: out} }

// Play implements MediaPlayer.
func (p *AudioPlayer) Play(audioType, fileName string) {
	switch audioType {
	case TypeMP3:
		_, _ = fmt.Fprintf(p.out, "Playing MP3 file: %s\n", fileName)
	case TypeVLC, TypeMP4:
		NewMediaAdapter(p.out).Play(audioType, fileName)
	default:
		_, _ = fmt.Fprintf(p.out, "Unsupported audio type: %s\n", audioType)
	}
}

var (
	_ MediaPlayer = MediaAdapter{}
	_ MediaPlayer = (*AudioPlayer)(nil)
)
