package tracks

import "fmt"

// CodecKind identifies the audio codec family derived from a manifest group
// id. Only AAC and E-AC-3 groups are supported.
type CodecKind string

const (
	CodecAAC  CodecKind = "aac"
	CodecEAC3 CodecKind = "eac3"
)

// Ext returns the container extension for downloaded audio of this codec.
func (c CodecKind) Ext() string {
	return string(c)
}

// SubtitleTrack is a classified subtitle alternative. FileName keeps the
// entry's ordinal among all manifest media entries so files remain traceable
// back to the manifest.
type SubtitleTrack struct {
	URI      string
	Name     string
	Language string
	Default  bool
	FileName string
}

// AudioTrack is a classified audio alternative. Characteristics is nil when
// the manifest declared none; Default is true only for the plain stereo
// English track.
type AudioTrack struct {
	URI             string
	Name            string
	Language        string
	GroupID         string
	Characteristics []string
	Default         bool
	Codec           CodecKind
	FileName        string
}

// VideoTrack is one operator-selected rendition. Primary marks the first
// selection; FileName carries the operator-supplied catalog index, not a
// re-enumeration.
type VideoTrack struct {
	URI        string
	CodecLabel string
	Primary    bool
	FileName   string
}

// Classification bundles the ordered subtitle and audio track lists produced
// from a manifest's media entries.
type Classification struct {
	Subtitles []SubtitleTrack
	Audio     []AudioTrack
}

func subtitleFileName(ordinal int) string {
	return fmt.Sprintf("subtitle_%d.vtt", ordinal)
}

func audioFileName(ordinal int, codec CodecKind) string {
	return fmt.Sprintf("audio_%d.%s", ordinal, codec.Ext())
}

func videoFileName(index int) string {
	return fmt.Sprintf("video_%d.ts", index)
}
