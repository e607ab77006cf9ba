package manifest

import "strings"

// MediaType is the TYPE attribute of an EXT-X-MEDIA entry.
type MediaType string

const (
	MediaTypeAudio     MediaType = "AUDIO"
	MediaTypeSubtitles MediaType = "SUBTITLES"
)

// MediaEntry is one manifest-declared media alternative. Characteristics is
// nil when the attribute is absent, which is significant for default-track
// classification.
type MediaEntry struct {
	Type            MediaType
	URI             string
	Name            string
	Language        string
	GroupID         string
	Characteristics []string
}

// HasCharacteristic reports whether any declared characteristic contains the
// given marker substring.
func (m MediaEntry) HasCharacteristic(marker string) bool {
	for _, c := range m.Characteristics {
		if marker != "" && strings.Contains(c, marker) {
			return true
		}
	}
	return false
}

// StreamInfo carries the EXT-X-STREAM-INF attributes of a variant stream.
// Optional string attributes are empty when absent; ProgramID is 0 when
// absent.
type StreamInfo struct {
	Bandwidth        int64
	AverageBandwidth int64
	Codecs           string
	Width            int
	Height           int
	FrameRate        float64
	VideoRange       string
	Audio            string
	Video            string
	Subtitles        string
	ClosedCaptions   string
	HDCPLevel        string
	PathwayID        string
	StableVariantID  string
	ProgramID        int
}

// VariantStream is one manifest-declared combined video rendition.
type VariantStream struct {
	URI  string
	Info StreamInfo
}

// Playlist is the parsed master playlist: the ordered media alternatives and
// the ordered variant streams.
type Playlist struct {
	Media    []MediaEntry
	Variants []VariantStream
}
