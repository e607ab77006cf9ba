package tracks

import (
	"strings"

	"hlsgrab/internal/manifest"
)

const (
	// stereoGroupPrefix marks the plain stereo audio groups eligible to be
	// the default track.
	stereoGroupPrefix = "audio-stereo"

	// describesVideoMarker tags audio described for visually impaired
	// viewers (e.g. "public.accessibility.describes-video").
	describesVideoMarker = "describes-video"

	defaultLanguage = "en"
)

// Classify walks the manifest media entries in order and produces the typed
// subtitle and audio track lists. Entries of unhandled types are skipped.
// The ordinal embedded in each file name is the entry's position among all
// media entries, preserving manifest-index traceability.
//
// An audio entry whose group id matches no known codec marker aborts the
// whole classification with UnsupportedCodecError; no partial result is
// returned.
func Classify(media []manifest.MediaEntry) (Classification, error) {
	var result Classification

	for ordinal, entry := range media {
		switch entry.Type {
		case manifest.MediaTypeSubtitles:
			result.Subtitles = append(result.Subtitles, SubtitleTrack{
				URI:      entry.URI,
				Name:     entry.Name,
				Language: entry.Language,
				Default:  entry.Language == defaultLanguage,
				FileName: subtitleFileName(ordinal),
			})
		case manifest.MediaTypeAudio:
			codec, ok := codecFromGroupID(entry.GroupID)
			if !ok {
				return Classification{}, &UnsupportedCodecError{GroupID: entry.GroupID}
			}
			result.Audio = append(result.Audio, AudioTrack{
				URI:             entry.URI,
				Name:            entry.Name,
				Language:        entry.Language,
				GroupID:         entry.GroupID,
				Characteristics: entry.Characteristics,
				Default:         audioDefault(entry),
				Codec:           codec,
				FileName:        audioFileName(ordinal, codec),
			})
		}
	}

	return result, nil
}

// audioDefault marks the plain stereo English track: never a described or
// surround one. Several tracks may satisfy the predicate simultaneously;
// they are all marked and not deduplicated here.
func audioDefault(entry manifest.MediaEntry) bool {
	return entry.Language == defaultLanguage &&
		strings.HasPrefix(entry.GroupID, stereoGroupPrefix) &&
		entry.Characteristics == nil
}

func codecFromGroupID(groupID string) (CodecKind, bool) {
	switch {
	case strings.Contains(groupID, "aac"):
		return CodecAAC, true
	case strings.Contains(groupID, "eac3"):
		return CodecEAC3, true
	default:
		return "", false
	}
}

// DescribesVideo reports whether the audio track carries the accessibility
// characteristic for described video.
func (t AudioTrack) DescribesVideo() bool {
	for _, c := range t.Characteristics {
		if strings.Contains(c, describesVideoMarker) {
			return true
		}
	}
	return false
}
