package tracks

import (
	"fmt"
	"strconv"
	"strings"

	"hlsgrab/internal/manifest"
)

// selectionDelimiter separates rendition indices in operator input,
// e.g. "0+2".
const selectionDelimiter = "+"

// Select resolves an operator-supplied ordered list of rendition indices
// into video tracks. Output order exactly matches token order and the first
// track is marked primary; selection order, not quality, determines primary
// status. Duplicate indices are passed through, not deduplicated.
func Select(variants []manifest.VariantStream, selection string) ([]VideoTrack, error) {
	tokens := splitSelection(selection)
	if len(tokens) == 0 {
		return nil, &EmptySelectionError{}
	}

	videos := make([]VideoTrack, 0, len(tokens))
	for seq, token := range tokens {
		index, err := strconv.Atoi(token)
		if err != nil {
			return nil, fmt.Errorf("rendition index %q is not a number", token)
		}
		if index < 0 || index >= len(variants) {
			return nil, &IndexOutOfRangeError{Index: index, Count: len(variants)}
		}
		variant := variants[index]
		videos = append(videos, VideoTrack{
			URI:        variant.URI,
			CodecLabel: codecLabel(variant.Info),
			Primary:    seq == 0,
			FileName:   videoFileName(index),
		})
	}
	return videos, nil
}

func splitSelection(selection string) []string {
	var tokens []string
	for _, token := range strings.Split(selection, selectionDelimiter) {
		if token = strings.TrimSpace(token); token != "" {
			tokens = append(tokens, token)
		}
	}
	return tokens
}

// codecLabel names a rendition by its HDR range and leading codec,
// e.g. "PQ (hvc1.2)".
func codecLabel(info manifest.StreamInfo) string {
	firstCodec := info.Codecs
	if comma := strings.IndexByte(firstCodec, ','); comma >= 0 {
		firstCodec = firstCodec[:comma]
	}
	return fmt.Sprintf("%s (%s)", info.VideoRange, strings.TrimSpace(firstCodec))
}
