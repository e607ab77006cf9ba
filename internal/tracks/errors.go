package tracks

import "fmt"

// UnsupportedCodecError reports an audio group id matching no known codec
// marker. Classification aborts entirely: a track whose container extension
// is unknown cannot be downloaded or muxed.
type UnsupportedCodecError struct {
	GroupID string
}

func (e *UnsupportedCodecError) Error() string {
	return fmt.Sprintf("unsupported audio type: %s", e.GroupID)
}

// EmptySelectionError reports that the operator supplied no rendition
// indices. A video-less mux command is invalid, so selection aborts before
// any track construction.
type EmptySelectionError struct{}

func (e *EmptySelectionError) Error() string {
	return "no rendition indices were selected"
}

// IndexOutOfRangeError reports a selection token outside the rendition
// catalog bounds.
type IndexOutOfRangeError struct {
	Index int
	Count int
}

func (e *IndexOutOfRangeError) Error() string {
	return fmt.Sprintf("rendition index %d out of range (catalog has %d renditions)", e.Index, e.Count)
}
