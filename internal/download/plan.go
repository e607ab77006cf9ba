package download

import "hlsgrab/internal/tracks"

// Item is one component to fetch: the manifest URI and the destination file
// name inside the downloads directory.
type Item struct {
	URI      string
	FileName string
}

// Plan lists every selected component as a fetch pair. Items are returned in
// mux order (video, audio, subtitles) for readable progress output, but the
// pairs are independent; completion order does not affect the synthesized
// mux command.
func Plan(videos []tracks.VideoTrack, audio []tracks.AudioTrack, subtitles []tracks.SubtitleTrack) []Item {
	items := make([]Item, 0, len(videos)+len(audio)+len(subtitles))
	for _, track := range videos {
		items = append(items, Item{URI: track.URI, FileName: track.FileName})
	}
	for _, track := range audio {
		items = append(items, Item{URI: track.URI, FileName: track.FileName})
	}
	for _, track := range subtitles {
		items = append(items, Item{URI: track.URI, FileName: track.FileName})
	}
	return items
}
