package main

import (
	"strconv"

	"hlsgrab/internal/language"
	"hlsgrab/internal/tracks"
)

// Catalog columns holding numeric values, right-aligned for readability.
const (
	catalogColAverageBandwidth = 2
	catalogColBandwidth        = 3
	catalogColFrameRate        = 6
)

func renderCatalog(rows []tracks.CatalogRow) string {
	cells := make([][]string, 0, len(rows))
	for _, row := range rows {
		cells = append(cells, row.Strings())
	}
	return renderTable(tracks.CatalogHeaders(), cells,
		catalogColAverageBandwidth, catalogColBandwidth, catalogColFrameRate)
}

func renderAudioTracks(audio []tracks.AudioTrack) string {
	headers := []string{"name", "language", "group_id", "codec", "default", "file"}
	rows := make([][]string, 0, len(audio))
	for _, track := range audio {
		rows = append(rows, []string{
			track.Name,
			language.DisplayName(track.Language),
			track.GroupID,
			string(track.Codec),
			yesNo(track.Default),
			track.FileName,
		})
	}
	return renderTable(headers, rows)
}

func renderSubtitleTracks(subtitles []tracks.SubtitleTrack) string {
	headers := []string{"name", "language", "default", "file"}
	rows := make([][]string, 0, len(subtitles))
	for _, track := range subtitles {
		rows = append(rows, []string{
			track.Name,
			language.DisplayName(track.Language),
			yesNo(track.Default),
			track.FileName,
		})
	}
	return renderTable(headers, rows)
}

func renderVideoTracks(videos []tracks.VideoTrack) string {
	headers := []string{"codec", "primary", "file"}
	rows := make([][]string, 0, len(videos))
	for _, track := range videos {
		rows = append(rows, []string{
			track.CodecLabel,
			yesNo(track.Primary),
			track.FileName,
		})
	}
	return renderTable(headers, rows)
}

func yesNo(value bool) string {
	if value {
		return "yes"
	}
	return "no"
}

func formatCount(count int, singular, plural string) string {
	if count == 1 {
		return "1 " + singular
	}
	return strconv.Itoa(count) + " " + plural
}
