package tracks

import (
	"errors"
	"fmt"
	"strconv"

	"hlsgrab/internal/manifest"
)

// noneMarker renders absent optional attributes explicitly so catalog cells
// are never blank.
const noneMarker = "None"

// CatalogRow is one rendition's display row, index-aligned with the variant
// stream sequence. The index is the value the operator feeds back to Select.
type CatalogRow struct {
	Index            int
	Audio            string
	AverageBandwidth int64
	Bandwidth        int64
	ClosedCaptions   string
	Codecs           string
	FrameRate        float64
	HDCPLevel        string
	PathwayID        string
	ProgramID        string
	Resolution       string
	StableVariantID  string
	Subtitles        string
	Video            string
	VideoRange       string
}

// CatalogHeaders is the fixed column set handed to the table renderer,
// aligned with the Strings output of each row.
func CatalogHeaders() []string {
	return []string{
		"index",
		"audio",
		"average_bandwidth",
		"bandwidth",
		"closed_captions",
		"codecs",
		"frame_rate",
		"hdcp_level",
		"pathway_id",
		"program_id",
		"resolution",
		"stable_variant_id",
		"subtitles",
		"video",
		"video_range",
	}
}

// Catalog projects the variant streams into display rows for operator
// decision-making. It performs no selection; the only requirement is a
// non-empty sequence.
func Catalog(variants []manifest.VariantStream) ([]CatalogRow, error) {
	if len(variants) == 0 {
		return nil, errors.New("manifest declares no variant streams")
	}

	rows := make([]CatalogRow, 0, len(variants))
	for index, variant := range variants {
		info := variant.Info
		rows = append(rows, CatalogRow{
			Index:            index,
			Audio:            orNone(info.Audio),
			AverageBandwidth: info.AverageBandwidth,
			Bandwidth:        info.Bandwidth,
			ClosedCaptions:   orNone(info.ClosedCaptions),
			Codecs:           info.Codecs,
			FrameRate:        info.FrameRate,
			HDCPLevel:        orNone(info.HDCPLevel),
			PathwayID:        orNone(info.PathwayID),
			ProgramID:        programID(info.ProgramID),
			Resolution:       fmt.Sprintf("%dx%d", info.Width, info.Height),
			StableVariantID:  orNone(info.StableVariantID),
			Subtitles:        orNone(info.Subtitles),
			Video:            orNone(info.Video),
			VideoRange:       info.VideoRange,
		})
	}
	return rows, nil
}

// Strings renders the row as table cells in header order.
func (r CatalogRow) Strings() []string {
	return []string{
		strconv.Itoa(r.Index),
		r.Audio,
		strconv.FormatInt(r.AverageBandwidth, 10),
		strconv.FormatInt(r.Bandwidth, 10),
		r.ClosedCaptions,
		r.Codecs,
		strconv.FormatFloat(r.FrameRate, 'g', -1, 64),
		r.HDCPLevel,
		r.PathwayID,
		r.ProgramID,
		r.Resolution,
		r.StableVariantID,
		r.Subtitles,
		r.Video,
		r.VideoRange,
	}
}

func orNone(value string) string {
	if value == "" {
		return noneMarker
	}
	return value
}

func programID(id int) string {
	if id == 0 {
		return noneMarker
	}
	return strconv.Itoa(id)
}
