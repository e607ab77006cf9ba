package tracks

import (
	"testing"

	"hlsgrab/internal/manifest"
)

func TestCatalogRequiresVariants(t *testing.T) {
	t.Parallel()

	if _, err := Catalog(nil); err == nil {
		t.Fatal("expected error for empty variant sequence")
	}
}

func TestCatalogProjectsRows(t *testing.T) {
	t.Parallel()

	variants := []manifest.VariantStream{
		{
			URI: "uhd.m3u8",
			Info: manifest.StreamInfo{
				Bandwidth:        8000000,
				AverageBandwidth: 7000000,
				Codecs:           "hvc1.2,ec-3",
				Width:            3840,
				Height:           2160,
				FrameRate:        23.976,
				VideoRange:       "PQ",
				Audio:            "audio-atmos-eac3",
				Subtitles:        "subs",
				HDCPLevel:        "TYPE-1",
				StableVariantID:  "uhd-pq",
			},
		},
		{
			URI: "hd.m3u8",
			Info: manifest.StreamInfo{
				Bandwidth:  3000000,
				Codecs:     "avc1.640028,mp4a.40.2",
				Width:      1920,
				Height:     1080,
				FrameRate:  30,
				VideoRange: "SDR",
				Audio:      "audio-stereo-aac",
				Subtitles:  "subs",
			},
		},
	}

	rows, err := Catalog(variants)
	if err != nil {
		t.Fatalf("Catalog returned error: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}

	uhd := rows[0]
	if uhd.Index != 0 || uhd.Resolution != "3840x2160" || uhd.VideoRange != "PQ" {
		t.Fatalf("unexpected first row: %+v", uhd)
	}
	if uhd.ClosedCaptions != "None" || uhd.PathwayID != "None" || uhd.ProgramID != "None" || uhd.Video != "None" {
		t.Fatalf("absent attributes must render the explicit sentinel: %+v", uhd)
	}
	if uhd.HDCPLevel != "TYPE-1" || uhd.StableVariantID != "uhd-pq" {
		t.Fatalf("present attributes must pass through: %+v", uhd)
	}

	hd := rows[1]
	if hd.Index != 1 {
		t.Fatalf("rows must be index-aligned with the source sequence: %+v", hd)
	}
	if hd.HDCPLevel != "None" || hd.StableVariantID != "None" {
		t.Fatalf("unexpected second row: %+v", hd)
	}
}

func TestCatalogRowStringsAlignWithHeaders(t *testing.T) {
	t.Parallel()

	rows, err := Catalog([]manifest.VariantStream{{URI: "v.m3u8", Info: manifest.StreamInfo{
		Bandwidth: 100, Width: 640, Height: 360, FrameRate: 29.97, VideoRange: "SDR", Codecs: "avc1",
	}}})
	if err != nil {
		t.Fatalf("Catalog returned error: %v", err)
	}

	headers := CatalogHeaders()
	cells := rows[0].Strings()
	if len(cells) != len(headers) {
		t.Fatalf("cell count %d does not match header count %d", len(cells), len(headers))
	}
	if cells[0] != "0" {
		t.Fatalf("first cell must be the index, got %q", cells[0])
	}
	if cells[10] != "640x360" {
		t.Fatalf("resolution cell mismatch: %q", cells[10])
	}
	if cells[6] != "29.97" {
		t.Fatalf("frame rate cell mismatch: %q", cells[6])
	}
}
