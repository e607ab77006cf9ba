package tracks

import (
	"errors"
	"testing"

	"hlsgrab/internal/manifest"
)

func audioEntry(language, groupID string, characteristics []string) manifest.MediaEntry {
	return manifest.MediaEntry{
		Type:            manifest.MediaTypeAudio,
		URI:             "audio.m3u8",
		Name:            "Audio",
		Language:        language,
		GroupID:         groupID,
		Characteristics: characteristics,
	}
}

func TestClassifyRejectsUnknownAudioGroup(t *testing.T) {
	t.Parallel()

	media := []manifest.MediaEntry{
		audioEntry("en", "audio-stereo-aac", nil),
		audioEntry("en", "audio-stereo-opus", nil),
	}

	_, err := Classify(media)
	var codecErr *UnsupportedCodecError
	if !errors.As(err, &codecErr) {
		t.Fatalf("expected UnsupportedCodecError, got %v", err)
	}
	if codecErr.GroupID != "audio-stereo-opus" {
		t.Fatalf("expected offending group id in error, got %q", codecErr.GroupID)
	}
}

func TestClassifyAudioDefaultPolicy(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name            string
		language        string
		groupID         string
		characteristics []string
		wantDefault     bool
	}{
		{"plain stereo english", "en", "audio-stereo-aac", nil, true},
		{"wrong language", "fr", "audio-stereo-aac", nil, false},
		{"surround group", "en", "audio-atmos-eac3", nil, false},
		{"described video", "en", "audio-stereo-aac", []string{"public.accessibility.describes-video"}, false},
		{"empty language", "", "audio-stereo-aac", nil, false},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			result, err := Classify([]manifest.MediaEntry{audioEntry(tc.language, tc.groupID, tc.characteristics)})
			if err != nil {
				t.Fatalf("Classify returned error: %v", err)
			}
			if len(result.Audio) != 1 {
				t.Fatalf("expected 1 audio track, got %d", len(result.Audio))
			}
			if got := result.Audio[0].Default; got != tc.wantDefault {
				t.Fatalf("Default = %v, want %v", got, tc.wantDefault)
			}
		})
	}
}

func TestClassifyAllowsMultipleDefaults(t *testing.T) {
	t.Parallel()

	media := []manifest.MediaEntry{
		audioEntry("en", "audio-stereo-aac", nil),
		audioEntry("en", "audio-stereo-aac-alt", nil),
	}

	result, err := Classify(media)
	if err != nil {
		t.Fatalf("Classify returned error: %v", err)
	}
	for i, track := range result.Audio {
		if !track.Default {
			t.Fatalf("track %d should be default: %+v", i, track)
		}
	}
}

func TestClassifySubtitleDefaultFollowsLanguage(t *testing.T) {
	t.Parallel()

	media := []manifest.MediaEntry{
		{Type: manifest.MediaTypeSubtitles, URI: "en.m3u8", Name: "English", Language: "en"},
		{Type: manifest.MediaTypeSubtitles, URI: "de.m3u8", Name: "Deutsch", Language: "de"},
	}

	result, err := Classify(media)
	if err != nil {
		t.Fatalf("Classify returned error: %v", err)
	}
	if !result.Subtitles[0].Default {
		t.Fatalf("english subtitle should be default: %+v", result.Subtitles[0])
	}
	if result.Subtitles[1].Default {
		t.Fatalf("german subtitle should not be default: %+v", result.Subtitles[1])
	}
}

func TestClassifyOrdinalsSpanAllMediaEntries(t *testing.T) {
	t.Parallel()

	media := []manifest.MediaEntry{
		{Type: manifest.MediaTypeSubtitles, URI: "s0.m3u8", Name: "S0", Language: "en"},
		audioEntry("en", "audio-stereo-aac", nil),
		{Type: "CLOSED-CAPTIONS", URI: "", Name: "CC"},
		audioEntry("en", "audio-atmos-eac3", nil),
		{Type: manifest.MediaTypeSubtitles, URI: "s4.m3u8", Name: "S4", Language: "de"},
	}

	result, err := Classify(media)
	if err != nil {
		t.Fatalf("Classify returned error: %v", err)
	}

	if got := result.Subtitles[0].FileName; got != "subtitle_0.vtt" {
		t.Fatalf("unexpected subtitle file name: %q", got)
	}
	if got := result.Subtitles[1].FileName; got != "subtitle_4.vtt" {
		t.Fatalf("ordinal must not be renumbered per type: %q", got)
	}
	if got := result.Audio[0].FileName; got != "audio_1.aac" {
		t.Fatalf("unexpected audio file name: %q", got)
	}
	if got := result.Audio[1].FileName; got != "audio_3.eac3" {
		t.Fatalf("unexpected audio file name: %q", got)
	}

	// Unhandled entry types are skipped silently.
	if len(result.Subtitles) != 2 || len(result.Audio) != 2 {
		t.Fatalf("unexpected track counts: %d subtitles, %d audio", len(result.Subtitles), len(result.Audio))
	}
}

func TestClassifyFileNamesAreUnique(t *testing.T) {
	t.Parallel()

	media := []manifest.MediaEntry{
		{Type: manifest.MediaTypeSubtitles, URI: "s.m3u8", Name: "S", Language: "en"},
		audioEntry("en", "audio-stereo-aac", nil),
		audioEntry("ja", "audio-atmos-eac3", nil),
		{Type: manifest.MediaTypeSubtitles, URI: "s2.m3u8", Name: "S2", Language: "ja"},
	}

	result, err := Classify(media)
	if err != nil {
		t.Fatalf("Classify returned error: %v", err)
	}

	seen := make(map[string]bool)
	for _, track := range result.Subtitles {
		if seen[track.FileName] {
			t.Fatalf("duplicate file name %q", track.FileName)
		}
		seen[track.FileName] = true
	}
	for _, track := range result.Audio {
		if seen[track.FileName] {
			t.Fatalf("duplicate file name %q", track.FileName)
		}
		seen[track.FileName] = true
	}
}

func TestDescribesVideo(t *testing.T) {
	t.Parallel()

	described := AudioTrack{Characteristics: []string{"public.accessibility.describes-video"}}
	if !described.DescribesVideo() {
		t.Fatal("expected describes-video detection")
	}
	plain := AudioTrack{}
	if plain.DescribesVideo() {
		t.Fatal("expected no describes-video for absent characteristics")
	}
}
