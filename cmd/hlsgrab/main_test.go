package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"hlsgrab/internal/manifest"
	"hlsgrab/internal/services"
	"hlsgrab/internal/tracks"
)

const testManifest = `#EXTM3U
#EXT-X-MEDIA:TYPE=AUDIO,GROUP-ID="audio-stereo-aac-1",NAME="English",LANGUAGE="en",URI="audio/en.m3u8"
#EXT-X-MEDIA:TYPE=SUBTITLES,GROUP-ID="subs",NAME="English",LANGUAGE="en",URI="subs/en.m3u8"
#EXT-X-STREAM-INF:BANDWIDTH=8000000,CODECS="hvc1.2,ec-3",RESOLUTION=3840x2160,FRAME-RATE=23.976,VIDEO-RANGE=PQ,AUDIO="audio-stereo-aac-1",SUBTITLES="subs"
video/uhd.m3u8
`

func writeTestEnvironment(t *testing.T) (configPath, manifestPath string) {
	t.Helper()
	dir := t.TempDir()

	manifestPath = filepath.Join(dir, "master.m3u8")
	if err := os.WriteFile(manifestPath, []byte(testManifest), 0o644); err != nil {
		t.Fatalf("write manifest: %v", err)
	}

	configPath = filepath.Join(dir, "config.toml")
	content := `
[paths]
download_dir = "` + filepath.Join(dir, "downloads") + `"

[history]
enabled = true
path = "` + filepath.Join(dir, "history.db") + `"
`
	if err := os.WriteFile(configPath, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return configPath, manifestPath
}

func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCommand()
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func TestPlanCommandPrintsMuxCommand(t *testing.T) {
	configPath, manifestPath := writeTestEnvironment(t)

	output, err := runCommand(t, "--config", configPath, "plan", manifestPath, "--select", "0")
	if err != nil {
		t.Fatalf("plan returned error: %v\n%s", err, output)
	}

	if !strings.Contains(output, "mkvmerge --output output.mkv") {
		t.Fatalf("expected mux command in output:\n%s", output)
	}
	if !strings.Contains(output, "'0:PQ (hvc1.2)'") {
		t.Fatalf("expected codec label in mux command:\n%s", output)
	}
	if strings.Contains(output, "--default-track-flag") {
		t.Fatalf("single all-default selection must not emit not-default flags:\n%s", output)
	}
	if !strings.Contains(output, "video_0.ts") || !strings.Contains(output, "audio_0.aac") || !strings.Contains(output, "subtitle_1.vtt") {
		t.Fatalf("expected download plan entries:\n%s", output)
	}
}

func TestPlanCommandUsesConfiguredMkvmerge(t *testing.T) {
	dir := t.TempDir()
	manifestPath := filepath.Join(dir, "master.m3u8")
	if err := os.WriteFile(manifestPath, []byte(testManifest), 0o644); err != nil {
		t.Fatalf("write manifest: %v", err)
	}
	configPath := filepath.Join(dir, "config.toml")
	content := `
[paths]
download_dir = "` + filepath.Join(dir, "downloads") + `"

[tools]
mkvmerge = "/opt/mkvtoolnix/bin/mkvmerge"

[history]
enabled = false
`
	if err := os.WriteFile(configPath, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	output, err := runCommand(t, "--config", configPath, "plan", manifestPath, "--select", "0")
	if err != nil {
		t.Fatalf("plan returned error: %v\n%s", err, output)
	}
	if !strings.Contains(output, "/opt/mkvtoolnix/bin/mkvmerge --output") {
		t.Fatalf("expected configured mkvmerge binary in mux command:\n%s", output)
	}
}

func TestInspectCommandRendersCatalog(t *testing.T) {
	configPath, manifestPath := writeTestEnvironment(t)

	output, err := runCommand(t, "--config", configPath, "inspect", manifestPath)
	if err != nil {
		t.Fatalf("inspect returned error: %v\n%s", err, output)
	}

	for _, want := range []string{"Streams available:", "3840x2160", "PQ", "Audio tracks", "Subtitle tracks", "English"} {
		if !strings.Contains(output, want) {
			t.Fatalf("expected %q in output:\n%s", want, output)
		}
	}
}

func TestFetchCommandSkipDownloadRecordsHistory(t *testing.T) {
	configPath, manifestPath := writeTestEnvironment(t)

	output, err := runCommand(t, "--config", configPath, "fetch", manifestPath, "--select", "0", "--skip-download")
	if err != nil {
		t.Fatalf("fetch returned error: %v\n%s", err, output)
	}
	if !strings.Contains(output, "mkvmerge") {
		t.Fatalf("expected mux command in output:\n%s", output)
	}

	historyOutput, err := runCommand(t, "--config", configPath, "history")
	if err != nil {
		t.Fatalf("history returned error: %v\n%s", err, historyOutput)
	}
	if !strings.Contains(historyOutput, "master.m3u8") {
		t.Fatalf("expected recorded run in history output:\n%s", historyOutput)
	}
}

func TestFetchWithoutManifestFails(t *testing.T) {
	configPath, _ := writeTestEnvironment(t)

	_, err := runCommand(t, "--config", configPath, "fetch")
	if !errors.Is(err, manifest.ErrMissingSource) {
		t.Fatalf("expected ErrMissingSource, got %v", err)
	}
}

func TestPlanRejectsOutOfRangeSelection(t *testing.T) {
	configPath, manifestPath := writeTestEnvironment(t)

	_, err := runCommand(t, "--config", configPath, "plan", manifestPath, "--select", "5")
	if err == nil {
		t.Fatal("expected error for out-of-range selection")
	}
	if !strings.Contains(err.Error(), "5") {
		t.Fatalf("error must surface the offending index: %v", err)
	}
	if !services.IsValidation(err) {
		t.Fatalf("selection errors must be tagged as validation: %v", err)
	}
	var oob *tracks.IndexOutOfRangeError
	if !errors.As(err, &oob) || oob.Index != 5 {
		t.Fatalf("typed selection error must survive wrapping: %v", err)
	}
}
