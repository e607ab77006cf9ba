package download

import (
	"context"
	"errors"
	"path/filepath"
	"reflect"
	"testing"

	"hlsgrab/internal/logging"
	"hlsgrab/internal/services"
	"hlsgrab/internal/tracks"
)

func TestPlanListsAllTracksInMuxOrder(t *testing.T) {
	t.Parallel()

	items := Plan(
		[]tracks.VideoTrack{{URI: "v1.m3u8", FileName: "video_1.ts"}, {URI: "v0.m3u8", FileName: "video_0.ts"}},
		[]tracks.AudioTrack{{URI: "a.m3u8", FileName: "audio_0.aac"}},
		[]tracks.SubtitleTrack{{URI: "s.m3u8", FileName: "subtitle_1.vtt"}},
	)

	want := []Item{
		{URI: "v1.m3u8", FileName: "video_1.ts"},
		{URI: "v0.m3u8", FileName: "video_0.ts"},
		{URI: "a.m3u8", FileName: "audio_0.aac"},
		{URI: "s.m3u8", FileName: "subtitle_1.vtt"},
	}
	if !reflect.DeepEqual(items, want) {
		t.Fatalf("unexpected plan:\ngot  %+v\nwant %+v", items, want)
	}
}

func TestFetchRunsStreamCopyPerItem(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	runner := NewRunner("ffmpeg", dir, logging.NewNop())

	var calls [][]string
	runner.WithCommandRunner(func(ctx context.Context, name string, args ...string) error {
		call := append([]string{name}, args...)
		calls = append(calls, call)
		return nil
	})

	items := []Item{
		{URI: "http://example/v.m3u8", FileName: "video_0.ts"},
		{URI: "http://example/a.m3u8", FileName: "audio_0.aac"},
	}
	if err := runner.Fetch(context.Background(), items); err != nil {
		t.Fatalf("Fetch returned error: %v", err)
	}

	if len(calls) != 2 {
		t.Fatalf("expected 2 ffmpeg invocations, got %d", len(calls))
	}
	want := []string{"ffmpeg", "-i", "http://example/v.m3u8", "-c", "copy", filepath.Join(dir, "video_0.ts")}
	if !reflect.DeepEqual(calls[0], want) {
		t.Fatalf("unexpected invocation:\ngot  %q\nwant %q", calls[0], want)
	}
}

func TestFetchWrapsToolFailure(t *testing.T) {
	t.Parallel()

	runner := NewRunner("", t.TempDir(), logging.NewNop())
	runner.WithCommandRunner(func(ctx context.Context, name string, args ...string) error {
		return errors.New("exit status 1")
	})

	err := runner.Fetch(context.Background(), []Item{{URI: "u", FileName: "f"}})
	if !errors.Is(err, services.ErrExternalTool) {
		t.Fatalf("expected external tool classification, got %v", err)
	}
}

func TestFetchHonorsContextCancellation(t *testing.T) {
	t.Parallel()

	runner := NewRunner("ffmpeg", t.TempDir(), logging.NewNop())
	var calls int
	runner.WithCommandRunner(func(ctx context.Context, name string, args ...string) error {
		calls++
		return nil
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := runner.Fetch(ctx, []Item{{URI: "u", FileName: "f"}})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context error, got %v", err)
	}
	if calls != 0 {
		t.Fatalf("no downloads should start after cancellation, got %d", calls)
	}
}

func TestFetchNoItemsIsNoop(t *testing.T) {
	t.Parallel()

	runner := NewRunner("ffmpeg", filepath.Join(t.TempDir(), "never-created"), logging.NewNop())
	if err := runner.Fetch(context.Background(), nil); err != nil {
		t.Fatalf("Fetch of empty plan returned error: %v", err)
	}
}
