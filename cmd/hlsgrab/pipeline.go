package main

import (
	"context"
	"fmt"
	"io"
	"time"

	"hlsgrab/internal/config"
	"hlsgrab/internal/manifest"
	"hlsgrab/internal/mux"
	"hlsgrab/internal/services"
	"hlsgrab/internal/tracks"
)

// classifiedManifest is the loaded playlist plus its typed track lists and
// catalog rows, shared by the fetch, inspect, and plan commands.
type classifiedManifest struct {
	source         string
	playlist       *manifest.Playlist
	classification tracks.Classification
	catalog        []tracks.CatalogRow
}

func loadAndClassify(ctx context.Context, cctx *commandContext, source string) (*classifiedManifest, error) {
	cfg, err := cctx.ensureConfig()
	if err != nil {
		return nil, err
	}
	logger, err := cctx.ensureLogger()
	if err != nil {
		return nil, err
	}

	loader := manifest.NewLoader(manifest.LoaderOptions{
		UserAgent: cfg.Fetch.UserAgent,
		Timeout:   time.Duration(cfg.Fetch.TimeoutSeconds) * time.Second,
	}, logger)

	playlist, err := loader.Load(ctx, source)
	if err != nil {
		return nil, err
	}

	classification, err := tracks.Classify(playlist.Media)
	if err != nil {
		return nil, services.Wrap(services.ErrValidation, "tracks", "classify", source, err)
	}

	catalog, err := tracks.Catalog(playlist.Variants)
	if err != nil {
		return nil, services.Wrap(services.ErrValidation, "tracks", "catalog", source, err)
	}

	return &classifiedManifest{
		source:         source,
		playlist:       playlist,
		classification: classification,
		catalog:        catalog,
	}, nil
}

// resolveSelection turns the operator's index string into video tracks and
// synthesizes the mux command for the whole run.
func (m *classifiedManifest) resolveSelection(cfg *config.Config, selection string) ([]tracks.VideoTrack, mux.Command, error) {
	videos, err := tracks.Select(m.playlist.Variants, selection)
	if err != nil {
		return nil, mux.Command{}, services.Wrap(services.ErrValidation, "tracks", "select", selection, err)
	}
	command := mux.Synthesize(videos, m.classification.Audio, m.classification.Subtitles, mux.Options{
		Tool:        cfg.Tools.Mkvmerge,
		DownloadDir: cfg.Paths.DownloadDir,
		OutputFile:  cfg.Paths.OutputFile,
	})
	return videos, command, nil
}

func (m *classifiedManifest) printCatalog(out io.Writer) {
	fmt.Fprintln(out, "Streams available:")
	fmt.Fprintln(out, renderCatalog(m.catalog))
}

func (m *classifiedManifest) printTrackSummary(out io.Writer) {
	if audio := m.classification.Audio; len(audio) > 0 {
		fmt.Fprintf(out, "\nAudio tracks (%s):\n", formatCount(len(audio), "track", "tracks"))
		fmt.Fprintln(out, renderAudioTracks(audio))
	}
	if subtitles := m.classification.Subtitles; len(subtitles) > 0 {
		fmt.Fprintf(out, "\nSubtitle tracks (%s):\n", formatCount(len(subtitles), "track", "tracks"))
		fmt.Fprintln(out, renderSubtitleTracks(subtitles))
	}
}

func printMuxCommand(out io.Writer, command mux.Command) {
	fmt.Fprintln(out, "\nExecute the following command to generate the MKV file:")
	fmt.Fprintln(out, command.String())
}
