package main

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"hlsgrab/internal/download"
	"hlsgrab/internal/history"
	"hlsgrab/internal/logging"
	"hlsgrab/internal/manifest"
)

func newFetchCommand(cctx *commandContext) *cobra.Command {
	var selectFlag string
	var skipDownload bool

	cmd := &cobra.Command{
		Use:   "fetch <manifest-url>",
		Short: "Download selected renditions and print the mux command",
		Long: `Fetch loads the master playlist, shows the available video renditions,
downloads the selected renditions plus every audio and subtitle track with
ffmpeg stream copies, and prints the mkvmerge command that merges them into
a single MKV.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return manifest.ErrMissingSource
			}

			cfg, err := cctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := cctx.ensureLogger()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			loaded, err := loadAndClassify(cmd.Context(), cctx, args[0])
			if err != nil {
				return err
			}

			loaded.printCatalog(out)

			selection := strings.TrimSpace(selectFlag)
			if selection == "" {
				selection, err = promptForSelection(cmd)
				if err != nil {
					return err
				}
			}

			videos, command, err := loaded.resolveSelection(cfg, selection)
			if err != nil {
				return err
			}

			items := download.Plan(videos, loaded.classification.Audio, loaded.classification.Subtitles)
			if skipDownload {
				fmt.Fprintln(out, "\nSkipping downloads (--skip-download).")
			} else {
				runner := download.NewRunner(cfg.Tools.FFmpeg, cfg.Paths.DownloadDir, logger)
				if err := runner.Fetch(cmd.Context(), items); err != nil {
					return err
				}
			}

			printMuxCommand(out, command)

			if cfg.History.Enabled {
				if err := recordRun(cmd, cfg.History.Path, loaded, selection, len(videos), command.String()); err != nil {
					// History is bookkeeping; a failed insert should not
					// fail a run whose downloads already finished.
					logger.Warn("failed to record run history", logging.Args(logging.Error(err))...)
				}
			}

			return nil
		},
	}

	cmd.Flags().StringVarP(&selectFlag, "select", "s", "", "Rendition indices to download, separated by '+' (e.g. \"0+2\")")
	cmd.Flags().BoolVar(&skipDownload, "skip-download", false, "Resolve selection and print the mux command without downloading")
	return cmd
}

// promptForSelection shows the selection instructions and reads one line of
// operator input.
func promptForSelection(cmd *cobra.Command) (string, error) {
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "\nEnter the indexes of the video streams to download, separated by plus signs ('+').")
	fmt.Fprintln(out, "The first index becomes the main video stream of the merged file.")
	fmt.Fprint(out, "Enter indexes: ")

	reader := bufio.NewReader(cmd.InOrStdin())
	line, err := reader.ReadString('\n')
	if err != nil && line == "" {
		return "", fmt.Errorf("read selection: %w", err)
	}
	return strings.TrimSpace(line), nil
}

func recordRun(cmd *cobra.Command, historyPath string, loaded *classifiedManifest, selection string, videoCount int, muxCommand string) error {
	store, err := history.Open(historyPath)
	if err != nil {
		return err
	}
	defer store.Close()

	_, err = store.RecordRun(cmd.Context(), history.Run{
		ManifestURL:   loaded.source,
		Selection:     selection,
		VideoCount:    videoCount,
		AudioCount:    len(loaded.classification.Audio),
		SubtitleCount: len(loaded.classification.Subtitles),
		MuxCommand:    muxCommand,
	})
	return err
}
