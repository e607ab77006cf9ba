package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"hlsgrab/internal/download"
	"hlsgrab/internal/manifest"
)

func newPlanCommand(cctx *commandContext) *cobra.Command {
	var selectFlag string

	cmd := &cobra.Command{
		Use:   "plan <manifest-url>",
		Short: "Print the download plan and mux command without downloading",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return manifest.ErrMissingSource
			}

			cfg, err := cctx.ensureConfig()
			if err != nil {
				return err
			}

			loaded, err := loadAndClassify(cmd.Context(), cctx, args[0])
			if err != nil {
				return err
			}

			videos, command, err := loaded.resolveSelection(cfg, selectFlag)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "Selected video renditions:")
			fmt.Fprintln(out, renderVideoTracks(videos))

			items := download.Plan(videos, loaded.classification.Audio, loaded.classification.Subtitles)
			fmt.Fprintf(out, "\nDownload plan (%s):\n", formatCount(len(items), "component", "components"))
			for _, item := range items {
				fmt.Fprintf(out, "  %s <- %s\n", item.FileName, item.URI)
			}

			printMuxCommand(out, command)
			return nil
		},
	}

	cmd.Flags().StringVarP(&selectFlag, "select", "s", "", "Rendition indices, separated by '+' (e.g. \"0+2\")")
	_ = cmd.MarkFlagRequired("select")
	return cmd
}
