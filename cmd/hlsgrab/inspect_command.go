package main

import (
	"github.com/spf13/cobra"

	"hlsgrab/internal/manifest"
)

func newInspectCommand(cctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <manifest-url>",
		Short: "Show the renditions and tracks a manifest declares",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return manifest.ErrMissingSource
			}

			loaded, err := loadAndClassify(cmd.Context(), cctx, args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			loaded.printCatalog(out)
			loaded.printTrackSummary(out)
			return nil
		},
	}
}
