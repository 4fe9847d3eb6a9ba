package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"trisub/internal/config"
	"trisub/internal/queue"
	"trisub/internal/workflow"
)

func newMergeCommand(ctx *commandContext) *cobra.Command {
	var overwrite bool

	cmd := &cobra.Command{
		Use:   "merge [directory]",
		Short: "Scan for subtitle pairs and merge them once",
		Long: `Scan the configured media directories (or a single directory given as an
argument) for source/translation subtitle pairs, merge each pair into a
trilingual track, and exit.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			if len(args) == 1 {
				dir, err := config.ExpandPath(args[0])
				if err != nil {
					return err
				}
				scoped := *cfg
				scoped.Paths.MediaDirs = []string{dir}
				cfg = &scoped
			}
			if overwrite {
				scoped := *cfg
				scoped.Tracks.OverwriteExisting = true
				cfg = &scoped
			}

			logger, err := ctx.ensureLogger()
			if err != nil {
				return err
			}

			store, err := queue.Open(cfg)
			if err != nil {
				return err
			}
			defer store.Close()

			manager := workflow.NewManager(cfg, store, logger)
			if err := manager.RunOnce(cmd.Context()); err != nil {
				return err
			}

			health, err := store.Health(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Merged pairs: %d completed, %d failed\n",
				health.Completed, health.Failed)
			return nil
		},
	}

	cmd.Flags().BoolVar(&overwrite, "overwrite", false, "Regenerate merged files that already exist")
	return cmd
}
