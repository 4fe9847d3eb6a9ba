package main

import (
	"fmt"
	"os/signal"

	"github.com/spf13/cobra"
	"golang.org/x/sys/unix"

	"trisub/internal/daemon"
	"trisub/internal/queue"
	"trisub/internal/workflow"
)

func newWatchCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Watch media directories and merge new subtitle pairs",
		Long: `Run the merge service in the foreground: poll the configured media
directories, queue newly discovered subtitle pairs, and merge them as they
appear. Stops on Ctrl+C.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := ctx.ensureLogger()
			if err != nil {
				return err
			}

			store, err := queue.Open(cfg)
			if err != nil {
				return err
			}

			manager := workflow.NewManager(cfg, store, logger)
			d, err := daemon.New(cfg, store, logger, manager)
			if err != nil {
				_ = store.Close()
				return err
			}
			defer d.Close()

			signalCtx, cancel := signal.NotifyContext(cmd.Context(), unix.SIGINT, unix.SIGTERM)
			defer cancel()

			if err := d.Start(signalCtx); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), "Watching for subtitle pairs (Ctrl+C to stop)")
			<-signalCtx.Done()
			return nil
		},
	}
}
