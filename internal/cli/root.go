// Package cli implements the ephelper command line.
package cli

import (
	"context"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/soypat/eurorack/internal/logger"
)

func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	cmd := newRootCmd()
	if err := cmd.ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		debug   bool
		cleanup func()
		opts    = defaultGenerateOptions()
	)

	cmd := &cobra.Command{
		Use:   "ephelper",
		Short: "Eurorack faceplate and PCB outline generator",
		Long: "ephelper generates Eurorack faceplate and PCB outlines with their mounting holes.\n" +
			"Without a subcommand it asks for the module parameters interactively.",
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			cleanup = logger.Setup(logger.Config{
				Output: cmd.ErrOrStderr(),
				Debug:  debug,
			})
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if cleanup != nil {
				cleanup()
			}
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts.interactive = true
			return runGenerate(cmd, opts)
		},
	}

	cmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging with source locations")
	opts.bindOutput(cmd)
	cmd.AddCommand(generateCmd(), batchCmd(), versionCmd())
	return cmd
}
