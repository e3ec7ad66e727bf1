package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/soypat/eurorack/internal/config"
	"github.com/soypat/eurorack/internal/logger"
	"github.com/soypat/eurorack/render"
)

func batchCmd() *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "batch <file.yaml>",
		Short: "Generate every module listed in a batch file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log := logger.L()
			batch, err := config.LoadBatch(args[0])
			if err != nil {
				return err
			}
			if output != "" {
				batch.Output = output
			}
			if err := os.MkdirAll(batch.Output, 0o755); err != nil {
				return err
			}
			log.Info("batch.start", "path", args[0], "modules", len(batch.Modules), "output", batch.Output)
			opts := render.Options{PNG: batch.Preview}
			for _, m := range batch.Modules {
				if err := cmd.Context().Err(); err != nil {
					return err
				}
				paths, err := writeModule(log.With("module", m.Name), filepath.Join(batch.Output, m.Name), m.Input, batch.Formats, opts)
				for _, p := range paths {
					fmt.Fprintln(cmd.OutOrStdout(), p)
				}
				if err != nil {
					return fmt.Errorf("module %s: %w", m.Name, err)
				}
			}
			log.Info("batch.done", "modules", len(batch.Modules))
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "output directory, overrides the batch file")
	return cmd
}
