package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"chatrelay/internal/deps"
)

func newDepsCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "deps",
		Short: "Check external binary dependencies",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			statuses := deps.CheckBinaries(deps.Requirements(cfg.FFmpegBinary()))

			rows := make([][]string, 0, len(statuses))
			for _, status := range statuses {
				available := "yes"
				if !status.Available {
					available = "no"
				}
				rows = append(rows, []string{status.Name, status.Command, available, status.Detail})
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable(
				[]string{"Dependency", "Command", "Available", "Detail"},
				rows,
			))

			for _, status := range statuses {
				if !status.Available && !status.Optional {
					return fmt.Errorf("missing required dependency: %s", status.Name)
				}
			}
			return nil
		},
	}
}
