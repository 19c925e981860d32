package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

const summaryRounding = 10 * time.Millisecond

func newScanCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "scan [root...]",
		Short: "Index comic archives under the library roots",
		RunE: func(cmd *cobra.Command, args []string) error {
			scanner, store, err := ctx.openScanner()
			if err != nil {
				return err
			}
			defer store.Close()

			summary, err := scanner.Scan(cmd.Context(), args)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Scanned %d archives in %s\n", summary.Scanned, summary.Elapsed.Round(summaryRounding))
			fmt.Fprintf(out, "  tagged:   %d\n", summary.Tagged)
			fmt.Fprintf(out, "  untagged: %d\n", summary.Untagged)
			if summary.Failed > 0 {
				fmt.Fprintf(out, "  failed:   %d (see log)\n", summary.Failed)
			}
			if summary.Pruned > 0 {
				fmt.Fprintf(out, "  pruned:   %d missing archives\n", summary.Pruned)
			}
			return nil
		},
	}
}
