package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"longbox/internal/library"
	"longbox/internal/preflight"
)

func newDoctorCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Check that longbox can run in this environment",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			// The database check reports an unopenable store; everything
			// else still runs.
			var store *library.Store
			if s, err := library.Open(cfg); err == nil {
				store = s
				defer store.Close()
			}

			results := preflight.RunAll(cmd.Context(), cfg, store)

			rows := make([][]string, 0, len(results))
			for _, result := range results {
				status := "ok"
				if !result.Passed {
					status = "FAIL"
				}
				rows = append(rows, []string{result.Name, status, result.Detail})
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable(
				[]string{"Check", "Status", "Detail"},
				rows,
				[]columnAlignment{alignLeft, alignLeft, alignLeft},
			))

			if !preflight.Passed(results) {
				return fmt.Errorf("%d check(s) failed", countFailed(results))
			}
			fmt.Fprintln(cmd.OutOrStdout(), "All checks passed.")
			return nil
		},
	}
}

func countFailed(results []preflight.Result) int {
	failed := 0
	for _, result := range results {
		if !result.Passed {
			failed++
		}
	}
	return failed
}
