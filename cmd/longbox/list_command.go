package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"longbox/internal/library"
)

func newListCommand(ctx *commandContext) *cobra.Command {
	var jsonFlag bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List indexed archives",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := ctx.openStore()
			if err != nil {
				return err
			}
			defer store.Close()

			entries, err := store.List(cmd.Context())
			if err != nil {
				return err
			}
			return renderEntries(cmd, entries, jsonFlag)
		},
	}

	cmd.Flags().BoolVar(&jsonFlag, "json", false, "Emit entries as JSON")
	return cmd
}

func newSearchCommand(ctx *commandContext) *cobra.Command {
	var jsonFlag bool

	cmd := &cobra.Command{
		Use:   "search <term>",
		Short: "Search indexed archives by series, title, or path",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := ctx.openStore()
			if err != nil {
				return err
			}
			defer store.Close()

			entries, err := store.Search(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return renderEntries(cmd, entries, jsonFlag)
		},
	}

	cmd.Flags().BoolVar(&jsonFlag, "json", false, "Emit entries as JSON")
	return cmd
}

type jsonEntry struct {
	Path      string `json:"path"`
	Series    string `json:"series,omitempty"`
	Issue     string `json:"issue,omitempty"`
	Title     string `json:"title,omitempty"`
	Publisher string `json:"publisher,omitempty"`
	Year      int    `json:"year,omitempty"`
	PageCount int    `json:"page_count,omitempty"`
	Tagged    bool   `json:"tagged"`
}

func renderEntries(cmd *cobra.Command, entries []*library.Entry, asJSON bool) error {
	if asJSON {
		out := make([]jsonEntry, 0, len(entries))
		for _, entry := range entries {
			out = append(out, jsonEntry{
				Path:      entry.Path,
				Series:    entry.Series,
				Issue:     entry.Issue,
				Title:     entry.Title,
				Publisher: entry.Publisher,
				Year:      entry.Year,
				PageCount: entry.PageCount,
				Tagged:    entry.Tagged,
			})
		}
		return writeJSON(cmd, out)
	}

	if len(entries) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No indexed archives. Run `longbox scan` first.")
		return nil
	}

	rows := make([][]string, 0, len(entries))
	for _, entry := range entries {
		year := ""
		if entry.Year > 0 {
			year = strconv.Itoa(entry.Year)
		}
		rows = append(rows, []string{
			entry.Series,
			entry.Issue,
			year,
			entry.Publisher,
			yesNo(entry.Tagged),
			entry.Path,
		})
	}
	fmt.Fprintln(cmd.OutOrStdout(), renderTable(
		[]string{"Series", "Issue", "Year", "Publisher", "Tagged", "Path"},
		rows,
		[]columnAlignment{alignLeft, alignRight, alignRight, alignLeft, alignLeft, alignLeft},
	))
	return nil
}
