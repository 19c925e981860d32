package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"longbox/internal/archive"
)

func newRemoveCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <archive>",
		Short: "Delete the tag document from an archive",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := ctx.format()
			if err != nil {
				return err
			}
			a, err := archive.Open(args[0])
			if err != nil {
				return err
			}
			if !format.HasTags(a) {
				fmt.Fprintf(cmd.OutOrStdout(), "%s: no %s tags\n", a.Path(), format.Name())
				return nil
			}
			if err := format.RemoveTags(a); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed %s tags from %s\n", format.Name(), a.Path())
			return nil
		},
	}
}
