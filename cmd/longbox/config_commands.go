package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"

	"longbox/internal/config"
)

func newConfigCommand(ctx *commandContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the longbox configuration file",
	}
	cmd.AddCommand(newConfigInitCommand(ctx))
	cmd.AddCommand(newConfigShowCommand(ctx))
	cmd.AddCommand(newConfigPathCommand(ctx))
	return cmd
}

func newConfigInitCommand(ctx *commandContext) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:         "init",
		Short:       "Write a commented sample configuration file",
		Args:        cobra.NoArgs,
		Annotations: map[string]string{"skipConfigLoad": "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			path := strings.TrimSpace(*ctx.configFlag)
			if path == "" {
				defaultPath, err := config.DefaultConfigPath()
				if err != nil {
					return err
				}
				path = defaultPath
			}
			expanded, err := config.ExpandPath(path)
			if err != nil {
				return err
			}

			if _, err := os.Stat(expanded); err == nil && !force {
				return fmt.Errorf("%s already exists; pass --force to overwrite", expanded)
			}

			if err := config.CreateSample(expanded); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", expanded)
			fmt.Fprintln(cmd.OutOrStdout(), "Edit library.roots, then run `longbox scan`.")
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing configuration file")
	return cmd
}

func newConfigShowCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			encoded, err := toml.Marshal(cfg)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), string(encoded))
			return nil
		},
	}
}

func newConfigPathCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:         "path",
		Short:       "Print the configuration file path in use",
		Args:        cobra.NoArgs,
		Annotations: map[string]string{"skipConfigLoad": "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			path := strings.TrimSpace(*ctx.configFlag)
			if path == "" {
				defaultPath, err := config.DefaultConfigPath()
				if err != nil {
					return err
				}
				path = defaultPath
			}
			expanded, err := config.ExpandPath(path)
			if err != nil {
				return err
			}
			if _, err := os.Stat(expanded); err != nil {
				fmt.Fprintf(cmd.OutOrStdout(), "%s (not created; defaults in effect)\n", expanded)
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), expanded)
			return nil
		},
	}
}
