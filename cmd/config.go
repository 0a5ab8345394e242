package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"searchpanel/internal/config"
)

func newConfigCommand(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the configuration file",
	}

	var force bool
	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write the default configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc := config.NewConfigService(opts.configPath)
			if _, err := os.Stat(svc.Path()); err == nil && !force {
				return fmt.Errorf("config file already exists: %s (use --force to overwrite)", svc.Path())
			} else if err != nil && !errors.Is(err, os.ErrNotExist) {
				return fmt.Errorf("failed to check config file: %w", err)
			}
			if err := svc.Save(config.DefaultConfig()); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", svc.Path())
			return nil
		},
	}
	initCmd.Flags().BoolVar(&force, "force", false, "overwrite an existing file")

	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, svc, err := loadConfig(cmd, opts)
			if err != nil {
				return err
			}
			data, err := config.Marshal(cfg)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "# %s\n%s", svc.Path(), data)
			return nil
		},
	}

	cmd.AddCommand(initCmd, showCmd)
	return cmd
}
