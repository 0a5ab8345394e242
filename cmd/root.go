// Package cmd provides the command-line interface for searchpanel
package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"searchpanel/internal/config"
	"searchpanel/internal/domain"
	"searchpanel/internal/fixtures"
	"searchpanel/internal/logic"
)

// options holds the flags shared by all commands
type options struct {
	configPath  string
	seedQuery   string
	tab         string
	resultsFile string
	logPath     string
}

// NewRootCommand builds the command tree
func NewRootCommand() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:   "searchpanel",
		Short: "Search people and files from the terminal",
		Long: "An interactive search panel: type to filter results by name, switch between " +
			"All, Files and People tabs, and choose which content types are searched.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(cmd, opts)
		},
	}

	root.PersistentFlags().StringVar(&opts.configPath, "config", "", "config file (default "+config.DefaultPath()+")")
	root.PersistentFlags().StringVar(&opts.tab, "tab", "", "start tab: all, files or people")
	root.PersistentFlags().StringVar(&opts.resultsFile, "results", "", "TOML file with the result set (default built-in)")
	root.Flags().StringVar(&opts.seedQuery, "query", "", "initial query text")
	root.Flags().StringVar(&opts.logPath, "log", defaultLogPath(), "log file, empty to disable logging")

	root.AddCommand(newQueryCommand(opts))
	root.AddCommand(newConfigCommand(opts))

	return root
}

// Execute runs the root command
func Execute() error {
	return ExecuteContext(context.Background())
}

// ExecuteContext runs the root command with ctx
func ExecuteContext(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}
	return NewRootCommand().ExecuteContext(ctx)
}

// loadConfig reads the config file and applies flag overrides
func loadConfig(cmd *cobra.Command, opts *options) (*config.Config, config.ConfigService, error) {
	svc := config.NewConfigService(opts.configPath)
	cfg, err := svc.Load()
	if err != nil {
		return nil, nil, err
	}

	if f := cmd.Flags().Lookup("query"); f != nil && f.Changed {
		cfg.SeedQuery = opts.seedQuery
	}
	if cmd.Flags().Changed("tab") {
		if _, err := domain.ParseTab(opts.tab); err != nil {
			return nil, nil, fmt.Errorf("%w: %v", config.ErrInvalidTab, err)
		}
		cfg.DefaultTab = opts.tab
	}
	if cmd.Flags().Changed("results") {
		cfg.ResultsFile = opts.resultsFile
	}
	return cfg, svc, nil
}

// loadSource builds the result store named by the config
func loadSource(cfg *config.Config) (*logic.MemoryResultStore, string, error) {
	if cfg.ResultsFile == "" {
		return logic.NewMemoryResultStore(fixtures.Default()...), fixtures.DefaultSourceName, nil
	}
	results, err := fixtures.LoadFile(cfg.ResultsFile)
	if err != nil {
		return nil, "", err
	}
	return logic.NewMemoryResultStore(results...), cfg.ResultsFile, nil
}

// defaultLogPath returns the log file location in the user cache directory
func defaultLogPath() string {
	dir, err := os.UserCacheDir()
	if err != nil {
		return "searchpanel.log"
	}
	return filepath.Join(dir, "searchpanel", "searchpanel.log")
}
