package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/hanruizeng/scholarpage"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "scholarpage",
		Short: "Single-page academic profile site",
		Long: `scholarpage renders an academic profile page: about, research,
publications with per-entry BibTeX toggles, teaching, CV and contact.

Configuration is read from the environment and an optional .env file
(SITE_URL, ADDR, STATIC_DIR, RESUME_URL, PHOTO_URL, LOG_FORMAT, ...).`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(
		newServeCmd(),
		newBuildCmd(),
		newHeadshotCmd(),
		newVersionCmd(),
	)
	return root
}

// loadApp reads configuration and builds the App and its logger.
func loadApp() (*scholarpage.App, *zap.Logger, error) {
	cfg, err := scholarpage.LoadConfig()
	if err != nil {
		return nil, nil, err
	}
	logger, err := scholarpage.NewLogger(cfg.LogFormat, cfg.LogLevel)
	if err != nil {
		return nil, nil, err
	}
	return scholarpage.New(cfg, scholarpage.WithLogger(logger)), logger, nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the scholarpage version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "scholarpage %s\n", version)
		},
	}
}
