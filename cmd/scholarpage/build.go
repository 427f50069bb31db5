package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

func newBuildCmd() *cobra.Command {
	var (
		outDir string
		watch  bool
	)
	cmd := &cobra.Command{
		Use:   "build",
		Short: "Write the site to a directory for static hosting",
		Long: `build renders the page, every toggle fragment, sitemap.xml, feed.xml,
robots.txt and favicon.svg into the output directory and copies the static
directory to <out>/public. With --watch it rebuilds whenever a static
asset changes.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, logger, err := loadApp()
			if err != nil {
				return err
			}
			defer logger.Sync() //nolint:errcheck

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			if err := app.Build(ctx, outDir); err != nil {
				return err
			}
			if !watch {
				return nil
			}
			return app.Watch(ctx, outDir)
		},
	}
	cmd.Flags().StringVarP(&outDir, "out", "o", "dist", "output directory (emptied first)")
	cmd.Flags().BoolVarP(&watch, "watch", "w", false, "rebuild when static assets change")
	return cmd
}
