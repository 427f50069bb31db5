package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hanruizeng/scholarpage"
)

func newHeadshotCmd() *cobra.Command {
	var size int
	cmd := &cobra.Command{
		Use:   "headshot SRC",
		Short: "Crop and resize a photo into the static directory",
		Long: `headshot center-crops SRC (JPEG, PNG or GIF) to a square, scales it
down to --size pixels and writes <STATIC_DIR>/headshot.jpg. Point PHOTO_URL
at the printed address to show it on the page.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := scholarpage.LoadConfig()
			if err != nil {
				return err
			}
			path, err := scholarpage.WriteHeadshot(args[0], cfg.StaticDir, size)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s (PHOTO_URL=%s)\n", path, scholarpage.HeadshotPath())
			return nil
		},
	}
	cmd.Flags().IntVarP(&size, "size", "s", scholarpage.DefaultHeadshotSize, "edge length in pixels")
	return cmd
}
