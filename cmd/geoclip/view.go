package main

import (
	"github.com/spf13/cobra"

	"geoclip/internal/tui"
)

func newViewCmd(a *app) *cobra.Command {
	var mercator bool
	cmd := &cobra.Command{
		Use:   "view [path]",
		Short: "Open the terminal viewer",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("mercator") {
				a.cfg.View.Mercator = mercator
			}
			m := tui.New(a.cfg)
			if len(args) == 1 {
				m = tui.NewWithPath(a.cfg, args[0])
			}
			return tui.Run(m)
		},
	}
	cmd.Flags().BoolVar(&mercator, "mercator", false, "start in spherical mercator")
	return cmd
}
