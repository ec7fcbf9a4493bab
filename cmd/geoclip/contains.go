package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"geoclip/internal/geom"
)

func newContainsCmd(_ *app) *cobra.Command {
	var point string
	cmd := &cobra.Command{
		Use:   "contains --point x,y path",
		Short: "Report which polygon rings contain a point",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := parsePoint(point)
			if err != nil {
				return err
			}
			d, err := geom.Load(args[0])
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			for i, poly := range d.Polygons {
				for j, r := range poly.Rings {
					kind := "outer"
					if j > 0 {
						kind = "hole"
					}
					fmt.Fprintf(w, "polygon %d ring %d (%s): %v\n", i, j, kind, r.Contains(p))
				}
			}
			for i, l := range d.Lines {
				fmt.Fprintf(w, "line %d vertex: %v\n", i, l.Contains(p))
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&point, "point", "p", "", "point as x,y")
	_ = cmd.MarkFlagRequired("point")
	return cmd
}
