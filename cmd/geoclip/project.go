package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"geoclip/internal/planar"
)

func newProjectCmd(_ *app) *cobra.Command {
	var (
		lat     float64
		inverse bool
	)
	cmd := &cobra.Command{
		Use:   "project --lat value",
		Short: "Convert between latitude and spherical mercator Y in degrees",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			v := planar.LocalLatitudeFromSphericalMercatorProjection(lat)
			if inverse {
				v = planar.SphericalMercatorLatitudeProjection(lat)
			}
			_, err := fmt.Fprintln(cmd.OutOrStdout(), strconv.FormatFloat(v, 'f', -1, 64))
			return err
		},
	}
	cmd.Flags().Float64Var(&lat, "lat", 0, "latitude, or mercator Y with --inverse")
	cmd.Flags().BoolVar(&inverse, "inverse", false, "convert mercator Y back to latitude")
	_ = cmd.MarkFlagRequired("lat")
	return cmd
}
