package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"geoclip/internal/geom"
	"geoclip/internal/planar"
)

type clipFlags struct {
	bbox          string
	format        string
	keepContained bool
}

func (f *clipFlags) register(fs *pflag.FlagSet) {
	fs.StringVar(&f.bbox, "bbox", "", "clip box as minx,miny,maxx,maxy")
	fs.StringVarP(&f.format, "format", "f", "", "output format: wkt or geojson (default from config)")
	fs.BoolVar(&f.keepContained, "keep-contained", true, "keep geometries wholly inside the box")
}

func newClipCmd(a *app) *cobra.Command {
	var f clipFlags
	cmd := &cobra.Command{
		Use:   "clip --bbox minx,miny,maxx,maxy path",
		Short: "Clip a dataset to a box and print the result",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			box, err := parseBBox(f.bbox)
			if err != nil {
				return err
			}
			format := a.cfg.Clip.Format
			if f.format != "" {
				format = f.format
			}
			keep := a.cfg.Clip.KeepContained
			if cmd.Flags().Changed("keep-contained") {
				keep = f.keepContained
			}

			d, err := geom.Load(args[0])
			if err != nil {
				return err
			}
			out := geom.Clip(d, box, geom.ClipOptions{KeepContained: keep})
			a.logger.Info("clipped",
				zap.String("path", args[0]),
				zap.Stringer("box", box),
				zap.Int("polygons", len(out.Polygons)),
				zap.Int("lines", len(out.Lines)),
				zap.Int("points", len(out.Points)),
			)
			return writeData(cmd, out, format)
		},
	}
	f.register(cmd.Flags())
	_ = cmd.MarkFlagRequired("bbox")
	return cmd
}

func writeData(cmd *cobra.Command, d geom.Data, format string) error {
	switch format {
	case "wkt":
		_, err := fmt.Fprintln(cmd.OutOrStdout(), geom.MarshalWKT(d))
		return err
	case "geojson":
		b, err := geom.MarshalGeoJSON(d)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(cmd.OutOrStdout(), string(b))
		return err
	}
	return errors.Errorf("unknown format %q", format)
}

// parseBBox reads "minx,miny,maxx,maxy".
func parseBBox(s string) (planar.BoundingBox, error) {
	v, err := parseFloats(s, 4)
	if err != nil {
		return planar.BoundingBox{}, errors.Wrap(err, "--bbox")
	}
	box, err := planar.NewBoundingBox(planar.Coordinate{X: v[0], Y: v[1]}, planar.Coordinate{X: v[2], Y: v[3]})
	if err != nil {
		return planar.BoundingBox{}, errors.Wrap(err, "--bbox")
	}
	return box, nil
}

// parsePoint reads "x,y".
func parsePoint(s string) (planar.Coordinate, error) {
	v, err := parseFloats(s, 2)
	if err != nil {
		return planar.Coordinate{}, errors.Wrap(err, "--point")
	}
	return planar.Coordinate{X: v[0], Y: v[1]}, nil
}

func parseFloats(s string, n int) ([]float64, error) {
	parts := strings.Split(s, ",")
	if len(parts) != n {
		return nil, errors.Errorf("want %d comma separated numbers, got %q", n, s)
	}
	out := make([]float64, n)
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, errors.Wrapf(err, "value %d", i+1)
		}
		out[i] = v
	}
	return out, nil
}
