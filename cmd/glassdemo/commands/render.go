// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package commands

import (
	"bytes"
	"context"
	"fmt"
	"image"
	_ "image/jpeg"
	"image/png"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.trai.ch/zerr"
	"golang.org/x/image/draw"
	"golang.org/x/sync/errgroup"

	"github.com/gogpu/glass"
	"github.com/gogpu/glass/frame"
	"github.com/gogpu/glass/resource"
	"github.com/gogpu/glass/surface"
)

// ErrNoFilter is returned when file output needs a filter but the
// parameters produced none.
var ErrNoFilter = zerr.New("no filter for these parameters")

// attrFlags maps attribute names to their flag names.
var attrFlags = []struct{ attr, flag string }{
	{glass.AttrStrength, "strength"},
	{glass.AttrDepth, "depth"},
	{glass.AttrBlur, "blur"},
	{glass.AttrChromaticAberration, "chromatic-aberration"},
}

type renderOptions struct {
	width, height float64
	preset        string
	href          string
	label         string
	blurOnly      bool

	mapPNG    string
	mapSVG    string
	filterSVG string
	input     string
	output    string
}

func (c *CLI) newRenderCmd() *cobra.Command {
	var opts renderOptions
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Run the glass pipeline for one box",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := LoadConfig(c.configPath())
			if err != nil {
				return err
			}
			attrs, err := cfg.Preset(opts.preset)
			if err != nil {
				return err
			}
			for _, af := range attrFlags {
				if cmd.Flags().Changed(af.flag) {
					v, _ := cmd.Flags().GetString(af.flag)
					attrs[af.attr] = v
				}
			}
			return render(cmd.Context(), cmd.OutOrStdout(), opts, glass.MapAttributes(attrs))
		},
	}

	f := cmd.Flags()
	f.Float64Var(&opts.width, "width", 320, "Box width in pixels")
	f.Float64Var(&opts.height, "height", 120, "Box height in pixels")
	f.StringVarP(&opts.preset, "preset", "p", "default", "Preset name")
	f.StringVar(&opts.href, "href", "", "Render the box as a link to this target")
	f.StringVar(&opts.label, "label", "glass", "Text content mounted in the box")
	f.BoolVar(&opts.blurOnly, "blur-only", false, "Simulate an environment without filter support")
	for _, af := range attrFlags {
		f.String(af.flag, "", "Override the "+af.attr+" attribute")
	}
	f.StringVar(&opts.mapPNG, "map-png", "", "Write the rasterized displacement map as PNG")
	f.StringVar(&opts.mapSVG, "map-svg", "", "Write the displacement map SVG")
	f.StringVar(&opts.filterSVG, "filter-svg", "", "Write the filter SVG")
	f.StringVar(&opts.input, "input", "", "Image to filter (PNG or JPEG), scaled to the box")
	f.StringVar(&opts.output, "output", "", "Write the filtered input image as PNG")
	cmd.MarkFlagsRequiredTogether("input", "output")
	return cmd
}

// propertySink keeps the last value of each published property.
type propertySink struct {
	values map[string]string
	order  []string
}

func (s *propertySink) SetProperty(name, value string) {
	if _, ok := s.values[name]; !ok {
		s.order = append(s.order, name)
	}
	s.values[name] = value
}

func render(ctx context.Context, out io.Writer, opts renderOptions, attrs glass.MapAttributes) error {
	host, err := surface.NewHost(surface.Options{Width: opts.width, Height: opts.height})
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create surface"), "size", fmt.Sprintf("%vx%v", opts.width, opts.height))
	}
	if opts.label != "" {
		host.Mount(surface.Node{Name: "label", Text: opts.label})
	}

	probe := glass.SoftwareProbe
	if opts.blurOnly {
		probe = func() (bool, error) { return false, nil }
	}

	loop := frame.NewLoop(0)
	store := resource.NewStore[*glass.Resource]()
	sink := &propertySink{values: make(map[string]string)}
	e := glass.New(host, attrs, sink,
		glass.WithScheduler(loop),
		glass.WithGate(glass.NewGate(probe)),
		glass.WithStore(store),
	)
	defer e.Close()
	host.Observe(e.Resized)

	e.Update()
	if err := host.SetHref(opts.href); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to set href"), "href", opts.href)
	}
	loop.Tick()

	w, h := host.Measure()
	_, _ = fmt.Fprintf(out, "id\t%s\n", e.ID())
	_, _ = fmt.Fprintf(out, "surface\t%s %vx%v\n", host.Kind(), w, h)
	for _, name := range sink.order {
		_, _ = fmt.Fprintf(out, "%s\t%s\n", name, abbreviate(sink.values[name], 96))
	}
	res, ok := e.Resource()
	if ok {
		_, _ = fmt.Fprintf(out, "key\t%s\n", res.Key)
	}

	if opts.mapPNG == "" && opts.mapSVG == "" && opts.filterSVG == "" && opts.output == "" {
		return nil
	}
	if !ok {
		return zerr.With(ErrNoFilter, "filter", sink.values[glass.PropertyFilter])
	}
	return writeOutputs(ctx, opts, res)
}

func writeOutputs(ctx context.Context, opts renderOptions, res *glass.Resource) error {
	g, ctx := errgroup.WithContext(ctx)

	if opts.mapSVG != "" {
		g.Go(func() error { return writeFile(opts.mapSVG, res.Map.SVG()) })
	}
	if opts.filterSVG != "" {
		g.Go(func() error { return writeFile(opts.filterSVG, res.Filter.SVG()) })
	}
	if opts.mapPNG != "" {
		g.Go(func() error { return writePNG(ctx, opts.mapPNG, res.Map.Rasterize()) })
	}
	if opts.output != "" {
		g.Go(func() error {
			src, err := loadScaled(opts.input, res.Map.Width, res.Map.Height)
			if err != nil {
				return err
			}
			return writePNG(ctx, opts.output, res.Filter.Apply(src, res.Map.Rasterize()))
		})
	}
	return g.Wait()
}

// loadScaled decodes path and scales it to w×h.
func loadScaled(path string, w, h int) (*image.RGBA, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to open input"), "path", path)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to decode input"), "path", path)
	}
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Src, nil)
	return dst, nil
}

func writePNG(ctx context.Context, path string, img image.Image) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to encode png"), "path", path)
	}
	return writeFile(path, buf.Bytes())
}

func writeFile(path string, data []byte) error {
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to write output"), "path", path)
	}
	return nil
}

func abbreviate(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	half := (limit - 3) / 2
	return s[:half] + "..." + s[len(s)-half:]
}
