package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/simonbloom/bloominimg/internal/config"
	"github.com/simonbloom/bloominimg/internal/export"
	"github.com/simonbloom/bloominimg/internal/grid"
	"github.com/simonbloom/bloominimg/internal/imagery"
	"github.com/simonbloom/bloominimg/internal/style"
	"github.com/simonbloom/bloominimg/internal/tui"
)

var (
	configFile  string
	outDir      string
	cols        int
	seed        int64
	opacityMin  float64
	opacityMax  float64
	levels      int
	durationMin float64
	durationMax float64
	stylePreset string
	maskSpec    string
	toStdout    bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "bloominimg [image]",
		Short: "animated grid overlay editor",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runEdit,
	}

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&outDir, "out", ".", "output directory for exports")
	rootCmd.PersistentFlags().IntVar(&cols, "cols", 0, "column count")
	rootCmd.PersistentFlags().Int64Var(&seed, "seed", 0, "field seed")
	rootCmd.PersistentFlags().Float64Var(&opacityMin, "opacity-min", -1, "minimum cell opacity")
	rootCmd.PersistentFlags().Float64Var(&opacityMax, "opacity-max", -1, "maximum cell opacity")
	rootCmd.PersistentFlags().IntVar(&levels, "levels", -1, "opacity quantization levels (0 = continuous)")
	rootCmd.PersistentFlags().Float64Var(&durationMin, "duration-min", 0, "minimum animation duration (s)")
	rootCmd.PersistentFlags().Float64Var(&durationMax, "duration-max", 0, "maximum animation duration (s)")
	rootCmd.PersistentFlags().StringVar(&stylePreset, "style", "", "style preset name")
	rootCmd.PersistentFlags().StringVar(&maskSpec, "mask", "", "comma-separated cell indices to mask")

	editCmd := &cobra.Command{
		Use:   "edit [image]",
		Short: "open the interactive editor",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runEdit,
	}

	inspectCmd := &cobra.Command{
		Use:   "inspect [image]",
		Short: "print the generated field's geometry and distributions",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runInspect,
	}

	exportSVGCmd := &cobra.Command{
		Use:   "export-svg [image]",
		Short: "write the overlay as an SVG document",
		Args:  cobra.ExactArgs(1),
		RunE:  runExportSVG,
	}

	exportComponentCmd := &cobra.Command{
		Use:   "export-component [image]",
		Short: "emit the standalone component source",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runExportComponent,
	}
	exportComponentCmd.Flags().BoolVar(&toStdout, "stdout", false, "print to stdout instead of the clipboard")

	exportBundleCmd := &cobra.Command{
		Use:   "export-bundle [image]",
		Short: "write the component + instructions + image zip bundle",
		Args:  cobra.ExactArgs(1),
		RunE:  runExportBundle,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list style presets",
		RunE:  runPresets,
	}

	rootCmd.AddCommand(editCmd, inspectCmd, exportSVGCmd, exportComponentCmd, exportBundleCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// buildDocument resolves config file, style preset and CLI flag overrides
// into a validated document. Flags win over the config file, which wins over
// defaults, matching the usual precedence.
func buildDocument(cmd *cobra.Command) (*config.Document, error) {
	doc := config.Default()

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("load config: %w", err)
		}
		doc = loaded
	}

	if stylePreset != "" {
		s, ok := style.GetPreset(stylePreset)
		if !ok {
			return nil, fmt.Errorf("unknown style preset: %s (available: %v)", stylePreset, style.ListPresets())
		}
		doc.Style = s
	}

	if cmd.Flags().Changed("cols") {
		doc.Grid.Cols = cols
	}
	if cmd.Flags().Changed("seed") {
		doc.Grid.Seed = seed
	}
	if cmd.Flags().Changed("opacity-min") {
		doc.Grid.OpacityMin = opacityMin
	}
	if cmd.Flags().Changed("opacity-max") {
		doc.Grid.OpacityMax = opacityMax
	}
	if cmd.Flags().Changed("levels") {
		doc.Grid.Levels = levels
	}
	if cmd.Flags().Changed("duration-min") {
		doc.Grid.DurationMin = durationMin
	}
	if cmd.Flags().Changed("duration-max") {
		doc.Grid.DurationMax = durationMax
	}

	if err := doc.Validate(); err != nil {
		return nil, err
	}
	return doc, nil
}

func parseMask(spec string) (grid.MaskSet, error) {
	mask := grid.NewMaskSet()
	if spec == "" {
		return mask, nil
	}
	for _, part := range strings.Split(spec, ",") {
		idx, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil || idx < 0 {
			return nil, fmt.Errorf("invalid mask index: %q", part)
		}
		mask.Add(idx)
	}
	return mask, nil
}

// buildOverlay assembles the serializer input for one-shot CLI exports.
func buildOverlay(cmd *cobra.Command, imagePath string) (export.Overlay, *imagery.Source, error) {
	doc, err := buildDocument(cmd)
	if err != nil {
		return export.Overlay{}, nil, err
	}

	var src *imagery.Source
	width, height := 1000, 1000
	if imagePath != "" {
		src, err = imagery.Load(imagePath)
		if err != nil {
			return export.Overlay{}, nil, err
		}
		doc.Grid.AspectRatio = src.AspectRatio()
		width, height = src.Width, src.Height
	}

	mask, err := parseMask(maskSpec)
	if err != nil {
		return export.Overlay{}, nil, err
	}
	if n := doc.Grid.CellCount(); mask.Len() > 0 {
		for _, idx := range mask.Indices() {
			if idx >= n {
				return export.Overlay{}, nil, fmt.Errorf("mask index %d out of range for %d cells", idx, n)
			}
		}
	}

	return export.Overlay{
		Cells:  grid.Generate(doc.Grid),
		Grid:   doc.Grid,
		Style:  doc.Style,
		Mask:   mask,
		Width:  width,
		Height: height,
	}, src, nil
}

func runEdit(cmd *cobra.Command, args []string) error {
	doc, err := buildDocument(cmd)
	if err != nil {
		return err
	}

	var src *imagery.Source
	path := doc.Image
	if len(args) > 0 {
		path = args[0]
	}
	if path != "" {
		src, err = imagery.Load(path)
		if err != nil {
			return err
		}
	}

	return tui.Run(doc, src, outDir)
}

func runInspect(cmd *cobra.Command, args []string) error {
	imagePath := ""
	if len(args) > 0 {
		imagePath = args[0]
	}
	o, src, err := buildOverlay(cmd, imagePath)
	if err != nil {
		return err
	}

	rows := o.Grid.Rows()
	fmt.Printf("geometry: %d cols x %d rows = %d cells\n", o.Grid.Cols, rows, o.Grid.CellCount())
	if src != nil {
		fmt.Printf("image: %s (%dx%d, aspect %.3f)\n", src.Path, src.Width, src.Height, src.AspectRatio())
	}
	fmt.Printf("seed: %d\n", o.Grid.Seed)
	if o.Grid.Levels > 1 {
		step := (o.Grid.OpacityMax - o.Grid.OpacityMin) / float64(o.Grid.Levels-1)
		fmt.Printf("quantization: %d levels, step %.3f\n", o.Grid.Levels, step)
		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "LEVEL\tOPACITY\tCELLS")
		counts := make([]int, o.Grid.Levels)
		for _, c := range o.Cells {
			k := int((c.Opacity-o.Grid.OpacityMin)/step + 0.5)
			if k >= 0 && k < len(counts) {
				counts[k]++
			}
		}
		for k, n := range counts {
			fmt.Fprintf(w, "%d\t%.3f\t%d\n", k, o.Grid.OpacityMin+float64(k)*step, n)
		}
		w.Flush()
	}

	opacities := make([]float64, len(o.Cells))
	durations := make([]float64, len(o.Cells))
	for i, c := range o.Cells {
		opacities[i] = c.Opacity
		durations[i] = c.Duration
	}

	fmt.Println()
	fmt.Println(asciigraph.Plot(histogram(opacities, 20),
		asciigraph.Height(8),
		asciigraph.Width(60),
		asciigraph.Caption("opacity distribution"),
	))
	fmt.Println()
	fmt.Println(asciigraph.Plot(histogram(durations, 20),
		asciigraph.Height(8),
		asciigraph.Width(60),
		asciigraph.Caption("duration distribution (s)"),
	))

	return nil
}

// histogram buckets values into bins and returns the counts as floats for
// plotting.
func histogram(values []float64, bins int) []float64 {
	out := make([]float64, bins)
	if len(values) == 0 {
		return out
	}
	min, max := values[0], values[0]
	for _, v := range values {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	span := max - min
	if span == 0 {
		out[0] = float64(len(values))
		return out
	}
	for _, v := range values {
		k := int((v - min) / span * float64(bins))
		if k >= bins {
			k = bins - 1
		}
		out[k]++
	}
	return out
}

func runExportSVG(cmd *cobra.Command, args []string) error {
	o, _, err := buildOverlay(cmd, args[0])
	if err != nil {
		return err
	}

	path, err := export.WriteSVG(outDir, o)
	if err != nil {
		return err
	}
	fmt.Printf("wrote %s (%d rects", path, o.Grid.CellCount()-o.Mask.Len())
	if o.Style.Dots {
		fmt.Printf(", %d dots", (o.Grid.Rows()+1)*(o.Grid.Cols+1))
	}
	fmt.Println(")")
	return nil
}

func runExportComponent(cmd *cobra.Command, args []string) error {
	imagePath := ""
	if len(args) > 0 {
		imagePath = args[0]
	}
	o, _, err := buildOverlay(cmd, imagePath)
	if err != nil {
		return err
	}

	if toStdout {
		fmt.Print(export.Component(o))
		return nil
	}
	if err := export.CopyComponent(o); err != nil {
		return err
	}
	fmt.Println("component copied to clipboard")
	return nil
}

func runExportBundle(cmd *cobra.Command, args []string) error {
	o, src, err := buildOverlay(cmd, args[0])
	if err != nil {
		return err
	}

	imagePath := ""
	if src != nil {
		imagePath = src.Path
	}
	path, warning, err := export.WriteBundle(outDir, o, imagePath)
	if err != nil {
		return err
	}
	if warning != "" {
		fmt.Printf("warning: %s\n", warning)
	}
	fmt.Printf("wrote %s\n", path)
	return nil
}

func runPresets(cmd *cobra.Command, args []string) error {
	names := style.ListPresets()

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tFILL\tBLEND\tDOTS\tSTROKE\tANIMATED")
	for _, name := range names {
		s, _ := style.GetPreset(name)
		fmt.Fprintf(w, "%s\t%s\t%s\t%v\t%v\t%v\n",
			name, s.FillColor, s.BlendMode, s.Dots, s.Stroke, s.Animate)
	}
	return w.Flush()
}
