// Command ggchart renders line charts described in YAML files.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gogpu/ggchart"
	"github.com/gogpu/ggchart/config"
)

var (
	outputPath string
	format     string
	verbose    bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "ggchart",
		Short: "Render logarithmic line charts",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				ggchart.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
					Level: slog.LevelDebug,
				})))
			}
		},
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log draw operations to stderr")

	renderCmd := &cobra.Command{
		Use:   "render [chart.yaml]",
		Short: "Render a chart file to PNG or SVG",
		Args:  cobra.ExactArgs(1),
		RunE:  runRender,
	}
	renderCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file path (default: input name with format extension)")
	renderCmd.Flags().StringVarP(&format, "format", "f", "", "Output format: png, svg, record (default: from output extension, else png)")

	demoCmd := &cobra.Command{
		Use:   "demo",
		Short: "Render the built-in sample chart",
		Args:  cobra.NoArgs,
		RunE:  runDemo,
	}
	demoCmd.Flags().StringVarP(&outputPath, "output", "o", "demo.png", "Output file path")
	demoCmd.Flags().StringVarP(&format, "format", "f", "", "Output format: png, svg, record")

	rootCmd.AddCommand(renderCmd, demoCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runRender(cmd *cobra.Command, args []string) error {
	inputPath := args[0]

	chart, err := config.Load(inputPath)
	if err != nil {
		return err
	}

	out, f, err := resolveOutput(inputPath, outputPath, format)
	if err != nil {
		return err
	}
	if err := render(chart, out, f); err != nil {
		return fmt.Errorf("render failed: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Chart saved to %s (%gx%g, %s)\n", out, chart.Width, chart.Height, f)
	return nil
}

func runDemo(cmd *cobra.Command, _ []string) error {
	out, f, err := resolveOutput("demo", outputPath, format)
	if err != nil {
		return err
	}
	if err := render(demoChart(), out, f); err != nil {
		return fmt.Errorf("render failed: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Demo saved to %s\n", out)
	return nil
}

// resolveOutput picks the output path and format from the flags, falling
// back to the output extension and then to PNG.
func resolveOutput(input, output, f string) (string, string, error) {
	f = strings.ToLower(f)
	if f == "" && output != "" {
		f = strings.TrimPrefix(strings.ToLower(filepath.Ext(output)), ".")
	}
	if f == "" {
		f = formatPNG
	}
	if _, ok := targets[f]; !ok {
		return "", "", fmt.Errorf("invalid format: %s (must be png, svg or record)", f)
	}
	if output == "" {
		ext := f
		if f == formatRecord {
			ext = formatPNG
		}
		output = strings.TrimSuffix(input, filepath.Ext(input)) + "." + ext
	}
	return output, f, nil
}

// demoChart is five points on a six-decade log scale, drawn in the second
// palette color over a warm gradient.
func demoChart() *config.Chart {
	return &config.Chart{
		Width:    config.DefaultWidth,
		Height:   config.DefaultHeight,
		Scale:    ggchart.Log10Scale.String(),
		Gradient: []string{"#fa7a52", "#f9d45c"},
		Guides:   []float64{10, 1000, 100000},
		Markers:  true,
		Labels:   true,
		Series: []config.Series{
			{Name: "sample", Values: []float64{0.1, 2, 3.4, 1, 0.34}, Color: ggchart.ColorAt(1).Hex()},
		},
	}
}
