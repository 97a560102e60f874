// Package main provides the entry point for the cv-builder static-site build tool.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/cv-builder/internal/config"
	"github.com/jonathan/cv-builder/internal/observability"
	"github.com/jonathan/cv-builder/internal/rendering"
)

var (
	buildCVFile       string
	buildTemplateFile string
	buildThemeFile    string
	buildOutputFile   string
	buildVerbose      bool
)

func init() {
	rootCmd.Flags().StringVar(&buildCVFile, "cv", "cv.yaml", "Path to career-data YAML file")
	rootCmd.Flags().StringVarP(&buildTemplateFile, "template", "t", "template.html", "Path to HTML template file")
	rootCmd.Flags().StringVar(&buildThemeFile, "theme", "theme.yaml", "Path to theme YAML file (optional)")
	rootCmd.Flags().StringVarP(&buildOutputFile, "output", "o", "index.html", "Path to output HTML file")
	rootCmd.Flags().BoolVarP(&buildVerbose, "verbose", "v", false, "Print detailed summaries of the loaded inputs")
}

func runBuild(_ *cobra.Command, _ []string) error {
	printer := observability.NewPrinter(os.Stdout)

	_, _ = fmt.Fprintln(os.Stdout, "Building CV website...")

	printer.Step("Reading career data from %s...", buildCVFile)
	profile, err := config.LoadProfile(buildCVFile)
	if err != nil {
		return err
	}

	printer.Step("Reading theme configuration from %s...", buildThemeFile)
	palette, err := config.LoadTheme(buildThemeFile, os.Stderr)
	if err != nil {
		return err
	}

	if buildVerbose {
		printer.PrintProfile(profile)
		printer.PrintPalette(palette)
	}

	printer.Step("Rendering template %s...", buildTemplateFile)
	html, err := rendering.Render(profile, palette, buildTemplateFile)
	if err != nil {
		return err
	}

	printer.Step("Writing output to %s...", buildOutputFile)
	if err := rendering.WriteOutput(buildOutputFile, html); err != nil {
		return err
	}

	printer.Done("Build complete! Open %s in your browser to view your CV.", buildOutputFile)
	return nil
}
