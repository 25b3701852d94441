package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/landing/internal/progress"
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Build the static profile page",
	Long:  `Loads the content document, renders every section into the page shell and writes index.html, style.css, script.js, data.json and the configured assets.`,
	RunE:  runBuild,
}

func init() {
	buildCmd.Flags().String("output", "", "override output directory (defaults to output_dir from config)")
	rootCmd.AddCommand(buildCmd)
}

func runBuild(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	outputDir, _ := cmd.Flags().GetString("output")
	if outputDir == "" {
		outputDir = cfg.OutputDir
	}

	gen, err := createGeneratorFromConfig(cfg, outputDir, progress.NewReporter())
	if err != nil {
		return err
	}
	b, err := gen.Generate(cmd.Context())
	if err != nil {
		return fmt.Errorf("building page: %w", err)
	}

	fmt.Printf("Page built: %s (%d files, %d assets)\n", outputDir, len(b.Files), b.Assets)
	return nil
}
