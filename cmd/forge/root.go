package main

import (
	"github.com/spf13/cobra"

	"github.com/productforge/forge/internal/api"
	"github.com/productforge/forge/version"
)

var (
	cfgFile      string
	homeDir      string
	outputFormat string
)

var rootCmd = &cobra.Command{
	Use:   "forge",
	Short: "Ebook builder with a conversational wizard and chapter extraction",
	Long: `Forge turns raw expertise into finished ebooks.

It includes:
  - A chapter segmenter that splits raw text on detected headings
  - Topic and audience normalizers for wizard answers
  - A guided wizard that assembles a complete product config
  - Design presets and PDF generation via the render service`,
	Version: version.GitRelease,
}

func init() {
	rootCmd.PersistentFlags().StringVar(
		&cfgFile, "config", "", "config file (default: ./config.yaml or ~/.forge/config.yaml)",
	)
	rootCmd.PersistentFlags().StringVar(
		&homeDir, "home", "", "forge home directory (default: ~/.forge)",
	)
	rootCmd.PersistentFlags().StringVarP(
		&outputFormat, "output", "o", "yaml", "output format: yaml or json",
	)

	// Set output format before any command runs
	rootCmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		api.SetOutputFormat(outputFormat)
	}

	rootCmd.AddCommand(versionCmd)
}
