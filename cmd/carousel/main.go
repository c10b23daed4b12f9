package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/recera/carousel/internal/config"
)

var (
	version = "0.1.0"
	commit  = "dev"
	date    = "unknown"
)

func main() {
	var configPath string

	var rootCmd = &cobra.Command{
		Use:   "carousel",
		Short: "Carousel - image lightbox galleries in Go",
		Long: `Carousel builds static image galleries whose lightbox controller is
compiled to WebAssembly. Describe projects in a YAML manifest, preview them in
the terminal, and serve them with live reload while you work.`,
		Version:       fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", config.FileName, "Path to the project config")

	rootCmd.AddCommand(newInitCommand(&configPath))
	rootCmd.AddCommand(newBuildCommand(&configPath))
	rootCmd.AddCommand(newDevCommand(&configPath))
	rootCmd.AddCommand(newPreviewCommand(&configPath))

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
