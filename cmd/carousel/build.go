package main

import (
	"context"
	"log"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/recera/carousel/internal/cache"
	"github.com/recera/carousel/internal/site"
)

func newBuildCommand(configPath *string) *cobra.Command {
	var output string
	var noCache bool

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Build the static gallery site",
		Long:  `Renders index.html, compiles the controller to WebAssembly and copies wasm_exec.js and local images into the output directory.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBuild(cmd.Context(), *configPath, output, noCache)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Output directory (defaults to output_dir from the config)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "Always recompile the controller")

	return cmd
}

func runBuild(ctx context.Context, configPath, output string, noCache bool) error {
	log.Println("🚀 Building gallery...")
	start := time.Now()

	s, err := site.Load(configPath)
	if err != nil {
		return err
	}
	if !noCache {
		s.Cache = openCache()
	}

	if output == "" {
		output = filepath.Join(s.Dir, s.Config.OutputDir)
	}

	log.Println("🔨 Building WASM...")
	report, err := s.Build(ctx, output)
	if err != nil {
		return err
	}

	if report.Cached {
		log.Println("⚡ Using cached WASM build")
	}
	for _, m := range report.Missing {
		log.Printf("⚠️  Image not found: %s", m)
	}
	log.Printf("  Projects: %d", len(s.Manifest.Projects))
	log.Printf("  Images:   %d copied", report.Assets)
	log.Printf("  WASM:     %s", site.FormatSize(report.WasmSize))
	log.Printf("✨ Build output: %s (%s)", output, time.Since(start).Round(time.Millisecond))
	return nil
}

// openCache returns nil when the cache directory is unusable; builds then
// always compile.
func openCache() *cache.Cache {
	c, err := cache.New(cache.DefaultConfig())
	if err != nil {
		log.Printf("⚠️  Failed to initialize build cache: %v", err)
		return nil
	}
	return c
}
