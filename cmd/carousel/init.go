package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/recera/carousel/internal/config"
	"github.com/recera/carousel/internal/manifest"
)

func newInitCommand(configPath *string) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a starter config and manifest",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInit(*configPath, force)
		},
	}
	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite existing files")
	return cmd
}

func runInit(configPath string, force bool) error {
	cfg := config.DefaultConfig()
	manifestPath := filepath.Join(filepath.Dir(configPath), cfg.Manifest)

	for _, p := range []string{configPath, manifestPath} {
		if _, err := os.Stat(p); err == nil && !force {
			return fmt.Errorf("%s already exists (use --force to overwrite)", p)
		}
	}

	if err := cfg.Save(configPath); err != nil {
		return err
	}
	log.Printf("📝 Wrote %s", configPath)

	data, err := yaml.Marshal(starterManifest())
	if err != nil {
		return err
	}
	if err := os.WriteFile(manifestPath, data, 0644); err != nil {
		return fmt.Errorf("writing manifest: %w", err)
	}
	log.Printf("📝 Wrote %s", manifestPath)
	log.Println("✨ Add your images, then run `carousel preview` or `carousel dev`")
	return nil
}

func starterManifest() *manifest.Manifest {
	return &manifest.Manifest{
		Title: "My Gallery",
		Projects: []manifest.Entry{
			{
				Image: manifest.Image{
					Src:      "images/cover.jpg",
					Alt:      "Cover",
					DetailMD: "A short **markdown** description.",
				},
				Gallery: []manifest.Image{
					{Src: "images/detail-1.jpg", Alt: "Detail one"},
					{Src: "images/detail-2.jpg", Alt: "Detail two", Detail: "Plain text caption"},
				},
			},
		},
	}
}
