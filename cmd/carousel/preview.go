package main

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/recera/carousel/internal/site"
	"github.com/recera/carousel/internal/ui"
)

func newPreviewCommand(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "preview",
		Short: "Browse the gallery in the terminal",
		Long:  `Mounts the real controller on an in-memory page and drives it from the keyboard, without a browser or a WASM build.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPreview(*configPath)
		},
	}
}

func runPreview(configPath string) error {
	s, err := site.Load(configPath)
	if err != nil {
		return err
	}
	o, err := s.PageOptions("")
	if err != nil {
		return err
	}
	m, err := ui.NewModel(o, s.Config.Options())
	if err != nil {
		return err
	}

	_, err = tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}
