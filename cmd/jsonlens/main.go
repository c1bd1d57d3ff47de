package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/jsonlens/jsonlens/internal/cmd"
	"github.com/jsonlens/jsonlens/internal/config"
	"github.com/jsonlens/jsonlens/internal/document"
	"github.com/jsonlens/jsonlens/internal/ui"
)

func main() {
	root := &cobra.Command{
		Use:   "jsonlens <file>",
		Short: "jsonlens - terminal JSON viewer and editor",
		Long:  "jsonlens: browse a JSON, JSONC or YAML document as a tree and edit node values without disturbing the rest of the file.",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runTUI(args[0])
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(cmd.GetCmd())
	root.AddCommand(cmd.SetCmd())
	root.AddCommand(cmd.PatchCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	// Force truecolor so hex colors render correctly
	// Must be set before any lipgloss style initialization
	os.Setenv("COLORTERM", "truecolor")
}

func runTUI(path string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	file, err := document.Load(path)
	if err != nil {
		return err
	}
	app := ui.NewApp(file, cfg)

	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui error: %w", err)
	}
	return nil
}
