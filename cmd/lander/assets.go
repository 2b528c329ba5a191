package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-lander/internal/assets"
)

var assetsCmd = &cobra.Command{
	Use:   "assets",
	Short: "List the sprite pack",
	Long: `Loads the sprite manifest, resolves every frame and prints the sprites.
Exits with status 1 if the manifest is invalid or a sprite is missing.`,
	Args: cobra.NoArgs,
	RunE: runAssets,
}

var (
	headerStyle = lipgloss.NewStyle().Bold(true)
	nameStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

func runAssets(cmd *cobra.Command, args []string) error {
	lib, err := loadSprites(flagAssets)
	if err != nil {
		return fmt.Errorf("assets: %w", err)
	}
	printSprites(cmd.OutOrStdout(), lib)
	return nil
}

func printSprites(w io.Writer, lib *assets.Library) {
	sprites := lib.Sprites()

	maxNameLen := 4 // "Name" header
	for _, s := range sprites {
		maxNameLen = max(maxNameLen, len(s.Name))
	}

	fmt.Fprintln(w, headerStyle.Render(fmt.Sprintf("  %-*s  %-8s  %s", maxNameLen, "Name", "Color", "Frames")))
	fmt.Fprintln(w, dimStyle.Render(fmt.Sprintf("  %-*s  %-8s  %s", maxNameLen, "----", "-----", "------")))

	for _, s := range sprites {
		sizes := make([]string, 0, len(s.Frames))
		for _, f := range s.Frames {
			sizes = append(sizes, fmt.Sprintf("%dx%d", f.W, f.H))
		}
		fmt.Fprintf(w, "  %s  %-8s  %d %s\n",
			nameStyle.Render(fmt.Sprintf("%-*s", maxNameLen, s.Name)),
			s.Color,
			len(s.Frames),
			dimStyle.Render("("+strings.Join(sizes, ", ")+")"),
		)
	}

	fmt.Fprintln(w)
	fmt.Fprintf(w, "%d sprites, all resolved.\n", len(sprites))
}
