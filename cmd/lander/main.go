// lander is a terminal rocket landing game.
//
// Usage:
//
//	lander           - Play
//	lander assets    - List the sprite pack and check that it resolves
//
// Global flags:
//
//	--config <path>    - Custom presentation config YAML
//	--assets <dir>     - Load sprites from a directory instead of the built-in pack
//	--log-file <path>  - Log destination (default: ~/.arcade/lander.log)
//	--mute             - Disable sound
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-lander/internal/assets"
)

var (
	// Global flags
	flagConfig  string
	flagAssets  string
	flagLogFile string
	flagMute    bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "lander",
	Short: "Lander - land a rocket in your terminal",
	Long: `Lander is a terminal game: fly a rocket down onto the landing pad
using the main engine and two side thrusters. Touch down too hard or drift
off the field and the rocket explodes.

Controls:
  W/Up       - Main engine
  A/Left     - Left thruster (turns the nose right)
  D/Right    - Right thruster (turns the nose left)
  S/Enter    - Start
  Q/Ctrl+C   - Quit

Terminals repeat only the last key held down. To fire two thrusters at
once, keep tapping the one pressed first.

Examples:
  lander
  lander --mute
  lander --config ./my-lander.yaml
  lander assets --assets ./my-sprites`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runPlay,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagAssets, "assets", "", "Sprite pack directory containing manifest.yaml (default: built-in)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "~/.arcade/lander.log", "Path to log file")
	rootCmd.PersistentFlags().BoolVar(&flagMute, "mute", false, "Disable sound")

	rootCmd.AddCommand(assetsCmd)
}

// expandHome expands a leading ~ to the home directory.
func expandHome(p string) (string, error) {
	if p == "" || p[0] != '~' {
		return p, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot expand home directory: %w", err)
	}
	return filepath.Join(home, p[1:]), nil
}

// newLogger opens the log file. The terminal belongs to the game, so when
// the file is unavailable logs are dropped. The returned func closes the file.
func newLogger(path string) (*log.Logger, func()) {
	opts := log.Options{
		ReportTimestamp: true,
		Prefix:          "lander",
		Level:           log.InfoLevel,
	}

	resolved, err := expandHome(path)
	if err != nil || resolved == "" {
		return log.NewWithOptions(io.Discard, opts), func() {}
	}
	if err := os.MkdirAll(filepath.Dir(resolved), 0o755); err != nil {
		return log.NewWithOptions(io.Discard, opts), func() {}
	}
	f, err := os.OpenFile(resolved, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return log.NewWithOptions(io.Discard, opts), func() {}
	}
	return log.NewWithOptions(f, opts), func() { f.Close() }
}

// loadSprites loads the sprite pack from dir, or the built-in pack when dir
// is empty.
func loadSprites(dir string) (*assets.Library, error) {
	if dir == "" {
		return assets.LoadEmbedded()
	}
	resolved, err := expandHome(dir)
	if err != nil {
		return nil, err
	}
	return assets.Load(os.DirFS(resolved))
}
