package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var rootCmd = &cobra.Command{
	Use:   "unwrapdemo",
	Short: "Trigger verbose unwrap banners from canned scenarios",
	Long:  `unwrapdemo runs small failure scenarios through the unwrap library so the diagnostic banners can be inspected on a real terminal. Every scenario except "ok" terminates the process.`,
}

func main() {
	rootCmd.PersistentFlags().String("color", "auto", "colorize scenario listings (auto|on|off)")
	rootCmd.PersistentFlags().String("file", "", "load extra scenarios from a TOML file")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(runCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// allScenarios resolves the color mode and collects built-in scenarios plus
// any described by --file.
func allScenarios(cmd *cobra.Command) ([]Scenario, error) {
	if err := applyColorMode(cmd); err != nil {
		return nil, err
	}
	scenarios := builtinScenarios()
	path, err := cmd.Flags().GetString("file")
	if err != nil {
		return nil, err
	}
	if path != "" {
		extra, err := loadScenarios(path)
		if err != nil {
			return nil, err
		}
		scenarios = append(scenarios, extra...)
	}
	return scenarios, nil
}

func applyColorMode(cmd *cobra.Command) error {
	mode, err := cmd.Flags().GetString("color")
	if err != nil {
		return err
	}
	switch mode {
	case "on":
		color.NoColor = false
	case "off":
		color.NoColor = true
	case "auto":
		color.NoColor = !isTerminal(os.Stdout)
	default:
		return fmt.Errorf("unknown color mode %q", mode)
	}
	return nil
}

// isTerminal reports whether f is attached to a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
