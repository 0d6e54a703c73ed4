// teakit-demo is an interactive gallery of the teakit widgets.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/teakit/teakit/internal/config"
	"github.com/teakit/teakit/internal/demo"
)

// version is set via -ldflags at build time.
var version = "(devel)"

var rootCmd = &cobra.Command{
	Use:   "teakit-demo",
	Short: "Interactive gallery of the teakit widgets",
	Long:  "teakit-demo walks through the teakit component set: validated inputs, forms, tables, trees, timers and dialogs.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(cmd, "")
	},
}

// run loads config, applies flag overrides and launches the TUI at
// the named screen.
func run(cmd *cobra.Command, screen string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if accent, _ := cmd.Flags().GetString("accent"); accent != "" {
		cfg.UI.Accent = accent
	}
	return demo.RunScreen(cfg, screen)
}

// demoCmd builds a subcommand that jumps straight to one demo screen.
func demoCmd(name, short string) *cobra.Command {
	return &cobra.Command{
		Use:   name,
		Short: short,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, name)
		},
	}
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the current version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("teakit-demo", version)
	},
}

func init() {
	rootCmd.PersistentFlags().String("accent", "", "Accent color as a hex value (overrides TEAKIT_UI_ACCENT)")

	rootCmd.AddCommand(demoCmd("form", "Open the form demo"))
	rootCmd.AddCommand(demoCmd("table", "Open the table demo"))
	rootCmd.AddCommand(demoCmd("tree", "Open the tree demo"))
	rootCmd.AddCommand(demoCmd("countdown", "Open the countdown demo"))
	rootCmd.AddCommand(demoCmd("dialogs", "Open the dialogs demo"))
	rootCmd.AddCommand(versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
