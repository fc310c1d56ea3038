// Package main is the entry point for the Vibe OS terminal app.
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/vibeos/vibe-os/internal/config"
	"github.com/vibeos/vibe-os/internal/tui"
)

var version = "0.1.0"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// rootOptions are the flags shared by every command.
type rootOptions struct {
	configPath string
	ephemeral  bool
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	var (
		initConfig bool
		habits     bool
		focus      bool
	)

	cmd := &cobra.Command{
		Use:   "vibe-os",
		Short: "Tasks, habits and a focus timer in your terminal",
		Long: `vibe-os - a cozy productivity dashboard for the terminal

Tasks filtered by day, daily habits with streaks, a Pomodoro focus timer
with lo-fi music, and a calendar. Press ? inside the app for key bindings.

Config file: ~/.config/vibe-os/config.yaml (create it with --init)`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if initConfig {
				return createConfigTemplate(cmd.InOrStdin(), cmd.OutOrStdout(), opts.configPath)
			}

			// determine initial tab
			initialTab := ""
			if habits {
				initialTab = "habits"
			} else if focus {
				initialTab = "focus"
			}
			return runApp(opts, initialTab)
		},
	}

	cmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "Path to the config file")
	cmd.PersistentFlags().BoolVar(&opts.ephemeral, "ephemeral", false, "Keep data in memory only")
	cmd.Flags().BoolVar(&initConfig, "init", false, "Create a template config file")
	cmd.Flags().BoolVar(&habits, "habits", false, "Start on the habits tab")
	cmd.Flags().BoolVar(&focus, "focus", false, "Start on the focus tab")
	cmd.MarkFlagsMutuallyExclusive("habits", "focus")

	cmd.AddCommand(
		newAddCmd(opts),
		newListCmd(opts),
		newDoneCmd(opts),
		newRmCmd(opts),
		newStatsCmd(opts),
		newFocusCmd(opts),
	)
	return cmd
}

// createConfigTemplate writes the default configuration, asking before it
// replaces an existing file.
func createConfigTemplate(in io.Reader, out io.Writer, path string) error {
	if path == "" {
		p, err := config.ConfigPath()
		if err != nil {
			return fmt.Errorf("failed to get config path: %w", err)
		}
		path = p
	}

	// Check if config already exists
	if _, err := os.Stat(path); err == nil {
		fmt.Fprintf(out, "Config file already exists: %s\n", path)
		fmt.Fprint(out, "Overwrite? [y/N]: ")

		response, _ := bufio.NewReader(in).ReadString('\n')
		response = strings.TrimSpace(response)
		if response != "y" && response != "Y" {
			fmt.Fprintln(out, "Aborted.")
			return nil
		}
	}

	if err := config.Save(config.DefaultConfig(), path); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	fmt.Fprintf(out, "Config file created: %s\n\n", path)
	fmt.Fprintln(out, "Edit it to pick a theme, the timer lengths or your music player,")
	fmt.Fprintln(out, "then run 'vibe-os' to start.")
	return nil
}

// runApp starts the main TUI application.
func runApp(opts *rootOptions, initialTab string) error {
	e, err := openEnv(opts)
	if err != nil {
		return err
	}
	defer e.Close()

	app := tui.NewApp(e.cfg, e.tuiDeps(), initialTab)
	p := tea.NewProgram(app, tea.WithAltScreen())

	e.log.WithField("tab", initialTab).Info("starting")
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}
