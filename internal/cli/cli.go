// Package cli provides the command-line interface for Hangar.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/five82/hangar/internal/app"
)

// Version is stamped at build time.
var Version = "dev"

var errNeedsYes = errors.New("confirmation required: rerun with --yes")

// rootOptions holds the persistent flags shared by every command.
type rootOptions struct {
	configPath string
	model      string
}

func (o *rootOptions) appOptions() app.Options {
	return app.Options{ConfigPath: o.configPath, Model: o.model}
}

// newRootCmd builds the full command tree.
func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:   "hangar",
		Short: "Logbook for RC helicopters",
		Long: `Logbook for RC helicopters

Keeps flights, batteries, maintenance tasks, spare parts and purchases for
one or more models in a single JSON file.

Run without arguments to launch the interactive TUI.`,
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.Run(cmd.Context(), opts.appOptions())
		},
	}

	root.PersistentFlags().StringVar(&opts.configPath, "config", "", "config file (default ~/.config/hangar/config.toml)")
	root.PersistentFlags().StringVarP(&opts.model, "model", "m", "", "work on this model (id or name) instead of the active one")

	root.AddCommand(
		newFlightCmd(opts),
		newBatteryCmd(opts),
		newMaintenanceCmd(opts),
		newStockCmd(opts),
		newPurchaseCmd(opts),
		newModelCmd(opts),
		newSettingsCmd(opts),
		newExportCmd(opts),
		newImportCmd(opts),
		newReportCmd(opts),
		newStatsCmd(opts),
		newLogCmd(opts),
	)
	return root
}

// Execute runs the CLI with fang enhancements.
func Execute(ctx context.Context) error {
	return fang.Execute(ctx, newRootCmd(), fang.WithVersion(Version))
}

// withSession opens the document for the duration of fn.
func withSession(opts *rootOptions, fn func(s *app.Session) error) error {
	s, err := app.Open(opts.appOptions())
	if err != nil {
		return err
	}
	defer func() { _ = s.Close() }()
	return fn(s)
}

// saved turns a failed save after a successful mutation into an error.
func saved(s *app.Session) error {
	if err := s.Store.LastSaveError(); err != nil {
		return fmt.Errorf("save document: %w", err)
	}
	return nil
}

// confirm asks a yes/no question. --yes skips the prompt; without a
// terminal to ask on, the action is refused.
func confirm(title string, yes bool) (bool, error) {
	if yes {
		return true, nil
	}
	fd := os.Stdin.Fd()
	if !isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd) {
		return false, errNeedsYes
	}

	var ok bool
	err := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(title).
				Affirmative("Yes").
				Negative("No").
				Value(&ok),
		),
	).Run()
	if err != nil {
		return false, err
	}
	return ok, nil
}

// printTable writes rows as a bordered table.
func printTable(w io.Writer, headers []string, rows [][]string) {
	if len(rows) == 0 {
		fmt.Fprintln(w, "Nothing here yet.")
		return
	}
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers(headers...).
		Rows(rows...)
	fmt.Fprintln(w, t.Render())
}

// shortID is how ids appear in listings; any unique prefix resolves.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func out(cmd *cobra.Command) io.Writer {
	return cmd.OutOrStdout()
}

func orDash(s string) string {
	if strings.TrimSpace(s) == "" {
		return "-"
	}
	return s
}
