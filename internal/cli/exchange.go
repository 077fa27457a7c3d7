package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/five82/hangar/internal/app"
	"github.com/five82/hangar/internal/report"
)

func newExportCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "export [file]",
		Short: "Export every model and the settings as JSON",
		Long: `Export every model and the settings as JSON.

Without a file the configured export name is written to the current
directory. Use "-" to write to standard output.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(opts, func(s *app.Session) error {
				if len(args) == 1 && args[0] == "-" {
					return s.Store.Export(out(cmd))
				}
				path := s.ExportPath()
				if len(args) == 1 {
					path = args[0]
				}
				n, err := writeFile(path, s.Store.Export)
				if err != nil {
					return err
				}
				fmt.Fprintf(out(cmd), "Exported %s to %s\n", humanize.Bytes(uint64(n)), path)
				return nil
			})
		},
	}
}

func newImportCmd(opts *rootOptions) *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Replace all data with an exported file",
		Long: `Replace all data with an exported file.

Both the multi-model export and the older single-model file are accepted.
Everything currently stored is replaced, so you are asked to confirm first.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read import: %w", err)
			}
			plain := &rootOptions{configPath: opts.configPath}
			return withSession(plain, func(s *app.Session) error {
				pending, err := s.Store.PrepareImport(data)
				if err != nil {
					return err
				}
				ok, err := confirm(fmt.Sprintf("Replace all data with %s (%s)?", filepath.Base(args[0]), pending.Summary()), yes)
				if err != nil || !ok {
					return err
				}
				if err := pending.Commit(); err != nil {
					return err
				}
				fmt.Fprintf(out(cmd), "Imported %s\n", pending.Summary())
				return saved(s)
			})
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "skip the confirmation prompt")
	return cmd
}

func newReportCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "report [file.xlsx]",
		Short: "Write the active model's records to a spreadsheet",
		Long: `Write the active model's records to an Excel workbook with one sheet
each for flights, batteries, maintenance, stock and purchases.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(opts, func(s *app.Session) error {
				m := s.Store.ActiveModel()
				path := m.Name + ".xlsx"
				if len(args) == 1 {
					path = args[0]
				}
				write := func(w io.Writer) error {
					return report.Write(w, m, s.Store.Settings(), s.Store.Locale(), time.Now())
				}
				n, err := writeFile(path, write)
				if err != nil {
					return err
				}
				fmt.Fprintf(out(cmd), "Wrote %s report to %s (%s)\n", m.Name, path, humanize.Bytes(uint64(n)))
				return nil
			})
		},
	}
}

// countingWriter counts bytes written through it.
type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}

// writeFile creates path and fills it with write, returning the size.
func writeFile(path string, write func(io.Writer) error) (int64, error) {
	f, err := os.Create(path)
	if err != nil {
		return 0, fmt.Errorf("create %s: %w", path, err)
	}
	cw := &countingWriter{w: f}
	err = write(cw)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return 0, fmt.Errorf("write %s: %w", path, err)
	}
	return cw.n, nil
}
