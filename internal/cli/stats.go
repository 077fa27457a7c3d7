package cli

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/five82/hangar/internal/app"
	"github.com/five82/hangar/internal/logbook"
	"github.com/five82/hangar/internal/logging"
)

func newStatsCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Summarize the active model",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(opts, func(s *app.Session) error {
				m := s.Store.ActiveModel()
				st := s.Store.Stats()
				w := out(cmd)

				fmt.Fprintf(w, "%s\n", m.Name)
				fmt.Fprintf(w, "  Flights:      %s\n", humanize.Comma(int64(st.Flights)))
				fmt.Fprintf(w, "  Flight time:  %s min\n", number(st.Minutes))
				fmt.Fprintf(w, "  Batteries:    %d\n", st.Batteries)

				if flights := s.Store.Flights(); len(flights) > 0 {
					last := flights[0].Date
					if t, ok := logbook.ParseDate(last); ok {
						last += " (" + humanize.Time(t) + ")"
					}
					fmt.Fprintf(w, "  Last flight:  %s\n", last)
				}

				due := 0
				for _, v := range s.Store.Maintenance() {
					if v.Status.IsDue {
						due++
					}
				}
				low := 0
				for _, it := range s.Store.Stock() {
					if it.IsLow() {
						low++
					}
				}
				var spent float64
				for _, p := range s.Store.Purchases() {
					if p.Price != nil {
						spent += *p.Price
					}
				}
				fmt.Fprintf(w, "  Due tasks:    %d\n", due)
				fmt.Fprintf(w, "  Low stock:    %d\n", low)
				fmt.Fprintf(w, "  Spent:        %s\n", humanize.CommafWithDigits(spent, 2))
				return nil
			})
		},
	}
}

func newLogCmd(opts *rootOptions) *cobra.Command {
	var lines int
	cmd := &cobra.Command{
		Use:   "log",
		Short: "Show the end of the Hangar log",
		Long: `Show the end of the Hangar log. Load and save failures are recorded
there rather than interrupting the TUI.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(opts, func(s *app.Session) error {
				path := s.Config.LogPath()
				tail, err := logging.Tail(path, lines)
				if err != nil {
					return err
				}
				w := out(cmd)
				if len(tail) == 0 {
					fmt.Fprintf(w, "%s is empty\n", path)
					return nil
				}
				for _, line := range tail {
					fmt.Fprintln(w, line)
				}
				return nil
			})
		},
	}
	cmd.Flags().IntVarP(&lines, "lines", "n", 50, "number of lines to show")
	return cmd
}
