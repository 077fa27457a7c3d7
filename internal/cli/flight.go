package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/five82/hangar/internal/app"
	"github.com/five82/hangar/internal/logbook"
	"github.com/five82/hangar/internal/state"
)

func newFlightCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "flight",
		Aliases: []string{"flights", "f"},
		Short:   "Log and list flights",
	}
	cmd.AddCommand(newFlightAddCmd(opts), newFlightListCmd(opts), newFlightRemoveCmd(opts))
	return cmd
}

func newFlightAddCmd(opts *rootOptions) *cobra.Command {
	var (
		in      state.FlightInput
		battery string
	)
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Log a flight",
		Long: `Log a flight on the active model.

When a battery is given it gains a cycle and its last-used date becomes the
flight date. The battery may be named by id, number or name.

Examples:
  hangar flight add --duration 6.5 --battery B2
  hangar flight add -d 5 --date 2024-06-01 --notes "gusty"`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if in.Duration < 0 {
				return errors.New("duration cannot be negative")
			}
			if in.Date != "" {
				if _, ok := logbook.ParseDate(in.Date); !ok {
					return fmt.Errorf("invalid date %q, want YYYY-MM-DD", in.Date)
				}
			}
			return withSession(opts, func(s *app.Session) error {
				if battery != "" {
					b, err := resolveBattery(s.Store, battery)
					if err != nil {
						return err
					}
					in.BatteryID = b.ID
				}
				f, err := s.Store.AddFlight(in)
				if err != nil {
					return err
				}
				fmt.Fprintf(out(cmd), "Logged %s min on %s (%s)\n", number(f.Duration), f.Date, shortID(f.ID))
				return saved(s)
			})
		},
	}
	cmd.Flags().Float64VarP(&in.Duration, "duration", "d", 0, "flight time in minutes")
	cmd.Flags().StringVar(&in.Date, "date", "", "flight date, YYYY-MM-DD (default today)")
	cmd.Flags().StringVarP(&battery, "battery", "b", "", "battery id, number or name")
	cmd.Flags().StringVar(&in.Notes, "notes", "", "free-form notes")
	_ = cmd.MarkFlagRequired("duration")
	return cmd
}

func newFlightListCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List flights, newest first",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(opts, func(s *app.Session) error {
				m := s.Store.ActiveModel()
				rows := make([][]string, 0, len(m.Flights))
				for _, f := range s.Store.Flights() {
					battery := "-"
					if b, ok := m.Battery(f.BatteryID); ok {
						battery = b.Label()
					}
					rows = append(rows, []string{shortID(f.ID), f.Date, number(f.Duration), battery, orDash(f.Notes)})
				}
				printTable(out(cmd), []string{"ID", "Date", "Minutes", "Battery", "Notes"}, rows)
				return nil
			})
		},
	}
}

func newFlightRemoveCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "rm <flight>",
		Aliases: []string{"remove"},
		Short:   "Delete a flight",
		Long: `Delete a flight by id or unique id prefix.

The battery it used keeps its cycle count.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(opts, func(s *app.Session) error {
				f, err := resolveFlight(s.Store, args[0])
				if err != nil {
					return err
				}
				if err := s.Store.DeleteFlight(f.ID); err != nil {
					return err
				}
				fmt.Fprintf(out(cmd), "Deleted flight of %s\n", f.Date)
				return saved(s)
			})
		},
	}
}
