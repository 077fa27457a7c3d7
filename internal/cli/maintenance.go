package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/five82/hangar/internal/app"
	"github.com/five82/hangar/internal/logbook"
	"github.com/five82/hangar/internal/state"
)

func newMaintenanceCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "maintenance",
		Aliases: []string{"maint"},
		Short:   "Track recurring maintenance tasks",
	}
	cmd.AddCommand(
		newMaintenanceAddCmd(opts),
		newMaintenanceListCmd(opts),
		newMaintenanceDoneCmd(opts),
		newMaintenanceRemoveCmd(opts),
	)
	return cmd
}

func newMaintenanceAddCmd(opts *rootOptions) *cobra.Command {
	var in state.MaintenanceInput
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a maintenance task",
		Long: `Add a maintenance task with a day interval, a flight interval or both.

A task that was never done is due as soon as it has an interval.

Examples:
  hangar maintenance add --title "Check main blades" --flights 20
  hangar maint add --title "Grease bearings" --days 90 --flights 50`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if in.IntervalDays < 0 || in.IntervalFlights < 0 {
				return fmt.Errorf("intervals cannot be negative")
			}
			return withSession(opts, func(s *app.Session) error {
				t, err := s.Store.AddMaintenance(in)
				if err != nil {
					return err
				}
				fmt.Fprintf(out(cmd), "Added task %q (%s)\n", t.Title, shortID(t.ID))
				return saved(s)
			})
		},
	}
	cmd.Flags().StringVar(&in.Title, "title", "", "task title")
	cmd.Flags().IntVar(&in.IntervalDays, "days", 0, "repeat every N days")
	cmd.Flags().IntVar(&in.IntervalFlights, "flights", 0, "repeat every N flights")
	cmd.Flags().StringVar(&in.Notes, "notes", "", "free-form notes")
	_ = cmd.MarkFlagRequired("title")
	return cmd
}

func newMaintenanceListCmd(opts *rootOptions) *cobra.Command {
	var dueOnly bool
	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List tasks with their due status",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(opts, func(s *app.Session) error {
				views := s.Store.Maintenance()
				rows := make([][]string, 0, len(views))
				for _, v := range views {
					if dueOnly && !v.Status.IsDue {
						continue
					}
					rows = append(rows, maintenanceRow(v))
				}
				printTable(out(cmd), []string{"ID", "Task", "Every", "Last done", "Next", "Status"}, rows)
				return nil
			})
		},
	}
	cmd.Flags().BoolVar(&dueOnly, "due", false, "only show tasks that are due")
	return cmd
}

func maintenanceRow(v state.MaintenanceView) []string {
	t := v.Task

	var every []string
	if t.IntervalDays > 0 {
		every = append(every, fmt.Sprintf("%d days", t.IntervalDays))
	}
	if t.IntervalFlights > 0 {
		every = append(every, fmt.Sprintf("%d flights", t.IntervalFlights))
	}

	var next []string
	if v.Status.NextDate != nil {
		next = append(next, v.Status.NextDate.Format(logbook.DateLayout))
	}
	if v.Status.NextFlightCount != nil {
		next = append(next, fmt.Sprintf("flight %d", *v.Status.NextFlightCount))
	}

	last := "never"
	if t.LastDoneDate != nil {
		last = *t.LastDoneDate
	}
	status := "ok"
	if v.Status.IsDue {
		status = "DUE"
	}
	return []string{
		shortID(t.ID),
		t.Title,
		orDash(strings.Join(every, ", ")),
		last,
		orDash(strings.Join(next, ", ")),
		status,
	}
}

func newMaintenanceDoneCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "done <task>",
		Short: "Mark a task done today",
		Long:  "Mark a task done today at the model's current flight count.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(opts, func(s *app.Session) error {
				t, err := resolveTask(s.Store, args[0])
				if err != nil {
					return err
				}
				if err := s.Store.MarkMaintenanceDone(t.ID); err != nil {
					return err
				}
				fmt.Fprintf(out(cmd), "%q done\n", t.Title)
				return saved(s)
			})
		},
	}
}

func newMaintenanceRemoveCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "rm <task>",
		Aliases: []string{"remove"},
		Short:   "Delete a maintenance task",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(opts, func(s *app.Session) error {
				t, err := resolveTask(s.Store, args[0])
				if err != nil {
					return err
				}
				if err := s.Store.DeleteMaintenance(t.ID); err != nil {
					return err
				}
				fmt.Fprintf(out(cmd), "Deleted task %q\n", t.Title)
				return saved(s)
			})
		},
	}
}
