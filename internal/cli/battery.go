package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/five82/hangar/internal/app"
	"github.com/five82/hangar/internal/state"
)

func newBatteryCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "battery",
		Aliases: []string{"batteries", "b"},
		Short:   "Manage battery packs",
	}
	cmd.AddCommand(
		newBatteryAddCmd(opts),
		newBatteryListCmd(opts),
		newBatteryCycleCmd(opts),
		newBatteryDuplicateCmd(opts),
		newBatteryRemoveCmd(opts),
	)
	return cmd
}

func newBatteryAddCmd(opts *rootOptions) *cobra.Command {
	var in state.BatteryInput
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a battery pack",
		Long: `Add a battery pack to the active model.

The nominal voltage is derived from the cell count at 3.7 V per cell.

Examples:
  hangar battery add --name Gaoneng --number B1 --capacity 300 --cells 2 --rate 30`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(opts, func(s *app.Session) error {
				b, err := s.Store.AddBattery(in)
				if err != nil {
					return err
				}
				fmt.Fprintf(out(cmd), "Added battery %s (%s)\n", orDash(b.Label()), shortID(b.ID))
				return saved(s)
			})
		},
	}
	addBatteryFlags(cmd, &in)
	return cmd
}

func addBatteryFlags(cmd *cobra.Command, in *state.BatteryInput) {
	cmd.Flags().StringVar(&in.Name, "name", "", "pack name")
	cmd.Flags().StringVar(&in.Number, "number", "", "pack number, e.g. B1")
	cmd.Flags().Float64Var(&in.Capacity, "capacity", 0, "capacity in mAh")
	cmd.Flags().Float64Var(&in.DischargeRate, "rate", 0, "discharge rate (C)")
	cmd.Flags().IntVar(&in.Cells, "cells", 0, "cell count (S)")
	cmd.Flags().StringVar(&in.Notes, "notes", "", "free-form notes")
}

func newBatteryListCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List batteries in the saved sort order",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(opts, func(s *app.Session) error {
				batteries := s.Store.Batteries()
				rows := make([][]string, 0, len(batteries))
				for _, b := range batteries {
					rows = append(rows, []string{
						shortID(b.ID),
						orDash(b.Number),
						orDash(b.Name),
						optNumber(b.Capacity, " mAh"),
						optCells(b.Cells),
						optNumber(b.EffectiveVoltage(), " V"),
						optNumber(b.DischargeRate, "C"),
						strconv.Itoa(b.Cycles),
						optString(b.LastUsed),
					})
				}
				printTable(out(cmd), []string{"ID", "No.", "Name", "Capacity", "Cells", "Voltage", "Rate", "Cycles", "Last used"}, rows)
				return nil
			})
		},
	}
}

func newBatteryCycleCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "cycle <battery>",
		Short: "Add one charge cycle to a battery",
		Long:  "Add one charge cycle to a battery and set its last-used date to today.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(opts, func(s *app.Session) error {
				b, err := resolveBattery(s.Store, args[0])
				if err != nil {
					return err
				}
				if err := s.Store.IncrementCycle(b.ID); err != nil {
					return err
				}
				fmt.Fprintf(out(cmd), "%s: %d cycles\n", b.Label(), b.Cycles+1)
				return saved(s)
			})
		},
	}
}

func newBatteryDuplicateCmd(opts *rootOptions) *cobra.Command {
	var in state.BatteryInput
	cmd := &cobra.Command{
		Use:     "dup <battery>",
		Aliases: []string{"duplicate"},
		Short:   "Add a new battery prefilled from an existing one",
		Long: `Add a new battery prefilled from an existing one.

The copy starts with zero cycles and "(copie)" appended to its name. Any
battery flag overrides the copied value.

Examples:
  hangar battery dup B1 --number B2`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(opts, func(s *app.Session) error {
				src, err := resolveBattery(s.Store, args[0])
				if err != nil {
					return err
				}
				draft, err := s.Store.DuplicateBattery(src.ID)
				if err != nil {
					return err
				}
				overrideBattery(cmd, &draft, in)
				b, err := s.Store.AddBattery(draft)
				if err != nil {
					return err
				}
				fmt.Fprintf(out(cmd), "Added battery %s (%s)\n", orDash(b.Label()), shortID(b.ID))
				return saved(s)
			})
		},
	}
	addBatteryFlags(cmd, &in)
	return cmd
}

// overrideBattery copies the flags the user set from in onto draft.
func overrideBattery(cmd *cobra.Command, draft *state.BatteryInput, in state.BatteryInput) {
	f := cmd.Flags()
	if f.Changed("name") {
		draft.Name = in.Name
	}
	if f.Changed("number") {
		draft.Number = in.Number
	}
	if f.Changed("capacity") {
		draft.Capacity = in.Capacity
	}
	if f.Changed("rate") {
		draft.DischargeRate = in.DischargeRate
	}
	if f.Changed("cells") {
		draft.Cells = in.Cells
	}
	if f.Changed("notes") {
		draft.Notes = in.Notes
	}
}

func newBatteryRemoveCmd(opts *rootOptions) *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:     "rm <battery>",
		Aliases: []string{"remove"},
		Short:   "Delete a battery",
		Long: `Delete a battery. Flights that used it keep their record but no
longer reference a battery.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(opts, func(s *app.Session) error {
				b, err := resolveBattery(s.Store, args[0])
				if err != nil {
					return err
				}
				ok, err := confirm(fmt.Sprintf("Delete battery %s?", b.Label()), yes)
				if err != nil || !ok {
					return err
				}
				if err := s.Store.DeleteBattery(b.ID); err != nil {
					return err
				}
				fmt.Fprintf(out(cmd), "Deleted battery %s\n", b.Label())
				return saved(s)
			})
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "skip the confirmation prompt")
	return cmd
}
