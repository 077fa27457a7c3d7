package cli

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/five82/hangar/internal/app"
	"github.com/five82/hangar/internal/logbook"
)

func newSettingsCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Show or change sort orders and tab order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(opts, func(s *app.Session) error {
				set := s.Store.Settings()
				w := out(cmd)
				labels := make([]string, len(set.TabOrder))
				for i, id := range set.TabOrder {
					labels[i] = fmt.Sprintf("%s (%s)", logbook.TabLabel(id), id)
				}
				fmt.Fprintf(w, "Tab order:     %s\n", strings.Join(labels, ", "))
				fmt.Fprintf(w, "Last tab:      %s\n", set.LastTab)
				fmt.Fprintf(w, "Stock sort:    %s %s\n", set.StockSort.Key, set.StockSort.Dir)
				fmt.Fprintf(w, "Battery sort:  %s %s\n", set.StockBatterySort.Key, set.StockBatterySort.Dir)
				fmt.Fprintf(w, "Numberless:    %s\n", set.StockBatteryNumberPlacement)
				fmt.Fprintf(w, "Locale:        %s\n", s.Store.Locale())
				return nil
			})
		},
	}
	cmd.AddCommand(
		newSortCmd(opts, "stock-sort", []string{logbook.KeyReference, logbook.KeyName, logbook.KeyQuantity},
			func(s *app.Session, key, dir string) error { return s.Store.SetStockSort(key, dir) }),
		newSortCmd(opts, "battery-sort", []string{logbook.KeyNumber, logbook.KeyName},
			func(s *app.Session, key, dir string) error { return s.Store.SetBatterySort(key, dir) }),
		newPlacementCmd(opts),
		newMoveTabCmd(opts),
	)
	return cmd
}

func newSortCmd(opts *rootOptions, use string, keys []string, set func(*app.Session, string, string) error) *cobra.Command {
	return &cobra.Command{
		Use:       use + " <key> [asc|desc]",
		Short:     "Sort by " + strings.Join(keys, ", "),
		Args:      cobra.RangeArgs(1, 2),
		ValidArgs: keys,
		RunE: func(cmd *cobra.Command, args []string) error {
			key := args[0]
			if !slices.Contains(keys, key) {
				return fmt.Errorf("unknown sort key %q, want one of %s", key, strings.Join(keys, ", "))
			}
			dir := logbook.DirAsc
			if len(args) == 2 {
				dir = args[1]
				if dir != logbook.DirAsc && dir != logbook.DirDesc {
					return fmt.Errorf("unknown direction %q, want asc or desc", dir)
				}
			}
			return withSession(opts, func(s *app.Session) error {
				if err := set(s, key, dir); err != nil {
					return err
				}
				fmt.Fprintf(out(cmd), "Sorted by %s %s\n", key, dir)
				return saved(s)
			})
		},
	}
}

func newPlacementCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:       "numberless <first|last>",
		Short:     "Place batteries without a number first or last",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{logbook.PlacementFirst, logbook.PlacementLast},
		RunE: func(cmd *cobra.Command, args []string) error {
			p := args[0]
			if p != logbook.PlacementFirst && p != logbook.PlacementLast {
				return fmt.Errorf("unknown placement %q, want first or last", p)
			}
			return withSession(opts, func(s *app.Session) error {
				if err := s.Store.SetBatteryNumberPlacement(p); err != nil {
					return err
				}
				fmt.Fprintf(out(cmd), "Numberless batteries %s\n", p)
				return saved(s)
			})
		},
	}
}

func newMoveTabCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "move-tab <tab> <position>",
		Short: "Move a tab to a position in the tab bar",
		Long: `Move a tab to a position in the tab bar, counting from 1.

Examples:
  hangar settings move-tab stock 1`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			tab := args[0]
			if !logbook.IsTab(tab) {
				return fmt.Errorf("unknown tab %q", tab)
			}
			pos, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid position %q: %w", args[1], err)
			}
			return withSession(opts, func(s *app.Session) error {
				order := s.Store.Settings().TabOrder
				if pos < 1 || pos > len(order) {
					return fmt.Errorf("position %d out of range 1-%d", pos, len(order))
				}
				if err := s.Store.MoveTab(tab, pos-1-slices.Index(order, tab)); err != nil {
					return err
				}
				fmt.Fprintf(out(cmd), "Tab order: %s\n", strings.Join(s.Store.Settings().TabOrder, ", "))
				return saved(s)
			})
		},
	}
}
