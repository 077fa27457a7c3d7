package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/five82/hangar/internal/app"
	"github.com/five82/hangar/internal/state"
)

func newStockCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stock",
		Short: "Manage spare parts",
	}
	cmd.AddCommand(
		newStockAddCmd(opts),
		newStockListCmd(opts),
		newStockSetCmd(opts),
		newStockDuplicateCmd(opts),
		newStockRemoveCmd(opts),
	)
	return cmd
}

func addStockFlags(cmd *cobra.Command, in *state.StockInput) {
	cmd.Flags().StringVar(&in.Name, "name", "", "part name")
	cmd.Flags().StringVar(&in.Reference, "ref", "", "manufacturer reference")
	cmd.Flags().Float64Var(&in.Quantity, "qty", 0, "quantity on hand")
	cmd.Flags().Float64Var(&in.Minimum, "min", 0, "quantity at or below which the part is low")
	cmd.Flags().StringVar(&in.Location, "location", "", "where the part is stored")
}

func newStockAddCmd(opts *rootOptions) *cobra.Command {
	var in state.StockInput
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a spare part",
		Long: `Add a spare part to the active model.

Examples:
  hangar stock add --name "Main blade" --ref H15H001 --qty 2 --min 1`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(opts, func(s *app.Session) error {
				item, err := s.Store.AddStock(in)
				if err != nil {
					return err
				}
				fmt.Fprintf(out(cmd), "Added %s (%s)\n", orDash(item.Name), shortID(item.ID))
				return saved(s)
			})
		},
	}
	addStockFlags(cmd, &in)
	return cmd
}

func newStockListCmd(opts *rootOptions) *cobra.Command {
	var lowOnly bool
	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List spare parts in the saved sort order",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(opts, func(s *app.Session) error {
				items := s.Store.Stock()
				rows := make([][]string, 0, len(items))
				for _, it := range items {
					if lowOnly && !it.IsLow() {
						continue
					}
					rows = append(rows, []string{
						shortID(it.ID),
						orDash(it.Reference),
						orDash(it.Name),
						number(it.Quantity),
						number(it.Minimum),
						orDash(it.Location),
						ternary(it.IsLow(), "LOW", ""),
					})
				}
				printTable(out(cmd), []string{"ID", "Reference", "Name", "Qty", "Min", "Location", ""}, rows)
				return nil
			})
		},
	}
	cmd.Flags().BoolVar(&lowOnly, "low", false, "only show parts at or below their minimum")
	return cmd
}

func newStockSetCmd(opts *rootOptions) *cobra.Command {
	var in state.StockInput
	cmd := &cobra.Command{
		Use:   "set <item>",
		Short: "Change fields of a spare part",
		Long: `Change fields of a spare part. Only the flags given are changed.

Examples:
  hangar stock set H15H001 --qty 4`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(opts, func(s *app.Session) error {
				item, err := resolveStock(s.Store, args[0])
				if err != nil {
					return err
				}
				next := state.StockInput{
					Name:      item.Name,
					Reference: item.Reference,
					Quantity:  item.Quantity,
					Minimum:   item.Minimum,
					Location:  item.Location,
				}
				f := cmd.Flags()
				if f.Changed("name") {
					next.Name = in.Name
				}
				if f.Changed("ref") {
					next.Reference = in.Reference
				}
				if f.Changed("qty") {
					next.Quantity = in.Quantity
				}
				if f.Changed("min") {
					next.Minimum = in.Minimum
				}
				if f.Changed("location") {
					next.Location = in.Location
				}
				if err := s.Store.UpdateStock(item.ID, next); err != nil {
					return err
				}
				fmt.Fprintf(out(cmd), "Updated %s\n", orDash(next.Name))
				return saved(s)
			})
		},
	}
	addStockFlags(cmd, &in)
	return cmd
}

func newStockDuplicateCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "dup <item>",
		Aliases: []string{"duplicate"},
		Short:   "Copy a spare part",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(opts, func(s *app.Session) error {
				item, err := resolveStock(s.Store, args[0])
				if err != nil {
					return err
				}
				dup, err := s.Store.DuplicateStock(item.ID)
				if err != nil {
					return err
				}
				fmt.Fprintf(out(cmd), "Added %s (%s)\n", dup.Name, shortID(dup.ID))
				return saved(s)
			})
		},
	}
}

func newStockRemoveCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "rm <item>",
		Aliases: []string{"remove"},
		Short:   "Delete a spare part",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(opts, func(s *app.Session) error {
				item, err := resolveStock(s.Store, args[0])
				if err != nil {
					return err
				}
				if err := s.Store.DeleteStock(item.ID); err != nil {
					return err
				}
				fmt.Fprintf(out(cmd), "Deleted %s\n", orDash(item.Name))
				return saved(s)
			})
		},
	}
}

// ternary returns a if cond is true, otherwise b.
func ternary(cond bool, a, b string) string {
	if cond {
		return a
	}
	return b
}
