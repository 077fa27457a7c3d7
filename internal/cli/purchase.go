package cli

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/five82/hangar/internal/app"
	"github.com/five82/hangar/internal/logbook"
	"github.com/five82/hangar/internal/state"
)

func newPurchaseCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "purchase",
		Aliases: []string{"purchases", "buy"},
		Short:   "Record purchases",
	}
	cmd.AddCommand(newPurchaseAddCmd(opts), newPurchaseListCmd(opts), newPurchaseRemoveCmd(opts))
	return cmd
}

func newPurchaseAddCmd(opts *rootOptions) *cobra.Command {
	var (
		in    state.PurchaseInput
		price float64
	)
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record a purchase",
		Long: `Record a purchase on the active model.

Examples:
  hangar purchase add --name "Tail motor" --ref H15Z003 --price 12.90`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if in.Date != "" {
				if _, ok := logbook.ParseDate(in.Date); !ok {
					return fmt.Errorf("invalid date %q, want YYYY-MM-DD", in.Date)
				}
			}
			if in.Quantity < 0 {
				return fmt.Errorf("quantity cannot be negative")
			}
			if cmd.Flags().Changed("price") {
				in.Price = &price
			}
			return withSession(opts, func(s *app.Session) error {
				p, err := s.Store.AddPurchase(in)
				if err != nil {
					return err
				}
				fmt.Fprintf(out(cmd), "Recorded %s x%s on %s (%s)\n", orDash(p.Name), number(p.Quantity), p.Date, shortID(p.ID))
				return saved(s)
			})
		},
	}
	cmd.Flags().StringVar(&in.Date, "date", "", "purchase date, YYYY-MM-DD (default today)")
	cmd.Flags().StringVar(&in.Name, "name", "", "item name")
	cmd.Flags().StringVar(&in.Reference, "ref", "", "manufacturer reference")
	cmd.Flags().Float64Var(&in.Quantity, "qty", 1, "quantity")
	cmd.Flags().Float64Var(&price, "price", 0, "price paid")
	cmd.Flags().StringVar(&in.Notes, "notes", "", "free-form notes")
	return cmd
}

func newPurchaseListCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List purchases, newest first",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(opts, func(s *app.Session) error {
				purchases := s.Store.Purchases()
				rows := make([][]string, 0, len(purchases))
				var total float64
				for _, p := range purchases {
					if p.Price != nil {
						total += *p.Price
					}
					rows = append(rows, []string{
						shortID(p.ID), p.Date, orDash(p.Name), orDash(p.Reference),
						number(p.Quantity), optNumber(p.Price, ""), orDash(p.Notes),
					})
				}
				w := out(cmd)
				printTable(w, []string{"ID", "Date", "Name", "Reference", "Qty", "Price", "Notes"}, rows)
				if len(rows) > 0 {
					fmt.Fprintf(w, "Total: %s\n", humanize.CommafWithDigits(total, 2))
				}
				return nil
			})
		},
	}
}

func newPurchaseRemoveCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "rm <purchase>",
		Aliases: []string{"remove"},
		Short:   "Delete a purchase",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(opts, func(s *app.Session) error {
				p, err := resolvePurchase(s.Store, args[0])
				if err != nil {
					return err
				}
				if err := s.Store.DeletePurchase(p.ID); err != nil {
					return err
				}
				fmt.Fprintf(out(cmd), "Deleted purchase %s\n", orDash(p.Name))
				return saved(s)
			})
		},
	}
}
