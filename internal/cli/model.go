package cli

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/spf13/cobra"

	"github.com/five82/hangar/internal/app"
	"github.com/five82/hangar/internal/logbook"
)

func newModelCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "model",
		Aliases: []string{"models"},
		Short:   "Manage helicopter models",
		Long: `Manage helicopter models.

Every flight, battery, task, part and purchase belongs to one model. Commands
work on the active model unless --model names another one.`,
	}
	cmd.AddCommand(
		newModelListCmd(opts),
		newModelAddCmd(opts),
		newModelRenameCmd(opts),
		newModelUseCmd(opts),
		newModelColorCmd(opts),
		newModelRemoveCmd(opts),
	)
	return cmd
}

func newModelListCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List models",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(opts, func(s *app.Session) error {
				doc := s.Store.Document()
				rows := make([][]string, 0, len(doc.Models))
				for _, m := range doc.Models {
					st := m.Stats()
					rows = append(rows, []string{
						ternary(m.ID == doc.ActiveModelID, "*", ""),
						shortID(m.ID),
						m.Name,
						m.ThemeColor,
						fmt.Sprint(st.Flights),
						fmt.Sprint(st.Batteries),
					})
				}
				printTable(out(cmd), []string{"", "ID", "Name", "Color", "Flights", "Batteries"}, rows)
				return nil
			})
		},
	}
}

func newModelAddCmd(opts *rootOptions) *cobra.Command {
	var color string
	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Add a model and make it active",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkColor(color); err != nil {
				return err
			}
			return withSession(opts, func(s *app.Session) error {
				ref, err := s.Store.AddModel(args[0], color)
				if err != nil {
					return err
				}
				fmt.Fprintf(out(cmd), "Added model %s (%s)\n", ref.Name, shortID(ref.ID))
				return saved(s)
			})
		},
	}
	cmd.Flags().StringVar(&color, "color", "", "theme color, #rrggbb (default "+logbook.DefaultTheme+")")
	return cmd
}

func newModelRenameCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "rename <model> <name>",
		Short: "Rename a model",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(opts, func(s *app.Session) error {
				ref, err := resolveModel(s.Store, args[0])
				if err != nil {
					return err
				}
				if err := s.Store.RenameModel(ref.ID, args[1]); err != nil {
					return err
				}
				fmt.Fprintf(out(cmd), "Renamed %s to %s\n", ref.Name, args[1])
				return saved(s)
			})
		},
	}
}

func newModelUseCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "use <model>",
		Short: "Make a model the active one",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			// --model would be restored on close, which defeats the purpose
			plain := &rootOptions{configPath: opts.configPath}
			return withSession(plain, func(s *app.Session) error {
				ref, err := resolveModel(s.Store, args[0])
				if err != nil {
					return err
				}
				if err := s.Store.SetActiveModel(ref.ID); err != nil {
					return err
				}
				fmt.Fprintf(out(cmd), "Active model: %s\n", ref.Name)
				return saved(s)
			})
		},
	}
}

func newModelColorCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "color <#rrggbb>",
		Short: "Set the active model's theme color",
		Long: `Set the active model's theme color. An empty color restores the default.

Presets: Copper #c0501a, Ocean #1f6aa5, Forest #2a7b50, Cobalt #2d4aa1,
Crimson #a22a2a, Amber #d88b1f.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkColor(args[0]); err != nil {
				return err
			}
			return withSession(opts, func(s *app.Session) error {
				if err := s.Store.SetThemeColor(args[0]); err != nil {
					return err
				}
				fmt.Fprintf(out(cmd), "%s: %s\n", s.Store.ActiveModel().Name, s.Store.ActiveModel().ThemeColor)
				return saved(s)
			})
		},
	}
}

func newModelRemoveCmd(opts *rootOptions) *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:     "rm <model>",
		Aliases: []string{"remove"},
		Short:   "Delete a model and all of its records",
		Long: `Delete a model with all of its flights, batteries, tasks, parts and
purchases. The last remaining model cannot be deleted.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			plain := &rootOptions{configPath: opts.configPath}
			return withSession(plain, func(s *app.Session) error {
				ref, err := resolveModel(s.Store, args[0])
				if err != nil {
					return err
				}
				ok, err := confirm(fmt.Sprintf("Delete model %q and all of its records?", ref.Name), yes)
				if err != nil || !ok {
					return err
				}
				if err := s.Store.DeleteModel(ref.ID); err != nil {
					return err
				}
				fmt.Fprintf(out(cmd), "Deleted model %s\n", ref.Name)
				return saved(s)
			})
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "skip the confirmation prompt")
	return cmd
}

func checkColor(c string) error {
	if c == "" {
		return nil
	}
	if _, err := colorful.Hex(c); err != nil {
		return fmt.Errorf("invalid color %q, want #rrggbb", c)
	}
	return nil
}
