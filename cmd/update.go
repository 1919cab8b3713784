package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/x402-Systems/pantry/internal/store"
)

func newUpdateCommand(a *app) *cobra.Command {
	var (
		name     string
		quantity float64
		unit     string
		category string
	)

	cmd := &cobra.Command{
		Use:   "update ID",
		Short: "Update some fields of an item",
		Long:  `Changes only the fields given as flags; everything else keeps its value.`,
		Example: `  pantry update 12 --quantity 5
  pantry update 12 --name "Sea salt" --category "Sugar & salt"`,
		Args: numericArgs(cobra.ExactArgs(1), map[int]func(string) error{0: isID}),
		RunE: a.withStore(func(cmd *cobra.Command, st *store.Store, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			// Empty text flags count as not given, like a missing flag.
			var p store.Patch
			if name != "" {
				p.Name = &name
			}
			if cmd.Flags().Changed("quantity") {
				p.Quantity = &quantity
			}
			if unit != "" {
				p.Unit = &unit
			}
			if category != "" {
				p.Category = &category
			}

			item, err := st.Update(cmd.Context(), id, p)
			switch {
			case errors.Is(err, store.ErrNotFound):
				return notFound(cmd, a, "update", id)
			case errors.Is(err, store.ErrNothingToUpdate):
				if a.outputJSON {
					return printer(cmd).JSON(map[string]interface{}{
						"status": "unchanged",
						"action": "update",
						"id":     id,
					})
				}
				fmt.Fprintln(cmd.OutOrStdout(), "Nothing to update. Use --name, --quantity, --unit, or --category.")
				return nil
			case err != nil:
				return err
			}

			if a.outputJSON {
				return printer(cmd).JSON(map[string]interface{}{
					"status": "success",
					"action": "update",
					"item":   item,
				})
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated item #%d.\n", id)
			return nil
		}),
	}

	cmd.Flags().StringVar(&name, "name", "", "New name")
	cmd.Flags().Float64Var(&quantity, "quantity", 0, "New quantity")
	cmd.Flags().StringVar(&unit, "unit", "", "New unit")
	cmd.Flags().StringVar(&category, "category", "", "New category")
	return cmd
}
