package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/x402-Systems/pantry/internal/render"
	"github.com/x402-Systems/pantry/internal/store"
)

func newAddCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add NAME QUANTITY UNIT CATEGORY",
		Short: "Add a new item",
		Long:  `Adds an item. UNIT is free text (g, ml, can, jar, pack, piece, bottle).`,
		Example: `  pantry add Honey 1 jar Condiments
  pantry add "Basmati rice" 0.5 kg "Grains & legumes"`,
		Args: numericArgs(cobra.ExactArgs(4), map[int]func(string) error{1: isQuantity}),
		RunE: a.withStore(func(cmd *cobra.Command, st *store.Store, args []string) error {
			qty, err := parseQuantity(args[1])
			if err != nil {
				return err
			}

			item := store.Item{
				Name:     args[0],
				Quantity: qty,
				Unit:     args[2],
				Category: args[3],
			}
			if err := st.Add(cmd.Context(), &item); err != nil {
				return err
			}

			if a.outputJSON {
				return printer(cmd).JSON(map[string]interface{}{
					"status": "success",
					"action": "add",
					"item":   item,
				})
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added: %s (%s %s) in [%s]\n", item.Name, render.Quantity(item.Quantity), item.Unit, item.Category)
			return nil
		}),
	}

	// Flags end at NAME so a negative QUANTITY is not read as a shorthand.
	cmd.Flags().SetInterspersed(false)
	return cmd
}
