package cmd

import (
	"github.com/spf13/cobra"

	"github.com/x402-Systems/pantry/internal/store"
)

func newListCommand(a *app) *cobra.Command {
	var category string

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List all items, grouped by category",
		Example: `  pantry list
  pantry list -c "Sugar & salt"`,
		Args: cobra.NoArgs,
		RunE: a.withStore(func(cmd *cobra.Command, st *store.Store, args []string) error {
			items, err := st.List(cmd.Context(), category)
			if err != nil {
				return err
			}

			if a.outputJSON {
				return printer(cmd).JSON(items)
			}
			printer(cmd).Inventory(items)
			return nil
		}),
	}

	cmd.Flags().StringVarP(&category, "category", "c", "", "Only show categories containing this text")
	return cmd
}
