package cmd

import (
	"github.com/spf13/cobra"

	"github.com/x402-Systems/pantry/internal/store"
)

func newSearchCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "search QUERY",
		Short: "Search items by name, ignoring case",
		Args:  cobra.ExactArgs(1),
		RunE: a.withStore(func(cmd *cobra.Command, st *store.Store, args []string) error {
			query := args[0]

			items, err := st.Search(cmd.Context(), query)
			if err != nil {
				return err
			}

			if a.outputJSON {
				return printer(cmd).JSON(items)
			}
			printer(cmd).Matches(query, items)
			return nil
		}),
	}
}
