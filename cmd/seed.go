package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/x402-Systems/pantry/internal/config"
	"github.com/x402-Systems/pantry/internal/seed"
	"github.com/x402-Systems/pantry/internal/store"
)

func newSeedCommand(a *app) *cobra.Command {
	var (
		dataset string
		items   []store.Item
	)

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Recreate the inventory from the starting dataset",
		Long: `Drops the inventory table, creates it again and fills it with one of the
built-in starting datasets. Everything stored before is lost.`,
		Args: cobra.NoArgs,
		// Load before opening the file so an unknown dataset never drops data.
		PreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			items, err = seed.Load(dataset)
			return err
		},
		RunE: a.withStore(func(cmd *cobra.Command, st *store.Store, args []string) error {
			sum, err := seed.Run(cmd.Context(), st, items)
			if err != nil {
				return err
			}

			if a.outputJSON {
				return printer(cmd).JSON(map[string]interface{}{
					"status":     "success",
					"action":     "seed",
					"database":   st.Path(),
					"dataset":    dataset,
					"inserted":   sum.Inserted,
					"categories": sum.Categories,
				})
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Database created at %s\n", st.Path())
			fmt.Fprintf(out, "Inserted %d items.\n", sum.Inserted)
			printer(cmd).Categories(sum.Categories)
			return nil
		}),
	}

	cmd.Flags().StringVarP(&dataset, "dataset", "d", config.DefaultDataset, "Starting dataset")
	cmd.RegisterFlagCompletionFunc("dataset", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return seed.Datasets(), cobra.ShellCompDirectiveNoFileComp
	})
	return cmd
}
