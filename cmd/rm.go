package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/x402-Systems/pantry/internal/store"
)

func newRemoveCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "remove ID",
		Aliases: []string{"rm"},
		Short:   "Remove an item by id",
		Args:    numericArgs(cobra.ExactArgs(1), map[int]func(string) error{0: isID}),
		RunE: a.withStore(func(cmd *cobra.Command, st *store.Store, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			item, err := st.Remove(cmd.Context(), id)
			if errors.Is(err, store.ErrNotFound) {
				return notFound(cmd, a, "remove", id)
			}
			if err != nil {
				return err
			}

			if a.outputJSON {
				return printer(cmd).JSON(map[string]interface{}{
					"status": "success",
					"action": "remove",
					"item":   item,
				})
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed: %s (id %d)\n", item.Name, id)
			return nil
		}),
	}
}

// notFound reports a missing id. It is not an error: the command is a
// no-op and exits 0.
func notFound(cmd *cobra.Command, a *app, action string, id int64) error {
	if a.outputJSON {
		return printer(cmd).JSON(map[string]interface{}{
			"status": "not_found",
			"action": action,
			"id":     id,
		})
	}
	fmt.Fprintf(cmd.OutOrStdout(), "No item with id %d.\n", id)
	return nil
}
