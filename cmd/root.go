package cmd

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/x402-Systems/pantry/internal/config"
	"github.com/x402-Systems/pantry/internal/render"
	"github.com/x402-Systems/pantry/internal/store"
)

// app holds the persistent flags shared by every command.
type app struct {
	dbPath     string
	verbose    bool
	outputJSON bool
}

// NewRootCommand builds the pantry command tree.
func NewRootCommand() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   config.AppName,
		Short: "Home food inventory // what is left in the pantry",
		Long: `Tracks pantry items (name, quantity, unit, category) in a local SQLite file.

Run 'pantry seed' once to create the inventory, then use list, add,
remove, update and search to keep it current.`,
		Version:       config.Version,
		Args:          cobra.ArbitraryArgs,
		SilenceErrors: true,
		// Argument validation has already run; from here on a failure is
		// not a usage problem.
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			cmd.SilenceUsage = true
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	rootCmd.PersistentFlags().StringVar(&a.dbPath, "db", "", "Inventory file (default: "+config.DefaultDBFile+" next to the binary)")
	rootCmd.PersistentFlags().BoolVar(&a.outputJSON, "json", false, "Output response in raw JSON format")
	rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Log SQL statements to stderr")

	rootCmd.AddCommand(
		newListCommand(a),
		newAddCommand(a),
		newRemoveCommand(a),
		newUpdateCommand(a),
		newSearchCommand(a),
		newSeedCommand(a),
		newBrowseCommand(a),
	)

	return rootCmd
}

func Execute() {
	if err := NewRootCommand().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// withStore opens the inventory file for the duration of one command.
func (a *app) withStore(run func(cmd *cobra.Command, st *store.Store, args []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		path, err := config.DBPath(a.dbPath)
		if err != nil {
			return fmt.Errorf("resolve inventory path: %w", err)
		}

		st, err := store.Open(path, a.verbose)
		if err != nil {
			return err
		}
		defer st.Close()

		return run(cmd, st, args)
	}
}

func printer(cmd *cobra.Command) *render.Printer {
	return render.New(cmd.OutOrStdout())
}

// parseID accepts any integer; ids that were never assigned, negative ones
// included, are simply not found.
func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid id %q: must be a whole number", s)
	}
	return id, nil
}

func parseQuantity(s string) (float64, error) {
	q, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid quantity %q: must be a number", s)
	}
	return q, nil
}

// numericArgs wraps an arity check with parse checks so malformed numbers
// are rejected as usage errors before the store is opened.
func numericArgs(arity cobra.PositionalArgs, checks map[int]func(string) error) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := arity(cmd, args); err != nil {
			return err
		}
		for i, check := range checks {
			if err := check(args[i]); err != nil {
				return err
			}
		}
		return nil
	}
}

func isID(s string) error {
	_, err := parseID(s)
	return err
}

func isQuantity(s string) error {
	_, err := parseQuantity(s)
	return err
}
