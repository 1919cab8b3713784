package cmd

import (
	"errors"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/x402-Systems/pantry/internal/config"
	"github.com/x402-Systems/pantry/internal/store"
	"github.com/x402-Systems/pantry/internal/ui"
)

func newBrowseCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "browse",
		Short: "Browse the inventory in an interactive table",
		Args:  cobra.NoArgs,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			if !term.IsTerminal(int(os.Stdout.Fd())) {
				return errors.New("browse needs an interactive terminal; use 'pantry list' instead")
			}
			return nil
		},
		RunE: a.withStore(func(cmd *cobra.Command, st *store.Store, args []string) error {
			if a.verbose {
				f, err := tea.LogToFile(config.LogFile, "debug")
				if err != nil {
					return err
				}
				defer f.Close()
			}

			p := tea.NewProgram(ui.New(cmd.Context(), st), tea.WithAltScreen(), tea.WithContext(cmd.Context()))
			_, err := p.Run()
			return err
		}),
	}
}
