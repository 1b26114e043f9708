package cli

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/ironplane/ironplane/pkg/boardstore"
)

// browseCommand creates the "browse" command: an interactive picker over
// boards held in a boardstore, exporting the selected board's last IGES
// build to disk.
func (c *CLI) browseCommand() *cobra.Command {
	var mongoURI, out string

	cmd := &cobra.Command{
		Use:   "browse",
		Short: "Interactively browse stored boards and export one",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := c.openStore(cmd, mongoURI)
			if err != nil {
				return err
			}
			defer store.Close()

			records, err := store.List(cmd.Context())
			if err != nil {
				return fmt.Errorf("list boards: %w", err)
			}

			model, err := tea.NewProgram(NewBoardListModel(records)).Run()
			if err != nil {
				return fmt.Errorf("run tui: %w", err)
			}

			final := model.(BoardListModel)
			if final.Selected == nil {
				return nil
			}
			rec := final.Selected.Record
			if len(rec.IGES) == 0 {
				printWarning("Board %q has never been built", rec.Name)
				return nil
			}

			if out == "" {
				out = rec.Name + ".igs"
			}
			if err := os.WriteFile(out, rec.IGES, 0o644); err != nil {
				return fmt.Errorf("write output: %w", err)
			}
			printSuccess("Exported %q", rec.Name)
			printFile(out)
			return nil
		},
	}

	cmd.Flags().StringVar(&mongoURI, "mongo", "", "MongoDB URI (in-process memory store if unset)")
	cmd.Flags().StringVarP(&out, "output", "o", "", "output path (default: <name>.igs)")
	return cmd
}

// openStore returns a MongoStore when uri is set, otherwise an empty
// MemoryStore (useful for --mongo-less local experimentation, though an
// empty store will always list zero boards).
func (c *CLI) openStore(cmd *cobra.Command, uri string) (boardstore.Store, error) {
	if uri == "" {
		return boardstore.NewMemoryStore(), nil
	}
	return boardstore.NewMongoStore(cmd.Context(), boardstore.MongoConfig{URI: uri})
}
