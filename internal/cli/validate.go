package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ironplane/ironplane/pkg/boardspec"
	"github.com/ironplane/ironplane/pkg/iges"
	"github.com/ironplane/ironplane/pkg/iges/entities"
)

// validateCommand creates the "validate" command: build the entity graph
// for a board spec and report any dependency-graph violation (dangling
// pointer, missing mirror edge, cycle) without writing an IGES file.
func (c *CLI) validateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <spec.json>",
		Short: "Validate a board spec's outline and resulting entity graph",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			specPath := args[0]

			spec, err := boardspec.ImportBoardSpec(specPath)
			if err != nil {
				printError("Invalid board spec: %s", err)
				return err
			}

			model := iges.NewModel()
			entities.RegisterAll(model)

			handles, err := spec.Outline.ExtrudeToTrimmedSurfaces(spec.BottomZ, spec.TopZ, model)
			if err != nil {
				printError("Extrusion failed: %s", err)
				return err
			}

			if err := model.Validate(); err != nil {
				printError("Entity graph is inconsistent:")
				fmt.Println(err)
				return err
			}

			printSuccess("Board spec is valid")
			printDetail("%d holes, %d trimmed surfaces", len(spec.Outline.Holes()), len(handles))
			return nil
		},
	}
	return cmd
}
