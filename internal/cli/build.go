package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ironplane/ironplane/pkg/boardbuild"
	"github.com/ironplane/ironplane/pkg/boardspec"
	"github.com/ironplane/ironplane/pkg/modelcache"
)

// buildCommand creates the "build" command: boardspec JSON in, IGES out.
func (c *CLI) buildCommand() *cobra.Command {
	var noCache bool
	var author, organization string

	cmd := &cobra.Command{
		Use:   "build <spec.json> <out.igs>",
		Short: "Extrude a board outline spec into an IGES file",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			specPath, outPath := args[0], args[1]

			data, err := os.ReadFile(specPath)
			if err != nil {
				return fmt.Errorf("read spec: %w", err)
			}

			store, err := newCache(noCache)
			if err != nil {
				return fmt.Errorf("open cache: %w", err)
			}
			defer store.Close()

			keyer := modelcache.NewKeyer("")
			sourceHash := modelcache.Hash(data)

			ctx := cmd.Context()
			if cached, hit, err := store.Get(ctx, keyer.IGESKey(sourceHash)); err == nil && hit {
				c.Logger.Debug("cache hit", "key", keyer.IGESKey(sourceHash))
				if err := os.WriteFile(outPath, cached, 0o644); err != nil {
					return fmt.Errorf("write output: %w", err)
				}
				printSuccess("Wrote %s (cached)", outPath)
				return nil
			}

			prog := newProgress(c.Logger)

			spec, err := boardspec.ImportBoardSpec(specPath)
			if err != nil {
				return fmt.Errorf("import spec: %w", err)
			}

			rendered, err := boardbuild.Build(ctx, spec, boardbuild.Options{
				Author:       author,
				Organization: organization,
				FileName:     outPath,
			})
			if err != nil {
				return err
			}

			if err := os.WriteFile(outPath, rendered, 0o644); err != nil {
				return fmt.Errorf("write output: %w", err)
			}

			prog.done(fmt.Sprintf("Extruded %d holes", len(spec.Outline.Holes())))
			_ = store.Set(ctx, keyer.IGESKey(sourceHash), rendered, 0)

			printSuccess("Built board outline")
			printFile(outPath)
			printDetail("z from %g to %g mm", spec.BottomZ, spec.TopZ)
			return nil
		},
	}

	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the IGES output cache")
	cmd.Flags().StringVar(&author, "author", "", "IGES Global section author field")
	cmd.Flags().StringVar(&organization, "org", "", "IGES Global section organization field")
	return cmd
}
