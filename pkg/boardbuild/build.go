package boardbuild

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/ironplane/ironplane/pkg/boardspec"
	"github.com/ironplane/ironplane/pkg/iges"
	"github.com/ironplane/ironplane/pkg/iges/cardio"
	"github.com/ironplane/ironplane/pkg/iges/entities"
	"github.com/ironplane/ironplane/pkg/observability"
)

// Options controls the IGES Global section attached to a build.
type Options struct {
	Author       string
	Organization string
	FileName     string
}

// Build extrudes spec's outline between its bottom and top Z planes,
// validates the resulting entity graph, and renders it to the fixed-width
// IGES card format. It reports progress through observability.Build().
func Build(ctx context.Context, spec *boardspec.BoardSpec, opts Options) ([]byte, error) {
	board := opts.FileName
	hooks := observability.Build()

	model := iges.NewModel()
	entities.RegisterAll(model)
	model.SetGlobal(iges.Global{
		Units:        "MM",
		Author:       opts.Author,
		Organization: opts.Organization,
		FileName:     opts.FileName,
	})

	hooks.OnExtrudeStart(ctx, board, len(spec.Outline.Holes()))
	extrudeStart := time.Now()
	handles, err := spec.Outline.ExtrudeToTrimmedSurfaces(spec.BottomZ, spec.TopZ, model)
	hooks.OnExtrudeComplete(ctx, board, len(handles), time.Since(extrudeStart), err)
	if err != nil {
		return nil, fmt.Errorf("extrude outline: %w", err)
	}

	if err := model.Validate(); err != nil {
		return nil, fmt.Errorf("validate model: %w", err)
	}

	hooks.OnWriteStart(ctx, board)
	writeStart := time.Now()
	rendered, err := writeCards(model)
	hooks.OnWriteComplete(ctx, board, len(rendered), time.Since(writeStart), err)
	if err != nil {
		return nil, err
	}
	return rendered, nil
}

func writeCards(model *iges.Model) ([]byte, error) {
	var buf bytes.Buffer
	writer := cardio.NewWriter(&buf, model.Global())
	if err := model.WriteToRecords(writer); err != nil {
		return nil, fmt.Errorf("write IGES: %w", err)
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("flush IGES: %w", err)
	}
	return buf.Bytes(), nil
}
