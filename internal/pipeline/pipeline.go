// internal/pipeline/pipeline.go
package pipeline

import (
	"context"

	"golang.org/x/sync/errgroup"

	"ganflu/internal/record"
	"ganflu/internal/translate"
)

// Config controls the translation pass.
type Config struct {
	Threads int // concurrent records (>=1)
}

// Translate runs the translation pass over every genome in place. The
// first error cancels the remaining work and is returned.
func Translate(ctx context.Context, cfg Config, genomes []record.Genome, tr *translate.Translator) error {
	if cfg.Threads < 1 {
		cfg.Threads = 1
	}
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.Threads)
	for i := range genomes {
		gen := &genomes[i]
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			return tr.Annotate(gen.ID, gen.Seq, gen.Features)
		})
	}
	return g.Wait()
}
