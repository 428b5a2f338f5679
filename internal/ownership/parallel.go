package ownership

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"keel/internal/diag"
	"keel/internal/kir"
)

// CheckModule runs CheckFunc over every function of the module, fanning
// the functions out across jobs workers. Each worker fills a private bag
// and the results are merged in module order, so the output is
// deterministic regardless of scheduling. jobs <= 0 means one worker per
// CPU; maxDiags caps the merged bag.
func CheckModule(ctx context.Context, mod *kir.Module, jobs, maxDiags int) (*diag.Bag, error) {
	if jobs <= 0 {
		jobs = runtime.NumCPU()
	}
	bags := make([]*diag.Bag, len(mod.Funcs))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)
	for i, f := range mod.Funcs {
		i, f := i, f
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			bags[i] = diag.NewBag(maxDiags)
			CheckFunc(f, mod, bags[i])
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	merged := diag.NewBag(maxDiags)
	for _, b := range bags {
		merged.Merge(b)
	}
	return merged, nil
}
