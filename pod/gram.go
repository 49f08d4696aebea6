package pod

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/mat"

	"github.com/hupe1980/romgo/inner"
	"github.com/hupe1980/romgo/snapshot"
)

// buildGram computes the symmetric correlation matrix C[i][j] = a(s_i, s_j).
//
// Symmetry is exploited: each off-diagonal pair is evaluated once and
// mirrored, halving the number of form evaluations. With parallelism > 1
// the independent pair evaluations run concurrently; each evaluation writes
// a distinct matrix cell, so no synchronization is needed beyond the group
// wait.
func buildGram(ctx context.Context, snaps *snapshot.List, form inner.Form, parallelism int) (*mat.SymDense, error) {
	n := snaps.Len()
	c := mat.NewSymDense(n, nil)

	if parallelism > 1 {
		return c, buildGramParallel(ctx, c, snaps, form, parallelism)
	}

	for i := 0; i < n; i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		for j := i; j < n; j++ {
			v, err := form.Apply(snaps.At(i), snaps.At(j))
			if err != nil {
				return nil, fmt.Errorf("inner product (%d, %d): %w", i, j, err)
			}
			c.SetSym(i, j, v)
		}
	}
	return c, nil
}

func buildGramParallel(ctx context.Context, c *mat.SymDense, snaps *snapshot.List, form inner.Form, parallelism int) error {
	n := snaps.Len()
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(parallelism)

	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			if err := ctx.Err(); err != nil {
				break
			}
			i, j := i, j
			g.Go(func() error {
				v, err := form.Apply(snaps.At(i), snaps.At(j))
				if err != nil {
					return fmt.Errorf("inner product (%d, %d): %w", i, j, err)
				}
				c.SetSym(i, j, v)
				return nil
			})
		}
	}
	return g.Wait()
}
