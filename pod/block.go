package pod

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/romgo/inner"
	"github.com/hupe1980/romgo/snapshot"
)

// broadcast expands a scalar-or-list parameter to one value per block.
// A single-element list is broadcast to every block; otherwise the list
// length must equal the block count.
func broadcast[T any](param string, values []T, blocks int) ([]T, error) {
	switch len(values) {
	case 1:
		out := make([]T, blocks)
		for i := range out {
			out[i] = values[0]
		}
		return out, nil
	case blocks:
		return values, nil
	default:
		return nil, &ErrBlockMismatch{Param: param, Blocks: blocks, Actual: len(values)}
	}
}

// ComputeBlock runs one decomposition per block of a block-structured
// snapshot set, e.g. the velocity and pressure fields of a multi-field
// problem. Blocks are independent; no cross-block coupling exists.
//
// rankCaps and tols may each hold a single value, broadcast to every block,
// or exactly one value per block. forms must hold one form per block.
// The b-th result is the decomposition of blocks[b] under forms[b].
func ComputeBlock(
	ctx context.Context,
	blocks []*snapshot.List,
	forms []inner.Form,
	rankCaps []int,
	tols []float64,
	cfg Config,
) ([]*Result, error) {
	b := len(blocks)
	if len(forms) != b {
		return nil, &ErrBlockMismatch{Param: "forms", Blocks: b, Actual: len(forms)}
	}

	caps, err := broadcast("rank cap", rankCaps, b)
	if err != nil {
		return nil, err
	}
	tolerances, err := broadcast("tolerance", tols, b)
	if err != nil {
		return nil, err
	}

	results := make([]*Result, b)

	if cfg.Parallelism > 1 {
		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(cfg.Parallelism)
		for i := 0; i < b; i++ {
			i := i
			g.Go(func() error {
				blockCfg := cfg
				blockCfg.RankCap = caps[i]
				blockCfg.Tol = tolerances[i]
				res, err := Compute(gctx, blocks[i], forms[i], blockCfg)
				if err != nil {
					return fmt.Errorf("block %d: %w", i, err)
				}
				results[i] = res
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return nil, err
		}
		return results, nil
	}

	for i := 0; i < b; i++ {
		blockCfg := cfg
		blockCfg.RankCap = caps[i]
		blockCfg.Tol = tolerances[i]
		res, err := Compute(ctx, blocks[i], forms[i], blockCfg)
		if err != nil {
			return nil, fmt.Errorf("block %d: %w", i, err)
		}
		results[i] = res
	}
	return results, nil
}
