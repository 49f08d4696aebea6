package romgo

import (
	"context"
	"time"

	"github.com/hupe1980/romgo/inner"
	"github.com/hupe1980/romgo/pod"
	"github.com/hupe1980/romgo/snapshot"
)

// Scalar wraps a single rank cap or tolerance for broadcast to every block.
func Scalar[T any](v T) []T {
	return []T{v}
}

// PerBlock collects one rank cap or tolerance per block.
func PerBlock[T any](vs ...T) []T {
	return vs
}

func (o options) podConfig(rankCap int, tol float64) pod.Config {
	cfg := pod.Config{
		RankCap:     rankCap,
		Tol:         tol,
		Normalize:   o.normalize,
		Solver:      o.solver,
		Parallelism: o.parallelism,
	}
	if o.logger != nil {
		cfg.Logger = o.logger.Logger
	}
	return cfg
}

// POD computes the proper orthogonal decomposition of a snapshot set under
// the given inner product.
//
// rankCap bounds the number of retained modes; tol is the retained-energy
// tolerance (modes are kept until a (1 - tol) fraction of the total
// eigenvalue-sum energy is captured). The result carries the complete
// eigenvalue spectrum, largest first, while modes and eigenvectors are
// truncated. An empty snapshot set yields an empty result, not an error.
func POD(ctx context.Context, snaps *snapshot.List, form inner.Form, rankCap int, tol float64, opts ...Option) (*pod.Result, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	if o.logger != nil {
		o.logger.WithSnapshots(snaps.Len()).WithDimension(snaps.Dimension()).
			Debug("starting decomposition", "rank_cap", rankCap, "tol", tol)
	}

	start := time.Now()
	res, err := pod.Compute(ctx, snaps, form, o.podConfig(rankCap, tol))

	retained := 0
	if res != nil {
		retained = res.Modes.Len()
	}
	o.metricsCollector.RecordDecomposition(snaps.Len(), retained, time.Since(start), err)

	return res, translateError(err)
}

// PODTensors computes the proper orthogonal decomposition of a tensor set
// using the tensors' built-in Frobenius inner product; no bilinear form is
// required. It otherwise follows the same pipeline and truncation policy
// as POD.
func PODTensors(ctx context.Context, tensors *snapshot.TensorList, rankCap int, tol float64, opts ...Option) ([]float64, *snapshot.TensorList, [][]float64, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	start := time.Now()
	values, modes, vectors, err := pod.ComputeTensors(ctx, tensors, o.podConfig(rankCap, tol))

	retained := 0
	if modes != nil {
		retained = modes.Len()
	}
	o.metricsCollector.RecordDecomposition(tensors.Len(), retained, time.Since(start), err)

	return values, modes, vectors, translateError(err)
}

// PODBlock runs one independent decomposition per block of a
// block-structured snapshot set (e.g. the fields of a multi-field problem).
//
// rankCaps and tols are scalar-or-list parameters: build them with Scalar
// for a shared value or PerBlock for one value per block. A list whose
// length matches neither 1 nor the block count fails with ErrInvalidInput.
func PODBlock(ctx context.Context, blocks []*snapshot.List, forms []inner.Form, rankCaps []int, tols []float64, opts ...Option) ([]*pod.Result, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	if o.logger != nil {
		for i, b := range blocks {
			o.logger.WithBlock(i).WithSnapshots(b.Len()).WithDimension(b.Dimension()).
				Debug("queued block decomposition")
		}
	}

	start := time.Now()
	results, err := pod.ComputeBlock(ctx, blocks, forms, rankCaps, tols, o.podConfig(0, 0))
	o.metricsCollector.RecordBlockDecomposition(len(blocks), time.Since(start), err)

	return results, translateError(err)
}
