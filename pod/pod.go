package pod

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/hupe1980/romgo/eigen"
	"github.com/hupe1980/romgo/inner"
	"github.com/hupe1980/romgo/snapshot"
)

// Config holds the parameters of one decomposition call.
type Config struct {
	// RankCap is the maximum number of modes to retain.
	RankCap int

	// Tol is the retained-energy tolerance: modes are retained until the
	// cumulative eigenvalue sum reaches a (1 - Tol) fraction of the total.
	Tol float64

	// Normalize scales each retained mode to unit norm under the form.
	Normalize bool

	// Solver solves the correlation matrix eigenproblem.
	// Nil means eigen.DenseSolver.
	Solver eigen.Solver

	// Parallelism bounds concurrent inner-product evaluations and, for
	// block input, concurrent per-block pipelines. Values <= 1 mean serial.
	Parallelism int

	// Logger receives debug/diagnostic output. Nil disables logging.
	Logger *slog.Logger
}

func (c Config) validate() error {
	if c.RankCap < 0 {
		return ErrInvalidRankCap
	}
	if c.Tol < 0 || c.Tol > 1 {
		return ErrInvalidTolerance
	}
	return nil
}

func (c Config) solver() eigen.Solver {
	if c.Solver == nil {
		return eigen.DenseSolver{}
	}
	return c.Solver
}

func (c Config) logger() *slog.Logger {
	if c.Logger == nil {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return c.Logger
}

// Result is the outcome of one decomposition.
//
// Eigenvalues always carries the complete spectrum, sorted descending, so
// callers can inspect the energy decay; Modes and Eigenvectors carry only
// the retained prefix.
type Result struct {
	// Eigenvalues of the correlation matrix, largest first. All computed
	// eigenvalues are present regardless of truncation.
	Eigenvalues []float64

	// Modes are the retained basis functions, ordered by descending
	// eigenvalue.
	Modes *snapshot.List

	// Eigenvectors are the correlation-matrix eigenvectors paired
	// positionally with Modes. Each has length equal to the snapshot count.
	Eigenvectors [][]float64
}

// Compute runs the decomposition of snaps under the given inner product.
//
// An empty snapshot list yields an empty result without invoking the
// eigensolver. Solver and form failures are propagated to the caller.
func Compute(ctx context.Context, snaps *snapshot.List, form inner.Form, cfg Config) (*Result, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	n := snaps.Len()
	if n == 0 {
		return &Result{
			Eigenvalues:  []float64{},
			Modes:        snapshot.NewList(),
			Eigenvectors: [][]float64{},
		}, nil
	}

	logger := cfg.logger()

	c, err := buildGram(ctx, snaps, form, cfg.Parallelism)
	if err != nil {
		return nil, fmt.Errorf("correlation matrix: %w", err)
	}

	values, vectors, err := cfg.solver().Solve(c)
	if err != nil {
		return nil, fmt.Errorf("eigensolve: %w", err)
	}

	sorted, perm := sortEigenpairs(values)
	count := retainCount(sorted, cfg.RankCap, cfg.Tol)

	logger.Debug("truncated eigenpairs",
		"snapshots", n,
		"retained", count,
		"rank_cap", cfg.RankCap,
		"tol", cfg.Tol,
	)

	modes, retained, err := reconstruct(snaps, vectors, perm, count, form, cfg.Normalize, logger)
	if err != nil {
		return nil, fmt.Errorf("basis reconstruction: %w", err)
	}

	return &Result{
		Eigenvalues:  sorted,
		Modes:        modes,
		Eigenvectors: retained,
	}, nil
}

// ComputeTensors runs the decomposition of a tensor list using the tensors'
// built-in Frobenius inner product, bypassing any bilinear form. The
// retained modes are reshaped back to tensors.
func ComputeTensors(ctx context.Context, tensors *snapshot.TensorList, cfg Config) ([]float64, *snapshot.TensorList, [][]float64, error) {
	res, err := Compute(ctx, tensors.Flatten(), inner.Euclidean{}, cfg)
	if err != nil {
		return nil, nil, nil, err
	}

	modes := snapshot.NewTensorList()
	for i := 0; i < res.Modes.Len(); i++ {
		t, err := snapshot.NewTensor(tensors.Rows(), tensors.Cols(), res.Modes.At(i))
		if err != nil {
			return nil, nil, nil, err
		}
		if err := modes.Append(t); err != nil {
			return nil, nil, nil, err
		}
	}
	return res.Eigenvalues, modes, res.Eigenvectors, nil
}
