package pod

import (
	"fmt"
	"log/slog"

	"gonum.org/v1/gonum/mat"

	"github.com/hupe1980/romgo/inner"
	"github.com/hupe1980/romgo/internal/floats"
	"github.com/hupe1980/romgo/snapshot"
)

// reconstruct maps the retained eigenvectors back into snapshot space:
// mode_k = sum_i v_k[i] * s_i, optionally rescaled to unit norm under the
// form. Modes are freshly allocated; input snapshots are never mutated.
//
// A mode whose computed squared norm is not positive is numerically
// degenerate. Such a mode is left unscaled and the event is logged; it is
// never divided by a non-positive value.
func reconstruct(
	snaps *snapshot.List,
	vectors *mat.Dense,
	perm []int,
	count int,
	form inner.Form,
	normalize bool,
	logger *slog.Logger,
) (*snapshot.List, [][]float64, error) {
	n := snaps.Len()
	dim := snaps.Dimension()

	modes := snapshot.NewList()
	retained := make([][]float64, 0, count)

	for k := 0; k < count; k++ {
		col := perm[k]
		coeffs := make([]float64, n)
		mat.Col(coeffs, col, vectors)

		mode := make([]float64, dim)
		for i := 0; i < n; i++ {
			floats.AxpyInPlace(mode, coeffs[i], snaps.At(i))
		}

		if normalize {
			sq, err := form.Apply(mode, mode)
			if err != nil {
				return nil, nil, fmt.Errorf("mode %d norm: %w", k, err)
			}
			if sq > 0 {
				floats.ScaleInPlace(mode, 1/floats.Sqrt(sq))
			} else {
				logger.Warn("mode has non-positive norm, skipping normalization",
					"mode", k,
					"squared_norm", sq,
				)
			}
		}

		if err := modes.Append(mode); err != nil {
			return nil, nil, err
		}
		retained = append(retained, coeffs)
	}

	return modes, retained, nil
}
