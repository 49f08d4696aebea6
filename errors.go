package romgo

import (
	"errors"
	"fmt"

	"github.com/hupe1980/romgo/inner"
	"github.com/hupe1980/romgo/pod"
	"github.com/hupe1980/romgo/snapshot"
)

// ErrInvalidInput unifies argument errors: negative rank caps, tolerances
// outside [0, 1], mismatched per-block parameter lists and incompatible
// snapshot dimensions.
//
// The original underlying error can be accessed via errors.Unwrap.
var ErrInvalidInput = errors.New("invalid input")

func translateError(err error) error {
	if err == nil {
		return nil
	}

	// Argument normalization.
	if errors.Is(err, pod.ErrInvalidRankCap) || errors.Is(err, pod.ErrInvalidTolerance) {
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	var bm *pod.ErrBlockMismatch
	if errors.As(err, &bm) {
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	var sdm *snapshot.ErrDimensionMismatch
	if errors.As(err, &sdm) {
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	var fdm *inner.ErrDimensionMismatch
	if errors.As(err, &fdm) {
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	// Collaborator failures (eigensolver, form evaluators) pass through
	// unmodified; they indicate a problem below the orchestration layer.
	return err
}
