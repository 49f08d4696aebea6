package pod

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidRankCap is returned when the rank cap is negative.
	ErrInvalidRankCap = errors.New("rank cap must be non-negative")

	// ErrInvalidTolerance is returned when the energy tolerance is outside [0, 1].
	ErrInvalidTolerance = errors.New("tolerance must be in [0, 1]")
)

// ErrBlockMismatch indicates a per-block parameter list whose length does
// not match the number of blocks.
type ErrBlockMismatch struct {
	Param  string
	Blocks int
	Actual int
}

func (e *ErrBlockMismatch) Error() string {
	return fmt.Sprintf("%s list has length %d, want %d (one per block) or 1 (broadcast)",
		e.Param, e.Actual, e.Blocks)
}
