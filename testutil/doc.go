// Package testutil provides testing utilities for romgo.
//
// This package is intended for use in tests and benchmarks only.
// It provides helpers for generating random snapshot data and for
// checking decomposition results numerically.
//
// # Random Snapshot Generation
//
//	rng := testutil.NewRNG(seed)
//	field := make([]float64, 128)
//	rng.FillUniform(field)      // uniform [0, 1)
//	rng.FillGaussian(field)     // standard normal
//
//	list := rng.SnapshotList(64, 128)
package testutil
