// Package romgo provides reduced-order-modeling utilities for Go, centered
// on proper orthogonal decomposition (POD) of snapshot sets.
//
// Given a collection of snapshot fields and a symmetric bilinear form
// defining an inner product, romgo computes an orthonormal reduced basis
// that optimally captures the snapshot energy, truncated by a rank cap
// and/or an energy-retention tolerance:
//
//   - Correlation matrix of pairwise inner products (symmetry exploited,
//     optionally evaluated in parallel)
//   - Dense symmetric eigensolve (gonum-backed by default, pluggable)
//   - Descending-eigenvalue truncation under rank cap and energy tolerance
//   - Basis reconstruction with optional unit-norm scaling
//   - Independent per-block decomposition for multi-field problems
//
// # Quick Start
//
//	snaps := snapshot.NewList()
//	for _, field := range fields {
//	    if err := snaps.Append(field); err != nil {
//	        log.Fatal(err)
//	    }
//	}
//
//	res, err := romgo.POD(ctx, snaps, inner.Euclidean{}, 10, 1e-6)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(res.Eigenvalues) // full spectrum, largest first
//	fmt.Println(res.Modes.Len()) // retained basis size
//
// Multi-field (block) problems run one independent decomposition per block,
// broadcasting scalar rank caps and tolerances:
//
//	results, err := romgo.PODBlock(ctx,
//	    []*snapshot.List{velocity, pressure},
//	    []inner.Form{h1Form, l2Form},
//	    romgo.PerBlock(2, 5),  // per-block rank caps
//	    romgo.Scalar(0.1),     // shared tolerance
//	)
//
// Raw tensor snapshots (e.g. assembled operators) use their built-in
// Frobenius inner product:
//
//	values, modes, vectors, err := romgo.PODTensors(ctx, tensors, 10, 0)
//
// Persisted snapshot sets and bases can be written with the persistence
// package and shipped to object storage with the archive and blobstore
// packages.
package romgo
