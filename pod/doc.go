// Package pod implements proper orthogonal decomposition of snapshot sets.
//
// The pipeline is a single pass per call with no persistent state: build the
// symmetric correlation (Gram) matrix of pairwise inner products, solve its
// eigenproblem, truncate the descending-sorted eigenpairs under a rank cap
// and a retained-energy tolerance, and reconstruct the retained modes as
// linear combinations of the input snapshots.
//
// Snapshots and the inner product are read-only for the duration of a call;
// the correlation matrix is transient and only the result survives.
package pod
