package pod

import "sort"

// sortEigenpairs returns the eigenvalues sorted descending together with the
// permutation mapping sorted position k to the solver's column perm[k].
//
// The sort is stable, so exactly equal eigenvalues keep the solver's order
// and the result is reproducible for identical inputs.
func sortEigenpairs(values []float64) (sorted []float64, perm []int) {
	perm = make([]int, len(values))
	for i := range perm {
		perm[i] = i
	}
	sort.SliceStable(perm, func(a, b int) bool {
		return values[perm[a]] > values[perm[b]]
	})

	sorted = make([]float64, len(values))
	for k, p := range perm {
		sorted[k] = values[p]
	}
	return sorted, perm
}

// retainCount walks the descending eigenvalues and returns how many modes to
// keep: stop as soon as the count reaches rankCap or the cumulative energy
// ratio reaches 1 - tol, whichever triggers first.
//
// The total energy is the plain sum of all eigenvalues, including negative
// near-zero ones. A non-positive total means there is no energy to retain;
// zero modes are kept and no division happens.
func retainCount(sorted []float64, rankCap int, tol float64) int {
	limit := min(rankCap, len(sorted))
	if limit <= 0 {
		return 0
	}

	var total float64
	for _, v := range sorted {
		total += v
	}
	if total <= 0 {
		return 0
	}

	threshold := (1 - tol) * total
	var cumulative float64
	count := 0
	for k := 0; k < limit; k++ {
		cumulative += sorted[k]
		count++
		if cumulative >= threshold {
			break
		}
	}
	return count
}
