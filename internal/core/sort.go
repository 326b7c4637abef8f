package core

// SortStats counts the work done by a single sort call.
//
// The counters are observational only: they are a function of the input
// values alone, contain no runtime-dependent state, and never influence
// the sorted output. That makes them safe to include in a canonical run
// report.
type SortStats struct {
	// Comparisons is the number of element comparisons performed.
	// For selection sort this is always n*(n-1)/2.
	Comparisons int

	// Swaps is the number of effective exchanges (a swap of a position
	// with itself is not counted). At most n-1.
	Swaps int
}

// SelectionSort sorts s in place into non-decreasing order.
//
// For each position i from 0 to n-2 it scans positions i+1..n-1 for the
// index of the minimum remaining element (ties keep the earliest index)
// and exchanges the element at i with it. The routine is total over any
// input; n = 0 and n = 1 are no-ops.
func SelectionSort(s []int) SortStats {
	var stats SortStats
	for i := 0; i < len(s)-1; i++ {
		min := i
		for j := i + 1; j < len(s); j++ {
			stats.Comparisons++
			if s[j] < s[min] {
				min = j
			}
		}
		if min != i {
			s[i], s[min] = s[min], s[i]
			stats.Swaps++
		}
	}
	return stats
}
