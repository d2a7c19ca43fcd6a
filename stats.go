package wikisort

// Stats reports counters gathered while sorting.
type Stats struct {
	// Comparisons is the total number of calls made to the caller's
	// comparator.
	Comparisons int64
}

// SortStats sorts a in place exactly like Sort, additionally returning a
// count of how many comparisons were performed. Unlike a process-wide
// counter, the count belongs solely to this call and is safe to use
// concurrently with other sorts.
func SortStats[T any](a []T, cmp Compare[T]) Stats {
	var stats Stats
	counting := func(x, y T) int {
		stats.Comparisons++
		return cmp(x, y)
	}
	sortCore(a, counting, newDynamicCache[T](len(a)))
	return stats
}
