package wikisort

// insertionSort is the O(n^2) sort used to tidy up small ranges: sortSmall's
// fallback for lengths without a network, and the second internal buffer
// once a level's merges are done with it.
func insertionSort[T any](a []T, r Range, cmp Compare[T]) {
	for i := r.Start + 1; i < r.End; i++ {
		for j := i; j > r.Start && cmp(a[j], a[j-1]) < 0; j-- {
			a[j], a[j-1] = a[j-1], a[j]
		}
	}
}

// stableSwap exchanges a[x] and a[y] (offsets relative to base) whenever
// they are out of order, or when they compare equal but order records them
// in the wrong relative position — which is what keeps the otherwise
// unstable sorting networks below stable.
func stableSwap[T any](a []T, base, x, y int, order *[8]uint8, cmp Compare[T]) {
	ax, ay := base+x, base+y
	if cmp(a[ay], a[ax]) < 0 || (order[x] > order[y] && cmp(a[ax], a[ay]) >= 0) {
		a[ax], a[ay] = a[ay], a[ax]
		order[x], order[y] = order[y], order[x]
	}
}

// sortSmall applies a fixed, stability-preserving sorting network to ranges
// of 4 to 8 items, or insertion sort for any other length, which a network
// isn't hard-coded for. Ranges below 4 items are handled by sortTiny before
// this is ever reached.
func sortSmall[T any](a []T, r Range, cmp Compare[T]) {
	order := [8]uint8{0, 1, 2, 3, 4, 5, 6, 7}
	base := r.Start
	swap := func(x, y int) { stableSwap(a, base, x, y, &order, cmp) }

	switch r.Length() {
	case 8:
		swap(0, 1)
		swap(2, 3)
		swap(4, 5)
		swap(6, 7)
		swap(0, 2)
		swap(1, 3)
		swap(4, 6)
		swap(5, 7)
		swap(1, 2)
		swap(5, 6)
		swap(0, 4)
		swap(3, 7)
		swap(1, 5)
		swap(2, 6)
		swap(1, 4)
		swap(3, 6)
		swap(2, 4)
		swap(3, 5)
		swap(3, 4)
	case 7:
		swap(1, 2)
		swap(3, 4)
		swap(5, 6)
		swap(0, 2)
		swap(3, 5)
		swap(4, 6)
		swap(0, 1)
		swap(4, 5)
		swap(2, 6)
		swap(0, 4)
		swap(1, 5)
		swap(0, 3)
		swap(2, 5)
		swap(1, 3)
		swap(2, 4)
		swap(2, 3)
	case 6:
		swap(1, 2)
		swap(4, 5)
		swap(0, 2)
		swap(3, 5)
		swap(0, 1)
		swap(3, 4)
		swap(2, 5)
		swap(0, 3)
		swap(1, 4)
		swap(2, 4)
		swap(1, 3)
		swap(2, 3)
	case 5:
		swap(0, 1)
		swap(3, 4)
		swap(2, 4)
		swap(2, 3)
		swap(1, 4)
		swap(0, 3)
		swap(0, 2)
		swap(1, 3)
		swap(1, 2)
	case 4:
		swap(0, 1)
		swap(2, 3)
		swap(0, 2)
		swap(1, 3)
		swap(1, 2)
	default:
		insertionSort(a, r, cmp)
	}
}

// sortTiny hard-codes the 0-, 1-, 2- and 3-item cases, which are too small
// to benefit from a sorting network or a merge pass of their own.
func sortTiny[T any](a []T, cmp Compare[T]) {
	switch len(a) {
	case 3:
		if cmp(a[1], a[0]) < 0 {
			a[0], a[1] = a[1], a[0]
		}
		if cmp(a[2], a[1]) < 0 {
			a[1], a[2] = a[2], a[1]
			if cmp(a[1], a[0]) < 0 {
				a[0], a[1] = a[1], a[0]
			}
		}
	case 2:
		if cmp(a[1], a[0]) < 0 {
			a[0], a[1] = a[1], a[0]
		}
	}
}
