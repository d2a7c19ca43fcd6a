package wikisort

import "math"

// isqrt returns the integer square root of n (n >= 0).
func isqrt(n int) int {
	if n <= 0 {
		return 0
	}
	x := int(math.Sqrt(float64(n)))
	for x*x > n {
		x--
	}
	for (x+1)*(x+1) <= n {
		x++
	}
	return x
}

// tryAlloc attempts to make a slice of the requested size, recovering from
// an allocation panic the way the original's malloc would simply return
// NULL on failure, so the caller can fall back to a smaller cache tier
// instead of aborting the sort.
func tryAlloc[T any](size int) (cache []T, ok bool) {
	defer func() {
		if recover() != nil {
			cache, ok = nil, false
		}
	}()
	if size <= 0 {
		return nil, true
	}
	return make([]T, size), true
}

// newDynamicCache builds the best cache it can for n items, degrading
// through the same tiers as the original: half the array (a full-speed
// standard merge sort), then sqrt((n+1)/2)+1 (enough to tag every A block
// at the largest level), then a fixed 512, then none at all.
func newDynamicCache[T any](n int) []T {
	if n < 8 {
		return nil
	}

	full := (n + 1) / 2
	if cache, ok := tryAlloc[T](full); ok {
		return cache
	}

	reduced := isqrt(full) + 1
	if cache, ok := tryAlloc[T](reduced); ok {
		return cache
	}

	if reduced > 512 {
		if cache, ok := tryAlloc[T](512); ok {
			return cache
		}
	}

	return nil
}
