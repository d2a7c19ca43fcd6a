package wikisort

import (
	"reflect"
	"sort"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func intCompare(a, b int) int {
	return a - b
}

// tagged carries an original index alongside its value, so a stability
// check can tell whether two equal values swapped places.
type tagged struct {
	value int
	index int
}

func taggedCompareByValue(a, b tagged) int {
	return a.value - b.value
}

func tagSlice(values []int) []tagged {
	out := make([]tagged, len(values))
	for i, v := range values {
		out[i] = tagged{value: v, index: i}
	}
	return out
}

// TestSortIsPermutation checks invariant 1: the output is a permutation of
// the input (same multiset of values), for arbitrary slices.
func TestSortIsPermutation(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("sort output is a permutation of the input", prop.ForAll(func(input []int) bool {
		got := append([]int(nil), input...)
		Sort(got, intCompare)

		want := append([]int(nil), input...)
		sort.Ints(want)

		return reflect.DeepEqual(got, want)
	}, gen.SliceOf(gen.Int())))

	properties.TestingRun(t)
}

// TestSortIsOrdered checks invariant 2: every adjacent pair in the output
// satisfies cmp(a[i], a[i+1]) <= 0.
func TestSortIsOrdered(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("sort output is non-decreasing", prop.ForAll(func(input []int) bool {
		got := append([]int(nil), input...)
		Sort(got, intCompare)

		for i := 1; i < len(got); i++ {
			if intCompare(got[i-1], got[i]) > 0 {
				return false
			}
		}
		return true
	}, gen.SliceOf(gen.Int())))

	properties.TestingRun(t)
}

// TestSortIsStable checks invariant 3: equal-valued elements keep their
// relative input order.
func TestSortIsStable(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("equal elements retain relative order", prop.ForAll(func(values []int) bool {
		// force collisions so stability is actually exercised
		for i := range values {
			values[i] %= 5
		}
		got := tagSlice(values)
		Sort(got, taggedCompareByValue)

		for i := 1; i < len(got); i++ {
			if got[i-1].value == got[i].value && got[i-1].index > got[i].index {
				return false
			}
		}
		return true
	}, gen.SliceOf(gen.Int())))

	properties.TestingRun(t)
}

// TestSortIsDeterministic checks invariant 4: sorting the same input twice
// produces identical output.
func TestSortIsDeterministic(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("sorting twice gives identical results", prop.ForAll(func(input []int) bool {
		a := append([]int(nil), input...)
		b := append([]int(nil), input...)
		Sort(a, intCompare)
		Sort(b, intCompare)
		return reflect.DeepEqual(a, b)
	}, gen.SliceOf(gen.Int())))

	properties.TestingRun(t)
}

// TestSortCacheSizeInsensitive checks invariant 6: the result does not
// depend on how large a cache was available, including zero (forcing the
// internal-buffer path at every level).
func TestSortCacheSizeInsensitive(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("result is identical across cache sizes", prop.ForAll(func(input []int) bool {
		want := append([]int(nil), input...)
		sort.Ints(want)

		for _, cacheSize := range []int{0, 1, 16, 512, (len(input) + 1) / 2} {
			got := append([]int(nil), input...)
			SortWithCacheSize(got, intCompare, cacheSize)
			if !reflect.DeepEqual(got, want) {
				return false
			}
		}
		return true
	}, gen.SliceOfN(200, gen.IntRange(0, 40))))

	properties.TestingRun(t)
}

// TestSortComparisonBudget guards against comparator-count regressions: a
// sort of n random values should need at most 4*n*(floor(log2(n))+2)
// comparisons, and none at all below 2 items.
func TestSortComparisonBudget(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("comparison count stays roughly n*log2(n)-bounded", prop.ForAll(func(input []int) bool {
		got := append([]int(nil), input...)
		stats := SortStats(got, intCompare)

		n := int64(len(input))
		if n < 2 {
			return stats.Comparisons == 0
		}

		bound := int64(1)
		for bit := n; bit > 0; bit >>= 1 {
			bound++
		}
		return stats.Comparisons <= n*bound*4
	}, gen.SliceOfN(500, gen.Int())))

	properties.TestingRun(t)
}
