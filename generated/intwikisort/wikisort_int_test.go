package intwikisort

import (
	"math/rand"
	"reflect"
	"sort"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func intCmp(a, b int) int { return a - b }

func TestIntSortMatchesStandardLibrary(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for _, n := range []int{0, 1, 2, 3, 7, 8, 100, 513} {
		input := make([]int, n)
		for i := range input {
			input[i] = rng.Intn(50)
		}
		want := append([]int(nil), input...)
		sort.Ints(want)

		got := append([]int(nil), input...)
		IntSort(got, intCmp)

		if !reflect.DeepEqual(got, want) {
			t.Fatalf("n=%d: got %v, want %v", n, got, want)
		}
	}
}

func TestIntSortWithCacheSizeZero(t *testing.T) {
	input := []int{9, 8, 7, 6, 5, 4, 3, 2, 1, 0}
	want := append([]int(nil), input...)
	sort.Ints(want)

	got := append([]int(nil), input...)
	IntSortWithCacheSize(got, intCmp, 0)

	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

// TestIntSortIsPermutation checks that the generated int sort agrees with
// the standard library across arbitrary inputs.
func TestIntSortIsPermutation(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("IntSort output matches sort.Ints", prop.ForAll(func(input []int) bool {
		got := append([]int(nil), input...)
		IntSort(got, intCmp)

		want := append([]int(nil), input...)
		sort.Ints(want)

		return reflect.DeepEqual(got, want)
	}, gen.SliceOf(gen.Int())))

	properties.TestingRun(t)
}

// TestIntSortWithCacheSizeIsInsensitive checks that forcing the generated
// sort through different cache sizes, including zero, never changes the
// result.
func TestIntSortWithCacheSizeIsInsensitive(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("result is identical across cache sizes", prop.ForAll(func(input []int) bool {
		want := append([]int(nil), input...)
		sort.Ints(want)

		for _, cacheSize := range []int{0, 1, 16, 512, (len(input) + 1) / 2} {
			got := append([]int(nil), input...)
			IntSortWithCacheSize(got, intCmp, cacheSize)
			if !reflect.DeepEqual(got, want) {
				return false
			}
		}
		return true
	}, gen.SliceOfN(200, gen.IntRange(0, 40))))

	properties.TestingRun(t)
}
