package wikisort

import (
	"math/rand"
	"reflect"
	"sort"
	"testing"
)

func TestSortTinyRanges(t *testing.T) {
	for n := 0; n < 4; n++ {
		input := make([]int, n)
		for i := range input {
			input[i] = n - i
		}
		want := append([]int(nil), input...)
		sort.Ints(want)

		got := append([]int(nil), input...)
		Sort(got, intCompare)

		if !reflect.DeepEqual(got, want) {
			t.Errorf("n=%d: got %v, want %v", n, got, want)
		}
	}
}

// TestEightStableDuplicates exercises the 4-8 item stable sorting network
// with deliberately duplicated keys.
func TestEightStableDuplicates(t *testing.T) {
	input := tagSlice([]int{3, 1, 3, 1, 3, 1, 3, 1})
	Sort(input, taggedCompareByValue)

	for i := 1; i < len(input); i++ {
		if input[i-1].value > input[i].value {
			t.Fatalf("not ordered: %+v", input)
		}
		if input[i-1].value == input[i].value && input[i-1].index > input[i].index {
			t.Fatalf("not stable: %+v", input)
		}
	}
}

func TestTwelveReverseSorted(t *testing.T) {
	input := make([]int, 12)
	for i := range input {
		input[i] = 12 - i
	}
	want := append([]int(nil), input...)
	sort.Ints(want)

	got := append([]int(nil), input...)
	Sort(got, intCompare)

	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestTwelvePreSorted(t *testing.T) {
	input := make([]int, 12)
	for i := range input {
		input[i] = i
	}
	got := append([]int(nil), input...)
	Sort(got, intCompare)

	if !reflect.DeepEqual(got, input) {
		t.Errorf("got %v, want %v", got, input)
	}
}

func TestSixteenAllEqual(t *testing.T) {
	input := tagSlice(make([]int, 16))
	Sort(input, taggedCompareByValue)

	for i, v := range input {
		if v.index != i {
			t.Fatalf("all-equal sort reordered elements: %+v", input)
		}
	}
}

// TestLargeAllEqualForcesInPlaceMerge drives 1024 equal keys through a
// zero-size cache, forcing every level to take the internal-buffer path
// (mergeLevelInPlace's buffer extraction and redistribution) rather than the
// cache fast paths. Every A/B pair is already in order, so no block merge runs.
func TestLargeAllEqualForcesInPlaceMerge(t *testing.T) {
	const n = 1024
	input := tagSlice(make([]int, n))
	SortWithCacheSize(input, taggedCompareByValue, 0)

	for i, v := range input {
		if v.index != i {
			t.Fatalf("index %d: got original index %d, want %d", i, v.index, i)
		}
	}
}

// TestLargeRepeatedRuns sorts 4096 values drawn mod 100, which produces
// many repeated runs and duplicate keys, a shape that stresses both the
// galloping search primitives and buffer extraction.
func TestLargeRepeatedRuns(t *testing.T) {
	const n = 4096
	rng := rand.New(rand.NewSource(1))
	values := make([]int, n)
	for i := range values {
		values[i] = rng.Intn(100)
	}

	want := append([]int(nil), values...)
	sort.Ints(want)

	got := append([]int(nil), values...)
	Sort(got, intCompare)

	if !reflect.DeepEqual(got, want) {
		t.Fatalf("mismatch sorting mod-100 data of size %d", n)
	}
}

func TestSortEmptyAndSingle(t *testing.T) {
	var empty []int
	Sort(empty, intCompare)

	single := []int{42}
	Sort(single, intCompare)
	if single[0] != 42 {
		t.Fatalf("single-element sort mutated value: %v", single)
	}
}

func TestSortStatsCountsComparisons(t *testing.T) {
	input := []int{5, 4, 3, 2, 1}
	stats := SortStats(append([]int(nil), input...), intCompare)
	if stats.Comparisons == 0 {
		t.Fatal("expected at least one comparison for a 5-element sort")
	}
}

func TestSortVariousSizes(t *testing.T) {
	sizes := []int{0, 1, 2, 3, 4, 7, 8, 15, 16, 63, 64, 1023, 1024}
	rng := rand.New(rand.NewSource(7))

	for _, n := range sizes {
		input := make([]int, n)
		for i := range input {
			input[i] = rng.Intn(n + 1)
		}
		want := append([]int(nil), input...)
		sort.Ints(want)

		got := append([]int(nil), input...)
		Sort(got, intCompare)

		if !reflect.DeepEqual(got, want) {
			t.Errorf("size %d: mismatch", n)
		}
	}
}
