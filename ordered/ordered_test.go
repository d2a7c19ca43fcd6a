package ordered

import (
	"math/rand"
	"reflect"
	"sort"
	"testing"
)

func TestSortMatchesStandardLibrary(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	input := make([]int, 500)
	for i := range input {
		input[i] = rng.Intn(1000)
	}

	want := append([]int(nil), input...)
	sort.Ints(want)

	got := append([]int(nil), input...)
	Sort(got)

	if !reflect.DeepEqual(got, want) {
		t.Fatalf("mismatch")
	}
}

func TestBinarySearchAndIndexOf(t *testing.T) {
	sorted := []int{1, 3, 3, 5, 7, 9}

	if i := BinarySearch(sorted, 3); i != 1 {
		t.Fatalf("BinarySearch(3) = %d, want 1", i)
	}
	if i := IndexOf(sorted, 5); sorted[i] != 5 {
		t.Fatalf("IndexOf(5) = %d, want index of value 5", i)
	}
	if IndexOf(sorted, 4) != -1 {
		t.Fatalf("IndexOf(4) should be -1")
	}
	if !Contains(sorted, 3) {
		t.Fatalf("Contains(3) should be true")
	}
	if Contains(sorted, 4) {
		t.Fatalf("Contains(4) should be false")
	}
}

func TestInsertAndRemove(t *testing.T) {
	sorted := []int{1, 3, 5, 7}

	inserted := Insert(append([]int(nil), sorted...), 4)
	if !reflect.DeepEqual(inserted, []int{1, 3, 4, 5, 7}) {
		t.Fatalf("Insert(4) = %v", inserted)
	}

	removed := Remove(append([]int(nil), sorted...), 5)
	if !reflect.DeepEqual(removed, []int{1, 3, 7}) {
		t.Fatalf("Remove(5) = %v", removed)
	}

	unchanged := Remove(append([]int(nil), sorted...), 99)
	if !reflect.DeepEqual(unchanged, sorted) {
		t.Fatalf("Remove(99) should be a no-op, got %v", unchanged)
	}
}
