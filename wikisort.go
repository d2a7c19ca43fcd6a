package wikisort

// Sort sorts a in place using cmp, choosing a cache size automatically.
func Sort[T any](a []T, cmp Compare[T]) {
	sortCore(a, cmp, newDynamicCache[T](len(a)))
}

// SortWithCacheSize sorts a in place using cmp with an explicitly sized
// cache, bypassing the automatic policy in newDynamicCache. A cacheSize of
// 0 forces every merge at every level through the internal-buffer path;
// this is mainly useful for exercising that path directly in tests.
func SortWithCacheSize[T any](a []T, cmp Compare[T], cacheSize int) {
	sortCore(a, cmp, make([]T, cacheSize))
}

// sortCore is the entry point shared by Sort, SortWithCacheSize and
// SortStats: sort tiny ranges and small runs directly, then repeatedly
// double the merge width until the whole array is one sorted run.
func sortCore[T any](a []T, cmp Compare[T], cache []T) {
	n := len(a)
	if n < 4 {
		sortTiny(a, cmp)
		return
	}

	it := newLevelIterator(n, 4)
	for !it.finished() {
		sortSmall(a, it.nextRange(), cmp)
	}
	if n < 8 {
		return
	}

	for {
		if it.length() < len(cache) {
			if (it.length()+1)*4 <= len(cache) && it.length()*4 <= n {
				mergeFourWithCache(a, it, cmp, cache)
				it.nextLevel()
			} else {
				mergeTwoWithCache(a, it, cmp, cache)
			}
		} else {
			mergeLevelInPlace(a, it, cmp, cache)
		}

		if !it.nextLevel() {
			break
		}
	}
}

// mergeTwoWithCache merges every A/B pair at the current level using the
// cache directly: a quick rotation when B is already entirely before A, a
// copy-then-mergeExternal when they're out of order, or nothing at all when
// they're already in order.
func mergeTwoWithCache[T any](a []T, it *levelIterator, cmp Compare[T], cache []T) {
	it.begin()
	for !it.finished() {
		A := it.nextRange()
		B := it.nextRange()

		if cmp(a[B.End-1], a[A.Start]) < 0 {
			rotate(a, A.Length(), NewRange(A.Start, B.End), cache)
		} else if cmp(a[B.Start], a[A.End-1]) < 0 {
			copy(cache[:A.Length()], a[A.Start:A.End])
			mergeExternal(a, A, B, cmp, cache)
		}
	}
}

// mergeFourWithCache is the optimization used once four consecutive
// subarrays fit into the cache at once: merge A1+B1 and A2+B2 into the
// cache, then merge the two cached runs back into the array, saving a
// round trip relative to two separate two-way cache merges.
func mergeFourWithCache[T any](a []T, it *levelIterator, cmp Compare[T], cache []T) {
	it.begin()
	for !it.finished() {
		A1 := it.nextRange()
		B1 := it.nextRange()
		A2 := it.nextRange()
		B2 := it.nextRange()

		switch {
		case cmp(a[B1.End-1], a[A1.Start]) < 0:
			copy(cache[B1.Length():B1.Length()+A1.Length()], a[A1.Start:A1.End])
			copy(cache[0:B1.Length()], a[B1.Start:B1.End])
		case cmp(a[B1.Start], a[A1.End-1]) < 0:
			mergeInto(a, A1, B1, cmp, cache)
		default:
			if cmp(a[B2.Start], a[A2.End-1]) >= 0 && cmp(a[A2.Start], a[B1.End-1]) >= 0 {
				continue
			}
			copy(cache[0:A1.Length()], a[A1.Start:A1.End])
			copy(cache[A1.Length():A1.Length()+B1.Length()], a[B1.Start:B1.End])
		}
		A1 = NewRange(A1.Start, B1.End)

		switch {
		case cmp(a[B2.End-1], a[A2.Start]) < 0:
			copy(cache[A1.Length()+B2.Length():A1.Length()+B2.Length()+A2.Length()], a[A2.Start:A2.End])
			copy(cache[A1.Length():A1.Length()+B2.Length()], a[B2.Start:B2.End])
		case cmp(a[B2.Start], a[A2.End-1]) < 0:
			// This is the sole point where the original's fast-path
			// comparison was missing its "< 0" — applied here to match
			// the two-way merge path's semantics exactly.
			mergeInto(a, A2, B2, cmp, cache[A1.Length():])
		default:
			copy(cache[A1.Length():A1.Length()+A2.Length()], a[A2.Start:A2.End])
			copy(cache[A1.Length()+A2.Length():A1.Length()+A2.Length()+B2.Length()], a[B2.Start:B2.End])
		}
		A2 = NewRange(A2.Start, B2.End)

		A3 := NewRange(0, A1.Length())
		B3 := NewRange(A1.Length(), A1.Length()+A2.Length())

		switch {
		case cmp(cache[B3.End-1], cache[A3.Start]) < 0:
			copy(a[A1.Start+A2.Length():A1.Start+A2.Length()+A3.Length()], cache[A3.Start:A3.End])
			copy(a[A1.Start:A1.Start+B3.Length()], cache[B3.Start:B3.End])
		case cmp(cache[B3.Start], cache[A3.End-1]) < 0:
			mergeInto(cache, A3, B3, cmp, a[A1.Start:])
		default:
			copy(a[A1.Start:A1.Start+A3.Length()], cache[A3.Start:A3.End])
			copy(a[A1.Start+A1.Length():A1.Start+A1.Length()+B3.Length()], cache[B3.Start:B3.End])
		}
	}
}

// mergeLevelInPlace handles a level whose subarrays no longer fit into the
// cache: it pulls out up to two internal buffers, rolls A's blocks through
// B's blocks merging as it goes, then redistributes the buffers back to
// where they came from.
func mergeLevelInPlace[T any](a []T, it *levelIterator, cmp Compare[T], cache []T) {
	plan := preparePull(a, it, cmp, cache)

	it.begin()
	for !it.finished() {
		A := it.nextRange()
		B := it.nextRange()

		trimmedA, trimmedB, ok := trimPulledRange(&plan, A, B)
		if !ok {
			continue
		}
		A, B = trimmedA, trimmedB

		if cmp(a[B.End-1], a[A.Start]) < 0 {
			rotate(a, A.Length(), NewRange(A.Start, B.End), cache)
		} else if cmp(a[A.End], a[A.End-1]) < 0 {
			mergeBlocks(a, A, B, cmp, cache, plan.buffer1, plan.buffer2, plan.blockSize)
		}
	}

	insertionSort(a, plan.buffer2, cmp)
	redistributeBuffers(a, &plan, cmp, cache)
}
