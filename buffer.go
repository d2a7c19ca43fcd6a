package wikisort

// pullRecord remembers where a run of pairwise-distinct values was pulled
// from within a level's A/B subarray (from), where it was collected to
// (to), how many values it holds (count), and which A+B subarray it came
// from (rng) — so the values can be redistributed to their sorted
// positions within that subarray once the level's merges are done with them.
type pullRecord struct {
	from, to, count int
	rng             Range
}

// bufferPlan is the result of scanning a level for two internal buffers of
// pairwise-distinct values (see preparePull), adjusted for whatever was
// actually found.
type bufferPlan struct {
	pulls      [2]pullRecord
	buffer1    Range
	buffer2    Range
	blockSize  int
	bufferSize int
}

// preparePull scans every A/B subarray of the current level looking for up
// to two runs of pairwise-distinct values of length bufferSize, which will
// serve as internal swap buffers for mergeBlocks, then physically pulls
// those values out to the edges of their subarrays. If fewer than
// bufferSize unique values can be found anywhere, the largest run of unique
// values seen is used as buffer1 instead and blockSize grows to match; with
// no buffer2, the local merges then use the cache or mergeInPlace.
func preparePull[T any](a []T, it *levelIterator, cmp Compare[T], cache []T) bufferPlan {
	blockSize := isqrt(it.length())
	bufferSize := it.length()/blockSize + 1

	var plan bufferPlan
	plan.pulls[0].rng = NewRange(0, 0)
	plan.pulls[1].rng = NewRange(0, 0)

	find := bufferSize + bufferSize
	findSeparately := false

	if blockSize <= len(cache) {
		find = bufferSize
	} else if find > it.length() {
		find = bufferSize
		findSeparately = true
	}

	pullIndex := 0

	it.begin()
outer:
	for !it.finished() {
		A := it.nextRange()
		B := it.nextRange()

		// scan A forward for `find` unique values, to be pulled to A's start.
		last, count := A.Start, 1
		var index int
		for count < find {
			index = findLastForward(a, a[last], NewRange(last+1, A.End), cmp, find-count)
			if index == A.End {
				break
			}
			last, count = index, count+1
		}
		index = last

		if count >= bufferSize {
			plan.pulls[pullIndex] = pullRecord{from: index, to: A.Start, count: count, rng: NewRange(A.Start, B.End)}
			pullIndex = 1

			switch {
			case count == bufferSize+bufferSize:
				plan.buffer1 = NewRange(A.Start, A.Start+bufferSize)
				plan.buffer2 = NewRange(A.Start+bufferSize, A.Start+count)
				break outer
			case find == bufferSize+bufferSize:
				plan.buffer1 = NewRange(A.Start, A.Start+count)
				find = bufferSize
			case blockSize <= len(cache):
				plan.buffer1 = NewRange(A.Start, A.Start+count)
				break outer
			case findSeparately:
				plan.buffer1 = NewRange(A.Start, A.Start+count)
				findSeparately = false
			default:
				plan.buffer2 = NewRange(A.Start, A.Start+count)
				break outer
			}
		} else if pullIndex == 0 && count > plan.buffer1.Length() {
			plan.buffer1 = NewRange(A.Start, A.Start+count)
			plan.pulls[pullIndex] = pullRecord{from: index, to: A.Start, count: count, rng: NewRange(A.Start, B.End)}
		}

		// scan B backward for `find` unique values, to be pulled to B's end.
		last, count = B.End-1, 1
		for count < find {
			index = findFirstBackward(a, a[last], NewRange(B.Start, last), cmp, find-count)
			if index == B.Start {
				break
			}
			last, count = index-1, count+1
		}
		index = last

		if count >= bufferSize {
			plan.pulls[pullIndex] = pullRecord{from: index, to: B.End, count: count, rng: NewRange(A.Start, B.End)}
			pullIndex = 1

			switch {
			case count == bufferSize+bufferSize:
				plan.buffer1 = NewRange(B.End-count, B.End-bufferSize)
				plan.buffer2 = NewRange(B.End-bufferSize, B.End)
				break outer
			case find == bufferSize+bufferSize:
				plan.buffer1 = NewRange(B.End-count, B.End)
				find = bufferSize
			case blockSize <= len(cache):
				plan.buffer1 = NewRange(B.End-count, B.End)
				break outer
			case findSeparately:
				plan.buffer1 = NewRange(B.End-count, B.End)
				findSeparately = false
			default:
				if plan.pulls[0].rng.Start == A.Start {
					plan.pulls[0].rng.End -= plan.pulls[1].count
				}
				plan.buffer2 = NewRange(B.End-count, B.End)
				break outer
			}
		} else if pullIndex == 0 && count > plan.buffer1.Length() {
			plan.buffer1 = NewRange(B.End-count, B.End)
			plan.pulls[pullIndex] = pullRecord{from: index, to: B.End, count: count, rng: NewRange(A.Start, B.End)}
		}
	}

	// physically pull the two chosen runs out to the edges of their subarrays.
	for pi := 0; pi < 2; pi++ {
		length := plan.pulls[pi].count

		switch {
		case plan.pulls[pi].to < plan.pulls[pi].from:
			index := plan.pulls[pi].from
			for count := 1; count < length; count++ {
				index = findFirstBackward(a, a[index-1], NewRange(plan.pulls[pi].to, plan.pulls[pi].from-(count-1)), cmp, length-count)
				r := NewRange(index+1, plan.pulls[pi].from+1)
				rotate(a, r.Length()-count, r, cache)
				plan.pulls[pi].from = index + count
			}
		case plan.pulls[pi].to > plan.pulls[pi].from:
			index := plan.pulls[pi].from + 1
			for count := 1; count < length; count++ {
				index = findLastForward(a, a[index], NewRange(index, plan.pulls[pi].to), cmp, length-count)
				r := NewRange(plan.pulls[pi].from, index-1)
				rotate(a, count, r, cache)
				plan.pulls[pi].from = index - 1 - count
			}
		}
	}

	plan.bufferSize = plan.buffer1.Length()
	if plan.bufferSize > 0 {
		plan.blockSize = it.length()/plan.bufferSize + 1
	} else {
		plan.blockSize = blockSize
	}

	return plan
}

// trimPulledRange removes from A/B whatever part of them was carved out to
// build the internal buffers, reporting ok=false when nothing is left to
// merge for this subarray pair.
func trimPulledRange(plan *bufferPlan, A, B Range) (Range, Range, bool) {
	start := A.Start
	for i := 0; i < 2; i++ {
		if start != plan.pulls[i].rng.Start {
			continue
		}
		switch {
		case plan.pulls[i].from > plan.pulls[i].to:
			A.Start += plan.pulls[i].count
			if A.Length() == 0 {
				return A, B, false
			}
		case plan.pulls[i].from < plan.pulls[i].to:
			B.End -= plan.pulls[i].count
			if B.Length() == 0 {
				return A, B, false
			}
		}
	}
	return A, B, true
}

// mergeBlocks merges A and B at the current level using the block-rolling,
// in-place technique: break A into blocks of blockSize, tag each block's
// first value using buffer1 so its original contents can be recovered
// later, then roll the A blocks through the B blocks, merging each A block
// against the B values that belong before the next one using whichever of
// cache/buffer2/mergeInPlace is available.
func mergeBlocks[T any](a []T, A, B Range, cmp Compare[T], cache []T, buffer1, buffer2 Range, blockSize int) {
	blockA := NewRange(A.Start, A.End)
	firstA := NewRange(A.Start, A.Start+blockA.Length()%blockSize)

	blockCount := (blockA.Length() - firstA.Length()) / blockSize
	assertf(blockCount <= buffer1.Length(), "block count %d exceeds buffer size %d before roll", blockCount, buffer1.Length())

	indexA := buffer1.Start
	for index := firstA.End; index < blockA.End; index += blockSize {
		a[indexA], a[index] = a[index], a[indexA]
		indexA++
	}

	lastA := firstA
	lastB := NewRange(0, 0)
	blockB := NewRange(B.Start, B.Start+minInt(blockSize, B.Length()))
	blockA.Start += firstA.Length()
	indexA = buffer1.Start

	if lastA.Length() <= len(cache) {
		copy(cache[:lastA.Length()], a[lastA.Start:lastA.End])
	} else if buffer2.Length() > 0 {
		blockSwap(a, lastA.Start, buffer2.Start, lastA.Length())
	}

	if blockA.Length() > 0 {
		for {
			if (lastB.Length() > 0 && cmp(a[lastB.End-1], a[indexA]) >= 0) || blockB.Length() == 0 {
				bSplit := binaryFirst(a, a[indexA], lastB, cmp)
				bRemaining := lastB.End - bSplit

				minA := blockA.Start
				for findA := minA + blockSize; findA < blockA.End; findA += blockSize {
					if cmp(a[findA], a[minA]) < 0 {
						minA = findA
					}
				}
				blockSwap(a, blockA.Start, minA, blockSize)

				a[blockA.Start], a[indexA] = a[indexA], a[blockA.Start]
				indexA++

				switch {
				case lastA.Length() <= len(cache):
					mergeExternal(a, lastA, NewRange(lastA.End, bSplit), cmp, cache)
				case buffer2.Length() > 0:
					mergeInternal(a, lastA, NewRange(lastA.End, bSplit), cmp, buffer2)
				default:
					mergeInPlace(a, lastA, NewRange(lastA.End, bSplit), cmp, cache)
				}

				if buffer2.Length() > 0 || blockSize <= len(cache) {
					if blockSize <= len(cache) {
						copy(cache[:blockSize], a[blockA.Start:blockA.Start+blockSize])
					} else {
						blockSwap(a, blockA.Start, buffer2.Start, blockSize)
					}
					blockSwap(a, bSplit, blockA.Start+blockSize-bRemaining, bRemaining)
				} else {
					rotate(a, blockA.Start-bSplit, NewRange(bSplit, blockA.Start+blockSize), cache)
				}

				lastA = NewRange(blockA.Start-bRemaining, blockA.Start-bRemaining+blockSize)
				lastB = NewRange(lastA.End, lastA.End+bRemaining)

				blockA.Start += blockSize
				if blockA.Length() == 0 {
					break
				}
			} else if blockB.Length() < blockSize {
				rotate(a, blockB.Start-blockA.Start, NewRange(blockA.Start, blockB.End), nil)

				lastB = NewRange(blockA.Start, blockA.Start+blockB.Length())
				blockA.Start += blockB.Length()
				blockA.End += blockB.Length()
				blockB.End = blockB.Start
			} else {
				blockSwap(a, blockA.Start, blockB.Start, blockSize)
				lastB = NewRange(blockA.Start, blockA.Start+blockSize)

				blockA.Start += blockSize
				blockA.End += blockSize
				blockB.Start += blockSize

				if blockB.End > B.End-blockSize {
					blockB.End = B.End
				} else {
					blockB.End += blockSize
				}
			}
		}
	}

	switch {
	case lastA.Length() <= len(cache):
		mergeExternal(a, lastA, NewRange(lastA.End, B.End), cmp, cache)
	case buffer2.Length() > 0:
		mergeInternal(a, lastA, NewRange(lastA.End, B.End), cmp, buffer2)
	default:
		mergeInPlace(a, lastA, NewRange(lastA.End, B.End), cmp, cache)
	}
}

// redistributeBuffers puts the two internal buffers' values back into the
// merged subarray they were pulled from, by running the pull process in
// reverse: find where each value belongs in sorted order and rotate it there
// one run at a time.
func redistributeBuffers[T any](a []T, plan *bufferPlan, cmp Compare[T], cache []T) {
	for pi := 0; pi < 2; pi++ {
		unique := plan.pulls[pi].count * 2

		switch {
		case plan.pulls[pi].from > plan.pulls[pi].to:
			buf := NewRange(plan.pulls[pi].rng.Start, plan.pulls[pi].rng.Start+plan.pulls[pi].count)
			for buf.Length() > 0 {
				index := findFirstForward(a, a[buf.Start], NewRange(buf.End, plan.pulls[pi].rng.End), cmp, unique)
				amount := index - buf.End
				rotate(a, buf.Length(), NewRange(buf.Start, index), cache)
				buf.Start += amount + 1
				buf.End += amount
				unique -= 2
			}
		case plan.pulls[pi].from < plan.pulls[pi].to:
			buf := NewRange(plan.pulls[pi].rng.End-plan.pulls[pi].count, plan.pulls[pi].rng.End)
			for buf.Length() > 0 {
				index := findLastBackward(a, a[buf.End-1], NewRange(plan.pulls[pi].rng.Start, buf.Start), cmp, unique)
				amount := buf.Start - index
				rotate(a, amount, NewRange(index, buf.End), cache)
				buf.Start -= amount
				buf.End -= amount + 1
				unique -= 2
			}
		}
	}
}
