// This file was automatically generated by genny.
// Any changes will be lost if this file is regenerated.
// see https://github.com/cheekybits/genny

package intwikisort

import (
	"math"
)

// IntCompare is the three-way comparator IntSort uses: negative
// if a orders before b, zero if equivalent, positive if a orders after b.
type IntCompare func(a, b int) int

// IntRange represents a half-open interval [Start, End) of indices.
type IntRange struct {
	Start, End int
}

func valueTypeNewRange(start, end int) IntRange {
	return IntRange{Start: start, End: end}
}

func (r IntRange) length() int {
	return r.End - r.Start
}

func valueTypeReverseRange(a []int, r IntRange) {
	for index := r.length() / 2; index > 0; index-- {
		a[r.Start+index-1], a[r.End-index] = a[r.End-index], a[r.Start+index-1]
	}
}

func valueTypeBlockSwap(a []int, start1, start2, blockSize int) {
	for index := 0; index < blockSize; index++ {
		a[start1+index], a[start2+index] = a[start2+index], a[start1+index]
	}
}

func valueTypeRotate(a []int, amount int, r IntRange, cache []int) {
	if r.length() == 0 {
		return
	}

	split := r.Start + amount
	range1 := valueTypeNewRange(r.Start, split)
	range2 := valueTypeNewRange(split, r.End)

	if range1.length() <= range2.length() {
		if range1.length() <= len(cache) {
			staged := cache[:range1.length()]
			copy(staged, a[range1.Start:range1.End])
			copy(a[range1.Start:range1.Start+range2.length()], a[range2.Start:range2.End])
			copy(a[range1.Start+range2.length():range1.Start+range2.length()+range1.length()], staged)
			return
		}
	} else {
		if range2.length() <= len(cache) {
			staged := cache[:range2.length()]
			copy(staged, a[range2.Start:range2.End])
			copy(a[range2.End-range1.length():range2.End], a[range1.Start:range1.End])
			copy(a[range1.Start:range1.Start+range2.length()], staged)
			return
		}
	}

	valueTypeReverseRange(a, range1)
	valueTypeReverseRange(a, range2)
	valueTypeReverseRange(a, r)
}

func valueTypeFloorPowerOfTwo(value int) int {
	x := value
	x |= x >> 1
	x |= x >> 2
	x |= x >> 4
	x |= x >> 8
	x |= x >> 16
	x |= x >> 32
	return x - (x >> 1)
}

func valueTypeMaxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func valueTypeMinInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func valueTypeIsqrt(n int) int {
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

func valueTypeBinaryFirst(a []int, value int, r IntRange, cmp IntCompare) int {
	if r.Start >= r.End {
		return r.Start
	}
	start, end := r.Start, r.End-1
	for start < end {
		mid := start + (end-start)/2
		if cmp(a[mid], value) < 0 {
			start = mid + 1
		} else {
			end = mid
		}
	}
	if start == r.End-1 && cmp(a[start], value) < 0 {
		start++
	}
	return start
}

func valueTypeBinaryLast(a []int, value int, r IntRange, cmp IntCompare) int {
	if r.Start >= r.End {
		return r.End
	}
	start, end := r.Start, r.End-1
	for start < end {
		mid := start + (end-start)/2
		if cmp(value, a[mid]) >= 0 {
			start = mid + 1
		} else {
			end = mid
		}
	}
	if start == r.End-1 && cmp(value, a[start]) >= 0 {
		start++
	}
	return start
}

func valueTypeFindFirstForward(a []int, value int, r IntRange, cmp IntCompare, unique int) int {
	if r.length() == 0 {
		return r.Start
	}
	skip := valueTypeMaxInt(r.length()/unique, 1)
	index := r.Start + skip
	for cmp(a[index-1], value) < 0 {
		if index >= r.End-skip {
			return valueTypeBinaryFirst(a, value, valueTypeNewRange(index, r.End), cmp)
		}
		index += skip
	}
	return valueTypeBinaryFirst(a, value, valueTypeNewRange(index-skip, index), cmp)
}

func valueTypeFindLastForward(a []int, value int, r IntRange, cmp IntCompare, unique int) int {
	if r.length() == 0 {
		return r.Start
	}
	skip := valueTypeMaxInt(r.length()/unique, 1)
	index := r.Start + skip
	for cmp(value, a[index-1]) >= 0 {
		if index >= r.End-skip {
			return valueTypeBinaryLast(a, value, valueTypeNewRange(index, r.End), cmp)
		}
		index += skip
	}
	return valueTypeBinaryLast(a, value, valueTypeNewRange(index-skip, index), cmp)
}

func valueTypeFindFirstBackward(a []int, value int, r IntRange, cmp IntCompare, unique int) int {
	if r.length() == 0 {
		return r.Start
	}
	skip := valueTypeMaxInt(r.length()/unique, 1)
	index := r.End - skip
	for index > r.Start && cmp(a[index-1], value) >= 0 {
		if index < r.Start+skip {
			return valueTypeBinaryFirst(a, value, valueTypeNewRange(r.Start, index), cmp)
		}
		index -= skip
	}
	return valueTypeBinaryFirst(a, value, valueTypeNewRange(index, index+skip), cmp)
}

func valueTypeFindLastBackward(a []int, value int, r IntRange, cmp IntCompare, unique int) int {
	if r.length() == 0 {
		return r.Start
	}
	skip := valueTypeMaxInt(r.length()/unique, 1)
	index := r.End - skip
	for index > r.Start && cmp(value, a[index-1]) < 0 {
		if index < r.Start+skip {
			return valueTypeBinaryLast(a, value, valueTypeNewRange(r.Start, index), cmp)
		}
		index -= skip
	}
	return valueTypeBinaryLast(a, value, valueTypeNewRange(index, index+skip), cmp)
}

func valueTypeInsertionSort(a []int, r IntRange, cmp IntCompare) {
	for i := r.Start + 1; i < r.End; i++ {
		for j := i; j > r.Start && cmp(a[j], a[j-1]) < 0; j-- {
			a[j], a[j-1] = a[j-1], a[j]
		}
	}
}

func valueTypeStableSwap(a []int, base, x, y int, order *[8]uint8, cmp IntCompare) {
	ax, ay := base+x, base+y
	if cmp(a[ay], a[ax]) < 0 || (order[x] > order[y] && cmp(a[ax], a[ay]) >= 0) {
		a[ax], a[ay] = a[ay], a[ax]
		order[x], order[y] = order[y], order[x]
	}
}

func valueTypeSortSmall(a []int, r IntRange, cmp IntCompare) {
	order := [8]uint8{0, 1, 2, 3, 4, 5, 6, 7}
	base := r.Start
	swap := func(x, y int) { valueTypeStableSwap(a, base, x, y, &order, cmp) }

	switch r.length() {
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
		valueTypeInsertionSort(a, r, cmp)
	}
}

func valueTypeSortTiny(a []int, cmp IntCompare) {
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

type valueTypeLevelIterator struct {
	size          int
	denominator   int
	decimalStep   int
	numeratorStep int
	decimal       int
	numerator     int
}

func valueTypeNewLevelIterator(size, minLevel int) *valueTypeLevelIterator {
	it := &valueTypeLevelIterator{size: size}
	powerOfTwo := valueTypeFloorPowerOfTwo(size)
	it.denominator = powerOfTwo / minLevel
	it.numeratorStep = size % it.denominator
	it.decimalStep = size / it.denominator
	it.begin()
	return it
}

func (it *valueTypeLevelIterator) begin() {
	it.numerator, it.decimal = 0, 0
}

func (it *valueTypeLevelIterator) nextRange() IntRange {
	start := it.decimal
	it.decimal += it.decimalStep
	it.numerator += it.numeratorStep
	if it.numerator >= it.denominator {
		it.numerator -= it.denominator
		it.decimal++
	}
	return valueTypeNewRange(start, it.decimal)
}

func (it *valueTypeLevelIterator) finished() bool {
	return it.decimal >= it.size
}

func (it *valueTypeLevelIterator) nextLevel() bool {
	it.decimalStep += it.decimalStep
	it.numeratorStep += it.numeratorStep
	if it.numeratorStep >= it.denominator {
		it.numeratorStep -= it.denominator
		it.decimalStep++
	}
	return it.decimalStep < it.size
}

func (it *valueTypeLevelIterator) length() int {
	return it.decimalStep
}

func valueTypeMergeInto(from []int, A, B IntRange, cmp IntCompare, dst []int) {
	ai, bi, insert := A.Start, B.Start, 0
	for {
		if cmp(from[bi], from[ai]) >= 0 {
			dst[insert] = from[ai]
			ai++
			insert++
			if ai == A.End {
				insert += copy(dst[insert:], from[bi:B.End])
				return
			}
		} else {
			dst[insert] = from[bi]
			bi++
			insert++
			if bi == B.End {
				copy(dst[insert:], from[ai:A.End])
				return
			}
		}
	}
}

func valueTypeMergeExternal(a []int, A, B IntRange, cmp IntCompare, cache []int) {
	ai, bi, insert := 0, B.Start, A.Start
	aLen := A.length()

	if B.length() > 0 && A.length() > 0 {
		for {
			if cmp(a[bi], cache[ai]) >= 0 {
				a[insert] = cache[ai]
				ai++
				insert++
				if ai == aLen {
					break
				}
			} else {
				a[insert] = a[bi]
				bi++
				insert++
				if bi == B.End {
					break
				}
			}
		}
	}
	copy(a[insert:], cache[ai:aLen])
}

func valueTypeMergeInternal(a []int, A, B IntRange, cmp IntCompare, buf IntRange) {
	aCount, bCount, insert := 0, 0, 0
	if B.length() > 0 && A.length() > 0 {
		for {
			if cmp(a[B.Start+bCount], a[buf.Start+aCount]) >= 0 {
				a[A.Start+insert], a[buf.Start+aCount] = a[buf.Start+aCount], a[A.Start+insert]
				aCount++
				insert++
				if aCount >= A.length() {
					break
				}
			} else {
				a[A.Start+insert], a[B.Start+bCount] = a[B.Start+bCount], a[A.Start+insert]
				bCount++
				insert++
				if bCount >= B.length() {
					break
				}
			}
		}
	}
	valueTypeBlockSwap(a, buf.Start+aCount, A.Start+insert, A.length()-aCount)
}

func valueTypeMergeInPlace(a []int, A, B IntRange, cmp IntCompare, cache []int) {
	if A.length() == 0 || B.length() == 0 {
		return
	}
	for {
		mid := valueTypeBinaryFirst(a, a[A.Start], B, cmp)
		amount := mid - A.End
		valueTypeRotate(a, A.length(), valueTypeNewRange(A.Start, mid), cache)
		if B.End == mid {
			return
		}
		B.Start = mid
		A = valueTypeNewRange(A.Start+amount, B.Start)
		A.Start = valueTypeBinaryLast(a, a[A.Start], A, cmp)
		if A.length() == 0 {
			return
		}
	}
}

type valueTypePullRecord struct {
	from, to, count int
	rng             IntRange
}

type valueTypeBufferPlan struct {
	pulls      [2]valueTypePullRecord
	buffer1    IntRange
	buffer2    IntRange
	blockSize  int
	bufferSize int
}

func valueTypePreparePull(a []int, it *valueTypeLevelIterator, cmp IntCompare, cache []int) valueTypeBufferPlan {
	blockSize := valueTypeIsqrt(it.length())
	bufferSize := it.length()/blockSize + 1

	var plan valueTypeBufferPlan
	plan.pulls[0].rng = valueTypeNewRange(0, 0)
	plan.pulls[1].rng = valueTypeNewRange(0, 0)

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

		last, count := A.Start, 1
		var index int
		for count < find {
			index = valueTypeFindLastForward(a, a[last], valueTypeNewRange(last+1, A.End), cmp, find-count)
			if index == A.End {
				break
			}
			last, count = index, count+1
		}
		index = last

		if count >= bufferSize {
			plan.pulls[pullIndex] = valueTypePullRecord{from: index, to: A.Start, count: count, rng: valueTypeNewRange(A.Start, B.End)}
			pullIndex = 1

			switch {
			case count == bufferSize+bufferSize:
				plan.buffer1 = valueTypeNewRange(A.Start, A.Start+bufferSize)
				plan.buffer2 = valueTypeNewRange(A.Start+bufferSize, A.Start+count)
				break outer
			case find == bufferSize+bufferSize:
				plan.buffer1 = valueTypeNewRange(A.Start, A.Start+count)
				find = bufferSize
			case blockSize <= len(cache):
				plan.buffer1 = valueTypeNewRange(A.Start, A.Start+count)
				break outer
			case findSeparately:
				plan.buffer1 = valueTypeNewRange(A.Start, A.Start+count)
				findSeparately = false
			default:
				plan.buffer2 = valueTypeNewRange(A.Start, A.Start+count)
				break outer
			}
		} else if pullIndex == 0 && count > plan.buffer1.length() {
			plan.buffer1 = valueTypeNewRange(A.Start, A.Start+count)
			plan.pulls[pullIndex] = valueTypePullRecord{from: index, to: A.Start, count: count, rng: valueTypeNewRange(A.Start, B.End)}
		}

		last, count = B.End-1, 1
		for count < find {
			index = valueTypeFindFirstBackward(a, a[last], valueTypeNewRange(B.Start, last), cmp, find-count)
			if index == B.Start {
				break
			}
			last, count = index-1, count+1
		}
		index = last

		if count >= bufferSize {
			plan.pulls[pullIndex] = valueTypePullRecord{from: index, to: B.End, count: count, rng: valueTypeNewRange(A.Start, B.End)}
			pullIndex = 1

			switch {
			case count == bufferSize+bufferSize:
				plan.buffer1 = valueTypeNewRange(B.End-count, B.End-bufferSize)
				plan.buffer2 = valueTypeNewRange(B.End-bufferSize, B.End)
				break outer
			case find == bufferSize+bufferSize:
				plan.buffer1 = valueTypeNewRange(B.End-count, B.End)
				find = bufferSize
			case blockSize <= len(cache):
				plan.buffer1 = valueTypeNewRange(B.End-count, B.End)
				break outer
			case findSeparately:
				plan.buffer1 = valueTypeNewRange(B.End-count, B.End)
				findSeparately = false
			default:
				if plan.pulls[0].rng.Start == A.Start {
					plan.pulls[0].rng.End -= plan.pulls[1].count
				}
				plan.buffer2 = valueTypeNewRange(B.End-count, B.End)
				break outer
			}
		} else if pullIndex == 0 && count > plan.buffer1.length() {
			plan.buffer1 = valueTypeNewRange(B.End-count, B.End)
			plan.pulls[pullIndex] = valueTypePullRecord{from: index, to: B.End, count: count, rng: valueTypeNewRange(A.Start, B.End)}
		}
	}

	for pi := 0; pi < 2; pi++ {
		length := plan.pulls[pi].count

		switch {
		case plan.pulls[pi].to < plan.pulls[pi].from:
			index := plan.pulls[pi].from
			for count := 1; count < length; count++ {
				index = valueTypeFindFirstBackward(a, a[index-1], valueTypeNewRange(plan.pulls[pi].to, plan.pulls[pi].from-(count-1)), cmp, length-count)
				r := valueTypeNewRange(index+1, plan.pulls[pi].from+1)
				valueTypeRotate(a, r.length()-count, r, cache)
				plan.pulls[pi].from = index + count
			}
		case plan.pulls[pi].to > plan.pulls[pi].from:
			index := plan.pulls[pi].from + 1
			for count := 1; count < length; count++ {
				index = valueTypeFindLastForward(a, a[index], valueTypeNewRange(index, plan.pulls[pi].to), cmp, length-count)
				r := valueTypeNewRange(plan.pulls[pi].from, index-1)
				valueTypeRotate(a, count, r, cache)
				plan.pulls[pi].from = index - 1 - count
			}
		}
	}

	plan.bufferSize = plan.buffer1.length()
	if plan.bufferSize > 0 {
		plan.blockSize = it.length()/plan.bufferSize + 1
	} else {
		plan.blockSize = blockSize
	}

	return plan
}

func valueTypeTrimPulledRange(plan *valueTypeBufferPlan, A, B IntRange) (IntRange, IntRange, bool) {
	start := A.Start
	for i := 0; i < 2; i++ {
		if start != plan.pulls[i].rng.Start {
			continue
		}
		switch {
		case plan.pulls[i].from > plan.pulls[i].to:
			A.Start += plan.pulls[i].count
			if A.length() == 0 {
				return A, B, false
			}
		case plan.pulls[i].from < plan.pulls[i].to:
			B.End -= plan.pulls[i].count
			if B.length() == 0 {
				return A, B, false
			}
		}
	}
	return A, B, true
}

func valueTypeMergeBlocks(a []int, A, B IntRange, cmp IntCompare, cache []int, buffer1, buffer2 IntRange, blockSize int) {
	blockA := valueTypeNewRange(A.Start, A.End)
	firstA := valueTypeNewRange(A.Start, A.Start+blockA.length()%blockSize)

	indexA := buffer1.Start
	for index := firstA.End; index < blockA.End; index += blockSize {
		a[indexA], a[index] = a[index], a[indexA]
		indexA++
	}

	lastA := firstA
	lastB := valueTypeNewRange(0, 0)
	blockB := valueTypeNewRange(B.Start, B.Start+valueTypeMinInt(blockSize, B.length()))
	blockA.Start += firstA.length()
	indexA = buffer1.Start

	if lastA.length() <= len(cache) {
		copy(cache[:lastA.length()], a[lastA.Start:lastA.End])
	} else if buffer2.length() > 0 {
		valueTypeBlockSwap(a, lastA.Start, buffer2.Start, lastA.length())
	}

	if blockA.length() > 0 {
		for {
			if (lastB.length() > 0 && cmp(a[lastB.End-1], a[indexA]) >= 0) || blockB.length() == 0 {
				bSplit := valueTypeBinaryFirst(a, a[indexA], lastB, cmp)
				bRemaining := lastB.End - bSplit

				minA := blockA.Start
				for findA := minA + blockSize; findA < blockA.End; findA += blockSize {
					if cmp(a[findA], a[minA]) < 0 {
						minA = findA
					}
				}
				valueTypeBlockSwap(a, blockA.Start, minA, blockSize)

				a[blockA.Start], a[indexA] = a[indexA], a[blockA.Start]
				indexA++

				switch {
				case lastA.length() <= len(cache):
					valueTypeMergeExternal(a, lastA, valueTypeNewRange(lastA.End, bSplit), cmp, cache)
				case buffer2.length() > 0:
					valueTypeMergeInternal(a, lastA, valueTypeNewRange(lastA.End, bSplit), cmp, buffer2)
				default:
					valueTypeMergeInPlace(a, lastA, valueTypeNewRange(lastA.End, bSplit), cmp, cache)
				}

				if buffer2.length() > 0 || blockSize <= len(cache) {
					if blockSize <= len(cache) {
						copy(cache[:blockSize], a[blockA.Start:blockA.Start+blockSize])
					} else {
						valueTypeBlockSwap(a, blockA.Start, buffer2.Start, blockSize)
					}
					valueTypeBlockSwap(a, bSplit, blockA.Start+blockSize-bRemaining, bRemaining)
				} else {
					valueTypeRotate(a, blockA.Start-bSplit, valueTypeNewRange(bSplit, blockA.Start+blockSize), cache)
				}

				lastA = valueTypeNewRange(blockA.Start-bRemaining, blockA.Start-bRemaining+blockSize)
				lastB = valueTypeNewRange(lastA.End, lastA.End+bRemaining)

				blockA.Start += blockSize
				if blockA.length() == 0 {
					break
				}
			} else if blockB.length() < blockSize {
				valueTypeRotate(a, blockB.Start-blockA.Start, valueTypeNewRange(blockA.Start, blockB.End), nil)

				lastB = valueTypeNewRange(blockA.Start, blockA.Start+blockB.length())
				blockA.Start += blockB.length()
				blockA.End += blockB.length()
				blockB.End = blockB.Start
			} else {
				valueTypeBlockSwap(a, blockA.Start, blockB.Start, blockSize)
				lastB = valueTypeNewRange(blockA.Start, blockA.Start+blockSize)

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
	case lastA.length() <= len(cache):
		valueTypeMergeExternal(a, lastA, valueTypeNewRange(lastA.End, B.End), cmp, cache)
	case buffer2.length() > 0:
		valueTypeMergeInternal(a, lastA, valueTypeNewRange(lastA.End, B.End), cmp, buffer2)
	default:
		valueTypeMergeInPlace(a, lastA, valueTypeNewRange(lastA.End, B.End), cmp, cache)
	}
}

func valueTypeRedistributeBuffers(a []int, plan *valueTypeBufferPlan, cmp IntCompare, cache []int) {
	for pi := 0; pi < 2; pi++ {
		unique := plan.pulls[pi].count * 2

		switch {
		case plan.pulls[pi].from > plan.pulls[pi].to:
			buf := valueTypeNewRange(plan.pulls[pi].rng.Start, plan.pulls[pi].rng.Start+plan.pulls[pi].count)
			for buf.length() > 0 {
				index := valueTypeFindFirstForward(a, a[buf.Start], valueTypeNewRange(buf.End, plan.pulls[pi].rng.End), cmp, unique)
				amount := index - buf.End
				valueTypeRotate(a, buf.length(), valueTypeNewRange(buf.Start, index), cache)
				buf.Start += amount + 1
				buf.End += amount
				unique -= 2
			}
		case plan.pulls[pi].from < plan.pulls[pi].to:
			buf := valueTypeNewRange(plan.pulls[pi].rng.End-plan.pulls[pi].count, plan.pulls[pi].rng.End)
			for buf.length() > 0 {
				index := valueTypeFindLastBackward(a, a[buf.End-1], valueTypeNewRange(plan.pulls[pi].rng.Start, buf.Start), cmp, unique)
				amount := buf.Start - index
				valueTypeRotate(a, amount, valueTypeNewRange(index, buf.End), cache)
				buf.Start -= amount
				buf.End -= amount + 1
				unique -= 2
			}
		}
	}
}

func valueTypeNewDynamicCache(n int) []int {
	if n < 8 {
		return nil
	}
	return make([]int, (n+1)/2)
}

// IntSort sorts a in place using cmp.
func IntSort(a []int, cmp IntCompare) {
	valueTypeSortWithCache(a, cmp, valueTypeNewDynamicCache(len(a)))
}

// IntSortWithCacheSize sorts a in place using cmp with an explicitly
// sized cache, bypassing the automatic policy.
func IntSortWithCacheSize(a []int, cmp IntCompare, cacheSize int) {
	valueTypeSortWithCache(a, cmp, make([]int, cacheSize))
}

func valueTypeSortWithCache(a []int, cmp IntCompare, cache []int) {
	n := len(a)
	if n < 4 {
		valueTypeSortTiny(a, cmp)
		return
	}

	it := valueTypeNewLevelIterator(n, 4)
	for !it.finished() {
		valueTypeSortSmall(a, it.nextRange(), cmp)
	}
	if n < 8 {
		return
	}

	for {
		if it.length() < len(cache) {
			if (it.length()+1)*4 <= len(cache) && it.length()*4 <= n {
				valueTypeMergeFourWithCache(a, it, cmp, cache)
				it.nextLevel()
			} else {
				valueTypeMergeTwoWithCache(a, it, cmp, cache)
			}
		} else {
			valueTypeMergeLevelInPlace(a, it, cmp, cache)
		}

		if !it.nextLevel() {
			break
		}
	}
}

func valueTypeMergeTwoWithCache(a []int, it *valueTypeLevelIterator, cmp IntCompare, cache []int) {
	it.begin()
	for !it.finished() {
		A := it.nextRange()
		B := it.nextRange()

		if cmp(a[B.End-1], a[A.Start]) < 0 {
			valueTypeRotate(a, A.length(), valueTypeNewRange(A.Start, B.End), cache)
		} else if cmp(a[B.Start], a[A.End-1]) < 0 {
			copy(cache[:A.length()], a[A.Start:A.End])
			valueTypeMergeExternal(a, A, B, cmp, cache)
		}
	}
}

func valueTypeMergeFourWithCache(a []int, it *valueTypeLevelIterator, cmp IntCompare, cache []int) {
	it.begin()
	for !it.finished() {
		A1 := it.nextRange()
		B1 := it.nextRange()
		A2 := it.nextRange()
		B2 := it.nextRange()

		switch {
		case cmp(a[B1.End-1], a[A1.Start]) < 0:
			copy(cache[B1.length():B1.length()+A1.length()], a[A1.Start:A1.End])
			copy(cache[0:B1.length()], a[B1.Start:B1.End])
		case cmp(a[B1.Start], a[A1.End-1]) < 0:
			valueTypeMergeInto(a, A1, B1, cmp, cache)
		default:
			if cmp(a[B2.Start], a[A2.End-1]) >= 0 && cmp(a[A2.Start], a[B1.End-1]) >= 0 {
				continue
			}
			copy(cache[0:A1.length()], a[A1.Start:A1.End])
			copy(cache[A1.length():A1.length()+B1.length()], a[B1.Start:B1.End])
		}
		A1 = valueTypeNewRange(A1.Start, B1.End)

		switch {
		case cmp(a[B2.End-1], a[A2.Start]) < 0:
			copy(cache[A1.length()+B2.length():A1.length()+B2.length()+A2.length()], a[A2.Start:A2.End])
			copy(cache[A1.length():A1.length()+B2.length()], a[B2.Start:B2.End])
		case cmp(a[B2.Start], a[A2.End-1]) < 0:
			valueTypeMergeInto(a, A2, B2, cmp, cache[A1.length():])
		default:
			copy(cache[A1.length():A1.length()+A2.length()], a[A2.Start:A2.End])
			copy(cache[A1.length()+A2.length():A1.length()+A2.length()+B2.length()], a[B2.Start:B2.End])
		}
		A2 = valueTypeNewRange(A2.Start, B2.End)

		A3 := valueTypeNewRange(0, A1.length())
		B3 := valueTypeNewRange(A1.length(), A1.length()+A2.length())

		switch {
		case cmp(cache[B3.End-1], cache[A3.Start]) < 0:
			copy(a[A1.Start+A2.length():A1.Start+A2.length()+A3.length()], cache[A3.Start:A3.End])
			copy(a[A1.Start:A1.Start+B3.length()], cache[B3.Start:B3.End])
		case cmp(cache[B3.Start], cache[A3.End-1]) < 0:
			valueTypeMergeInto(cache, A3, B3, cmp, a[A1.Start:])
		default:
			copy(a[A1.Start:A1.Start+A3.length()], cache[A3.Start:A3.End])
			copy(a[A1.Start+A1.length():A1.Start+A1.length()+B3.length()], cache[B3.Start:B3.End])
		}
	}
}

func valueTypeMergeLevelInPlace(a []int, it *valueTypeLevelIterator, cmp IntCompare, cache []int) {
	plan := valueTypePreparePull(a, it, cmp, cache)

	it.begin()
	for !it.finished() {
		A := it.nextRange()
		B := it.nextRange()

		trimmedA, trimmedB, ok := valueTypeTrimPulledRange(&plan, A, B)
		if !ok {
			continue
		}
		A, B = trimmedA, trimmedB

		if cmp(a[B.End-1], a[A.Start]) < 0 {
			valueTypeRotate(a, A.length(), valueTypeNewRange(A.Start, B.End), cache)
		} else if cmp(a[A.End], a[A.End-1]) < 0 {
			valueTypeMergeBlocks(a, A, B, cmp, cache, plan.buffer1, plan.buffer2, plan.blockSize)
		}
	}

	valueTypeInsertionSort(a, plan.buffer2, cmp)
	valueTypeRedistributeBuffers(a, &plan, cmp, cache)
}
