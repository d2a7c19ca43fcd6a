package wikisort

// mergeInto merges ranges A and B of from, both already sorted, writing the
// result into dst. dst must have room for A.Length()+B.Length() items and
// must not alias from[A.Start:B.End].
func mergeInto[T any](from []T, A, B Range, cmp Compare[T], dst []T) {
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

// mergeExternal merges A and B in place using an external cache that
// already holds a copy of A (cache[0:A.Length()]). B is read directly from
// the array since it is not being overwritten until after it's consumed.
func mergeExternal[T any](a []T, A, B Range, cmp Compare[T], cache []T) {
	ai, bi, insert := 0, B.Start, A.Start
	aLen := A.Length()

	if B.Length() > 0 && A.Length() > 0 {
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

// mergeInternal merges A and B in place using a second internal buffer
// (buf) that must already hold a copy of the original contents of A.
// Whenever a value is written to its final spot, it is swapped with
// whatever already lived there, so buf ends up holding A's original
// contents in a different order once this returns.
func mergeInternal[T any](a []T, A, B Range, cmp Compare[T], buf Range) {
	aCount, bCount, insert := 0, 0, 0

	if B.Length() > 0 && A.Length() > 0 {
		for {
			if cmp(a[B.Start+bCount], a[buf.Start+aCount]) >= 0 {
				a[A.Start+insert], a[buf.Start+aCount] = a[buf.Start+aCount], a[A.Start+insert]
				aCount++
				insert++
				if aCount >= A.Length() {
					break
				}
			} else {
				a[A.Start+insert], a[B.Start+bCount] = a[B.Start+bCount], a[A.Start+insert]
				bCount++
				insert++
				if bCount >= B.Length() {
					break
				}
			}
		}
	}

	blockSwap(a, buf.Start+aCount, A.Start+insert, A.Length()-aCount)
}

// mergeInPlace merges A and B with no extra storage at all: it repeatedly
// finds where the first item of A belongs within B and rotates A into
// place. This is only ever reached when A does not fit in the cache and no
// second internal buffer could be assembled for this level, which bounds how often it can
// possibly run — the sizes involved are small enough that its quadratic
// worst case stays linear overall.
func mergeInPlace[T any](a []T, A, B Range, cmp Compare[T], cache []T) {
	if A.Length() == 0 || B.Length() == 0 {
		return
	}

	for {
		mid := binaryFirst(a, a[A.Start], B, cmp)

		amount := mid - A.End
		rotate(a, A.Length(), NewRange(A.Start, mid), cache)
		if B.End == mid {
			return
		}

		B.Start = mid
		A = NewRange(A.Start+amount, B.Start)
		A.Start = binaryLast(a, a[A.Start], A, cmp)
		if A.Length() == 0 {
			return
		}
	}
}
