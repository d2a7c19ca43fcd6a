// Package wikisort provides a stable, comparison-based sort that runs in
// O(N log N) time using O(1) auxiliary space: a bottom-up merge sort whose
// merge step uses a small fixed-size cache when one is available, and
// otherwise falls back to pairwise-distinct values pulled out of the array
// itself to act as swap buffers for an in-place block merge.
//
// Sort is the normal entry point:
//
//	wikisort.Sort(records, func(a, b Record) int {
//		return a.Key - b.Key
//	})
//
// It picks a cache size automatically. SortWithCacheSize exposes that knob
// directly, mostly useful for confirming the result doesn't depend on it.
// SortStats runs the same sort while counting comparator calls.
//
// template/wikisort.go holds a genny template of the same algorithm for
// callers who want a monomorphic, non-generic copy instead of the
// generics-based API above:
//
//	genny -in=$GOPATH/src/github.com/shibukawa/wikisort/template/wikisort.go -out=intwikisort.go gen "ValueType=int"
//
// generated/intwikisort holds the output of running that command for int.
package wikisort