package sequence

// Sequence is a pull-based producer of values. Each call to Next returns
// the next value, or reports exhaustion, after which every further call
// must keep reporting exhaustion.
//
// Sequence is the capability required by the rate-limiting decorator.
// Implementations are driven by a single goroutine; none of the decorators
// in this library add locking, and none of them need it.
//
// Usage Example:
//
//	seq := sequence.Range(0, 10)
//	for v, ok := seq.Next(); ok; v, ok = seq.Next() {
//	    fmt.Println(v)
//	}
type Sequence[T any] interface {
	// Next returns the next value in the sequence. The second return
	// value is false once the sequence is exhausted; the first return
	// value is then the zero value of T and must be ignored.
	Next() (T, bool)
}

// BoundedSequence is a Sequence that knows exactly how many values remain.
// It is the capability required by the progress-bar decorator, which needs
// the remaining count to compute a percentage.
type BoundedSequence[T any] interface {
	Sequence[T]

	// Len reports the exact number of values remaining. It decreases by
	// one for every successful Next and is 0 once the sequence is
	// exhausted.
	Len() int
}
