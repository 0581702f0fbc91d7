package sequence

// slice yields the elements of a slice in order.
type slice[T any] struct {
	values []T
	pos    int
}

var _ BoundedSequence[int] = &slice[int]{}

// FromSlice returns a bounded sequence over the elements of values.
// The slice is not copied; the caller must not mutate it while draining.
func FromSlice[T any](values []T) BoundedSequence[T] {
	return &slice[T]{values: values}
}

func (s *slice[T]) Next() (T, bool) {
	if s.pos >= len(s.values) {
		var zero T
		return zero, false
	}
	v := s.values[s.pos]
	s.pos++
	return v, true
}

func (s *slice[T]) Len() int {
	return len(s.values) - s.pos
}

// span yields the integers in [next, end).
type span struct {
	next int
	end  int
}

var _ BoundedSequence[int] = &span{}

// Range returns a bounded sequence over the integers in [start, end).
// It is empty when end <= start.
func Range(start, end int) BoundedSequence[int] {
	if end < start {
		end = start
	}
	return &span{next: start, end: end}
}

func (s *span) Next() (int, bool) {
	if s.next >= s.end {
		return 0, false
	}
	v := s.next
	s.next++
	return v, true
}

func (s *span) Len() int {
	return s.end - s.next
}

// funcSeq adapts a pull function into a Sequence.
type funcSeq[T any] struct {
	fn func() (T, bool)
}

var _ Sequence[int] = &funcSeq[int]{}

// Func adapts fn into an unbounded sequence. fn must keep returning
// false once it has reported exhaustion.
func Func[T any](fn func() (T, bool)) Sequence[T] {
	return &funcSeq[T]{fn: fn}
}

func (f *funcSeq[T]) Next() (T, bool) {
	return f.fn()
}
