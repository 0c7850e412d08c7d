package dlist

import "iter"

// FoldForward visits every record of l in head to tail order,
// threading an accumulator through f. f returns the next accumulator
// and a stop flag; when the flag is set, traversal ends immediately
// and that accumulator is the result.
// f must not change l.
func FoldForward[T, A any](l *List[T], acc A, f func(v *T, acc A) (A, bool)) A {
	off := l.offset()
	for n := l.nodes.Head(); n != nil; n = n.next {
		var stop bool
		if acc, stop = f(containerOf[T](n, off), acc); stop {
			break
		}
	}
	return acc
}

// FoldBackward visits every record of l in tail to head order,
// threading an accumulator through f exactly like FoldForward.
// f must not change l.
func FoldBackward[T, A any](l *List[T], acc A, f func(v *T, acc A) (A, bool)) A {
	off := l.offset()
	for n := l.nodes.Tail(); n != nil; n = n.prev {
		var stop bool
		if acc, stop = f(containerOf[T](n, off), acc); stop {
			break
		}
	}
	return acc
}

// All returns an iterator over the records of l in head to tail
// order. The list must not be changed during iteration.
func (l *List[T]) All() iter.Seq[*T] {
	return func(yield func(*T) bool) {
		off := l.offset()
		for n := l.nodes.Head(); n != nil; n = n.next {
			if !yield(containerOf[T](n, off)) {
				return
			}
		}
	}
}

// Backward returns an iterator over the records of l in tail to head
// order. The list must not be changed during iteration.
func (l *List[T]) Backward() iter.Seq[*T] {
	return func(yield func(*T) bool) {
		off := l.offset()
		for n := l.nodes.Tail(); n != nil; n = n.prev {
			if !yield(containerOf[T](n, off)) {
				return
			}
		}
	}
}
