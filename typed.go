package dlist

// List is a typed intrusive list of T records.
//
// T must be a struct type with a Node field, declared directly or
// inside an embedded struct; the first operation on a List panics
// otherwise. Records are allocated and freed by the caller, the list
// only threads their embedded nodes. The zero value is a ready to
// use empty list.
type List[T any] struct {
	nodes    NodeList
	off      uintptr
	resolved bool
}

// Init resets l to an empty list. A destroyed list must be
// reinitialized before it can be used again.
func (l *List[T]) Init() {
	l.nodes.Init()
	l.off = nodeOffset[T]()
	l.resolved = true
}

// Destroy marks l as unusable. The caller must drain the list first:
// Destroy panics if any record is still linked.
func (l *List[T]) Destroy() {
	l.nodes.Destroy()
}

// Empty returns whether the list has no records.
func (l *List[T]) Empty() bool {
	return l.nodes.Empty()
}

// Len returns the number of records in the list.
//
// This is an O(n) operation.
func (l *List[T]) Len() int {
	return l.nodes.Len()
}

// Head returns the first record of the list or nil.
func (l *List[T]) Head() *T {
	return containerOf[T](l.nodes.Head(), l.offset())
}

// Tail returns the last record of the list or nil.
func (l *List[T]) Tail() *T {
	return containerOf[T](l.nodes.Tail(), l.offset())
}

// Enqueue inserts v at the head of the list.
//
// v must not be a member of any list.
func (l *List[T]) Enqueue(v *T) {
	l.nodes.Enqueue(nodeOf(v, l.offset()))
}

// PushBack inserts v at the tail of the list.
//
// v must not be a member of any list.
func (l *List[T]) PushBack(v *T) {
	l.nodes.PushBack(nodeOf(v, l.offset()))
}

// Push inserts v at the head of the list. It is Enqueue under the
// name stack users expect: Push followed by Pop is LIFO.
func (l *List[T]) Push(v *T) {
	l.Enqueue(v)
}

// Pop removes and returns the head record, or nil if the list is
// empty.
func (l *List[T]) Pop() *T {
	return containerOf[T](l.nodes.Pop(), l.offset())
}

// Dequeue removes and returns the tail record, or nil if the list is
// empty. Enqueue followed by Dequeue is FIFO.
func (l *List[T]) Dequeue() *T {
	return containerOf[T](l.nodes.Dequeue(), l.offset())
}

// Remove unlinks v from the list. v must be a member of l.
func (l *List[T]) Remove(v *T) {
	l.nodes.Remove(nodeOf(v, l.offset()))
}

// InsertAfter inserts v after mark. mark must be a member of l.
func (l *List[T]) InsertAfter(mark, v *T) {
	off := l.offset()
	l.nodes.InsertAfter(nodeOf(mark, off), nodeOf(v, off))
}

// InsertBefore inserts v before mark. mark must be a member of l.
func (l *List[T]) InsertBefore(mark, v *T) {
	off := l.offset()
	l.nodes.InsertBefore(nodeOf(mark, off), nodeOf(v, off))
}

// PushBackList appends the records of m to the back of l, emptying m.
func (l *List[T]) PushBackList(m *List[T]) {
	l.nodes.PushBackList(&m.nodes)
}

// Check walks the list and verifies the doubly linked invariants,
// panicking on the first violation. It is O(n) and meant for tests
// and debug paths, not production hot paths.
func (l *List[T]) Check() {
	l.nodes.Check()
}

func (l *List[T]) offset() uintptr {
	if !l.resolved {
		l.off = nodeOffset[T]()
		l.resolved = true
	}
	return l.off
}
