package dlist

// poison marks a destroyed list header so that operations on the
// header panic instead of silently relinking through stale pointers.
var poison Node

// NodeList is the untyped list engine operating directly on nodes.
// It backs the typed List; most callers want that instead.
//
// The zero value is a ready to use empty list.
type NodeList struct {
	head, tail *Node
}

// Init resets l to an empty list. A destroyed list must be
// reinitialized before it can be used again.
func (l *NodeList) Init() {
	l.head = nil
	l.tail = nil
}

// Destroy marks l as unusable. The caller must drain the list first:
// Destroy panics if any node is still linked.
func (l *NodeList) Destroy() {
	l.checkLive()
	if l.head != nil || l.tail != nil {
		panic("dlist: destroy of non-empty list")
	}
	l.head = &poison
	l.tail = &poison
}

// Empty returns whether the list has no nodes.
func (l *NodeList) Empty() bool {
	l.checkLive()
	return l.head == nil
}

// Len returns the number of nodes in the list.
//
// This is an O(n) operation.
func (l *NodeList) Len() int {
	l.checkLive()
	count := 0
	for n := l.head; n != nil; n = n.next {
		count++
	}
	return count
}

// Head returns the first node of the list or nil.
func (l *NodeList) Head() *Node {
	l.checkLive()
	return l.head
}

// Tail returns the last node of the list or nil.
func (l *NodeList) Tail() *Node {
	l.checkLive()
	return l.tail
}

// Enqueue inserts n at the head of the list.
//
// n must not be a member of any list.
func (l *NodeList) Enqueue(n *Node) {
	l.checkLive()
	n.prev = nil
	n.next = l.head
	if l.head == nil {
		if l.tail != nil {
			panic("dlist: head and tail out of sync")
		}
		l.tail = n
	} else {
		if l.head.prev != nil {
			panic("dlist: head has a predecessor")
		}
		l.head.prev = n
	}
	l.head = n
}

// PushBack inserts n at the tail of the list.
//
// n must not be a member of any list.
func (l *NodeList) PushBack(n *Node) {
	l.checkLive()
	n.next = nil
	n.prev = l.tail
	if l.tail == nil {
		if l.head != nil {
			panic("dlist: head and tail out of sync")
		}
		l.head = n
	} else {
		if l.tail.next != nil {
			panic("dlist: tail has a successor")
		}
		l.tail.next = n
	}
	l.tail = n
}

// Push inserts n at the head of the list. It is Enqueue under the
// name stack users expect: Push followed by Pop is LIFO.
func (l *NodeList) Push(n *Node) {
	l.Enqueue(n)
}

// Pop removes and returns the head node, or nil if the list is empty.
func (l *NodeList) Pop() *Node {
	l.checkLive()
	n := l.head
	if n == nil {
		return nil
	}
	l.head = n.next
	if l.tail == n {
		l.tail = nil
	} else {
		l.head.prev = nil
	}
	n.next = nil
	n.prev = nil
	return n
}

// Dequeue removes and returns the tail node, or nil if the list is
// empty. Enqueue followed by Dequeue is FIFO.
func (l *NodeList) Dequeue() *Node {
	l.checkLive()
	n := l.tail
	if n == nil {
		return nil
	}
	l.tail = n.prev
	if l.head == n {
		l.head = nil
	} else {
		l.tail.next = nil
	}
	n.next = nil
	n.prev = nil
	return n
}

// Remove unlinks n from the list.
//
// n must be a member of l; membership of a different list is not
// detectable and corrupts both lists.
func (l *NodeList) Remove(n *Node) {
	l.checkLive()
	if n.prev != nil {
		n.prev.next = n.next
	} else {
		if l.head != n {
			panic("dlist: node is not the head of this list")
		}
		l.head = n.next
	}
	if n.next != nil {
		n.next.prev = n.prev
	} else {
		if l.tail != n {
			panic("dlist: node is not the tail of this list")
		}
		l.tail = n.prev
	}
	n.next = nil
	n.prev = nil
}

// InsertAfter inserts n after mark. mark must be a member of l.
func (l *NodeList) InsertAfter(mark, n *Node) {
	l.checkLive()
	next := mark.next
	n.prev = mark
	n.next = next
	mark.next = n
	if next != nil {
		next.prev = n
	} else {
		if l.tail != mark {
			panic("dlist: node is not the tail of this list")
		}
		l.tail = n
	}
}

// InsertBefore inserts n before mark. mark must be a member of l.
func (l *NodeList) InsertBefore(mark, n *Node) {
	l.checkLive()
	prev := mark.prev
	n.next = mark
	n.prev = prev
	mark.prev = n
	if prev != nil {
		prev.next = n
	} else {
		if l.head != mark {
			panic("dlist: node is not the head of this list")
		}
		l.head = n
	}
}

// PushBackList appends the nodes of m to the back of l, emptying m.
func (l *NodeList) PushBackList(m *NodeList) {
	l.checkLive()
	m.checkLive()
	if l.head == nil {
		l.head = m.head
		l.tail = m.tail
	} else if m.head != nil {
		l.tail.next = m.head
		m.head.prev = l.tail
		l.tail = m.tail
	}
	m.head = nil
	m.tail = nil
}

// Do calls function f on each node of the list, in forward order.
// If f returns false, Do stops the iteration.
// f must not change l.
func (l *NodeList) Do(f func(n *Node) bool) {
	l.checkLive()
	for n := l.head; n != nil; n = n.next {
		if !f(n) {
			return
		}
	}
}

// Check walks the list and verifies the doubly linked invariants,
// panicking on the first violation. It is O(n) and meant for tests
// and debug paths, not production hot paths.
func (l *NodeList) Check() {
	l.checkLive()
	if (l.head == nil) != (l.tail == nil) {
		panic("dlist: head and tail out of sync")
	}
	var last *Node
	for n := l.head; n != nil; n = n.next {
		if last == nil {
			if n.prev != nil {
				panic("dlist: head has a predecessor")
			}
		} else if last.next != n || n.prev != last {
			panic("dlist: broken link")
		}
		last = n
	}
	if last != l.tail {
		panic("dlist: forward walk does not end at tail")
	}
}

func (l *NodeList) checkLive() {
	if l.head == &poison || l.tail == &poison {
		panic("dlist: use of destroyed list")
	}
}
