package dlist

// Node is the link field of an intrusive list.
//
// Embed a Node in a record type to make it linkable. A node belongs
// to at most one list at a time; the caller must not insert a record
// that is already a member of a list.
type Node struct {
	next, prev *Node
}

// Next returns the next node or nil if n is the last node in its list.
func (n *Node) Next() *Node {
	return n.next
}

// Prev returns the previous node or nil if n is the first node in its list.
func (n *Node) Prev() *Node {
	return n.prev
}
