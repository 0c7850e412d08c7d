/*
Package dlist implements an intrusive doubly linked list.

The link pointers live inside the caller's own records: a record type
embeds a Node field and can then be threaded into a List of that type.
No operation allocates, so worst-case latency of the O(1) operations
is independent of heap behavior.

	type Task struct {
		ID   int
		node dlist.Node
	}

	var tasks dlist.List[Task]
	tasks.Init()
	tasks.Enqueue(&Task{ID: 1})

The package is not safe for concurrent use. A list shared between
goroutines must be guarded externally.
*/
package dlist
