package main

import (
	"fmt"

	"github.com/mgnsk/dlist"
)

type task struct {
	id   int
	node dlist.Node
}

func printList(l *dlist.List[task]) {
	fmt.Print("forward  = [")
	for t := range l.All() {
		fmt.Printf(" %d", t.id)
	}
	fmt.Println(" ]")

	fmt.Print("backward = [")
	for t := range l.Backward() {
		fmt.Printf(" %d", t.id)
	}
	fmt.Println(" ]")
}

func main() {
	var tasks dlist.List[task]
	tasks.Init()

	for i := 0; i < 20; i++ {
		tasks.Enqueue(&task{id: i})
	}
	tasks.Check()
	printList(&tasks)

	fmt.Println("head:", tasks.Head().id)
	fmt.Println("pop:", tasks.Pop().id)
	fmt.Println("tail:", tasks.Tail().id)
	fmt.Println("dequeue:", tasks.Dequeue().id)

	for i := 20; i < 40; i++ {
		tasks.PushBack(&task{id: i})
	}
	tasks.Check()

	fmt.Println("pop:", tasks.Pop().id)
	fmt.Println("dequeue:", tasks.Dequeue().id)

	// Find task 5 and unlink it.
	five := dlist.FoldForward(&tasks, (*task)(nil), func(t *task, found *task) (*task, bool) {
		if t.id == 5 {
			return t, true
		}
		return found, false
	})
	tasks.Remove(five)
	tasks.Check()
	printList(&tasks)

	sum := dlist.FoldForward(&tasks, 0, func(t *task, acc int) (int, bool) {
		return acc + t.id, false
	})
	fmt.Println("sum of remaining ids:", sum)

	for tasks.Pop() != nil {
	}
	tasks.Destroy()
}
