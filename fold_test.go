package dlist_test

import (
	"testing"

	"github.com/mgnsk/dlist"
	. "github.com/onsi/gomega"
)

func newItemList(values ...int) *dlist.List[item] {
	var list dlist.List[item]
	list.Init()
	for _, v := range values {
		list.PushBack(&item{value: v})
	}
	return &list
}

func TestFoldDirections(t *testing.T) {
	g := NewWithT(t)

	list := newItemList(1, 2, 3, 4)

	forward := dlist.FoldForward(list, []int(nil), func(v *item, acc []int) ([]int, bool) {
		return append(acc, v.value), false
	})
	backward := dlist.FoldBackward(list, []int(nil), func(v *item, acc []int) ([]int, bool) {
		return append(acc, v.value), false
	})

	g.Expect(forward).To(Equal([]int{1, 2, 3, 4}))
	g.Expect(backward).To(Equal([]int{4, 3, 2, 1}))
}

func TestFoldAccumulator(t *testing.T) {
	g := NewWithT(t)

	list := newItemList(1, 2, 3, 4)

	sum := dlist.FoldForward(list, 0, func(v *item, acc int) (int, bool) {
		return acc + v.value, false
	})

	g.Expect(sum).To(Equal(10))
}

func TestFoldEarlyTermination(t *testing.T) {
	t.Run("forward", func(t *testing.T) {
		g := NewWithT(t)

		list := newItemList(1, 2, 3, 4)

		visits := 0
		result := dlist.FoldForward(list, 0, func(v *item, acc int) (int, bool) {
			visits++
			if v.value == 2 {
				return v.value, true
			}
			return acc, false
		})

		g.Expect(result).To(Equal(2))
		g.Expect(visits).To(Equal(2))
	})

	t.Run("backward", func(t *testing.T) {
		g := NewWithT(t)

		list := newItemList(1, 2, 3, 4)

		visits := 0
		result := dlist.FoldBackward(list, 0, func(v *item, acc int) (int, bool) {
			visits++
			if v.value == 3 {
				return v.value, true
			}
			return acc, false
		})

		g.Expect(result).To(Equal(3))
		g.Expect(visits).To(Equal(2))
	})
}

func TestFoldEmptyList(t *testing.T) {
	g := NewWithT(t)

	var list dlist.List[item]
	list.Init()

	result := dlist.FoldForward(&list, 42, func(v *item, acc int) (int, bool) {
		return 0, false
	})

	g.Expect(result).To(Equal(42))
}

func TestIterators(t *testing.T) {
	t.Run("forward order", func(t *testing.T) {
		g := NewWithT(t)

		list := newItemList(1, 2, 3)

		var values []int
		for v := range list.All() {
			values = append(values, v.value)
		}

		g.Expect(values).To(Equal([]int{1, 2, 3}))
	})

	t.Run("backward order", func(t *testing.T) {
		g := NewWithT(t)

		list := newItemList(1, 2, 3)

		var values []int
		for v := range list.Backward() {
			values = append(values, v.value)
		}

		g.Expect(values).To(Equal([]int{3, 2, 1}))
	})

	t.Run("break stops iteration", func(t *testing.T) {
		g := NewWithT(t)

		list := newItemList(1, 2, 3)

		visits := 0
		for range list.All() {
			visits++
			break
		}

		g.Expect(visits).To(Equal(1))
	})
}
