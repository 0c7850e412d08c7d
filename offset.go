package dlist

import (
	"hash/maphash"
	"reflect"
	"unsafe"

	"github.com/puzpuzpuz/xsync/v2"
)

var nodeType = reflect.TypeFor[Node]()

// offsets caches the byte offset of the Node field per container
// type. Each list copies the offset into its own header on first
// use, so steady-state operations never touch the map.
var offsets = xsync.NewTypedMapOf[reflect.Type, uintptr](func(seed maphash.Seed, t reflect.Type) uint64 {
	return maphash.String(seed, t.String())
})

// nodeOffset returns the byte offset of the Node field inside T.
// It panics if T is not a struct type with a Node field.
func nodeOffset[T any]() uintptr {
	t := reflect.TypeFor[T]()
	if off, ok := offsets.Load(t); ok {
		return off
	}
	off, ok := findNodeField(t)
	if !ok {
		panic("dlist: type " + t.String() + " has no dlist.Node field")
	}
	off, _ = offsets.LoadOrCompute(t, func() uintptr {
		return off
	})
	return off
}

// findNodeField locates the first Node field of t in field order,
// descending into embedded struct fields.
func findNodeField(t reflect.Type) (uintptr, bool) {
	if t.Kind() != reflect.Struct {
		return 0, false
	}
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if f.Type == nodeType {
			return f.Offset, true
		}
		if f.Anonymous && f.Type.Kind() == reflect.Struct {
			if off, ok := findNodeField(f.Type); ok {
				return f.Offset + off, true
			}
		}
	}
	return 0, false
}

// nodeOf returns the Node embedded in v at offset off.
func nodeOf[T any](v *T, off uintptr) *Node {
	return (*Node)(unsafe.Add(unsafe.Pointer(v), off))
}

// containerOf recovers the container from its embedded Node by
// undoing the field offset. It is the inverse of nodeOf.
func containerOf[T any](n *Node, off uintptr) *T {
	if n == nil {
		return nil
	}
	return (*T)(unsafe.Add(unsafe.Pointer(n), -int(off)))
}
