package sharedptr

import "fmt"

// SharedAs returns a strong reference to the same object viewed through
// the interface type I, sharing the control block with p; both pointers
// agree on UseCount afterward. The subtype relation in Go is interface
// satisfaction, and generics cannot state it as a compile-time bound, so
// the check happens at runtime: SharedAs panics if *T does not implement
// I. Converting an empty pointer yields an empty pointer.
func SharedAs[I any, T any](p *SharedPtr[T]) SharedPtr[I] {
	if p.cb == nil {
		return SharedPtr[I]{}
	}
	view, ok := any(p.Get()).(I)
	if !ok {
		panic(fmt.Sprintf("sharedptr: %T does not implement the requested interface", p.Get()))
	}
	p.cb.header().strongCount++
	return SharedPtr[I]{ptr: &view, cb: p.cb}
}

// WeakAs is SharedAs for weak observers: the result shares the control
// block and counts against the weak count only. The interface view is
// built from the stored object location without touching liveness; a later
// Lock still decides whether the object is actually reachable.
func WeakAs[I any, T any](p *WeakPtr[T]) WeakPtr[I] {
	if p.cb == nil {
		return WeakPtr[I]{}
	}
	view, ok := any(p.objectPtr()).(I)
	if !ok {
		panic(fmt.Sprintf("sharedptr: %T does not implement the requested interface", p.objectPtr()))
	}
	p.cb.header().weakCount++
	return WeakPtr[I]{ptr: &view, cb: p.cb}
}
