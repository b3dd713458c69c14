package sharedptr

import (
	"io"
	"reflect"
)

// Deleter releases a managed object when the last strong reference drops.
// A nil Deleter selects the default behavior: nothing to run, since under
// garbage collection dropping the last reference is deletion.
type Deleter[T any] func(*T)

// CloseDeleter returns a Deleter that closes the managed object. Any error
// from Close is discarded; a deleter has nowhere to report it.
func CloseDeleter[T io.Closer]() Deleter[T] {
	return func(p *T) {
		_ = (*p).Close()
	}
}

// Allocator supplies the storage cells control blocks live in.
//
// Allocate returns a pointer to a zeroed cell of the given type, as
// produced by reflect.New. Deallocate takes such a pointer back once both
// reference counts have hit zero; the cell must not be touched afterward.
// One Allocator value serves every cell type, keyed by the reflect.Type.
type Allocator interface {
	Allocate(cell reflect.Type) (any, error)
	Deallocate(cell any)
}

// HeapAllocator is the default Allocator: plain garbage-collected
// allocations. Deallocate is a no-op; the collector reclaims the cell once
// nothing points at it.
type HeapAllocator struct{}

func (HeapAllocator) Allocate(cell reflect.Type) (any, error) {
	return reflect.New(cell).Interface(), nil
}

func (HeapAllocator) Deallocate(cell any) {}

var defaultAllocator Allocator = HeapAllocator{}
