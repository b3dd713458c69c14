package sharedptr

import "reflect"

type blockHeader struct {
	strongCount int
	weakCount   int
}

func (h *blockHeader) header() *blockHeader { return h }

// controlBlock erases the concrete deleter and allocator types behind the
// two operations the pointer types need. destroy fires once, at the
// strong-count-zero transition; deallocate fires once, when both counts are
// zero. Callers guarantee the ordering, destroy before deallocate.
type controlBlock interface {
	header() *blockHeader
	destroy()
	deallocate()
}

// regularBlock owns a separately-allocated object through a raw pointer.
type regularBlock[T any] struct {
	blockHeader
	ptr     *T
	deleter Deleter[T]
	alloc   Allocator
}

func (b *regularBlock[T]) destroy() {
	if b.deleter != nil {
		b.deleter(b.ptr)
	}
	b.ptr = nil
}

func (b *regularBlock[T]) deallocate() {
	b.alloc.Deallocate(b)
}

// inlineBlock stores the managed object in the block cell itself, so the
// counts and the object share one allocation. Only MakeShared and
// AllocateShared produce this shape.
type inlineBlock[T any] struct {
	blockHeader
	value T
	alloc Allocator
}

func (b *inlineBlock[T]) destroy() {
	// Destruction under garbage collection: drop everything the value
	// referenced. The cell stays valid for weak observers.
	var zero T
	b.value = zero
}

func (b *inlineBlock[T]) deallocate() {
	b.alloc.Deallocate(b)
}

func newCell[C any](alloc Allocator) (*C, error) {
	cell, err := alloc.Allocate(reflect.TypeOf((*C)(nil)).Elem())
	if err != nil {
		return nil, err
	}
	return cell.(*C), nil
}
