package sharedptr

// SharedPtr is a strong, owning reference to a heap object shared with
// every other SharedPtr and WeakPtr derived from the same construction
// call. The zero value is an empty pointer.
type SharedPtr[T any] struct {
	// ptr is the direct pointer to the managed object. It stays nil on
	// the co-located path, where the object lives inside the control
	// block and Get resolves through it.
	ptr *T
	cb  controlBlock
}

// NewShared takes ownership of ptr with the default deleter and the
// default heap allocator. The returned pointer has use count 1; a nil ptr
// is still owned, matching Reset-style emptiness only for the zero value.
func NewShared[T any](ptr *T) SharedPtr[T] {
	p, err := NewSharedWith(ptr, nil, nil)
	if err != nil {
		// HeapAllocator cannot fail.
		panic(err)
	}
	return p
}

// NewSharedWith takes ownership of ptr, releasing it through deleter and
// keeping the control block in a cell from alloc. A nil deleter or nil
// alloc selects the default. On allocator failure no ownership is taken
// and the empty pointer is returned with the error.
func NewSharedWith[T any](ptr *T, deleter Deleter[T], alloc Allocator) (SharedPtr[T], error) {
	if alloc == nil {
		alloc = defaultAllocator
	}
	blk, err := newCell[regularBlock[T]](alloc)
	if err != nil {
		return SharedPtr[T]{}, err
	}
	*blk = regularBlock[T]{ptr: ptr, deleter: deleter, alloc: alloc}
	blk.strongCount = 1
	return SharedPtr[T]{ptr: ptr, cb: blk}, nil
}

// Clone acquires a new strong reference sharing the control block.
func (p *SharedPtr[T]) Clone() SharedPtr[T] {
	if p.cb != nil {
		p.cb.header().strongCount++
	}
	return SharedPtr[T]{ptr: p.ptr, cb: p.cb}
}

// Move transfers ownership out of p, leaving it empty. The counts are not
// touched; the ownership slot itself moves.
func (p *SharedPtr[T]) Move() SharedPtr[T] {
	moved := SharedPtr[T]{ptr: p.ptr, cb: p.cb}
	p.ptr = nil
	p.cb = nil
	return moved
}

// Swap exchanges the contents of p and other. It is the primitive both
// assignment forms are built from.
func (p *SharedPtr[T]) Swap(other *SharedPtr[T]) {
	p.ptr, other.ptr = other.ptr, p.ptr
	p.cb, other.cb = other.cb, p.cb
}

// Assign replaces p's reference with a copy of other's. Built as
// clone-then-swap, so p is only modified once the new reference is fully
// acquired. Self-assignment is a no-op.
func (p *SharedPtr[T]) Assign(other *SharedPtr[T]) {
	if p == other {
		return
	}
	tmp := other.Clone()
	p.Swap(&tmp)
	tmp.Release()
}

// MoveAssign replaces p's reference with other's, leaving other empty.
func (p *SharedPtr[T]) MoveAssign(other *SharedPtr[T]) {
	if p == other {
		return
	}
	tmp := other.Move()
	p.Swap(&tmp)
	tmp.Release()
}

// Release drops this strong reference and empties p. The last strong drop
// destroys the managed object; if no weak references remain either, the
// control block cell goes back to its allocator. Releasing an empty
// pointer is a no-op, so releasing the same instance twice is harmless.
func (p *SharedPtr[T]) Release() {
	cb := p.cb
	p.ptr = nil
	p.cb = nil
	if cb == nil {
		return
	}
	h := cb.header()
	h.strongCount--
	if h.strongCount < 0 {
		panic("sharedptr: strong count underflow, pointer duplicated by struct copy")
	}
	if h.strongCount == 0 {
		cb.destroy()
		if h.weakCount == 0 {
			cb.deallocate()
		}
	}
}

// Reset releases the current reference, leaving p empty.
func (p *SharedPtr[T]) Reset() {
	p.Release()
}

// ResetTo releases the current reference and takes ownership of ptr with
// the default deleter and allocator.
func (p *SharedPtr[T]) ResetTo(ptr *T) {
	tmp := NewShared(ptr)
	p.Swap(&tmp)
	tmp.Release()
}

// ResetToWith releases the current reference and takes ownership of ptr
// through deleter and alloc. On allocator failure p is left unmodified.
func (p *SharedPtr[T]) ResetToWith(ptr *T, deleter Deleter[T], alloc Allocator) error {
	tmp, err := NewSharedWith(ptr, deleter, alloc)
	if err != nil {
		return err
	}
	p.Swap(&tmp)
	tmp.Release()
	return nil
}

// Get returns the managed object: the direct pointer when present,
// otherwise the value co-located inside the control block. Returns nil for
// an empty pointer.
func (p *SharedPtr[T]) Get() *T {
	if p.ptr != nil {
		return p.ptr
	}
	if blk, ok := p.cb.(*inlineBlock[T]); ok {
		return &blk.value
	}
	return nil
}

// Deref returns the managed value. Calling it on an empty pointer is a
// caller contract violation; the hot path carries no check of its own
// beyond the nil dereference.
func (p *SharedPtr[T]) Deref() T {
	return *p.Get()
}

// UseCount reports how many strong references currently share the control
// block, 0 for an empty pointer.
func (p *SharedPtr[T]) UseCount() int {
	if p.cb == nil {
		return 0
	}
	return p.cb.header().strongCount
}

// Weak returns a weak observer of the managed object. It never keeps the
// object alive; it only pins the control block cell.
func (p *SharedPtr[T]) Weak() WeakPtr[T] {
	if p.cb != nil {
		p.cb.header().weakCount++
	}
	return WeakPtr[T]{ptr: p.ptr, cb: p.cb}
}
