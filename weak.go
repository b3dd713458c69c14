package sharedptr

// WeakPtr observes an object owned elsewhere without keeping it alive. It
// holds the same control block as the SharedPtr group it came from but is
// counted against the weak count only, which bounds the lifetime of the
// block cell, never of the object. The zero value is an empty observer.
type WeakPtr[T any] struct {
	ptr *T
	cb  controlBlock
}

// Clone acquires a new weak reference sharing the control block.
func (p *WeakPtr[T]) Clone() WeakPtr[T] {
	if p.cb != nil {
		p.cb.header().weakCount++
	}
	return WeakPtr[T]{ptr: p.ptr, cb: p.cb}
}

// Move transfers the observer slot out of p, leaving it empty.
func (p *WeakPtr[T]) Move() WeakPtr[T] {
	moved := WeakPtr[T]{ptr: p.ptr, cb: p.cb}
	p.ptr = nil
	p.cb = nil
	return moved
}

// Swap exchanges the contents of p and other.
func (p *WeakPtr[T]) Swap(other *WeakPtr[T]) {
	p.ptr, other.ptr = other.ptr, p.ptr
	p.cb, other.cb = other.cb, p.cb
}

// Assign replaces p's reference with a copy of other's.
func (p *WeakPtr[T]) Assign(other *WeakPtr[T]) {
	if p == other {
		return
	}
	tmp := other.Clone()
	p.Swap(&tmp)
	tmp.Release()
}

// MoveAssign replaces p's reference with other's, leaving other empty.
func (p *WeakPtr[T]) MoveAssign(other *WeakPtr[T]) {
	if p == other {
		return
	}
	tmp := other.Move()
	p.Swap(&tmp)
	tmp.Release()
}

// UseCount reports how many strong owners remain, the externally
// meaningful number for an observer. It is not the weak count.
func (p *WeakPtr[T]) UseCount() int {
	if p.cb == nil {
		return 0
	}
	return p.cb.header().strongCount
}

// Expired reports whether the managed object has been destroyed.
func (p *WeakPtr[T]) Expired() bool {
	return p.UseCount() == 0
}

// Lock attempts to re-acquire a strong reference, returning the empty
// SharedPtr once the object has expired. The expiry check and the count
// increment are two separate steps; fusing them into one atomic step is
// the thread-safe variant this package deliberately is not.
func (p *WeakPtr[T]) Lock() SharedPtr[T] {
	if p.Expired() {
		return SharedPtr[T]{}
	}
	p.cb.header().strongCount++
	return SharedPtr[T]{ptr: p.ptr, cb: p.cb}
}

// Release drops this weak reference and empties p. The last weak drop
// reclaims the control block cell, provided the object was already
// destroyed when the strong count hit zero.
func (p *WeakPtr[T]) Release() {
	cb := p.cb
	p.ptr = nil
	p.cb = nil
	if cb == nil {
		return
	}
	h := cb.header()
	h.weakCount--
	if h.weakCount < 0 {
		panic("sharedptr: weak count underflow, pointer duplicated by struct copy")
	}
	if h.weakCount == 0 && h.strongCount == 0 {
		cb.deallocate()
	}
}

// objectPtr resolves the stored object location without any liveness
// implication; conversions use it to build their interface view.
func (p *WeakPtr[T]) objectPtr() *T {
	if p.ptr != nil {
		return p.ptr
	}
	if blk, ok := p.cb.(*inlineBlock[T]); ok {
		return &blk.value
	}
	return nil
}
