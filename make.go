package sharedptr

// MakeShared builds one co-located control block holding value and returns
// the owning pointer with use count 1. One allocation serves both the
// counts and the object, so this is the preferred construction path when
// no custom deleter is needed.
//
// Go has no forwarded constructor arguments; the caller builds value (a
// composite literal is in-place construction here) and it is stored into
// the block exactly once.
func MakeShared[T any](value T) SharedPtr[T] {
	p, err := AllocateShared(defaultAllocator, value)
	if err != nil {
		// HeapAllocator cannot fail.
		panic(err)
	}
	return p
}

// AllocateShared is MakeShared through a caller-supplied allocator; a nil
// alloc selects the default. These two functions are the only producers of
// co-located blocks.
func AllocateShared[T any](alloc Allocator, value T) (SharedPtr[T], error) {
	if alloc == nil {
		alloc = defaultAllocator
	}
	blk, err := newCell[inlineBlock[T]](alloc)
	if err != nil {
		return SharedPtr[T]{}, err
	}
	*blk = inlineBlock[T]{value: value, alloc: alloc}
	blk.strongCount = 1
	// The direct pointer stays nil on this path; Get resolves through the
	// block.
	return SharedPtr[T]{cb: blk}, nil
}
