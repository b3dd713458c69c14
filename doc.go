// Package sharedptr implements a reference-counting pointer pair: a strong,
// owning SharedPtr and a weak, observing WeakPtr that share one out-of-band
// control block tracking two independent counts.
//
// The managed object is destroyed when the last strong reference is
// released; the control block cell itself goes back to its allocator only
// once the weak count has also reached zero. That split lets a WeakPtr
// safely report liveness after the object is gone but before the block is
// reclaimed.
//
// Go has no copy constructors or destructors, so the lifecycle is explicit:
// Clone acquires a reference, Release drops one, Assign and MoveAssign
// replace one. A SharedPtr or WeakPtr value must never be duplicated by
// plain struct copy; every live instance has to come out of a constructor,
// Clone, Move, or Lock, and be retired by exactly one Release.
//
// Counting is non-atomic. A pointer group sharing one control block belongs
// to a single goroutine; concurrent use races on the counts. That is a
// documented limitation, not something to fix with locks: atomic counting
// is a distinct, more expensive design.
package sharedptr
