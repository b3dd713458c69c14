package poolalloc

import (
	"errors"
	"reflect"
	"sync"
	"sync/atomic"
)

var ErrCellsExhausted = errors.New("poolalloc: live cell limit reached")

// Pool hands out control-block cells from per-type free lists instead of
// fresh heap allocations. A cell comes back through Deallocate once both
// reference counts of its block hit zero; it is zeroed and recycled for
// the next Allocate of the same cell type.
//
// Pool satisfies the sharedptr.Allocator contract.
type Pool struct {
	cellsLimit int64
	liveCells  int64

	allocs   int64
	recycles int64

	pools sync.Map // reflect.Type -> *sync.Pool
}

// NewPool returns a Pool that fails allocation with ErrCellsExhausted once
// cellsLimit cells are live at the same time. A limit of -1 means
// unlimited; a limit of 0 makes every Allocate fail.
func NewPool(cellsLimit int64) *Pool {
	return &Pool{cellsLimit: cellsLimit}
}

func (p *Pool) Allocate(cell reflect.Type) (any, error) {
	if atomic.AddInt64(&p.liveCells, 1) > p.cellsLimit && p.cellsLimit != -1 {
		atomic.AddInt64(&p.liveCells, -1)
		return nil, ErrCellsExhausted
	}
	atomic.AddInt64(&p.allocs, 1)
	return p.cellPool(cell).Get(), nil
}

func (p *Pool) Deallocate(cellPtr any) {
	if cellPtr == nil {
		return
	}
	// Zero before recycling so a reused cell carries nothing over.
	v := reflect.ValueOf(cellPtr).Elem()
	v.SetZero()
	p.cellPool(v.Type()).Put(cellPtr)
	atomic.AddInt64(&p.liveCells, -1)
	atomic.AddInt64(&p.recycles, 1)
}

func (p *Pool) cellPool(cell reflect.Type) *sync.Pool {
	if poolI, ok := p.pools.Load(cell); ok {
		return poolI.(*sync.Pool)
	}
	poolI, _ := p.pools.LoadOrStore(cell, &sync.Pool{
		New: func() any { return reflect.New(cell).Interface() },
	})
	return poolI.(*sync.Pool)
}

// LiveCells reports how many cells are currently allocated and not yet
// returned.
func (p *Pool) LiveCells() int64 {
	return atomic.LoadInt64(&p.liveCells)
}

// AllocCount reports how many allocations succeeded over the Pool's
// lifetime.
func (p *Pool) AllocCount() int64 {
	return atomic.LoadInt64(&p.allocs)
}

// RecycleCount reports how many cells came back through Deallocate.
func (p *Pool) RecycleCount() int64 {
	return atomic.LoadInt64(&p.recycles)
}
