package sharedptr

import (
	"testing"

	"github.com/go-sharedptr/sharedptr/poolalloc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMakeSharedSingleOwner(t *testing.T) {
	p := MakeShared(5)
	assert.Equal(t, 1, p.UseCount())
	assert.Equal(t, 5, p.Deref())
	p.Release()
}

func TestMakeSharedValueStoredOnce(t *testing.T) {
	p := MakeShared(node{id: 3})
	c := p.Clone()

	// One co-located value; every copy resolves to the same storage.
	assert.Same(t, p.Get(), c.Get())
	p.Get().id = 8
	assert.Equal(t, 8, c.Deref().id)

	c.Release()
	p.Release()
}

func TestCoLocatedDestroyZeroesValue(t *testing.T) {
	p := MakeShared(node{id: 3, next: &node{id: 4}})
	obj := p.Get()
	w := p.Weak()

	p.Release()
	assert.True(t, w.Expired())
	assert.Nil(t, obj.next, "destroy drops what the inline value referenced")
	assert.Zero(t, obj.id)

	w.Release()
}

func TestAllocateSharedNilAllocatorDefaults(t *testing.T) {
	p, err := AllocateShared(nil, 3)
	require.NoError(t, err)
	assert.Equal(t, 3, p.Deref())
	p.Release()
}

func TestAllocateSharedThroughPool(t *testing.T) {
	pool := poolalloc.NewPool(-1)
	p, err := AllocateShared(pool, 7)
	require.NoError(t, err)
	assert.Equal(t, int64(1), pool.LiveCells())

	w := p.Weak()
	p.Release()
	assert.Equal(t, int64(1), pool.LiveCells(), "cell stays live while observed")

	w.Release()
	assert.Equal(t, int64(0), pool.LiveCells())
	assert.Equal(t, int64(1), pool.RecycleCount())
}

func TestAllocateSharedPoolExhausted(t *testing.T) {
	pool := poolalloc.NewPool(1)

	p1, err := AllocateShared(pool, 1)
	require.NoError(t, err)

	_, err = AllocateShared(pool, 2)
	assert.ErrorIs(t, err, poolalloc.ErrCellsExhausted)

	p1.Release()
	p2, err := AllocateShared(pool, 3)
	require.NoError(t, err)
	assert.Equal(t, 3, p2.Deref())
	p2.Release()
}
