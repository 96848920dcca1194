package pool

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBufferPool_Get(t *testing.T) {
	bp := NewBufferPool(1024)

	buf := bp.Get()
	require.NotNil(t, buf)
	assert.Equal(t, 1024, cap(buf))
	assert.Equal(t, 1024, len(buf))

	// Use the buffer
	copy(buf, []byte("test data"))

	// Return to pool
	bp.Put(buf)
}

func TestBufferPool_Reuse(t *testing.T) {
	bp := NewBufferPool(64)

	buf := bp.Get()
	copy(buf, []byte("stale contents"))
	bp.Put(buf)

	again := bp.Get()
	assert.Equal(t, 64, len(again), "pooled buffers come back at full size")
}

func TestBufferPool_PutWrongSize(t *testing.T) {
	bp := NewBufferPool(64)

	// A foreign buffer must not poison the pool.
	bp.Put(make([]byte, 16))

	buf := bp.Get()
	assert.Equal(t, 64, cap(buf))
}

func TestGlobalPools(t *testing.T) {
	sniff := GetSniffBuffer()
	assert.Equal(t, SniffBufferSize, len(sniff))
	PutSniffBuffer(sniff)

	part := GetPartBuffer()
	assert.Equal(t, PartBufferSize, len(part))
	PutPartBuffer(part)
}
