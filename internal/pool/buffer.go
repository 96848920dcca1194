// Package pool provides memory management optimizations.
// This includes buffer pooling to reduce allocations across uploads.
//
// Multipart transfers stage one fixed-size part in memory at a time;
// pooling those buffers keeps a busy client from reallocating multiple
// megabytes per upload.
package pool

import (
	"sync"
)

const (
	// SniffBufferSize defines the size of content detection buffers (512B)
	SniffBufferSize = 512
	// PartBufferSize defines the size of multipart staging buffers (5MB)
	PartBufferSize = 5 * 1024 * 1024
)

// BufferPool manages reusable fixed-size buffers to reduce allocations.
type BufferPool struct {
	size int
	pool *sync.Pool
}

// NewBufferPool creates a pool handing out buffers of the given size.
func NewBufferPool(size int) *BufferPool {
	return &BufferPool{
		size: size,
		pool: &sync.Pool{
			New: func() interface{} {
				buf := make([]byte, size)
				return &buf
			},
		},
	}
}

// Get returns a buffer of the pool's full size.
// The caller is responsible for calling Put to return the buffer to the pool.
// The contents are undefined; the caller must track how much it fills.
func (bp *BufferPool) Get() []byte {
	bufPtr := bp.pool.Get().(*[]byte)
	return (*bufPtr)[:bp.size]
}

// Put returns a buffer to the pool.
// The buffer should not be used after calling Put. Buffers of a different
// capacity are dropped rather than pooled.
func (bp *BufferPool) Put(buf []byte) {
	if cap(buf) != bp.size {
		return
	}
	buf = buf[:bp.size]
	bp.pool.Put(&buf)
}

// Global pools shared by all clients in the process.
var (
	sniffBufferPool = NewBufferPool(SniffBufferSize)
	partBufferPool  = NewBufferPool(PartBufferSize)
)

// GetSniffBuffer returns a content detection buffer from the global pool.
func GetSniffBuffer() []byte {
	return sniffBufferPool.Get()
}

// PutSniffBuffer returns a content detection buffer to the global pool.
func PutSniffBuffer(buf []byte) {
	sniffBufferPool.Put(buf)
}

// GetPartBuffer returns a multipart staging buffer from the global pool.
func GetPartBuffer() []byte {
	return partBufferPool.Get()
}

// PutPartBuffer returns a multipart staging buffer to the global pool.
func PutPartBuffer(buf []byte) {
	partBufferPool.Put(buf)
}
