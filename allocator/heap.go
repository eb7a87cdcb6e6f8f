package allocator

import "sync"

// heapAllocator is the process default Allocator. It never reports
// exhaustion; buffers are recycled through size-classed sync.Pools rather
// than allocated fresh on every call, adapting the teacher pack's
// pool.NewDynamic (a thin sync.Pool wrapper) to byte-buffer frames instead
// of worker objects.
type heapAllocator struct {
	pools sync.Map // map[int]*sync.Pool, keyed by exact buffer size
}

func (h *heapAllocator) Allocate(size int) []byte {
	if size <= 0 {
		return make([]byte, 0)
	}
	poolForSize, _ := h.pools.LoadOrStore(size, &sync.Pool{
		New: func() interface{} { return make([]byte, size) },
	})
	buf := poolForSize.(*sync.Pool).Get().([]byte)
	for i := range buf {
		buf[i] = 0
	}
	return buf
}

func (h *heapAllocator) Deallocate(buf []byte) {
	size := cap(buf)
	if size == 0 {
		return
	}
	poolForSize, ok := h.pools.Load(size)
	if !ok {
		return
	}
	poolForSize.(*sync.Pool).Put(buf[:size:size])
}

var defaultHeap = &heapAllocator{}

// Default returns the process-wide heap allocator used when a spawn call
// supplies no Allocator of its own.
func Default() Allocator { return defaultHeap }
