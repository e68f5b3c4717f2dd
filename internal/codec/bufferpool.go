package codec

import "sync"

var scratchPool = sync.Pool{
	New: func() interface{} {
		return make([]byte, 0, 256)
	},
}

// getScratch returns a byte slice of length size from the pool, growing it
// if the pooled capacity falls short.
func getScratch(size int) []byte {
	buf := scratchPool.Get().([]byte)
	if cap(buf) < size {
		return make([]byte, size, size*2)
	}
	return buf[:size]
}

// releaseScratch returns buf to the pool.
func releaseScratch(buf []byte) {
	scratchPool.Put(buf[:0])
}
