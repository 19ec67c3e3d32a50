package png

import "sync"

// bufferPool recycles chunk payload and scanline buffers. Buffers are
// rented for the duration of one handler or one interlace pass and always
// returned on exit, so a Decoder reused across images allocates little.
type bufferPool struct {
	pool sync.Pool
}

// get returns a buffer of exactly n bytes. Contents are unspecified.
func (p *bufferPool) get(n int) []byte {
	if b, ok := p.pool.Get().([]byte); ok && cap(b) >= n {
		return b[:n]
	}
	return make([]byte, n)
}

// put returns a buffer to the pool.
func (p *bufferPool) put(b []byte) {
	if cap(b) == 0 {
		return
	}
	p.pool.Put(b[:0])
}
