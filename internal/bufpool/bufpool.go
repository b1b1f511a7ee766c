// Package bufpool recycles byte buffers between hash calls.
package bufpool

import "sync"

// Allocator hands out zeroed byte buffers of an exact length. Every buffer
// returned by Acquire must be passed to Release exactly once.
type Allocator interface {
	Acquire(n int) []byte
	Release(buf []byte)
}

// maxPooled is the largest capacity kept for reuse. Larger buffers are left
// to the garbage collector.
const maxPooled = 64 * 1024

type Pool struct {
	pool sync.Pool
}

func New() *Pool {
	return &Pool{pool: sync.Pool{
		New: func() any {
			b := make([]byte, 0, 512)
			return &b
		},
	}}
}

var _ Allocator = (*Pool)(nil)

func (p *Pool) Acquire(n int) []byte {
	if n > maxPooled {
		return make([]byte, n)
	}
	bp := p.pool.Get().(*[]byte)
	b := *bp
	if cap(b) < n {
		p.pool.Put(bp)
		return make([]byte, n)
	}
	b = b[:n]
	clear(b)
	return b
}

func (p *Pool) Release(buf []byte) {
	if buf == nil || cap(buf) > maxPooled {
		return
	}
	buf = buf[:0]
	p.pool.Put(&buf)
}

// Tracker wraps an Allocator and counts buffers that have been acquired but
// not yet released.
type Tracker struct {
	Allocator
	mu          sync.Mutex
	outstanding int
	acquired    int
}

func NewTracker(a Allocator) *Tracker {
	return &Tracker{Allocator: a}
}

func (t *Tracker) Acquire(n int) []byte {
	t.mu.Lock()
	t.outstanding++
	t.acquired++
	t.mu.Unlock()
	return t.Allocator.Acquire(n)
}

func (t *Tracker) Release(buf []byte) {
	t.mu.Lock()
	t.outstanding--
	t.mu.Unlock()
	t.Allocator.Release(buf)
}

// Outstanding is the number of acquired buffers not yet released.
func (t *Tracker) Outstanding() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.outstanding
}

// Acquired is the total number of buffers handed out.
func (t *Tracker) Acquired() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.acquired
}
