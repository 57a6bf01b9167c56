// Package staging manages the fixed set of DMA-capable scratch buffers used
// to move scanlines from bulk framebuffer memory to the transfer peripheral.
//
// The transfer peripheral can only read from fast internal memory, which is
// scarce. A Pool is sized once against a byte budget and never grows; buffers
// are handed out with Get and must be returned with Put.
package staging

import (
	"errors"
	"fmt"
)

var (
	// ErrNoMemory is returned by New when the pool does not fit the budget.
	ErrNoMemory = errors.New("staging: insufficient DMA-capable memory")
	// ErrExhausted is returned by Get when every buffer is in use.
	ErrExhausted = errors.New("staging: no free buffer")
)

// Pool is a fixed set of equally sized buffers.
type Pool struct {
	size  int
	count int
	free  chan []byte
}

// New allocates count buffers of size bytes each. budget is the amount of
// DMA-capable memory available; a pool larger than the budget is refused.
func New(count, size, budget int) (*Pool, error) {
	if count <= 0 || size <= 0 {
		return nil, fmt.Errorf("staging: invalid pool geometry %d x %d bytes", count, size)
	}
	if need := count * size; need > budget {
		return nil, fmt.Errorf("%w: need %d bytes, have %d", ErrNoMemory, need, budget)
	}
	p := &Pool{
		size:  size,
		count: count,
		free:  make(chan []byte, count),
	}
	for i := 0; i < count; i++ {
		p.free <- make([]byte, size)
	}
	return p, nil
}

// Get returns a free buffer without blocking.
func (p *Pool) Get() ([]byte, error) {
	select {
	case b := <-p.free:
		return b, nil
	default:
		return nil, ErrExhausted
	}
}

// Put returns a buffer obtained from Get. Buffers of the wrong size are
// dropped.
func (p *Pool) Put(b []byte) {
	if cap(b) != p.size {
		return
	}
	select {
	case p.free <- b[:p.size]:
	default:
	}
}

// Size returns the size of each buffer in bytes.
func (p *Pool) Size() int {
	return p.size
}

// Len returns the number of buffers owned by the pool.
func (p *Pool) Len() int {
	return p.count
}

// Free returns the number of buffers currently available.
func (p *Pool) Free() int {
	return len(p.free)
}
