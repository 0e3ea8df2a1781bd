package hal

import "sync"

// virtualEncoders simulates free-running encoder counters.
type virtualEncoders struct {
	mu      sync.Mutex
	pos     []int32
	modulus int32
}

func newVirtualEncoders(n int, modulus int32) *virtualEncoders {
	return &virtualEncoders{pos: make([]int32, n), modulus: modulus}
}

func (e *virtualEncoders) Count() int     { return len(e.pos) }
func (e *virtualEncoders) Modulus() int32 { return e.modulus }

func (e *virtualEncoders) Position(i int) int32 {
	e.mu.Lock()
	defer e.mu.Unlock()
	if i < 0 || i >= len(e.pos) {
		return 0
	}
	return e.pos[i]
}

// turn moves encoder i by d detents, wrapping like the hardware counter.
func (e *virtualEncoders) turn(i int, d int32) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if i < 0 || i >= len(e.pos) {
		return
	}
	e.pos[i] = wrapCount(int64(e.pos[i])+int64(d), e.modulus)
}

// wrapCount reduces v into [0, modulus). A modulus <= 0 only truncates.
func wrapCount(v int64, modulus int32) int32 {
	if modulus <= 0 {
		return int32(v)
	}
	m := int64(modulus)
	v %= m
	if v < 0 {
		v += m
	}
	return int32(v)
}
