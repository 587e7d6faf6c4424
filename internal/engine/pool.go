package engine

// Pool is a fixed-capacity arena of slots. Inactive slots are recycled through
// a free list, so inserting never allocates after construction. Iteration and
// indexed access always walk active slots in slot order.
type Pool[T any] struct {
	slots  []T
	active []bool
	free   []int // stack of inactive slot indices
	count  int
}

// NewPool creates a pool with the given capacity.
func NewPool[T any](capacity int) *Pool[T] {
	p := &Pool[T]{
		slots:  make([]T, capacity),
		active: make([]bool, capacity),
		free:   make([]int, 0, capacity),
	}
	p.Clear()
	return p
}

// Cap returns the fixed capacity of the pool.
func (p *Pool[T]) Cap() int {
	return len(p.slots)
}

// Len returns the number of active slots.
func (p *Pool[T]) Len() int {
	return p.count
}

// Full reports whether no slot is free.
func (p *Pool[T]) Full() bool {
	return len(p.free) == 0
}

// TryInsert stores v in a free slot and returns its index.
// Returns false, without error, when the pool is full.
func (p *Pool[T]) TryInsert(v T) (int, bool) {
	n := len(p.free)
	if n == 0 {
		return -1, false
	}
	idx := p.free[n-1]
	p.free = p.free[:n-1]
	p.slots[idx] = v
	p.active[idx] = true
	p.count++
	return idx, true
}

// Deactivate releases the slot at idx. Inactive or out-of-range indices are ignored.
func (p *Pool[T]) Deactivate(idx int) {
	if idx < 0 || idx >= len(p.slots) || !p.active[idx] {
		return
	}
	var zero T
	p.slots[idx] = zero
	p.active[idx] = false
	p.free = append(p.free, idx)
	p.count--
}

// Active reports whether the slot at idx holds a live value.
func (p *Pool[T]) Active(idx int) bool {
	return idx >= 0 && idx < len(p.slots) && p.active[idx]
}

// Slot returns a pointer to the value in an active slot, or nil.
func (p *Pool[T]) Slot(idx int) *T {
	if !p.Active(idx) {
		return nil
	}
	return &p.slots[idx]
}

// Each calls fn for every active slot in slot order until fn returns false.
// fn may deactivate the slot it is visiting.
func (p *Pool[T]) Each(fn func(idx int, v *T) bool) {
	for i := range p.slots {
		if !p.active[i] {
			continue
		}
		if !fn(i, &p.slots[i]) {
			return
		}
	}
}

// Nth returns a copy of the n-th active value in slot order.
func (p *Pool[T]) Nth(n int) (T, bool) {
	var zero T
	if n < 0 || n >= p.count {
		return zero, false
	}
	seen := 0
	for i := range p.slots {
		if !p.active[i] {
			continue
		}
		if seen == n {
			return p.slots[i], true
		}
		seen++
	}
	return zero, false
}

// Values returns copies of all active values in slot order.
func (p *Pool[T]) Values() []T {
	out := make([]T, 0, p.count)
	p.Each(func(_ int, v *T) bool {
		out = append(out, *v)
		return true
	})
	return out
}

// Clear deactivates every slot and rebuilds the free list so the next
// inserts fill slots 0, 1, 2, ... in order.
func (p *Pool[T]) Clear() {
	var zero T
	p.free = p.free[:0]
	for i := len(p.slots) - 1; i >= 0; i-- {
		p.slots[i] = zero
		p.active[i] = false
		p.free = append(p.free, i)
	}
	p.count = 0
}
