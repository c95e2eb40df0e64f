package sim

// Pool is an owning, insertion-ordered collection of simulation objects.
// Append is amortised O(1); removal happens in a single compaction pass
// driven by Retain, which is safe to use as the per-tick update loop.
//
// Pointers handed to callbacks are only valid during that callback.
type Pool[T any] struct {
	items []T
}

// Add appends an item to the tail and returns a pointer to it.
func (p *Pool[T]) Add(item T) *T {
	p.items = append(p.items, item)
	return &p.items[len(p.items)-1]
}

// Len returns the number of live items.
func (p *Pool[T]) Len() int {
	return len(p.items)
}

// At returns a pointer to the i-th live item.
func (p *Pool[T]) At(i int) *T {
	return &p.items[i]
}

// Items returns the live items in traversal order. The slice must not be
// retained across updates.
func (p *Pool[T]) Items() []T {
	return p.items
}

// Last returns the tail item, or nil when the pool is empty.
func (p *Pool[T]) Last() *T {
	if len(p.items) == 0 {
		return nil
	}
	return &p.items[len(p.items)-1]
}

// Each calls fn for every live item in order.
func (p *Pool[T]) Each(fn func(*T)) {
	for i := range p.items {
		fn(&p.items[i])
	}
}

// Retain calls keep for every item in order and drops the ones for which it
// returns false. keep may mutate the item. Items appended to a different
// pool during the pass are unaffected; appending to this pool from keep is
// not allowed. Returns the number of removed items.
func (p *Pool[T]) Retain(keep func(*T) bool) int {
	n := 0
	for i := range p.items {
		if !keep(&p.items[i]) {
			continue
		}
		if n != i {
			p.items[n] = p.items[i]
		}
		n++
	}

	removed := len(p.items) - n
	var zero T
	for i := n; i < len(p.items); i++ {
		p.items[i] = zero
	}
	p.items = p.items[:n]
	return removed
}

// Clear destroys every item, keeping the allocated capacity.
func (p *Pool[T]) Clear() {
	var zero T
	for i := range p.items {
		p.items[i] = zero
	}
	p.items = p.items[:0]
}
