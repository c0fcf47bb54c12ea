// Package skipvec implements a fixed-capacity sparse sequence: a slice of
// slots that can be deleted and later restored in strict LIFO order, with
// O(1) delete/restore and ascending/descending iteration that transparently
// skips deleted slots.
//
// The implementation is a doubly-linked free list threaded over the slot
// array in original index order. Deleting a slot splices it out of the live
// chain while leaving its own prev/next pointers untouched; restoring it
// splices it back in using those same pointers. This is only correct under
// the LIFO discipline spec'd for the container: by the time a slot is
// restored, any slot nested inside its delete/restore scope (including its
// immediate neighbors at delete time) has already been restored, so the
// saved pointers are still live and accurate.
package skipvec

// sentinel marks "no neighbor" in the linked list.
const sentinel = -1

// Vec is a fixed-capacity sparse sequence of values addressed by slot index.
type Vec[T any] struct {
	values []T
	next   []int
	prev   []int
	dead   []bool
	head   int
	tail   int
	count  int
}

// WithLen builds a Vec with n live slots, each holding a copy of fill.
func WithLen[T any](n int, fill T) *Vec[T] {
	v := &Vec[T]{
		values: make([]T, n),
		next:   make([]int, n),
		prev:   make([]int, n),
		dead:   make([]bool, n),
		head:   0,
		tail:   n - 1,
		count:  n,
	}
	for i := range v.values {
		v.values[i] = fill
		if i+1 < n {
			v.next[i] = i + 1
		} else {
			v.next[i] = sentinel
		}
		if i > 0 {
			v.prev[i] = i - 1
		} else {
			v.prev[i] = sentinel
		}
	}
	if n == 0 {
		v.head, v.tail = sentinel, sentinel
	}
	return v
}

// Set overwrites the value stored at slot, live or not.
func (v *Vec[T]) Set(slot int, val T) {
	v.values[slot] = val
}

// At returns the value stored at slot.
func (v *Vec[T]) At(slot int) T {
	return v.values[slot]
}

// Delete removes slot from the live chain. slot must currently be live.
func (v *Vec[T]) Delete(slot int) {
	p, n := v.prev[slot], v.next[slot]
	if p != sentinel {
		v.next[p] = n
	} else {
		v.head = n
	}
	if n != sentinel {
		v.prev[n] = p
	} else {
		v.tail = p
	}
	v.dead[slot] = true
	v.count--
}

// Restore re-inserts slot using the neighbor pointers captured at the time
// of its most recent Delete. Restore calls on a Vec must mirror the reverse
// order of Delete calls.
func (v *Vec[T]) Restore(slot int) {
	p, n := v.prev[slot], v.next[slot]
	if p != sentinel {
		v.next[p] = slot
	} else {
		v.head = slot
	}
	if n != sentinel {
		v.prev[n] = slot
	} else {
		v.tail = slot
	}
	v.dead[slot] = false
	v.count++
}

// Len reports the number of currently live slots.
func (v *Vec[T]) Len() int {
	return v.count
}

// IsDeleted reports whether slot is currently deleted.
func (v *Vec[T]) IsDeleted(slot int) bool {
	return v.dead[slot]
}

// Iter yields (slot, value) for live slots in ascending slot order.
func (v *Vec[T]) Iter(yield func(int, T) bool) {
	for i := v.head; i != sentinel; i = v.next[i] {
		if !yield(i, v.values[i]) {
			return
		}
	}
}

// IterRev yields (slot, value) for live slots in descending slot order.
func (v *Vec[T]) IterRev(yield func(int, T) bool) {
	for i := v.tail; i != sentinel; i = v.prev[i] {
		if !yield(i, v.values[i]) {
			return
		}
	}
}

// Take moves the Vec's contents out, resetting the receiver to an empty,
// zero-capacity Vec. The returned value can later be written back over the
// receiver (or another Vec variable) to restore it in full, breaking the
// aliasing that would otherwise occur when a vertex's own incidence list is
// traversed while incident edges are deleted elsewhere.
func (v *Vec[T]) Take() Vec[T] {
	old := *v
	*v = Vec[T]{head: sentinel, tail: sentinel}
	return old
}
