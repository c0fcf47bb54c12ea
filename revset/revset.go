// Package revset implements a reversible index vector: an unordered set of
// small, dense non-negative indices supporting O(1) delete and O(1) restore,
// provided restores are issued in the exact reverse order of the matching
// deletes. It is the simplest of the core's reversible containers and the
// one the others (skipvec, hgraph) build their own discipline on top of.
//
// Steps (delete):
//  1. Look up the live position of the deleted id.
//  2. Swap it with the id at the end of the live prefix.
//  3. Shrink the live prefix by one.
//
// Steps (restore):
//  1. Grow the live prefix by one.
//  2. Swap the id now exposed at the new live boundary back into the stored
//     position of the restored id.
//
// Complexity: O(1) time and space for Delete/Restore/IsDeleted; Live is a
// zero-copy slice of the current live prefix.
package revset

// Set is a reversible, order-agnostic collection of small dense ids.
// The zero value is not usable; construct with New.
type Set struct {
	ids  []uint32 // ids[:live] are live, ids[live:] are deleted
	pos  []uint32 // pos[id] = index into ids where id currently sits
	live int
}

// New builds a Set with every id in ids marked live. ids must contain
// distinct values; callers (hgraph) are responsible for that invariant.
func New(ids []uint32) *Set {
	s := &Set{
		ids: append([]uint32(nil), ids...),
	}
	maxID := uint32(0)
	for _, id := range ids {
		if id+1 > maxID {
			maxID = id + 1
		}
	}
	s.pos = make([]uint32, maxID)
	for i, id := range s.ids {
		s.pos[id] = uint32(i)
	}
	s.live = len(s.ids)
	return s
}

// Delete marks id as no longer live. id must currently be live.
func (s *Set) Delete(id uint32) {
	i := s.pos[id]
	last := uint32(s.live - 1)
	other := s.ids[last]
	s.ids[i], s.ids[last] = other, id
	s.pos[id] = last
	s.pos[other] = i
	s.live--
}

// Restore re-inserts id into the live set. The sequence of Restore calls on
// a Set must be the exact reverse of the sequence of Delete calls.
func (s *Set) Restore(id uint32) {
	i := s.pos[id]
	boundary := uint32(s.live)
	other := s.ids[boundary]
	s.ids[i], s.ids[boundary] = other, id
	s.pos[id] = boundary
	s.pos[other] = i
	s.live++
}

// Live returns the currently live ids in arbitrary order. The returned
// slice aliases internal storage and is only valid until the next mutation.
func (s *Set) Live() []uint32 {
	return s.ids[:s.live]
}

// Len reports the number of currently live ids.
func (s *Set) Len() int {
	return s.live
}

// IsDeleted reports whether id is currently deleted.
func (s *Set) IsDeleted(id uint32) bool {
	return s.pos[id] >= uint32(s.live)
}
