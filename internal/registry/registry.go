// Package registry holds the fixed set of person IDs the API treats as
// existing.
//
// This is deliberately a configuration constant, not a stand-in for a
// missing database: the set is written once at startup and only ever read
// afterwards, so concurrent request handlers need no locking.
package registry

// DefaultPersonIDs is the reference set consulted by the person detail
// endpoint.
var DefaultPersonIDs = NewPersonIDs(1, 2, 3, 4, 5)

// PersonIDs is a read-only membership set of known person identifiers.
type PersonIDs struct {
	ids map[int]struct{}
}

// NewPersonIDs builds a set from the given identifiers.
func NewPersonIDs(ids ...int) PersonIDs {
	set := make(map[int]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return PersonIDs{ids: set}
}

// Contains reports whether id is a member of the set.
func (p PersonIDs) Contains(id int) bool {
	_, ok := p.ids[id]
	return ok
}

// Len returns the number of known identifiers.
func (p PersonIDs) Len() int {
	return len(p.ids)
}
