// Package followset provides the set of account identifiers used for both the
// cached and the live follow lists.
//
// A Set has no ordering. It serializes to a JSON array of strings and
// collapses duplicates when decoding one.
package followset

import (
	"encoding/json"
	"sort"
)

// Set is a set of account identifiers
type Set map[string]struct{}

// New creates a set holding the given identifiers
func New(ids ...string) Set {
	s := make(Set, len(ids))
	for _, id := range ids {
		s[id] = struct{}{}
	}
	return s
}

// Add inserts an identifier
func (s Set) Add(id string) {
	s[id] = struct{}{}
}

// Remove deletes an identifier if present
func (s Set) Remove(id string) {
	delete(s, id)
}

// Contains reports whether id is in the set
func (s Set) Contains(id string) bool {
	_, ok := s[id]
	return ok
}

// Len returns the number of identifiers
func (s Set) Len() int {
	return len(s)
}

// IsEmpty reports whether the set has no identifiers
func (s Set) IsEmpty() bool {
	return len(s) == 0
}

// Difference returns the identifiers in s that are not in other
func (s Set) Difference(other Set) Set {
	out := make(Set)
	for id := range s {
		if !other.Contains(id) {
			out[id] = struct{}{}
		}
	}
	return out
}

// IsSubsetOf reports whether every identifier in s is also in other
func (s Set) IsSubsetOf(other Set) bool {
	for id := range s {
		if !other.Contains(id) {
			return false
		}
	}
	return true
}

// Equal reports whether both sets hold the same identifiers
func (s Set) Equal(other Set) bool {
	return len(s) == len(other) && s.IsSubsetOf(other)
}

// Clone returns an independent copy
func (s Set) Clone() Set {
	out := make(Set, len(s))
	for id := range s {
		out[id] = struct{}{}
	}
	return out
}

// Sorted returns the identifiers in lexical order, for display
func (s Set) Sorted() []string {
	ids := make([]string, 0, len(s))
	for id := range s {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// MarshalJSON encodes the set as a JSON array of strings
func (s Set) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Sorted())
}

// UnmarshalJSON decodes a JSON array of strings into the set
func (s *Set) UnmarshalJSON(data []byte) error {
	var ids []string
	if err := json.Unmarshal(data, &ids); err != nil {
		return err
	}
	*s = New(ids...)
	return nil
}
