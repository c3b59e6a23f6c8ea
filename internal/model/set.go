package model

// StringSet is an insertion-ordered set of strings. Discovery order is
// significant: the first element of an email/phone set becomes the record's
// primary contact, so Add must preserve the order in which values were found.
type StringSet struct {
	values []string
	index  map[string]struct{}
}

// NewStringSet creates a StringSet seeded with the given values.
func NewStringSet(values ...string) *StringSet {
	s := &StringSet{index: make(map[string]struct{})}
	for _, v := range values {
		s.Add(v)
	}
	return s
}

// Add appends v if it is non-empty and not already present.
// Returns true if the value was added.
func (s *StringSet) Add(v string) bool {
	if v == "" {
		return false
	}
	if _, ok := s.index[v]; ok {
		return false
	}
	s.index[v] = struct{}{}
	s.values = append(s.values, v)
	return true
}

// AddAll merges every value from other, preserving other's order.
func (s *StringSet) AddAll(other *StringSet) {
	if other == nil {
		return
	}
	for _, v := range other.values {
		s.Add(v)
	}
}

// Contains reports whether v is in the set.
func (s *StringSet) Contains(v string) bool {
	_, ok := s.index[v]
	return ok
}

// Values returns the set contents in insertion order. The returned slice is a
// copy and safe to retain.
func (s *StringSet) Values() []string {
	out := make([]string, len(s.values))
	copy(out, s.values)
	return out
}

// First returns the earliest-added value, or "" for an empty set.
func (s *StringSet) First() string {
	if len(s.values) == 0 {
		return ""
	}
	return s.values[0]
}

// Len returns the number of values in the set.
func (s *StringSet) Len() int {
	return len(s.values)
}
