package filter

// NameSet tracks company names already claimed in this run or a prior page
// of results. First-seen wins: the set is passed explicitly at every call
// boundary rather than living in ambient state, so "load more" can seed it
// from already-emitted records.
type NameSet map[string]struct{}

// NewNameSet builds a NameSet from the given names.
func NewNameSet(names ...string) NameSet {
	s := make(NameSet, len(names))
	for _, n := range names {
		s.Add(n)
	}
	return s
}

// Add records a name as seen.
func (s NameSet) Add(name string) {
	if name != "" {
		s[name] = struct{}{}
	}
}

// Has reports whether the name was already seen.
func (s NameSet) Has(name string) bool {
	_, ok := s[name]
	return ok
}
