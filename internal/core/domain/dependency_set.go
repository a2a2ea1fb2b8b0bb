package domain

import (
	"slices"
	"strings"
)

// DependencySet is an ordered set of package names. The zero value is empty and usable.
type DependencySet struct {
	names []string
	index map[string]struct{}
}

// NewDependencySet builds a set from names, keeping the first occurrence of duplicates.
func NewDependencySet(names ...string) DependencySet {
	var s DependencySet
	for _, n := range names {
		s.Add(n)
	}
	return s
}

// ParsePackageList parses the whitespace and newline delimited output of
// `composer show --name-only`.
func ParsePackageList(output string) DependencySet {
	return NewDependencySet(strings.Fields(output)...)
}

// Add inserts name if it is not present yet.
func (s *DependencySet) Add(name string) {
	if name == "" {
		return
	}
	if s.index == nil {
		s.index = make(map[string]struct{})
	}
	if _, ok := s.index[name]; ok {
		return
	}
	s.index[name] = struct{}{}
	s.names = append(s.names, name)
}

// Contains reports whether name is a member.
func (s DependencySet) Contains(name string) bool {
	_, ok := s.index[name]
	return ok
}

// Names returns the members in insertion order.
func (s DependencySet) Names() []string {
	return slices.Clone(s.names)
}

// Len returns the number of members.
func (s DependencySet) Len() int {
	return len(s.names)
}
