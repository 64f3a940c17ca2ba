package domain

import (
	"cmp"
	"slices"
	"unique"
)

// ModuleIdentifier is the interned, globally unique identifier of a module.
// Identifiers are compared by handle for equality and by text for ordering.
type ModuleIdentifier struct {
	h unique.Handle[string]
}

// NewModuleIdentifier interns s and returns its identifier.
func NewModuleIdentifier(s string) ModuleIdentifier {
	return ModuleIdentifier{
		h: unique.Make(s),
	}
}

// String returns the underlying identifier text.
func (id ModuleIdentifier) String() string {
	var zero unique.Handle[string]
	if id.h == zero {
		return ""
	}
	return id.h.Value()
}

// IsZero reports whether the identifier was never set.
func (id ModuleIdentifier) IsZero() bool {
	var zero unique.Handle[string]
	return id.h == zero
}

// Compare orders identifiers by their text.
func (id ModuleIdentifier) Compare(other ModuleIdentifier) int {
	if id.h == other.h {
		return 0
	}
	return cmp.Compare(id.String(), other.String())
}

// MarshalText implements encoding.TextMarshaler.
func (id ModuleIdentifier) MarshalText() ([]byte, error) {
	return []byte(id.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (id *ModuleIdentifier) UnmarshalText(text []byte) error {
	id.h = unique.Make(string(text))
	return nil
}

// CompareModuleIdentifiers is a comparison function for slices.SortFunc.
func CompareModuleIdentifiers(a, b ModuleIdentifier) int {
	return a.Compare(b)
}

// SortModuleIdentifiers sorts ids in place by identifier text.
func SortModuleIdentifiers(ids []ModuleIdentifier) {
	slices.SortFunc(ids, CompareModuleIdentifiers)
}

// ModuleIdentifierSet is an unordered set of module identifiers.
type ModuleIdentifierSet map[ModuleIdentifier]struct{}

// NewModuleIdentifierSet returns a set holding ids.
func NewModuleIdentifierSet(ids ...ModuleIdentifier) ModuleIdentifierSet {
	s := make(ModuleIdentifierSet, len(ids))
	for _, id := range ids {
		s[id] = struct{}{}
	}
	return s
}

// Add inserts id and reports whether it was absent.
func (s ModuleIdentifierSet) Add(id ModuleIdentifier) bool {
	if _, ok := s[id]; ok {
		return false
	}
	s[id] = struct{}{}
	return true
}

// Has reports whether id is in the set.
func (s ModuleIdentifierSet) Has(id ModuleIdentifier) bool {
	_, ok := s[id]
	return ok
}

// Remove deletes id and reports whether it was present.
func (s ModuleIdentifierSet) Remove(id ModuleIdentifier) bool {
	if _, ok := s[id]; !ok {
		return false
	}
	delete(s, id)
	return true
}

// Sorted returns the members ordered by identifier text.
func (s ModuleIdentifierSet) Sorted() []ModuleIdentifier {
	out := make([]ModuleIdentifier, 0, len(s))
	for id := range s {
		out = append(out, id)
	}
	SortModuleIdentifiers(out)
	return out
}

// Clone returns a shallow copy of the set.
func (s ModuleIdentifierSet) Clone() ModuleIdentifierSet {
	out := make(ModuleIdentifierSet, len(s))
	for id := range s {
		out[id] = struct{}{}
	}
	return out
}
