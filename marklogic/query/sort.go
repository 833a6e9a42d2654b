package query

// SortCriteria is one (element, direction) entry of a sort specification.
// An ordered slice of entries defines multi-key sort precedence, first
// entry highest. Entries are not deduplicated: the same element may appear
// more than once and each occurrence is emitted independently.
type SortCriteria struct {
	name       QName
	descending bool
}

// SortBy creates an ascending sort entry.
func SortBy(name QName) SortCriteria {
	return SortCriteria{name: name}
}

// SortByDescending creates a descending sort entry.
func SortByDescending(name QName) SortCriteria {
	return SortCriteria{name: name, descending: true}
}

// Name returns the qualified element name the entry sorts on.
func (s SortCriteria) Name() QName {
	return s.name
}

// Descending reports whether the entry sorts in descending order.
func (s SortCriteria) Descending() bool {
	return s.descending
}
