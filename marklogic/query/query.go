package query

import (
	"github.com/Sebastien78370/spring-data-marklogic/marklogic/option"
)

// Query is the descriptor consumed by the serializer: an optional target
// collection, an optional criteria tree, optional pagination bounds and an
// optional sort specification. Every field is independent; an entirely
// empty Query means "match everything, everywhere, in default order".
//
// A Query is constructed once (see NewQueryBuilder), read by the
// serializer and never mutated.
type Query struct {
	collection option.Option[string]
	criteria   option.Option[Criteria]
	skip       option.Option[int64]
	limit      option.Option[int64]
	sort       []SortCriteria
}

// Collection returns the target collection name, if any. Nothing means
// "search all collections".
func (q Query) Collection() option.Option[string] {
	return q.collection
}

// Criteria returns the criteria tree, if any. Nothing means an
// unconditional match.
func (q Query) Criteria() option.Option[Criteria] {
	return q.criteria
}

// Skip returns the pagination offset, if requested. A skip without a limit
// is valid but produces no pagination clause.
func (q Query) Skip() option.Option[int64] {
	return q.skip
}

// Limit returns the result-count bound, if requested. Setting a limit is
// what triggers the pagination clause; skip then defaults to 0.
func (q Query) Limit() option.Option[int64] {
	return q.limit
}

// Sort returns a copy of the sort specification, first entry highest
// precedence. Empty means the engine's default order.
func (q Query) Sort() []SortCriteria {
	if q.sort == nil {
		return nil
	}
	out := make([]SortCriteria, len(q.sort))
	copy(out, q.sort)
	return out
}
