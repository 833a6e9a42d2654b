package query

import (
	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"

	"github.com/Sebastien78370/spring-data-marklogic/marklogic/option"
)

// QueryBuilder assembles a Query step by step. Zero or more of each aspect
// may be set; Build reports every violation at once instead of stopping at
// the first.
type QueryBuilder struct {
	collection option.Option[string]
	criteria   option.Option[Criteria]
	skip       option.Option[int64]
	limit      option.Option[int64]
	sort       []SortCriteria
}

// NewQueryBuilder creates an empty builder.
func NewQueryBuilder() *QueryBuilder {
	return &QueryBuilder{}
}

// Collection restricts the search to the named collection.
func (b *QueryBuilder) Collection(name string) *QueryBuilder {
	b.collection = option.Some(name)
	return b
}

// Criteria sets the predicate tree.
func (b *QueryBuilder) Criteria(c Criteria) *QueryBuilder {
	b.criteria = option.Some(c)
	return b
}

// Skip sets the number of results to skip. Only meaningful together with
// Limit; on its own it does not produce a pagination clause.
func (b *QueryBuilder) Skip(skip int64) *QueryBuilder {
	b.skip = option.Some(skip)
	return b
}

// Limit bounds the number of results and turns pagination on. When Skip is
// not set it defaults to 0.
func (b *QueryBuilder) Limit(limit int64) *QueryBuilder {
	b.limit = option.Some(limit)
	return b
}

// SortBy appends an ascending sort entry.
func (b *QueryBuilder) SortBy(name QName) *QueryBuilder {
	b.sort = append(b.sort, SortBy(name))
	return b
}

// SortByDescending appends a descending sort entry.
func (b *QueryBuilder) SortByDescending(name QName) *QueryBuilder {
	b.sort = append(b.sort, SortByDescending(name))
	return b
}

// Build validates the accumulated state and returns the immutable Query.
// All violations are collected into a single multierror.
func (b *QueryBuilder) Build() (Query, error) {
	var result *multierror.Error

	if b.limit.IsSome() && b.limit.Unwrap() <= 0 {
		result = multierror.Append(result, errors.Errorf("limit must be positive, got %d", b.limit.Unwrap()))
	}
	if b.skip.IsSome() && b.skip.Unwrap() < 0 {
		result = multierror.Append(result, errors.Errorf("skip must be non-negative, got %d", b.skip.Unwrap()))
	}
	if err := result.ErrorOrNil(); err != nil {
		return Query{}, err
	}

	sort := b.sort
	if sort != nil {
		sort = make([]SortCriteria, len(b.sort))
		copy(sort, b.sort)
	}
	return Query{
		collection: b.collection,
		criteria:   b.criteria,
		skip:       b.skip,
		limit:      b.limit,
		sort:       sort,
	}, nil
}
