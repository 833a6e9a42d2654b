package main

import (
	"encoding/json"

	"github.com/pkg/errors"

	"github.com/Sebastien78370/spring-data-marklogic/marklogic/query"
)

// queryDoc is the JSON wire form of a query descriptor. Absent fields stay
// absent in the resulting Query; pointer fields keep an explicit 0 apart
// from "not set".
type queryDoc struct {
	Collection string       `json:"collection,omitempty"`
	Criteria   *criteriaDoc `json:"criteria,omitempty"`
	Sort       []sortDoc    `json:"sort,omitempty"`
	Skip       *int64       `json:"skip,omitempty"`
	Limit      *int64       `json:"limit,omitempty"`
}

// criteriaDoc is either a leaf (namespace/name/value) or a composite
// (operator/children); a non-empty operator selects the composite form.
type criteriaDoc struct {
	Operator string        `json:"operator,omitempty"`
	Children []criteriaDoc `json:"children,omitempty"`

	Namespace string `json:"namespace,omitempty"`
	Name      string `json:"name,omitempty"`
	Value     any    `json:"value,omitempty"`
}

type sortDoc struct {
	Namespace  string `json:"namespace,omitempty"`
	Name       string `json:"name"`
	Descending bool   `json:"descending,omitempty"`
}

func decodeDescriptor(data []byte) (queryDoc, error) {
	var doc queryDoc
	if len(data) == 0 {
		return doc, nil
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		return queryDoc{}, errors.Wrap(err, "decoding query descriptor")
	}
	return doc, nil
}

func decodeQuery(data []byte) (query.Query, error) {
	doc, err := decodeDescriptor(data)
	if err != nil {
		return query.Query{}, err
	}
	return doc.toQuery()
}

func (d queryDoc) toQuery() (query.Query, error) {
	b := query.NewQueryBuilder()
	if d.Collection != "" {
		b.Collection(d.Collection)
	}
	if d.Criteria != nil {
		c, err := d.Criteria.toCriteria()
		if err != nil {
			return query.Query{}, err
		}
		b.Criteria(c)
	}
	for _, s := range d.Sort {
		name := query.NewQName(s.Namespace, s.Name)
		if s.Descending {
			b.SortByDescending(name)
		} else {
			b.SortBy(name)
		}
	}
	if d.Skip != nil {
		b.Skip(*d.Skip)
	}
	if d.Limit != nil {
		b.Limit(*d.Limit)
	}
	return b.Build()
}

func (d criteriaDoc) toCriteria() (query.Criteria, error) {
	if d.Operator == "" {
		return query.Match(query.NewQName(d.Namespace, d.Name), d.Value), nil
	}
	children := make([]query.Criteria, 0, len(d.Children))
	for _, child := range d.Children {
		c, err := child.toCriteria()
		if err != nil {
			return query.Criteria{}, err
		}
		children = append(children, c)
	}
	return query.NewComposite(query.Operator(d.Operator), children)
}
