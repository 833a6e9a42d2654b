package query

import (
	"github.com/pkg/errors"
)

// ErrInvalidCriteria reports a malformed criteria tree, such as a composite
// node constructed with no children. It is a programming error, not a
// runtime condition: retrying the same tree cannot succeed.
var ErrInvalidCriteria = errors.New("query: invalid criteria")

// Operator combines the children of a composite criteria node.
type Operator string

const (
	OperatorAnd Operator = "and"
	OperatorOr  Operator = "or"
)

type criteriaKind int

const (
	kindLeaf criteriaKind = iota
	kindComposite
)

// Criteria is an immutable predicate tree node. A leaf matches a single
// element value by equality; a composite combines its children with a
// boolean operator. The zero value is a leaf matching the empty name
// against the empty value.
type Criteria struct {
	kind criteriaKind

	// leaf
	name  QName
	value any

	// composite
	operator Operator
	children []Criteria
}

// Match creates a leaf criteria matching the named element against value.
// The value is kept as-is and stringified at serialization time.
func Match(name QName, value any) Criteria {
	return Criteria{
		kind:  kindLeaf,
		name:  name,
		value: value,
	}
}

// NewComposite creates a composite criteria combining children with the
// given operator. Fails with ErrInvalidCriteria when children is empty or
// the operator is not and/or.
func NewComposite(operator Operator, children []Criteria) (Criteria, error) {
	if operator != OperatorAnd && operator != OperatorOr {
		return Criteria{}, errors.Wrapf(ErrInvalidCriteria, "unsupported operator %q", operator)
	}
	if len(children) == 0 {
		return Criteria{}, errors.Wrap(ErrInvalidCriteria, "composite requires at least one child")
	}
	owned := make([]Criteria, len(children))
	copy(owned, children)
	return Criteria{
		kind:     kindComposite,
		operator: operator,
		children: owned,
	}, nil
}

// And combines criteria with the "and" operator. Non-empty by construction.
func And(first Criteria, rest ...Criteria) Criteria {
	return composite(OperatorAnd, first, rest)
}

// Or combines criteria with the "or" operator. Non-empty by construction.
func Or(first Criteria, rest ...Criteria) Criteria {
	return composite(OperatorOr, first, rest)
}

func composite(operator Operator, first Criteria, rest []Criteria) Criteria {
	children := make([]Criteria, 0, 1+len(rest))
	children = append(children, first)
	children = append(children, rest...)
	return Criteria{
		kind:     kindComposite,
		operator: operator,
		children: children,
	}
}

// IsComposite reports whether the node is a composite.
func (c Criteria) IsComposite() bool {
	return c.kind == kindComposite
}

// Name returns the qualified element name of a leaf node.
func (c Criteria) Name() QName {
	return c.name
}

// Value returns the match value of a leaf node.
func (c Criteria) Value() any {
	return c.value
}

// Operator returns the boolean operator of a composite node.
func (c Criteria) Operator() Operator {
	return c.operator
}

// Children returns a copy of a composite node's child list.
func (c Criteria) Children() []Criteria {
	if c.children == nil {
		return nil
	}
	out := make([]Criteria, len(c.children))
	copy(out, c.children)
	return out
}
