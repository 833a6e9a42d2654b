// Package cts compiles query descriptors into the textual form of the
// engine's CTS search language. Serialization is pure: no I/O, no shared
// state, safe for concurrent use on independent descriptors.
package cts

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/Sebastien78370/spring-data-marklogic/marklogic/query"
)

// SerializerOption configures a Serializer.
type SerializerOption func(*Serializer)

// Prefixed applies the engine's lexical convention uniformly: "cts:" on
// query constructors and "fn:" on collection() and QName(). The structure
// of the output is identical either way.
func Prefixed() SerializerOption {
	return func(s *Serializer) {
		s.ctsPrefix = "cts:"
		s.fnPrefix = "fn:"
	}
}

// NewSerializer creates a Serializer. Without options the output carries
// no namespace prefixes.
func NewSerializer(opts ...SerializerOption) *Serializer {
	s := &Serializer{}
	for i := range opts {
		opts[i](s)
	}
	return s
}

// Serializer turns a query descriptor into a single search expression.
// It holds only the prefix convention; each Serialize call builds into its
// own buffer.
type Serializer struct {
	ctsPrefix string
	fnPrefix  string
}

// Serialize compiles a descriptor according to the search grammar:
//
//	search(<collection>, <criteria>, <sort>)[<skip+1> to <skip+limit>]
//
// The pagination suffix appears only when a limit is set; skip defaults
// to 0. The only possible failure is a composite criteria node with no
// children, which the constructors make unreachable. No partial output is
// ever returned.
func (s *Serializer) Serialize(q query.Query) (string, error) {
	var b strings.Builder

	b.WriteString(s.ctsPrefix)
	b.WriteString("search(")
	s.writeCollection(&b, q.Collection().UnwrapOrZero(), q.Collection().IsSome())
	b.WriteString(", ")
	if q.Criteria().IsSome() {
		if err := s.writeCriteria(&b, q.Criteria().Unwrap()); err != nil {
			return "", err
		}
	} else {
		b.WriteString("()")
	}
	b.WriteString(", ")
	s.writeSort(&b, q.Sort())
	b.WriteString(")")
	s.writePagination(&b, q)

	return b.String(), nil
}

// Serialize compiles a descriptor with the default (unprefixed) convention.
func Serialize(q query.Query) (string, error) {
	return NewSerializer().Serialize(q)
}

func (s *Serializer) writeCollection(b *strings.Builder, name string, named bool) {
	b.WriteString(s.fnPrefix)
	if named {
		b.WriteString("collection('")
		b.WriteString(name)
		b.WriteString("')")
	} else {
		b.WriteString("collection()")
	}
}

func (s *Serializer) writeCriteria(b *strings.Builder, c query.Criteria) error {
	if !c.IsComposite() {
		b.WriteString(s.ctsPrefix)
		b.WriteString("element-value-query(")
		s.writeQName(b, c.Name())
		b.WriteString(", '")
		b.WriteString(query.FormatValue(c.Value()))
		b.WriteString("')")
		return nil
	}

	children := c.Children()
	if len(children) == 0 {
		return errors.Wrap(query.ErrInvalidCriteria, "cannot serialize composite with no children")
	}
	b.WriteString(s.ctsPrefix)
	b.WriteString(string(c.Operator()))
	b.WriteString("-query((")
	for i, child := range children {
		if i > 0 {
			b.WriteString(", ")
		}
		if err := s.writeCriteria(b, child); err != nil {
			return err
		}
	}
	b.WriteString("))")
	return nil
}

func (s *Serializer) writeSort(b *strings.Builder, entries []query.SortCriteria) {
	if len(entries) == 0 {
		b.WriteString("()")
		return
	}
	b.WriteString("(")
	for i, entry := range entries {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(s.ctsPrefix)
		b.WriteString("index-order(")
		b.WriteString(s.ctsPrefix)
		b.WriteString("element-reference(")
		s.writeQName(b, entry.Name())
		b.WriteString("), ('")
		if entry.Descending() {
			b.WriteString("descending")
		} else {
			b.WriteString("ascending")
		}
		b.WriteString("'))")
	}
	b.WriteString(")")
}

func (s *Serializer) writeQName(b *strings.Builder, name query.QName) {
	b.WriteString(s.fnPrefix)
	b.WriteString("QName('")
	b.WriteString(name.NamespaceURI())
	b.WriteString("', '")
	b.WriteString(name.Local())
	b.WriteString("')")
}

// writePagination appends the 1-based inclusive slice when a limit is set:
// skip=0, limit=10 yields [1 to 10].
func (s *Serializer) writePagination(b *strings.Builder, q query.Query) {
	if q.Limit().IsNothing() {
		return
	}
	skip := q.Skip().UnwrapOrZero()
	limit := q.Limit().Unwrap()
	b.WriteString("[")
	b.WriteString(strconv.FormatInt(skip+1, 10))
	b.WriteString(" to ")
	b.WriteString(strconv.FormatInt(skip+limit, 10))
	b.WriteString("]")
}
