package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sebastien78370/spring-data-marklogic/marklogic/cts"
	"github.com/Sebastien78370/spring-data-marklogic/marklogic/query"
)

func TestDecodeEmptyDescriptor(t *testing.T) {
	q, err := decodeQuery([]byte(`{}`))
	require.NoError(t, err)

	expression, err := cts.Serialize(q)
	require.NoError(t, err)
	assert.Equal(t, "search(collection(), (), ())", expression)
}

func TestDecodePopulatedDescriptor(t *testing.T) {
	input := `{
		"collection": "Collection1",
		"criteria": {
			"operator": "and",
			"children": [
				{"name": "name", "value": "Me"},
				{"name": "town", "value": "Paris"}
			]
		},
		"sort": [
			{"name": "age", "descending": true},
			{"name": "lastname"}
		],
		"skip": 0,
		"limit": 10
	}`

	q, err := decodeQuery([]byte(input))
	require.NoError(t, err)

	expression, err := cts.Serialize(q)
	require.NoError(t, err)
	assert.Equal(t,
		"search(collection('Collection1'), and-query((element-value-query(QName('', 'name'), 'Me'), element-value-query(QName('', 'town'), 'Paris'))), (index-order(element-reference(QName('', 'age')), ('descending')), index-order(element-reference(QName('', 'lastname')), ('ascending'))))[1 to 10]",
		expression)
}

func TestDecodeNamespacedLeaf(t *testing.T) {
	input := `{"criteria": {"namespace": "http://example.com/ns", "name": "town", "value": "Paris"}}`

	q, err := decodeQuery([]byte(input))
	require.NoError(t, err)

	c := q.Criteria().Unwrap()
	assert.False(t, c.IsComposite())
	assert.Equal(t, "http://example.com/ns", c.Name().NamespaceURI())
	assert.Equal(t, "town", c.Name().Local())
	assert.Equal(t, "Paris", c.Value())
}

func TestDecodeRejectsEmptyComposite(t *testing.T) {
	_, err := decodeQuery([]byte(`{"criteria": {"operator": "and"}}`))
	require.Error(t, err)
	assert.ErrorIs(t, err, query.ErrInvalidCriteria)
}

func TestDecodeRejectsUnknownOperator(t *testing.T) {
	input := `{"criteria": {"operator": "xor", "children": [{"name": "a", "value": 1}]}}`

	_, err := decodeQuery([]byte(input))
	require.Error(t, err)
	assert.ErrorIs(t, err, query.ErrInvalidCriteria)
}

func TestDecodeRejectsInvalidPagination(t *testing.T) {
	_, err := decodeQuery([]byte(`{"limit": -1, "skip": -2}`))
	require.Error(t, err)
	assert.ErrorContains(t, err, "limit must be positive")
	assert.ErrorContains(t, err, "skip must be non-negative")
}

func TestDecodeRejectsMalformedJSON(t *testing.T) {
	_, err := decodeQuery([]byte(`{"collection":`))
	require.Error(t, err)
	assert.ErrorContains(t, err, "decoding query descriptor")
}

func TestApplyOverridesLeavesDescriptorAlone(t *testing.T) {
	// With no flags set on the command line, overrides must not touch the
	// descriptor.
	doc := queryDoc{Collection: "Original"}

	applyOverrides(&doc)

	assert.Equal(t, "Original", doc.Collection)
	assert.Nil(t, doc.Limit)
	assert.Nil(t, doc.Skip)
}
