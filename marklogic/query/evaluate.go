package query

// Document is a flat view of a document's element values, keyed by
// qualified name. It is the local counterpart of what the engine matches
// element-value queries against.
type Document map[QName]any

// Matches evaluates a criteria tree against a document. A leaf matches
// when the named element exists and its value, rendered with FormatValue,
// equals the rendered match value — the same equality the serialized query
// expresses remotely. Composites apply their boolean operator over the
// children.
func Matches(c Criteria, doc Document) bool {
	if !c.IsComposite() {
		value, ok := doc[c.Name()]
		return ok && FormatValue(value) == FormatValue(c.Value())
	}

	switch c.Operator() {
	case OperatorOr:
		for _, child := range c.children {
			if Matches(child, doc) {
				return true
			}
		}
		return false
	default: // and
		for _, child := range c.children {
			if !Matches(child, doc) {
				return false
			}
		}
		return true
	}
}
