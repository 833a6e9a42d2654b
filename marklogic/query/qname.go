package query

// QName identifies a structured-document element by namespace URI and
// local name, mirroring xs:QName in the target engine.
type QName struct {
	namespaceURI string
	localName    string
}

// NewQName creates a qualified name from a namespace URI and a local name.
func NewQName(namespaceURI, localName string) QName {
	return QName{
		namespaceURI: namespaceURI,
		localName:    localName,
	}
}

// LocalName creates a qualified name with an empty namespace URI.
func LocalName(localName string) QName {
	return NewQName("", localName)
}

// NamespaceURI returns the namespace URI, possibly empty.
func (q QName) NamespaceURI() string {
	return q.namespaceURI
}

// Local returns the local part of the name.
func (q QName) Local() string {
	return q.localName
}
