// Package uri generates content URIs for documents stored in the engine.
package uri

import (
	"fmt"

	"github.com/google/uuid"
)

const contentPattern = "/content/%s/%s.xml"

// ForType returns a fresh content URI for a document of the given entity
// type, in the form "/content/<type>/<uuid>.xml". Each call yields a
// distinct URI.
func ForType(typeName string) string {
	return ForTypeWithID(typeName, uuid.NewString())
}

// ForTypeWithID returns the content URI for a document of the given entity
// type with a caller-supplied identifier.
func ForTypeWithID(typeName, id string) string {
	return fmt.Sprintf(contentPattern, typeName, id)
}
