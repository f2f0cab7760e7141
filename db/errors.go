package db

import "errors"

var (
	// ErrAttrUnknown is returned when a put or get names an attribute the
	// database was not created with.
	ErrAttrUnknown = errors.New("unknown attribute")

	// ErrDocMissing is returned by Doc and Attr for a doc id that was
	// never assigned, and by Attr for a document that stored no value
	// under the named attribute.
	ErrDocMissing = errors.New("document not found")

	// ErrTooManyAttrs is returned by Create when more than MaxAttrs
	// attribute names are declared.
	ErrTooManyAttrs = errors.New("too many attributes")

	// ErrBadAttrName is returned by Create for an empty attribute name or
	// one that cannot name a store file.
	ErrBadAttrName = errors.New("invalid attribute name")
)
