package entities

import "errors"

var (
	// ErrMarkerNotFound is returned when a document has no marker to insert before
	ErrMarkerNotFound = errors.New("marker not found in document")

	// ErrDocumentNotFound is returned when the README for a diagram does not exist
	ErrDocumentNotFound = errors.New("document not found")

	// ErrMalformedPath is returned for discovered paths that cannot be decomposed
	ErrMalformedPath = errors.New("malformed diagram path")

	// ErrSignatureMissing is returned when signing is enabled and a diagram has no signature file
	ErrSignatureMissing = errors.New("diagram signature missing")

	// ErrSignatureInvalid is returned when a diagram signature does not verify
	ErrSignatureInvalid = errors.New("diagram signature invalid")

	// ErrInvalidConfig is returned by Config.Validate
	ErrInvalidConfig = errors.New("invalid configuration")
)
