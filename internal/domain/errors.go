package domain

import (
	"errors"
	"fmt"
)

// Document-level failures. Only these reject an ingestion; field and date
// problems degrade to NotDetermined instead.
var (
	// ErrMalformedDocument indicates the input is not well-formed XML.
	ErrMalformedDocument = errors.New("malformed document")

	// ErrUnrecognizedFormat indicates neither vendor signature was found.
	ErrUnrecognizedFormat = errors.New("unrecognized format")

	// ErrDocumentTooLarge indicates an upload above the configured size limit.
	ErrDocumentTooLarge = errors.New("document too large")

	// ErrInvalidMapping indicates a mapping table that cannot drive extraction.
	ErrInvalidMapping = errors.New("invalid mapping table")
)

// DocumentError reports a rejected ingestion for one source file.
type DocumentError struct {
	FileName string
	Err      error
}

// Error implements the error interface
func (e *DocumentError) Error() string {
	return fmt.Sprintf("document %s rejected: %v", e.FileName, e.Err)
}

// Unwrap implements errors.Unwrap
func (e *DocumentError) Unwrap() error {
	return e.Err
}

// NewDocumentError wraps err with the file it was raised for.
func NewDocumentError(fileName string, err error) *DocumentError {
	return &DocumentError{FileName: fileName, Err: err}
}
