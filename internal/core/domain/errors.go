package domain

import "errors"

// Sentinel errors. Callers match them with errors.Is; adapters wrap them
// with the offending file or key.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnsupportedType indicates no normaliser handles the document type.
	ErrUnsupportedType = errors.New("unsupported type")

	// Conversion Errors.

	// ErrUnsupportedInput indicates the input file is not an .xml file.
	// It is raised before any parsing is attempted.
	ErrUnsupportedInput = errors.New("unsupported input: not an xml file")

	// ErrMalformedDocument indicates the XML could not be parsed.
	// Conversions are never retried; the document itself is at fault.
	ErrMalformedDocument = errors.New("malformed xml document")

	// Settings Errors.

	// ErrUnknownSetting indicates a settings key that does not exist.
	ErrUnknownSetting = errors.New("unknown setting")
)
