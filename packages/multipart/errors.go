package multipart

import "errors"

// Sentinel errors for part construction and encoding. Returned errors wrap
// these with context; match with errors.Is.
var (
	// ErrInvalidFile indicates a source file could not be stat'd or opened,
	// or the output temp file could not be created.
	ErrInvalidFile = errors.New("multipart: invalid file")

	// ErrInvalidOutputFile indicates the output file's final size could not
	// be measured after writing.
	ErrInvalidOutputFile = errors.New("multipart: invalid output file")

	// ErrStream indicates a read or write failed, or came up short,
	// mid-encode.
	ErrStream = errors.New("multipart: stream error")

	// ErrTooMuchData indicates the total payload is too large for memory
	// encoding; use EncodeToFile instead.
	ErrTooMuchData = errors.New("multipart: too much data for memory encoding")
)
