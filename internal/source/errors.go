package source

import "errors"

var (
	// ErrNotFound indicates the catalog source does not exist or cannot
	// be reached at all (missing file, HTTP 404).
	ErrNotFound = errors.New("catalog source not found")

	// ErrParse indicates the catalog content does not match the expected
	// shape (invalid JSON/HTML, missing fields, duplicate ids).
	ErrParse = errors.New("catalog content is malformed")
)
