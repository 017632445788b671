package schema

import "errors"

var (
	// ErrParse is returned when a GraphQL IDL document is malformed
	ErrParse = errors.New("schema parse error")
	// ErrInvalidSchema is returned by Validate
	ErrInvalidSchema = errors.New("invalid schema")
)
