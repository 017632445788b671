package rust

import "errors"

// ErrInvalidAttributeSyntax is returned when attribute text starts with
// neither "#!" nor "#".
var ErrInvalidAttributeSyntax = errors.New("invalid attribute syntax")
