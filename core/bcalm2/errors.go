package bcalm2

import "errors"

var (
	ErrInvalidID          = errors.New("bcalm2: id is not a non-negative integer")
	ErrLengthMismatch     = errors.New("bcalm2: declared length differs from sequence length")
	ErrUnknownParameter   = errors.New("bcalm2: unknown parameter")
	ErrDuplicateParameter = errors.New("bcalm2: duplicate parameter")
	ErrMalformedParameter = errors.New("bcalm2: malformed parameter")
	ErrNodeWithoutMirror  = errors.New("bcalm2: node without mirror")
	ErrEdgeWithoutMirror  = errors.New("bcalm2: edge without mirror")
)
