package routing

import "errors"

// ErrEndpointNotFound reports that the origin or destination antenna
// coordinate has no corresponding node in the generated graph, which happens
// with degenerate shape sets or an antenna landing exactly on a filtered
// obstacle spot.
var ErrEndpointNotFound = errors.New("endpoint not found in routing graph")

// ErrInvalidGeometry reports a request rectangle with negative width or
// height. Such input is rejected up front rather than letting it propagate
// into the output.
var ErrInvalidGeometry = errors.New("invalid geometry")
