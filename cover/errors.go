package cover

import "errors"

// ErrUnassignedVariable is returned only when the Engine was built with
// WithDebug(true) and GetCover's precondition — every cover-eligible
// variable already has a truth value — is violated. Without debug mode
// this is a programmer error and is not checked.
var ErrUnassignedVariable = errors.New("cover: eligible variable has no assigned value")
