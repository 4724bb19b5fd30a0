package eventstream

import "errors"

// ErrNilServedEvent indicates a nil served event payload was provided to a publisher.
var ErrNilServedEvent = errors.New("nil served event")
