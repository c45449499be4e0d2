package ctrl

import "errors"

// ErrNotFound is returned when a device is not found or the supplied
// code is malformed.
var ErrNotFound = errors.New("not found")

// ErrUserNotFound is returned when no user owns the supplied phone number.
var ErrUserNotFound = errors.New("user not found")

// ErrCodeExpired is returned when a pairing code is redeemed past its window.
var ErrCodeExpired = errors.New("pairing code expired")

// ErrAlreadyConnected is returned when a device is claimed by a different user.
var ErrAlreadyConnected = errors.New("device already connected to another user")

// ErrCodeAllocation is returned when the code-generation attempt budget
// is exhausted without finding a free code.
var ErrCodeAllocation = errors.New("could not allocate a unique pairing code")

// ErrConnectionNotFound is returned when a status update matches no
// connection rows.
var ErrConnectionNotFound = errors.New("connection not found")
