package models

import "errors"

// ErrDuplicate is returned by stores when a write violates a unique constraint.
var ErrDuplicate = errors.New("duplicate key")
