package mmaperrors

import "errors"

var (
	ErrMisalignedOffset = errors.New("offset is not a multiple of the page size")
	ErrInvalidLength    = errors.New("length must be strictly positive")
	ErrBadDescriptor    = errors.New("bad file descriptor")
	ErrAlreadyReleased  = errors.New("mapping already released")
	ErrViewInvalid      = errors.New("byte view invalidated by release") // accessing mapped memory after Release is a use-after-release bug in the caller
)
