package catalog

import "errors"

var (
	ErrUnknownServiceType   = errors.New("unknown service type")
	ErrDuplicateServiceType = errors.New("service type already registered")
	ErrNoPriceAvailable     = errors.New("no price available")
	ErrInvalidPrice         = errors.New("invalid price value")
	ErrUnknownBucket        = errors.New("unknown price bucket")
)
