package ecc

import "github.com/pkg/errors"

var (
	// ErrInvalidParameters is returned when the requested parameters can never describe a code,
	// e.g. a non-positive number of data bits or an even number of repetitions.
	ErrInvalidParameters = errors.New("invalid code parameters")

	// ErrNoSuchCode is returned when no code with the requested parameters exists
	// within the supported search space.
	ErrNoSuchCode = errors.New("no such code")

	// ErrIntegrity is returned when a persisted code fails its consistency checks.
	ErrIntegrity = errors.New("code integrity check failed")

	// ErrUnimplemented is returned by operations a code family does not support.
	ErrUnimplemented = errors.New("unimplemented")

	// ErrUnknownScheme is returned for unrecognized scheme tags.
	ErrUnknownScheme = errors.New("unknown ecc scheme")
)
