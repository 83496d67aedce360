package kuku

import (
	"errors"
	"fmt"
)

// The error taxonomy mirrors how failures are recovered from: everything
// wrapping ErrDomain is a business-rule violation that the shell catches,
// displays, and survives. Anything else is considered fatal.
var (
	// ErrDomain is the root of all recoverable business-rule violations.
	ErrDomain = errors.New("domain error")

	// ErrAuth covers not-logged-in, bad credentials and missing privileges.
	// It is a specialization of ErrDomain.
	ErrAuth = errors.New("auth error")

	// ErrNotFound reports a missing user, portfolio or ticker.
	// It is a specialization of ErrDomain.
	ErrNotFound = errors.New("not found")
)

// domainErr carries a human-readable message and matches both its own
// sentinel and ErrDomain under errors.Is.
type domainErr struct {
	sentinel error
	msg      string
}

func (e *domainErr) Error() string { return e.msg }

func (e *domainErr) Is(target error) bool {
	return target == ErrDomain || target == e.sentinel
}

// Domainf returns a business-rule violation error.
func Domainf(format string, args ...any) error {
	return &domainErr{sentinel: ErrDomain, msg: fmt.Sprintf(format, args...)}
}

// Authf returns an authentication/authorization error.
func Authf(format string, args ...any) error {
	return &domainErr{sentinel: ErrAuth, msg: fmt.Sprintf(format, args...)}
}

// NotFoundf returns a missing-entity error.
func NotFoundf(format string, args ...any) error {
	return &domainErr{sentinel: ErrNotFound, msg: fmt.Sprintf(format, args...)}
}
