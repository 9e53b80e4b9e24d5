package storemanager

import (
	"context"
	"errors"
	"net"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/reelvault/reelvault/internal/common"
)

// FailureKind classifies why a connection attempt failed. The retry decision
// belongs to the caller, not to this package.
type FailureKind int

const (
	// FailureUnknown covers everything not recognized below.
	FailureUnknown FailureKind = iota
	// FailureAuth means the store rejected our credentials. Retrying
	// without operator intervention will not help.
	FailureAuth
	// FailureNetwork means a transient transport problem (refused,
	// timeout, DNS). Safe to retry.
	FailureNetwork
)

func (k FailureKind) String() string {
	switch k {
	case FailureAuth:
		return "authentication"
	case FailureNetwork:
		return "network"
	default:
		return "unknown"
	}
}

// ConnectError is the error returned to every caller waiting on a failed
// connection attempt. It matches common.ErrorStoreUnavailable via errors.Is.
type ConnectError struct {
	Kind FailureKind
	Err  error
}

func (e *ConnectError) Error() string {
	return "store unavailable (" + e.Kind.String() + "): " + e.Err.Error()
}

func (e *ConnectError) Unwrap() error { return e.Err }

func (e *ConnectError) Is(target error) bool {
	return target == common.ErrorStoreUnavailable
}

func classify(err error) *ConnectError {
	kind := FailureUnknown

	var pgErr *pgconn.PgError
	var netErr net.Error

	switch {
	case errors.As(err, &pgErr) && pgerrcode.IsInvalidAuthorizationSpecification(pgErr.Code):
		kind = FailureAuth
	case errors.As(err, &netErr),
		errors.Is(err, context.DeadlineExceeded):
		kind = FailureNetwork
	}

	return &ConnectError{Kind: kind, Err: err}
}
