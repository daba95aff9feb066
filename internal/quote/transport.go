package quote

import (
	"context"
	"errors"
	"net"
	"os"
	"syscall"

	"stocktracker/internal/alphavantage"
)

// classifyTransport maps a failed upstream call onto the error vocabulary.
// ctx is the per-call context, consulted because a deadline can surface as
// a plain read error once the body is being consumed.
func classifyTransport(ctx context.Context, err error) *Error {
	if errors.Is(err, alphavantage.ErrMalformed) {
		return ErrInternal(err)
	}
	if isTimeout(ctx, err) {
		return errRequestTimeout(err)
	}
	if isConnection(err) {
		return errConnection(err)
	}
	return errRequest(err)
}

func isTimeout(ctx context.Context, err error) bool {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, os.ErrDeadlineExceeded) {
		return true
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}
	return errors.Is(ctx.Err(), context.DeadlineExceeded)
}

func isConnection(err error) bool {
	var opErr *net.OpError
	if errors.As(err, &opErr) {
		return true
	}
	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return true
	}
	return errors.Is(err, syscall.ECONNREFUSED) ||
		errors.Is(err, syscall.ECONNRESET) ||
		errors.Is(err, syscall.ECONNABORTED)
}
