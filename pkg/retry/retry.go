package retry

import (
	"context"
	"errors"
	"io"
	"syscall"
	"time"

	"github.com/cenkalti/backoff/v4"
)

const maxRetries = 5

// newBackOff builds the shared policy: initial 10ms, multiplier 2.
var newBackOff = func() backoff.BackOff {
	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = 10 * time.Millisecond
	bo.Multiplier = 2

	return bo
}

// Exponential executes op with an exponential backoff policy.
//
// The call is retried while shouldRetry(err) == true for returned errors,
// at most 5 times. The provided context can cancel the retries early.
func Exponential(ctx context.Context, op func() error, shouldRetry func(error) bool) error {
	wrapped := func() error {
		if err := op(); err != nil {
			if shouldRetry != nil && shouldRetry(err) {
				return err
			}

			return backoff.Permanent(err)
		}

		return nil
	}

	return backoff.Retry(wrapped, backoff.WithContext(backoff.WithMaxRetries(newBackOff(), maxRetries), ctx))
}

// Transient reports whether a failed write may succeed when repeated.
func Transient(err error) bool {
	return errors.Is(err, syscall.EAGAIN) ||
		errors.Is(err, syscall.EINTR) ||
		errors.Is(err, io.ErrShortWrite)
}

// Write writes all of p to w. Partial writes resume where they stopped and
// transient failures are retried with Exponential.
func Write(ctx context.Context, w io.Writer, p []byte) error {
	return Exponential(ctx, func() error {
		for len(p) > 0 {
			n, err := w.Write(p)
			p = p[n:]
			if err != nil {
				return err
			}
			if n == 0 {
				return io.ErrShortWrite
			}
		}

		return nil
	}, Transient)
}
