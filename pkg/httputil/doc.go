// Package httputil provides retry-with-backoff for transient network
// failures.
//
// [Retry] wraps an operation with automatic retry for the failures the
// caller marks as transient (a refused connection, an exceeded deadline)
// by wrapping them in a [RetryableError]. boardstore's MongoStore uses it
// to ride out a database that is still starting when the service does.
//
// It uses exponential backoff to avoid hammering a dependency that is
// already struggling:
//
//	err := httputil.Retry(ctx, 3, time.Second, func() error {
//	    if err := dial(); err != nil {
//	        return httputil.Retryable(err)
//	    }
//	    return nil
//	})
//
// Errors not wrapped in [RetryableError] are treated as permanent and
// returned immediately without further attempts.
//
// [RetryWithBackoff] covers the common case: up to 3 attempts, starting
// at a 1 second delay and doubling each retry.
package httputil
