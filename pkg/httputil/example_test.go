package httputil_test

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ironplane/ironplane/pkg/httputil"
)

func ExampleRetry() {
	ctx := context.Background()
	attempts := 0

	// Simulate an operation that fails twice then succeeds
	err := httputil.Retry(ctx, 3, 10*time.Millisecond, func() error {
		attempts++
		if attempts < 3 {
			// Wrap transient errors to enable retry
			return &httputil.RetryableError{
				Err: fmt.Errorf("temporary failure (attempt %d)", attempts),
			}
		}
		return nil // Success
	})

	if err != nil {
		fmt.Println("Failed:", err)
	} else {
		fmt.Println("Success after", attempts, "attempts")
	}
	// Output:
	// Success after 3 attempts
}

func ExampleRetryWithBackoff() {
	ctx := context.Background()

	// Connect to a dependency that may still be starting up.
	err := httputil.RetryWithBackoff(ctx, func() error {
		// Return httputil.Retryable(err) for transient failures.
		return nil
	})

	if err != nil {
		fmt.Println("Error:", err)
	} else {
		fmt.Println("Success")
	}
	// Output:
	// Success
}

func ExampleRetryableError() {
	ctx := context.Background()
	networkErr := errors.New("connection refused")

	err := httputil.Retry(ctx, 2, 10*time.Millisecond, func() error {
		// Transient error - will retry
		return &httputil.RetryableError{Err: networkErr}
	})

	// Check if the underlying error is our network error
	if errors.Is(err, networkErr) {
		fmt.Println("Failed due to network error")
	}
	// Output:
	// Failed due to network error
}

func ExampleRetryable() {
	ctx := context.Background()
	attempts := 0

	// Using the Retryable helper for cleaner code
	err := httputil.RetryWithBackoff(ctx, func() error {
		attempts++
		if attempts < 2 {
			// Wrap errors concisely with Retryable()
			return httputil.Retryable(errors.New("temporary failure"))
		}
		return nil
	})

	if err == nil {
		fmt.Println("Success")
	}
	// Output:
	// Success
}
