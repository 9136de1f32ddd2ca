// Package errors provides structured error types for better observability
// and programmatic error handling across the application.
//
// The CLI maps codes to process exit statuses, so the code chosen at the
// point of failure decides how an operator sees it.
//
// Example usage:
//
//	err := errors.WrapWithContext(
//	    errors.ErrCodeUnavailable,
//	    "controller request failed",
//	    cause,
//	    map[string]any{
//	        "endpoint": endpoint,
//	        "status":   resp.StatusCode,
//	    },
//	)
package errors
