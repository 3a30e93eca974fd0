// Package errors provides structured error types for better observability
// and programmatic error handling across the application.
//
// Example usage:
//
//	err := errors.NewWithContext(
//	    errors.ErrCodeInvalidInput,
//	    "height must be greater than zero",
//	    map[string]interface{}{
//	        "height": h,
//	        "weight": w,
//	    },
//	)
package errors
