// Package errors provides structured error types for better observability
// and programmatic error handling across ingredi.
//
// Domain codes classify the conditions the conversion engine can report:
// ErrCodeAmbiguousUnit, ErrCodeIncompatibleUnits and ErrCodeUnknownUnit are
// non-fatal and are normally carried as diagnostics, while ErrCodeMalformedNumber signals a
// broken invariant and is returned as an error.
//
// Example usage:
//
//	err := errors.WrapWithContext(
//	    errors.ErrCodeMalformedNumber,
//	    "failed to parse amount",
//	    cause,
//	    map[string]interface{}{
//	        "amount": "1 /2",
//	    },
//	)
package errors
