// Package errors provides structured error types for programmatic error
// handling across the result processing pipeline.
//
// Every fatal condition raised by the core packages carries an ErrorCode so
// callers (and tests) can branch on the kind of failure without matching
// message text:
//
//	if errors.IsCode(err, errors.ErrCodeEmptySequence) {
//	    // nothing to reduce
//	}
//
// Example usage:
//
//	err := errors.NewWithContext(
//	    errors.ErrCodeExtraColumnLengthMismatch,
//	    "extra column must have exactly 3 values",
//	    map[string]any{
//	        "fieldname": "threads",
//	        "values":    2,
//	    },
//	)
package errors
