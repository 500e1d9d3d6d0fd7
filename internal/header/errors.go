package header

import (
	"errors"
	"fmt"
)

var (
	// ErrShortRead is reported when the input yields fewer bytes than its
	// size indicated before streaming began.
	ErrShortRead = errors.New("input ended before its reported size")
	// ErrDigestMismatch is reported by Verify when the decoded array does not
	// reproduce the input file.
	ErrDigestMismatch = errors.New("header content does not match input")
	// ErrMalformed is reported by Parse for text that is not a generated header.
	ErrMalformed = errors.New("malformed header")
)

// InputOpenError reports that the input file could not be opened or sized.
type InputOpenError struct {
	Path string
	Err  error
}

func (e *InputOpenError) Error() string {
	return fmt.Sprintf("failed to open input file: %v", e.Err)
}

func (e *InputOpenError) Unwrap() error { return e.Err }

// OutputOpenError reports that the output file could not be created or truncated.
type OutputOpenError struct {
	Path string
	Err  error
}

func (e *OutputOpenError) Error() string {
	return fmt.Sprintf("failed to open output file: %v", e.Err)
}

func (e *OutputOpenError) Unwrap() error { return e.Err }

// WriteError reports a failure while streaming bytes into an already opened
// output. Op is "read" or "write".
type WriteError struct {
	Op  string
	Err error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("failed to %s header data: %v", e.Op, e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }

// SymbolError reports a symbol that cannot be used as a C identifier.
type SymbolError struct {
	Symbol string
	Reason string
}

func (e *SymbolError) Error() string {
	return fmt.Sprintf("invalid symbol %q: %s", e.Symbol, e.Reason)
}
