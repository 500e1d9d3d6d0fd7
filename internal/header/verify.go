package header

import (
	"bytes"
	"fmt"
	"os"
)

// Verify decodes the header at headerPath and checks that it declares symbol
// and that its array reproduces the file at inputPath byte for byte.
func Verify(inputPath, headerPath, symbol string) error {
	hf, err := os.Open(headerPath)
	if err != nil {
		return fmt.Errorf("failed to open header: %w", err)
	}
	defer hf.Close()

	h, err := Parse(hf)
	if err != nil {
		return fmt.Errorf("failed to parse %s: %w", headerPath, err)
	}
	if h.Symbol != symbol {
		return fmt.Errorf("%w: header declares %q, expected %q", ErrDigestMismatch, h.Symbol, symbol)
	}

	in, err := os.Open(inputPath)
	if err != nil {
		return &InputOpenError{Path: inputPath, Err: err}
	}
	defer in.Close()

	want, err := Digest(in)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", inputPath, err)
	}
	got, err := Digest(bytes.NewReader(h.Data))
	if err != nil {
		return err
	}
	if got != want {
		return fmt.Errorf("%w: %s decodes to %x, input is %x", ErrDigestMismatch, headerPath, got, want)
	}
	return nil
}
