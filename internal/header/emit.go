package header

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/hashicorp/go-multierror"
	"github.com/zeebo/blake3"
)

var (
	errNotRegular = errors.New("not a regular file")
	errSameFile   = errors.New("output is the same file as the input")
)

// Options controls optional behavior of Emit.
type Options struct {
	// AllowAnySymbol skips identifier validation and writes the symbol as given.
	AllowAnySymbol bool
}

// Result describes a successfully written header.
type Result struct {
	// OutputPath is the path of the written header.
	OutputPath string
	// Size is the number of bytes read from the input and emitted as array elements.
	Size int64
	// Digest is the BLAKE3-256 digest of the emitted bytes.
	Digest [DigestSize]byte
}

// Emit reads the file at inputPath and writes a C header declaring its bytes
// as a uint8_t array named symbol to outputPath, truncating any prior content.
//
// The input size is taken from the file metadata before any byte is read.
// Both files are closed on every return path. If streaming fails after the
// output was created, the partially written output is left in place and a
// *WriteError is returned.
//
// Parameters:
//   - inputPath: Path of the blob to embed.
//   - outputPath: Path of the header to create.
//   - symbol: Name used for the include guard, size macro and array.
//   - opts: Optional behavior.
//
// Returns:
//   - *Result: Details of the written header.
//   - error: *SymbolError, *InputOpenError, *OutputOpenError or *WriteError.
func Emit(inputPath, outputPath, symbol string, opts Options) (res *Result, err error) {
	if !opts.AllowAnySymbol {
		if err := ValidateSymbol(symbol); err != nil {
			return nil, err
		}
	}

	in, err := os.Open(inputPath)
	if err != nil {
		return nil, &InputOpenError{Path: inputPath, Err: err}
	}
	defer func() { err = closeInto(err, in) }()

	info, err := in.Stat()
	if err != nil {
		return nil, &InputOpenError{Path: inputPath, Err: err}
	}
	if !info.Mode().IsRegular() {
		return nil, &InputOpenError{Path: inputPath, Err: fmt.Errorf("%s: %w", inputPath, errNotRegular)}
	}
	size := info.Size()

	// Creating the output truncates it, which would destroy an input that
	// shares its path.
	if outInfo, statErr := os.Stat(outputPath); statErr == nil && os.SameFile(info, outInfo) {
		return nil, &OutputOpenError{Path: outputPath, Err: fmt.Errorf("%s: %w", outputPath, errSameFile)}
	}

	out, err := os.Create(outputPath)
	if err != nil {
		return nil, &OutputOpenError{Path: outputPath, Err: err}
	}
	defer func() { err = closeInto(err, out) }()

	slog.Debug("Emitting header", "input", inputPath, "output", outputPath, "symbol", symbol, "size", size)

	hasher := blake3.New()
	bw := bufio.NewWriter(out)
	src := io.TeeReader(io.LimitReader(in, size), hasher)
	if err := Write(bw, src, size, symbol); err != nil {
		return nil, err
	}
	if err := bw.Flush(); err != nil {
		return nil, &WriteError{Op: "write", Err: err}
	}

	res = &Result{OutputPath: outputPath, Size: size}
	copy(res.Digest[:], hasher.Sum(nil))
	return res, nil
}

// closeInto closes c and folds a close failure into err.
func closeInto(err error, c io.Closer) error {
	cerr := c.Close()
	if cerr == nil {
		return err
	}
	if err == nil {
		return fmt.Errorf("failed to close file: %w", cerr)
	}
	return multierror.Append(err, cerr)
}
