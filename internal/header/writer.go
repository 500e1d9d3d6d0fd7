// Package header converts binary blobs into C headers declaring a uint8_t
// array, and decodes such headers back into bytes.
package header

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"sync"
	"text/template"

	"github.com/openmotion/bit2header/internal/templates"
)

// BytesPerLine is the number of array elements emitted on each line.
const BytesPerLine = 12

const hexDigits = "0123456789ABCDEF"

var loadTemplate = sync.OnceValues(func() (*template.Template, error) {
	return templates.Parse("header.h.tmpl")
})

type headerData struct {
	Symbol string
	Size   int64
}

// Write serializes exactly size bytes read from r as a C header declaring
// symbol. The caller is expected to pass a buffered w; Write issues one
// small write per element.
//
// Parameters:
//   - w: Destination of the header text.
//   - r: Source of the blob. It must yield at least size bytes.
//   - size: Number of bytes to emit, as reported before reading began.
//   - symbol: Name used for the guard, the size macro and the array.
//
// Returns:
//   - error: A *WriteError if reading or writing fails, wrapping ErrShortRead
//     when r ends early.
func Write(w io.Writer, r io.Reader, size int64, symbol string) error {
	if size < 0 {
		return fmt.Errorf("negative size %d", size)
	}

	tmpl, err := loadTemplate()
	if err != nil {
		return err
	}
	data := headerData{Symbol: symbol, Size: size}

	if err := tmpl.ExecuteTemplate(w, "prologue", data); err != nil {
		return &WriteError{Op: "write", Err: err}
	}

	br, ok := r.(io.ByteReader)
	if !ok {
		br = bufio.NewReader(r)
	}

	var scratch [8]byte
	for i := int64(0); i < size; i++ {
		b, err := br.ReadByte()
		if err != nil {
			if errors.Is(err, io.EOF) {
				err = fmt.Errorf("%w: got %d of %d bytes", ErrShortRead, i, size)
			}
			return &WriteError{Op: "read", Err: err}
		}
		lit := appendLiteral(scratch[:0], b, i == size-1, (i+1)%BytesPerLine == 0)
		if _, err := w.Write(lit); err != nil {
			return &WriteError{Op: "write", Err: err}
		}
	}

	if err := tmpl.ExecuteTemplate(w, "epilogue", data); err != nil {
		return &WriteError{Op: "write", Err: err}
	}
	return nil
}

// appendLiteral appends one array element: the 0xHH literal, a comma unless
// it is the last element, then a newline on wrap or a space otherwise.
func appendLiteral(dst []byte, b byte, last, wrap bool) []byte {
	dst = append(dst, '0', 'x', hexDigits[b>>4], hexDigits[b&0x0F])
	if !last {
		dst = append(dst, ',')
	}
	if wrap {
		return append(dst, '\n')
	}
	return append(dst, ' ')
}
