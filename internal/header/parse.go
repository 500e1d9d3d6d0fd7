package header

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

// Header is the decoded form of a generated header.
type Header struct {
	Symbol string
	Size   int64
	Data   []byte
}

// maxLineSize bounds a single header line. Other generators may put the
// whole array on one line.
const maxLineSize = 64 << 20

// maxPrealloc caps the capacity reserved from a declared size before any
// element has been counted.
const maxPrealloc = 1 << 20

var (
	ifndefRe = regexp.MustCompile(`^#ifndef\s+(\S+)_H$`)
	guardRe  = regexp.MustCompile(`^#define\s+(\S+)_H$`)
	sizeRe   = regexp.MustCompile(`^#define\s+(\S+)_SIZE\s+(\d+)$`)
	arrayRe  = regexp.MustCompile(`^const\s+uint8_t\s+(\S+)\[(\d+)\]\s*=\s*\{$`)
)

// parser walks the non-blank lines of a header.
type parser struct {
	sc   *bufio.Scanner
	line int
}

func (p *parser) next() (string, bool) {
	for p.sc.Scan() {
		p.line++
		if s := strings.TrimSpace(p.sc.Text()); s != "" {
			return s, true
		}
	}
	return "", false
}

func (p *parser) errorf(format string, args ...any) error {
	if err := p.sc.Err(); err != nil {
		return fmt.Errorf("%w: line %d: %w", ErrMalformed, p.line+1, err)
	}
	return fmt.Errorf("%w: line %d: %s", ErrMalformed, p.line, fmt.Sprintf(format, args...))
}

// Parse decodes a header produced by Write. Blank lines are ignored, as are
// #include lines between the guard and the size macro. The guard, size macro
// and array declaration must agree on the symbol and the element count must
// equal the declared size.
func Parse(r io.Reader) (*Header, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	p := &parser{sc: sc}

	line, ok := p.next()
	m := ifndefRe.FindStringSubmatch(line)
	if !ok || m == nil {
		return nil, p.errorf("expected #ifndef guard, got %q", line)
	}
	h := &Header{Symbol: m[1]}

	line, _ = p.next()
	if m = guardRe.FindStringSubmatch(line); m == nil || m[1] != h.Symbol {
		return nil, p.errorf("expected #define %s_H, got %q", h.Symbol, line)
	}

	line, _ = p.next()
	for strings.HasPrefix(line, "#include") {
		line, _ = p.next()
	}
	m = sizeRe.FindStringSubmatch(line)
	if m == nil || m[1] != h.Symbol {
		return nil, p.errorf("expected #define %s_SIZE, got %q", h.Symbol, line)
	}
	size, err := strconv.ParseInt(m[2], 10, 64)
	if err != nil {
		return nil, p.errorf("bad size %q: %v", m[2], err)
	}
	h.Size = size

	line, _ = p.next()
	m = arrayRe.FindStringSubmatch(line)
	if m == nil || m[1] != h.Symbol || m[2] != strconv.FormatInt(size, 10) {
		return nil, p.errorf("expected const uint8_t %s[%d] = {, got %q", h.Symbol, size, line)
	}

	h.Data = make([]byte, 0, min(size, maxPrealloc))
	closed := false
	for !closed {
		line, ok = p.next()
		if !ok {
			return nil, p.errorf("unterminated array")
		}
		if line == "};" {
			break
		}
		if strings.HasSuffix(line, "};") {
			line = strings.TrimSuffix(line, "};")
			closed = true
		}
		fields := strings.FieldsFunc(line, func(r rune) bool {
			return r == ',' || unicode.IsSpace(r)
		})
		for _, f := range fields {
			b, err := parseLiteral(f)
			if err != nil {
				return nil, p.errorf("%v", err)
			}
			h.Data = append(h.Data, b)
		}
		if int64(len(h.Data)) > size {
			return nil, p.errorf("array has more than %d elements", size)
		}
	}
	if int64(len(h.Data)) != size {
		return nil, p.errorf("array has %d elements, declared %d", len(h.Data), size)
	}

	if line, _ = p.next(); line != "#endif" && !strings.HasPrefix(line, "#endif ") {
		return nil, p.errorf("expected #endif, got %q", line)
	}
	if err := p.sc.Err(); err != nil {
		return nil, p.errorf("%v", err)
	}
	return h, nil
}

func parseLiteral(s string) (byte, error) {
	if len(s) != 4 || (s[:2] != "0x" && s[:2] != "0X") {
		return 0, fmt.Errorf("bad byte literal %q", s)
	}
	v, err := strconv.ParseUint(s[2:], 16, 8)
	if err != nil {
		return 0, fmt.Errorf("bad byte literal %q", s)
	}
	return byte(v), nil
}
