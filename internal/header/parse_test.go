package header

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestParse_RoundTrip(t *testing.T) {
	all := make([]byte, 0, 512)
	for i := 0; i < 2; i++ {
		for b := 0; b < 256; b++ {
			all = append(all, byte(b))
		}
	}

	tests := []struct {
		name string
		data []byte
	}{
		{"empty", nil},
		{"single", []byte{0x42}},
		{"one line", sequence(12)},
		{"fourteen", sequence(14)},
		{"all byte values", all},
		{"reverse", bytes.Repeat([]byte{0xFF, 0x00, 0x80}, 333)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			text := render(t, tt.data, "BLOB")
			h, err := Parse(strings.NewReader(text))
			if err != nil {
				t.Fatalf("Parse failed: %v\n%s", err, text)
			}
			if h.Symbol != "BLOB" {
				t.Errorf("symbol = %q", h.Symbol)
			}
			if h.Size != int64(len(tt.data)) {
				t.Errorf("size = %d, want %d", h.Size, len(tt.data))
			}
			if !bytes.Equal(h.Data, tt.data) {
				t.Errorf("decoded bytes differ from input")
			}
		})
	}
}

func TestParse_ForeignFormatting(t *testing.T) {
	text := "#ifndef X_H\n#define X_H\n#define X_SIZE 3\nconst uint8_t X[3] = {\n    0xde, 0xAD,\n    0xbe\n};\n#endif // X_H\n"
	h, err := Parse(strings.NewReader(text))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if !bytes.Equal(h.Data, []byte{0xDE, 0xAD, 0xBE}) {
		t.Errorf("got %x", h.Data)
	}
}

func TestParse_Malformed(t *testing.T) {
	valid := fooHeader

	tests := []struct {
		name      string
		text      string
		wantError string
	}{
		{
			name:      "empty input",
			text:      "",
			wantError: "expected #ifndef guard",
		},
		{
			name:      "guard mismatch",
			text:      strings.Replace(valid, "#define FOO_H", "#define BAR_H", 1),
			wantError: "expected #define FOO_H",
		},
		{
			name:      "size symbol mismatch",
			text:      strings.Replace(valid, "#define FOO_SIZE", "#define BAR_SIZE", 1),
			wantError: "expected #define FOO_SIZE",
		},
		{
			name:      "declared length mismatch",
			text:      strings.Replace(valid, "FOO[14]", "FOO[15]", 1),
			wantError: "expected const uint8_t FOO[14]",
		},
		{
			name:      "element count mismatch",
			text:      strings.Replace(valid, "0x0C, 0x0D", "0x0C", 1),
			wantError: "array has 13 elements, declared 14",
		},
		{
			name:      "oversized declared length",
			text:      "#ifndef X_H\n#define X_H\n#define X_SIZE 4611686018427387904\nconst uint8_t X[4611686018427387904] = {\n0x01\n};\n#endif\n",
			wantError: "array has 1 elements, declared 4611686018427387904",
		},
		{
			name:      "size overflows int64",
			text:      "#ifndef X_H\n#define X_H\n#define X_SIZE 99999999999999999999\nconst uint8_t X[99999999999999999999] = {\n};\n#endif\n",
			wantError: "bad size",
		},
		{
			name:      "more elements than declared",
			text:      strings.Replace(valid, "0x0C, 0x0D", "0x0C, 0x0D, 0x0E", 1),
			wantError: "array has more than 14 elements",
		},
		{
			name:      "bad literal",
			text:      strings.Replace(valid, "0x0A", "0xZZ", 1),
			wantError: `bad byte literal "0xZZ"`,
		},
		{
			name:      "decimal literal",
			text:      strings.Replace(valid, "0x0A", "10", 1),
			wantError: `bad byte literal "10"`,
		},
		{
			name:      "unterminated",
			text:      strings.Split(valid, "};")[0],
			wantError: "unterminated array",
		},
		{
			name:      "missing endif",
			text:      strings.Replace(valid, "#endif", "", 1),
			wantError: "expected #endif",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(tt.text))
			if err == nil {
				t.Fatalf("expected error containing %q, got nil", tt.wantError)
			}
			if !errors.Is(err, ErrMalformed) {
				t.Errorf("error is not ErrMalformed: %v", err)
			}
			if !strings.Contains(err.Error(), tt.wantError) {
				t.Errorf("error = %v, want substring %q", err, tt.wantError)
			}
		})
	}
}

func TestParse_SingleLineArray(t *testing.T) {
	const n = 30000
	var sb strings.Builder
	sb.WriteString("#ifndef WIDE_H\n#define WIDE_H\n#define WIDE_SIZE 30000\nconst uint8_t WIDE[30000] = {\n")
	for i := 0; i < n; i++ {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString("0xA5")
	}
	sb.WriteString("\n};\n#endif\n")

	h, err := Parse(strings.NewReader(sb.String()))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if len(h.Data) != n || h.Data[n-1] != 0xA5 {
		t.Errorf("decoded %d bytes, want %d", len(h.Data), n)
	}
}
