package templates

import (
	"strings"
	"testing"
)

func TestGet_Missing(t *testing.T) {
	_, err := Get("nope.tmpl")
	if err == nil {
		t.Fatal("expected error for missing template")
	}
	if !strings.Contains(err.Error(), "template nope.tmpl not found") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestParse_HeaderBlocks(t *testing.T) {
	tmpl, err := Parse("header.h.tmpl")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	data := struct {
		Symbol string
		Size   int64
	}{"BLOB", 3}

	var sb strings.Builder
	if err := tmpl.ExecuteTemplate(&sb, "prologue", data); err != nil {
		t.Fatalf("prologue: %v", err)
	}
	wantPrologue := "#ifndef BLOB_H\n#define BLOB_H\n\n#include <stdint.h>\n\n#define BLOB_SIZE 3\nconst uint8_t BLOB[3] = {\n"
	if sb.String() != wantPrologue {
		t.Errorf("prologue mismatch:\ngot  %q\nwant %q", sb.String(), wantPrologue)
	}

	sb.Reset()
	if err := tmpl.ExecuteTemplate(&sb, "epilogue", data); err != nil {
		t.Fatalf("epilogue: %v", err)
	}
	if sb.String() != "\n};\n\n#endif\n" {
		t.Errorf("epilogue mismatch: %q", sb.String())
	}
}
