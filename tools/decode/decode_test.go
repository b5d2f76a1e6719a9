package decode

import (
	"bytes"
	"encoding/binary"
	"errors"
	"io"
	"strings"
	"testing"
)

func capture(order binary.ByteOrder, words ...uint32) io.Reader {
	var buf bytes.Buffer
	for _, w := range words {
		binary.Write(&buf, order, w)
	}
	return &buf
}

func TestDecode(t *testing.T) {
	tests := map[string]struct {
		order   string
		charset string
		capture io.Reader
		text    string
		dropped int
	}{
		"le":      {"le", "", capture(binary.LittleEndian, 'o', 'k', '\n'), "ok\n", 0},
		"be":      {"be", "", capture(binary.BigEndian, 'o', 'k', '\n'), "ok\n", 0},
		"dropped": {"le", "", capture(binary.LittleEndian, 'a', 0x1234, 'b'), "ab", 1},
		"latin1":  {"le", "ISO-8859-1", capture(binary.LittleEndian, 0xe4, '!'), "ä!", 0},
		"empty":   {"be", "", capture(binary.BigEndian), "", 0},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			var out bytes.Buffer
			dropped, err := Decode(&out, tc.capture, tc.order, tc.charset)
			if err != nil {
				t.Fatal(err)
			}
			if out.String() != tc.text {
				t.Errorf("expected %q, got %q", tc.text, out.String())
			}
			if dropped != tc.dropped {
				t.Errorf("expected %d dropped, got %d", tc.dropped, dropped)
			}
		})
	}
}

func TestDecodeInvalid(t *testing.T) {
	tests := map[string]struct {
		order   string
		charset string
	}{
		"order":   {"middle", ""},
		"charset": {"le", "no-such-charset"},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			var out bytes.Buffer
			in := capture(binary.LittleEndian, 'x')
			_, err := Decode(&out, in, tc.order, tc.charset)
			if err == nil {
				t.Fatal("expected error")
			}
			if out.Len() != 0 {
				t.Errorf("expected no output, got %q", out.String())
			}
		})
	}
}

func TestDecodeTruncated(t *testing.T) {
	var out bytes.Buffer
	in := io.MultiReader(capture(binary.LittleEndian, 'h', 'i'), strings.NewReader("\x00"))
	_, err := Decode(&out, in, "le", "")
	if !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Fatalf("expected %v, got %v", io.ErrUnexpectedEOF, err)
	}
	if out.String() != "hi" {
		t.Errorf("expected %q, got %q", "hi", out.String())
	}
}
