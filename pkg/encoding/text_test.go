package encoding

import (
	"testing"

	"golang.org/x/text/encoding/unicode"
)

func TestToUTF8(t *testing.T) {
	utf16le, err := unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewEncoder().Bytes([]byte("name: Acamar é"))
	if err != nil {
		t.Fatalf("encoding UTF-16: %v", err)
	}
	utf16be, err := unicode.UTF16(unicode.BigEndian, unicode.UseBOM).NewEncoder().Bytes([]byte("dec: -40.3"))
	if err != nil {
		t.Fatalf("encoding UTF-16: %v", err)
	}

	tests := []struct {
		name string
		in   []byte
		want string
	}{
		{"plain utf-8", []byte("name: Vega"), "name: Vega"},
		{"utf-8 with bom", append([]byte{0xEF, 0xBB, 0xBF}, "ra: 1"...), "ra: 1"},
		{"utf-8 multibyte", []byte("name: Sīrius"), "name: Sīrius"},
		{"windows-1252", []byte("name: Caf\xe9 \x93Star\x94"), "name: Café “Star”"},
		{"utf-16le", utf16le, "name: Acamar é"},
		{"utf-16be", utf16be, "dec: -40.3"},
		{"empty", nil, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ToUTF8(tt.in)
			if err != nil {
				t.Fatalf("ToUTF8() error = %v", err)
			}
			if string(got) != tt.want {
				t.Errorf("ToUTF8() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestHasUTF16BOM(t *testing.T) {
	tests := []struct {
		in   []byte
		want bool
	}{
		{[]byte{0xFF, 0xFE, 'a', 0}, true},
		{[]byte{0xFE, 0xFF, 0, 'a'}, true},
		{[]byte{0xEF, 0xBB, 0xBF}, false},
		{[]byte{0xFF}, false},
		{nil, false},
	}
	for _, tt := range tests {
		if got := HasUTF16BOM(tt.in); got != tt.want {
			t.Errorf("HasUTF16BOM(% x) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
