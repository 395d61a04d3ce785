// Package encoding converts catalogue text files to UTF-8.
package encoding

import (
	"bytes"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// ToUTF8 returns data as UTF-8 without a byte order mark.
// A UTF-16 BOM selects UTF-16. Otherwise valid UTF-8 is returned as is and
// anything else is decoded as Windows-1252, which older star catalogues use.
func ToUTF8(data []byte) ([]byte, error) {
	if HasUTF16BOM(data) {
		out, _, err := transform.Bytes(unicode.BOMOverride(unicode.UTF8.NewDecoder()), data)
		return out, err
	}

	data = bytes.TrimPrefix(data, utf8BOM)
	if utf8.Valid(data) {
		return data, nil
	}
	out, _, err := transform.Bytes(charmap.Windows1252.NewDecoder(), data)
	return out, err
}

// HasUTF16BOM reports whether data starts with a UTF-16 byte order mark.
func HasUTF16BOM(data []byte) bool {
	return len(data) >= 2 &&
		((data[0] == 0xFF && data[1] == 0xFE) || (data[0] == 0xFE && data[1] == 0xFF))
}
