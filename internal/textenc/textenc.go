// Package textenc normalises CLI input files to plain UTF-8 before
// parsing: a UTF-16 file (detected by BOM) is transcoded, a UTF-8 BOM is
// stripped. Bytes without a BOM pass through untouched, so the common
// case stays zero-copy.
package textenc

import (
	"bytes"
	"fmt"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

var (
	bomUTF8    = []byte{0xEF, 0xBB, 0xBF}
	bomUTF16LE = []byte{0xFF, 0xFE}
	bomUTF16BE = []byte{0xFE, 0xFF}
)

// Normalize returns data as UTF-8 without a byte-order mark.
func Normalize(data []byte) ([]byte, error) {
	switch {
	case bytes.HasPrefix(data, bomUTF8):
		return data[len(bomUTF8):], nil
	case bytes.HasPrefix(data, bomUTF16LE):
		return decodeUTF16(data, unicode.LittleEndian)
	case bytes.HasPrefix(data, bomUTF16BE):
		return decodeUTF16(data, unicode.BigEndian)
	default:
		return data, nil
	}
}

func decodeUTF16(data []byte, endian unicode.Endianness) ([]byte, error) {
	dec := unicode.UTF16(endian, unicode.ExpectBOM).NewDecoder()
	out, _, err := transform.Bytes(dec, data)
	if err != nil {
		return nil, fmt.Errorf("textenc: decode UTF-16: %w", err)
	}
	return out, nil
}
