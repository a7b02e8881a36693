package edn

import (
	"fmt"
	"unicode/utf8"

	"github.com/joshuapare/ednkit/edn/arena"
)

// Str returns the decoded body of a string value. The first call on an
// escaped string decodes into the owning arena and caches the result;
// later calls return the cache. Fails with ErrBadEscape on a malformed or
// surrogate escape.
func (v *Value) Str() (string, error) {
	if v.flags&flagDecoded != 0 {
		if v.s == "" && len(v.dec) > 0 {
			v.s = string(v.dec)
		}
		return v.s, nil
	}
	if v.flags&flagHasEscapes == 0 {
		// No escapes: the raw slice is the body. Cache the conversion.
		if v.s == "" && len(v.str) > 0 {
			v.s = string(v.str)
		}
		v.flags |= flagDecoded
		return v.s, nil
	}
	dec, err := decodeEscapes(v.str, v.ar)
	if err != nil {
		return "", err
	}
	v.dec = dec
	v.s = string(dec)
	v.flags |= flagDecoded
	return v.s, nil
}

// decodedBytes returns the logical body bytes of a string value without
// forcing a string conversion.
func (v *Value) decodedBytes() ([]byte, error) {
	if v.flags&flagDecoded != 0 && v.dec != nil {
		return v.dec, nil
	}
	if v.flags&flagHasEscapes == 0 {
		return v.str, nil
	}
	dec, err := decodeEscapes(v.str, v.ar)
	if err != nil {
		return nil, err
	}
	v.dec = dec
	return dec, nil
}

// decodeEscapes rewrites the escape sequences of raw into a fresh arena
// run. The decoded body is never longer than the raw slice.
func decodeEscapes(raw []byte, ar *arena.Arena) ([]byte, error) {
	out := ar.Alloc(len(raw))
	if out == nil && len(raw) > 0 {
		return nil, ErrNoMemory
	}
	n := 0
	for i := 0; i < len(raw); i++ {
		c := raw[i]
		if c != '\\' {
			out[n] = c
			n++
			continue
		}
		i++
		if i >= len(raw) {
			return nil, ErrBadEscape
		}
		switch raw[i] {
		case '"':
			out[n] = '"'
		case '\\':
			out[n] = '\\'
		case 'n':
			out[n] = '\n'
		case 't':
			out[n] = '\t'
		case 'r':
			out[n] = '\r'
		case 'f':
			out[n] = '\f'
		case 'b':
			out[n] = '\b'
		case 'u':
			if i+4 >= len(raw) {
				return nil, ErrBadEscape
			}
			cp, err := parseHex4(raw[i+1 : i+5])
			if err != nil {
				return nil, err
			}
			if cp >= 0xD800 && cp <= 0xDFFF {
				return nil, fmt.Errorf("%w: surrogate \\u%04X", ErrBadEscape, cp)
			}
			n += utf8.EncodeRune(out[n:], rune(cp))
			i += 4
			continue
		default:
			return nil, fmt.Errorf("%w: \\%c", ErrBadEscape, raw[i])
		}
		n++
	}
	return out[:n], nil
}

// parseHex4 decodes exactly four hex digits.
func parseHex4(b []byte) (int, error) {
	cp := 0
	for _, c := range b {
		cp <<= 4
		switch {
		case c >= '0' && c <= '9':
			cp |= int(c - '0')
		case c >= 'a' && c <= 'f':
			cp |= int(c-'a') + 10
		case c >= 'A' && c <= 'F':
			cp |= int(c-'A') + 10
		default:
			return 0, ErrBadEscape
		}
	}
	return cp, nil
}
