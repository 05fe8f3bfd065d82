// Package pathenc implements a reversible escape encoding for raw filesystem
// path bytes.
//
// Native paths are byte sequences, not guaranteed-valid text. Encode maps any
// byte sequence to a valid, human-editable string and Decode maps it back;
// the two are mutual inverses over the full byte space. Bytes inside invalid
// UTF-8 sequences and control bytes become \xNN escapes, so no information is
// lost and nothing is silently replaced with U+FFFD. Decode rejects malformed
// escapes with ErrInvalidEscape instead of guessing.
package pathenc

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

// ErrInvalidEscape is wrapped by every Decode failure.
var ErrInvalidEscape = errors.New("invalid escape")

const hexDigits = "0123456789abcdef"

// Encode returns the escaped text form of raw. Valid UTF-8 passes through
// unchanged except for '\\', '\t', '\n', '\r' and other control bytes, which
// are escaped so the result stays on one editable line.
func Encode(raw []byte) string {
	var b strings.Builder
	b.Grow(len(raw))
	for i := 0; i < len(raw); {
		c := raw[i]
		switch {
		case c == '\\':
			b.WriteString(`\\`)
			i++
		case c == '\t':
			b.WriteString(`\t`)
			i++
		case c == '\n':
			b.WriteString(`\n`)
			i++
		case c == '\r':
			b.WriteString(`\r`)
			i++
		case c < 0x20 || c == 0x7f:
			writeHexEscape(&b, c)
			i++
		case c < utf8.RuneSelf:
			b.WriteByte(c)
			i++
		default:
			r, size := utf8.DecodeRune(raw[i:])
			if r == utf8.RuneError && size == 1 {
				writeHexEscape(&b, c)
				i++
				continue
			}
			b.Write(raw[i : i+size])
			i += size
		}
	}
	return b.String()
}

func writeHexEscape(b *strings.Builder, c byte) {
	b.WriteByte('\\')
	b.WriteByte('x')
	b.WriteByte(hexDigits[c>>4])
	b.WriteByte(hexDigits[c&0xf])
}

// Decode reverses Encode. It returns an error wrapping ErrInvalidEscape for
// any escape sequence Encode could not have produced.
func Decode(text string) ([]byte, error) {
	raw := make([]byte, 0, len(text))
	for i := 0; i < len(text); {
		c := text[i]
		if c != '\\' {
			raw = append(raw, c)
			i++
			continue
		}
		if i+1 >= len(text) {
			return nil, fmt.Errorf("truncated escape at byte %d: %w", i, ErrInvalidEscape)
		}
		switch text[i+1] {
		case '\\':
			raw = append(raw, '\\')
			i += 2
		case 't':
			raw = append(raw, '\t')
			i += 2
		case 'n':
			raw = append(raw, '\n')
			i += 2
		case 'r':
			raw = append(raw, '\r')
			i += 2
		case 'x':
			if i+3 >= len(text) {
				return nil, fmt.Errorf("truncated \\x escape at byte %d: %w", i, ErrInvalidEscape)
			}
			hi, okHi := hexValue(text[i+2])
			lo, okLo := hexValue(text[i+3])
			if !okHi || !okLo {
				return nil, fmt.Errorf("malformed escape '%s' at byte %d: %w", text[i:i+4], i, ErrInvalidEscape)
			}
			raw = append(raw, hi<<4|lo)
			i += 4
		default:
			return nil, fmt.Errorf("unknown escape '\\%c' at byte %d: %w", text[i+1], i, ErrInvalidEscape)
		}
	}
	return raw, nil
}

func hexValue(c byte) (byte, bool) {
	switch {
	case '0' <= c && c <= '9':
		return c - '0', true
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10, true
	case 'A' <= c && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}
