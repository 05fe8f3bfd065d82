package pathenc_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Jumpaku/go-pathabs/pathenc"
)

func TestEncode(t *testing.T) {
	cases := []struct {
		name string
		raw  []byte
		want string
	}{
		{"Plain", []byte("/tmp/a.txt"), "/tmp/a.txt"},
		{"Backslash", []byte(`C:\tmp\a`), `C:\\tmp\\a`},
		{"Tab", []byte("a\tb"), `a\tb`},
		{"Newline", []byte("a\nb"), `a\nb`},
		{"CarriageReturn", []byte("a\rb"), `a\rb`},
		{"ControlByte", []byte{0x01}, `\x01`},
		{"DeleteByte", []byte{0x7f}, `\x7f`},
		{"InvalidUTF8", []byte{0xff, 0xfe}, `\xff\xfe`},
		{"ValidMultibyte", []byte("日本語"), "日本語"},
		{"TruncatedMultibyte", []byte{0xe6, 0x97}, `\xe6\x97`},
		{"Empty", nil, ""},
	}

	for _, c := range cases {
		c := c
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, pathenc.Encode(c.raw))
		})
	}
}

func TestDecode_InvertsEncode(t *testing.T) {
	cases := []struct {
		name string
		raw  []byte
	}{
		{"Plain", []byte("/tmp/a.txt")},
		{"Backslashes", []byte(`a\b\\c`)},
		{"AllControls", func() []byte {
			var b []byte
			for c := byte(0); c < 0x20; c++ {
				b = append(b, c)
			}
			return b
		}()},
		{"InvalidUTF8Mixed", []byte{'/', 0xff, 'a', 0xc3, 0x28, 'b'}},
		{"ValidMultibyte", []byte("/tmp/日本語/файл")},
		{"AllByteValues", func() []byte {
			b := make([]byte, 256)
			for i := range b {
				b[i] = byte(i)
			}
			return b
		}()},
	}

	for _, c := range cases {
		c := c
		t.Run(c.name, func(t *testing.T) {
			got, err := pathenc.Decode(pathenc.Encode(c.raw))
			require.NoError(t, err)
			assert.Equal(t, c.raw, got)
		})
	}
}

func TestDecode_RejectsMalformedEscapes(t *testing.T) {
	cases := []struct {
		name string
		text string
	}{
		{"TrailingBackslash", `a\`},
		{"UnknownEscape", `a\q`},
		{"TruncatedHex", `a\x1`},
		{"NonHexDigits", `a\xzz`},
	}

	for _, c := range cases {
		c := c
		t.Run(c.name, func(t *testing.T) {
			_, err := pathenc.Decode(c.text)
			require.Error(t, err)
			assert.ErrorIs(t, err, pathenc.ErrInvalidEscape)
		})
	}
}

func TestDecode_AcceptsUppercaseHex(t *testing.T) {
	got, err := pathenc.Decode(`\xFF`)
	require.NoError(t, err)
	assert.Equal(t, []byte{0xff}, got)
}
