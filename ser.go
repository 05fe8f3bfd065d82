package pathabs

import (
	"fmt"

	"github.com/Jumpaku/go-pathabs/pathenc"
)

// The serialized form of every type is a single text field holding the
// pathenc-encoded canonical path. Decoding re-runs the checked constructor
// for the target type, so a decoded value carries exactly the same guarantees
// as a freshly constructed one: a serialized path that no longer resolves on
// the target machine fails with the same errors as direct construction.

// Encode returns the escape-encoded text form of the path. The encoding is
// lossless for any byte sequence a native path can contain; see pathenc.
func (p PathAbs) Encode() string {
	return pathenc.Encode([]byte(p.path))
}

// DecodeAbs decodes text and re-runs New on the result.
func DecodeAbs(text string) (PathAbs, error) {
	raw, err := decodeText(text)
	if err != nil {
		return PathAbs{}, err
	}
	return New(string(raw))
}

// DecodeFile decodes text and re-runs the file-checked constructor on the
// result.
func DecodeFile(text string) (PathFile, error) {
	abs, err := DecodeAbs(text)
	if err != nil {
		return PathFile{}, err
	}
	return FileFromAbs(abs)
}

// DecodeDir decodes text and re-runs the directory-checked constructor on the
// result.
func DecodeDir(text string) (PathDir, error) {
	abs, err := DecodeAbs(text)
	if err != nil {
		return PathDir{}, err
	}
	return DirFromAbs(abs)
}

// DecodeType decodes text and re-classifies the result via NewType.
func DecodeType(text string) (PathType, error) {
	raw, err := decodeText(text)
	if err != nil {
		return PathType{}, err
	}
	return NewType(string(raw))
}

// DecodeMock decodes text into a Mock value without touching the filesystem.
// It is the fixture-side twin of Mock: malformed escapes are still rejected,
// existence is not checked.
func DecodeMock(text string) (PathAbs, error) {
	raw, err := decodeText(text)
	if err != nil {
		return PathAbs{}, err
	}
	return Mock(string(raw)), nil
}

func decodeText(text string) ([]byte, error) {
	raw, err := pathenc.Decode(text)
	if err != nil {
		return nil, newDecodeError(fmt.Sprintf("failed to decode path text '%s'", text), err)
	}
	return raw, nil
}

// MarshalText implements encoding.TextMarshaler.
func (p PathAbs) MarshalText() ([]byte, error) {
	return []byte(p.Encode()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. The decoded path is
// re-validated through New.
func (p *PathAbs) UnmarshalText(text []byte) error {
	decoded, err := DecodeAbs(string(text))
	if err != nil {
		return err
	}
	*p = decoded
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (f PathFile) MarshalText() ([]byte, error) {
	return []byte(f.abs.Encode()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. The decoded path is
// re-validated through the file-checked constructor.
func (f *PathFile) UnmarshalText(text []byte) error {
	decoded, err := DecodeFile(string(text))
	if err != nil {
		return err
	}
	*f = decoded
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (d PathDir) MarshalText() ([]byte, error) {
	return []byte(d.abs.Encode()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. The decoded path is
// re-validated through the directory-checked constructor.
func (d *PathDir) UnmarshalText(text []byte) error {
	decoded, err := DecodeDir(string(text))
	if err != nil {
		return err
	}
	*d = decoded
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (t PathType) MarshalText() ([]byte, error) {
	return []byte(t.abs.Encode()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. The decoded path is
// re-classified through NewType.
func (t *PathType) UnmarshalText(text []byte) error {
	decoded, err := DecodeType(string(text))
	if err != nil {
		return err
	}
	*t = decoded
	return nil
}
