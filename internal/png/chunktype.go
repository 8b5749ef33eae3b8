// Package png parses, edits and serializes the chunk layout of PNG files.
//
// A file is an 8-byte signature followed by chunks, each framed as
//
//	length (u32 BE) | type (4 bytes) | data (length bytes) | crc (u32 BE)
//
// where crc is CRC-32/ISO-HDLC over type and data. Nothing here touches the
// filesystem; callers hand in byte slices and get byte slices back.
package png

import (
	"fmt"
	"unicode/utf8"
)

// ChunkType is a 4-byte chunk type code. The case of each byte carries a
// property bit: ancillary (byte 0), private (byte 1), reserved (byte 2) and
// safe-to-copy (byte 3).
type ChunkType [4]byte

// ParseChunkType builds a ChunkType from its readable form. s must be
// exactly four ASCII letters.
func ParseChunkType(s string) (ChunkType, error) {
	var ct ChunkType
	if len(s) != len(ct) {
		return ct, newError("parse.type", KindInvalidTypeCode, fmt.Errorf("%q: want 4 letters, got %d bytes", s, len(s)))
	}
	for i := 0; i < len(s); i++ {
		if !isLetter(s[i]) {
			return ChunkType{}, newError("parse.type", KindInvalidTypeCode, fmt.Errorf("%q: byte %d is not an ASCII letter", s, i))
		}
		ct[i] = s[i]
	}
	return ct, nil
}

// ChunkTypeFromBytes accepts any four bytes. Use IsValid to check them.
func ChunkTypeFromBytes(b [4]byte) ChunkType { return ChunkType(b) }

// Bytes returns the raw type bytes.
func (t ChunkType) Bytes() [4]byte { return t }

// IsValid reports whether every byte is an ASCII letter and the reserved
// bit is valid.
func (t ChunkType) IsValid() bool {
	for _, b := range t {
		if !isLetter(b) {
			return false
		}
	}
	return t.IsReservedBitValid()
}

// IsCritical reports whether byte 0 is uppercase.
func (t ChunkType) IsCritical() bool { return isUpper(t[0]) }

// IsPublic reports whether byte 1 is uppercase.
func (t ChunkType) IsPublic() bool { return isUpper(t[1]) }

// IsReservedBitValid reports whether byte 2 is uppercase.
func (t ChunkType) IsReservedBitValid() bool { return isUpper(t[2]) }

// IsSafeToCopy reports whether byte 3 is lowercase.
func (t ChunkType) IsSafeToCopy() bool { return isLower(t[3]) }

// Equal reports whether both codes hold the same four bytes.
func (t ChunkType) Equal(o ChunkType) bool { return t == o }

// Text renders the code as a string. Codes built from raw bytes that are
// not valid UTF-8 fail with KindInvalidUTF8.
func (t ChunkType) Text() (string, error) {
	if !utf8.Valid(t[:]) {
		return "", newError("type.text", KindInvalidUTF8, fmt.Errorf("% x", t[:]))
	}
	return string(t[:]), nil
}

// String implements fmt.Stringer. Invalid UTF-8 is shown as hex.
func (t ChunkType) String() string {
	s, err := t.Text()
	if err != nil {
		return fmt.Sprintf("%x", t[:])
	}
	return s
}

func isUpper(b byte) bool  { return b >= 'A' && b <= 'Z' }
func isLower(b byte) bool  { return b >= 'a' && b <= 'z' }
func isLetter(b byte) bool { return isUpper(b) || isLower(b) }
