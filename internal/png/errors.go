package png

import (
	"errors"
	"fmt"
)

// Kind classifies a FormatError.
type Kind uint8

const (
	KindUnknown Kind = iota
	KindTooShort
	KindTruncated
	KindCRCMismatch
	KindBadSignature
	KindInvalidTypeCode
	KindInvalidUTF8
	KindChunkNotFound
)

var kindNames = map[Kind]string{
	KindUnknown:         "unknown",
	KindTooShort:        "too short",
	KindTruncated:       "truncated",
	KindCRCMismatch:     "crc mismatch",
	KindBadSignature:    "bad signature",
	KindInvalidTypeCode: "invalid type code",
	KindInvalidUTF8:     "invalid utf-8",
	KindChunkNotFound:   "chunk not found",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("kind(%d)", uint8(k))
}

// FormatError is returned by every fallible operation in this package.
type FormatError struct {
	Op   string // e.g. "parse.chunk", "png.remove"
	Kind Kind
	Err  error // optional detail
}

func (e *FormatError) Error() string {
	msg := e.Kind.String()
	if e.Op != "" {
		msg = e.Op + ": " + msg
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return "png: " + msg
}

func (e *FormatError) Unwrap() error { return e.Err }

// Is reports whether target is a sentinel of the same kind.
func (e *FormatError) Is(target error) bool {
	t, ok := target.(*FormatError)
	if !ok {
		return false
	}
	return t.Op == "" && t.Err == nil && t.Kind == e.Kind
}

// Sentinels for errors.Is comparisons.
var (
	ErrTooShort        = &FormatError{Kind: KindTooShort}
	ErrTruncated       = &FormatError{Kind: KindTruncated}
	ErrCRCMismatch     = &FormatError{Kind: KindCRCMismatch}
	ErrBadSignature    = &FormatError{Kind: KindBadSignature}
	ErrInvalidTypeCode = &FormatError{Kind: KindInvalidTypeCode}
	ErrInvalidUTF8     = &FormatError{Kind: KindInvalidUTF8}
	ErrChunkNotFound   = &FormatError{Kind: KindChunkNotFound}
)

// KindOf returns the kind of the first FormatError in err's chain.
func KindOf(err error) Kind {
	var fe *FormatError
	if errors.As(err, &fe) {
		return fe.Kind
	}
	return KindUnknown
}

func newError(op string, kind Kind, detail error) error {
	return &FormatError{Op: op, Kind: kind, Err: detail}
}
