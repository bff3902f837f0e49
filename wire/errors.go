// Package wire provides the byte-level primitives shared by the legacy and
// Carbon codecs: fixed/variable byte containers, a length-bounded string, a
// pinned-and-zeroed secret buffer, and the read/write cursors both codecs
// build on.
package wire

import "fmt"

// Kind is the language-neutral error taxonomy from the core's error design:
// malformed wire input falls under DataFormat, arithmetic faults under
// NumericDomain, length/bounds violations under BoundsExceeded, schema
// mismatches under SchemaViolation, and signing/Base58/WIF failures under
// CryptoFailure.
type Kind string

const (
	KindDataFormat      Kind = "DataFormat"
	KindNumericDomain   Kind = "NumericDomain"
	KindBoundsExceeded  Kind = "BoundsExceeded"
	KindSchemaViolation Kind = "SchemaViolation"
	KindCryptoFailure   Kind = "CryptoFailure"
)

// CodecError is the one error type every public API in this module returns.
type CodecError struct {
	Kind Kind
	Msg  string
	Err  error
}

func (e *CodecError) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Msg, e.Err)
	}
	if e.Msg == "" {
		return string(e.Kind)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
}

func (e *CodecError) Unwrap() error { return e.Err }

// Newf builds a CodecError with the given kind and formatted message.
func Newf(kind Kind, format string, args ...any) error {
	return &CodecError{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

// Wrap builds a CodecError with the given kind, message, and wrapped cause.
func Wrap(kind Kind, msg string, err error) error {
	return &CodecError{Kind: kind, Msg: msg, Err: err}
}
