package scicalc

import (
	"errors"
	"fmt"
)

// ============================================================
// Error taxonomy
// ============================================================

var (
	// ErrLex indicates a tokenizer failure.
	ErrLex = errors.New("lex error")

	// ErrParse indicates a grammar failure or rejected input.
	ErrParse = errors.New("parse error")

	// ErrDomain indicates an argument outside a function's real domain.
	ErrDomain = errors.New("domain error")

	// ErrSingularity indicates a zero divisor or a zero determinant.
	ErrSingularity = errors.New("singularity")

	// ErrNonFinite indicates a structurally valid computation that produced NaN or Inf.
	ErrNonFinite = errors.New("non-finite result")
)

// Kind is the top-level error category.
type Kind int

const (
	KindLex Kind = iota + 1
	KindParse
	KindDomain
	KindSingularity
	KindNonFinite
)

func (k Kind) String() string {
	switch k {
	case KindLex:
		return "lex"
	case KindParse:
		return "parse"
	case KindDomain:
		return "domain"
	case KindSingularity:
		return "singularity"
	case KindNonFinite:
		return "non_finite"
	default:
		return "unknown"
	}
}

func (k Kind) sentinel() error {
	switch k {
	case KindLex:
		return ErrLex
	case KindParse:
		return ErrParse
	case KindDomain:
		return ErrDomain
	case KindSingularity:
		return ErrSingularity
	case KindNonFinite:
		return ErrNonFinite
	default:
		return nil
	}
}

// Error codes. Each belongs to exactly one Kind.
const (
	CodeUnexpectedCharacter = "UnexpectedCharacter"
	CodeInvalidNumber       = "InvalidNumber"
	CodeUnknownIdentifier   = "UnknownIdentifier"
	CodeExpectedToken       = "ExpectedToken"
	CodeTrailingInput       = "TrailingInput"
	CodeEmptyInput          = "EmptyInput"
	CodeTooLong             = "TooLong"
	CodeOutOfDomain         = "OutOfDomain"
	CodeDivisionByZero      = "DivisionByZero"
	CodeZeroDeterminant     = "ZeroDeterminant"
	CodeNaN                 = "NaN"
	CodeInfinity            = "Infinity"
)

// Error is the single error type returned by the evaluator and the strict
// math helpers. Pos is the 1-based column of the offending input, or 0 when
// no position applies.
type Error struct {
	Kind Kind
	Code string
	Msg  string
	Pos  int
}

func (e *Error) Error() string {
	if e.Pos > 0 {
		return fmt.Sprintf("%s at col %d: %s", e.Kind.sentinel(), e.Pos, e.Msg)
	}
	return fmt.Sprintf("%s: %s", e.Kind.sentinel(), e.Msg)
}

// Is lets errors.Is match the package sentinels.
func (e *Error) Is(target error) bool {
	return target != nil && target == e.Kind.sentinel()
}

func newError(kind Kind, code string, pos int, format string, args ...any) *Error {
	return &Error{Kind: kind, Code: code, Pos: pos, Msg: fmt.Sprintf(format, args...)}
}

// KindOf reports the Kind of err, or 0 if err is not a *Error.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}

// CodeOf reports the code of err, or "" if err is not a *Error.
func CodeOf(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}
