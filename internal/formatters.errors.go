package internal

import (
	"errors"
	"fmt"
)

// ErrorKind classifies engine failures.
type ErrorKind string

// Error kinds raised by the engine
const (
	KindUnmatchedToken   ErrorKind = "UnmatchedToken"
	KindNumericNotFound  ErrorKind = "NumericNotFound"
	KindUnknownStyleName ErrorKind = "UnknownStyleName"
	KindNoPluralRule     ErrorKind = "NoPluralRule"
	KindInvalidDirection ErrorKind = "InvalidDirection"
	KindInvalidRule      ErrorKind = "InvalidRule"
	KindUnknownUnit      ErrorKind = "UnknownUnit"
)

// Error is the single error type raised inside the engine. The public
// package wraps it for callers.
type Error struct {
	Kind    ErrorKind
	Message string
	Offset  int               // byte offset in the source, -1 when unknown
	Detail  map[string]string // kind specific context (remaining input, style, ...)
	Cause   error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf(ErrFmtWithCause, e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target is an *Error of the same kind, so callers can
// match with errors.Is(err, &Error{Kind: KindNumericNotFound}).
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return t.Kind == e.Kind && t.Message == StringValueEmpty
}

func newError(kind ErrorKind, message string, offset int) *Error {
	return &Error{
		Kind:    kind,
		Message: message,
		Offset:  offset,
		Detail:  make(map[string]string),
	}
}

// with adds a detail entry and returns the error for chaining.
func (e *Error) with(key, value string) *Error {
	e.Detail[key] = value
	return e
}

// Detail keys
const (
	DetailRemaining = "remaining"
	DetailDirection = "direction"
	DetailIndex     = "index"
	DetailLength    = "length"
	DetailStyle     = "style"
	DetailSingular  = "singular"
	DetailRule      = "rule"
	DetailUnit      = "unit"
)

// NewUnmatchedTokenError reports a remainder no rule accepts.
func NewUnmatchedTokenError(remaining string, offset int) *Error {
	return newError(KindUnmatchedToken, fmt.Sprintf(ErrFmtQuoted, ErrMsgUnmatchedToken, remaining), offset).
		with(DetailRemaining, remaining)
}

// NewNumericNotFoundError reports an exhausted directional search.
func NewNumericNotFoundError(direction string, index, length, offset int) *Error {
	msg := fmt.Sprintf(ErrFmtNumeric, ErrMsgNumericNotFound, directionName(direction), index, length)
	return newError(KindNumericNotFound, msg, offset).
		with(DetailDirection, direction).
		with(DetailIndex, fmt.Sprint(index)).
		with(DetailLength, fmt.Sprint(length))
}

// NewUnknownStyleError reports a style name missing from the style table.
func NewUnknownStyleError(name string, suggestions []string) *Error {
	msg := fmt.Sprintf(ErrFmtSuggestion, fmt.Sprintf(ErrFmtQuoted, ErrMsgUnknownStyleName, name), FormatSuggestions(suggestions))
	return newError(KindUnknownStyleName, msg, -1).with(DetailStyle, name)
}

// NewNoPluralRuleError reports an exhausted pluralization table.
func NewNoPluralRuleError(singular string) *Error {
	return newError(KindNoPluralRule, fmt.Sprintf(ErrFmtQuoted, ErrMsgNoPluralRule, singular), -1).
		with(DetailSingular, singular)
}

// NewInvalidDirectionError reports a direction character outside <, > and |.
func NewInvalidDirectionError(direction string, offset int) *Error {
	return newError(KindInvalidDirection, fmt.Sprintf(ErrFmtInvalidDirSeq, ErrMsgInvalidDirection, direction), offset).
		with(DetailDirection, direction)
}

// NewInvalidRuleError reports a malformed rule.
func NewInvalidRuleError(name, reason string, offset int) *Error {
	return newError(KindInvalidRule, fmt.Sprintf(ErrFmtRuleMessage, ErrMsgInvalidRule, name, reason), offset).
		with(DetailRule, name)
}

// NewUnknownUnitError reports an unsupported ByUnit unit.
func NewUnknownUnitError(unit string) *Error {
	return newError(KindUnknownUnit, fmt.Sprintf(ErrFmtQuoted, ErrMsgUnknownUnit, unit), -1).
		with(DetailUnit, unit)
}

// withOffset fills in the source offset on errors raised without one.
func withOffset(err error, offset int) error {
	var e *Error
	if errors.As(err, &e) && e.Offset < 0 {
		e.Offset = offset
	}
	return err
}

func directionName(direction string) string {
	switch direction {
	case DirectionBackward:
		return DirectionNameBackward
	case DirectionForward:
		return DirectionNameForward
	case DirectionBackwardForward:
		return DirectionNameBackwardForward
	case DirectionForwardBackward:
		return DirectionNameForwardBackward
	case DirectionNearest:
		return DirectionNameNearest
	default:
		return DirectionNameOther
	}
}
