package formatters

import (
	"errors"
	"fmt"
	"sort"
	"strconv"

	"github.com/itsatony/go-cuserr"
	"github.com/itsatony/go-formatters/internal"
)

// ErrorKind classifies formatting failures.
type ErrorKind = internal.ErrorKind

// Error kinds. The first group is raised by the markup engine, the second
// by the engine's public surface.
const (
	KindUnmatchedToken   = internal.KindUnmatchedToken
	KindNumericNotFound  = internal.KindNumericNotFound
	KindUnknownStyleName = internal.KindUnknownStyleName
	KindNoPluralRule     = internal.KindNoPluralRule
	KindInvalidDirection = internal.KindInvalidDirection
	KindInvalidRule      = internal.KindInvalidRule
	KindUnknownUnit      = internal.KindUnknownUnit

	KindInvalidInput     ErrorKind = "InvalidInput"
	KindInvalidLocale    ErrorKind = "InvalidLocale"
	KindMessageNotFound  ErrorKind = "MessageNotFound"
	KindMessageExists    ErrorKind = "MessageExists"
	KindEmptyMessageName ErrorKind = "EmptyMessageName"
)

// codeForKind maps an engine error kind to its error code.
func codeForKind(kind ErrorKind) string {
	switch kind {
	case KindUnmatchedToken, KindUnknownStyleName, KindInvalidRule:
		return ErrCodeParse
	case KindNoPluralRule:
		return ErrCodePlural
	default:
		return ErrCodeResolve
	}
}

// wrapError converts an engine error into a cuserr error with the kind,
// source offset and kind-specific details as metadata.
func wrapError(err error) error {
	if err == nil {
		return nil
	}

	var e *internal.Error
	if !errors.As(err, &e) {
		return cuserr.WrapStdError(err, ErrCodeResolve, ErrMsgFormatFailed)
	}

	wrapped := cuserr.WrapStdError(e, codeForKind(e.Kind), e.Message).
		WithMetadata(MetaKeyKind, string(e.Kind))
	if e.Offset >= 0 {
		wrapped = wrapped.WithMetadata(MetaKeyOffset, strconv.Itoa(e.Offset))
	}

	keys := make([]string, 0, len(e.Detail))
	for k := range e.Detail {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		wrapped = wrapped.WithMetadata(k, e.Detail[k])
	}
	return wrapped
}

// KindOf returns the kind of a formatting error.
func KindOf(err error) (ErrorKind, bool) {
	var ce *cuserr.CustomError
	if errors.As(err, &ce) {
		if kind, ok := ce.GetMetadata(MetaKeyKind); ok {
			return ErrorKind(kind), true
		}
	}
	var e *internal.Error
	if errors.As(err, &e) {
		return e.Kind, true
	}
	return "", false
}

// IsKind reports whether err is a formatting error of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	k, ok := KindOf(err)
	return ok && k == kind
}

// NewInvalidInputError reports a FormatAll element of an unsupported type.
func NewInvalidInputError(value any) error {
	return cuserr.NewValidationError(ErrCodeInput, ErrMsgInvalidInput).
		WithMetadata(MetaKeyKind, string(KindInvalidInput)).
		WithMetadata(MetaKeyType, fmt.Sprintf("%T", value))
}

// NewInvalidLocaleError reports a locale tag that cannot be parsed.
func NewInvalidLocaleError(locale string, cause error) error {
	return cuserr.WrapStdError(cause, ErrCodeInput, ErrMsgInvalidLocale).
		WithMetadata(MetaKeyKind, string(KindInvalidLocale)).
		WithMetadata(MetaKeyLocale, locale)
}

// NewMessageNotFoundError reports a lookup of an unregistered message.
func NewMessageNotFoundError(name string) error {
	return cuserr.NewNotFoundError(MetaKeyMessage, ErrMsgMessageNotFound).
		WithMetadata(MetaKeyKind, string(KindMessageNotFound)).
		WithMetadata(MetaKeyMessageName, name)
}

// NewMessageExistsError reports a message name collision.
func NewMessageExistsError(name string) error {
	return cuserr.NewValidationError(ErrCodeCatalog, ErrMsgMessageExists).
		WithMetadata(MetaKeyKind, string(KindMessageExists)).
		WithMetadata(MetaKeyMessageName, name)
}

// NewEmptyMessageNameError reports a registration without a name.
func NewEmptyMessageNameError() error {
	return cuserr.NewValidationError(ErrCodeCatalog, ErrMsgEmptyMessageName).
		WithMetadata(MetaKeyKind, string(KindEmptyMessageName))
}

// NewCatalogError reports a catalog file that cannot be read or parsed.
func NewCatalogError(msg, path string, cause error) error {
	return cuserr.WrapStdError(cause, ErrCodeCatalog, msg).
		WithMetadata(MetaKeyPath, path)
}
