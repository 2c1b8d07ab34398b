package formatters

import (
	"errors"
	"testing"

	"github.com/itsatony/go-cuserr"
	"github.com/itsatony/go-formatters/internal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrapError_Metadata(t *testing.T) {
	t.Run("unmatched token", func(t *testing.T) {
		_, err := Format("abc [")
		require.Error(t, err)

		var customErr *cuserr.CustomError
		require.True(t, errors.As(err, &customErr))

		kind, ok := customErr.GetMetadata(MetaKeyKind)
		require.True(t, ok)
		assert.Equal(t, string(KindUnmatchedToken), kind)

		offset, ok := customErr.GetMetadata(MetaKeyOffset)
		require.True(t, ok)
		assert.Equal(t, "4", offset)

		remaining, ok := customErr.GetMetadata(MetaKeyRemaining)
		require.True(t, ok)
		assert.Equal(t, "[", remaining)
	})

	t.Run("numeric not found", func(t *testing.T) {
		_, err := Format("[# <] 3")
		require.Error(t, err)

		var customErr *cuserr.CustomError
		require.True(t, errors.As(err, &customErr))

		direction, ok := customErr.GetMetadata(MetaKeyDirection)
		require.True(t, ok)
		assert.Equal(t, DirectionBackward, direction)

		offset, ok := customErr.GetMetadata(MetaKeyOffset)
		require.True(t, ok)
		assert.Equal(t, "0", offset)
	})

	t.Run("unknown style", func(t *testing.T) {
		_, err := Format("[red blu]x")
		require.Error(t, err)

		var customErr *cuserr.CustomError
		require.True(t, errors.As(err, &customErr))

		style, ok := customErr.GetMetadata(MetaKeyStyle)
		require.True(t, ok)
		assert.Equal(t, "blu", style)
	})

	t.Run("engine error stays reachable", func(t *testing.T) {
		_, err := Format("item[s]")
		require.Error(t, err)

		var e *internal.Error
		require.True(t, errors.As(err, &e))
		assert.Equal(t, KindNumericNotFound, e.Kind)
	})

	t.Run("nil", func(t *testing.T) {
		assert.NoError(t, wrapError(nil))
	})

	t.Run("foreign error", func(t *testing.T) {
		cause := errors.New("boom")
		err := wrapError(cause)
		assert.True(t, errors.Is(err, cause))
		_, ok := KindOf(err)
		assert.False(t, ok)
	})
}

func TestCodeForKind(t *testing.T) {
	tests := []struct {
		kind ErrorKind
		code string
	}{
		{KindUnmatchedToken, ErrCodeParse},
		{KindUnknownStyleName, ErrCodeParse},
		{KindInvalidRule, ErrCodeParse},
		{KindNoPluralRule, ErrCodePlural},
		{KindNumericNotFound, ErrCodeResolve},
		{KindInvalidDirection, ErrCodeResolve},
		{KindUnknownUnit, ErrCodeResolve},
	}

	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			assert.Equal(t, tt.code, codeForKind(tt.kind))
		})
	}
}

func TestKindOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		kind ErrorKind
	}{
		{"invalid input", NewInvalidInputError(struct{}{}), KindInvalidInput},
		{"invalid locale", NewInvalidLocaleError("!!", errors.New("bad tag")), KindInvalidLocale},
		{"message not found", NewMessageNotFoundError("greeting"), KindMessageNotFound},
		{"message exists", NewMessageExistsError("greeting"), KindMessageExists},
		{"empty name", NewEmptyMessageNameError(), KindEmptyMessageName},
		{"bare engine error", internal.NewUnknownUnitError("parsecs"), KindUnknownUnit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kind, ok := KindOf(tt.err)
			require.True(t, ok)
			assert.Equal(t, tt.kind, kind)
			assert.True(t, IsKind(tt.err, tt.kind))
		})
	}

	assert.False(t, IsKind(nil, KindInvalidInput))
	assert.False(t, IsKind(errors.New("plain"), KindInvalidInput))
}

func TestErrorConstructors_Metadata(t *testing.T) {
	t.Run("invalid input records the type", func(t *testing.T) {
		var customErr *cuserr.CustomError
		require.True(t, errors.As(NewInvalidInputError(3.5i), &customErr))
		typ, ok := customErr.GetMetadata(MetaKeyType)
		require.True(t, ok)
		assert.Equal(t, "complex128", typ)
	})

	t.Run("message errors record the name", func(t *testing.T) {
		var customErr *cuserr.CustomError
		require.True(t, errors.As(NewMessageNotFoundError("greeting"), &customErr))
		name, ok := customErr.GetMetadata(MetaKeyMessageName)
		require.True(t, ok)
		assert.Equal(t, "greeting", name)
	})

	t.Run("catalog errors keep the cause", func(t *testing.T) {
		cause := errors.New("disk on fire")
		err := NewCatalogError(ErrMsgCatalogReadFailed, "messages/en.yaml", cause)
		assert.True(t, errors.Is(err, cause))

		var customErr *cuserr.CustomError
		require.True(t, errors.As(err, &customErr))
		path, ok := customErr.GetMetadata(MetaKeyPath)
		require.True(t, ok)
		assert.Equal(t, "messages/en.yaml", path)
	})
}
