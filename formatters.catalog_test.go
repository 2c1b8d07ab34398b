package formatters_test

import (
	"testing"

	"github.com/itsatony/go-formatters"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"
)

func TestCatalog_Register(t *testing.T) {
	engine := formatters.MustNew()

	require.NoError(t, engine.RegisterMessage("deleted", "%d file[s] deleted"))
	require.NoError(t, engine.RegisterMessage("alert", "[bold red]%s[/bold]"))

	assert.True(t, engine.HasMessage("deleted"))
	assert.Equal(t, 2, engine.MessageCount())
	assert.Equal(t, []string{"alert", "deleted"}, engine.ListMessages())

	source, ok := engine.GetMessage("deleted")
	require.True(t, ok)
	assert.Equal(t, "%d file[s] deleted", source)

	t.Run("duplicate", func(t *testing.T) {
		err := engine.RegisterMessage("deleted", "again")
		assert.True(t, formatters.IsKind(err, formatters.KindMessageExists))
	})

	t.Run("empty name", func(t *testing.T) {
		err := engine.RegisterMessage("", "x")
		assert.True(t, formatters.IsKind(err, formatters.KindEmptyMessageName))
	})

	t.Run("markup errors are caught on register", func(t *testing.T) {
		err := engine.RegisterMessage("broken", "[red nope]x")
		assert.True(t, formatters.IsKind(err, formatters.KindUnknownStyleName))
		assert.False(t, engine.HasMessage("broken"))
	})

	t.Run("missing numbers are caught on format", func(t *testing.T) {
		require.NoError(t, engine.RegisterMessage("lonely", "item[s]"))
		_, err := engine.FormatMessage("lonely")
		assert.True(t, formatters.IsKind(err, formatters.KindNumericNotFound))
	})

	t.Run("unregister", func(t *testing.T) {
		assert.True(t, engine.UnregisterMessage("lonely"))
		assert.False(t, engine.UnregisterMessage("lonely"))
	})
}

func TestCatalog_FormatMessage(t *testing.T) {
	engine := formatters.MustNew(formatters.WithColor(false))
	engine.MustRegisterMessage("deleted", "%d file[s] deleted")
	engine.MustRegisterMessage("static", "[list]a,b[/list] ([#])")
	engine.MustRegisterMessage("usage", "%.1f[%% dp=1] used")

	tests := []struct {
		name     string
		message  string
		args     []any
		expected string
	}{
		{"one", "deleted", []any{1}, "1 file deleted"},
		{"many", "deleted", []any{12}, "12 files deleted"},
		{"no args", "static", nil, "a and b (2)"},
		{"escaped percent", "usage", []any{42.5}, "42.5% used"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := engine.FormatMessage(tt.message, tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, result)
		})
	}

	_, err := engine.FormatMessage("missing")
	assert.True(t, formatters.IsKind(err, formatters.KindMessageNotFound))

	assert.Panics(t, func() {
		engine.MustRegisterMessage("deleted", "dup")
	})
}

func TestCatalog_LoadMessages(t *testing.T) {
	t.Run("loads yaml and yml files", func(t *testing.T) {
		fs := afero.NewMemMapFs()
		require.NoError(t, afero.WriteFile(fs, "messages/files.yaml", []byte(`messages:
  deleted: "%d file[s] deleted"
  copied: "%d file[s] copied"
`), 0o644))
		require.NoError(t, afero.WriteFile(fs, "messages/users.yml", []byte(`messages:
  online: "[#] user[s] online: [list]%s[/list]"
`), 0o644))
		require.NoError(t, afero.WriteFile(fs, "messages/README.md", []byte("ignored"), 0o644))

		engine := formatters.MustNew()
		n, err := engine.LoadMessages(fs, "messages")
		require.NoError(t, err)
		assert.Equal(t, 3, n)
		assert.Equal(t, []string{"copied", "deleted", "online"}, engine.ListMessages())

		result, err := engine.FormatMessage("online", "ann,bob")
		require.NoError(t, err)
		assert.Equal(t, "2 users online: ann and bob", result)
	})

	t.Run("collects every failure", func(t *testing.T) {
		fs := afero.NewMemMapFs()
		require.NoError(t, afero.WriteFile(fs, "messages/a.yaml", []byte(`messages:
  good: "1 item[s]"
  bad: "[blue nope]x"
`), 0o644))
		require.NoError(t, afero.WriteFile(fs, "messages/b.yaml", []byte("messages: [unclosed"), 0o644))
		require.NoError(t, afero.WriteFile(fs, "messages/c.yaml", []byte(`messages:
  good: "2 item[s]"
`), 0o644))

		engine := formatters.MustNew()
		n, err := engine.LoadMessages(fs, "messages")
		require.Error(t, err)
		assert.Equal(t, 1, n)
		assert.Len(t, multierr.Errors(err), 3)
		assert.True(t, engine.HasMessage("good"))
	})

	t.Run("missing directory", func(t *testing.T) {
		engine := formatters.MustNew()
		n, err := engine.LoadMessages(afero.NewMemMapFs(), "nowhere")
		require.Error(t, err)
		assert.Zero(t, n)
	})
}
