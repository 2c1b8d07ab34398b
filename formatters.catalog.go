package formatters

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/afero"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// messageFile is the YAML layout of a catalog file:
//
//	messages:
//	  files_deleted: "%d file[s] deleted"
type messageFile struct {
	Messages map[string]string `yaml:"messages"`
}

// RegisterMessage stores a named markup message. The message is tokenized
// to catch grammar and style errors early; numeric lookups are checked only
// when the message is formatted.
func (e *Engine) RegisterMessage(name, source string) error {
	if name == "" {
		return NewEmptyMessageNameError()
	}
	if _, err := e.formatter.Tokenize(source); err != nil {
		return wrapError(err)
	}

	e.msgMu.Lock()
	defer e.msgMu.Unlock()

	if _, exists := e.messages[name]; exists {
		return NewMessageExistsError(name)
	}
	e.messages[name] = source

	e.logger.Debug(LogMsgMessageRegistered, zap.String(LogFieldMessage, name))
	return nil
}

// MustRegisterMessage registers a message and panics on error.
func (e *Engine) MustRegisterMessage(name, source string) {
	if err := e.RegisterMessage(name, source); err != nil {
		panic(err)
	}
}

// UnregisterMessage removes a message by name.
// Returns true if the message existed and was removed, false otherwise.
func (e *Engine) UnregisterMessage(name string) bool {
	e.msgMu.Lock()
	defer e.msgMu.Unlock()

	if _, exists := e.messages[name]; exists {
		delete(e.messages, name)
		e.logger.Debug(LogMsgMessageRemoved, zap.String(LogFieldMessage, name))
		return true
	}
	return false
}

// GetMessage returns the source of a registered message.
func (e *Engine) GetMessage(name string) (string, bool) {
	e.msgMu.RLock()
	defer e.msgMu.RUnlock()

	source, ok := e.messages[name]
	return source, ok
}

// HasMessage checks if a message is registered with the given name.
func (e *Engine) HasMessage(name string) bool {
	_, ok := e.GetMessage(name)
	return ok
}

// ListMessages returns all registered message names in sorted order.
func (e *Engine) ListMessages() []string {
	e.msgMu.RLock()
	defer e.msgMu.RUnlock()

	names := make([]string, 0, len(e.messages))
	for name := range e.messages {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// MessageCount returns the number of registered messages.
func (e *Engine) MessageCount() int {
	e.msgMu.RLock()
	defer e.msgMu.RUnlock()

	return len(e.messages)
}

// FormatMessage renders a registered message. With args the message is
// first expanded with fmt.Sprintf, so a literal percent tag is written [%%].
func (e *Engine) FormatMessage(name string, args ...any) (string, error) {
	source, ok := e.GetMessage(name)
	if !ok {
		return "", NewMessageNotFoundError(name)
	}
	if len(args) > 0 {
		source = fmt.Sprintf(source, args...)
	}
	return e.Format(source)
}

// LoadMessages registers the messages of every .yaml and .yml file in dir.
// Files are read in name order and messages within a file in key order.
// Every failure is collected; the returned count covers the messages that
// were registered.
func (e *Engine) LoadMessages(fs afero.Fs, dir string) (int, error) {
	entries, err := afero.ReadDir(fs, dir)
	if err != nil {
		return 0, NewCatalogError(ErrMsgCatalogReadFailed, dir, err)
	}

	var errs error
	loaded := 0
	for _, entry := range entries {
		if entry.IsDir() || !isCatalogFile(entry.Name()) {
			continue
		}
		file := filepath.Join(dir, entry.Name())
		n, err := e.loadMessageFile(fs, file)
		loaded += n
		errs = multierr.Append(errs, err)
	}

	e.logger.Debug(LogMsgCatalogLoaded,
		zap.String(LogFieldPath, dir),
		zap.Int(LogFieldMessages, loaded),
	)
	return loaded, errs
}

func (e *Engine) loadMessageFile(fs afero.Fs, file string) (int, error) {
	e.logger.Debug(LogMsgCatalogFile, zap.String(LogFieldPath, file))

	data, err := afero.ReadFile(fs, file)
	if err != nil {
		return 0, NewCatalogError(ErrMsgCatalogReadFailed, file, err)
	}

	var doc messageFile
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return 0, NewCatalogError(ErrMsgCatalogParse, file, err)
	}

	names := make([]string, 0, len(doc.Messages))
	for name := range doc.Messages {
		names = append(names, name)
	}
	sort.Strings(names)

	var errs error
	loaded := 0
	for _, name := range names {
		if err := e.RegisterMessage(name, doc.Messages[name]); err != nil {
			errs = multierr.Append(errs, err)
			continue
		}
		loaded++
	}
	return loaded, errs
}

func isCatalogFile(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	return ext == CatalogExtYAML || ext == CatalogExtYML
}
