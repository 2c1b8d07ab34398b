package formatters

import "github.com/itsatony/go-formatters/internal"

// Engine defaults
const (
	DefaultLocale = internal.DefaultLocale
	DefaultJoin   = " "
)

// Rule priorities, lower is tried first
const (
	PriorityFirst      = internal.PriorityFirst
	PriorityFormatting = internal.PriorityFormatting
	PriorityQuantifier = internal.PriorityQuantifier
	PriorityList       = internal.PriorityList
	PriorityStyle      = internal.PriorityStyle
	PriorityPlural     = internal.PriorityPlural
	PriorityNumeric    = internal.PriorityNumeric
	PriorityText       = internal.PriorityText
)

// Rule names of the default rule set. A custom rule registered under one of
// these names replaces the default.
const (
	RuleNameBytes      = internal.RuleNameBytes
	RuleNameNumber     = internal.RuleNameNumber
	RuleNamePercentage = internal.RuleNamePercentage
	RuleNameQuantifier = internal.RuleNameQuantifier
	RuleNameList       = internal.RuleNameList
	RuleNameStyle      = internal.RuleNameStyle
	RuleNamePlural     = internal.RuleNamePlural
	RuleNameNumeric    = internal.RuleNameNumeric
	RuleNameText       = internal.RuleNameText
)

// Search directions for nearest numeric lookups
const (
	DirectionBackward        = internal.DirectionBackward
	DirectionForward         = internal.DirectionForward
	DirectionBackwardForward = internal.DirectionBackwardForward
	DirectionForwardBackward = internal.DirectionForwardBackward
	DirectionNearest         = internal.DirectionNearest
)

// Units accepted by ByUnit
const (
	UnitBytes  = internal.UnitBytes
	UnitNumber = internal.UnitNumber
	UnitTimeMs = internal.UnitTimeMs
)

// Message catalog file handling
const (
	CatalogExtYAML = ".yaml"
	CatalogExtYML  = ".yml"
)

// Error code constants for categorization
const (
	ErrCodeParse   = "FORMATTERS_PARSE"
	ErrCodeResolve = "FORMATTERS_RESOLVE"
	ErrCodePlural  = "FORMATTERS_PLURAL"
	ErrCodeCatalog = "FORMATTERS_CATALOG"
	ErrCodeInput   = "FORMATTERS_INPUT"
)

// Error message constants
const (
	ErrMsgFormatFailed      = "formatting failed"
	ErrMsgInvalidInput      = "unsupported input value"
	ErrMsgInvalidLocale     = "invalid locale"
	ErrMsgMessageNotFound   = "message not found"
	ErrMsgMessageExists     = "message already registered"
	ErrMsgEmptyMessageName  = "message name cannot be empty"
	ErrMsgCatalogReadFailed = "failed to read message catalog"
	ErrMsgCatalogParse      = "failed to parse message catalog"
)

// Metadata keys for cuserr.WithMetadata
const (
	MetaKeyKind        = "kind"
	MetaKeyOffset      = "offset"
	MetaKeyRemaining   = internal.DetailRemaining
	MetaKeyDirection   = internal.DetailDirection
	MetaKeyIndex       = internal.DetailIndex
	MetaKeyLength      = internal.DetailLength
	MetaKeyStyle       = internal.DetailStyle
	MetaKeySingular    = internal.DetailSingular
	MetaKeyRule        = internal.DetailRule
	MetaKeyUnit        = internal.DetailUnit
	MetaKeyMessage     = "message"
	MetaKeyMessageName = "message_name"
	MetaKeyLocale      = "locale"
	MetaKeyType        = "type"
	MetaKeyPath        = "path"
)

// Log message constants
const (
	LogMsgEngineCreated     = "formatter engine created"
	LogMsgMessageRegistered = "message registered"
	LogMsgMessageRemoved    = "message unregistered"
	LogMsgCatalogLoaded     = "message catalog loaded"
	LogMsgCatalogFile       = "reading message catalog file"
)

// Log field names
const (
	LogFieldLocale   = "locale"
	LogFieldRules    = "rule_count"
	LogFieldMessage  = "message"
	LogFieldMessages = "message_count"
	LogFieldPath     = "path"
)
