package internal

// Rule names for the default rule set
const (
	RuleNameBytes      = "bytes"
	RuleNameNumber     = "number"
	RuleNamePercentage = "percentage"
	RuleNameQuantifier = "quantifier"
	RuleNameList       = "list"
	RuleNameStyle      = "style"
	RuleNamePlural     = "plural"
	RuleNameNumeric    = "numeric"
	RuleNameText       = "text"
)

// Rule priorities, lower is tried first
const (
	PriorityFirst      = 0
	PriorityFormatting = 30
	PriorityQuantifier = 50
	PriorityList       = 70
	PriorityStyle      = 80
	PriorityPlural     = 90
	PriorityNumeric    = 99
	PriorityText       = 100
	PriorityLast       = 100
)

// Capture group names used by the default rules
const (
	FieldTag         = "tag"
	FieldAttrs       = "attrs"
	FieldContent     = "content"
	FieldIsClosing   = "isClosing"
	FieldMainColor   = "mainColor"
	FieldSubColors   = "subColors"
	FieldPluralRules = "pluralRules"
)

// Direction shorthands
const (
	DirectionBackward        = "<"
	DirectionForward         = ">"
	DirectionBackwardForward = "<>"
	DirectionForwardBackward = "><"
	DirectionNearest         = "|"
)

// Direction names used in error messages
const (
	DirectionNameBackward        = "backwards"
	DirectionNameForward         = "forwards"
	DirectionNameBackwardForward = "backwards then forwards"
	DirectionNameForwardBackward = "forwards then backwards"
	DirectionNameNearest         = "nearest"
	DirectionNameOther           = "custom"
)

// Attribute names
const (
	AttrDirection    = "direction"
	AttrOr           = "or"
	AttrAnd          = "and"
	AttrCutoff       = "cutoff"
	AttrCutoffPlural = "cutoffPlural"
	AttrQuote        = "quote"
	AttrDP           = "dp"
	AttrPad          = "pad"
	AttrFloat        = "float"
)

// Boolean attribute values
const (
	AttrValueTrue  = "true"
	AttrValueFalse = "false"
)

// Style names that only introduce a style tag and carry no codes
const (
	StyleKeywordColor = "color"
	StyleKeywordStyle = "style"
)

// Style name prefix stripped before lookup ("fgBlue" is "blue")
const StylePrefixForeground = "fg"

// Plural defaults
const (
	DefaultPluralValue  = 10
	DefaultCutoffPlural = "other[s]"
	DefaultQuote        = `"`
)

// Leaf unit names
const (
	UnitBytes  = "bytes"
	UnitNumber = "number"
	UnitTimeMs = "timeMs"
)

// Default locale
const DefaultLocale = "en"

// String constants
const (
	StringValueEmpty = ""
	StringSpace      = " "
)

// Log message constants
const (
	LogMsgTokenizerStart = "starting tokenization"
	LogMsgTokenizerEnd   = "tokenization complete"
	LogMsgRuleMatched    = "rule matched"
	LogMsgResolverStart  = "starting resolution"
	LogMsgResolverEnd    = "resolution complete"
	LogMsgRuleSetBuilt   = "rule set built"
	LogMsgRuleOverridden = "default rule overridden"
	LogMsgRenderArray    = "rendering array input"
)

// Log field names
const (
	LogFieldSource   = "source_length"
	LogFieldTokens   = "token_count"
	LogFieldRule     = "rule"
	LogFieldRules    = "rule_count"
	LogFieldOffset   = "offset"
	LogFieldLength   = "length"
	LogFieldElements = "element_count"
)

// Error message constants
const (
	ErrMsgUnmatchedToken   = "unable to find next token in remaining string"
	ErrMsgNumericNotFound  = "cannot find numeric in stack"
	ErrMsgUnknownStyleName = "cannot find style"
	ErrMsgNoPluralRule     = "no valid pluralization rule found for the singular"
	ErrMsgInvalidDirection = "invalid search direction"
	ErrMsgInvalidRule      = "invalid rule"
	ErrMsgEmptyMatch       = "rule matched without consuming input"
	ErrMsgRuleNoMatcher    = "rule has neither pattern nor match function"
	ErrMsgRuleNoOperate    = "custom rule has no operate function"
	ErrMsgRuleNoName       = "rule name cannot be empty"
	ErrMsgUnknownUnit      = "unit not supported"
)

// Error format strings
const (
	ErrFmtQuoted        = "%s %q"
	ErrFmtNumeric       = "%s %s from token index %d of %d"
	ErrFmtWithCause     = "%s: %v"
	ErrFmtSuggestion    = "%s%s"
	ErrFmtRuleMessage   = "%s %q: %s"
	ErrFmtInvalidDirSeq = "%s %q"
)
