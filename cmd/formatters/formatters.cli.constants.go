package main

// Command names
const (
	CmdNameRender    = "render"
	CmdNameValidate  = "validate"
	CmdNameTokens    = "tokens"
	CmdNamePluralize = "pluralize"
	CmdNameVersion   = "version"
	CmdNameHelp      = "help"
)

// Flag names - long form
const (
	FlagInput    = "input"
	FlagOutput   = "output"
	FlagMessage  = "message"
	FlagMessages = "messages"
	FlagLocale   = "locale"
	FlagJoin     = "join"
	FlagColor    = "color"
	FlagFormat   = "format"
	FlagCount    = "count"
	FlagPrefix   = "prefix"
)

// Flag names - short form
const (
	FlagInputShort   = "i"
	FlagOutputShort  = "o"
	FlagMessageShort = "m"
	FlagLocaleShort  = "l"
	FlagFormatShort  = "F"
	FlagCountShort   = "n"
	FlagPrefixShort  = "p"
)

// Flag default values
const (
	FlagDefaultOutput = "-" // stdout
	FlagDefaultFormat = "text"
	FlagDefaultCount  = 10
)

// Output formats
const (
	OutputFormatText = "text"
	OutputFormatJSON = "json"
)

// Color modes
const (
	ColorModeAuto   = "auto"
	ColorModeAlways = "always"
	ColorModeNever  = "never"
)

// Exit codes
const (
	ExitCodeSuccess         = 0
	ExitCodeError           = 1
	ExitCodeUsageError      = 2
	ExitCodeValidationError = 3
	ExitCodeInputError      = 4
)

// Input source indicators
const (
	InputSourceStdin = "-"
)

// Error messages - ALL must be constants
const (
	ErrMsgUnknownCommand    = "unknown command"
	ErrMsgUnknownTopic      = "unknown help topic"
	ErrMsgDotenvFailed      = "failed to load .env"
	ErrMsgEncodeFailed      = "failed to encode output"
	ErrMsgInvalidFlags      = "invalid arguments"
	ErrMsgMissingInput      = "markup required: pass it as arguments or with --input"
	ErrMsgMissingWord       = "word required"
	ErrMsgInvalidFormat     = "invalid output format"
	ErrMsgInvalidColorMode  = "invalid color mode"
	ErrMsgConfigFailed      = "failed to read environment"
	ErrMsgEngineFailed      = "failed to create engine"
	ErrMsgReadFileFailed    = "failed to read file"
	ErrMsgWriteOutputFailed = "failed to write output"
	ErrMsgFormatFailed      = "formatting failed"
	ErrMsgPluralizeFailed   = "pluralization failed"
)

// Command summaries, shown in the main help
const (
	SummaryRender    = "Render markup"
	SummaryValidate  = "Check markup without printing it"
	SummaryTokens    = "Show the tokens of markup"
	SummaryPluralize = "Pluralize a word"
	SummaryVersion   = "Show version and grammar information"
	SummaryHelp      = "Show help for a command or topic"
)

// Help topics that are not commands
const (
	HelpTopicMarkup = "markup"
)

// Help text templates
const (
	HelpMainHeader = `%s - %s

Usage:
    %s <command> [options] [markup...]

Commands:`

	HelpCommandRow = "    %s\t%s"

	HelpMainFooter = `
Topics:
    markup      Tag reference and rule order

Environment:
    FORMATTERS_LOCALE     Locale tag (default: en)
    FORMATTERS_JOIN       Separator between rendered arguments (default: " ")
    FORMATTERS_COLOR      auto, always or never (default: auto)
    FORMATTERS_MESSAGES   Directory of YAML message catalogs
    FORMATTERS_DEBUG      Log engine activity to stderr

A .env file in the working directory is read before the environment.
Use "formatters help <command>" for more about a command.`

	HelpSeeHelp = `Run "formatters help" for the list of commands.`

	HelpMarkupTags = `Markup tags

    1024[bytes]                   1kb            byte size, base 1024
    1234567[n]                    1,234,567      grouped number
    12.345[% dp=1]                12.3%          percentage, dp sets decimals
    [list or cutoff=2]a,b,c[/list]   a, b or 1 other
    [#] item[s]                   3 items        [#] repeats the nearest number
    3 [person|people]             3 people       singular|plural
    1 [person|people >] 3         1 people 3     < left, > right, | nearest
    [red]x[/red]                  x              styles, closed by [/name]

Plural tags, [#] and lists read the nearest number in the text. Lists
count as numbers too: [list]a,b,c[/list] counts 3.

Rule order (first match at the cursor wins, lower priority first):
`

	HelpRuleHeader = "    PRIORITY\tRULE\tKIND"
	HelpRuleRow    = "    %d\t%s\t%s"

	HelpRenderUsage = `Render markup

Usage:
    formatters render [options] [markup...]

Each argument is rendered on its own; empty results are dropped and the
rest joined with --join.

Options:
    -i, --input <file>      Markup file (use "-" for stdin)
    -m, --message <name>    Render a catalog message; arguments fill its verbs
    --messages <dir>        Directory of YAML message catalogs
    -l, --locale <tag>      Locale tag
    --join <sep>            Separator between rendered arguments
    --color <mode>          auto, always or never
    -o, --output <file>     Output file (default: stdout)

Examples:
    formatters render "1024[bytes]"
    formatters render "[#] item[s]: [list]foo,bar,baz[/list]"
    echo "3 [person|people]" | formatters render -i -
    formatters render --messages ./messages -m files_deleted 3`

	HelpValidateUsage = `Check markup without printing it

Usage:
    formatters validate [options] [markup]

Both passes run, so a plural with no number to bind to fails here too.
Exit code 3 means the markup is invalid.

Options:
    -i, --input <file>      Markup file (use "-" for stdin)
    -F, --format <format>   Output format: text, json (default: text)

Examples:
    formatters validate "item[s]"
    formatters validate -i message.txt -F json`

	HelpTokensUsage = `Show the tokens of markup

Usage:
    formatters tokens [options] [markup]

Lists every token with its rule, offset and length. Tokens are shown
before resolution, so [#] and plural tags appear unbound.

Options:
    -i, --input <file>      Markup file (use "-" for stdin)
    -F, --format <format>   Output format: text, json (default: text)

Examples:
    formatters tokens "3 [person|people <]"`

	HelpPluralizeUsage = `Pluralize a word

Usage:
    formatters pluralize [options] <word>

The word may be plain ("box"), braced ("pe[rson|ople]") or suffixed
("item[s]").

Options:
    -n, --count <number>    Count to pluralize for (default: 10)
    -p, --prefix            Prefix the count

Examples:
    formatters pluralize box
    formatters pluralize -n 1 -p "pe[rson|ople]"`

	HelpVersionUsage = `Show version and grammar information

Usage:
    formatters version [options]

Prints the build version, VCS revision, default locale and the order of
the default rules.

Options:
    -F, --format <format>   Output format: text, json (default: text)`

	HelpHelpUsage = `Show help for a command or topic

Usage:
    formatters help [command|topic]

Topics:
    markup      Tag reference and rule order`
)

// Version output
const (
	VersionTextTemplate = `%s %s
    module    %s
    revision  %s
    go        %s %s
    locale    %s
    rules     %s`
	VersionUnknown       = "unknown"
	VersionDev           = "dev"
	VersionDevel         = "(devel)"
	VersionDirtySuffix   = "+dirty"
	RevisionShortLen     = 12
	BuildSettingRevision = "vcs.revision"
	BuildSettingModified = "vcs.modified"
	ModulePath           = "github.com/itsatony/go-formatters"
)

// Validation output format templates
const (
	ValidationTextSuccess = "Markup is valid"
	ValidationTextFailure = "Markup is invalid"
	ValidationTextDetail  = "  [%s] %s"
	ValidationTextOffset  = "  at offset %d"
)

// Token table format
const (
	TokenTextHeader = "RULE         OFFSET  LENGTH  SOURCE"
	TokenTextFormat = "%-12s %6d  %6d  %q"
)

// CLI metadata
const (
	CLIName        = "formatters"
	CLIDescription = "Human-readable text from inline markup"
)

// File permission constant
const (
	FilePermissions = 0644
)

// Format string constants
const (
	FmtErrorWithDetail = "%s: %s\n"
	FmtErrorWithCause  = "%s: %v\n"
	FmtNewline         = "\n"
)
