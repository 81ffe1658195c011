package logger

// Exported for white-box testing of the error chain formatting.
var (
	CollectErrorEntries = collectErrorEntries
	FormatErrorEntries  = formatErrorEntries
)
