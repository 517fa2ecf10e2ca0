package config

// Output defaults.
const (
	DefaultOutputFormat = "text"
	DefaultOutputColor  = ColorAuto
)

// Walk defaults.
const (
	DefaultWalkIncludeRemotes = false
	DefaultWalkPolicy         = "strict"
)

// Logging defaults.
const (
	DefaultLoggingLevel  = "warn"
	DefaultLoggingFormat = LogFormatText
)

// Color modes for output.color.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Log formats for logging.format.
const (
	LogFormatText = "text"
	LogFormatJSON = "json"
)
