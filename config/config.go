// Package config loads tabledb settings from environment variables with
// defaults, and validates them before anything runs.
package config

// Config holds all application configuration.
type Config struct {
	Logging LoggingConfig
	Table   TableConfig
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: debug, info, warn, error (default: info)
	Level string `env:"TABLEDB_LOG_LEVEL" default:"info"`

	// Format is the log format: text or json (default: text)
	Format string `env:"TABLEDB_LOG_FORMAT" default:"text"`
}

// TableConfig holds table file settings.
type TableConfig struct {
	// DumpWidth is the column width of dump and print, 0 for unpadded (default: 10)
	DumpWidth int `env:"TABLEDB_DUMP_WIDTH" default:"10"`

	// MaxLineSize is the longest line accepted when loading (default: 1MiB)
	MaxLineSize int `env:"TABLEDB_MAX_LINE_SIZE" default:"1048576"`

	// Preload lists table files loaded before any command runs
	Preload []string `env:"TABLEDB_PRELOAD"`
}
