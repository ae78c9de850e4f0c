package config

import (
	"fmt"
	"log/slog"
	"strings"
)

// LogLevel is the minimum level written to the log
type LogLevel string

const (
	LogLevelDebug LogLevel = "debug"
	LogLevelInfo  LogLevel = "info"
	LogLevelWarn  LogLevel = "warn"
	LogLevelError LogLevel = "error"
)

// ParseLogLevel converts a case-insensitive string to LogLevel
func ParseLogLevel(s string) (LogLevel, error) {
	l := LogLevel(strings.ToLower(s))
	if !l.Valid() {
		return "", fmt.Errorf("invalid log level %q: must be debug, info, warn or error", s)
	}
	return l, nil
}

// Valid reports whether l names a known level
func (l LogLevel) Valid() bool {
	switch l {
	case LogLevelDebug, LogLevelInfo, LogLevelWarn, LogLevelError:
		return true
	}
	return false
}

// SlogLevel returns the matching slog level
func (l LogLevel) SlogLevel() slog.Level {
	switch l {
	case LogLevelDebug:
		return slog.LevelDebug
	case LogLevelWarn:
		return slog.LevelWarn
	case LogLevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// LogFormat selects the slog handler
type LogFormat string

const (
	LogFormatText LogFormat = "text"
	LogFormatJSON LogFormat = "json"
)

// ParseLogFormat converts a case-insensitive string to LogFormat
func ParseLogFormat(s string) (LogFormat, error) {
	f := LogFormat(strings.ToLower(s))
	if !f.Valid() {
		return "", fmt.Errorf("invalid log format %q: must be text or json", s)
	}
	return f, nil
}

// Valid reports whether f names a known format
func (f LogFormat) Valid() bool {
	return f == LogFormatText || f == LogFormatJSON
}

// AliasFormat is the serialization of an alias map
type AliasFormat string

const (
	AliasFormatJSON AliasFormat = "json"
	AliasFormatCSV  AliasFormat = "csv"
	AliasFormatTSV  AliasFormat = "tsv"
)

// ParseAliasFormat converts a case-insensitive string to AliasFormat
func ParseAliasFormat(s string) (AliasFormat, error) {
	f := AliasFormat(strings.ToLower(s))
	if !f.Valid() {
		return "", fmt.Errorf("invalid alias format %q: must be json, csv or tsv", s)
	}
	return f, nil
}

// Valid reports whether f names a known format
func (f AliasFormat) Valid() bool {
	switch f {
	case AliasFormatJSON, AliasFormatCSV, AliasFormatTSV:
		return true
	}
	return false
}
