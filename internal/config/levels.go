package config

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

// ErrUnknownLevel is returned when a level name is not part of the severity table.
var ErrUnknownLevel = errors.New("unknown log level")

// Severity is the integer rank of a log level. Higher values are more severe.
type Severity int

// Canonical severities, in ascending order.
const (
	LevelDebug    Severity = 10
	LevelInfo     Severity = 20
	LevelWarning  Severity = 30
	LevelError    Severity = 40
	LevelCritical Severity = 50
)

// Canonical level names as they appear in the severity table.
const (
	LevelNameDebug    = "DEBUG"
	LevelNameInfo     = "INFO"
	LevelNameWarning  = "WARNING"
	LevelNameError    = "ERROR"
	LevelNameCritical = "CRITICAL"
)

// levelOrder lists the table entries from least to most severe.
var levelOrder = [...]struct {
	name     string
	severity Severity
}{
	{LevelNameDebug, LevelDebug},
	{LevelNameInfo, LevelInfo},
	{LevelNameWarning, LevelWarning},
	{LevelNameError, LevelError},
	{LevelNameCritical, LevelCritical},
}

// levelAliases maps lower-case spellings used by other tooling onto table names.
var levelAliases = map[string]string{
	"warn":  LevelNameWarning,
	"fatal": LevelNameCritical,
}

// SrcLogLevels returns the source log-level table: level name to severity.
// Each call returns a new map; the table itself is never modified.
func SrcLogLevels() map[string]Severity {
	levels := make(map[string]Severity, len(levelOrder))
	for _, l := range levelOrder {
		levels[l.name] = l.severity
	}
	return levels
}

// LevelNames returns the table keys ordered by ascending severity.
func LevelNames() []string {
	names := make([]string, len(levelOrder))
	for i, l := range levelOrder {
		names[i] = l.name
	}
	return names
}

// LookupLevel performs an exact, case-sensitive lookup in the severity table.
func LookupLevel(name string) (Severity, bool) {
	for _, l := range levelOrder {
		if l.name == name {
			return l.severity, true
		}
	}
	return 0, false
}

// ParseLevel resolves free-form level text (e.g. "warning", " Info ", "warn")
// to its severity. Only ASCII case is folded.
func ParseLevel(text string) (Severity, error) {
	trimmed := strings.TrimSpace(text)
	if !isASCII(trimmed) {
		return 0, fmt.Errorf("%w: %q (must be one of: %s)", ErrUnknownLevel, text, strings.Join(LevelNames(), ", "))
	}
	name := strings.ToUpper(trimmed)
	if alias, ok := levelAliases[strings.ToLower(name)]; ok {
		name = alias
	}
	if sev, ok := LookupLevel(name); ok {
		return sev, nil
	}
	return 0, fmt.Errorf("%w: %q (must be one of: %s)", ErrUnknownLevel, text, strings.Join(LevelNames(), ", "))
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= utf8.RuneSelf {
			return false
		}
	}
	return true
}

// Valid reports whether s is one of the table severities.
func (s Severity) Valid() bool {
	for _, l := range levelOrder {
		if l.severity == s {
			return true
		}
	}
	return false
}

// String returns the table name for s, or "Severity(n)" for values outside the table.
func (s Severity) String() string {
	for _, l := range levelOrder {
		if l.severity == s {
			return l.name
		}
	}
	return fmt.Sprintf("Severity(%d)", int(s))
}
