package tui

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/quantmind-br/repoanalyzer/internal/config"
	"github.com/quantmind-br/repoanalyzer/internal/converter"
)

// Validation error messages
var (
	ErrInvalidNumber = errors.New("must be a valid number")
	ErrNegativeInt   = errors.New("must not be negative")
)

// ValidateNonNegativeInt validates that a string represents an integer >= 0
func ValidateNonNegativeInt(s string) error {
	if strings.TrimSpace(s) == "" {
		return nil // Empty is valid (will use default)
	}
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return ErrInvalidNumber
	}
	if n < 0 {
		return ErrNegativeInt
	}
	return nil
}

// ValidateCloneMethod validates clone method values
func ValidateCloneMethod(s string) error {
	if !config.IsValidCloneMethod(strings.ToLower(strings.TrimSpace(s))) {
		return fmt.Errorf("invalid clone method: must be one of %s", strings.Join(config.CloneMethods, ", "))
	}
	return nil
}

// ValidateEncoding validates that a charset name is known
func ValidateEncoding(s string) error {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	if _, err := converter.GetEncoder(s); err != nil {
		return err
	}
	return nil
}

// ValidateKeywords validates a newline separated keyword list
func ValidateKeywords(s string) error {
	for _, kw := range splitLines(s) {
		if strings.ContainsAny(kw, " \t") {
			return fmt.Errorf("keyword %q must not contain whitespace", kw)
		}
	}
	return nil
}

// ValidateLogLevel validates log level values
func ValidateLogLevel(s string) error {
	validLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLevels[strings.ToLower(s)] {
		return fmt.Errorf("invalid log level: must be one of debug, info, warn, error")
	}
	return nil
}

// ValidateLogFormat validates log format values
func ValidateLogFormat(s string) error {
	validFormats := map[string]bool{
		"json":   true,
		"pretty": true,
	}
	if !validFormats[strings.ToLower(s)] {
		return fmt.Errorf("invalid log format: must be json or pretty")
	}
	return nil
}
