package sidecar

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrParse marks documents that are malformed or unreadable. Bulk
	// operations treat it as "skip this document".
	ErrParse = errors.New("parse error")
	// ErrValidation marks records rejected before a write, such as a save
	// without a title. Surfaced directly to the caller; never auto-repaired.
	ErrValidation = errors.New("validation error")
)

// Wrap builds an error message that includes operation context while tagging
// it with the provided marker so callers can classify it with errors.Is.
func Wrap(marker error, operation, message string, err error) error {
	detail := buildDetail(operation, message)
	if marker == nil {
		marker = ErrParse
	}
	if err != nil {
		return fmt.Errorf("%w: %s: %w", marker, detail, err)
	}
	return fmt.Errorf("%w: %s", marker, detail)
}

func buildDetail(operation, message string) string {
	parts := make([]string, 0, 2)
	if operation = strings.TrimSpace(operation); operation != "" {
		parts = append(parts, operation)
	}
	if message = strings.TrimSpace(message); message != "" {
		parts = append(parts, message)
	}
	if len(parts) == 0 {
		return "sidecar failure"
	}
	return strings.Join(parts, ": ")
}
