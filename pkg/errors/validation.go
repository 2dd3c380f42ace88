package errors

import (
	"math"
	"slices"
	"strings"
	"unicode"
)

// MaxGridSize bounds the width and height of a board.
const MaxGridSize = 64

// ValidateDirection checks that d names one of the six sides of a cell.
func ValidateDirection(d int) error {
	if d < 0 || d > 5 {
		return New(ErrCodeInvalidDirection, "direction %d out of range (must be 0..5)", d)
	}
	return nil
}

// ValidateGridSize checks board dimensions.
func ValidateGridSize(width, height int) error {
	if width < 1 || height < 1 {
		return New(ErrCodeInvalidInput, "grid size %dx%d must be at least 1x1", width, height)
	}
	if width > MaxGridSize || height > MaxGridSize {
		return New(ErrCodeInvalidInput, "grid size %dx%d too large (max %d)", width, height, MaxGridSize)
	}
	return nil
}

// ValidatePoint rejects pointer coordinates that are not finite numbers.
func ValidatePoint(x, y float64) error {
	for _, v := range []float64{x, y} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return New(ErrCodeInvalidInput, "pointer position (%v, %v) is not finite", x, y)
		}
	}
	return nil
}

// ValidateFormats checks that every entry of formats is allowed. Empty
// lists are rejected.
func ValidateFormats(formats []string, allowed ...string) error {
	if len(formats) == 0 {
		return New(ErrCodeInvalidFormat, "no output format given")
	}
	for _, f := range formats {
		if !slices.Contains(allowed, f) {
			return New(ErrCodeInvalidFormat, "invalid format: %s (must be one of %s)", f, strings.Join(allowed, ", "))
		}
	}
	return nil
}

// ValidatePath validates a file path for safety.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 500 characters
//   - No null bytes or control characters
func ValidatePath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidInput, "path cannot be empty")
	}

	const maxPathLength = 500
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidInput, "path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "path contains invalid characters")
		}
	}
	return nil
}
