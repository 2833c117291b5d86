package bridge

import (
	"fmt"
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// The validation gate. The script side has no parameterized queries, so
// every caller-supplied value is rejected or normalized here before it may
// be interpolated into a program. The Safe* types exist so the composer and
// the script builders cannot be handed a raw string by accident.

// MaxListLimit bounds pagination for any listing or search operation.
const MaxListLimit = 10000

var (
	idPattern   = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)
	datePattern = regexp.MustCompile(`^[A-Za-z0-9 /:,.\-]*$`)
)

// SafeID is an identifier that passed ValidateID. It is interpolated
// without further escaping, which is why validation rejects instead of
// sanitizing.
type SafeID string

// SafeText is free text that passed ValidateText: NFC-normalized and free
// of double quotes and backslashes.
type SafeText string

// SafeDate is a date string that passed ValidateDate.
type SafeDate string

// ValidateID checks a task/project/tag/folder identifier. Anything outside
// [A-Za-z0-9_-] is rejected; there is no sanitized form of a bad id.
func ValidateID(raw string, kind string) (SafeID, *StructuredError) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "", NewError(ErrInvalidIDFormat, fmt.Sprintf("%s id must not be empty", kind))
	}
	if !idPattern.MatchString(trimmed) {
		return "", NewError(ErrInvalidIDFormat,
			fmt.Sprintf("%s id contains invalid characters", kind),
			fmt.Sprintf("got %q, want [A-Za-z0-9_-]+", raw))
	}
	return SafeID(trimmed), nil
}

// ValidateIDs validates a whole id list, failing on the first bad entry.
func ValidateIDs(raw []string, kind string) ([]SafeID, *StructuredError) {
	ids := make([]SafeID, 0, len(raw))
	for _, r := range raw {
		id, serr := ValidateID(r, kind)
		if serr != nil {
			return nil, serr
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// ValidateText checks a free-text field (name, note, tag, search query).
// Empty is allowed and means "clear this field". Double quotes and
// backslashes would break out of an AppleScript string literal and are
// rejected outright.
func ValidateText(raw string, field string) (SafeText, *StructuredError) {
	value := norm.NFC.String(raw)
	if strings.ContainsAny(value, `"\`) {
		return "", NewError(ErrValidation,
			fmt.Sprintf("%s must not contain double quotes or backslashes", field))
	}
	for _, r := range value {
		if r < 0x20 {
			return "", NewError(ErrValidation,
				fmt.Sprintf("%s must not contain control characters", field))
		}
	}
	return SafeText(value), nil
}

// ValidateTexts validates a list of free-text values, e.g. tag names.
func ValidateTexts(raw []string, field string) ([]SafeText, *StructuredError) {
	values := make([]SafeText, 0, len(raw))
	for _, r := range raw {
		v, serr := ValidateText(r, field)
		if serr != nil {
			return nil, serr
		}
		values = append(values, v)
	}
	return values, nil
}

// ValidateDate checks a date string against the allow-list character class.
// Empty is allowed and means "clear the date".
func ValidateDate(raw string, field string) (SafeDate, *StructuredError) {
	value := strings.TrimSpace(raw)
	if !datePattern.MatchString(value) {
		return "", NewError(ErrInvalidDateFormat,
			fmt.Sprintf("%s contains invalid characters", field),
			fmt.Sprintf("got %q", raw))
	}
	return SafeDate(value), nil
}

// ValidateInterval checks a repetition interval (whole units, at least 1).
func ValidateInterval(n int) *StructuredError {
	if n < 1 {
		return NewError(ErrValidation, "repetition interval must be at least 1")
	}
	return nil
}

// ValidateMinutes checks an estimated-minutes value.
func ValidateMinutes(n int) *StructuredError {
	if n < 0 {
		return NewError(ErrValidation, "estimated minutes must not be negative")
	}
	return nil
}

// ValidateLimit checks a pagination limit.
func ValidateLimit(n int) *StructuredError {
	if n < 1 || n > MaxListLimit {
		return NewError(ErrValidation,
			fmt.Sprintf("limit must be between 1 and %d", MaxListLimit))
	}
	return nil
}

// ValidateOffset checks a pagination offset.
func ValidateOffset(n int) *StructuredError {
	if n < 0 {
		return NewError(ErrValidation, "offset must not be negative")
	}
	return nil
}

// EscapeString neutralizes backslashes and double quotes for embedding a
// value into an AppleScript string literal. This is a second, narrower line
// of defense for values that legitimately pass validation; it never
// substitutes for the gate itself.
func EscapeString(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `"`, `\"`)
	return s
}

// Quote wraps a validated value in an AppleScript string literal.
func Quote[T ~string](v T) string {
	return `"` + EscapeString(string(v)) + `"`
}
