// Package ofjson is the wire codec for the hand-assembled JSON emitted by
// generated scripts. AppleScript has no native JSON support, so the script
// side builds documents by string concatenation under four fixed
// conventions; this package is their Go mirror, used both to build script
// expressions and to decode results.
//
// Conventions:
//  1. nil, empty, or "missing value" string fields serialize to null
//  2. lists serialize to bracketed, comma-joined, double-quoted arrays
//  3. string escaping covers `"`, `\`, CR, LF, and TAB
//  4. other control characters (codepoints < 32) are silently dropped
package ofjson

import (
	"encoding/json"
	"strings"
)

// MissingValue is AppleScript's null sentinel as it appears in coerced
// string output.
const MissingValue = "missing value"

// EncodeString renders s as a quoted JSON string under the script-side
// escaping rules.
func EncodeString(s string) string {
	var sb strings.Builder
	sb.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"':
			sb.WriteString(`\"`)
		case '\\':
			sb.WriteString(`\\`)
		case '\r':
			sb.WriteString(`\r`)
		case '\n':
			sb.WriteString(`\n`)
		case '\t':
			sb.WriteString(`\t`)
		default:
			if r < 0x20 {
				continue
			}
			sb.WriteRune(r)
		}
	}
	sb.WriteByte('"')
	return sb.String()
}

// EncodeNullableString renders s as a quoted JSON string, or null when it
// is empty or the AppleScript missing-value sentinel.
func EncodeNullableString(s string) string {
	if s == "" || s == MissingValue {
		return "null"
	}
	return EncodeString(s)
}

// EncodeStringList renders values as a JSON array of quoted strings.
func EncodeStringList(values []string) string {
	parts := make([]string, 0, len(values))
	for _, v := range values {
		parts = append(parts, EncodeString(v))
	}
	return "[" + strings.Join(parts, ",") + "]"
}

// DecodeLoose parses raw output as a JSON document when possible and falls
// back to the bare string otherwise. The second return reports whether the
// input was valid JSON.
func DecodeLoose(raw string) (any, bool) {
	trimmed := strings.TrimSpace(raw)
	var v any
	if err := json.Unmarshal([]byte(trimmed), &v); err != nil {
		return trimmed, false
	}
	return v, true
}

// DecodeInto parses raw output into a typed value.
func DecodeInto(raw string, v any) error {
	return json.Unmarshal([]byte(strings.TrimSpace(raw)), v)
}
