package bridge

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateID(t *testing.T) {
	valid := []string{"abc", "ABC-123", "a_b-c", "  padded  ", "0"}
	for _, raw := range valid {
		id, serr := ValidateID(raw, "task")
		require.Nil(t, serr, "id %q should validate", raw)
		assert.Equal(t, strings.TrimSpace(raw), string(id))
	}

	invalid := []string{
		"",
		"   ",
		"has space",
		`quo"te`,
		`back\slash`,
		"semi;colon",
		"tick'",
		"uni\u00e9",
		"ctrl\x01",
		"a.b",
	}
	for _, raw := range invalid {
		_, serr := ValidateID(raw, "task")
		require.NotNil(t, serr, "id %q should be rejected", raw)
		assert.Equal(t, ErrInvalidIDFormat, serr.Code)
	}
}

func TestValidateText(t *testing.T) {
	v, serr := ValidateText("Buy milk, eggs & bread", "task name")
	require.Nil(t, serr)
	assert.Equal(t, SafeText("Buy milk, eggs & bread"), v)

	// Empty means "clear this field" and is allowed.
	v, serr = ValidateText("", "task note")
	require.Nil(t, serr)
	assert.Equal(t, SafeText(""), v)

	for _, raw := range []string{`say "hi"`, `c:\temp`, "line\nbreak"} {
		_, serr := ValidateText(raw, "task name")
		require.NotNil(t, serr, "text %q should be rejected", raw)
		assert.Equal(t, ErrValidation, serr.Code)
	}
}

func TestValidateTextNormalizesNFC(t *testing.T) {
	// "é" as e + combining acute collapses to the precomposed form.
	v, serr := ValidateText("caf\u0065\u0301", "task name")
	require.Nil(t, serr)
	assert.Equal(t, SafeText("caf\u00e9"), v)
}

func TestValidateDate(t *testing.T) {
	valid := []string{"", "2026-08-30", "May 1, 2026 5:00 PM", "2026/08/30 17:00"}
	for _, raw := range valid {
		_, serr := ValidateDate(raw, "due date")
		assert.Nil(t, serr, "date %q should validate", raw)
	}

	for _, raw := range []string{`date "x"`, "due\ttomorrow", "evil;rm"} {
		_, serr := ValidateDate(raw, "due date")
		require.NotNil(t, serr, "date %q should be rejected", raw)
		assert.Equal(t, ErrInvalidDateFormat, serr.Code)
	}
}

func TestValidateBounds(t *testing.T) {
	assert.Nil(t, ValidateInterval(1))
	assert.NotNil(t, ValidateInterval(0))

	assert.Nil(t, ValidateMinutes(0))
	assert.NotNil(t, ValidateMinutes(-5))

	assert.Nil(t, ValidateLimit(1))
	assert.Nil(t, ValidateLimit(MaxListLimit))
	assert.NotNil(t, ValidateLimit(0))
	assert.NotNil(t, ValidateLimit(MaxListLimit+1))

	assert.Nil(t, ValidateOffset(0))
	assert.NotNil(t, ValidateOffset(-1))
}

func TestEscapeString(t *testing.T) {
	assert.Equal(t, `say \"hi\"`, EscapeString(`say "hi"`))
	assert.Equal(t, `c:\\temp`, EscapeString(`c:\temp`))
	// Backslash escaping runs first so escaped quotes stay stable.
	assert.Equal(t, `\\\"`, EscapeString(`\"`))
}

func TestQuote(t *testing.T) {
	assert.Equal(t, `"plain"`, Quote(SafeText("plain")))
	assert.Equal(t, `"abc-123"`, Quote(SafeID("abc-123")))
}
