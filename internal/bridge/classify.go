package bridge

import "strings"

// classifyRule maps known diagnostic phrases to an error kind. Matching is
// ordered: the first rule whose every phrase appears in the lowercased text
// wins.
type classifyRule struct {
	phrases []string
	kind    ErrorKind
	message string
}

// Diagnostic text comes from osascript and is versioned, possibly localized,
// and outside our control. Classification is best-effort: anything unmatched
// falls back to APPLESCRIPT_ERROR with the raw text preserved.
var classifyRules = []classifyRule{
	{[]string{"not running"}, ErrNotRunning, "OmniFocus is not running"},
	{[]string{"isn't running"}, ErrNotRunning, "OmniFocus is not running"},
	{[]string{"can't get task"}, ErrTaskNotFound, "task not found"},
	{[]string{"can't get flattened task"}, ErrTaskNotFound, "task not found"},
	{[]string{"task", "not found"}, ErrTaskNotFound, "task not found"},
	{[]string{"can't get project"}, ErrProjectNotFound, "project not found"},
	{[]string{"can't get flattened project"}, ErrProjectNotFound, "project not found"},
	{[]string{"project", "not found"}, ErrProjectNotFound, "project not found"},
	{[]string{"can't get tag"}, ErrTagNotFound, "tag not found"},
	{[]string{"can't get flattened tag"}, ErrTagNotFound, "tag not found"},
	{[]string{"tag", "not found"}, ErrTagNotFound, "tag not found"},
	{[]string{"can't get folder"}, ErrFolderNotFound, "folder not found"},
	{[]string{"folder", "not found"}, ErrFolderNotFound, "folder not found"},
	{[]string{"invalid date"}, ErrInvalidDateFormat, "invalid date format"},
}

// Classify turns raw diagnostic text (stderr content or a subprocess error
// message) into a structured error. The raw text always survives in
// Details.
func Classify(raw string) *StructuredError {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return NewError(ErrUnknown, "unknown error")
	}
	lower := strings.ToLower(raw)
	for _, rule := range classifyRules {
		matched := true
		for _, phrase := range rule.phrases {
			if !strings.Contains(lower, phrase) {
				matched = false
				break
			}
		}
		if matched {
			return NewError(rule.kind, rule.message, raw)
		}
	}
	return NewError(ErrAppleScript, "script execution failed", raw)
}
