package bridge

import "strings"

// JSONHelperFragment is the canonical helper every structured-result script
// needs; ComposeJSON prepends it automatically.
const JSONHelperFragment = "helpers/json.applescript"

// Compose assembles reusable handler fragments and a body into one
// executable program. Fragments keep caller order and sit before the
// addressing block: osascript only accepts handler declarations at the top
// level, so a fragment inside the tell block would not compile. The body is
// always wrapped in the fixed OmniFocus addressing context.
func Compose(fragments []string, body string) string {
	var sb strings.Builder
	for _, fragment := range fragments {
		sb.WriteString(strings.TrimRight(fragment, "\n"))
		sb.WriteString("\n\n")
	}
	sb.WriteString("tell application \"OmniFocus\"\n")
	sb.WriteString("\ttell default document\n")
	for _, line := range strings.Split(strings.TrimRight(body, "\n"), "\n") {
		sb.WriteString("\t\t")
		sb.WriteString(line)
		sb.WriteString("\n")
	}
	sb.WriteString("\tend tell\n")
	sb.WriteString("end tell\n")
	return sb.String()
}

// ComposeSimple builds a one-shot program with no shared handlers.
func ComposeSimple(body string) string {
	return Compose(nil, body)
}

// ComposeJSON builds a program whose body emits structured results: the
// JSON helper fragment is loaded (cached) and prepended before any caller
// fragments, which are themselves loaded by relative path.
func ComposeJSON(assets *AssetLoader, fragmentPaths []string, body string) (string, *StructuredError) {
	paths := append([]string{JSONHelperFragment}, fragmentPaths...)
	fragments := make([]string, 0, len(paths))
	for _, p := range paths {
		content, err := assets.LoadCached(p)
		if err != nil {
			return "", NewError(ErrUnknown, "failed to load script fragment", err.Error())
		}
		fragments = append(fragments, content)
	}
	return Compose(fragments, body), nil
}
