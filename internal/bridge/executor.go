package bridge

import (
	"bytes"
	"context"
	"crypto/rand"
	"os/exec"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"

	"omnikit/internal/app"
	"omnikit/internal/pkg/ofjson"
)

// DefaultOsascriptBin is the interpreter binary used when none is
// configured.
const DefaultOsascriptBin = "osascript"

// Runner is the execution primitive: it runs a composed program (or a
// pre-existing script file) and returns trimmed stdout. Every expected
// failure mode comes back as a StructuredError, never as a panic. Tests
// substitute a fake to count invocations.
type Runner interface {
	Run(ctx context.Context, program string) (string, *StructuredError)
	RunFile(ctx context.Context, path string, args ...string) (string, *StructuredError)
}

// OsaRunner invokes osascript as a child process. Timeout zero means the
// subprocess runs to completion; the bridge imposes no deadline of its own.
type OsaRunner struct {
	Bin     string
	Timeout time.Duration
}

// NewOsaRunner creates a runner for the given binary, falling back to
// "osascript" when empty.
func NewOsaRunner(bin string, timeout time.Duration) *OsaRunner {
	if bin == "" {
		bin = DefaultOsascriptBin
	}
	return &OsaRunner{Bin: bin, Timeout: timeout}
}

// Run executes a composed program passed inline via -e. The program travels
// as a single argv entry, so no shell is involved and no shell quoting is
// needed; injection safety rests entirely on the validation gate.
func (r *OsaRunner) Run(ctx context.Context, program string) (string, *StructuredError) {
	return r.invoke(ctx, "-e", program)
}

// RunFile executes a pre-existing script file with positional string
// arguments, each its own argv entry.
func (r *OsaRunner) RunFile(ctx context.Context, path string, args ...string) (string, *StructuredError) {
	return r.invoke(ctx, append([]string{path}, args...)...)
}

func (r *OsaRunner) invoke(ctx context.Context, args ...string) (string, *StructuredError) {
	if r.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.Timeout)
		defer cancel()
	}

	id := ulid.MustNew(ulid.Timestamp(time.Now()), rand.Reader).String()
	app.GetLogger().Debug("osascript invocation %s: %s (%d args)", id, r.Bin, len(args))

	cmd := exec.CommandContext(ctx, r.Bin, args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	runErr := cmd.Run()
	errText := strings.TrimSpace(stderr.String())

	// Diagnostic text on stderr is always a failure, even on a zero exit:
	// osascript reports warnings there that must not be swallowed.
	if errText != "" {
		app.GetLogger().Debug("osascript invocation %s failed: %s", id, errText)
		return "", Classify(errText)
	}
	if runErr != nil {
		app.GetLogger().Debug("osascript invocation %s failed: %v", id, runErr)
		return "", Classify(runErr.Error())
	}

	out := strings.TrimSpace(stdout.String())
	if out == "" {
		// Every real script path returns a value; an empty result means
		// something went wrong, not "no data".
		return "", NewError(ErrAppleScript, "empty response from OmniFocus")
	}
	return out, nil
}

// Execute runs a program and decodes trimmed stdout into T. Valid JSON is
// the payload; anything else falls back to the raw string for scripts whose
// natural return type is a bare string. The fallback never applies to
// failure outcomes, and a typed target that cannot hold the raw string
// yields JSON_PARSE_ERROR with the raw output preserved.
func Execute[T any](ctx context.Context, r Runner, program string) Outcome[T] {
	out, serr := r.Run(ctx, program)
	if serr != nil {
		return Fail[T](serr)
	}
	return decode[T](out)
}

// ExecuteFile is the file-based variant of Execute; decoding is shared.
func ExecuteFile[T any](ctx context.Context, r Runner, path string, args ...string) Outcome[T] {
	out, serr := r.RunFile(ctx, path, args...)
	if serr != nil {
		return Fail[T](serr)
	}
	return decode[T](out)
}

func decode[T any](out string) Outcome[T] {
	var payload T
	if err := ofjson.DecodeInto(out, &payload); err == nil {
		return OK(payload)
	}
	switch p := any(&payload).(type) {
	case *string:
		*p = out
		return OK(payload)
	case *any:
		v, _ := ofjson.DecodeLoose(out)
		*p = v
		return OK(payload)
	}
	return Fail[T](NewError(ErrJSONParse, "failed to parse script output", out))
}
