// Package clierr defines the typed failure values produced by the
// translation pipeline. Each kind carries its own structured fields and an
// exit code; main performs the single stderr-message + exit-code dispatch,
// so no other package ever prints or swallows one of these.
package clierr

import (
	"errors"
	"fmt"
)

// Coder is implemented by every failure kind in this package.
type Coder interface {
	error
	ExitCode() int
}

// ExitCode returns the exit code attached to err, or 1 for errors that do
// not belong to the taxonomy (the generic unexpected path).
func ExitCode(err error) int {
	var c Coder
	if errors.As(err, &c) {
		return c.ExitCode()
	}
	return 1
}

// ---------------------------------------------------------------------------
// Usage / argument errors
// ---------------------------------------------------------------------------

// Usage indicates a syntactically incomplete or ambiguous invocation:
// missing language code, or no non-interactive input source available.
type Usage struct {
	Reason string
}

func (e *Usage) Error() string { return e.Reason }

func (e *Usage) ExitCode() int { return 1 }

// MalformedArgument indicates a flag supplied without a valid value:
// no value token, a blank value, or a value that is itself a flag.
type MalformedArgument struct {
	Flag   string
	Detail string
}

func (e *MalformedArgument) Error() string {
	switch {
	case e.Flag != "" && e.Detail != "":
		return fmt.Sprintf("invalid usage of %s: %s", e.Flag, e.Detail)
	case e.Flag != "":
		return fmt.Sprintf("invalid usage of %s", e.Flag)
	default:
		return "invalid arguments: " + e.Detail
	}
}

func (e *MalformedArgument) ExitCode() int { return 1 }

// MissingLanguage indicates an absent or blank target language code.
type MissingLanguage struct{}

func (e *MissingLanguage) Error() string { return "no target language specified" }

func (e *MissingLanguage) ExitCode() int { return 1 }

// ---------------------------------------------------------------------------
// Input errors
// ---------------------------------------------------------------------------

// InputRead indicates the named file or the input stream could not be read.
// Path is empty for stream failures.
type InputRead struct {
	Path string
	Err  error
}

func (e *InputRead) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("cannot read %s: %v", e.Path, e.Err)
	}
	return fmt.Sprintf("cannot read standard input: %v", e.Err)
}

func (e *InputRead) Unwrap() error { return e.Err }

func (e *InputRead) ExitCode() int { return 1 }

// EmptyInput indicates the resolved source text is blank after trimming.
type EmptyInput struct{}

func (e *EmptyInput) Error() string { return "input document is empty" }

func (e *EmptyInput) ExitCode() int { return 1 }

// ---------------------------------------------------------------------------
// Configuration errors
// ---------------------------------------------------------------------------

// MissingCredential indicates no usable API key is configured.
type MissingCredential struct{}

func (e *MissingCredential) Error() string {
	return "no API key configured: set GEMINI_API_KEY or run 'mdtranslate auth set'"
}

func (e *MissingCredential) ExitCode() int { return 1 }

// InvalidModel indicates a model override that is present but blank.
// Source names the tier the override came from ("flag", "environment",
// "config file").
type InvalidModel struct {
	Source string
}

func (e *InvalidModel) Error() string {
	return fmt.Sprintf("model override from %s is blank", e.Source)
}

func (e *InvalidModel) ExitCode() int { return 1 }

// ---------------------------------------------------------------------------
// Remote service errors
// ---------------------------------------------------------------------------

// RemoteService indicates a non-success HTTP status from the generation
// endpoint. Body is the raw response, kept for diagnostics only.
type RemoteService struct {
	Status int
	Body   string
}

func (e *RemoteService) Error() string {
	return fmt.Sprintf("translation service returned status %d: %s", e.Status, e.Body)
}

func (e *RemoteService) ExitCode() int { return 1 }

// EmptyTranslation indicates a successful HTTP response that yielded no
// usable text. The original document is never passed through silently.
type EmptyTranslation struct{}

func (e *EmptyTranslation) Error() string {
	return "translation service returned an empty result"
}

func (e *EmptyTranslation) ExitCode() int { return 1 }
