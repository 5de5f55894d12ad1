package aot

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure cases.
var (
	// ErrGenerationFailed indicates that registration code for a bean
	// could not be generated.
	ErrGenerationFailed = errors.New("aot: bean registration generation failed")
	// ErrHintProbeFailed indicates that the dependency resolver failed
	// while probing a parameter for proxy requirements.
	ErrHintProbeFailed = errors.New("aot: proxy hint probe failed")
)

// GenerationError reports a fatal failure while generating the registration
// method of one bean. A missing registration would silently break container
// startup, so these errors always propagate.
type GenerationError struct {
	Bean    string // bean name
	Phase   string // "resolve", "target", "emit", ...
	Message string
	Cause   error
}

// Error implements the error interface.
func (e *GenerationError) Error() string {
	var b strings.Builder
	b.WriteString("aot: generation error")
	if e.Bean != "" {
		b.WriteString(" for bean ")
		b.WriteString(e.Bean)
	}
	if e.Phase != "" {
		b.WriteString(" in phase ")
		b.WriteString(e.Phase)
	}
	if e.Message != "" {
		b.WriteString(": ")
		b.WriteString(e.Message)
	}
	if e.Cause != nil {
		b.WriteString(": ")
		b.WriteString(e.Cause.Error())
	}
	return b.String()
}

// Unwrap returns the underlying error.
func (e *GenerationError) Unwrap() error {
	return e.Cause
}

// Is reports whether the target matches the sentinel error for GenerationError.
func (e *GenerationError) Is(target error) bool {
	return target == ErrGenerationFailed
}

// NewGenerationError creates a new GenerationError.
func NewGenerationError(bean, phase, message string, cause error) *GenerationError {
	return &GenerationError{Bean: bean, Phase: phase, Message: message, Cause: cause}
}

// HintError reports a dependency-resolver failure while probing one
// construction parameter. Absence of a proxy is a normal outcome; a thrown
// error is not, and blocks generation rather than mis-registering runtime
// metadata.
type HintError struct {
	Bean      string
	Parameter string
	Cause     error
}

// Error implements the error interface.
func (e *HintError) Error() string {
	return fmt.Sprintf("aot: hint error for bean %s parameter %q: %s", e.Bean, e.Parameter, e.Cause)
}

// Unwrap returns the underlying error.
func (e *HintError) Unwrap() error {
	return e.Cause
}

// Is reports whether the target matches the sentinel error for HintError.
func (e *HintError) Is(target error) bool {
	return target == ErrHintProbeFailed
}

// IsGenerationError reports whether the error is a GenerationError.
func IsGenerationError(err error) bool {
	var genErr *GenerationError
	return errors.As(err, &genErr)
}

// IsHintError reports whether the error is a HintError.
func IsHintError(err error) bool {
	var hintErr *HintError
	return errors.As(err, &hintErr)
}
