package generate

import (
	"errors"

	"github.com/LukeHatton/spring-framework/aot/hint"
)

// GenerationContext carries the shared output resources of one generation
// pass: the class factory and the runtime-hints registry. A context is
// created at the start of a pass and consumed when the pass completes; it is
// safe for use by concurrent generation workers.
type GenerationContext struct {
	classes *GeneratedClasses
	hints   *hint.RuntimeHints
}

// ContextOption configures a GenerationContext.
type ContextOption func(*GenerationContext) error

// WithRuntimeHints sets the runtime-hints registry the pass writes to.
func WithRuntimeHints(hints *hint.RuntimeHints) ContextOption {
	return func(ctx *GenerationContext) error {
		if hints == nil {
			return errors.New("generate: hints registry cannot be nil")
		}
		ctx.hints = hints
		return nil
	}
}

// NewGenerationContext creates a context for a single generation pass.
func NewGenerationContext(opts ...ContextOption) (*GenerationContext, error) {
	ctx := &GenerationContext{
		classes: NewGeneratedClasses(),
		hints:   hint.NewRuntimeHints(),
	}
	for _, opt := range opts {
		if err := opt(ctx); err != nil {
			return nil, err
		}
	}
	return ctx, nil
}

// GeneratedClasses returns the class factory of the pass.
func (c *GenerationContext) GeneratedClasses() *GeneratedClasses {
	return c.classes
}

// RuntimeHints returns the hints registry of the pass.
func (c *GenerationContext) RuntimeHints() *hint.RuntimeHints {
	return c.hints
}
