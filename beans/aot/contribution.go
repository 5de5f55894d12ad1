package aot

import (
	"github.com/LukeHatton/spring-framework/aot/generate"
	"github.com/LukeHatton/spring-framework/beans"
)

// BeanRegistrationAotContribution is a unit of generation-time customization
// tied to one bean. Contributions run strictly within that bean's
// registration and never observe another bean's in-progress state.
//
// Contributions are applied in the order supplied by the caller. Customize
// folds left-to-right over the default strategy, so the last contribution
// applied runs outermost; ApplyTo runs in the same order once the target and
// strategy are fixed.
type BeanRegistrationAotContribution interface {
	// CustomizeBeanRegistrationCodeFragments returns the strategy to use
	// from here on. Returning the given fragments unchanged is valid;
	// wrappers must delegate unhandled calls.
	CustomizeBeanRegistrationCodeFragments(ctx *generate.GenerationContext, fragments BeanRegistrationCodeFragments) BeanRegistrationCodeFragments
	// ApplyTo receives the in-progress method-generation context and may
	// attach further generation-time effects.
	ApplyTo(ctx *generate.GenerationContext, code *BeanRegistrationCodeGenerator)
}

// CustomizerFunc adapts a plain function into a contribution that only
// customizes the code-fragments strategy.
type CustomizerFunc func(ctx *generate.GenerationContext, fragments BeanRegistrationCodeFragments) BeanRegistrationCodeFragments

// CustomizeBeanRegistrationCodeFragments calls f.
func (f CustomizerFunc) CustomizeBeanRegistrationCodeFragments(ctx *generate.GenerationContext, fragments BeanRegistrationCodeFragments) BeanRegistrationCodeFragments {
	return f(ctx, fragments)
}

// ApplyTo is a no-op.
func (f CustomizerFunc) ApplyTo(*generate.GenerationContext, *BeanRegistrationCodeGenerator) {}

// ApplierFunc adapts a plain function into a contribution that only attaches
// side effects to the method-generation context.
type ApplierFunc func(ctx *generate.GenerationContext, code *BeanRegistrationCodeGenerator)

// CustomizeBeanRegistrationCodeFragments returns the fragments unchanged.
func (f ApplierFunc) CustomizeBeanRegistrationCodeFragments(_ *generate.GenerationContext, fragments BeanRegistrationCodeFragments) BeanRegistrationCodeFragments {
	return fragments
}

// ApplyTo calls f.
func (f ApplierFunc) ApplyTo(ctx *generate.GenerationContext, code *BeanRegistrationCodeGenerator) {
	f(ctx, code)
}

// BeanRegistrationAotProcessor inspects a registered bean ahead of time and
// returns a contribution customizing its registration, or nil when the
// processor does not apply to the bean.
type BeanRegistrationAotProcessor interface {
	ProcessAheadOfTime(bean *beans.RegisteredBean) BeanRegistrationAotContribution
}

// ProcessorFunc adapts a plain function into a BeanRegistrationAotProcessor.
type ProcessorFunc func(bean *beans.RegisteredBean) BeanRegistrationAotContribution

// ProcessAheadOfTime calls f.
func (f ProcessorFunc) ProcessAheadOfTime(bean *beans.RegisteredBean) BeanRegistrationAotContribution {
	return f(bean)
}
