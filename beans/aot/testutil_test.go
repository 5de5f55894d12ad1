package aot

import (
	"github.com/LukeHatton/spring-framework/aot/generate"
	"github.com/LukeHatton/spring-framework/beans"
)

// stubResolver answers proxy probes from a fixed table keyed by parameter
// name.
type stubResolver struct {
	proxies map[string]*beans.ProxyType
	err     error
}

func (r *stubResolver) LazyResolutionProxyType(descriptor beans.DependencyDescriptor) (*beans.ProxyType, error) {
	if r.err != nil {
		return nil, r.err
	}
	return r.proxies[descriptor.Parameter.Name], nil
}

// testRegistrationsCode is a caller-owned default registrations unit.
type testRegistrationsCode struct {
	className generate.ClassName
	methods   *generate.GeneratedMethods
}

func newTestRegistrationsCode() *testRegistrationsCode {
	className := generate.NewClassName("github.com/acme/app", "TestRegistrations")
	return &testRegistrationsCode{
		className: className,
		methods:   generate.NewGeneratedMethods(className),
	}
}

func (c *testRegistrationsCode) ClassName() generate.ClassName {
	return c.className
}

func (c *testRegistrationsCode) Methods() *generate.GeneratedMethods {
	return c.methods
}

var orderServiceType = generate.NewClassName("github.com/acme/app", "OrderService")

// newTestBean builds a top-level bean of the given type with an empty
// constructor signature.
func newTestBean(factory beans.BeanFactory, name string, typ generate.ClassName) *beans.RegisteredBean {
	def := beans.NewDefinitionOfType(typ).
		WithConstruction(&beans.ConstructionDescriptor{Kind: beans.KindConstructor, DeclaringType: typ})
	return beans.NewRegisteredBean(factory, name, def)
}

func newGenerationContext() *generate.GenerationContext {
	ctx, err := generate.NewGenerationContext()
	if err != nil {
		panic(err)
	}
	return ctx
}

// recordingContribution tags the fragments chain and records the order of
// ApplyTo calls.
type recordingContribution struct {
	id      string
	applied *[]string
}

func (c *recordingContribution) CustomizeBeanRegistrationCodeFragments(_ *generate.GenerationContext,
	fragments BeanRegistrationCodeFragments) BeanRegistrationCodeFragments {
	return &taggedFragments{
		BeanRegistrationCodeFragmentsDecorator: BeanRegistrationCodeFragmentsDecorator{Delegate: fragments},
		id:                                     c.id,
	}
}

func (c *recordingContribution) ApplyTo(_ *generate.GenerationContext, _ *BeanRegistrationCodeGenerator) {
	*c.applied = append(*c.applied, c.id)
}

// taggedFragments wraps a fragments chain, exposing the wrapping order.
type taggedFragments struct {
	BeanRegistrationCodeFragmentsDecorator
	id string
}

// chainIDs returns the wrapper tags from the outermost wrapper inward.
func chainIDs(fragments BeanRegistrationCodeFragments) []string {
	var ids []string
	for {
		tagged, ok := fragments.(*taggedFragments)
		if !ok {
			return ids
		}
		ids = append(ids, tagged.id)
		fragments = tagged.Delegate
	}
}
