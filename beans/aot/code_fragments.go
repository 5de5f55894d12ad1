package aot

import (
	"sync"

	"github.com/dave/jennifer/jen"

	"github.com/LukeHatton/spring-framework/aot/generate"
	"github.com/LukeHatton/spring-framework/beans"
)

// beansPkg is the import path of the runtime package emitted bodies call into.
const beansPkg = "github.com/LukeHatton/spring-framework/beans"

// BeanRegistrationCodeFragments is the replaceable strategy that decides
// where a bean's registration lives and how its method body is produced.
// AOT contributions may wrap the default strategy; wrappers must delegate
// calls they do not handle. Both methods must be deterministic for identical
// inputs so repeated generation passes emit identical source.
type BeanRegistrationCodeFragments interface {
	// Target returns the qualified location that should host the bean's
	// registration method.
	Target(bean *beans.RegisteredBean, construction *beans.ConstructionDescriptor) generate.ClassName
	// GenerateBeanDefinitionCode produces the statements of the
	// registration method body.
	GenerateBeanDefinitionCode(ctx *generate.GenerationContext, code *BeanRegistrationCodeGenerator) ([]jen.Code, error)
}

// BeanRegistrationsCode is the caller's default registrations unit: the
// class hosting registration methods whose targets fall in the reserved
// platform namespace.
type BeanRegistrationsCode interface {
	ClassName() generate.ClassName
	Methods() *generate.GeneratedMethods
}

// defaultCodeFragments is the strategy every registration starts from.
type defaultCodeFragments struct {
	registrationsCode BeanRegistrationsCode
	bean              *beans.RegisteredBean
}

func newDefaultCodeFragments(registrationsCode BeanRegistrationsCode, bean *beans.RegisteredBean) *defaultCodeFragments {
	return &defaultCodeFragments{registrationsCode: registrationsCode, bean: bean}
}

// Target prefers the declaring type of the factory method and falls back to
// the bean type itself.
func (f *defaultCodeFragments) Target(bean *beans.RegisteredBean, construction *beans.ConstructionDescriptor) generate.ClassName {
	if construction.Kind == beans.KindFactoryMethod && !construction.DeclaringType.IsZero() {
		return construction.DeclaringType
	}
	if def := bean.Definition(); def != nil && !def.Type().IsZero() {
		return def.Type()
	}
	return construction.DeclaringType
}

// GenerateBeanDefinitionCode emits a body that rebuilds the bean definition
// and attaches the instance post-processors contributions registered.
func (f *defaultCodeFragments) GenerateBeanDefinitionCode(_ *generate.GenerationContext, code *BeanRegistrationCodeGenerator) ([]jen.Code, error) {
	typeName := ""
	if def := code.Bean().Definition(); def != nil {
		typeName = def.TypeName()
	}
	body := []jen.Code{
		jen.Id("definition").Op(":=").Qual(beansPkg, "NewDefinition").Call(
			jen.Lit(code.Bean().Name()), jen.Lit(typeName)),
	}
	for _, ref := range code.InstancePostProcessors() {
		body = append(body,
			jen.Id("definition").Dot("AddPostProcessor").Call(ref.Invocation()))
	}
	body = append(body, jen.Return(jen.Id("definition")))
	return body, nil
}

// BeanRegistrationCodeFragmentsDecorator forwards every call to a delegate.
// Contributions embed it and override only the behavior they customize, so
// unhandled calls keep flowing to the wrapped strategy.
type BeanRegistrationCodeFragmentsDecorator struct {
	Delegate BeanRegistrationCodeFragments
}

// Target delegates to the wrapped strategy.
func (d BeanRegistrationCodeFragmentsDecorator) Target(bean *beans.RegisteredBean, construction *beans.ConstructionDescriptor) generate.ClassName {
	return d.Delegate.Target(bean, construction)
}

// GenerateBeanDefinitionCode delegates to the wrapped strategy.
func (d BeanRegistrationCodeFragmentsDecorator) GenerateBeanDefinitionCode(ctx *generate.GenerationContext, code *BeanRegistrationCodeGenerator) ([]jen.Code, error) {
	return d.Delegate.GenerateBeanDefinitionCode(ctx, code)
}

// BeanRegistrationCodeGenerator is the method-generation context handed to
// contributions once the target and strategy are fixed. It exposes the
// resolved hosting class, the bean under generation, and its construction
// descriptor, and collects instance post-processor references.
type BeanRegistrationCodeGenerator struct {
	className    generate.ClassName
	methods      *generate.GeneratedMethods
	bean         *beans.RegisteredBean
	construction *beans.ConstructionDescriptor
	fragments    BeanRegistrationCodeFragments

	mu             sync.Mutex
	postProcessors []generate.MethodReference
}

// NewBeanRegistrationCodeGenerator creates a code generator for one bean
// registration hosted in the given class.
func NewBeanRegistrationCodeGenerator(className generate.ClassName, methods *generate.GeneratedMethods,
	bean *beans.RegisteredBean, construction *beans.ConstructionDescriptor,
	fragments BeanRegistrationCodeFragments) *BeanRegistrationCodeGenerator {

	return &BeanRegistrationCodeGenerator{
		className:    className,
		methods:      methods,
		bean:         bean,
		construction: construction,
		fragments:    fragments,
	}
}

// ClassName returns the resolved hosting class.
func (g *BeanRegistrationCodeGenerator) ClassName() generate.ClassName {
	return g.className
}

// Methods returns the hosting class's method namespace, scoped for this bean.
func (g *BeanRegistrationCodeGenerator) Methods() *generate.GeneratedMethods {
	return g.methods
}

// Bean returns the bean under generation.
func (g *BeanRegistrationCodeGenerator) Bean() *beans.RegisteredBean {
	return g.bean
}

// ConstructionDescriptor returns the bean's resolved construction signature.
func (g *BeanRegistrationCodeGenerator) ConstructionDescriptor() *beans.ConstructionDescriptor {
	return g.construction
}

// AddInstancePostProcessor registers a reference to a generated
// post-processing method that the emitted body must attach to the
// definition.
func (g *BeanRegistrationCodeGenerator) AddInstancePostProcessor(ref generate.MethodReference) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.postProcessors = append(g.postProcessors, ref)
}

// InstancePostProcessors returns the registered references in order.
func (g *BeanRegistrationCodeGenerator) InstancePostProcessors() []generate.MethodReference {
	g.mu.Lock()
	defer g.mu.Unlock()
	out := make([]generate.MethodReference, len(g.postProcessors))
	copy(out, g.postProcessors)
	return out
}

// GenerateCode produces the registration method body through the final
// strategy.
func (g *BeanRegistrationCodeGenerator) GenerateCode(ctx *generate.GenerationContext) ([]jen.Code, error) {
	return g.fragments.GenerateBeanDefinitionCode(ctx, g)
}
