package aot

import (
	"fmt"
	"strings"

	"github.com/dave/jennifer/jen"
	"github.com/go-openapi/inflect"

	"github.com/LukeHatton/spring-framework/aot/generate"
	"github.com/LukeHatton/spring-framework/beans"
)

const (
	// beanDefinitionsFeature scopes the generated classes hosting
	// bean-definition methods.
	beanDefinitionsFeature = "BeanDefinitions"
	// nestedClassLabelSuffix marks nested bean-definition classes.
	nestedClassLabelSuffix = "__BeanDefinitions"
	// nestedBeanNameMarker separates a synthetic nested-type suffix inside
	// a container-derived bean name.
	nestedBeanNameMarker = "$"
	// innerBeanSuffix denotes a name derived from a non-generated ancestor.
	innerBeanSuffix = "InnerBean"
	// anonymousInnerBeanName is the fallback for beans whose parent chain
	// holds no non-generated name.
	anonymousInnerBeanName = "innerBean"
)

// BeanDefinitionMethodGenerator generates the method that returns the
// definition of one registered bean, orchestrating hint registration, the
// contribution pipeline, target resolution, and emission. Any failure is
// fatal to the bean's registration and propagates to the caller.
type BeanDefinitionMethodGenerator struct {
	bean              *beans.RegisteredBean
	construction      *beans.ConstructionDescriptor
	innerPropertyName string
	contributions     []BeanRegistrationAotContribution
}

// NewBeanDefinitionMethodGenerator creates a method generator for the given
// bean. innerPropertyName carries the property name for inner beans injected
// as property values and is empty otherwise. It fails when the bean has no
// discoverable constructor or factory method.
func NewBeanDefinitionMethodGenerator(bean *beans.RegisteredBean, innerPropertyName string,
	contributions []BeanRegistrationAotContribution) (*BeanDefinitionMethodGenerator, error) {

	construction, err := bean.ResolveConstruction()
	if err != nil {
		return nil, NewGenerationError(bean.Name(), "resolve", "unresolvable construction descriptor", err)
	}
	return &BeanDefinitionMethodGenerator{
		bean:              bean,
		construction:      construction,
		innerPropertyName: innerPropertyName,
		contributions:     contributions,
	}, nil
}

// GenerateBeanDefinitionMethod generates the registration method and returns
// a reference usable to emit invocations of it. Registrations whose target
// lies in the reserved platform namespace are hosted in the caller's default
// registrations unit with unexported visibility; all others get a public
// method on a dedicated feature-scoped class mirroring the target's nesting.
func (g *BeanDefinitionMethodGenerator) GenerateBeanDefinitionMethod(ctx *generate.GenerationContext,
	registrationsCode BeanRegistrationsCode) (generate.MethodReference, error) {

	if err := registerRuntimeHintsIfNecessary(g.bean, g.construction, ctx.RuntimeHints()); err != nil {
		return generate.MethodReference{}, err
	}
	fragments := g.codeFragments(ctx, registrationsCode)
	target := fragments.Target(g.bean, g.construction)
	if !target.Reserved() {
		class, err := lookupGeneratedClass(ctx, target)
		if err != nil {
			return generate.MethodReference{}, NewGenerationError(g.bean.Name(), "target", "cannot resolve hosting class", err)
		}
		methods := class.Methods().WithPrefix(g.name())
		method, err := g.generateMethod(ctx, class.Name(), methods, fragments, true)
		if err != nil {
			return generate.MethodReference{}, err
		}
		return method.ToMethodReference(), nil
	}
	methods := registrationsCode.Methods().WithPrefix(g.name())
	method, err := g.generateMethod(ctx, registrationsCode.ClassName(), methods, fragments, false)
	if err != nil {
		return generate.MethodReference{}, err
	}
	return method.ToMethodReference(), nil
}

// codeFragments folds the contributions left-to-right over the default
// strategy. No contribution is skipped or reordered.
func (g *BeanDefinitionMethodGenerator) codeFragments(ctx *generate.GenerationContext,
	registrationsCode BeanRegistrationsCode) BeanRegistrationCodeFragments {

	var fragments BeanRegistrationCodeFragments = newDefaultCodeFragments(registrationsCode, g.bean)
	for _, contribution := range g.contributions {
		fragments = contribution.CustomizeBeanRegistrationCodeFragments(ctx, fragments)
	}
	return fragments
}

// generateMethod applies the contributions' side-effecting pass and emits
// the registration method through the final strategy.
func (g *BeanDefinitionMethodGenerator) generateMethod(ctx *generate.GenerationContext,
	className generate.ClassName, methods *generate.GeneratedMethods,
	fragments BeanRegistrationCodeFragments, exported bool) (*generate.GeneratedMethod, error) {

	codeGenerator := NewBeanRegistrationCodeGenerator(className, methods, g.bean, g.construction, fragments)
	for _, contribution := range g.contributions {
		contribution.ApplyTo(ctx, codeGenerator)
	}
	body, err := codeGenerator.GenerateCode(ctx)
	if err != nil {
		return nil, NewGenerationError(g.bean.Name(), "emit", "cannot produce method body", err)
	}
	kind := "bean"
	if g.bean.IsInnerBean() {
		kind = "inner-bean"
	}
	return methods.Add("getBeanDefinition", func(m *generate.MethodSpec) {
		m.Doc = fmt.Sprintf("returns the %s definition for %q.", kind, g.name())
		m.Exported = exported
		m.Returns = []jen.Code{jen.Op("*").Qual(beansPkg, "Definition")}
		m.Body = body
	}), nil
}

// name derives the deterministic, human-readable identifier the registration
// method is scoped with. Uniqueness is delegated to the hosting class's
// method namespace.
func (g *BeanDefinitionMethodGenerator) name() string {
	if g.innerPropertyName != "" {
		return g.innerPropertyName
	}
	if !g.bean.HasGeneratedName() {
		return simpleBeanName(g.bean.Name())
	}
	ancestor := g.bean
	for ancestor != nil && ancestor.HasGeneratedName() {
		ancestor = ancestor.Parent()
	}
	if ancestor != nil {
		return simpleBeanName(ancestor.Name()) + innerBeanSuffix
	}
	return anonymousInnerBeanName
}

// simpleBeanName strips any package qualifier and synthetic nested-type
// marker from a bean name and lower-cases the first character.
func simpleBeanName(beanName string) string {
	if i := strings.LastIndex(beanName, "."); i >= 0 {
		beanName = beanName[i+1:]
	}
	if i := strings.LastIndex(beanName, nestedBeanNameMarker); i >= 0 {
		beanName = beanName[i+len(nestedBeanNameMarker):]
	}
	return inflect.CamelizeDownFirst(beanName)
}

// lookupGeneratedClass returns the generated class hosting registrations for
// the given target, materializing one nested unit per nested simple name so
// generated artifacts mirror the nesting of the declaring types.
func lookupGeneratedClass(ctx *generate.GenerationContext, target generate.ClassName) (*generate.GeneratedClass, error) {
	topLevel := target.TopLevel()
	class, err := ctx.GeneratedClasses().GetOrAddForFeatureComponent(beanDefinitionsFeature, topLevel,
		func(spec *generate.ClassSpec) {
			spec.Doc = fmt.Sprintf("holds bean definitions for %s.", topLevel.Canonical())
			spec.Exported = true
		})
	if err != nil {
		return nil, err
	}
	names := target.SimpleNames()
	current := topLevel
	for _, name := range names[1:] {
		current = current.Nested(name)
		nestedTarget := current
		class, err = class.GetOrAdd(name+nestedClassLabelSuffix, func(spec *generate.ClassSpec) {
			spec.Doc = fmt.Sprintf("holds bean definitions for %s.", nestedTarget.Canonical())
			spec.Exported = true
		})
		if err != nil {
			return nil, err
		}
	}
	return class, nil
}
