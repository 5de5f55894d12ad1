// Package beans holds the input model of ahead-of-time bean processing:
// registered beans, their construction signatures, and the collaborator
// contracts of the owning container.
package beans

import "errors"

// ErrNoConstruction indicates a bean with no discoverable constructor or
// factory method. Generation for such a bean cannot proceed.
var ErrNoConstruction = errors.New("beans: no resolved constructor or factory method")

// BeanFactory is the owning container of registered beans, reduced to what
// generation needs. DependencyResolver may return nil when the container
// cannot synthesize lazy-resolution proxies; proxy hints are skipped then.
type BeanFactory interface {
	DependencyResolver() DependencyResolver
}

// StandardBeanFactory is a plain BeanFactory with an optional dependency
// resolver.
type StandardBeanFactory struct {
	resolver DependencyResolver
}

// NewStandardBeanFactory creates a factory using the given resolver, which
// may be nil.
func NewStandardBeanFactory(resolver DependencyResolver) *StandardBeanFactory {
	return &StandardBeanFactory{resolver: resolver}
}

// DependencyResolver returns the container's dependency-resolution strategy.
func (f *StandardBeanFactory) DependencyResolver() DependencyResolver {
	return f.resolver
}

// RegisteredBean is the identity of a bean under generation: its name, its
// definition, its owning factory, and, for inner beans, the bean it is
// nested in. Instances are created once per discovered bean and are
// immutable for the duration of the pass.
//
// Parent links are non-owning back references; the chain is acyclic and
// terminates at a bean with an explicit name or at nil.
type RegisteredBean struct {
	name          string
	generatedName bool
	parent        *RegisteredBean
	factory       BeanFactory
	definition    *Definition
}

// NewRegisteredBean creates a top-level registered bean with an explicit
// name.
func NewRegisteredBean(factory BeanFactory, name string, definition *Definition) *RegisteredBean {
	return &RegisteredBean{name: name, factory: factory, definition: definition}
}

// NewRegisteredBeanWithGeneratedName creates a top-level registered bean
// whose name was synthesized by the container.
func NewRegisteredBeanWithGeneratedName(factory BeanFactory, name string, definition *Definition) *RegisteredBean {
	return &RegisteredBean{name: name, generatedName: true, factory: factory, definition: definition}
}

// NewInnerRegisteredBean creates a registered bean nested inside parent.
// generatedName marks names the container synthesized rather than ones the
// registration declared.
func NewInnerRegisteredBean(parent *RegisteredBean, name string, generatedName bool, definition *Definition) *RegisteredBean {
	return &RegisteredBean{
		name:          name,
		generatedName: generatedName,
		parent:        parent,
		factory:       parent.factory,
		definition:    definition,
	}
}

// Name returns the bean name.
func (b *RegisteredBean) Name() string {
	return b.name
}

// HasGeneratedName reports whether the container synthesized the bean name.
func (b *RegisteredBean) HasGeneratedName() bool {
	return b.generatedName
}

// Parent returns the enclosing bean, or nil for top-level beans.
func (b *RegisteredBean) Parent() *RegisteredBean {
	return b.parent
}

// IsInnerBean reports whether the bean is nested inside another bean.
func (b *RegisteredBean) IsInnerBean() bool {
	return b.parent != nil
}

// Factory returns the owning container.
func (b *RegisteredBean) Factory() BeanFactory {
	return b.factory
}

// Definition returns the bean definition.
func (b *RegisteredBean) Definition() *Definition {
	return b.definition
}

// ResolveConstruction returns the bean's construction descriptor, or
// ErrNoConstruction when the definition carries none.
func (b *RegisteredBean) ResolveConstruction() (*ConstructionDescriptor, error) {
	if b.definition == nil || b.definition.Construction() == nil {
		return nil, ErrNoConstruction
	}
	return b.definition.Construction(), nil
}
