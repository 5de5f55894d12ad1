package beans

import "github.com/LukeHatton/spring-framework/aot/generate"

// PropertyValue is one property applied to a bean after construction. The
// value may itself be a *Definition, in which case it describes an inner
// bean that exists only as this property.
type PropertyValue struct {
	Name  string
	Value any
}

// Definition describes how a bean is instantiated and wired. During
// ahead-of-time processing it is the read-only input model; the generated
// program rebuilds equivalent definitions through NewDefinition and the
// fluent setters, without reflection.
type Definition struct {
	beanName       string
	typ            generate.ClassName
	typeName       string
	construction   *ConstructionDescriptor
	properties     []PropertyValue
	postProcessors []any
}

// NewDefinitionOfType creates a definition for a bean of the given type.
func NewDefinitionOfType(typ generate.ClassName) *Definition {
	return &Definition{typ: typ, typeName: typ.Canonical()}
}

// NewDefinition creates a definition from a bean name and canonical type
// name. This is the entry point emitted generated code uses.
func NewDefinition(beanName, typeName string) *Definition {
	return &Definition{beanName: beanName, typeName: typeName}
}

// BeanName returns the bean name the definition was created with, when the
// definition was rebuilt by generated code.
func (d *Definition) BeanName() string {
	return d.beanName
}

// WithConstruction sets the resolved constructor or factory method.
func (d *Definition) WithConstruction(c *ConstructionDescriptor) *Definition {
	d.construction = c
	return d
}

// WithProperty appends a property value.
func (d *Definition) WithProperty(name string, value any) *Definition {
	d.properties = append(d.properties, PropertyValue{Name: name, Value: value})
	return d
}

// AddPostProcessor appends an instance post-processor. Generated
// registration code uses this to attach the post-processing methods that
// contributions emitted.
func (d *Definition) AddPostProcessor(pp any) {
	d.postProcessors = append(d.postProcessors, pp)
}

// Type returns the structured bean type, when known.
func (d *Definition) Type() generate.ClassName {
	return d.typ
}

// TypeName returns the canonical bean type name.
func (d *Definition) TypeName() string {
	return d.typeName
}

// Construction returns the resolved construction descriptor, or nil when the
// bean has no discoverable constructor or factory method.
func (d *Definition) Construction() *ConstructionDescriptor {
	return d.construction
}

// Properties returns the property values in declaration order.
func (d *Definition) Properties() []PropertyValue {
	return d.properties
}

// PostProcessors returns the registered instance post-processors.
func (d *Definition) PostProcessors() []any {
	return d.postProcessors
}

// DefinitionRegistry is the registration surface the emitted program targets
// at startup. Generated registerBeanDefinitions methods call Register once
// per bean.
type DefinitionRegistry struct {
	defs map[string]*Definition
}

// NewDefinitionRegistry creates an empty registry.
func NewDefinitionRegistry() *DefinitionRegistry {
	return &DefinitionRegistry{defs: make(map[string]*Definition)}
}

// Register registers a definition under the given bean name, replacing any
// previous registration.
func (r *DefinitionRegistry) Register(name string, def *Definition) {
	r.defs[name] = def
}

// Definition returns the definition registered under the given name.
func (r *DefinitionRegistry) Definition(name string) (*Definition, bool) {
	def, ok := r.defs[name]
	return def, ok
}

// Len returns the number of registered definitions.
func (r *DefinitionRegistry) Len() int {
	return len(r.defs)
}
