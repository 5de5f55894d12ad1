package generate

import (
	"sort"
	"sync"

	"github.com/dave/jennifer/jen"
)

// ClassSpec is the declarative configuration of a generated class. It is
// populated by a ClassCustomizer when the class is first created and replayed
// on every later lookup to detect incompatible re-requests.
type ClassSpec struct {
	// Doc is the documentation comment of the rendered type.
	Doc string
	// Exported controls Go visibility of the rendered type name. Nested
	// bean-definition classes are always exported so that they stay
	// independently instantiable.
	Exported bool
}

// ClassCustomizer configures a generated class at creation time.
type ClassCustomizer func(*ClassSpec)

// GeneratedClass is a generation-time output unit: a named container that
// owns uniquely-named methods and uniquely-labeled nested classes. Instances
// are created lazily through get-or-create lookups, never removed, and
// rendered once generation completes.
type GeneratedClass struct {
	name    ClassName
	spec    ClassSpec
	methods *GeneratedMethods

	mu     sync.Mutex
	order  []string
	nested map[string]*GeneratedClass
}

func newGeneratedClass(name ClassName, customize ClassCustomizer) *GeneratedClass {
	spec := ClassSpec{}
	if customize != nil {
		customize(&spec)
	}
	return &GeneratedClass{
		name:    name,
		spec:    spec,
		methods: NewGeneratedMethods(name),
		nested:  make(map[string]*GeneratedClass),
	}
}

// Name returns the qualified name of the class.
func (c *GeneratedClass) Name() ClassName {
	return c.name
}

// Spec returns the configuration the class was created with.
func (c *GeneratedClass) Spec() ClassSpec {
	return c.spec
}

// Methods returns the method namespace of the class.
func (c *GeneratedClass) Methods() *GeneratedMethods {
	return c.methods
}

// GetOrAdd returns the nested class registered under the given label,
// creating it on first request. Repeated requests for the same label return
// the same instance; a request whose customization does not match the
// existing class fails with a ClassConflictError.
func (c *GeneratedClass) GetOrAdd(label string, customize ClassCustomizer) (*GeneratedClass, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if existing, ok := c.nested[label]; ok {
		if err := checkSpec(existing, label, customize); err != nil {
			return nil, err
		}
		return existing, nil
	}
	nested := newGeneratedClass(c.name.Nested(label), customize)
	c.nested[label] = nested
	c.order = append(c.order, label)
	return nested, nil
}

// nestedClasses returns the nested classes in creation order.
func (c *GeneratedClass) nestedClasses() []*GeneratedClass {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]*GeneratedClass, 0, len(c.order))
	for _, label := range c.order {
		out = append(out, c.nested[label])
	}
	return out
}

// File renders the class, its methods and its nested classes to a source
// file. Nested classes become sibling type declarations whose Go names join
// the simple-name chain, since Go has no nested type declarations.
func (c *GeneratedClass) File() *jen.File {
	f := jen.NewFilePathName(c.name.PackagePath(), c.name.PackageName())
	f.HeaderComment("Code generated by spring-framework AOT. DO NOT EDIT.")
	c.render(f)
	return f
}

func (c *GeneratedClass) render(f *jen.File) {
	if c.spec.Doc != "" {
		f.Comment(c.name.GoName() + " " + c.spec.Doc)
	}
	f.Type().Id(c.name.GoName()).Struct()
	for _, m := range c.methods.all() {
		if m.spec.Doc != "" {
			f.Comment(m.name + " " + m.spec.Doc)
		}
		fn := jen.Func().
			Params(jen.Id(c.name.GoName())).
			Id(m.name).
			Params(m.spec.Params...)
		switch len(m.spec.Returns) {
		case 0:
		case 1:
			fn.Add(m.spec.Returns[0])
		default:
			fn.Params(m.spec.Returns...)
		}
		f.Add(fn.Block(m.spec.Body...))
	}
	for _, nested := range c.nestedClasses() {
		nested.render(f)
	}
}

// checkSpec replays a customizer against a fresh spec and compares it with
// the spec an existing class was created with. Must be called with the
// owning map's lock held.
func checkSpec(existing *GeneratedClass, label string, customize ClassCustomizer) error {
	candidate := ClassSpec{}
	if customize != nil {
		customize(&candidate)
	}
	if candidate != existing.spec {
		return NewClassConflictError(label, existing.name.Canonical(),
			"label already bound with different configuration")
	}
	return nil
}

// GeneratedClasses is the factory for feature-scoped top-level generated
// classes. Lookups are atomic get-or-create operations keyed by feature and
// target component, so concurrent callers requesting the same unit always
// receive the same instance.
type GeneratedClasses struct {
	mu      sync.Mutex
	classes map[string]*GeneratedClass
}

// NewGeneratedClasses creates an empty class factory for one generation pass.
func NewGeneratedClasses() *GeneratedClasses {
	return &GeneratedClasses{classes: make(map[string]*GeneratedClass)}
}

// GetOrAddForFeatureComponent returns the generated class for the given
// feature and target component, creating it on first request. The class
// lives in the component's package under the name
// "<ComponentSimpleName>__<Feature>".
func (g *GeneratedClasses) GetOrAddForFeatureComponent(feature string, component ClassName, customize ClassCustomizer) (*GeneratedClass, error) {
	top := component.TopLevel()
	name := NewClassName(top.PackagePath(), top.SimpleName()+"__"+feature)
	key := feature + ":" + name.Canonical()

	g.mu.Lock()
	defer g.mu.Unlock()
	if existing, ok := g.classes[key]; ok {
		if err := checkSpec(existing, key, customize); err != nil {
			return nil, err
		}
		return existing, nil
	}
	class := newGeneratedClass(name, customize)
	g.classes[key] = class
	return class, nil
}

// Classes returns the top-level generated classes, ordered by canonical name
// for deterministic rendering.
func (g *GeneratedClasses) Classes() []*GeneratedClass {
	g.mu.Lock()
	defer g.mu.Unlock()
	out := make([]*GeneratedClass, 0, len(g.classes))
	for _, c := range g.classes {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].name.Canonical() < out[j].name.Canonical()
	})
	return out
}
