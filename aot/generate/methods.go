package generate

import (
	"strconv"
	"strings"
	"sync"

	"github.com/dave/jennifer/jen"
	"github.com/go-openapi/inflect"
)

// MethodSpec describes a method under construction. A builder function
// passed to GeneratedMethods.Add populates it before the final method name
// is allocated.
type MethodSpec struct {
	// Doc is the documentation comment, without the leading name.
	Doc string
	// Exported controls Go visibility of the rendered method name.
	Exported bool
	// Params are the rendered parameter declarations, in order.
	Params []jen.Code
	// Returns are the rendered result types, in order.
	Returns []jen.Code
	// Body holds the statements of the method body.
	Body []jen.Code
}

// GeneratedMethod is a single emitted method owned by a generated class.
// It is immutable once returned from Add.
type GeneratedMethod struct {
	class ClassName
	name  string
	spec  MethodSpec
}

// Name returns the final, de-duplicated method name.
func (m *GeneratedMethod) Name() string {
	return m.name
}

// ToMethodReference returns an opaque handle that other generation units can
// use to emit an invocation of this method.
func (m *GeneratedMethod) ToMethodReference() MethodReference {
	return MethodReference{class: m.class, method: m.name}
}

// MethodReference is an invocable handle to a previously generated method.
// It carries no emission details beyond the hosting class and method name.
type MethodReference struct {
	class  ClassName
	method string
}

// MethodName returns the referenced method name.
func (r MethodReference) MethodName() string {
	return r.method
}

// ClassName returns the generated class hosting the method.
func (r MethodReference) ClassName() ClassName {
	return r.class
}

// Invocation renders a call expression for the referenced method. Generated
// classes are stateless value types, so the call goes through a composite
// literal of the hosting class.
func (r MethodReference) Invocation(args ...jen.Code) jen.Code {
	return jen.Qual(r.class.PackagePath(), r.class.GoName()).Values().Dot(r.method).Call(args...)
}

// GeneratedMethods is the method namespace of a single generated class.
// Method names are unique within the class; registering a second method
// under an already-taken name allocates a numbered variant atomically.
// WithPrefix returns a scoped view sharing the same namespace.
type GeneratedMethods struct {
	class  ClassName
	prefix string

	mu      *sync.Mutex
	taken   map[string]bool
	methods *[]*GeneratedMethod
}

// NewGeneratedMethods creates an empty method namespace for the given class.
// Callers hosting registrations in their own default unit use this to expose
// that unit's namespace.
func NewGeneratedMethods(class ClassName) *GeneratedMethods {
	methods := make([]*GeneratedMethod, 0)
	return &GeneratedMethods{
		class:   class,
		mu:      &sync.Mutex{},
		taken:   make(map[string]bool),
		methods: &methods,
	}
}

// WithPrefix returns a view of the same namespace that scopes added method
// names with the given prefix. Two beans with the same resolved name
// targeting the same class still get distinct method names through the
// shared de-duplication map.
func (m *GeneratedMethods) WithPrefix(prefix string) *GeneratedMethods {
	return &GeneratedMethods{
		class:   m.class,
		prefix:  prefix,
		mu:      m.mu,
		taken:   m.taken,
		methods: m.methods,
	}
}

// Add builds and registers a method under a name derived from the suggested
// name and the namespace prefix. The name allocation and registration happen
// as a single atomic step.
func (m *GeneratedMethods) Add(suggested string, build func(*MethodSpec)) *GeneratedMethod {
	spec := MethodSpec{}
	if build != nil {
		build(&spec)
	}
	base := joinMethodName(m.prefix, suggested)
	if spec.Exported {
		base = inflect.Camelize(base)
	} else {
		base = inflect.CamelizeDownFirst(base)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	name := base
	for suffix := 1; m.taken[name]; suffix++ {
		name = base + strconv.Itoa(suffix)
	}
	m.taken[name] = true
	method := &GeneratedMethod{class: m.class, name: name, spec: spec}
	*m.methods = append(*m.methods, method)
	return method
}

// all returns a snapshot of the registered methods in insertion order.
func (m *GeneratedMethods) all() []*GeneratedMethod {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]*GeneratedMethod, len(*m.methods))
	copy(out, *m.methods)
	return out
}

// joinMethodName merges a name prefix into a suggested method name. When the
// suggestion starts with a common accessor verb the prefix slots in after
// the verb, so prefix "orderService" and suggestion "getBeanDefinition"
// yield "getOrderServiceBeanDefinition".
func joinMethodName(prefix, suggested string) string {
	if prefix == "" {
		return suggested
	}
	for _, verb := range []string{"get", "set", "is"} {
		rest, ok := strings.CutPrefix(suggested, verb)
		if ok && rest != "" && rest[0] >= 'A' && rest[0] <= 'Z' {
			return verb + inflect.Camelize(prefix) + rest
		}
	}
	return prefix + inflect.Camelize(suggested)
}
