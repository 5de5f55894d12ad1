package beans

import "github.com/LukeHatton/spring-framework/aot/generate"

// ConstructionKind distinguishes how a bean instance is produced.
type ConstructionKind int

const (
	// KindConstructor marks construction through the type's constructor
	// function.
	KindConstructor ConstructionKind = iota
	// KindFactoryMethod marks construction through a named factory method
	// on a declaring type.
	KindFactoryMethod
)

// Parameter is one ordered parameter of a construction signature.
type Parameter struct {
	Name string
	Type generate.ClassName
}

// ConstructionDescriptor describes the resolved constructor or factory
// method of a bean: its kind, declaring type, name, and ordered parameters.
// It is owned by the bean definition and read-only during generation.
type ConstructionDescriptor struct {
	Kind ConstructionKind
	// DeclaringType is the type declaring the constructor or factory
	// method. For factory methods it drives the default target location.
	DeclaringType generate.ClassName
	// Name is the factory method name; empty for constructors.
	Name string
	// Parameters are the ordered parameters of the signature.
	Parameters []Parameter
}

// DependencyDescriptor describes a single injection point, used to probe the
// dependency resolver without resolving an actual value.
type DependencyDescriptor struct {
	Parameter Parameter
	Required  bool
}

// ProxyKind distinguishes the two proxying strategies a resolver may use.
type ProxyKind int

const (
	// ProxyInterface is a synthesized stand-in implementing a set of
	// interfaces. Its interface set must stay reflectively accessible at
	// run time.
	ProxyInterface ProxyKind = iota
	// ProxySubclass is a subclass-based stand-in. It has different
	// accessibility needs and is never recorded as an interface proxy.
	ProxySubclass
)

// ProxyType describes a proxy a resolver would synthesize for a dependency.
type ProxyType struct {
	Kind       ProxyKind
	Interfaces []string
}

// IsInterfaceProxy reports whether the proxy is a genuine interface-based
// dynamic proxy.
func (p *ProxyType) IsInterfaceProxy() bool {
	return p != nil && p.Kind == ProxyInterface
}

// DependencyResolver is the container's dependency-resolution strategy.
// LazyResolutionProxyType is a dry-run query: it reports the proxy type the
// resolver would synthesize for the described dependency, or nil when no
// proxy is needed, without resolving any value. Errors indicate a
// misconfigured resolver and must block generation.
type DependencyResolver interface {
	LazyResolutionProxyType(descriptor DependencyDescriptor) (*ProxyType, error)
}
