package generate

import "strings"

// ClassName is the qualified location of a type: an import path plus the
// chain of simple names from the outermost declaring type to the innermost
// one. Generated output units mirror this nesting so that unrelated beans
// whose declaring types share a simple name never collide.
//
// The zero value is the unlocated name and is treated as reserved.
type ClassName struct {
	pkg   string
	names []string
}

// NewClassName creates a ClassName for the given import path and chain of
// simple names, outermost first.
func NewClassName(pkg string, names ...string) ClassName {
	return ClassName{pkg: pkg, names: names}
}

// PackagePath returns the import path of the package declaring the type.
// It is empty for unlocated or universe types.
func (n ClassName) PackagePath() string {
	return n.pkg
}

// PackageName returns the last element of the package path.
func (n ClassName) PackageName() string {
	if n.pkg == "" {
		return ""
	}
	if i := strings.LastIndex(n.pkg, "/"); i >= 0 {
		return n.pkg[i+1:]
	}
	return n.pkg
}

// SimpleName returns the innermost simple name.
func (n ClassName) SimpleName() string {
	if len(n.names) == 0 {
		return ""
	}
	return n.names[len(n.names)-1]
}

// SimpleNames returns a copy of the chain of simple names, outermost first.
func (n ClassName) SimpleNames() []string {
	out := make([]string, len(n.names))
	copy(out, n.names)
	return out
}

// TopLevel returns the name of the outermost declaring type.
func (n ClassName) TopLevel() ClassName {
	if len(n.names) <= 1 {
		return n
	}
	return ClassName{pkg: n.pkg, names: n.names[:1]}
}

// Nested returns the name of a type nested directly inside this one.
func (n ClassName) Nested(name string) ClassName {
	names := make([]string, 0, len(n.names)+1)
	names = append(names, n.names...)
	names = append(names, name)
	return ClassName{pkg: n.pkg, names: names}
}

// GoName returns the flat Go identifier for the type. Nested names join
// their simple-name chain with an underscore, since Go has no nested type
// declarations; identity and idempotent lookup stay in the unit graph.
func (n ClassName) GoName() string {
	return strings.Join(n.names, "_")
}

// Canonical returns the fully qualified name, usable as a stable map key.
func (n ClassName) Canonical() string {
	if n.pkg == "" {
		return strings.Join(n.names, ".")
	}
	return n.pkg + "." + strings.Join(n.names, ".")
}

// IsZero reports whether the name carries no location at all.
func (n ClassName) IsZero() bool {
	return n.pkg == "" && len(n.names) == 0
}

// Reserved reports whether the name belongs to the platform namespace:
// unlocated types and standard-library packages. Registrations for such
// targets cannot own a dedicated generated class and are hosted inline in
// the caller's default registrations unit.
func (n ClassName) Reserved() bool {
	if n.pkg == "" {
		return true
	}
	first := n.pkg
	if i := strings.Index(first, "/"); i >= 0 {
		first = first[:i]
	}
	// Module paths start with a host element ("github.com", "dirpx.dev").
	// Standard-library paths never contain a dot there.
	return !strings.Contains(first, ".")
}

// String returns the canonical name.
func (n ClassName) String() string {
	return n.Canonical()
}
