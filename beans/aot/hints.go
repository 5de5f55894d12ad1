package aot

import (
	"github.com/LukeHatton/spring-framework/aot/hint"
	"github.com/LukeHatton/spring-framework/beans"
)

// registerRuntimeHintsIfNecessary probes every construction parameter, in
// declared order, for lazy-resolution proxy requirements and records them in
// the hints registry. It applies only when the owning container exposes a
// dependency resolver. The probe is a dry run: no value is resolved.
//
// Only genuine interface-based proxies are recorded; subclass-based proxies
// have different reflective-accessibility needs and are skipped. A resolver
// error propagates rather than being downgraded to "no proxy".
func registerRuntimeHintsIfNecessary(bean *beans.RegisteredBean,
	construction *beans.ConstructionDescriptor, hints *hint.RuntimeHints) error {

	resolver := bean.Factory().DependencyResolver()
	if resolver == nil {
		return nil
	}
	for _, parameter := range construction.Parameters {
		descriptor := beans.DependencyDescriptor{Parameter: parameter, Required: true}
		proxyType, err := resolver.LazyResolutionProxyType(descriptor)
		if err != nil {
			return &HintError{Bean: bean.Name(), Parameter: parameter.Name, Cause: err}
		}
		if proxyType.IsInterfaceProxy() {
			hints.Proxies().RegisterInterfaceProxy(proxyType.Interfaces...)
		}
	}
	return nil
}
