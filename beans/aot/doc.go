// Package aot generates ahead-of-time bean registration code: for each
// registered bean it emits a method that rebuilds the bean's definition
// without runtime reflection, and returns a reference other generation units
// can invoke.
//
// The per-bean flow runs through BeanDefinitionMethodGenerator:
//
//	RegisteredBean
//	        ↓
//	proxy hints recorded (aot/hint)
//	        ↓
//	contribution fold → BeanRegistrationCodeFragments
//	        ↓
//	target resolution → generate.GeneratedClass
//	        ↓
//	method emission → generate.MethodReference
//
// RegistrationsGenerator drives the flow for a whole factory, one worker per
// bean, against the shared output-unit graph of the generation pass.
package aot
