package aot

import (
	"context"
	"fmt"
	"runtime"
	"sort"
	"sync"

	"github.com/dave/jennifer/jen"
	"golang.org/x/sync/errgroup"

	"github.com/LukeHatton/spring-framework/aot/generate"
	"github.com/LukeHatton/spring-framework/beans"
)

// beanRegistrationsFeature scopes the generated class collecting the
// per-bean registration methods of one factory.
const beanRegistrationsFeature = "BeanFactoryRegistrations"

// RegistrationsGenerator generates the registration code for a whole bean
// factory: one registration method per bean, produced concurrently against
// the shared output-unit graph and hints registry, plus one
// registerBeanDefinitions method invoking each of them in deterministic
// order.
type RegistrationsGenerator struct {
	factory   *BeanDefinitionMethodGeneratorFactory
	component generate.ClassName
	workers   int
}

// NewRegistrationsGenerator creates a generator whose registrations class is
// scoped to the given component, typically the application's root type.
func NewRegistrationsGenerator(factory *BeanDefinitionMethodGeneratorFactory, component generate.ClassName) *RegistrationsGenerator {
	return &RegistrationsGenerator{
		factory:   factory,
		component: component,
		workers:   runtime.GOMAXPROCS(0),
	}
}

// WithWorkers sets the number of parallel generation workers.
func (g *RegistrationsGenerator) WithWorkers(n int) *RegistrationsGenerator {
	if n > 0 {
		g.workers = n
	}
	return g
}

// Generate generates registration methods for every given bean and emits a
// registerBeanDefinitions method that registers each produced definition.
// Any per-bean failure fails the whole pass.
func (g *RegistrationsGenerator) Generate(ctx context.Context, genCtx *generate.GenerationContext,
	regBeans []*beans.RegisteredBean) (generate.MethodReference, error) {

	class, err := genCtx.GeneratedClasses().GetOrAddForFeatureComponent(beanRegistrationsFeature, g.component,
		func(spec *generate.ClassSpec) {
			spec.Doc = fmt.Sprintf("registers bean definitions for %s.", g.component.Canonical())
			spec.Exported = true
		})
	if err != nil {
		return generate.MethodReference{}, err
	}
	registrationsCode := &generatedRegistrationsCode{class: class}

	var mu sync.Mutex
	references := make(map[string]generate.MethodReference, len(regBeans))

	errg, ctx := errgroup.WithContext(ctx)
	errg.SetLimit(g.workers)
	for _, bean := range regBeans {
		bean := bean
		errg.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}
			methodGenerator, err := g.factory.GetBeanDefinitionMethodGenerator(bean)
			if err != nil {
				return err
			}
			if methodGenerator == nil {
				return nil
			}
			reference, err := methodGenerator.GenerateBeanDefinitionMethod(genCtx, registrationsCode)
			if err != nil {
				return err
			}
			mu.Lock()
			references[bean.Name()] = reference
			mu.Unlock()
			return nil
		})
	}
	if err := errg.Wait(); err != nil {
		return generate.MethodReference{}, err
	}

	names := make([]string, 0, len(references))
	for name := range references {
		names = append(names, name)
	}
	sort.Strings(names)

	method := class.Methods().Add("registerBeanDefinitions", func(m *generate.MethodSpec) {
		m.Doc = "registers the generated bean definitions with the given registry."
		m.Exported = true
		m.Params = []jen.Code{jen.Id("registry").Op("*").Qual(beansPkg, "DefinitionRegistry")}
		for _, name := range names {
			m.Body = append(m.Body, jen.Id("registry").Dot("Register").Call(
				jen.Lit(name), references[name].Invocation()))
		}
	})
	return method.ToMethodReference(), nil
}

// generatedRegistrationsCode exposes the registrations class as the default
// hosting unit for reserved-namespace targets.
type generatedRegistrationsCode struct {
	class *generate.GeneratedClass
}

func (c *generatedRegistrationsCode) ClassName() generate.ClassName {
	return c.class.Name()
}

func (c *generatedRegistrationsCode) Methods() *generate.GeneratedMethods {
	return c.class.Methods()
}
