package aot

import "github.com/LukeHatton/spring-framework/beans"

// BeanDefinitionMethodGeneratorFactory resolves the AOT contributions that
// apply to a bean and constructs its method generator. Processors run in
// registration order; a nil contribution marks a processor as not applicable
// to the bean and is skipped.
type BeanDefinitionMethodGeneratorFactory struct {
	processors []BeanRegistrationAotProcessor
	filters    []BeanRegistrationExcludeFilter
}

// BeanRegistrationExcludeFilter excludes individual beans from AOT
// processing entirely. Excluded beans produce no generator and no generated
// registration method.
type BeanRegistrationExcludeFilter interface {
	IsExcludedFromAotProcessing(bean *beans.RegisteredBean) bool
}

// ExcludeFilterFunc adapts a plain function into a filter.
type ExcludeFilterFunc func(bean *beans.RegisteredBean) bool

// IsExcludedFromAotProcessing calls f.
func (f ExcludeFilterFunc) IsExcludedFromAotProcessing(bean *beans.RegisteredBean) bool {
	return f(bean)
}

// FactoryOption configures a BeanDefinitionMethodGeneratorFactory.
type FactoryOption func(*BeanDefinitionMethodGeneratorFactory) error

// WithProcessors registers AOT processors, keeping their order.
func WithProcessors(processors ...BeanRegistrationAotProcessor) FactoryOption {
	return func(f *BeanDefinitionMethodGeneratorFactory) error {
		f.processors = append(f.processors, processors...)
		return nil
	}
}

// WithExcludeFilters registers filters that exclude beans from AOT
// processing.
func WithExcludeFilters(filters ...BeanRegistrationExcludeFilter) FactoryOption {
	return func(f *BeanDefinitionMethodGeneratorFactory) error {
		f.filters = append(f.filters, filters...)
		return nil
	}
}

// NewBeanDefinitionMethodGeneratorFactory creates a factory with the given
// options.
func NewBeanDefinitionMethodGeneratorFactory(opts ...FactoryOption) (*BeanDefinitionMethodGeneratorFactory, error) {
	f := &BeanDefinitionMethodGeneratorFactory{}
	for _, opt := range opts {
		if err := opt(f); err != nil {
			return nil, err
		}
	}
	return f, nil
}

// GetBeanDefinitionMethodGenerator returns the method generator for a
// top-level registered bean, or nil when the bean is excluded from AOT
// processing.
func (f *BeanDefinitionMethodGeneratorFactory) GetBeanDefinitionMethodGenerator(bean *beans.RegisteredBean) (*BeanDefinitionMethodGenerator, error) {
	return f.GetInnerBeanDefinitionMethodGenerator(bean, "")
}

// GetInnerBeanDefinitionMethodGenerator returns the method generator for a
// bean, carrying the property name when the bean is an inner bean injected
// as a property value. It returns nil when the bean is excluded from AOT
// processing.
func (f *BeanDefinitionMethodGeneratorFactory) GetInnerBeanDefinitionMethodGenerator(bean *beans.RegisteredBean,
	innerPropertyName string) (*BeanDefinitionMethodGenerator, error) {

	for _, filter := range f.filters {
		if filter.IsExcludedFromAotProcessing(bean) {
			return nil, nil
		}
	}
	return NewBeanDefinitionMethodGenerator(bean, innerPropertyName, f.contributions(bean))
}

// contributions collects the applicable contributions for a bean, in
// processor registration order.
func (f *BeanDefinitionMethodGeneratorFactory) contributions(bean *beans.RegisteredBean) []BeanRegistrationAotContribution {
	var contributions []BeanRegistrationAotContribution
	for _, processor := range f.processors {
		if contribution := processor.ProcessAheadOfTime(bean); contribution != nil {
			contributions = append(contributions, contribution)
		}
	}
	return contributions
}
