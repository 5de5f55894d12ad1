package aot

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LukeHatton/spring-framework/aot/hint"
	"github.com/LukeHatton/spring-framework/beans"
)

func TestRegisterRuntimeHints(t *testing.T) {
	construction := &beans.ConstructionDescriptor{
		Kind:          beans.KindConstructor,
		DeclaringType: orderServiceType,
		Parameters: []beans.Parameter{
			{Name: "repository", Type: orderServiceType},
			{Name: "clock", Type: orderServiceType},
		},
	}

	t.Run("Interface proxies are recorded per parameter", func(t *testing.T) {
		resolver := &stubResolver{proxies: map[string]*beans.ProxyType{
			"repository": {Kind: beans.ProxyInterface, Interfaces: []string{"com.acme.Repository", "com.acme.Auditable"}},
		}}
		factory := beans.NewStandardBeanFactory(resolver)
		bean := beans.NewRegisteredBean(factory, "orderService",
			beans.NewDefinitionOfType(orderServiceType).WithConstruction(construction))

		hints := hint.NewRuntimeHints()
		require.NoError(t, registerRuntimeHintsIfNecessary(bean, construction, hints))

		recorded := hints.Proxies().Hints()
		require.Len(t, recorded, 1)
		assert.Equal(t, []string{"com.acme.Repository", "com.acme.Auditable"}, recorded[0].Interfaces)
	})

	t.Run("Subclass proxies are skipped", func(t *testing.T) {
		resolver := &stubResolver{proxies: map[string]*beans.ProxyType{
			"repository": {Kind: beans.ProxySubclass, Interfaces: []string{"com.acme.Repository"}},
		}}
		factory := beans.NewStandardBeanFactory(resolver)
		bean := beans.NewRegisteredBean(factory, "orderService",
			beans.NewDefinitionOfType(orderServiceType).WithConstruction(construction))

		hints := hint.NewRuntimeHints()
		require.NoError(t, registerRuntimeHintsIfNecessary(bean, construction, hints))
		assert.Empty(t, hints.Proxies().Hints())
	})

	t.Run("Resolver failure blocks generation", func(t *testing.T) {
		probeErr := errors.New("ambiguous candidate")
		resolver := &stubResolver{err: probeErr}
		factory := beans.NewStandardBeanFactory(resolver)
		bean := beans.NewRegisteredBean(factory, "orderService",
			beans.NewDefinitionOfType(orderServiceType).WithConstruction(construction))

		err := registerRuntimeHintsIfNecessary(bean, construction, hint.NewRuntimeHints())
		require.Error(t, err)
		assert.True(t, IsHintError(err))
		assert.ErrorIs(t, err, ErrHintProbeFailed)
		assert.ErrorIs(t, err, probeErr)
		assert.Contains(t, err.Error(), `parameter "repository"`)
	})

	t.Run("No resolver means no probing", func(t *testing.T) {
		factory := beans.NewStandardBeanFactory(nil)
		bean := beans.NewRegisteredBean(factory, "orderService",
			beans.NewDefinitionOfType(orderServiceType).WithConstruction(construction))

		hints := hint.NewRuntimeHints()
		require.NoError(t, registerRuntimeHintsIfNecessary(bean, construction, hints))
		assert.Empty(t, hints.Proxies().Hints())
	})
}
