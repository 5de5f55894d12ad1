package generate

import (
	"strings"
	"sync"
	"testing"

	"github.com/dave/jennifer/jen"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJoinMethodName(t *testing.T) {
	t.Run("Prefix slots in after accessor verb", func(t *testing.T) {
		assert.Equal(t, "getOrderServiceBeanDefinition", joinMethodName("orderService", "getBeanDefinition"))
	})

	t.Run("Empty prefix keeps suggestion", func(t *testing.T) {
		assert.Equal(t, "registerBeanDefinitions", joinMethodName("", "registerBeanDefinitions"))
	})

	t.Run("Non-verb suggestion appends after prefix", func(t *testing.T) {
		assert.Equal(t, "orderServiceApplyProperties", joinMethodName("orderService", "applyProperties"))
	})
}

func TestGeneratedMethods(t *testing.T) {
	class := NewClassName("github.com/acme/app", "OrderService__BeanDefinitions")

	t.Run("Exported casing", func(t *testing.T) {
		methods := NewGeneratedMethods(class)
		method := methods.WithPrefix("orderService").Add("getBeanDefinition", func(m *MethodSpec) {
			m.Exported = true
		})
		assert.Equal(t, "GetOrderServiceBeanDefinition", method.Name())
	})

	t.Run("Unexported casing", func(t *testing.T) {
		methods := NewGeneratedMethods(class)
		method := methods.WithPrefix("orderService").Add("getBeanDefinition", nil)
		assert.Equal(t, "getOrderServiceBeanDefinition", method.Name())
	})

	t.Run("Same prefix yields distinct names", func(t *testing.T) {
		methods := NewGeneratedMethods(class)
		scoped := methods.WithPrefix("orderService")
		first := scoped.Add("getBeanDefinition", nil)
		second := scoped.Add("getBeanDefinition", nil)
		assert.Equal(t, "getOrderServiceBeanDefinition", first.Name())
		assert.Equal(t, "getOrderServiceBeanDefinition1", second.Name())
	})

	t.Run("Prefixed views share one namespace", func(t *testing.T) {
		methods := NewGeneratedMethods(class)
		a := methods.WithPrefix("orderService").Add("getBeanDefinition", nil)
		b := methods.WithPrefix("orderService").Add("getBeanDefinition", nil)
		assert.NotEqual(t, a.Name(), b.Name())
	})

	t.Run("Concurrent adds allocate unique names", func(t *testing.T) {
		methods := NewGeneratedMethods(class)
		const workers = 16
		names := make([]string, workers)
		var wg sync.WaitGroup
		for i := 0; i < workers; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				names[i] = methods.WithPrefix("orderService").Add("getBeanDefinition", nil).Name()
			}(i)
		}
		wg.Wait()
		seen := make(map[string]bool, workers)
		for _, name := range names {
			assert.False(t, seen[name], "duplicate method name %q", name)
			seen[name] = true
		}
	})
}

func TestMethodReference(t *testing.T) {
	class := NewClassName("github.com/acme/app", "OrderService__BeanDefinitions")

	t.Run("Reference carries class and method", func(t *testing.T) {
		methods := NewGeneratedMethods(class)
		method := methods.Add("getBeanDefinition", func(m *MethodSpec) { m.Exported = true })
		ref := method.ToMethodReference()
		assert.Equal(t, "GetBeanDefinition", ref.MethodName())
		assert.Equal(t, class.Canonical(), ref.ClassName().Canonical())
	})

	t.Run("Invocation renders a call expression", func(t *testing.T) {
		ref := MethodReference{class: class, method: "GetBeanDefinition"}
		file := jen.NewFile("main")
		file.Func().Id("use").Params().Block(jen.Id("_").Op("=").Add(ref.Invocation()))
		var b strings.Builder
		require.NoError(t, file.Render(&b))
		assert.Contains(t, b.String(), "app.OrderService__BeanDefinitions{}.GetBeanDefinition()")
	})
}
