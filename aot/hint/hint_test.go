package hint

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProxyHints(t *testing.T) {
	t.Run("Register records interface set in order", func(t *testing.T) {
		hints := NewRuntimeHints()
		hints.Proxies().RegisterInterfaceProxy("acme.OrderRepository", "acme.Auditable")

		entries := hints.Proxies().Hints()
		require.Len(t, entries, 1)
		assert.Equal(t, []string{"acme.OrderRepository", "acme.Auditable"}, entries[0].Interfaces)
	})

	t.Run("Duplicate entries are kept", func(t *testing.T) {
		hints := NewRuntimeHints()
		hints.Proxies().RegisterInterfaceProxy("acme.OrderRepository")
		hints.Proxies().RegisterInterfaceProxy("acme.OrderRepository")
		assert.Len(t, hints.Proxies().Hints(), 2)
	})

	t.Run("Hints returns a snapshot", func(t *testing.T) {
		hints := NewRuntimeHints()
		hints.Proxies().RegisterInterfaceProxy("acme.A")
		snapshot := hints.Proxies().Hints()
		hints.Proxies().RegisterInterfaceProxy("acme.B")
		assert.Len(t, snapshot, 1)
	})

	t.Run("Register does not alias the caller's slice", func(t *testing.T) {
		hints := NewRuntimeHints()
		interfaces := []string{"acme.A"}
		hints.Proxies().RegisterInterfaceProxy(interfaces...)
		interfaces[0] = "mutated"
		assert.Equal(t, "acme.A", hints.Proxies().Hints()[0].Interfaces[0])
	})

	t.Run("Concurrent appends are all recorded", func(t *testing.T) {
		hints := NewRuntimeHints()
		const writers = 40
		var wg sync.WaitGroup
		for i := 0; i < writers; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				hints.Proxies().RegisterInterfaceProxy("acme.Concurrent")
			}()
		}
		wg.Wait()
		assert.Len(t, hints.Proxies().Hints(), writers)
	})
}
