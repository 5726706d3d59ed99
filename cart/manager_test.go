package cart

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManager_IsolatesUsers(t *testing.T) {
	m := NewManager()

	m.AddItem(1, Line{ItemID: "item-1", UnitPrice: 10, Quantity: 2, RestaurantID: "rest-1"})
	m.AddItem(2, Line{ItemID: "item-9", UnitPrice: 3, Quantity: 1, RestaurantID: "rest-2"})

	first := m.Snapshot(1)
	second := m.Snapshot(2)

	assert.Equal(t, 2, first.TotalItems)
	assert.Equal(t, "rest-1", first.RestaurantID)
	assert.Equal(t, 1, second.TotalItems)
	assert.Equal(t, "rest-2", second.RestaurantID)
}

func TestManager_SnapshotOfUnknownUserIsEmpty(t *testing.T) {
	m := NewManager()

	snap := m.Snapshot(42)

	assert.NotNil(t, snap.Lines)
	assert.Empty(t, snap.Lines)
	assert.Equal(t, 0, snap.TotalItems)
	assert.Equal(t, 0.0, snap.TotalPrice)
}

func TestManager_ClearDropsCart(t *testing.T) {
	m := NewManager()
	m.AddItem(1, Line{ItemID: "item-1", UnitPrice: 10, Quantity: 3})

	m.Clear(1)

	snap := m.Snapshot(1)
	assert.Empty(t, snap.Lines)
	assert.Equal(t, 0, snap.TotalItems)
}

func TestManager_MutationsUseCompoundKey(t *testing.T) {
	m := NewManager()
	m.AddItem(1, Line{ItemID: "item-1", UnitPrice: 4, Quantity: 1, Customizations: map[string]string{"size": "L"}})
	m.AddItem(1, Line{ItemID: "item-1", UnitPrice: 4, Quantity: 1, Customizations: map[string]string{"size": "S"}})

	m.IncreaseQuantity(1, "item-1", map[string]string{"size": "L"})
	m.SetQuantity(1, "item-1", map[string]string{"size": "S"}, 5)
	m.RemoveItem(1, "item-1", map[string]string{"size": "L"})

	snap := m.Snapshot(1)
	require.Len(t, snap.Lines, 1)
	assert.Equal(t, map[string]string{"size": "S"}, snap.Lines[0].Customizations)
	assert.Equal(t, 5, snap.Lines[0].Quantity)
}

func TestManager_ConcurrentAdds(t *testing.T) {
	m := NewManager()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			m.AddItem(1, Line{ItemID: "item-1", UnitPrice: 2, Quantity: 1})
		}()
	}
	wg.Wait()

	snap := m.Snapshot(1)
	require.Len(t, snap.Lines, 1)
	assert.Equal(t, 50, snap.TotalItems)
	assert.Equal(t, 100.0, snap.TotalPrice)
}
