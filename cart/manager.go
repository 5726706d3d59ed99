package cart

import "sync"

// Summary is a point-in-time snapshot of one cart, safe for the caller to keep
// after the manager's lock is released.
type Summary struct {
	Lines        []Line  `json:"lines"`
	TotalItems   int     `json:"total_items"`
	TotalPrice   float64 `json:"total_price"`
	RestaurantID string  `json:"restaurant_id,omitempty"`
}

// Manager owns one cart per user session. Carts themselves are plain data
// structures; the manager serializes all access so HTTP handlers can share it.
type Manager struct {
	mu    sync.Mutex
	carts map[int]*Cart
}

func NewManager() *Manager {
	return &Manager{
		carts: make(map[int]*Cart),
	}
}

func (m *Manager) cart(userID int) *Cart {
	c, ok := m.carts[userID]
	if !ok {
		c = New()
		m.carts[userID] = c
	}
	return c
}

func (m *Manager) AddItem(userID int, candidate Line) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.cart(userID).AddItem(candidate)
}

func (m *Manager) RemoveItem(userID int, itemID string, customizations map[string]string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.cart(userID).RemoveItem(itemID, customizations)
}

func (m *Manager) IncreaseQuantity(userID int, itemID string, customizations map[string]string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.cart(userID).IncreaseQuantity(itemID, customizations)
}

func (m *Manager) DecreaseQuantity(userID int, itemID string, customizations map[string]string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.cart(userID).DecreaseQuantity(itemID, customizations)
}

func (m *Manager) SetQuantity(userID int, itemID string, customizations map[string]string, quantity int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.cart(userID).SetQuantity(itemID, customizations, quantity)
}

func (m *Manager) Clear(userID int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.carts, userID)
}

// Snapshot returns the cart's lines and derived totals as one consistent view.
func (m *Manager) Snapshot(userID int) Summary {
	m.mu.Lock()
	defer m.mu.Unlock()

	c, ok := m.carts[userID]
	if !ok {
		return Summary{Lines: []Line{}}
	}

	return Summary{
		Lines:        c.Lines(),
		TotalItems:   c.TotalItems(),
		TotalPrice:   c.TotalPrice(),
		RestaurantID: c.RestaurantID(),
	}
}
