package services

import (
	"errors"
	"sync"
	"testing"
	"time"

	"foodrush/cart"
	"foodrush/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockOrderStore struct {
	mu        sync.Mutex
	orders    map[int]*models.Order
	nextID    int
	createErr error
}

func newMockOrderStore() *mockOrderStore {
	return &mockOrderStore{orders: map[int]*models.Order{}, nextID: 1}
}

func (m *mockOrderStore) CreateOrder(order *models.Order) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.createErr != nil {
		return m.createErr
	}
	order.ID = m.nextID
	m.nextID++
	for i := range order.Items {
		order.Items[i].OrderID = order.ID
	}
	cp := *order
	m.orders[order.ID] = &cp
	return nil
}

func (m *mockOrderStore) FindByID(id int) (*models.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	order, ok := m.orders[id]
	if !ok {
		return nil, errors.New("no rows in result set")
	}
	cp := *order
	return &cp, nil
}

func (m *mockOrderStore) filter(match func(models.Order) bool) []models.Order {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []models.Order{}
	for _, order := range m.orders {
		if match(*order) {
			out = append(out, *order)
		}
	}
	return out
}

func (m *mockOrderStore) FindByCustomer(customerID int) ([]models.Order, error) {
	return m.filter(func(o models.Order) bool { return o.CustomerID == customerID }), nil
}

func (m *mockOrderStore) FindByRestaurant(restaurantID int) ([]models.Order, error) {
	return m.filter(func(o models.Order) bool { return o.RestaurantID == restaurantID }), nil
}

func (m *mockOrderStore) FindByDriver(driverID int) ([]models.Order, error) {
	return m.filter(func(o models.Order) bool { return o.DriverID != nil && *o.DriverID == driverID }), nil
}

func (m *mockOrderStore) FindReadyForPickup() ([]models.Order, error) {
	return m.filter(func(o models.Order) bool {
		return o.Status == models.OrderStatusReady && o.DriverID == nil
	}), nil
}

func (m *mockOrderStore) UpdateStatus(orderID int, status string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	order, ok := m.orders[orderID]
	if !ok {
		return errors.New("no rows in result set")
	}
	order.Status = status
	return nil
}

func (m *mockOrderStore) AssignDriver(orderID, driverID int) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	order, ok := m.orders[orderID]
	if !ok || order.Status != models.OrderStatusReady || order.DriverID != nil {
		return false, nil
	}
	order.DriverID = &driverID
	return true, nil
}

type captureSender struct {
	sent chan string
}

func (c *captureSender) SendOrderConfirmation(toEmail string, _ *models.Order) error {
	c.sent <- toEmail
	return nil
}

func testCustomer() *models.User {
	return &models.User{ID: 7, Email: "ann@example.com", Role: models.RoleCustomer}
}

func fillCart(carts *cart.Manager, userID int) {
	carts.AddItem(userID, cart.Line{
		ItemID: "3", Name: "Pad Thai", UnitPrice: 12.5, Quantity: 2, RestaurantID: "1",
		Customizations: map[string]string{"spice": "medium"},
	})
	carts.AddItem(userID, cart.Line{
		ItemID: "5", Name: "Spring Rolls", UnitPrice: 4, Quantity: 3, RestaurantID: "1",
	})
}

func TestCheckout_CreatesOrderAndClearsCart(t *testing.T) {
	store := newMockOrderStore()
	carts := cart.NewManager()
	svc := NewOrderService(store, carts, nil)
	fillCart(carts, 7)

	order, err := svc.Checkout(testCustomer(), models.CheckoutRequest{
		DeliveryAddress: "12 Main St",
		Notes:           "ring twice",
	})

	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusPending, order.Status)
	assert.Equal(t, 1, order.RestaurantID)
	assert.Equal(t, 37.0, order.TotalAmount)
	assert.Contains(t, order.OrderNumber, "FR-")
	require.NotNil(t, order.Notes)
	assert.Equal(t, "ring twice", *order.Notes)

	require.Len(t, order.Items, 2)
	assert.Equal(t, "3", order.Items[0].ItemID)
	assert.Equal(t, 2, order.Items[0].Quantity)
	assert.Equal(t, map[string]string{"spice": "medium"}, order.Items[0].Customizations)

	assert.Empty(t, carts.Snapshot(7).Lines)
}

func TestCheckout_EmptyCart(t *testing.T) {
	svc := NewOrderService(newMockOrderStore(), cart.NewManager(), nil)

	_, err := svc.Checkout(testCustomer(), models.CheckoutRequest{DeliveryAddress: "12 Main St"})

	assert.ErrorIs(t, err, ErrEmptyCart)
}

func TestCheckout_StoreErrorKeepsCart(t *testing.T) {
	store := newMockOrderStore()
	store.createErr = errors.New("db down")
	carts := cart.NewManager()
	svc := NewOrderService(store, carts, nil)
	fillCart(carts, 7)

	_, err := svc.Checkout(testCustomer(), models.CheckoutRequest{DeliveryAddress: "12 Main St"})

	require.Error(t, err)
	assert.Equal(t, 5, carts.Snapshot(7).TotalItems)
}

func TestCheckout_SendsConfirmationEmail(t *testing.T) {
	store := newMockOrderStore()
	carts := cart.NewManager()
	sender := &captureSender{sent: make(chan string, 1)}
	svc := NewOrderService(store, carts, sender)
	fillCart(carts, 7)

	_, err := svc.Checkout(testCustomer(), models.CheckoutRequest{DeliveryAddress: "12 Main St"})
	require.NoError(t, err)

	select {
	case to := <-sender.sent:
		assert.Equal(t, "ann@example.com", to)
	case <-time.After(time.Second):
		t.Fatal("confirmation email was never sent")
	}
}

func TestUpdateStatus(t *testing.T) {
	store := newMockOrderStore()
	carts := cart.NewManager()
	svc := NewOrderService(store, carts, nil)
	fillCart(carts, 7)
	order, err := svc.Checkout(testCustomer(), models.CheckoutRequest{DeliveryAddress: "12 Main St"})
	require.NoError(t, err)

	updated, err := svc.UpdateStatus(order.ID, models.OrderStatusAccepted)
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusAccepted, updated.Status)

	_, err = svc.UpdateStatus(order.ID, models.OrderStatusDelivered)
	assert.ErrorIs(t, err, ErrInvalidTransition)

	_, err = svc.UpdateStatus(999, models.OrderStatusAccepted)
	assert.ErrorIs(t, err, ErrOrderNotFound)
}

func TestAcceptOrder(t *testing.T) {
	store := newMockOrderStore()
	carts := cart.NewManager()
	svc := NewOrderService(store, carts, nil)
	fillCart(carts, 7)
	order, err := svc.Checkout(testCustomer(), models.CheckoutRequest{DeliveryAddress: "12 Main St"})
	require.NoError(t, err)

	for _, status := range []string{
		models.OrderStatusAccepted,
		models.OrderStatusPreparing,
		models.OrderStatusReady,
	} {
		_, err = svc.UpdateStatus(order.ID, status)
		require.NoError(t, err)
	}

	accepted, err := svc.AcceptOrder(order.ID, 21)
	require.NoError(t, err)
	require.NotNil(t, accepted.DriverID)
	assert.Equal(t, 21, *accepted.DriverID)

	_, err = svc.AcceptOrder(order.ID, 22)
	assert.ErrorIs(t, err, ErrOrderTaken)
}
