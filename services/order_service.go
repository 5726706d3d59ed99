package services

import (
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"

	"foodrush/cart"
	"foodrush/models"

	"github.com/google/uuid"
)

var (
	ErrEmptyCart         = errors.New("cart is empty")
	ErrInvalidCart       = errors.New("cart contents are invalid")
	ErrOrderNotFound     = errors.New("order not found")
	ErrInvalidTransition = errors.New("invalid order status transition")
	ErrOrderTaken        = errors.New("order already taken by another driver")
)

// OrderStore is the persistence surface the order flow needs. The pgx-backed
// repository satisfies it in production; tests swap in a mock.
type OrderStore interface {
	CreateOrder(order *models.Order) error
	FindByID(id int) (*models.Order, error)
	FindByCustomer(customerID int) ([]models.Order, error)
	FindByRestaurant(restaurantID int) ([]models.Order, error)
	FindByDriver(driverID int) ([]models.Order, error)
	FindReadyForPickup() ([]models.Order, error)
	UpdateStatus(orderID int, status string) error
	AssignDriver(orderID, driverID int) (bool, error)
}

type ConfirmationSender interface {
	SendOrderConfirmation(toEmail string, order *models.Order) error
}

type OrderService struct {
	orders OrderStore
	carts  *cart.Manager
	email  ConfirmationSender
}

// NewOrderService wires the checkout flow. email may be nil, in which case no
// confirmation mails are sent.
func NewOrderService(orders OrderStore, carts *cart.Manager, email ConfirmationSender) *OrderService {
	return &OrderService{
		orders: orders,
		carts:  carts,
		email:  email,
	}
}

// Checkout turns the customer's cart into a persisted order. The cart is
// cleared only after the order is confirmed written; on any error the cart is
// left untouched so the customer can retry.
func (s *OrderService) Checkout(customer *models.User, req models.CheckoutRequest) (*models.Order, error) {
	snap := s.carts.Snapshot(customer.ID)
	if len(snap.Lines) == 0 {
		return nil, ErrEmptyCart
	}

	restaurantID, err := strconv.Atoi(snap.RestaurantID)
	if err != nil {
		return nil, ErrInvalidCart
	}

	order := &models.Order{
		OrderNumber:     newOrderNumber(),
		CustomerID:      customer.ID,
		RestaurantID:    restaurantID,
		Status:          models.OrderStatusPending,
		TotalAmount:     snap.TotalPrice,
		DeliveryAddress: req.DeliveryAddress,
		Items:           make([]models.OrderItem, 0, len(snap.Lines)),
	}
	if req.Notes != "" {
		order.Notes = &req.Notes
	}

	for _, line := range snap.Lines {
		order.Items = append(order.Items, models.OrderItem{
			ItemID:         line.ItemID,
			Name:           line.Name,
			UnitPrice:      line.UnitPrice,
			Quantity:       line.Quantity,
			Customizations: line.Customizations,
		})
	}

	if err := s.orders.CreateOrder(order); err != nil {
		return nil, err
	}

	s.carts.Clear(customer.ID)

	if s.email != nil {
		go func(email string, o models.Order) {
			if err := s.email.SendOrderConfirmation(email, &o); err != nil {
				log.Printf("order confirmation email error: %v", err)
			}
		}(customer.Email, *order)
	}

	return order, nil
}

func (s *OrderService) GetOrder(orderID int) (*models.Order, error) {
	order, err := s.orders.FindByID(orderID)
	if err != nil {
		return nil, ErrOrderNotFound
	}
	return order, nil
}

func (s *OrderService) ListByCustomer(customerID int) ([]models.Order, error) {
	return s.orders.FindByCustomer(customerID)
}

func (s *OrderService) ListByRestaurant(restaurantID int) ([]models.Order, error) {
	return s.orders.FindByRestaurant(restaurantID)
}

func (s *OrderService) ListByDriver(driverID int) ([]models.Order, error) {
	return s.orders.FindByDriver(driverID)
}

func (s *OrderService) ListReadyForPickup() ([]models.Order, error) {
	return s.orders.FindReadyForPickup()
}

// UpdateStatus moves an order along its lifecycle, rejecting transitions the
// lifecycle does not allow.
func (s *OrderService) UpdateStatus(orderID int, status string) (*models.Order, error) {
	order, err := s.orders.FindByID(orderID)
	if err != nil {
		return nil, ErrOrderNotFound
	}

	if !models.CanTransition(order.Status, status) {
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, order.Status, status)
	}

	if err := s.orders.UpdateStatus(orderID, status); err != nil {
		return nil, err
	}

	order.Status = status
	return order, nil
}

// AcceptOrder claims a ready order for a driver.
func (s *OrderService) AcceptOrder(orderID, driverID int) (*models.Order, error) {
	claimed, err := s.orders.AssignDriver(orderID, driverID)
	if err != nil {
		return nil, err
	}
	if !claimed {
		return nil, ErrOrderTaken
	}
	return s.orders.FindByID(orderID)
}

func newOrderNumber() string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))[:10]
	return "FR-" + suffix
}
