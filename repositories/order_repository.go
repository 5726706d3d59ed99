package repositories

import (
	"context"
	"time"

	"foodrush/config"
	"foodrush/models"
)

type OrderRepository struct{}

func NewOrderRepository() *OrderRepository {
	return &OrderRepository{}
}

// CreateOrder persists the order and all of its lines in one transaction.
func (r *OrderRepository) CreateOrder(order *models.Order) error {
	ctx := context.Background()

	tx, err := config.DB.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	now := time.Now()
	err = tx.QueryRow(
		ctx,
		`INSERT INTO orders (order_number, customer_id, restaurant_id, status, total_amount, delivery_address, notes, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		 RETURNING id, created_at, updated_at`,
		order.OrderNumber,
		order.CustomerID,
		order.RestaurantID,
		order.Status,
		order.TotalAmount,
		order.DeliveryAddress,
		order.Notes,
		now,
		now,
	).Scan(&order.ID, &order.CreatedAt, &order.UpdatedAt)
	if err != nil {
		return err
	}

	for i := range order.Items {
		item := &order.Items[i]
		item.OrderID = order.ID
		err = tx.QueryRow(
			ctx,
			`INSERT INTO order_items (order_id, item_id, name, unit_price, quantity, customizations)
			 VALUES ($1, $2, $3, $4, $5, $6)
			 RETURNING id`,
			item.OrderID,
			item.ItemID,
			item.Name,
			item.UnitPrice,
			item.Quantity,
			item.Customizations,
		).Scan(&item.ID)
		if err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}

const orderColumns = `id, order_number, customer_id, restaurant_id, driver_id, status, total_amount, delivery_address, notes, created_at, updated_at`

func scanOrder(row interface {
	Scan(dest ...any) error
}) (*models.Order, error) {
	order := &models.Order{}
	err := row.Scan(
		&order.ID,
		&order.OrderNumber,
		&order.CustomerID,
		&order.RestaurantID,
		&order.DriverID,
		&order.Status,
		&order.TotalAmount,
		&order.DeliveryAddress,
		&order.Notes,
		&order.CreatedAt,
		&order.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return order, nil
}

func (r *OrderRepository) FindByID(id int) (*models.Order, error) {
	order, err := scanOrder(config.DB.QueryRow(
		context.Background(),
		`SELECT `+orderColumns+` FROM orders WHERE id = $1`,
		id,
	))
	if err != nil {
		return nil, err
	}

	items, err := r.findItems(order.ID)
	if err != nil {
		return nil, err
	}
	order.Items = items

	return order, nil
}

func (r *OrderRepository) findItems(orderID int) ([]models.OrderItem, error) {
	rows, err := config.DB.Query(
		context.Background(),
		`SELECT id, order_id, item_id, name, unit_price, quantity, customizations
		 FROM order_items WHERE order_id = $1 ORDER BY id`,
		orderID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []models.OrderItem{}
	for rows.Next() {
		var item models.OrderItem
		err := rows.Scan(
			&item.ID,
			&item.OrderID,
			&item.ItemID,
			&item.Name,
			&item.UnitPrice,
			&item.Quantity,
			&item.Customizations,
		)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func (r *OrderRepository) findByColumn(column string, value int) ([]models.Order, error) {
	rows, err := config.DB.Query(
		context.Background(),
		`SELECT `+orderColumns+` FROM orders WHERE `+column+` = $1 ORDER BY created_at DESC`,
		value,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := []models.Order{}
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		orders = append(orders, *order)
	}
	return orders, rows.Err()
}

func (r *OrderRepository) FindByCustomer(customerID int) ([]models.Order, error) {
	return r.findByColumn("customer_id", customerID)
}

func (r *OrderRepository) FindByRestaurant(restaurantID int) ([]models.Order, error) {
	return r.findByColumn("restaurant_id", restaurantID)
}

func (r *OrderRepository) FindByDriver(driverID int) ([]models.Order, error) {
	return r.findByColumn("driver_id", driverID)
}

// FindReadyForPickup lists orders waiting for a driver.
func (r *OrderRepository) FindReadyForPickup() ([]models.Order, error) {
	rows, err := config.DB.Query(
		context.Background(),
		`SELECT `+orderColumns+` FROM orders WHERE status = $1 AND driver_id IS NULL ORDER BY created_at`,
		models.OrderStatusReady,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := []models.Order{}
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		orders = append(orders, *order)
	}
	return orders, rows.Err()
}

func (r *OrderRepository) UpdateStatus(orderID int, status string) error {
	_, err := config.DB.Exec(
		context.Background(),
		`UPDATE orders SET status = $1, updated_at = $2 WHERE id = $3`,
		status,
		time.Now(),
		orderID,
	)
	return err
}

// AssignDriver claims a ready order for a driver. The WHERE clause makes the
// claim atomic: only one driver can win a given order.
func (r *OrderRepository) AssignDriver(orderID, driverID int) (bool, error) {
	tag, err := config.DB.Exec(
		context.Background(),
		`UPDATE orders SET driver_id = $1, updated_at = $2 WHERE id = $3 AND status = $4 AND driver_id IS NULL`,
		driverID,
		time.Now(),
		orderID,
		models.OrderStatusReady,
	)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}
