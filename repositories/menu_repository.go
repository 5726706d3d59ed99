package repositories

import (
	"context"
	"time"

	"foodrush/config"
	"foodrush/models"
)

type MenuRepository struct{}

func NewMenuRepository() *MenuRepository {
	return &MenuRepository{}
}

const menuItemColumns = `id, restaurant_id, name, description, price, image_url, options, is_available, created_at, updated_at`

func scanMenuItem(row interface {
	Scan(dest ...any) error
}) (*models.MenuItem, error) {
	item := &models.MenuItem{}
	err := row.Scan(
		&item.ID,
		&item.RestaurantID,
		&item.Name,
		&item.Description,
		&item.Price,
		&item.ImageURL,
		&item.Options,
		&item.IsAvailable,
		&item.CreatedAt,
		&item.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return item, nil
}

func (r *MenuRepository) CreateItem(item *models.MenuItem) error {
	query := `
		INSERT INTO menu_items (restaurant_id, name, description, price, image_url, options, is_available, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, true, $7, $8)
		RETURNING id, is_available, created_at, updated_at
	`
	now := time.Now()
	return config.DB.QueryRow(
		context.Background(),
		query,
		item.RestaurantID,
		item.Name,
		item.Description,
		item.Price,
		item.ImageURL,
		item.Options,
		now,
		now,
	).Scan(&item.ID, &item.IsAvailable, &item.CreatedAt, &item.UpdatedAt)
}

func (r *MenuRepository) FindItemByID(id int) (*models.MenuItem, error) {
	query := `SELECT ` + menuItemColumns + ` FROM menu_items WHERE id = $1`
	return scanMenuItem(config.DB.QueryRow(context.Background(), query, id))
}

func (r *MenuRepository) FindByRestaurant(restaurantID int) ([]models.MenuItem, error) {
	query := `SELECT ` + menuItemColumns + ` FROM menu_items WHERE restaurant_id = $1 AND is_available = true ORDER BY name`

	rows, err := config.DB.Query(context.Background(), query, restaurantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []models.MenuItem{}
	for rows.Next() {
		item, err := scanMenuItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *item)
	}
	return items, rows.Err()
}

func (r *MenuRepository) UpdateItem(item *models.MenuItem) error {
	query := `
		UPDATE menu_items
		SET name = $1, description = $2, price = $3, image_url = $4, options = $5, is_available = $6, updated_at = $7
		WHERE id = $8
	`
	_, err := config.DB.Exec(
		context.Background(),
		query,
		item.Name,
		item.Description,
		item.Price,
		item.ImageURL,
		item.Options,
		item.IsAvailable,
		time.Now(),
		item.ID,
	)
	return err
}

func (r *MenuRepository) DeleteItem(id int) error {
	query := `UPDATE menu_items SET is_available = false, updated_at = $1 WHERE id = $2`
	_, err := config.DB.Exec(context.Background(), query, time.Now(), id)
	return err
}
