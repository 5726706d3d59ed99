package repositories

import (
	"context"
	"time"

	"foodrush/config"
	"foodrush/models"
)

type RestaurantRepository struct{}

func NewRestaurantRepository() *RestaurantRepository {
	return &RestaurantRepository{}
}

const restaurantColumns = `id, owner_id, name, description, address, phone, image_url, is_open, is_active, created_at, updated_at`

func scanRestaurant(row interface {
	Scan(dest ...any) error
}) (*models.Restaurant, error) {
	rest := &models.Restaurant{}
	err := row.Scan(
		&rest.ID,
		&rest.OwnerID,
		&rest.Name,
		&rest.Description,
		&rest.Address,
		&rest.Phone,
		&rest.ImageURL,
		&rest.IsOpen,
		&rest.IsActive,
		&rest.CreatedAt,
		&rest.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return rest, nil
}

func (r *RestaurantRepository) Create(rest *models.Restaurant) error {
	query := `
		INSERT INTO restaurants (owner_id, name, description, address, phone, image_url, is_open, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, true, true, $7, $8)
		RETURNING id, is_open, is_active, created_at, updated_at
	`
	now := time.Now()
	return config.DB.QueryRow(
		context.Background(),
		query,
		rest.OwnerID,
		rest.Name,
		rest.Description,
		rest.Address,
		rest.Phone,
		rest.ImageURL,
		now,
		now,
	).Scan(&rest.ID, &rest.IsOpen, &rest.IsActive, &rest.CreatedAt, &rest.UpdatedAt)
}

func (r *RestaurantRepository) FindByID(id int) (*models.Restaurant, error) {
	query := `SELECT ` + restaurantColumns + ` FROM restaurants WHERE id = $1 AND is_active = true`
	return scanRestaurant(config.DB.QueryRow(context.Background(), query, id))
}

func (r *RestaurantRepository) FindByOwner(ownerID int) ([]models.Restaurant, error) {
	query := `SELECT ` + restaurantColumns + ` FROM restaurants WHERE owner_id = $1 AND is_active = true ORDER BY created_at DESC`

	rows, err := config.DB.Query(context.Background(), query, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	restaurants := []models.Restaurant{}
	for rows.Next() {
		rest, err := scanRestaurant(rows)
		if err != nil {
			return nil, err
		}
		restaurants = append(restaurants, *rest)
	}
	return restaurants, rows.Err()
}

func (r *RestaurantRepository) FindAll(page, limit int) ([]models.Restaurant, int, error) {
	offset := (page - 1) * limit

	var total int
	countQuery := `SELECT COUNT(*) FROM restaurants WHERE is_active = true`
	if err := config.DB.QueryRow(context.Background(), countQuery).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `SELECT ` + restaurantColumns + ` FROM restaurants WHERE is_active = true ORDER BY created_at DESC LIMIT $1 OFFSET $2`

	rows, err := config.DB.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	restaurants := []models.Restaurant{}
	for rows.Next() {
		rest, err := scanRestaurant(rows)
		if err != nil {
			return nil, 0, err
		}
		restaurants = append(restaurants, *rest)
	}
	return restaurants, total, rows.Err()
}

func (r *RestaurantRepository) Update(rest *models.Restaurant) error {
	query := `
		UPDATE restaurants
		SET name = $1, description = $2, address = $3, phone = $4, image_url = $5, is_open = $6, updated_at = $7
		WHERE id = $8
	`
	_, err := config.DB.Exec(
		context.Background(),
		query,
		rest.Name,
		rest.Description,
		rest.Address,
		rest.Phone,
		rest.ImageURL,
		rest.IsOpen,
		time.Now(),
		rest.ID,
	)
	return err
}

func (r *RestaurantRepository) Delete(id int) error {
	query := `UPDATE restaurants SET is_active = false, updated_at = $1 WHERE id = $2`
	_, err := config.DB.Exec(context.Background(), query, time.Now(), id)
	return err
}
