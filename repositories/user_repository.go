package repositories

import (
	"context"
	"time"

	"foodrush/config"
	"foodrush/models"
)

type UserRepository struct{}

func NewUserRepository() *UserRepository {
	return &UserRepository{}
}

func (r *UserRepository) Create(user *models.User) error {
	query := `
		INSERT INTO users (email, password, role, full_name, phone, address, photo_url, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, created_at, updated_at
	`
	now := time.Now()
	return config.DB.QueryRow(
		context.Background(),
		query,
		user.Email,
		user.Password,
		user.Role,
		user.FullName,
		user.Phone,
		user.Address,
		user.PhotoURL,
		now,
		now,
	).Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)
}

func (r *UserRepository) FindByEmail(email string) (*models.User, error) {
	query := `
		SELECT id, email, password, role, full_name, phone, address, photo_url, created_at, updated_at
		FROM users WHERE email = $1
	`

	user := &models.User{}
	err := config.DB.QueryRow(context.Background(), query, email).Scan(
		&user.ID,
		&user.Email,
		&user.Password,
		&user.Role,
		&user.FullName,
		&user.Phone,
		&user.Address,
		&user.PhotoURL,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return user, nil
}

func (r *UserRepository) FindByID(id int) (*models.User, error) {
	query := `
		SELECT id, email, password, role, full_name, phone, address, photo_url, created_at, updated_at
		FROM users WHERE id = $1
	`

	user := &models.User{}
	err := config.DB.QueryRow(context.Background(), query, id).Scan(
		&user.ID,
		&user.Email,
		&user.Password,
		&user.Role,
		&user.FullName,
		&user.Phone,
		&user.Address,
		&user.PhotoURL,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return user, nil
}

func (r *UserRepository) UpdateProfile(user *models.User) error {
	query := `
		UPDATE users
		SET full_name = $1, phone = $2, address = $3, photo_url = $4, updated_at = $5
		WHERE id = $6
	`
	_, err := config.DB.Exec(
		context.Background(),
		query,
		user.FullName,
		user.Phone,
		user.Address,
		user.PhotoURL,
		time.Now(),
		user.ID,
	)
	return err
}

func (r *UserRepository) UpdatePassword(userID int, hashedPassword string) error {
	query := `UPDATE users SET password = $1, updated_at = $2 WHERE id = $3`
	_, err := config.DB.Exec(context.Background(), query, hashedPassword, time.Now(), userID)
	return err
}
