package models

import "time"

// OptionGroup is one customization axis of a menu item, e.g. size with
// choices S/M/L. Stored as jsonb on the menu_items row.
type OptionGroup struct {
	Name    string   `json:"name"`
	Choices []string `json:"choices"`
}

type MenuItem struct {
	ID           int           `json:"id"`
	RestaurantID int           `json:"restaurant_id"`
	Name         string        `json:"name"`
	Description  string        `json:"description"`
	Price        float64       `json:"price"`
	ImageURL     string        `json:"image_url"`
	Options      []OptionGroup `json:"options,omitempty"`
	IsAvailable  bool          `json:"is_available"`
	CreatedAt    time.Time     `json:"created_at"`
	UpdatedAt    time.Time     `json:"updated_at"`
}
