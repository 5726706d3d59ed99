package models

type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	FullName string `json:"full_name" binding:"required,min=3"`
	Phone    string `json:"phone" binding:"omitempty"`
	Role     string `json:"role" binding:"omitempty,oneof=customer owner driver"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type UpdateProfileRequest struct {
	FullName string `json:"full_name"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
}

type ChangePasswordRequest struct {
	OldPassword string `json:"old_password" binding:"required"`
	NewPassword string `json:"new_password" binding:"required,min=6"`
}

type CreateRestaurantRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Address     string `json:"address" binding:"required"`
	Phone       string `json:"phone"`
	ImageURL    string `json:"image_url"`
}

type UpdateRestaurantRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Address     string `json:"address"`
	Phone       string `json:"phone"`
	ImageURL    string `json:"image_url"`
	IsOpen      *bool  `json:"is_open"`
}

type CreateMenuItemRequest struct {
	Name        string        `json:"name" binding:"required"`
	Description string        `json:"description"`
	Price       float64       `json:"price" binding:"required,gt=0"`
	ImageURL    string        `json:"image_url"`
	Options     []OptionGroup `json:"options"`
}

type UpdateMenuItemRequest struct {
	Name        string        `json:"name"`
	Description string        `json:"description"`
	Price       float64       `json:"price" binding:"omitempty,gt=0"`
	ImageURL    string        `json:"image_url"`
	Options     []OptionGroup `json:"options"`
	IsAvailable *bool         `json:"is_available"`
}

type AddCartItemRequest struct {
	MenuItemID     int               `json:"menu_item_id" binding:"required"`
	Quantity       int               `json:"quantity" binding:"omitempty,gte=1"`
	Customizations map[string]string `json:"customizations"`
}

// UpdateCartItemRequest addresses a line by its full compound key. Quantity,
// when present, sets the line's quantity directly; otherwise Action must be
// "increase" or "decrease".
type UpdateCartItemRequest struct {
	ItemID         string            `json:"item_id" binding:"required"`
	Customizations map[string]string `json:"customizations"`
	Quantity       *int              `json:"quantity"`
	Action         string            `json:"action" binding:"omitempty,oneof=increase decrease"`
}

type RemoveCartItemRequest struct {
	ItemID         string            `json:"item_id" binding:"required"`
	Customizations map[string]string `json:"customizations"`
}

type CheckoutRequest struct {
	DeliveryAddress string `json:"delivery_address" binding:"required"`
	Notes           string `json:"notes"`
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}
