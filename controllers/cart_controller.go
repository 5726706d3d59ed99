package controllers

import (
	"net/http"
	"strconv"

	"foodrush/cart"
	"foodrush/models"

	"github.com/gin-gonic/gin"
)

// MenuItemGetter is the menu lookup the cart flow needs when adding an item;
// the menu service satisfies it.
type MenuItemGetter interface {
	GetItem(id int) (*models.MenuItem, error)
}

type CartController struct {
	Carts *cart.Manager
	Menu  MenuItemGetter
}

// GetCart godoc
// @Summary View own cart
// @Tags Cart
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.Response
// @Router /cart [get]
func (ctrl *CartController) GetCart(c *gin.Context) {
	userID := c.GetInt("user_id")
	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Data:    ctrl.Carts.Snapshot(userID),
	})
}

// AddItem godoc
// @Summary Add a menu item to the cart
// @Description Adds a snapshot of the menu item with the chosen customizations.
// @Description Adding the same item with the same customizations again merges quantities.
// @Tags Cart
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body models.AddCartItemRequest true "Item to add"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Failure 409 {object} models.ErrorResponse
// @Router /cart/items [post]
func (ctrl *CartController) AddItem(c *gin.Context) {
	userID := c.GetInt("user_id")

	var req models.AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Message: "Invalid request",
			Error:   err.Error(),
		})
		return
	}

	item, err := ctrl.Menu.GetItem(req.MenuItemID)
	if err != nil || !item.IsAvailable {
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Success: false,
			Message: "Menu item not found",
		})
		return
	}

	restaurantID := strconv.Itoa(item.RestaurantID)
	snap := ctrl.Carts.Snapshot(userID)
	if snap.RestaurantID != "" && snap.RestaurantID != restaurantID {
		c.JSON(http.StatusConflict, models.ErrorResponse{
			Success: false,
			Message: "Your cart contains items from another restaurant. Clear it before ordering here.",
		})
		return
	}

	ctrl.Carts.AddItem(userID, cart.Line{
		ItemID:         strconv.Itoa(item.ID),
		Name:           item.Name,
		UnitPrice:      item.Price,
		Quantity:       req.Quantity,
		RestaurantID:   restaurantID,
		Customizations: req.Customizations,
	})

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Item added to cart",
		Data:    ctrl.Carts.Snapshot(userID),
	})
}

// UpdateItem godoc
// @Summary Change a cart line's quantity
// @Description A quantity of 0 removes the line; without a quantity the action
// @Description must be "increase" or "decrease". Decrease never goes below 1.
// @Tags Cart
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body models.UpdateCartItemRequest true "Line key and change"
// @Success 200 {object} models.Response
// @Router /cart/items [patch]
func (ctrl *CartController) UpdateItem(c *gin.Context) {
	userID := c.GetInt("user_id")

	var req models.UpdateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Message: "Invalid request",
			Error:   err.Error(),
		})
		return
	}

	switch {
	case req.Quantity != nil:
		ctrl.Carts.SetQuantity(userID, req.ItemID, req.Customizations, *req.Quantity)
	case req.Action == "increase":
		ctrl.Carts.IncreaseQuantity(userID, req.ItemID, req.Customizations)
	case req.Action == "decrease":
		ctrl.Carts.DecreaseQuantity(userID, req.ItemID, req.Customizations)
	default:
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Message: "Either quantity or action is required",
		})
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Cart updated",
		Data:    ctrl.Carts.Snapshot(userID),
	})
}

// RemoveItem godoc
// @Summary Remove a cart line
// @Tags Cart
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body models.RemoveCartItemRequest true "Line key"
// @Success 200 {object} models.Response
// @Router /cart/items [delete]
func (ctrl *CartController) RemoveItem(c *gin.Context) {
	userID := c.GetInt("user_id")

	var req models.RemoveCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Message: "Invalid request",
			Error:   err.Error(),
		})
		return
	}

	ctrl.Carts.RemoveItem(userID, req.ItemID, req.Customizations)

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Item removed",
		Data:    ctrl.Carts.Snapshot(userID),
	})
}

// ClearCart godoc
// @Summary Empty the cart
// @Tags Cart
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.Response
// @Router /cart [delete]
func (ctrl *CartController) ClearCart(c *gin.Context) {
	userID := c.GetInt("user_id")
	ctrl.Carts.Clear(userID)

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Cart cleared",
		Data:    ctrl.Carts.Snapshot(userID),
	})
}
