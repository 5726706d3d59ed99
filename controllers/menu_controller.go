package controllers

import (
	"net/http"
	"strconv"

	"foodrush/models"
	"foodrush/repositories"
	"foodrush/services"

	"github.com/gin-gonic/gin"
)

type MenuController struct {
	Menu        *services.MenuService
	Restaurants *repositories.RestaurantRepository
}

// GetMenu godoc
// @Summary Get restaurant menu
// @Tags Restaurants
// @Produce json
// @Param id path int true "Restaurant ID"
// @Success 200 {object} models.Response
// @Router /restaurants/{id}/menu [get]
func (ctrl *MenuController) GetMenu(c *gin.Context) {
	restaurantID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Message: "Invalid restaurant id",
		})
		return
	}

	items, err := ctrl.Menu.GetMenu(restaurantID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Success: false,
			Message: "Failed to fetch menu",
		})
		return
	}

	c.JSON(http.StatusOK, models.Response{Success: true, Data: items})
}

// ownsRestaurant verifies the path restaurant belongs to the logged-in owner.
func (ctrl *MenuController) ownsRestaurant(c *gin.Context) (int, bool) {
	restaurantID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Message: "Invalid restaurant id",
		})
		return 0, false
	}

	restaurant, err := ctrl.Restaurants.FindByID(restaurantID)
	if err != nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Success: false,
			Message: "Restaurant not found",
		})
		return 0, false
	}

	if restaurant.OwnerID != c.GetInt("user_id") {
		c.JSON(http.StatusForbidden, models.ErrorResponse{
			Success: false,
			Message: "You do not own this restaurant",
		})
		return 0, false
	}

	return restaurantID, true
}

// CreateMenuItem godoc
// @Summary Add menu item
// @Tags Owner - Menu
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Restaurant ID"
// @Param request body models.CreateMenuItemRequest true "Menu item"
// @Success 201 {object} models.Response
// @Router /owner/restaurants/{id}/menu [post]
func (ctrl *MenuController) CreateMenuItem(c *gin.Context) {
	restaurantID, ok := ctrl.ownsRestaurant(c)
	if !ok {
		return
	}

	var req models.CreateMenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Message: "Invalid request",
			Error:   err.Error(),
		})
		return
	}

	item := &models.MenuItem{
		RestaurantID: restaurantID,
		Name:         req.Name,
		Description:  req.Description,
		Price:        req.Price,
		ImageURL:     req.ImageURL,
		Options:      req.Options,
	}

	if err := ctrl.Menu.CreateItem(item); err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Success: false,
			Message: "Failed to create menu item",
		})
		return
	}

	c.JSON(http.StatusCreated, models.Response{
		Success: true,
		Message: "Menu item created",
		Data:    item,
	})
}

// UpdateMenuItem godoc
// @Summary Update menu item
// @Tags Owner - Menu
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Restaurant ID"
// @Param itemId path int true "Menu item ID"
// @Param request body models.UpdateMenuItemRequest true "Fields to update"
// @Success 200 {object} models.Response
// @Router /owner/restaurants/{id}/menu/{itemId} [patch]
func (ctrl *MenuController) UpdateMenuItem(c *gin.Context) {
	restaurantID, ok := ctrl.ownsRestaurant(c)
	if !ok {
		return
	}

	item, ok := ctrl.findItemInRestaurant(c, restaurantID)
	if !ok {
		return
	}

	var req models.UpdateMenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Message: "Invalid request",
			Error:   err.Error(),
		})
		return
	}

	if req.Name != "" {
		item.Name = req.Name
	}
	if req.Description != "" {
		item.Description = req.Description
	}
	if req.Price > 0 {
		item.Price = req.Price
	}
	if req.ImageURL != "" {
		item.ImageURL = req.ImageURL
	}
	if req.Options != nil {
		item.Options = req.Options
	}
	if req.IsAvailable != nil {
		item.IsAvailable = *req.IsAvailable
	}

	if err := ctrl.Menu.UpdateItem(item); err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Success: false,
			Message: "Failed to update menu item",
		})
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Menu item updated",
		Data:    item,
	})
}

// DeleteMenuItem godoc
// @Summary Remove menu item
// @Tags Owner - Menu
// @Security BearerAuth
// @Param id path int true "Restaurant ID"
// @Param itemId path int true "Menu item ID"
// @Success 200 {object} models.Response
// @Router /owner/restaurants/{id}/menu/{itemId} [delete]
func (ctrl *MenuController) DeleteMenuItem(c *gin.Context) {
	restaurantID, ok := ctrl.ownsRestaurant(c)
	if !ok {
		return
	}

	item, ok := ctrl.findItemInRestaurant(c, restaurantID)
	if !ok {
		return
	}

	if err := ctrl.Menu.DeleteItem(item); err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Success: false,
			Message: "Failed to delete menu item",
		})
		return
	}

	c.JSON(http.StatusOK, models.Response{Success: true, Message: "Menu item deleted"})
}

func (ctrl *MenuController) findItemInRestaurant(c *gin.Context, restaurantID int) (*models.MenuItem, bool) {
	itemID, err := strconv.Atoi(c.Param("itemId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Message: "Invalid menu item id",
		})
		return nil, false
	}

	item, err := ctrl.Menu.GetItem(itemID)
	if err != nil || item.RestaurantID != restaurantID {
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Success: false,
			Message: "Menu item not found",
		})
		return nil, false
	}

	return item, true
}
