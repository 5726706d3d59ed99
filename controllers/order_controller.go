package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"foodrush/models"
	"foodrush/repositories"
	"foodrush/services"

	"github.com/gin-gonic/gin"
)

type OrderController struct {
	Orders      *services.OrderService
	Auth        *services.AuthService
	Restaurants *repositories.RestaurantRepository
}

// Checkout godoc
// @Summary Place an order from the cart
// @Description Reads the cart, persists it as an order and clears the cart on success.
// @Tags Orders
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body models.CheckoutRequest true "Delivery details"
// @Success 201 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /orders [post]
func (ctrl *OrderController) Checkout(c *gin.Context) {
	userID := c.GetInt("user_id")

	var req models.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Message: "Invalid request",
			Error:   err.Error(),
		})
		return
	}

	customer, err := ctrl.Auth.GetProfile(userID)
	if err != nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Success: false,
			Message: "User not found",
		})
		return
	}

	order, err := ctrl.Orders.Checkout(customer, req)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, services.ErrEmptyCart) || errors.Is(err, services.ErrInvalidCart) {
			status = http.StatusBadRequest
		}
		c.JSON(status, models.ErrorResponse{
			Success: false,
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, models.Response{
		Success: true,
		Message: "Order placed",
		Data:    order,
	})
}

// GetMyOrders godoc
// @Summary List own orders
// @Tags Orders
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.Response
// @Router /orders [get]
func (ctrl *OrderController) GetMyOrders(c *gin.Context) {
	userID := c.GetInt("user_id")

	orders, err := ctrl.Orders.ListByCustomer(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Success: false,
			Message: "Failed to fetch orders",
		})
		return
	}

	c.JSON(http.StatusOK, models.Response{Success: true, Data: orders})
}

// GetOrder godoc
// @Summary Get one order
// @Tags Orders
// @Security BearerAuth
// @Produce json
// @Param id path int true "Order ID"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /orders/{id} [get]
func (ctrl *OrderController) GetOrder(c *gin.Context) {
	userID := c.GetInt("user_id")

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Message: "Invalid order id",
		})
		return
	}

	order, err := ctrl.Orders.GetOrder(id)
	if err != nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Success: false,
			Message: "Order not found",
		})
		return
	}

	if order.CustomerID != userID && !ctrl.userMayManage(c, order) {
		c.JSON(http.StatusForbidden, models.ErrorResponse{
			Success: false,
			Message: "Access denied",
		})
		return
	}

	c.JSON(http.StatusOK, models.Response{Success: true, Data: order})
}

// userMayManage reports whether the logged-in user is the restaurant owner or
// the assigned driver for the order.
func (ctrl *OrderController) userMayManage(c *gin.Context, order *models.Order) bool {
	userID := c.GetInt("user_id")

	switch c.GetString("user_role") {
	case models.RoleOwner:
		restaurant, err := ctrl.Restaurants.FindByID(order.RestaurantID)
		return err == nil && restaurant.OwnerID == userID
	case models.RoleDriver:
		return order.DriverID != nil && *order.DriverID == userID
	}
	return false
}

// CancelOrder godoc
// @Summary Cancel a pending order
// @Tags Orders
// @Security BearerAuth
// @Produce json
// @Param id path int true "Order ID"
// @Success 200 {object} models.Response
// @Router /orders/{id}/cancel [post]
func (ctrl *OrderController) CancelOrder(c *gin.Context) {
	userID := c.GetInt("user_id")

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Message: "Invalid order id",
		})
		return
	}

	order, err := ctrl.Orders.GetOrder(id)
	if err != nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Success: false,
			Message: "Order not found",
		})
		return
	}

	if order.CustomerID != userID {
		c.JSON(http.StatusForbidden, models.ErrorResponse{
			Success: false,
			Message: "Access denied",
		})
		return
	}

	updated, err := ctrl.Orders.UpdateStatus(id, models.OrderStatusCancelled)
	if err != nil {
		c.JSON(http.StatusConflict, models.ErrorResponse{
			Success: false,
			Message: "Order can no longer be cancelled",
		})
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Order cancelled",
		Data:    updated,
	})
}

// GetRestaurantOrders godoc
// @Summary List a restaurant's orders
// @Tags Owner - Orders
// @Security BearerAuth
// @Produce json
// @Param id path int true "Restaurant ID"
// @Success 200 {object} models.Response
// @Router /owner/restaurants/{id}/orders [get]
func (ctrl *OrderController) GetRestaurantOrders(c *gin.Context) {
	restaurantID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Message: "Invalid restaurant id",
		})
		return
	}

	restaurant, err := ctrl.Restaurants.FindByID(restaurantID)
	if err != nil || restaurant.OwnerID != c.GetInt("user_id") {
		c.JSON(http.StatusForbidden, models.ErrorResponse{
			Success: false,
			Message: "You do not own this restaurant",
		})
		return
	}

	orders, err := ctrl.Orders.ListByRestaurant(restaurantID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Success: false,
			Message: "Failed to fetch orders",
		})
		return
	}

	c.JSON(http.StatusOK, models.Response{Success: true, Data: orders})
}

// UpdateOrderStatus godoc
// @Summary Advance an order's status
// @Tags Owner - Orders
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Order ID"
// @Param request body models.UpdateOrderStatusRequest true "New status"
// @Success 200 {object} models.Response
// @Failure 409 {object} models.ErrorResponse
// @Router /owner/orders/{id}/status [patch]
func (ctrl *OrderController) UpdateOrderStatus(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Message: "Invalid order id",
		})
		return
	}

	var req models.UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Message: "Invalid request",
			Error:   err.Error(),
		})
		return
	}

	order, err := ctrl.Orders.GetOrder(id)
	if err != nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Success: false,
			Message: "Order not found",
		})
		return
	}

	if !ctrl.userMayManage(c, order) {
		c.JSON(http.StatusForbidden, models.ErrorResponse{
			Success: false,
			Message: "Access denied",
		})
		return
	}

	updated, err := ctrl.Orders.UpdateStatus(id, req.Status)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, services.ErrInvalidTransition) {
			status = http.StatusConflict
		}
		c.JSON(status, models.ErrorResponse{
			Success: false,
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Order status updated",
		Data:    updated,
	})
}
