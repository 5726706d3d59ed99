package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"foodrush/models"
	"foodrush/services"

	"github.com/gin-gonic/gin"
)

type DriverController struct {
	Orders *services.OrderService
}

// GetAvailableOrders godoc
// @Summary List orders waiting for a driver
// @Tags Driver
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.Response
// @Router /driver/orders/available [get]
func (ctrl *DriverController) GetAvailableOrders(c *gin.Context) {
	orders, err := ctrl.Orders.ListReadyForPickup()
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Success: false,
			Message: "Failed to fetch orders",
		})
		return
	}

	c.JSON(http.StatusOK, models.Response{Success: true, Data: orders})
}

// AcceptOrder godoc
// @Summary Claim a ready order for delivery
// @Tags Driver
// @Security BearerAuth
// @Produce json
// @Param id path int true "Order ID"
// @Success 200 {object} models.Response
// @Failure 409 {object} models.ErrorResponse
// @Router /driver/orders/{id}/accept [post]
func (ctrl *DriverController) AcceptOrder(c *gin.Context) {
	driverID := c.GetInt("user_id")

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Message: "Invalid order id",
		})
		return
	}

	order, err := ctrl.Orders.AcceptOrder(id, driverID)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, services.ErrOrderTaken) {
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
		Message: "Order accepted",
		Data:    order,
	})
}

// GetMyDeliveries godoc
// @Summary List own deliveries
// @Tags Driver
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.Response
// @Router /driver/orders [get]
func (ctrl *DriverController) GetMyDeliveries(c *gin.Context) {
	driverID := c.GetInt("user_id")

	orders, err := ctrl.Orders.ListByDriver(driverID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Success: false,
			Message: "Failed to fetch deliveries",
		})
		return
	}

	c.JSON(http.StatusOK, models.Response{Success: true, Data: orders})
}

// UpdateDeliveryStatus godoc
// @Summary Mark a delivery picked up or delivered
// @Tags Driver
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Order ID"
// @Param request body models.UpdateOrderStatusRequest true "New status"
// @Success 200 {object} models.Response
// @Router /driver/orders/{id}/status [patch]
func (ctrl *DriverController) UpdateDeliveryStatus(c *gin.Context) {
	driverID := c.GetInt("user_id")

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

	if req.Status != models.OrderStatusPickedUp && req.Status != models.OrderStatusDelivered {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Message: "Drivers can only mark orders picked_up or delivered",
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

	if order.DriverID == nil || *order.DriverID != driverID {
		c.JSON(http.StatusForbidden, models.ErrorResponse{
			Success: false,
			Message: "This delivery is not assigned to you",
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
		Message: "Delivery status updated",
		Data:    updated,
	})
}
