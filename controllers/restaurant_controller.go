package controllers

import (
	"log"
	"net/http"
	"path/filepath"
	"strconv"

	"foodrush/config"
	"foodrush/libs"
	"foodrush/models"
	"foodrush/repositories"
	"foodrush/utils"

	"github.com/gin-gonic/gin"
)

type RestaurantController struct {
	Restaurants *repositories.RestaurantRepository
}

func getPaginationParams(c *gin.Context, defaultLimit int) (page, limit int) {
	page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ = strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(defaultLimit)))

	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = defaultLimit
	}
	if limit > 100 {
		limit = 100
	}
	return page, limit
}

// GetAllRestaurants godoc
// @Summary Browse restaurants
// @Tags Restaurants
// @Produce json
// @Param page query int false "Page number"
// @Param limit query int false "Items per page"
// @Success 200 {object} models.PaginationResponse
// @Router /restaurants [get]
func (ctrl *RestaurantController) GetAllRestaurants(c *gin.Context) {
	page, limit := getPaginationParams(c, 10)

	restaurants, total, err := ctrl.Restaurants.FindAll(page, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Success: false,
			Message: "Failed to fetch restaurants",
		})
		return
	}

	totalPages := 0
	if total > 0 {
		totalPages = (total + limit - 1) / limit
	}

	c.JSON(http.StatusOK, models.PaginationResponse{
		Success: true,
		Message: "Restaurants fetched",
		Data:    restaurants,
		Meta: models.PaginationMeta{
			Page:       page,
			Limit:      limit,
			TotalItems: total,
			TotalPages: totalPages,
		},
	})
}

// GetRestaurantByID godoc
// @Summary Get one restaurant
// @Tags Restaurants
// @Produce json
// @Param id path int true "Restaurant ID"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /restaurants/{id} [get]
func (ctrl *RestaurantController) GetRestaurantByID(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Message: "Invalid restaurant id",
		})
		return
	}

	restaurant, err := ctrl.Restaurants.FindByID(id)
	if err != nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Success: false,
			Message: "Restaurant not found",
		})
		return
	}

	c.JSON(http.StatusOK, models.Response{Success: true, Data: restaurant})
}

// GetOwnRestaurants lists the restaurants belonging to the logged-in owner.
func (ctrl *RestaurantController) GetOwnRestaurants(c *gin.Context) {
	ownerID := c.GetInt("user_id")

	restaurants, err := ctrl.Restaurants.FindByOwner(ownerID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Success: false,
			Message: "Failed to fetch restaurants",
		})
		return
	}

	c.JSON(http.StatusOK, models.Response{Success: true, Data: restaurants})
}

// CreateRestaurant godoc
// @Summary Create restaurant
// @Tags Owner - Restaurants
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body models.CreateRestaurantRequest true "Restaurant"
// @Success 201 {object} models.Response
// @Router /owner/restaurants [post]
func (ctrl *RestaurantController) CreateRestaurant(c *gin.Context) {
	ownerID := c.GetInt("user_id")

	var req models.CreateRestaurantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Message: "Invalid request",
			Error:   err.Error(),
		})
		return
	}

	restaurant := &models.Restaurant{
		OwnerID:     ownerID,
		Name:        req.Name,
		Description: req.Description,
		Address:     req.Address,
		Phone:       req.Phone,
		ImageURL:    req.ImageURL,
	}

	if err := ctrl.Restaurants.Create(restaurant); err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Success: false,
			Message: "Failed to create restaurant",
		})
		return
	}

	c.JSON(http.StatusCreated, models.Response{
		Success: true,
		Message: "Restaurant created",
		Data:    restaurant,
	})
}

// findOwnedRestaurant loads the restaurant and verifies it belongs to the
// logged-in owner. Writes the error response itself and returns nil on failure.
func (ctrl *RestaurantController) findOwnedRestaurant(c *gin.Context) *models.Restaurant {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Message: "Invalid restaurant id",
		})
		return nil
	}

	restaurant, err := ctrl.Restaurants.FindByID(id)
	if err != nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Success: false,
			Message: "Restaurant not found",
		})
		return nil
	}

	if restaurant.OwnerID != c.GetInt("user_id") {
		c.JSON(http.StatusForbidden, models.ErrorResponse{
			Success: false,
			Message: "You do not own this restaurant",
		})
		return nil
	}

	return restaurant
}

// UpdateRestaurant godoc
// @Summary Update restaurant
// @Tags Owner - Restaurants
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Restaurant ID"
// @Param request body models.UpdateRestaurantRequest true "Fields to update"
// @Success 200 {object} models.Response
// @Router /owner/restaurants/{id} [patch]
func (ctrl *RestaurantController) UpdateRestaurant(c *gin.Context) {
	restaurant := ctrl.findOwnedRestaurant(c)
	if restaurant == nil {
		return
	}

	var req models.UpdateRestaurantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Message: "Invalid request",
			Error:   err.Error(),
		})
		return
	}

	if req.Name != "" {
		restaurant.Name = req.Name
	}
	if req.Description != "" {
		restaurant.Description = req.Description
	}
	if req.Address != "" {
		restaurant.Address = req.Address
	}
	if req.Phone != "" {
		restaurant.Phone = req.Phone
	}
	if req.ImageURL != "" {
		restaurant.ImageURL = req.ImageURL
	}
	if req.IsOpen != nil {
		restaurant.IsOpen = *req.IsOpen
	}

	if err := ctrl.Restaurants.Update(restaurant); err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Success: false,
			Message: "Failed to update restaurant",
		})
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Restaurant updated",
		Data:    restaurant,
	})
}

// DeleteRestaurant godoc
// @Summary Deactivate restaurant
// @Tags Owner - Restaurants
// @Security BearerAuth
// @Param id path int true "Restaurant ID"
// @Success 200 {object} models.Response
// @Router /owner/restaurants/{id} [delete]
func (ctrl *RestaurantController) DeleteRestaurant(c *gin.Context) {
	restaurant := ctrl.findOwnedRestaurant(c)
	if restaurant == nil {
		return
	}

	if err := ctrl.Restaurants.Delete(restaurant.ID); err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Success: false,
			Message: "Failed to delete restaurant",
		})
		return
	}

	c.JSON(http.StatusOK, models.Response{Success: true, Message: "Restaurant deleted"})
}

// UploadRestaurantImage stores a restaurant image and returns its URL.
func (ctrl *RestaurantController) UploadRestaurantImage(c *gin.Context) {
	restaurant := ctrl.findOwnedRestaurant(c)
	if restaurant == nil {
		return
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Message: "Image file required",
		})
		return
	}

	localPath, err := utils.UploadFile(c, fileHeader, "restaurants")
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Message: err.Error(),
		})
		return
	}

	imageURL := localPath
	fullPath := filepath.Join(config.AppConfig.UploadDir, localPath)
	if cloudURL, err := libs.UploadToCloudinary(fullPath); err == nil {
		imageURL = cloudURL
		utils.DeleteFile(localPath)
	} else {
		log.Printf("cloudinary upload failed, keeping local file: %v", err)
	}

	restaurant.ImageURL = imageURL
	if err := ctrl.Restaurants.Update(restaurant); err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Success: false,
			Message: "Failed to save image",
		})
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Image uploaded",
		Data:    gin.H{"image_url": imageURL},
	})
}
