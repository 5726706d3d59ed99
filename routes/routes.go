package routes

import (
	"log"

	"foodrush/cart"
	"foodrush/controllers"
	"foodrush/middleware"
	"foodrush/models"
	"foodrush/repositories"
	"foodrush/services"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// SetupRoutes wires controllers against the shared cart manager and registers
// all endpoints. The manager is injected so tests can run against their own
// instance.
func SetupRoutes(router *gin.Engine, carts *cart.Manager) {
	authSvc := services.NewAuthService()
	menuSvc := services.NewMenuService()
	restaurantRepo := repositories.NewRestaurantRepository()

	var confirmation services.ConfirmationSender
	if emailSvc, err := services.NewEmailService(); err != nil {
		log.Println("Order confirmation emails disabled:", err)
	} else {
		confirmation = emailSvc
	}
	orderSvc := services.NewOrderService(repositories.NewOrderRepository(), carts, confirmation)

	authCtrl := &controllers.AuthController{Auth: authSvc}
	restaurantCtrl := &controllers.RestaurantController{Restaurants: restaurantRepo}
	menuCtrl := &controllers.MenuController{Menu: menuSvc, Restaurants: restaurantRepo}
	cartCtrl := &controllers.CartController{Carts: carts, Menu: menuSvc}
	orderCtrl := &controllers.OrderController{Orders: orderSvc, Auth: authSvc, Restaurants: restaurantRepo}
	driverCtrl := &controllers.DriverController{Orders: orderSvc}

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"status": "ok"}) })

	router.POST("/auth/register", authCtrl.Register)
	router.POST("/auth/login", authCtrl.Login)
	router.GET("/restaurants", restaurantCtrl.GetAllRestaurants)
	router.GET("/restaurants/:id", restaurantCtrl.GetRestaurantByID)
	router.GET("/restaurants/:id/menu", menuCtrl.GetMenu)

	auth := router.Group("/")
	auth.Use(middleware.AuthMiddleware())
	{
		auth.GET("/auth/profile", authCtrl.GetProfile)
		auth.PATCH("/auth/profile", authCtrl.UpdateProfile)
		auth.POST("/auth/profile/photo", authCtrl.UpdateProfilePhoto)
		auth.POST("/auth/change-password", authCtrl.ChangePassword)

		auth.GET("/orders/:id", orderCtrl.GetOrder)
	}

	customer := router.Group("/")
	customer.Use(middleware.AuthMiddleware(), middleware.RequireRole(models.RoleCustomer))
	{
		customer.GET("/cart", cartCtrl.GetCart)
		customer.DELETE("/cart", cartCtrl.ClearCart)
		customer.POST("/cart/items", cartCtrl.AddItem)
		customer.PATCH("/cart/items", cartCtrl.UpdateItem)
		customer.DELETE("/cart/items", cartCtrl.RemoveItem)

		customer.POST("/orders", orderCtrl.Checkout)
		customer.GET("/orders", orderCtrl.GetMyOrders)
		customer.POST("/orders/:id/cancel", orderCtrl.CancelOrder)
	}

	owner := router.Group("/owner")
	owner.Use(middleware.AuthMiddleware(), middleware.RequireRole(models.RoleOwner))
	{
		owner.GET("/restaurants", restaurantCtrl.GetOwnRestaurants)
		owner.POST("/restaurants", restaurantCtrl.CreateRestaurant)
		owner.PATCH("/restaurants/:id", restaurantCtrl.UpdateRestaurant)
		owner.DELETE("/restaurants/:id", restaurantCtrl.DeleteRestaurant)
		owner.POST("/restaurants/:id/image", restaurantCtrl.UploadRestaurantImage)

		owner.POST("/restaurants/:id/menu", menuCtrl.CreateMenuItem)
		owner.PATCH("/restaurants/:id/menu/:itemId", menuCtrl.UpdateMenuItem)
		owner.DELETE("/restaurants/:id/menu/:itemId", menuCtrl.DeleteMenuItem)

		owner.GET("/restaurants/:id/orders", orderCtrl.GetRestaurantOrders)
		owner.PATCH("/orders/:id/status", orderCtrl.UpdateOrderStatus)
	}

	driver := router.Group("/driver")
	driver.Use(middleware.AuthMiddleware(), middleware.RequireRole(models.RoleDriver))
	{
		driver.GET("/orders/available", driverCtrl.GetAvailableOrders)
		driver.GET("/orders", driverCtrl.GetMyDeliveries)
		driver.POST("/orders/:id/accept", driverCtrl.AcceptOrder)
		driver.PATCH("/orders/:id/status", driverCtrl.UpdateDeliveryStatus)
	}

	router.Static("/uploads", "./uploads")
}
