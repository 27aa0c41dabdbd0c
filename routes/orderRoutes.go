package routes

import (
	"github.com/Kariqs/dukani-api/controllers"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func OrderRoutes(server *gin.Engine, db *gorm.DB) {
	// The storefront calls /orders, the admin console /order. Both hit the
	// same handlers.
	server.GET("/orders", controllers.GetOrders(db))
	server.GET("/order", controllers.GetOrders(db))
	server.GET("/order/:id", controllers.GetOrder(db))
	server.PUT("/order", controllers.UpdateOrderStatus(db))
}
