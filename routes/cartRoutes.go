package routes

import (
	"github.com/Kariqs/dukani-api/controllers"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func CartRoutes(server *gin.Engine, db *gorm.DB) {
	server.GET("/cart", controllers.GetCart(db))
	server.POST("/cart", controllers.AddToCart(db))
	server.PUT("/cart", controllers.UpdateCartItem(db))
	server.DELETE("/cart", controllers.RemoveCartItem(db))
}
