package routes

import (
	"github.com/Kariqs/dukani-api/controllers"
	"github.com/Kariqs/dukani-api/storage"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func ProductRoutes(server *gin.Engine, db *gorm.DB, store storage.ImageStore) {
	server.GET("/products", controllers.GetProducts(db))
	server.POST("/products", controllers.CreateProduct(db, store))
	server.GET("/products/:id", controllers.GetProduct(db))
	server.PUT("/products/:id", controllers.UpdateProduct(db, store))
	server.DELETE("/products/:id", controllers.DeleteProduct(db, store))
}
