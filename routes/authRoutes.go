package routes

import (
	"os"

	"github.com/Kariqs/dukani-api/controllers"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func AuthRoutes(server *gin.Engine, db *gorm.DB) {
	server.POST("/signup", controllers.Signup(db, os.Getenv("JWT_SECRET")))
}
