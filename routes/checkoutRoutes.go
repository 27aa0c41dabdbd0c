package routes

import (
	"github.com/Kariqs/dukani-api/controllers"
	"github.com/Kariqs/dukani-api/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func CheckoutRoutes(server *gin.Engine, db *gorm.DB, mailer *utils.Mailer) {
	server.POST("/checkout", controllers.Checkout(db, mailer))
}
