package initializers

import (
	"log"

	"github.com/Kariqs/dukani-api/models"
	"gorm.io/gorm"
)

func SyncDatabase(db *gorm.DB) {
	if err := db.AutoMigrate(
		&models.User{},
		&models.Product{},
		&models.CartItem{},
		&models.Order{},
		&models.OrderItem{},
	); err != nil {
		log.Fatal("Failed to migrate database: ", err)
	}
	log.Println("Database synced successfully.")
}
