package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/Kariqs/dukani-api/initializers"
	"github.com/Kariqs/dukani-api/routes"
	"github.com/Kariqs/dukani-api/storage"
	"github.com/Kariqs/dukani-api/utils"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func init() {
	initializers.LoadEnv()
}

func main() {
	db := initializers.ConnectToDB()
	initializers.SyncDatabase(db)

	uploadDir := os.Getenv("UPLOAD_DIR")
	if uploadDir == "" {
		uploadDir = "public/uploads"
	}

	store := buildImageStore(uploadDir)
	mailer := utils.NewMailerFromEnv()

	server := gin.Default()
	server.Use(cors.New(cors.Config{
		AllowOrigins:  []string{"*"},
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}))

	server.Static("/uploads", uploadDir)

	routes.DefaultRoutes(server)
	routes.AuthRoutes(server, db)
	routes.ProductRoutes(server, db, store)
	routes.CartRoutes(server, db)
	routes.CheckoutRoutes(server, db, mailer)
	routes.OrderRoutes(server, db)

	server.Run()
}

func buildImageStore(uploadDir string) storage.ImageStore {
	if bucket := os.Getenv("S3_BUCKET"); bucket != "" {
		store, err := storage.NewS3Store(context.Background(), bucket)
		if err != nil {
			log.Fatal("Failed to configure S3 store: ", err)
		}
		return store
	}

	store, err := storage.NewDiskStore(uploadDir, "/uploads")
	if err != nil {
		log.Fatal("Failed to configure upload folder: ", err)
	}
	return store
}
