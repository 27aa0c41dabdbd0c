package controllers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Kariqs/dukani-api/initializers"
	"github.com/Kariqs/dukani-api/models"
	"github.com/Kariqs/dukani-api/routes"
	"github.com/Kariqs/dukani-api/storage"
	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupTest builds a router over a fresh in-memory database and a temp-dir
// image store. The database is named after the test so suites do not share
// state.
func setupTest(t *testing.T) (*gin.Engine, *gorm.DB, *storage.DiskStore) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatal("failed to connect to test database:", err)
	}
	initializers.SyncDatabase(db)

	store, err := storage.NewDiskStore(t.TempDir(), "/uploads")
	if err != nil {
		t.Fatal(err)
	}

	engine := gin.New()
	routes.DefaultRoutes(engine)
	routes.AuthRoutes(engine, db)
	routes.ProductRoutes(engine, db, store)
	routes.CartRoutes(engine, db)
	routes.CheckoutRoutes(engine, db, nil)
	routes.OrderRoutes(engine, db)
	return engine, db, store
}

func doJSON(t *testing.T, engine *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatal(err)
		}
	}

	req, err := http.NewRequest(method, path, &buf)
	if err != nil {
		t.Fatal(err)
	}
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func decodeBody[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("failed to decode response %q: %v", w.Body.String(), err)
	}
	return out
}

func seedUser(t *testing.T, db *gorm.DB, name, email string) models.User {
	t.Helper()
	user := models.User{Name: name, Email: &email, Password: "hashed"}
	if err := db.Create(&user).Error; err != nil {
		t.Fatal(err)
	}
	return user
}

func seedProduct(t *testing.T, db *gorm.DB, name string, price float64, stock int, category string) models.Product {
	t.Helper()
	product := models.Product{Name: name, Price: price, Stock: stock, Category: category, SKU: "TEMP"}
	if err := db.Create(&product).Error; err != nil {
		t.Fatal(err)
	}
	return product
}

// testPNG renders a solid-color PNG of the given size, usable as an upload.
func testPNG(t *testing.T, width, height int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, color.RGBA{R: 200, G: 120, B: 40, A: 255})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func doMultipart(t *testing.T, engine *gin.Engine, method, path string, fields map[string]string, fileName string, fileData []byte) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	for key, value := range fields {
		if err := writer.WriteField(key, value); err != nil {
			t.Fatal(err)
		}
	}
	if fileData != nil {
		part, err := writer.CreateFormFile("image", fileName)
		if err != nil {
			t.Fatal(err)
		}
		if _, err := part.Write(fileData); err != nil {
			t.Fatal(err)
		}
	}
	if err := writer.Close(); err != nil {
		t.Fatal(err)
	}

	req, err := http.NewRequest(method, path, &buf)
	if err != nil {
		t.Fatal(err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}
