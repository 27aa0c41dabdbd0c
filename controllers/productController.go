package controllers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"math"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"

	"github.com/Kariqs/dukani-api/apierror"
	"github.com/Kariqs/dukani-api/models"
	"github.com/Kariqs/dukani-api/storage"
	"github.com/Kariqs/dukani-api/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// productInput is the normalized form of a create/update request. Both the
// JSON and the multipart decoders produce it, so validation and persistence
// run once regardless of how the client sent the data. Nil means the field
// was omitted (partial update semantics).
type productInput struct {
	Name        *string
	Price       *float64
	Stock       *int
	Category    *string
	SKU         *string
	Rating      *float64
	Description *string
	Image       *string
	File        *multipart.FileHeader
}

type productJSONBody struct {
	Name        *string  `json:"name"`
	Price       *float64 `json:"price"`
	Stock       *int     `json:"stock"`
	Category    *string  `json:"category"`
	SKU         *string  `json:"sku"`
	Rating      *float64 `json:"rating"`
	Description *string  `json:"description"`
	Image       *string  `json:"image"`
	ImagePath   *string  `json:"imagePath"`
}

func decodeProductInput(ctx *gin.Context) (*productInput, *apierror.Error) {
	if strings.HasPrefix(ctx.ContentType(), "multipart/form-data") {
		return decodeProductForm(ctx)
	}

	var body productJSONBody
	if err := ctx.ShouldBindJSON(&body); err != nil {
		return nil, apierror.Wrap(apierror.Validation, msgInvalidData, err)
	}

	in := &productInput{
		Name:        body.Name,
		Price:       body.Price,
		Stock:       body.Stock,
		Category:    body.Category,
		SKU:         body.SKU,
		Rating:      body.Rating,
		Description: body.Description,
		Image:       body.Image,
	}
	if in.Image == nil {
		in.Image = body.ImagePath
	}
	return in, nil
}

func decodeProductForm(ctx *gin.Context) (*productInput, *apierror.Error) {
	in := &productInput{}

	setString := func(dst **string, field string) {
		if v := ctx.PostForm(field); v != "" {
			*dst = &v
		}
	}
	setString(&in.Name, "name")
	setString(&in.Category, "category")
	setString(&in.SKU, "sku")
	setString(&in.Description, "description")

	if v := ctx.PostForm("price"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return nil, apierror.Wrap(apierror.Validation, "Invalid price", err)
		}
		in.Price = &f
	}
	if v := ctx.PostForm("stock"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, apierror.Wrap(apierror.Validation, "Invalid stock", err)
		}
		in.Stock = &n
	}
	if v := ctx.PostForm("rating"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return nil, apierror.Wrap(apierror.Validation, "Invalid rating", err)
		}
		in.Rating = &f
	}

	if file, err := ctx.FormFile("image"); err == nil {
		in.File = file
	}
	return in, nil
}

// saveProductImage runs an upload through the compression pipeline and writes
// the result to the store, returning the public path.
func saveProductImage(store storage.ImageStore, file *multipart.FileHeader) (string, error) {
	f, err := file.Open()
	if err != nil {
		return "", err
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return "", err
	}

	name, encoded, err := storage.CompressImage(file.Filename, data)
	if err != nil {
		return "", err
	}
	return store.Save(name, encoded, "image/webp")
}

// removeProductImages deletes a product's files from the store. Best-effort:
// failures are logged and swallowed. The default sentinel is never removed.
func removeProductImages(store storage.ImageStore, product *models.Product) {
	seen := map[string]bool{storage.DefaultImagePath: true}

	remove := func(path string) {
		if path == "" || seen[path] {
			return
		}
		seen[path] = true
		if err := store.Remove(path); err != nil {
			log.Printf("Failed to remove image %s: %v", path, err)
		}
	}

	if product.Image != nil {
		remove(*product.Image)
	}
	for _, path := range decodeImageList(product.Images) {
		remove(path)
	}
}

func decodeImageList(images datatypes.JSON) []string {
	var paths []string
	if len(images) == 0 {
		return nil
	}
	if err := json.Unmarshal(images, &paths); err != nil {
		return nil
	}
	return paths
}

func encodeImageList(paths ...string) datatypes.JSON {
	encoded, _ := json.Marshal(paths)
	return datatypes.JSON(encoded)
}

func GetProducts(db *gorm.DB) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		page, limit, offset := paginationParams(ctx, 10)

		filtered := func() *gorm.DB {
			query := db.Model(&models.Product{})
			if search := ctx.Query("search"); search != "" {
				pattern := "%" + strings.ToLower(search) + "%"
				query = query.Where("LOWER(name) LIKE ? OR LOWER(category) LIKE ?", pattern, pattern)
			}
			return query
		}

		var count int64
		if err := filtered().Count(&count).Error; err != nil {
			abortInternal(ctx, "Failed to fetch products", err)
			return
		}

		var products []models.Product
		if err := filtered().Order("id desc").Limit(limit).Offset(offset).Find(&products).Error; err != nil {
			abortInternal(ctx, "Failed to fetch products", err)
			return
		}

		sendJSONResponse(ctx, http.StatusOK, gin.H{
			"products":    products,
			"totalProds":  count,
			"currentPage": page,
			"totalPages":  int(math.Ceil(float64(count) / float64(limit))),
		})
	}
}

func GetProduct(db *gorm.DB) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		productId, err := strconv.Atoi(ctx.Param("id"))
		if err != nil {
			sendErrorResponse(ctx, http.StatusBadRequest, "Invalid product ID")
			return
		}

		var product models.Product
		if err := db.First(&product, productId).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				sendErrorResponse(ctx, http.StatusNotFound, msgProductNotFound)
			} else {
				abortInternal(ctx, "Failed to fetch product", err)
			}
			return
		}

		ctx.JSON(http.StatusOK, product)
	}
}

func CreateProduct(db *gorm.DB, store storage.ImageStore) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		in, apiErr := decodeProductInput(ctx)
		if apiErr != nil {
			respondAPIError(ctx, apiErr)
			return
		}

		if in.Name == nil || in.Price == nil || in.Stock == nil || in.Category == nil {
			sendErrorResponse(ctx, http.StatusBadRequest, msgMissingFields)
			return
		}

		imagePath := ""
		if in.File != nil {
			path, err := saveProductImage(store, in.File)
			if err != nil {
				abortInternal(ctx, "Failed to save image", err)
				return
			}
			imagePath = path
		} else if in.Image != nil {
			imagePath = *in.Image
		}
		if imagePath == "" {
			imagePath = storage.DefaultImagePath
		}

		product := models.Product{
			Name:        *in.Name,
			Price:       *in.Price,
			Stock:       *in.Stock,
			Category:    *in.Category,
			SKU:         "TEMP",
			Rating:      in.Rating,
			Description: in.Description,
			Image:       &imagePath,
			Images:      encodeImageList(imagePath),
		}

		if err := db.Create(&product).Error; err != nil {
			abortInternal(ctx, "Failed to create product", err)
			return
		}

		// The SKU depends on the generated id, so the row is created with a
		// placeholder and patched once the id is known.
		sku := fmt.Sprintf("%s_%d", utils.Slugify(product.Name), product.ID)
		if err := db.Model(&product).Update("sku", sku).Error; err != nil {
			abortInternal(ctx, "Failed to assign SKU", err)
			return
		}
		product.SKU = sku

		ctx.JSON(http.StatusCreated, product)
	}
}

func UpdateProduct(db *gorm.DB, store storage.ImageStore) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		productId, err := strconv.Atoi(ctx.Param("id"))
		if err != nil {
			sendErrorResponse(ctx, http.StatusBadRequest, "Invalid product ID")
			return
		}

		var product models.Product
		if err := db.First(&product, productId).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				sendErrorResponse(ctx, http.StatusNotFound, msgProductNotFound)
			} else {
				abortInternal(ctx, "Failed to fetch product", err)
			}
			return
		}

		in, apiErr := decodeProductInput(ctx)
		if apiErr != nil {
			respondAPIError(ctx, apiErr)
			return
		}

		if in.Name != nil {
			product.Name = *in.Name
		}
		if in.Price != nil {
			product.Price = *in.Price
		}
		if in.Stock != nil {
			product.Stock = *in.Stock
		}
		if in.Category != nil {
			product.Category = *in.Category
		}
		if in.SKU != nil {
			product.SKU = *in.SKU
		}
		if in.Rating != nil {
			product.Rating = in.Rating
		}
		if in.Description != nil {
			product.Description = in.Description
		}

		if in.File != nil {
			// Replacing the image: drop the old files first (best-effort),
			// then write the new one.
			removeProductImages(store, &product)
			path, err := saveProductImage(store, in.File)
			if err != nil {
				abortInternal(ctx, "Failed to save image", err)
				return
			}
			product.Image = &path
			product.Images = encodeImageList(path)
		} else if in.Image != nil {
			product.Image = in.Image
		}

		if err := db.Save(&product).Error; err != nil {
			abortInternal(ctx, "Failed to update product", err)
			return
		}

		ctx.JSON(http.StatusOK, product)
	}
}

func DeleteProduct(db *gorm.DB, store storage.ImageStore) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		productId, err := strconv.Atoi(ctx.Param("id"))
		if err != nil {
			sendErrorResponse(ctx, http.StatusBadRequest, "Invalid product ID")
			return
		}

		var product models.Product
		if err := db.First(&product, productId).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				sendErrorResponse(ctx, http.StatusNotFound, msgProductNotFound)
			} else {
				abortInternal(ctx, "Failed to fetch product", err)
			}
			return
		}

		removeProductImages(store, &product)

		if err := db.Delete(&product).Error; err != nil {
			abortInternal(ctx, "Failed to delete product", err)
			return
		}

		sendJSONResponse(ctx, http.StatusOK, gin.H{"message": "Deleted successfully"})
	}
}
