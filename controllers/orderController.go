package controllers

import (
	"errors"
	"math"
	"net/http"
	"strconv"

	"github.com/Kariqs/dukani-api/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type updateOrderStatusInput struct {
	OrderID uint   `json:"orderId"`
	Status  string `json:"status"`
}

func GetOrders(db *gorm.DB) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		page, limit, offset := paginationParams(ctx, 10)

		var userId int
		if userIdStr := ctx.Query("userId"); userIdStr != "" {
			parsed, err := strconv.Atoi(userIdStr)
			if err != nil {
				sendErrorResponse(ctx, http.StatusBadRequest, "Invalid userId")
				return
			}
			userId = parsed
		}

		filtered := func() *gorm.DB {
			query := db.Model(&models.Order{})
			if userId > 0 {
				query = query.Where("user_id = ?", userId)
			}
			return query
		}

		var count int64
		if err := filtered().Count(&count).Error; err != nil {
			abortInternal(ctx, "Failed to fetch orders", err)
			return
		}

		var orders []models.Order
		if err := filtered().
			Preload("User").
			Preload("OrderItems.Product").
			Order("created_at desc").
			Limit(limit).
			Offset(offset).
			Find(&orders).Error; err != nil {
			abortInternal(ctx, "Failed to fetch orders", err)
			return
		}

		sendJSONResponse(ctx, http.StatusOK, gin.H{
			"orders":      orders,
			"totalOrders": count,
			"totalPages":  int(math.Ceil(float64(count) / float64(limit))),
			"currentPage": page,
			"limit":       limit,
		})
	}
}

func GetOrder(db *gorm.DB) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		orderId, err := strconv.Atoi(ctx.Param("id"))
		if err != nil {
			sendErrorResponse(ctx, http.StatusBadRequest, "Invalid order ID")
			return
		}

		var order models.Order
		if err := db.
			Preload("User").
			Preload("OrderItems.Product").
			First(&order, orderId).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				sendErrorResponse(ctx, http.StatusNotFound, msgOrderNotFound)
			} else {
				abortInternal(ctx, "Failed to fetch order", err)
			}
			return
		}

		ctx.JSON(http.StatusOK, order)
	}
}

func UpdateOrderStatus(db *gorm.DB) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		var input updateOrderStatusInput
		if err := ctx.ShouldBindJSON(&input); err != nil || input.OrderID == 0 || input.Status == "" {
			sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidData)
			return
		}

		status, err := models.ParseOrderStatus(input.Status)
		if err != nil {
			sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidOrderStatus)
			return
		}

		var order models.Order
		if err := db.First(&order, input.OrderID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				sendErrorResponse(ctx, http.StatusNotFound, msgOrderNotFound)
			} else {
				abortInternal(ctx, "Failed to fetch order", err)
			}
			return
		}

		if err := db.Model(&order).Update("status", status).Error; err != nil {
			abortInternal(ctx, "Failed to update order status", err)
			return
		}
		order.Status = status

		sendJSONResponse(ctx, http.StatusOK, gin.H{
			"message": "Order status updated successfully.",
			"order":   order,
		})
	}
}
