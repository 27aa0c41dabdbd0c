package controllers

import (
	"log"
	"strconv"

	"github.com/Kariqs/dukani-api/apierror"
	"github.com/gin-gonic/gin"
)

const (
	msgMissingFields       = "Missing required fields"
	msgProductNotFound     = "Product not found"
	msgInvalidData         = "Invalid data"
	msgCartItemNotFound    = "Cart item not found"
	msgCartEmpty           = "Cart is empty"
	msgOrderNotFound       = "Order not found"
	msgInvalidOrderStatus  = "Invalid order status"
	msgUserAlreadyExists   = "User already exists"
	msgInternalServerError = "Internal Server Error"
)

func sendJSONResponse(ctx *gin.Context, status int, data gin.H) {
	ctx.JSON(status, data)
}

func sendErrorResponse(ctx *gin.Context, status int, message string) {
	ctx.JSON(status, gin.H{"error": message})
}

// respondAPIError maps the error kind to a status code. Underlying causes are
// logged, not forwarded to the caller.
func respondAPIError(ctx *gin.Context, err *apierror.Error) {
	if err.Err != nil {
		log.Printf("%s %s: %v", ctx.Request.Method, ctx.FullPath(), err.Err)
	}
	sendErrorResponse(ctx, err.Kind.Status(), err.Message)
}

func paginationParams(ctx *gin.Context, defaultLimit int) (page, limit, offset int) {
	page, _ = strconv.Atoi(ctx.DefaultQuery("page", "1"))
	limit, _ = strconv.Atoi(ctx.DefaultQuery("limit", strconv.Itoa(defaultLimit)))
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = defaultLimit
	}
	return page, limit, (page - 1) * limit
}

func abortInternal(ctx *gin.Context, message string, err error) {
	respondAPIError(ctx, apierror.Wrap(apierror.Internal, message, err))
}
