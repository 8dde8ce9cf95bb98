package utils

import (
	"net/http"

	"couponscan/internal/models"

	"github.com/gin-gonic/gin"
)

// Error bodies always have the {"message": "..."} shape the apps read.

func ErrorResponse(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, models.ErrorBody{Message: message})
}

func AbortWithError(c *gin.Context, statusCode int, message string) {
	c.AbortWithStatusJSON(statusCode, models.ErrorBody{Message: message})
}

func MessageResponse(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, gin.H{"message": message})
}

func BadRequestResponse(c *gin.Context, message string) {
	ErrorResponse(c, http.StatusBadRequest, message)
}

func UnauthorizedResponse(c *gin.Context) {
	AbortWithError(c, http.StatusUnauthorized, "Unauthorized")
}

func NotFoundResponse(c *gin.Context, message string) {
	ErrorResponse(c, http.StatusNotFound, message)
}

func InternalServerErrorResponse(c *gin.Context) {
	ErrorResponse(c, http.StatusInternalServerError, "Internal server error")
}
