package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/ytgate/ytgate/internal/models"
	"github.com/ytgate/ytgate/internal/utils"
)

// errorResponse shapes every failure the same way: a single
// human-readable message, never internal details.
func errorResponse(c *gin.Context, err *utils.AppError) {
	c.JSON(err.StatusCode, models.ErrorResponse{Error: err.Message})
}
