package controller

import (
	"github.com/gin-gonic/gin"

	"github.com/BrindaS42/CEMS-SE-GRP-18/domain"
)

func ErrorResponse(c *gin.Context, status int, code string, message string) {
	c.JSON(status, domain.ErrorResponse{Code: code, Message: message})
}
