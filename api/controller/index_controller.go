package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BrindaS42/CEMS-SE-GRP-18/domain"
)

type IndexController struct {
	IndexUsecase domain.IndexMaintainer
}

func NewIndexController(index domain.IndexMaintainer) *IndexController {
	return &IndexController{IndexUsecase: index}
}

func (c *IndexController) Rebuild(ctx *gin.Context) {
	if err := c.IndexUsecase.RebuildIndex(ctx.Request.Context()); err != nil {
		ErrorResponse(ctx, http.StatusInternalServerError, "REBUILD_ERROR", err.Error())
		return
	}
	ctx.JSON(http.StatusOK, domain.SuccessResponse{Message: "index rebuilt"})
}

func (c *IndexController) Add(ctx *gin.Context) {
	eventID := ctx.Param("eventId")
	if err := c.IndexUsecase.AddEvent(ctx.Request.Context(), eventID); err != nil {
		ErrorResponse(ctx, http.StatusInternalServerError, "INDEX_ADD_ERROR", err.Error())
		return
	}
	ctx.JSON(http.StatusOK, domain.SuccessResponse{Message: "event indexed"})
}

func (c *IndexController) Remove(ctx *gin.Context) {
	eventID := ctx.Param("eventId")
	if err := c.IndexUsecase.RemoveEvent(ctx.Request.Context(), eventID); err != nil {
		ErrorResponse(ctx, http.StatusInternalServerError, "INDEX_DELETE_ERROR", err.Error())
		return
	}
	ctx.JSON(http.StatusOK, domain.SuccessResponse{Message: "event removed from index"})
}
