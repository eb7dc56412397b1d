package controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/BrindaS42/CEMS-SE-GRP-18/domain"
)

type RecommendController struct {
	ContentUsecase domain.ContentRecommender
	HybridUsecase  domain.HybridRecommender
}

func NewRecommendController(content domain.ContentRecommender, hybrid domain.HybridRecommender) *RecommendController {
	return &RecommendController{
		ContentUsecase: content,
		HybridUsecase:  hybrid,
	}
}

func topKParam(ctx *gin.Context) (int, bool) {
	raw := ctx.DefaultQuery("top_k", strconv.Itoa(domain.DefaultTopK))
	topK, err := strconv.Atoi(raw)
	if err != nil || topK <= 0 {
		ErrorResponse(ctx, http.StatusBadRequest, "INVALID_TOP_K", "top_k must be a positive number")
		return 0, false
	}
	return topK, true
}

func (c *RecommendController) GetContentRecommendations(ctx *gin.Context) {
	userID := ctx.Param("userId")
	topK, ok := topKParam(ctx)
	if !ok {
		return
	}

	recommendations, err := c.ContentUsecase.RecommendEvents(ctx.Request.Context(), userID, topK)
	if err != nil {
		ErrorResponse(ctx, http.StatusInternalServerError, "RECOMMENDATION_ERROR", err.Error())
		return
	}
	if recommendations == nil {
		recommendations = []domain.ScoredEvent{}
	}

	ctx.JSON(http.StatusOK, domain.RecommendationResponse{Recommendations: recommendations})
}

func (c *RecommendController) GetHybridRecommendations(ctx *gin.Context) {
	userID := ctx.Param("userId")
	topK, ok := topKParam(ctx)
	if !ok {
		return
	}

	recommendations, err := c.HybridUsecase.Recommend(ctx.Request.Context(), userID, topK)
	if err != nil {
		ErrorResponse(ctx, http.StatusInternalServerError, "RECOMMENDATION_ERROR", err.Error())
		return
	}
	if recommendations == nil {
		recommendations = []domain.ScoredEvent{}
	}

	ctx.JSON(http.StatusOK, domain.RecommendationResponse{Recommendations: recommendations})
}
