package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fruitstand/backend/internal/middleware"
	"github.com/fruitstand/backend/internal/model"
	"github.com/fruitstand/backend/internal/service"
)

type reviewRequest struct {
	Rating int    `json:"rating"`
	Body   string `json:"body"`
}

// RecipeHandler exposes the recipe aggregate over HTTP.
type RecipeHandler struct {
	recipes *service.RecipeService
}

// NewRecipeHandler creates a new RecipeHandler.
func NewRecipeHandler(recipes *service.RecipeService) *RecipeHandler {
	return &RecipeHandler{recipes: recipes}
}

// RegisterRoutes mounts the recipe routes on the given group.
func (h *RecipeHandler) RegisterRoutes(router *gin.RouterGroup) {
	recipes := router.Group("/recipes")
	{
		recipes.GET("", h.ListRecipes)
		recipes.POST("", h.CreateRecipe)
		recipes.GET("/:id", h.GetRecipe)
		recipes.DELETE("/:id", h.DeleteRecipe)
		recipes.POST("/:id/like", h.LikeRecipe)
		recipes.DELETE("/:id/like", h.UnlikeRecipe)
		recipes.POST("/:id/reviews", h.AddReview)
		recipes.DELETE("/:id/reviews/:reviewId", h.RemoveReview)
	}
}

func (h *RecipeHandler) ListRecipes(c *gin.Context) {
	recipes, err := h.recipes.List(c.Request.Context(), c.Query("q"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, recipes)
}

func (h *RecipeHandler) CreateRecipe(c *gin.Context) {
	var input service.CreateRecipeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondError(c, model.WrapError(model.ErrCodeValidation, "invalid recipe payload", err))
		return
	}

	recipe, err := h.recipes.Create(c.Request.Context(), middleware.IdentityFrom(c), input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, recipe)
}

func (h *RecipeHandler) GetRecipe(c *gin.Context) {
	recipe, err := h.recipes.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, recipe)
}

func (h *RecipeHandler) DeleteRecipe(c *gin.Context) {
	if err := h.recipes.Delete(c.Request.Context(), middleware.IdentityFrom(c), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func (h *RecipeHandler) LikeRecipe(c *gin.Context) {
	count, err := h.recipes.Like(c.Request.Context(), middleware.IdentityFrom(c), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "likes": count})
}

func (h *RecipeHandler) UnlikeRecipe(c *gin.Context) {
	count, err := h.recipes.Unlike(c.Request.Context(), middleware.IdentityFrom(c), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "likes": count})
}

func (h *RecipeHandler) AddReview(c *gin.Context) {
	var req reviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, model.WrapError(model.ErrCodeValidation, "invalid review payload", err))
		return
	}

	review, err := h.recipes.AddReview(c.Request.Context(), middleware.IdentityFrom(c), c.Param("id"), req.Rating, req.Body)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, review)
}

func (h *RecipeHandler) RemoveReview(c *gin.Context) {
	err := h.recipes.RemoveReview(c.Request.Context(), middleware.IdentityFrom(c), c.Param("id"), c.Param("reviewId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
