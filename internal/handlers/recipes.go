package handlers

import (
	"log/slog"
	"net/http"

	"github.com/GunarsK-portfolio/recipe-service/internal/service"
	"github.com/gin-gonic/gin"
)

// RecipeHandler handles recipe HTTP requests.
type RecipeHandler struct {
	recipeService service.RecipeService
	events        EventRecorder
	logger        *slog.Logger
}

// NewRecipeHandler creates a new RecipeHandler instance.
func NewRecipeHandler(recipeService service.RecipeService, events EventRecorder, logger *slog.Logger) *RecipeHandler {
	return &RecipeHandler{
		recipeService: recipeService,
		events:        events,
		logger:        logger,
	}
}

// RecipeRequest represents the create recipe request payload.
type RecipeRequest struct {
	Title             string `json:"title" binding:"required"`
	Instructions      string `json:"instructions" binding:"required,min=20"`
	MinutesToComplete *int   `json:"minutes_to_complete" binding:"omitempty,gte=0"`
}

// List godoc
// @Summary List recipes
// @Description Return every recipe with its owner nested
// @Tags recipes
// @Produce json
// @Success 200 {array} models.Recipe
// @Failure 401 {object} ErrorResponse
// @Router /recipes [get]
func (h *RecipeHandler) List(c *gin.Context) {
	recipes, err := h.recipeService.List(c.Request.Context())
	if err != nil {
		respondServiceError(c, h.logger, err, MsgInternalServerError)
		return
	}

	c.JSON(http.StatusOK, recipes)
}

// Create godoc
// @Summary Create recipe
// @Description Store a recipe owned by the session user
// @Tags recipes
// @Accept json
// @Produce json
// @Param request body RecipeRequest true "Recipe"
// @Success 201 {object} models.Recipe
// @Failure 401 {object} ErrorResponse
// @Failure 422 {object} ErrorsResponse
// @Router /recipes [post]
func (h *RecipeHandler) Create(c *gin.Context) {
	var req RecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.events.RecordEvent("recipe_create", "failure")
		RespondErrors(c, http.StatusUnprocessableEntity, bindingMessages(err)...)
		return
	}

	recipe, err := h.recipeService.Create(c.Request.Context(), service.RecipeInput{
		Title:             req.Title,
		Instructions:      req.Instructions,
		MinutesToComplete: req.MinutesToComplete,
	})
	if err != nil {
		h.events.RecordEvent("recipe_create", "failure")
		respondServiceError(c, h.logger, err, MsgRecipeNotCreated)
		return
	}

	h.events.RecordEvent("recipe_create", "success")
	c.JSON(http.StatusCreated, recipe)
}
