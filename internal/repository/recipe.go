package repository

import (
	"context"
	"fmt"

	"github.com/GunarsK-portfolio/recipe-service/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// RecipeRepository defines the interface for recipe data operations.
type RecipeRepository interface {
	List(ctx context.Context) ([]models.Recipe, error)
	FindByID(ctx context.Context, id int64) (*models.Recipe, error)
	Create(ctx context.Context, recipe *models.Recipe) error
}

type recipeRepository struct {
	db *gorm.DB
}

// NewRecipeRepository creates a new RecipeRepository instance.
func NewRecipeRepository(db *gorm.DB) RecipeRepository {
	return &recipeRepository{db: db}
}

// List returns every recipe with its owner loaded, ordered by id.
func (r *recipeRepository) List(ctx context.Context) ([]models.Recipe, error) {
	recipes := []models.Recipe{}
	err := r.db.WithContext(ctx).Preload("User").Order("id").Find(&recipes).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list recipes: %w", err)
	}
	return recipes, nil
}

func (r *recipeRepository) FindByID(ctx context.Context, id int64) (*models.Recipe, error) {
	var recipe models.Recipe
	err := r.db.WithContext(ctx).Preload("User").First(&recipe, id).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find recipe by id %d: %w", id, err)
	}
	return &recipe, nil
}

// Create inserts the recipe row only; the owner is referenced by UserID and
// never written through the association.
func (r *recipeRepository) Create(ctx context.Context, recipe *models.Recipe) error {
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(recipe).Error; err != nil {
		return fmt.Errorf("failed to create recipe for user %d: %w", recipe.UserID, err)
	}
	return nil
}
