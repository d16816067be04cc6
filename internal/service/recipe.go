package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/GunarsK-portfolio/recipe-service/internal/identity"
	"github.com/GunarsK-portfolio/recipe-service/internal/models"
	"github.com/GunarsK-portfolio/recipe-service/internal/repository"
)

// RecipeInput holds the fields accepted when creating a recipe.
type RecipeInput struct {
	Title             string
	Instructions      string
	MinutesToComplete *int
}

// RecipeService lists and creates recipes for the authenticated user.
type RecipeService interface {
	List(ctx context.Context) ([]models.Recipe, error)
	Create(ctx context.Context, input RecipeInput) (*models.Recipe, error)
}

type recipeService struct {
	recipeRepo repository.RecipeRepository
}

// NewRecipeService creates a new RecipeService instance.
func NewRecipeService(recipeRepo repository.RecipeRepository) RecipeService {
	return &recipeService{recipeRepo: recipeRepo}
}

func (s *recipeService) List(ctx context.Context) ([]models.Recipe, error) {
	if _, ok := identity.UserID(ctx); !ok {
		return nil, ErrUnauthenticated
	}

	recipes, err := s.recipeRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	return recipes, nil
}

func (s *recipeService) Create(ctx context.Context, input RecipeInput) (*models.Recipe, error) {
	userID, ok := identity.UserID(ctx)
	if !ok {
		return nil, ErrUnauthenticated
	}

	recipe := &models.Recipe{
		Title:             strings.TrimSpace(input.Title),
		Instructions:      strings.TrimSpace(input.Instructions),
		MinutesToComplete: input.MinutesToComplete,
		UserID:            userID,
	}
	if problems := recipe.Validate(); len(problems) > 0 {
		return nil, newValidationError(problems...)
	}

	if err := s.recipeRepo.Create(ctx, recipe); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPersistence, err)
	}

	// The row is committed; a failed reload only drops the nested owner.
	if created, err := s.recipeRepo.FindByID(ctx, recipe.ID); err == nil {
		return created, nil
	}
	return recipe, nil
}
