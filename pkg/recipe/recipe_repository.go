package recipe

import (
	"context"
	"cuisto-web/entities"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

type (
	RecipeFilter struct {
		CategoryID *uuid.UUID
		Tag        string
	}

	RecipeRepository interface {
		GetRecipes(ctx context.Context, filter RecipeFilter, offset, limit int) ([]*entities.Recipe, int64, error)
		GetRecipeBySlug(ctx context.Context, slug string) (*entities.Recipe, error)
		GetRecipeByID(ctx context.Context, id string) (*entities.Recipe, error)
		GetCategoryBySlug(ctx context.Context, slug string) (*entities.Category, error)
		GetPublishedSlugs(ctx context.Context) ([]*entities.Recipe, error)
	}

	recipeRepository struct {
		db *gorm.DB
	}
)

func NewRecipeRepository(db *gorm.DB) RecipeRepository {
	return &recipeRepository{db: db}
}

// PublicRecipes restricts a query to recipes anyone may see.
func PublicRecipes(db *gorm.DB) *gorm.DB {
	return db.Where("recipes.is_public = ? AND recipes.is_draft = ?", true, false)
}

func (r *recipeRepository) GetRecipes(ctx context.Context, filter RecipeFilter, offset, limit int) ([]*entities.Recipe, int64, error) {
	var recipes []*entities.Recipe
	var count int64

	query := r.db.WithContext(ctx).Model(&entities.Recipe{}).Scopes(PublicRecipes)
	if filter.CategoryID != nil {
		query = query.Where("recipes.category_id = ?", *filter.CategoryID)
	}
	if filter.Tag != "" {
		query = query.Where("recipes.tags @> ?", pq.StringArray{filter.Tag})
	}
	query = query.Session(&gorm.Session{})

	if err := query.Count(&count).Error; err != nil {
		return nil, 0, err
	}

	if err := query.
		Preload("Category").
		Order("recipes.total_times_cooked desc nulls last").
		Order("recipes.id asc").
		Offset(offset).
		Limit(limit).
		Find(&recipes).Error; err != nil {
		return nil, 0, err
	}

	return recipes, count, nil
}

func (r *recipeRepository) GetRecipeBySlug(ctx context.Context, slug string) (*entities.Recipe, error) {
	var recipe entities.Recipe
	if err := r.db.WithContext(ctx).
		Scopes(PublicRecipes).
		Where("recipes.is_hidden = ?", false).
		Where("recipes.slug = ?", slug).
		Preload("Category").
		First(&recipe).Error; err != nil {
		return nil, err
	}
	return &recipe, nil
}

func (r *recipeRepository) GetRecipeByID(ctx context.Context, id string) (*entities.Recipe, error) {
	var recipe entities.Recipe
	if err := r.db.WithContext(ctx).
		Scopes(PublicRecipes).
		Where("recipes.is_hidden = ?", false).
		Where("recipes.id = ?", id).
		Preload("Category").
		First(&recipe).Error; err != nil {
		return nil, err
	}
	return &recipe, nil
}

func (r *recipeRepository) GetCategoryBySlug(ctx context.Context, slug string) (*entities.Category, error) {
	var category entities.Category
	if err := r.db.WithContext(ctx).Where("slug = ?", slug).First(&category).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *recipeRepository) GetPublishedSlugs(ctx context.Context) ([]*entities.Recipe, error) {
	var recipes []*entities.Recipe
	if err := r.db.WithContext(ctx).
		Model(&entities.Recipe{}).
		Select("id", "slug", "updated_at").
		Scopes(PublicRecipes).
		Where("recipes.slug IS NOT NULL").
		Order("recipes.slug asc").
		Find(&recipes).Error; err != nil {
		return nil, err
	}
	return recipes, nil
}
