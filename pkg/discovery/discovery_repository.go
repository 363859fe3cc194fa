package discovery

import (
	"context"
	"cuisto-web/entities"
	"cuisto-web/pkg/recipe"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	// TrendingRow is one tuple of the get_trending_recipes aggregate.
	TrendingRow struct {
		RecipeID    uuid.UUID `gorm:"column:recipe_id"`
		CookCount   int64     `gorm:"column:cook_count"`
		UniqueUsers int64     `gorm:"column:unique_users"`
	}

	DiscoveryRepository interface {
		GetTrendingRecipeStats(ctx context.Context, windowDays, limit, offset int) ([]TrendingRow, error)
		GetRecipesByIDs(ctx context.Context, ids []uuid.UUID) ([]*entities.Recipe, error)
		GetCompletedExtractions(ctx context.Context, sourceTypes []string) ([]*entities.ExtractionJob, error)
		GetHighestRated(ctx context.Context, minRatingCount, limit int) ([]*entities.Recipe, error)
		GetPopularRecipes(ctx context.Context, categoryID *uuid.UUID, limit, offset int) ([]*entities.Recipe, error)
		GetCategories(ctx context.Context) ([]*entities.Category, error)
		GetCategoriesByIDs(ctx context.Context, ids []uuid.UUID) ([]*entities.Category, error)
	}

	discoveryRepository struct {
		db *gorm.DB
	}
)

func NewDiscoveryRepository(db *gorm.DB) DiscoveryRepository {
	return &discoveryRepository{db: db}
}

func (r *discoveryRepository) GetTrendingRecipeStats(ctx context.Context, windowDays, limit, offset int) ([]TrendingRow, error) {
	var rows []TrendingRow
	if err := r.db.WithContext(ctx).
		Raw("SELECT recipe_id, cook_count, unique_users FROM get_trending_recipes(?, ?, ?)", windowDays, limit, offset).
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *discoveryRepository) GetRecipesByIDs(ctx context.Context, ids []uuid.UUID) ([]*entities.Recipe, error) {
	var recipes []*entities.Recipe
	if len(ids) == 0 {
		return recipes, nil
	}
	if err := r.db.WithContext(ctx).
		Scopes(recipe.PublicRecipes).
		Where("recipes.id IN ?", ids).
		Preload("Category").
		Find(&recipes).Error; err != nil {
		return nil, err
	}
	return recipes, nil
}

// GetCompletedExtractions returns one row per completed job of the given
// source types whose recipe is publicly listed.
func (r *discoveryRepository) GetCompletedExtractions(ctx context.Context, sourceTypes []string) ([]*entities.ExtractionJob, error) {
	var jobs []*entities.ExtractionJob
	if err := r.db.WithContext(ctx).
		Select("extraction_jobs.*").
		Joins("JOIN recipes ON recipes.id = extraction_jobs.recipe_id").
		Where("extraction_jobs.status = ?", entities.ExtractionStatusCompleted).
		Where("extraction_jobs.source_type IN ?", sourceTypes).
		Where("extraction_jobs.recipe_id IS NOT NULL").
		Scopes(recipe.PublicRecipes).
		Preload("Recipe").
		Preload("Recipe.Category").
		Find(&jobs).Error; err != nil {
		return nil, err
	}
	return jobs, nil
}

func (r *discoveryRepository) GetHighestRated(ctx context.Context, minRatingCount, limit int) ([]*entities.Recipe, error) {
	var recipes []*entities.Recipe
	if err := r.db.WithContext(ctx).
		Scopes(recipe.PublicRecipes).
		Where("recipes.rating_count >= ?", minRatingCount).
		Where("recipes.average_rating IS NOT NULL").
		Order("recipes.average_rating desc").
		Order("recipes.rating_count desc").
		Order("recipes.id asc").
		Limit(limit).
		Preload("Category").
		Find(&recipes).Error; err != nil {
		return nil, err
	}
	return recipes, nil
}

func (r *discoveryRepository) GetPopularRecipes(ctx context.Context, categoryID *uuid.UUID, limit, offset int) ([]*entities.Recipe, error) {
	var category any
	if categoryID != nil {
		category = categoryID.String()
	}

	var recipes []*entities.Recipe
	if err := r.db.WithContext(ctx).
		Raw("SELECT * FROM get_popular_recipes(?::uuid, ?, ?)", category, limit, offset).
		Scan(&recipes).Error; err != nil {
		return nil, err
	}
	return recipes, nil
}

func (r *discoveryRepository) GetCategories(ctx context.Context) ([]*entities.Category, error) {
	var categories []*entities.Category
	if err := r.db.WithContext(ctx).
		Order("display_order asc").
		Order("slug asc").
		Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *discoveryRepository) GetCategoriesByIDs(ctx context.Context, ids []uuid.UUID) ([]*entities.Category, error) {
	var categories []*entities.Category
	if len(ids) == 0 {
		return categories, nil
	}
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}
