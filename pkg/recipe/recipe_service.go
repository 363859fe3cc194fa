package recipe

import (
	"context"
	"cuisto-web/domain"
	"cuisto-web/entities"
	"cuisto-web/internal/utils"
	"cuisto-web/internal/utils/storage"
	"errors"
	"fmt"
	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"strings"
	"time"
)

var defaultDescriptions = map[string]string{
	domain.LocaleEN: "Discover how to make %s with Cuisto.",
	domain.LocaleFR: "Découvrez comment préparer %s avec Cuisto.",
}

type (
	RecipeService interface {
		ListRecipes(ctx context.Context, req domain.RecipeListRequest) (domain.RecipeListResponse, error)
		GetRecipeDetail(ctx context.Context, slugOrID string, locale string) (domain.RecipeDetailResponse, error)
	}

	recipeService struct {
		recipeRepository RecipeRepository
		s3               storage.AwsS3
		siteURL          string
	}
)

func NewRecipeService(recipeRepository RecipeRepository, s3 storage.AwsS3, siteURL string) RecipeService {
	return &recipeService{
		recipeRepository: recipeRepository,
		s3:               s3,
		siteURL:          siteURL,
	}
}

func (s *recipeService) ListRecipes(ctx context.Context, req domain.RecipeListRequest) (domain.RecipeListResponse, error) {
	page := req.Page
	if page < 1 {
		page = 1
	}
	limit := domain.RecipePageSize
	offset := (page - 1) * limit

	filter := RecipeFilter{Tag: strings.TrimSpace(req.Tag)}
	if req.Category != "" {
		category, err := s.recipeRepository.GetCategoryBySlug(ctx, req.Category)
		switch {
		case err == nil:
			filter.CategoryID = &category.ID
		case errors.Is(err, gorm.ErrRecordNotFound):
			// unknown slug: show the unfiltered grid
		default:
			return domain.RecipeListResponse{}, err
		}
	}

	rows, total, err := s.recipeRepository.GetRecipes(ctx, filter, offset, limit)
	if err != nil {
		return domain.RecipeListResponse{}, err
	}

	recipes := make([]domain.RecipeListItem, 0, len(rows))
	for _, row := range rows {
		item := NormalizeRecipe(row, CategoryRefFromEntity(row.Category))
		ResolveImage(ctx, s.s3, &item)
		recipes = append(recipes, item)
	}

	return domain.RecipeListResponse{
		Recipes: recipes,
		Pagination: domain.Pagination{
			Page:       page,
			Limit:      limit,
			Total:      total,
			TotalPages: (total + int64(limit) - 1) / int64(limit),
		},
		Filtering: req.Category != "" || req.Tag != "",
	}, nil
}

func (s *recipeService) GetRecipeDetail(ctx context.Context, slugOrID string, locale string) (domain.RecipeDetailResponse, error) {
	row, err := s.findRecipe(ctx, slugOrID)
	if err != nil {
		return domain.RecipeDetailResponse{}, err
	}

	item := NormalizeRecipe(row, CategoryRefFromEntity(row.Category))
	ResolveImage(ctx, s.s3, &item)

	detail := domain.RecipeDetail{
		RecipeListItem: item,
		Ingredients:    decodeList[domain.Ingredient](row.Ingredients),
		Instructions:   decodeList[domain.Instruction](row.Instructions),
		Servings:       optionalPositive(row.Servings),
		SourceType:     row.SourceType,
		SourceURL:      optionalString(row.SourceURL),
		Language:       optionalString(row.Language),
		CreatedAt:      formatTime(row.CreatedAt),
		UpdatedAt:      formatTime(row.UpdatedAt),
	}

	format, ok := defaultDescriptions[locale]
	if !ok {
		format = defaultDescriptions[domain.DefaultLocale]
	}
	description := fmt.Sprintf(format, item.Title)
	if item.Description != nil {
		description = *item.Description
	}
	var images []string
	if item.ImageURL != nil {
		images = []string{*item.ImageURL}
	}

	return domain.RecipeDetailResponse{
		Recipe: detail,
		SEO: utils.BuildSEO(
			s.siteURL, locale, "/recipes/"+recipePathKey(item),
			item.Title+" | Cuisto", description, "article", images,
		),
		JSONLD: BuildRecipeJSONLD(detail, s.siteURL, locale),
	}, nil
}

// findRecipe looks the recipe up by slug first and falls back to its id.
func (s *recipeService) findRecipe(ctx context.Context, slugOrID string) (*entities.Recipe, error) {
	row, err := s.recipeRepository.GetRecipeBySlug(ctx, slugOrID)
	if err == nil {
		return row, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	if _, parseErr := uuid.Parse(slugOrID); parseErr != nil {
		return nil, domain.ErrRecipeNotFound
	}
	row, err = s.recipeRepository.GetRecipeByID(ctx, slugOrID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrRecipeNotFound
		}
		return nil, err
	}
	return row, nil
}

func decodeList[T any](raw []byte) []T {
	out := []T{}
	if len(raw) == 0 {
		return out
	}
	if err := json.Unmarshal(raw, &out); err != nil || out == nil {
		return []T{}
	}
	return out
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return time.Now().UTC().Format(time.RFC3339)
	}
	return t.UTC().Format(time.RFC3339)
}
