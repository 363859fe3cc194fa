package domain

import (
	"errors"
)

const (
	RecipePageSize = 24
)

var (
	MessageSuccessGetRecipes      = "success get recipes"
	MessageSuccessGetRecipeDetail = "success get recipe detail"
	MessageSuccessGetCategories   = "success get categories"

	MessageFailedGetRecipes      = "failed to get recipes"
	MessageFailedGetRecipeDetail = "failed to get recipe detail"

	ErrRecipeNotFound = errors.New("recipe not found")
)

type (
	CategoryRef struct {
		ID   string `json:"id"`
		Slug string `json:"slug"`
	}

	Category struct {
		ID           string  `json:"id"`
		Slug         string  `json:"slug"`
		Icon         *string `json:"icon"`
		DisplayOrder int     `json:"display_order"`
	}

	// RecipeListItem is the lightweight recipe shape used by every listing.
	// Collections are never null and counters default to zero.
	RecipeListItem struct {
		ID               string       `json:"id"`
		Slug             *string      `json:"slug"`
		Title            string       `json:"title"`
		Description      *string      `json:"description"`
		ImageURL         *string      `json:"image_url"`
		Difficulty       *string      `json:"difficulty"`
		Tags             []string     `json:"tags"`
		Category         *CategoryRef `json:"category"`
		Categories       []string     `json:"categories"`
		PrepTimeMinutes  *int         `json:"prep_time_minutes"`
		CookTimeMinutes  *int         `json:"cook_time_minutes"`
		TotalTimeMinutes *int         `json:"total_time_minutes"`
		AverageRating    *float64     `json:"average_rating"`
		RatingCount      int          `json:"rating_count"`
		TotalTimesCooked int          `json:"total_times_cooked"`
	}

	Ingredient struct {
		Name     string   `json:"name"`
		Quantity *float64 `json:"quantity,omitempty"`
		Unit     *string  `json:"unit,omitempty"`
		Notes    *string  `json:"notes,omitempty"`
		Group    *string  `json:"group,omitempty"`
	}

	Instruction struct {
		StepNumber   int     `json:"step_number"`
		Title        string  `json:"title"`
		Description  string  `json:"description"`
		TimerMinutes *int    `json:"timer_minutes,omitempty"`
		Group        *string `json:"group,omitempty"`
	}

	RecipeDetail struct {
		RecipeListItem
		Ingredients  []Ingredient  `json:"ingredients"`
		Instructions []Instruction `json:"instructions"`
		Servings     *int          `json:"servings"`
		SourceType   string        `json:"source_type"`
		SourceURL    *string       `json:"source_url"`
		Language     *string       `json:"language"`
		CreatedAt    string        `json:"created_at"`
		UpdatedAt    string        `json:"updated_at"`
	}

	RecipeListRequest struct {
		Category string `query:"category" validate:"omitempty,max=64"`
		Tag      string `query:"tag" validate:"omitempty,max=64"`
		Page     int    `query:"page"`
	}

	RecipeListResponse struct {
		Recipes    []RecipeListItem `json:"recipes"`
		Pagination Pagination       `json:"pagination"`
		Filtering  bool             `json:"filtering"`
		// Discovery is only filled for the unfiltered grid.
		Discovery *DiscoverySections `json:"discovery,omitempty"`
	}

	RecipeDetailResponse struct {
		Recipe RecipeDetail   `json:"recipe"`
		SEO    SEO            `json:"seo"`
		JSONLD map[string]any `json:"json_ld"`
	}
)
