package domain

var (
	MessageSuccessGetDiscovery      = "success get discovery sections"
	MessageSuccessGetPopularRecipes = "success get popular recipes"
	MessageSuccessGetHome           = "success get home"
)

const (
	// MinSectionRecipes is the smallest section worth rendering.
	MinSectionRecipes = 3
	// SectionPreviewLimit is the number of recipes fetched per section.
	SectionPreviewLimit = 5

	DefaultTrendingWindowDays = 7
	DefaultMinRatingCount     = 3
	DefaultPopularLimit       = 20
)

type SectionType string

const (
	SectionTrending SectionType = "trending"
	SectionSocials  SectionType = "socials"
	SectionOnline   SectionType = "online"
	SectionRated    SectionType = "rated"
)

type (
	CookingStats struct {
		CookCount      int `json:"cook_count"`
		UniqueUsers    int `json:"unique_users"`
		TimeWindowDays int `json:"time_window_days"`
	}

	ExtractionStats struct {
		ExtractionCount  int `json:"extraction_count"`
		UniqueExtractors int `json:"unique_extractors"`
	}

	TrendingRecipe struct {
		RecipeListItem
		CookingStats CookingStats `json:"cooking_stats"`
	}

	ExtractedRecipe struct {
		RecipeListItem
		ExtractionStats ExtractionStats `json:"extraction_stats"`
	}

	// DiscoveryResults holds the raw output of the four discovery queries.
	DiscoveryResults struct {
		Trending []TrendingRecipe
		Socials  []ExtractedRecipe
		Online   []ExtractedRecipe
		Rated    []RecipeListItem
	}

	DiscoverySection struct {
		Type    SectionType `json:"type"`
		Count   int         `json:"count"`
		Recipes any         `json:"recipes"`
	}

	DiscoverySections struct {
		Sections   []DiscoverySection `json:"sections"`
		HasContent bool               `json:"has_content"`
	}

	PopularRecipesRequest struct {
		CategoryID string `query:"category_id" validate:"omitempty,uuid"`
		Limit      int    `query:"limit" validate:"omitempty,min=1,max=100"`
		Offset     int    `query:"offset" validate:"omitempty,min=0"`
	}

	HomeResponse struct {
		Discovery  DiscoverySections `json:"discovery"`
		Categories []Category        `json:"categories"`
		SEO        SEO               `json:"seo"`
	}
)
