package discovery

import (
	"context"
	"cuisto-web/domain"
	"cuisto-web/entities"
	"cuisto-web/internal/metrics"
	"cuisto-web/internal/utils/storage"
	"cuisto-web/pkg/recipe"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
	"sort"
	"time"
)

const (
	DefaultQueryTimeout = 5 * time.Second

	queryTrending   = "trending_this_week"
	querySocials    = "trending_on_socials"
	queryOnline     = "popular_online"
	queryRated      = "highest_rated"
	queryCategories = "categories"
	queryPopular    = "popular_recipes"
)

var (
	SocialSourceTypes  = []string{entities.SourceTypeVideo}
	WebsiteSourceTypes = []string{entities.SourceTypeURL, entities.SourceTypeLink}
)

type (
	// DiscoveryService answers the read-only discovery queries of the
	// recipes page. None of its methods fail: a store error or timeout
	// yields an empty list so the caller simply hides the section.
	DiscoveryService interface {
		TrendingThisWeek(ctx context.Context, limit, windowDays int) []domain.TrendingRecipe
		TrendingOnSocials(ctx context.Context, limit int) []domain.ExtractedRecipe
		PopularOnline(ctx context.Context, limit int) []domain.ExtractedRecipe
		HighestRated(ctx context.Context, limit, minRatingCount int) []domain.RecipeListItem
		GetCategories(ctx context.Context) []domain.Category
		GetPopularRecipes(ctx context.Context, categoryID *uuid.UUID, limit, offset int) []domain.RecipeListItem
		GetDiscoverySections(ctx context.Context) domain.DiscoverySections
	}

	discoveryService struct {
		discoveryRepository DiscoveryRepository
		s3                  storage.AwsS3
		logger              zerolog.Logger
		queryTimeout        time.Duration
	}
)

func NewDiscoveryService(discoveryRepository DiscoveryRepository, s3 storage.AwsS3, logger zerolog.Logger, queryTimeout time.Duration) DiscoveryService {
	if queryTimeout <= 0 {
		queryTimeout = DefaultQueryTimeout
	}
	return &discoveryService{
		discoveryRepository: discoveryRepository,
		s3:                  s3,
		logger:              logger.With().Str("component", "discovery").Logger(),
		queryTimeout:        queryTimeout,
	}
}

func (s *discoveryService) TrendingThisWeek(ctx context.Context, limit, windowDays int) []domain.TrendingRecipe {
	limit = orDefault(limit, domain.SectionPreviewLimit)
	windowDays = orDefault(windowDays, domain.DefaultTrendingWindowDays)
	result := []domain.TrendingRecipe{}

	ctx, cancel := context.WithTimeout(ctx, s.queryTimeout)
	defer cancel()
	start := time.Now()

	stats, err := s.discoveryRepository.GetTrendingRecipeStats(ctx, windowDays, limit, 0)
	if err != nil {
		s.fail(queryTrending, start, err)
		return result
	}

	ids := make([]uuid.UUID, 0, len(stats))
	for _, st := range stats {
		if st.CookCount > 0 {
			ids = append(ids, st.RecipeID)
		}
	}
	if len(ids) == 0 {
		s.done(queryTrending, start, 0)
		return result
	}

	rows, err := s.discoveryRepository.GetRecipesByIDs(ctx, ids)
	if err != nil {
		s.fail(queryTrending, start, err)
		return result
	}
	byID := make(map[uuid.UUID]*entities.Recipe, len(rows))
	for _, row := range rows {
		if listable(row) {
			byID[row.ID] = row
		}
	}

	for _, st := range stats {
		row, ok := byID[st.RecipeID]
		if !ok || st.CookCount <= 0 {
			continue
		}
		result = append(result, domain.TrendingRecipe{
			RecipeListItem: s.normalize(ctx, row),
			CookingStats: domain.CookingStats{
				CookCount:      int(st.CookCount),
				UniqueUsers:    int(st.UniqueUsers),
				TimeWindowDays: windowDays,
			},
		})
	}

	// equal cook counts are ordered by recipe id
	sort.SliceStable(result, func(i, j int) bool {
		a, b := result[i], result[j]
		if a.CookingStats.CookCount != b.CookingStats.CookCount {
			return a.CookingStats.CookCount > b.CookingStats.CookCount
		}
		return a.ID < b.ID
	})
	if len(result) > limit {
		result = result[:limit]
	}

	s.done(queryTrending, start, len(result))
	return result
}

func (s *discoveryService) TrendingOnSocials(ctx context.Context, limit int) []domain.ExtractedRecipe {
	return s.mostExtracted(ctx, querySocials, SocialSourceTypes, limit)
}

func (s *discoveryService) PopularOnline(ctx context.Context, limit int) []domain.ExtractedRecipe {
	return s.mostExtracted(ctx, queryOnline, WebsiteSourceTypes, limit)
}

func (s *discoveryService) mostExtracted(ctx context.Context, query string, sourceTypes []string, limit int) []domain.ExtractedRecipe {
	limit = orDefault(limit, domain.SectionPreviewLimit)
	result := []domain.ExtractedRecipe{}

	ctx, cancel := context.WithTimeout(ctx, s.queryTimeout)
	defer cancel()
	start := time.Now()

	jobs, err := s.discoveryRepository.GetCompletedExtractions(ctx, sourceTypes)
	if err != nil {
		s.fail(query, start, err)
		return result
	}

	for _, group := range groupExtractions(jobs, sourceTypes, limit) {
		result = append(result, domain.ExtractedRecipe{
			RecipeListItem:  s.normalize(ctx, group.recipe),
			ExtractionStats: group.stats(),
		})
	}

	s.done(query, start, len(result))
	return result
}

func (s *discoveryService) HighestRated(ctx context.Context, limit, minRatingCount int) []domain.RecipeListItem {
	limit = orDefault(limit, domain.SectionPreviewLimit)
	minRatingCount = orDefault(minRatingCount, domain.DefaultMinRatingCount)
	result := []domain.RecipeListItem{}

	ctx, cancel := context.WithTimeout(ctx, s.queryTimeout)
	defer cancel()
	start := time.Now()

	rows, err := s.discoveryRepository.GetHighestRated(ctx, minRatingCount, limit)
	if err != nil {
		s.fail(queryRated, start, err)
		return result
	}

	for _, row := range rows {
		if !listable(row) || row.AverageRating == nil || row.RatingCount == nil || *row.RatingCount < minRatingCount {
			continue
		}
		result = append(result, s.normalize(ctx, row))
	}
	if len(result) > limit {
		result = result[:limit]
	}

	s.done(queryRated, start, len(result))
	return result
}

func (s *discoveryService) GetCategories(ctx context.Context) []domain.Category {
	result := []domain.Category{}

	ctx, cancel := context.WithTimeout(ctx, s.queryTimeout)
	defer cancel()
	start := time.Now()

	rows, err := s.discoveryRepository.GetCategories(ctx)
	if err != nil {
		s.fail(queryCategories, start, err)
		return result
	}
	for _, row := range rows {
		result = append(result, recipe.CategoryFromEntity(row))
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].DisplayOrder < result[j].DisplayOrder
	})

	s.done(queryCategories, start, len(result))
	return result
}

// GetPopularRecipes lists recipes by popularity, optionally within one
// category. Categories are resolved in a single lookup; a recipe whose
// category cannot be found is still listed, with a null category.
func (s *discoveryService) GetPopularRecipes(ctx context.Context, categoryID *uuid.UUID, limit, offset int) []domain.RecipeListItem {
	limit = orDefault(limit, domain.DefaultPopularLimit)
	if offset < 0 {
		offset = 0
	}
	result := []domain.RecipeListItem{}

	ctx, cancel := context.WithTimeout(ctx, s.queryTimeout)
	defer cancel()
	start := time.Now()

	rows, err := s.discoveryRepository.GetPopularRecipes(ctx, categoryID, limit, offset)
	if err != nil {
		s.fail(queryPopular, start, err)
		return result
	}

	seen := make(map[uuid.UUID]struct{})
	ids := make([]uuid.UUID, 0)
	for _, row := range rows {
		if row.CategoryID == nil {
			continue
		}
		if _, ok := seen[*row.CategoryID]; !ok {
			seen[*row.CategoryID] = struct{}{}
			ids = append(ids, *row.CategoryID)
		}
	}

	categories := make(map[uuid.UUID]*domain.CategoryRef, len(ids))
	if len(ids) > 0 {
		found, err := s.discoveryRepository.GetCategoriesByIDs(ctx, ids)
		if err != nil {
			s.logger.Warn().Err(err).Str("query", queryPopular).Msg("category lookup failed, listing recipes without categories")
		}
		for _, c := range found {
			categories[c.ID] = recipe.CategoryRefFromEntity(c)
		}
	}

	for _, row := range rows {
		var category *domain.CategoryRef
		if row.CategoryID != nil {
			category = categories[*row.CategoryID]
		}
		item := recipe.NormalizeRecipe(row, category)
		recipe.ResolveImage(ctx, s.s3, &item)
		result = append(result, item)
	}

	s.done(queryPopular, start, len(result))
	return result
}

// GetDiscoverySections runs the four discovery queries concurrently and
// composes the sections worth showing.
func (s *discoveryService) GetDiscoverySections(ctx context.Context) domain.DiscoverySections {
	var results domain.DiscoveryResults
	var g errgroup.Group

	g.Go(func() error {
		results.Trending = s.TrendingThisWeek(ctx, domain.SectionPreviewLimit, domain.DefaultTrendingWindowDays)
		return nil
	})
	g.Go(func() error {
		results.Socials = s.TrendingOnSocials(ctx, domain.SectionPreviewLimit)
		return nil
	})
	g.Go(func() error {
		results.Online = s.PopularOnline(ctx, domain.SectionPreviewLimit)
		return nil
	})
	g.Go(func() error {
		results.Rated = s.HighestRated(ctx, domain.SectionPreviewLimit, domain.DefaultMinRatingCount)
		return nil
	})
	_ = g.Wait()

	sections := Compose(results, domain.MinSectionRecipes)
	for _, hidden := range HiddenSections(sections) {
		metrics.DiscoverySectionsHidden.WithLabelValues(string(hidden)).Inc()
	}
	return sections
}

func (s *discoveryService) normalize(ctx context.Context, row *entities.Recipe) domain.RecipeListItem {
	item := recipe.NormalizeRecipe(row, recipe.CategoryRefFromEntity(row.Category))
	recipe.ResolveImage(ctx, s.s3, &item)
	return item
}

func (s *discoveryService) fail(query string, start time.Time, err error) {
	metrics.ObserveDiscoveryQuery(query, start, true)
	s.logger.Warn().
		Err(err).
		Str("query", query).
		Dur("elapsed", time.Since(start)).
		Msg("discovery query failed, returning empty list")
}

func (s *discoveryService) done(query string, start time.Time, count int) {
	metrics.ObserveDiscoveryQuery(query, start, false)
	s.logger.Debug().
		Str("query", query).
		Int("count", count).
		Dur("elapsed", time.Since(start)).
		Msg("discovery query finished")
}

// listable reports whether a recipe may appear in a public listing.
func listable(row *entities.Recipe) bool {
	return row != nil && row.IsPublic != nil && *row.IsPublic && !row.IsDraft
}

func orDefault(v, fallback int) int {
	if v <= 0 {
		return fallback
	}
	return v
}
