package recipe

import (
	"context"
	"cuisto-web/domain"
	"cuisto-web/entities"
	"cuisto-web/internal/utils/storage"
)

// NormalizeRecipe maps a recipe row and its already resolved category onto
// the listing shape. Empty optional values become nil, collections become
// empty slices and counters never go below zero. A nil category is a
// resolution miss and is kept as a null category.
func NormalizeRecipe(row *entities.Recipe, category *domain.CategoryRef) domain.RecipeListItem {
	return domain.RecipeListItem{
		ID:               row.ID.String(),
		Slug:             optionalString(row.Slug),
		Title:            row.Title,
		Description:      optionalString(row.Description),
		ImageURL:         optionalString(row.ImageURL),
		Difficulty:       optionalDifficulty(row.Difficulty),
		Tags:             stringsOrEmpty(row.Tags),
		Category:         category,
		Categories:       stringsOrEmpty(row.Categories),
		PrepTimeMinutes:  optionalPositive(row.PrepTimeMinutes),
		CookTimeMinutes:  optionalPositive(row.CookTimeMinutes),
		TotalTimeMinutes: optionalPositive(row.TotalTimeMinutes),
		AverageRating:    optionalRating(row.AverageRating),
		RatingCount:      counter(row.RatingCount),
		TotalTimesCooked: counter(row.TotalTimesCooked),
	}
}

// CategoryRefFromEntity returns nil when the category was not resolved.
func CategoryRefFromEntity(c *entities.Category) *domain.CategoryRef {
	if c == nil {
		return nil
	}
	return &domain.CategoryRef{ID: c.ID.String(), Slug: c.Slug}
}

func CategoryFromEntity(c *entities.Category) domain.Category {
	var icon *string
	if c.Icon != nil && *c.Icon != "" {
		v := *c.Icon
		icon = &v
	}
	return domain.Category{
		ID:           c.ID.String(),
		Slug:         c.Slug,
		Icon:         icon,
		DisplayOrder: c.DisplayOrder,
	}
}

// ResolveImage rewrites a stored image key into a loadable URL in place.
func ResolveImage(ctx context.Context, s3 storage.AwsS3, item *domain.RecipeListItem) {
	if s3 == nil || item.ImageURL == nil {
		return
	}
	resolved := s3.ResolveImageURL(ctx, *item.ImageURL)
	item.ImageURL = &resolved
}

func optionalString(v *string) *string {
	if v == nil || *v == "" {
		return nil
	}
	s := *v
	return &s
}

func optionalDifficulty(v *string) *string {
	if v == nil {
		return nil
	}
	switch *v {
	case entities.DifficultyEasy, entities.DifficultyMedium, entities.DifficultyHard:
		s := *v
		return &s
	}
	return nil
}

func optionalPositive(v *int) *int {
	if v == nil || *v <= 0 {
		return nil
	}
	n := *v
	return &n
}

func optionalRating(v *float64) *float64 {
	if v == nil || *v <= 0 {
		return nil
	}
	f := *v
	return &f
}

func stringsOrEmpty(v []string) []string {
	out := make([]string, 0, len(v))
	return append(out, v...)
}

func counter(v *int) int {
	if v == nil || *v < 0 {
		return 0
	}
	return *v
}
