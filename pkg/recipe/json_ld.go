package recipe

import (
	"cuisto-web/domain"
	"cuisto-web/internal/utils"
	"fmt"
	"strings"
)

// BuildRecipeJSONLD returns schema.org Recipe structured data. Keys whose
// value is unknown are left out entirely.
func BuildRecipeJSONLD(detail domain.RecipeDetail, siteURL, locale string) map[string]any {
	description := fmt.Sprintf("A delicious %s recipe", detail.Title)
	if detail.Description != nil {
		description = *detail.Description
	}

	ld := map[string]any{
		"@context":    "https://schema.org",
		"@type":       "Recipe",
		"name":        detail.Title,
		"description": description,
		"author": map[string]any{
			"@type": "Organization",
			"name":  "Cuisto",
			"url":   siteURL,
		},
		"datePublished": detail.CreatedAt,
		"dateModified":  detail.UpdatedAt,
		"url":           utils.LocalizedURL(siteURL, locale, "/recipes/"+recipePathKey(detail.RecipeListItem)),
		"inLanguage":    locale,
	}

	if detail.ImageURL != nil {
		ld["image"] = []string{*detail.ImageURL}
	}
	setDuration(ld, "prepTime", detail.PrepTimeMinutes)
	setDuration(ld, "cookTime", detail.CookTimeMinutes)
	setDuration(ld, "totalTime", detail.TotalTimeMinutes)
	if detail.Servings != nil && *detail.Servings > 0 {
		ld["recipeYield"] = fmt.Sprintf("%d servings", *detail.Servings)
	}

	if ingredients := ingredientLines(detail.Ingredients); len(ingredients) > 0 {
		ld["recipeIngredient"] = ingredients
	}
	if len(detail.Instructions) > 0 {
		steps := make([]map[string]any, 0, len(detail.Instructions))
		for _, inst := range detail.Instructions {
			step := map[string]any{
				"@type": "HowToStep",
				"name":  inst.Title,
				"text":  inst.Description,
			}
			setDuration(step, "timeRequired", inst.TimerMinutes)
			steps = append(steps, step)
		}
		ld["recipeInstructions"] = steps
	}

	if detail.Category != nil {
		ld["recipeCategory"] = detail.Category.Slug
	}
	if len(detail.Tags) > 0 {
		ld["keywords"] = strings.Join(detail.Tags, ", ")
	}

	if detail.AverageRating != nil && detail.RatingCount > 0 {
		ld["aggregateRating"] = map[string]any{
			"@type":       "AggregateRating",
			"ratingValue": fmt.Sprintf("%.1f", *detail.AverageRating),
			"ratingCount": detail.RatingCount,
			"bestRating":  "5",
			"worstRating": "1",
		}
	}
	if detail.TotalTimesCooked > 0 {
		ld["interactionStatistic"] = map[string]any{
			"@type":                "InteractionCounter",
			"interactionType":      "https://schema.org/CookAction",
			"userInteractionCount": detail.TotalTimesCooked,
		}
	}

	return ld
}

func setDuration(target map[string]any, key string, minutes *int) {
	if d := utils.ISODuration(minutes); d != nil {
		target[key] = *d
	}
}

func ingredientLines(ingredients []domain.Ingredient) []string {
	lines := make([]string, 0, len(ingredients))
	for _, ing := range ingredients {
		var b strings.Builder
		if ing.Quantity != nil && *ing.Quantity != 0 {
			fmt.Fprintf(&b, "%g ", *ing.Quantity)
		}
		if ing.Unit != nil && *ing.Unit != "" {
			b.WriteString(*ing.Unit + " ")
		}
		b.WriteString(ing.Name)
		if ing.Notes != nil && *ing.Notes != "" {
			fmt.Fprintf(&b, " (%s)", *ing.Notes)
		}
		lines = append(lines, strings.TrimSpace(b.String()))
	}
	return lines
}

func recipePathKey(item domain.RecipeListItem) string {
	if item.Slug != nil {
		return *item.Slug
	}
	return item.ID
}
