package recipe

import (
	"cuisto-web/domain"
	"testing"
)

func TestBuildRecipeJSONLDOmitsUnknownValues(t *testing.T) {
	detail := domain.RecipeDetail{
		RecipeListItem: domain.RecipeListItem{ID: "r1", Title: "Soupe", Tags: []string{}},
		Ingredients:    []domain.Ingredient{},
		Instructions:   []domain.Instruction{},
	}
	ld := BuildRecipeJSONLD(detail, "https://cuisto.app", "en")

	for _, key := range []string{"image", "prepTime", "recipeYield", "recipeIngredient", "recipeInstructions", "aggregateRating", "interactionStatistic", "keywords"} {
		if _, ok := ld[key]; ok {
			t.Errorf("expected %q to be omitted", key)
		}
	}
	if ld["description"] != "A delicious Soupe recipe" {
		t.Errorf("unexpected default description %v", ld["description"])
	}
	if ld["url"] != "https://cuisto.app/en/recipes/r1" {
		t.Errorf("unexpected url %v", ld["url"])
	}
}

func TestBuildRecipeJSONLDFull(t *testing.T) {
	qty := 2.5
	unit := "cups"
	notes := "sifted"
	slug := "crepes"
	rating := 4.25
	detail := domain.RecipeDetail{
		RecipeListItem: domain.RecipeListItem{
			ID: "r2", Slug: &slug, Title: "Crêpes", Tags: []string{"breakfast", "french"},
			Category:      &domain.CategoryRef{ID: "c1", Slug: "breakfast"},
			AverageRating: &rating, RatingCount: 0, TotalTimesCooked: 7,
		},
		Ingredients: []domain.Ingredient{{Name: "flour", Quantity: &qty, Unit: &unit, Notes: &notes}},
	}
	ld := BuildRecipeJSONLD(detail, "https://cuisto.app", "fr")

	lines, _ := ld["recipeIngredient"].([]string)
	if len(lines) != 1 || lines[0] != "2.5 cups flour (sifted)" {
		t.Errorf("unexpected ingredient lines %v", lines)
	}
	if ld["keywords"] != "breakfast, french" {
		t.Errorf("unexpected keywords %v", ld["keywords"])
	}
	if ld["recipeCategory"] != "breakfast" {
		t.Errorf("unexpected category %v", ld["recipeCategory"])
	}
	if _, ok := ld["aggregateRating"]; ok {
		t.Error("expected no aggregate rating without rating count")
	}
	stat, ok := ld["interactionStatistic"].(map[string]any)
	if !ok || stat["userInteractionCount"] != 7 {
		t.Errorf("unexpected interaction statistic %v", ld["interactionStatistic"])
	}
}
