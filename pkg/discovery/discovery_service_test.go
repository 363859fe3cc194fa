package discovery

import (
	"context"
	"cuisto-web/domain"
	"cuisto-web/entities"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

type fakeDiscoveryRepository struct {
	trending    []TrendingRow
	recipes     []*entities.Recipe
	extractions []*entities.ExtractionJob
	rated       []*entities.Recipe
	popular     []*entities.Recipe
	categories  []*entities.Category

	err         error
	categoryErr error
	block       bool
}

func (f *fakeDiscoveryRepository) wait(ctx context.Context) error {
	if f.block {
		<-ctx.Done()
		return ctx.Err()
	}
	return f.err
}

func (f *fakeDiscoveryRepository) GetTrendingRecipeStats(ctx context.Context, _, limit, _ int) ([]TrendingRow, error) {
	if err := f.wait(ctx); err != nil {
		return nil, err
	}
	if len(f.trending) > limit {
		return f.trending[:limit], nil
	}
	return f.trending, nil
}

func (f *fakeDiscoveryRepository) GetRecipesByIDs(ctx context.Context, ids []uuid.UUID) ([]*entities.Recipe, error) {
	if err := f.wait(ctx); err != nil {
		return nil, err
	}
	wanted := make(map[uuid.UUID]bool, len(ids))
	for _, id := range ids {
		wanted[id] = true
	}
	var out []*entities.Recipe
	for _, r := range f.recipes {
		if wanted[r.ID] {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeDiscoveryRepository) GetCompletedExtractions(ctx context.Context, _ []string) ([]*entities.ExtractionJob, error) {
	if err := f.wait(ctx); err != nil {
		return nil, err
	}
	return f.extractions, nil
}

func (f *fakeDiscoveryRepository) GetHighestRated(ctx context.Context, _, _ int) ([]*entities.Recipe, error) {
	if err := f.wait(ctx); err != nil {
		return nil, err
	}
	return f.rated, nil
}

func (f *fakeDiscoveryRepository) GetPopularRecipes(ctx context.Context, _ *uuid.UUID, _, _ int) ([]*entities.Recipe, error) {
	if err := f.wait(ctx); err != nil {
		return nil, err
	}
	return f.popular, nil
}

func (f *fakeDiscoveryRepository) GetCategories(ctx context.Context) ([]*entities.Category, error) {
	if err := f.wait(ctx); err != nil {
		return nil, err
	}
	return f.categories, nil
}

func (f *fakeDiscoveryRepository) GetCategoriesByIDs(_ context.Context, ids []uuid.UUID) ([]*entities.Category, error) {
	if f.categoryErr != nil {
		return nil, f.categoryErr
	}
	wanted := make(map[uuid.UUID]bool, len(ids))
	for _, id := range ids {
		wanted[id] = true
	}
	var out []*entities.Category
	for _, c := range f.categories {
		if wanted[c.ID] {
			out = append(out, c)
		}
	}
	return out, nil
}

func seqID(n int) uuid.UUID {
	return uuid.MustParse(fmt.Sprintf("00000000-0000-0000-0000-%012d", n))
}

func publicRecipe(n int) *entities.Recipe {
	public := true
	return &entities.Recipe{ID: seqID(n), Title: fmt.Sprintf("Recipe %d", n), IsPublic: &public}
}

func newTestService(repo DiscoveryRepository) DiscoveryService {
	return NewDiscoveryService(repo, nil, zerolog.Nop(), time.Second)
}

func extraction(recipe *entities.Recipe, sourceType string, user *uuid.UUID) *entities.ExtractionJob {
	id := recipe.ID
	return &entities.ExtractionJob{
		ID:         uuid.New(),
		UserID:     user,
		RecipeID:   &id,
		SourceType: sourceType,
		Status:     entities.ExtractionStatusCompleted,
		Recipe:     recipe,
	}
}

func TestTrendingThisWeekOrdersByCookCountThenID(t *testing.T) {
	repo := &fakeDiscoveryRepository{
		trending: []TrendingRow{
			{RecipeID: seqID(1), CookCount: 10, UniqueUsers: 6},
			{RecipeID: seqID(3), CookCount: 8, UniqueUsers: 2},
			{RecipeID: seqID(2), CookCount: 8, UniqueUsers: 5},
			{RecipeID: seqID(4), CookCount: 3, UniqueUsers: 3},
			{RecipeID: seqID(5), CookCount: 1, UniqueUsers: 1},
		},
		recipes: []*entities.Recipe{publicRecipe(5), publicRecipe(4), publicRecipe(3), publicRecipe(2), publicRecipe(1)},
	}

	got := newTestService(repo).TrendingThisWeek(context.Background(), 5, 7)

	if len(got) != 5 {
		t.Fatalf("got %d recipes, want 5", len(got))
	}
	wantIDs := []uuid.UUID{seqID(1), seqID(2), seqID(3), seqID(4), seqID(5)}
	wantCounts := []int{10, 8, 8, 3, 1}
	for i := range got {
		if got[i].ID != wantIDs[i].String() {
			t.Errorf("position %d: id = %s, want %s", i, got[i].ID, wantIDs[i])
		}
		if got[i].CookingStats.CookCount != wantCounts[i] {
			t.Errorf("position %d: cook_count = %d, want %d", i, got[i].CookingStats.CookCount, wantCounts[i])
		}
		if got[i].CookingStats.TimeWindowDays != 7 {
			t.Errorf("position %d: time_window_days = %d, want 7", i, got[i].CookingStats.TimeWindowDays)
		}
	}
}

func TestTrendingThisWeekSkipsHiddenAndZeroCounts(t *testing.T) {
	draft := publicRecipe(2)
	draft.IsDraft = true
	repo := &fakeDiscoveryRepository{
		trending: []TrendingRow{
			{RecipeID: seqID(1), CookCount: 4, UniqueUsers: 1},
			{RecipeID: seqID(2), CookCount: 3, UniqueUsers: 1},
			{RecipeID: seqID(9), CookCount: 2, UniqueUsers: 1},
			{RecipeID: seqID(3), CookCount: 0},
		},
		recipes: []*entities.Recipe{publicRecipe(1), draft, publicRecipe(3)},
	}

	got := newTestService(repo).TrendingThisWeek(context.Background(), 5, 7)

	if len(got) != 1 || got[0].ID != seqID(1).String() {
		t.Fatalf("got %+v, want only recipe 1", got)
	}
}

func TestTrendingOnSocialsGroupsByRecipe(t *testing.T) {
	a, b := publicRecipe(1), publicRecipe(2)
	u1, u2 := seqID(100), seqID(101)
	repo := &fakeDiscoveryRepository{
		extractions: []*entities.ExtractionJob{
			extraction(a, entities.SourceTypeVideo, &u1),
			extraction(a, entities.SourceTypeVideo, &u1),
			extraction(a, entities.SourceTypeVideo, &u2),
			extraction(b, entities.SourceTypeVideo, nil),
			extraction(b, entities.SourceTypeVideo, nil),
			extraction(b, entities.SourceTypeURL, &u1),
		},
	}

	got := newTestService(repo).TrendingOnSocials(context.Background(), 5)

	if len(got) != 2 {
		t.Fatalf("got %d recipes, want 2", len(got))
	}
	if got[0].ID != a.ID.String() || got[0].ExtractionStats.ExtractionCount != 3 || got[0].ExtractionStats.UniqueExtractors != 2 {
		t.Errorf("first = %s %+v, want recipe 1 with 3 extractions by 2 users", got[0].ID, got[0].ExtractionStats)
	}
	if got[1].ExtractionStats.ExtractionCount != 2 || got[1].ExtractionStats.UniqueExtractors != 2 {
		t.Errorf("second stats = %+v, want count fallback of 2", got[1].ExtractionStats)
	}
}

func TestSocialsAndOnlinePartitionSourceTypes(t *testing.T) {
	video, site, link, photo := publicRecipe(1), publicRecipe(2), publicRecipe(3), publicRecipe(4)
	repo := &fakeDiscoveryRepository{
		extractions: []*entities.ExtractionJob{
			extraction(video, entities.SourceTypeVideo, nil),
			extraction(site, entities.SourceTypeURL, nil),
			extraction(link, entities.SourceTypeLink, nil),
			extraction(photo, entities.SourceTypePhoto, nil),
		},
	}
	svc := newTestService(repo)

	socials := svc.TrendingOnSocials(context.Background(), 5)
	online := svc.PopularOnline(context.Background(), 5)

	if len(socials) != 1 || socials[0].ID != video.ID.String() {
		t.Errorf("socials = %+v, want only the video recipe", socials)
	}
	if len(online) != 2 {
		t.Fatalf("online has %d recipes, want 2", len(online))
	}
	for _, r := range online {
		if r.ID == video.ID.String() || r.ID == photo.ID.String() {
			t.Errorf("online contains %s from a non website source", r.ID)
		}
	}
}

func TestHighestRatedRequiresMinimumRatings(t *testing.T) {
	rating := func(r *entities.Recipe, avg float64, count int) *entities.Recipe {
		r.AverageRating, r.RatingCount = &avg, &count
		return r
	}
	repo := &fakeDiscoveryRepository{
		rated: []*entities.Recipe{
			rating(publicRecipe(1), 4.9, 2),
			rating(publicRecipe(2), 4.8, 10),
			rating(publicRecipe(3), 4.5, 3),
			publicRecipe(4),
		},
	}

	got := newTestService(repo).HighestRated(context.Background(), 5, 3)

	if len(got) != 2 {
		t.Fatalf("got %d recipes, want 2", len(got))
	}
	if got[0].ID != seqID(2).String() || got[1].ID != seqID(3).String() {
		t.Errorf("got %s, %s", got[0].ID, got[1].ID)
	}
}

func hiddenRecipes(start int) (draft, private *entities.Recipe) {
	draft = publicRecipe(start)
	draft.IsDraft = true
	private = publicRecipe(start + 1)
	hidden := false
	private.IsPublic = &hidden
	return draft, private
}

func TestMostExtractedSkipsHiddenRecipesAndUnfinishedJobs(t *testing.T) {
	shown := publicRecipe(1)
	draft, private := hiddenRecipes(2)
	failed := extraction(publicRecipe(4), entities.SourceTypeVideo, nil)
	failed.Status = "failed"
	siteFailed := extraction(publicRecipe(5), entities.SourceTypeURL, nil)
	siteFailed.Status = "failed"
	repo := &fakeDiscoveryRepository{
		extractions: []*entities.ExtractionJob{
			extraction(shown, entities.SourceTypeVideo, nil),
			extraction(draft, entities.SourceTypeVideo, nil),
			extraction(draft, entities.SourceTypeVideo, nil),
			extraction(private, entities.SourceTypeVideo, nil),
			extraction(private, entities.SourceTypeURL, nil),
			failed,
			failed,
			siteFailed,
			nil,
		},
	}
	svc := newTestService(repo)

	socials := svc.TrendingOnSocials(context.Background(), 5)
	if len(socials) != 1 || socials[0].ID != shown.ID.String() {
		t.Errorf("socials = %+v, want only recipe 1", socials)
	}
	if online := svc.PopularOnline(context.Background(), 5); len(online) != 0 {
		t.Errorf("online = %+v, want empty", online)
	}
}

func TestGroupExtractionsCutsToLimit(t *testing.T) {
	var jobs []*entities.ExtractionJob
	for n := 1; n <= 4; n++ {
		r := publicRecipe(n)
		for i := 0; i < n; i++ {
			jobs = append(jobs, extraction(r, entities.SourceTypeVideo, nil))
		}
	}

	got := groupExtractions(jobs, SocialSourceTypes, 2)

	if len(got) != 2 {
		t.Fatalf("got %d groups, want 2", len(got))
	}
	if got[0].recipe.ID != seqID(4) || got[0].count != 4 || got[1].recipe.ID != seqID(3) || got[1].count != 3 {
		t.Errorf("got %s(%d), %s(%d), want recipes 4 and 3", got[0].recipe.ID, got[0].count, got[1].recipe.ID, got[1].count)
	}
	if all := groupExtractions(jobs, SocialSourceTypes, 0); len(all) != 4 {
		t.Errorf("zero limit kept %d groups, want 4", len(all))
	}
}

func TestHighestRatedSkipsHiddenRecipes(t *testing.T) {
	avg, count := 5.0, 12
	rated := func(r *entities.Recipe) *entities.Recipe {
		r.AverageRating, r.RatingCount = &avg, &count
		return r
	}
	draft, private := hiddenRecipes(1)
	repo := &fakeDiscoveryRepository{
		rated: []*entities.Recipe{rated(draft), rated(private), rated(publicRecipe(3)), nil},
	}

	got := newTestService(repo).HighestRated(context.Background(), 5, 3)

	if len(got) != 1 || got[0].ID != seqID(3).String() {
		t.Errorf("got %+v, want only recipe 3", got)
	}
}

func TestQueriesReturnEmptyOnError(t *testing.T) {
	svc := newTestService(&fakeDiscoveryRepository{err: errors.New("connection refused")})
	ctx := context.Background()

	if got := svc.TrendingThisWeek(ctx, 5, 7); got == nil || len(got) != 0 {
		t.Errorf("trending = %#v, want empty non-nil", got)
	}
	if got := svc.TrendingOnSocials(ctx, 5); got == nil || len(got) != 0 {
		t.Errorf("socials = %#v, want empty non-nil", got)
	}
	if got := svc.PopularOnline(ctx, 5); got == nil || len(got) != 0 {
		t.Errorf("online = %#v, want empty non-nil", got)
	}
	if got := svc.HighestRated(ctx, 5, 3); got == nil || len(got) != 0 {
		t.Errorf("rated = %#v, want empty non-nil", got)
	}
	if got := svc.GetCategories(ctx); got == nil || len(got) != 0 {
		t.Errorf("categories = %#v, want empty non-nil", got)
	}
	if got := svc.GetPopularRecipes(ctx, nil, 20, 0); got == nil || len(got) != 0 {
		t.Errorf("popular = %#v, want empty non-nil", got)
	}
}

func TestQueryTimeoutYieldsEmptyList(t *testing.T) {
	svc := NewDiscoveryService(&fakeDiscoveryRepository{block: true}, nil, zerolog.Nop(), 20*time.Millisecond)

	start := time.Now()
	got := svc.GetDiscoverySections(context.Background())

	if got.HasContent || len(got.Sections) != 0 {
		t.Errorf("got %+v, want no sections", got)
	}
	if elapsed := time.Since(start); elapsed > time.Second {
		t.Errorf("sections took %s, queries should run concurrently under their timeout", elapsed)
	}
}

func TestGetPopularRecipesKeepsUnresolvedCategoryNull(t *testing.T) {
	soups := &entities.Category{ID: seqID(50), Slug: "soups"}
	deleted := seqID(51)
	withSoups, withDeleted := publicRecipe(1), publicRecipe(2)
	withSoups.CategoryID = &soups.ID
	withDeleted.CategoryID = &deleted

	repo := &fakeDiscoveryRepository{
		popular:    []*entities.Recipe{withSoups, withDeleted, publicRecipe(3)},
		categories: []*entities.Category{soups},
	}

	got := newTestService(repo).GetPopularRecipes(context.Background(), nil, 20, 0)

	if len(got) != 3 {
		t.Fatalf("got %d recipes, want 3", len(got))
	}
	if got[0].Category == nil || got[0].Category.Slug != "soups" {
		t.Errorf("first category = %+v, want soups", got[0].Category)
	}
	if got[1].Category != nil {
		t.Errorf("deleted category resolved to %+v, want nil", got[1].Category)
	}
	if got[2].Category != nil {
		t.Errorf("uncategorized recipe has category %+v", got[2].Category)
	}
}

func TestGetPopularRecipesSurvivesCategoryLookupFailure(t *testing.T) {
	r := publicRecipe(1)
	cat := seqID(50)
	r.CategoryID = &cat
	repo := &fakeDiscoveryRepository{popular: []*entities.Recipe{r}, categoryErr: errors.New("boom")}

	got := newTestService(repo).GetPopularRecipes(context.Background(), nil, 20, 0)

	if len(got) != 1 || got[0].Category != nil {
		t.Errorf("got %+v, want one recipe with null category", got)
	}
}

func TestGetCategoriesOrdersByDisplayOrder(t *testing.T) {
	repo := &fakeDiscoveryRepository{
		categories: []*entities.Category{
			{ID: seqID(1), Slug: "desserts", DisplayOrder: 3},
			{ID: seqID(2), Slug: "starters", DisplayOrder: 1},
		},
	}

	got := newTestService(repo).GetCategories(context.Background())

	if len(got) != 2 || got[0].Slug != "starters" || got[1].Slug != "desserts" {
		t.Errorf("got %+v", got)
	}
}

func TestGetDiscoverySectionsComposesAvailableSections(t *testing.T) {
	var recipes []*entities.Recipe
	var trending []TrendingRow
	for i := 1; i <= 5; i++ {
		recipes = append(recipes, publicRecipe(i))
		trending = append(trending, TrendingRow{RecipeID: seqID(i), CookCount: int64(10 - i), UniqueUsers: 1})
	}
	social1, social2 := publicRecipe(20), publicRecipe(21)
	repo := &fakeDiscoveryRepository{
		trending: trending,
		recipes:  recipes,
		extractions: []*entities.ExtractionJob{
			extraction(social1, entities.SourceTypeVideo, nil),
			extraction(social2, entities.SourceTypeVideo, nil),
		},
	}
	svc := newTestService(repo)

	first := svc.GetDiscoverySections(context.Background())
	second := svc.GetDiscoverySections(context.Background())

	if !first.HasContent || len(first.Sections) != 1 {
		t.Fatalf("got %+v, want only the trending section", first)
	}
	if first.Sections[0].Type != domain.SectionTrending || first.Sections[0].Count != 5 {
		t.Errorf("section = %s with %d recipes", first.Sections[0].Type, first.Sections[0].Count)
	}
	if len(second.Sections) != len(first.Sections) || second.Sections[0].Count != first.Sections[0].Count {
		t.Errorf("repeated composition differs: %+v vs %+v", first, second)
	}
}
