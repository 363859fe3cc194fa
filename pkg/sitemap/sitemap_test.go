package sitemap

import (
	"context"
	"cuisto-web/entities"
	"cuisto-web/pkg/recipe"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

type fakeRecipeRepository struct {
	recipe.RecipeRepository
	recipes []*entities.Recipe
	err     error
}

func (f *fakeRecipeRepository) GetPublishedSlugs(context.Context) ([]*entities.Recipe, error) {
	return f.recipes, f.err
}

type fakeBlogRepository struct {
	posts []*entities.BlogPost
	err   error
}

func (f *fakeBlogRepository) GetPublishedPosts(context.Context) ([]*entities.BlogPost, error) {
	return f.posts, f.err
}

func (f *fakeBlogRepository) GetPublishedPostBySlug(context.Context, string) (*entities.BlogPost, error) {
	return nil, errors.New("not used")
}

func (f *fakeBlogRepository) GetPublishedSlugs(context.Context) ([]*entities.BlogPost, error) {
	return f.posts, f.err
}

var fixedNow = time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

func newTestService(recipes *fakeRecipeRepository, posts *fakeBlogRepository) *sitemapService {
	svc := NewSitemapService(recipes, posts, "https://cuisto.app", zerolog.Nop()).(*sitemapService)
	svc.now = func() time.Time { return fixedNow }
	return svc
}

func TestBuildListsEveryLocale(t *testing.T) {
	slug := "tarte-tatin"
	updated := time.Date(2025, 5, 2, 8, 0, 0, 0, time.UTC)
	recipes := &fakeRecipeRepository{recipes: []*entities.Recipe{
		{ID: uuid.New(), Slug: &slug, Timestamp: entities.Timestamp{UpdatedAt: updated}},
		{ID: uuid.New()},
	}}
	posts := &fakeBlogRepository{posts: []*entities.BlogPost{{ID: uuid.New(), Slug: "hello"}}}

	set := newTestService(recipes, posts).Build(context.Background())

	if got, want := len(set.URLs), len(StaticPages)*2+2+2; got != want {
		t.Fatalf("got %d urls, want %d", got, want)
	}
	if set.URLs[0].Loc != "https://cuisto.app/en" || set.URLs[1].Loc != "https://cuisto.app/fr" {
		t.Errorf("home urls = %s, %s", set.URLs[0].Loc, set.URLs[1].Loc)
	}
	if set.URLs[0].Priority != "1.0" || set.URLs[0].ChangeFreq != "weekly" {
		t.Errorf("home entry = %+v", set.URLs[0])
	}

	recipeURL := set.URLs[len(StaticPages)*2+1]
	if recipeURL.Loc != "https://cuisto.app/fr/recipes/tarte-tatin" || recipeURL.Priority != "0.8" {
		t.Errorf("recipe entry = %+v", recipeURL)
	}
	if recipeURL.LastMod != "2025-05-02T08:00:00Z" {
		t.Errorf("recipe lastmod = %s", recipeURL.LastMod)
	}

	postURL := set.URLs[len(set.URLs)-2]
	if postURL.Loc != "https://cuisto.app/en/blog/hello" || postURL.ChangeFreq != "monthly" || postURL.LastMod != "2025-06-01T00:00:00Z" {
		t.Errorf("post entry = %+v", postURL)
	}
}

func TestBuildStaticOnlyOnStoreFailure(t *testing.T) {
	svc := newTestService(&fakeRecipeRepository{err: errors.New("down")}, &fakeBlogRepository{err: errors.New("down")})

	set := svc.Build(context.Background())

	if len(set.URLs) != len(StaticPages)*2 {
		t.Errorf("got %d urls, want only static pages", len(set.URLs))
	}
}

func TestRenderProducesXML(t *testing.T) {
	body, err := newTestService(&fakeRecipeRepository{}, &fakeBlogRepository{}).Render(context.Background())
	if err != nil {
		t.Fatalf("Render: %v", err)
	}

	out := string(body)
	if !strings.HasPrefix(out, "<?xml") {
		t.Errorf("missing xml header: %s", out[:40])
	}
	if !strings.Contains(out, `<urlset xmlns="http://www.sitemaps.org/schemas/sitemap/0.9">`) {
		t.Error("missing urlset namespace")
	}
	if !strings.Contains(out, "<loc>https://cuisto.app/fr/privacy</loc>") {
		t.Error("missing privacy page")
	}
}
