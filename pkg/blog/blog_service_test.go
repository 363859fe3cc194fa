package blog

import (
	"context"
	"cuisto-web/domain"
	"cuisto-web/entities"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type fakeBlogRepository struct {
	posts []*entities.BlogPost
	err   error
}

func (f *fakeBlogRepository) GetPublishedPosts(context.Context) ([]*entities.BlogPost, error) {
	return f.posts, f.err
}

func (f *fakeBlogRepository) GetPublishedPostBySlug(_ context.Context, slug string) (*entities.BlogPost, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, p := range f.posts {
		if p.Slug == slug {
			return p, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeBlogRepository) GetPublishedSlugs(context.Context) ([]*entities.BlogPost, error) {
	return f.posts, f.err
}

func TestListPostsDefaults(t *testing.T) {
	published := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	author := "Léa"
	repo := &fakeBlogRepository{posts: []*entities.BlogPost{
		{ID: uuid.New(), Slug: "first", Title: "First", PublishedAt: &published, AuthorName: &author, Tags: []string{"news"}},
		{ID: uuid.New(), Slug: "second", Title: "Second"},
	}}

	got, err := NewBlogService(repo, nil, "https://cuisto.app").ListPosts(context.Background())
	if err != nil {
		t.Fatalf("ListPosts: %v", err)
	}

	if len(got) != 2 {
		t.Fatalf("got %d posts, want 2", len(got))
	}
	if got[0].AuthorName != "Léa" || got[0].PublishedAt == nil || *got[0].PublishedAt != "2025-03-01T10:00:00Z" {
		t.Errorf("first post = %+v", got[0])
	}
	if got[1].AuthorName != domain.DefaultAuthorName {
		t.Errorf("author = %q, want default", got[1].AuthorName)
	}
	if got[1].Tags == nil || len(got[1].Tags) != 0 {
		t.Errorf("tags = %#v, want empty non-nil", got[1].Tags)
	}
}

func TestGetPostRendersMarkdown(t *testing.T) {
	repo := &fakeBlogRepository{posts: []*entities.BlogPost{
		{ID: uuid.New(), Slug: "tips", Title: "Tips", Content: "# Knife skills\n\n| a | b |\n|---|---|\n| 1 | 2 |\n\n<script>alert(1)</script>\n"},
	}}

	got, err := NewBlogService(repo, nil, "https://cuisto.app").GetPost(context.Background(), "tips", "fr")
	if err != nil {
		t.Fatalf("GetPost: %v", err)
	}

	html := got.Post.ContentHTML
	if !strings.Contains(html, "<h1>Knife skills</h1>") {
		t.Errorf("heading missing from %q", html)
	}
	if !strings.Contains(html, "<table>") {
		t.Errorf("table missing from %q", html)
	}
	if strings.Contains(html, "<script>") {
		t.Errorf("raw html kept in %q", html)
	}
	if got.SEO.Canonical != "https://cuisto.app/fr/blog/tips" {
		t.Errorf("canonical = %q", got.SEO.Canonical)
	}
	if got.SEO.Description != "Tips" {
		t.Errorf("description = %q, want title fallback", got.SEO.Description)
	}
}

func TestGetPostNotFound(t *testing.T) {
	svc := NewBlogService(&fakeBlogRepository{}, nil, "https://cuisto.app")

	if _, err := svc.GetPost(context.Background(), "missing", "en"); !errors.Is(err, domain.ErrPostNotFound) {
		t.Errorf("err = %v, want ErrPostNotFound", err)
	}
}

func TestGetPostStoreError(t *testing.T) {
	boom := errors.New("boom")
	svc := NewBlogService(&fakeBlogRepository{err: boom}, nil, "https://cuisto.app")

	if _, err := svc.GetPost(context.Background(), "x", "en"); !errors.Is(err, boom) {
		t.Errorf("err = %v, want store error", err)
	}
}
