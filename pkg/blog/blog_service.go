package blog

import (
	"bytes"
	"context"
	"cuisto-web/domain"
	"cuisto-web/entities"
	"cuisto-web/internal/utils"
	"cuisto-web/internal/utils/storage"
	"errors"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"gorm.io/gorm"
	"time"
)

var markdown = goldmark.New(goldmark.WithExtensions(extension.GFM))

type (
	BlogService interface {
		ListPosts(ctx context.Context) ([]domain.BlogPostListItem, error)
		GetPost(ctx context.Context, slug string, locale string) (domain.BlogPostResponse, error)
	}

	blogService struct {
		blogRepository BlogRepository
		s3             storage.AwsS3
		siteURL        string
	}
)

func NewBlogService(blogRepository BlogRepository, s3 storage.AwsS3, siteURL string) BlogService {
	return &blogService{
		blogRepository: blogRepository,
		s3:             s3,
		siteURL:        siteURL,
	}
}

func (s *blogService) ListPosts(ctx context.Context) ([]domain.BlogPostListItem, error) {
	rows, err := s.blogRepository.GetPublishedPosts(ctx)
	if err != nil {
		return nil, err
	}

	posts := make([]domain.BlogPostListItem, 0, len(rows))
	for _, row := range rows {
		posts = append(posts, s.listItem(ctx, row))
	}
	return posts, nil
}

func (s *blogService) GetPost(ctx context.Context, slug string, locale string) (domain.BlogPostResponse, error) {
	row, err := s.blogRepository.GetPublishedPostBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.BlogPostResponse{}, domain.ErrPostNotFound
		}
		return domain.BlogPostResponse{}, err
	}

	html, err := RenderMarkdown(row.Content)
	if err != nil {
		return domain.BlogPostResponse{}, err
	}

	item := s.listItem(ctx, row)
	post := domain.BlogPost{
		BlogPostListItem: item,
		Content:          row.Content,
		ContentHTML:      html,
		CreatedAt:        row.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:        row.UpdatedAt.UTC().Format(time.RFC3339),
	}

	description := item.Title
	if item.Description != nil {
		description = *item.Description
	}
	var images []string
	if item.FeaturedImageURL != nil {
		images = []string{*item.FeaturedImageURL}
	}

	return domain.BlogPostResponse{
		Post: post,
		SEO: utils.BuildSEO(
			s.siteURL, locale, "/blog/"+item.Slug,
			item.Title+" | Cuisto Blog", description, "article", images,
		),
	}, nil
}

// RenderMarkdown converts GitHub flavoured markdown to HTML. Raw HTML in
// the source is omitted.
func RenderMarkdown(source string) (string, error) {
	var buf bytes.Buffer
	if err := markdown.Convert([]byte(source), &buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func (s *blogService) listItem(ctx context.Context, row *entities.BlogPost) domain.BlogPostListItem {
	author := domain.DefaultAuthorName
	if row.AuthorName != nil && *row.AuthorName != "" {
		author = *row.AuthorName
	}
	tags := []string{}
	if len(row.Tags) > 0 {
		tags = append(tags, row.Tags...)
	}

	var image *string
	if row.FeaturedImageURL != nil && *row.FeaturedImageURL != "" {
		v := *row.FeaturedImageURL
		if s.s3 != nil {
			v = s.s3.ResolveImageURL(ctx, v)
		}
		image = &v
	}
	var description *string
	if row.Description != nil && *row.Description != "" {
		v := *row.Description
		description = &v
	}
	var publishedAt *string
	if row.PublishedAt != nil {
		v := row.PublishedAt.UTC().Format(time.RFC3339)
		publishedAt = &v
	}

	return domain.BlogPostListItem{
		ID:               row.ID.String(),
		Slug:             row.Slug,
		Title:            row.Title,
		Description:      description,
		FeaturedImageURL: image,
		AuthorName:       author,
		Tags:             tags,
		PublishedAt:      publishedAt,
	}
}
