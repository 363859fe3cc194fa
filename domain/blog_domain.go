package domain

import "errors"

const DefaultAuthorName = "Cuisto Team"

var (
	MessageSuccessGetPosts      = "success get blog posts"
	MessageSuccessGetPostDetail = "success get blog post"

	MessageFailedGetPosts      = "failed to get blog posts"
	MessageFailedGetPostDetail = "failed to get blog post"

	ErrPostNotFound = errors.New("blog post not found")
)

type (
	BlogPostListItem struct {
		ID               string   `json:"id"`
		Slug             string   `json:"slug"`
		Title            string   `json:"title"`
		Description      *string  `json:"description"`
		FeaturedImageURL *string  `json:"featured_image_url"`
		AuthorName       string   `json:"author_name"`
		Tags             []string `json:"tags"`
		PublishedAt      *string  `json:"published_at"`
	}

	BlogPost struct {
		BlogPostListItem
		Content     string `json:"content"`
		ContentHTML string `json:"content_html"`
		CreatedAt   string `json:"created_at"`
		UpdatedAt   string `json:"updated_at"`
	}

	BlogPostResponse struct {
		Post BlogPost `json:"post"`
		SEO  SEO      `json:"seo"`
	}
)
