package blog

import (
	"context"
	"cuisto-web/entities"
	"gorm.io/gorm"
)

type (
	BlogRepository interface {
		GetPublishedPosts(ctx context.Context) ([]*entities.BlogPost, error)
		GetPublishedPostBySlug(ctx context.Context, slug string) (*entities.BlogPost, error)
		GetPublishedSlugs(ctx context.Context) ([]*entities.BlogPost, error)
	}

	blogRepository struct {
		db *gorm.DB
	}
)

func NewBlogRepository(db *gorm.DB) BlogRepository {
	return &blogRepository{db: db}
}

func published(db *gorm.DB) *gorm.DB {
	return db.Where("is_published = ?", true)
}

func (r *blogRepository) GetPublishedPosts(ctx context.Context) ([]*entities.BlogPost, error) {
	var posts []*entities.BlogPost
	if err := r.db.WithContext(ctx).
		Scopes(published).
		Order("published_at DESC NULLS LAST").
		Find(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}

func (r *blogRepository) GetPublishedPostBySlug(ctx context.Context, slug string) (*entities.BlogPost, error) {
	var post entities.BlogPost
	if err := r.db.WithContext(ctx).
		Scopes(published).
		Where("slug = ?", slug).
		First(&post).Error; err != nil {
		return nil, err
	}
	return &post, nil
}

func (r *blogRepository) GetPublishedSlugs(ctx context.Context) ([]*entities.BlogPost, error) {
	var posts []*entities.BlogPost
	if err := r.db.WithContext(ctx).
		Model(&entities.BlogPost{}).
		Select("id", "slug", "updated_at").
		Scopes(published).
		Order("slug asc").
		Find(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}
