package entities

import (
	"github.com/google/uuid"
	"github.com/lib/pq"
	"time"
)

type BlogPost struct {
	ID               uuid.UUID      `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Slug             string         `gorm:"uniqueIndex;not null" json:"slug"`
	Title            string         `gorm:"not null" json:"title"`
	Description      *string        `json:"description"`
	Content          string         `gorm:"type:text;not null" json:"content"`
	FeaturedImageURL *string        `json:"featured_image_url"`
	AuthorName       *string        `json:"author_name"`
	Tags             pq.StringArray `gorm:"type:text[]" json:"tags"`
	IsPublished      *bool          `gorm:"default:false;index" json:"is_published"`
	PublishedAt      *time.Time     `gorm:"type:timestamp with time zone" json:"published_at"`

	Timestamp
}
