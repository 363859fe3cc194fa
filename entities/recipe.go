package entities

import (
	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/datatypes"
	"time"
)

const (
	DifficultyEasy   = "easy"
	DifficultyMedium = "medium"
	DifficultyHard   = "hard"
)

// Recipe rows are written by the mobile app and the extraction pipeline;
// the website only reads them. Nullable columns are pointers.
type Recipe struct {
	ID               uuid.UUID      `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Slug             *string        `gorm:"uniqueIndex" json:"slug"`
	Title            string         `gorm:"not null" json:"title"`
	Description      *string        `json:"description"`
	ImageURL         *string        `json:"image_url"`
	Ingredients      datatypes.JSON `gorm:"type:jsonb;not null;default:'[]'" json:"ingredients"`
	Instructions     datatypes.JSON `gorm:"type:jsonb;not null;default:'[]'" json:"instructions"`
	Servings         *int           `json:"servings"`
	Difficulty       *string        `json:"difficulty"` // easy, medium, hard
	Tags             pq.StringArray `gorm:"type:text[]" json:"tags"`
	Categories       pq.StringArray `gorm:"type:text[]" json:"categories"` // deprecated, superseded by CategoryID
	CategoryID       *uuid.UUID     `gorm:"type:uuid;index" json:"category_id"`
	PrepTimeMinutes  *int           `json:"prep_time_minutes"`
	CookTimeMinutes  *int           `json:"cook_time_minutes"`
	TotalTimeMinutes *int           `json:"total_time_minutes"`
	SourceType       string         `json:"source_type"`
	SourceURL        *string        `json:"source_url"`
	CreatedBy        uuid.UUID      `gorm:"type:uuid" json:"created_by"`
	Language         *string        `json:"language"`
	AverageRating    *float64       `json:"average_rating"`
	RatingCount      *int           `json:"rating_count"`
	TotalTimesCooked *int           `json:"total_times_cooked"`
	IsPublic         *bool          `gorm:"default:true;index" json:"is_public"`
	IsDraft          bool           `gorm:"default:false;index" json:"is_draft"`
	IsHidden         bool           `gorm:"default:false" json:"is_hidden"`

	Category *Category `gorm:"foreignKey:CategoryID"`
	Timestamp
}

type Category struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Slug         string    `gorm:"uniqueIndex;not null" json:"slug"`
	Icon         *string   `json:"icon"`
	DisplayOrder int       `gorm:"default:0" json:"display_order"`
}

type CookingSession struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	RecipeID uuid.UUID `gorm:"type:uuid;index" json:"recipe_id"`
	UserID   uuid.UUID `gorm:"type:uuid" json:"user_id"`
	CookedAt time.Time `gorm:"type:timestamp with time zone;index" json:"cooked_at"`

	Recipe *Recipe `gorm:"foreignKey:RecipeID"`
}
