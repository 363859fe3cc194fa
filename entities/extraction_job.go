package entities

import (
	"github.com/google/uuid"
)

const (
	ExtractionStatusCompleted = "completed"

	SourceTypeVideo = "video"
	SourceTypeURL   = "url"
	SourceTypeLink  = "link"
	SourceTypePhoto = "photo"
	SourceTypeVoice = "voice"
	SourceTypePaste = "paste"
)

type ExtractionJob struct {
	ID         uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID     *uuid.UUID `gorm:"type:uuid" json:"user_id"`
	RecipeID   *uuid.UUID `gorm:"type:uuid;index" json:"recipe_id"`
	SourceType string     `gorm:"index" json:"source_type"`
	SourceURL  *string    `json:"source_url"`
	Status     string     `gorm:"index" json:"status"` // pending, processing, completed, failed

	Recipe *Recipe `gorm:"foreignKey:RecipeID"`
	Timestamp
}
