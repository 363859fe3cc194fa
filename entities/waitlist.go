package entities

import (
	"github.com/google/uuid"
	"time"
)

type WaitlistEntry struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Email     string    `gorm:"uniqueIndex;not null" json:"email"`
	Source    string    `gorm:"default:'landing'" json:"source"`
	IPAddress string    `json:"ip_address"` // keyed hash, never the raw address
	UserAgent string    `json:"user_agent"`
	CreatedAt time.Time `gorm:"type:timestamp with time zone;autoCreateTime" json:"created_at"`
}

func (WaitlistEntry) TableName() string {
	return "waitlist"
}
