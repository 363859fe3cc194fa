package waitlist

import (
	"context"
	"cuisto-web/domain"
	"cuisto-web/entities"
	"errors"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

const uniqueViolation = "23505"

type (
	WaitlistRepository interface {
		CreateEntry(ctx context.Context, entry *entities.WaitlistEntry) error
		DeleteByEmail(ctx context.Context, email string) (int64, error)
	}

	waitlistRepository struct {
		db *gorm.DB
	}
)

func NewWaitlistRepository(db *gorm.DB) WaitlistRepository {
	return &waitlistRepository{db: db}
}

// CreateEntry inserts a signup. An email already on the list yields
// domain.ErrAlreadyOnList.
func (r *waitlistRepository) CreateEntry(ctx context.Context, entry *entities.WaitlistEntry) error {
	if err := r.db.WithContext(ctx).Create(entry).Error; err != nil {
		if isUniqueViolation(err) {
			return domain.ErrAlreadyOnList
		}
		return err
	}
	return nil
}

func (r *waitlistRepository) DeleteByEmail(ctx context.Context, email string) (int64, error) {
	result := r.db.WithContext(ctx).Where("email = ?", email).Delete(&entities.WaitlistEntry{})
	return result.RowsAffected, result.Error
}

func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}
