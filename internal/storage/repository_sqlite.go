package storage

import (
	"errors"
	"time"

	"github.com/shenminzhang/wavelengthwalfie/internal/game"

	"gorm.io/gorm"
)

type sqliteRepository struct {
	db  *gorm.DB
	ttl time.Duration
}

// NewSQLiteRepository wraps a gorm DB as a Repository. roundTTL bounds how
// long a generated round stays revealable.
func NewSQLiteRepository(db *gorm.DB, roundTTL time.Duration) Repository {
	return &sqliteRepository{db: db, ttl: roundTTL}
}

func (r *sqliteRepository) CreateRound(rr *game.Round) error {
	return r.db.Create(rr).Error
}

func (r *sqliteRepository) ConsumeRound(roundID string, now time.Time) (*game.Round, error) {
	var rr game.Round
	// Fetch and delete in one transaction so two concurrent reveals of the
	// same round cannot both score.
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("round_id = ? AND created_at > ?", roundID, now.Add(-r.ttl)).First(&rr).Error; err != nil {
			return err
		}
		return tx.Delete(&rr).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRoundNotFound
		}
		return nil, err
	}
	return &rr, nil
}

func (r *sqliteRepository) DeleteExpiredRounds(cutoff time.Time) (int64, error) {
	// Unscoped so consumed (soft-deleted) rows are purged as well.
	res := r.db.Unscoped().Where("created_at <= ?", cutoff).Delete(&game.Round{})
	return res.RowsAffected, res.Error
}
