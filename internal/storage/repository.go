package storage

import (
	"errors"
	"time"

	"github.com/shenminzhang/wavelengthwalfie/internal/game"
)

// ErrRoundNotFound is returned when a round id does not exist, was already
// consumed by a reveal, or has expired.
var ErrRoundNotFound = errors.New("round not found")

type Repository interface {
	CreateRound(r *game.Round) error
	// ConsumeRound returns the round with the given public id and removes
	// it so the same guess cannot be scored twice. Rounds older than the
	// TTL at the provided instant are treated as missing.
	ConsumeRound(roundID string, now time.Time) (*game.Round, error)
	// DeleteExpiredRounds purges rounds created at or before the cutoff
	// and reports how many were removed.
	DeleteExpiredRounds(cutoff time.Time) (int64, error)
}
