package service

import (
	"errors"
	"time"

	"github.com/shenminzhang/wavelengthwalfie/internal/constants"
	"github.com/shenminzhang/wavelengthwalfie/internal/game"
	"github.com/shenminzhang/wavelengthwalfie/internal/logging"
	"github.com/shenminzhang/wavelengthwalfie/internal/storage"
)

var (
	ErrRoundNotFound   = errors.New(constants.ErrUnknownOrExpiredRound)
	ErrGuessOutOfRange = errors.New(constants.ErrGuessOutOfRange)
)

// RevealRound scores a guess against the stored round. The round is
// consumed on success, so a second reveal for the same id fails with
// ErrRoundNotFound.
func RevealRound(repo storage.Repository, roundID string, guess int, now time.Time) (*game.RevealOutcome, error) {
	if guess < 0 || guess > 100 {
		return nil, ErrGuessOutOfRange
	}

	r, err := repo.ConsumeRound(roundID, now)
	if err != nil {
		if errors.Is(err, storage.ErrRoundNotFound) {
			return nil, ErrRoundNotFound
		}
		return nil, err
	}

	distance, score := game.ScoreRound(guess, r.Target)
	logging.Info("round revealed", logging.Fields{
		constants.LogFieldRoundID: roundID,
		constants.LogFieldGuess:   guess,
		constants.LogFieldTarget:  r.Target,
	})
	return &game.RevealOutcome{Target: r.Target, Distance: distance, Score: score}, nil
}
