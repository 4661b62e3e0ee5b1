// Package session implements the lifecycle of one guessing round: theme
// entry, active guessing and reveal. It owns the authoritative guess value
// and talks to the round service only through the RoundService interface.
package session

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/shenminzhang/wavelengthwalfie/internal/constants"
	"github.com/shenminzhang/wavelengthwalfie/internal/dial"
	"github.com/shenminzhang/wavelengthwalfie/internal/game"
)

// State identifies where a session is in the single-round lifecycle.
// Exactly one of {no round, round without reveal, round with reveal}
// holds at any time, matching ThemeEntry/Guessing/Revealed.
type State string

const (
	StateThemeEntry State = "theme_entry"
	StateGuessing   State = "guessing"
	StateRevealed   State = "revealed"
)

// DefaultGuess is the pointer position at the start of every round.
const DefaultGuess = 50

var (
	// ErrRequestInFlight rejects a generate/submit trigger while another
	// request is outstanding; the rejected trigger is a no-op.
	ErrRequestInFlight = errors.New("request already in flight")
	// ErrThemeRequired rejects generation with an empty theme before any
	// network call is made.
	ErrThemeRequired = errors.New(constants.ErrThemeRequired)
	// ErrWrongState rejects a trigger that is not valid in the current
	// lifecycle state.
	ErrWrongState = errors.New("action not allowed in current state")
)

// RoundService is the collaborator that generates rounds and scores
// guesses. The session never touches the transport itself.
type RoundService interface {
	CreateRound(ctx context.Context, theme string) (*game.RoundInfo, error)
	Reveal(ctx context.Context, roundID string, guess int) (*game.RevealResult, error)
}

// Session owns all state for one player's current round. It is not safe
// for concurrent use; all triggers are expected to arrive from a single
// event loop, with the in-flight flag guarding re-entrant generate/submit
// triggers issued while a request is outstanding.
type Session struct {
	svc RoundService

	state    State
	round    *game.RoundInfo
	guess    int
	reveal   *game.RevealResult
	errMsg   string
	inFlight bool
}

// New returns a fresh session in the theme-entry state.
func New(svc RoundService) *Session {
	return &Session{svc: svc, state: StateThemeEntry, guess: DefaultGuess}
}

// State returns the current lifecycle state.
func (s *Session) State() State { return s.state }

// Round returns the active round, or nil before one is generated.
func (s *Session) Round() *game.RoundInfo { return s.round }

// Guess returns the current pointer position.
func (s *Session) Guess() int { return s.guess }

// Reveal returns the reveal result, or nil before the guess is submitted.
func (s *Session) Reveal() *game.RevealResult { return s.reveal }

// ErrorMessage returns the last failure message, empty when none.
func (s *Session) ErrorMessage() string { return s.errMsg }

// Loading reports whether a generate or submit request is outstanding.
func (s *Session) Loading() bool { return s.inFlight }

// Generate asks the round service for a new round built on theme. An empty
// theme (after trimming) is rejected locally without a service call. While
// a request is outstanding any further generate trigger is a no-op.
func (s *Session) Generate(ctx context.Context, theme string) error {
	if s.inFlight {
		return ErrRequestInFlight
	}
	if s.state != StateThemeEntry {
		return ErrWrongState
	}
	theme = strings.TrimSpace(theme)
	if theme == "" {
		s.errMsg = constants.ErrThemeRequired
		return ErrThemeRequired
	}

	s.errMsg = ""
	s.inFlight = true
	info, err := s.svc.CreateRound(ctx, theme)
	s.inFlight = false
	if err != nil {
		s.errMsg = err.Error()
		return err
	}

	s.round = info
	s.guess = DefaultGuess
	s.reveal = nil
	s.state = StateGuessing
	return nil
}

// AdjustGuess moves the pointer to v, clamped to [0,100]. The guess is
// mutable only while the round is active and unrevealed.
func (s *Session) AdjustGuess(v int) {
	if s.state != StateGuessing || s.reveal != nil {
		return
	}
	s.guess = int(dial.Clamp(float64(v), 0, 100))
}

// Submit commits the current guess for scoring. On success the guess is
// frozen and the session moves to the revealed state; on failure it stays
// in the guessing state with the failure message captured for display.
func (s *Session) Submit(ctx context.Context) error {
	if s.inFlight {
		return ErrRequestInFlight
	}
	if s.state != StateGuessing || s.round == nil {
		return ErrWrongState
	}

	s.errMsg = ""
	s.inFlight = true
	res, err := s.svc.Reveal(ctx, s.round.RoundID, s.guess)
	s.inFlight = false
	if err != nil {
		s.errMsg = err.Error()
		return err
	}

	s.reveal = res
	s.state = StateRevealed
	return nil
}

// Reset discards the round, reveal, guess and error and returns to theme
// entry. Safe to call from any state and idempotent.
func (s *Session) Reset() {
	s.state = StateThemeEntry
	s.round = nil
	s.reveal = nil
	s.guess = DefaultGuess
	s.errMsg = ""
}

// Narrative describes where the target landed relative to the anchors.
// Derived from the reveal on every call, never stored. Targets in the
// middle band [45,55] read as an even split; everything else reads as
// leaning toward the left anchor.
//
// TODO: the high branch (target > 55) reads "more <left anchor>" like the
// low branch does; it almost certainly should name the right anchor.
// Confirm the intended copy before changing it, since that wording has
// already shipped.
func (s *Session) Narrative() string {
	if s.state != StateRevealed || s.round == nil || s.reveal == nil {
		return ""
	}
	t := s.reveal.Target
	if t >= 45 && t <= 55 {
		return "it's an even split"
	}
	return fmt.Sprintf("it's more %s", strings.ToLower(s.round.LeftAnchor))
}
