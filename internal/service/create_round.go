package service

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"strings"

	"github.com/shenminzhang/wavelengthwalfie/internal/constants"
	"github.com/shenminzhang/wavelengthwalfie/internal/dedupe"
	"github.com/shenminzhang/wavelengthwalfie/internal/game"
	"github.com/shenminzhang/wavelengthwalfie/internal/generator"
	"github.com/shenminzhang/wavelengthwalfie/internal/keys"
	"github.com/shenminzhang/wavelengthwalfie/internal/logging"
	"github.com/shenminzhang/wavelengthwalfie/internal/storage"

	"github.com/google/uuid"
)

var ErrThemeRequired = errors.New(constants.ErrThemeRequired)

// Generator produces the descriptive half of a round. Implemented by the
// generator package; abstracted so tests can stub the model calls.
type Generator interface {
	MakeAnchors(ctx context.Context, theme string) (*generator.Anchors, error)
	MakeClue(ctx context.Context, theme string, a *generator.Anchors, target int) (string, error)
}

// CreateRound generates and stores one round for the theme. The server
// picks the target so the model cannot cluster clues toward the middle of
// the dial; the target stays server-side until the reveal. Concurrent
// requests for the same canonical theme share a single generation flight.
func CreateRound(ctx context.Context, repo storage.Repository, gen Generator, theme string) (*game.RoundInfo, error) {
	theme = strings.TrimSpace(theme)
	if theme == "" {
		return nil, ErrThemeRequired
	}

	ch := dedupe.RoundGroup.DoChan(keys.ThemeKey(theme), func() (interface{}, error) {
		target := rand.Intn(101)

		anchors, err := gen.MakeAnchors(ctx, theme)
		if err != nil {
			return nil, fmt.Errorf("anchors generation: %w", err)
		}
		clue, err := gen.MakeClue(ctx, theme, anchors, target)
		if err != nil {
			return nil, fmt.Errorf("clue generation: %w", err)
		}

		r := &game.Round{
			RoundID:       uuid.NewString(),
			Theme:         theme,
			SpectrumLabel: anchors.SpectrumLabel,
			LeftAnchor:    anchors.LeftAnchor,
			RightAnchor:   anchors.RightAnchor,
			Clue:          clue,
			Target:        target,
		}
		if err := repo.CreateRound(r); err != nil {
			return nil, fmt.Errorf("failed to store round: %w", err)
		}

		logging.Info("round created", logging.Fields{
			constants.LogFieldRoundID: r.RoundID,
			constants.LogFieldTheme:   theme,
			constants.LogFieldTarget:  target,
		})

		return &game.RoundInfo{
			RoundID:       r.RoundID,
			Theme:         r.Theme,
			SpectrumLabel: r.SpectrumLabel,
			LeftAnchor:    r.LeftAnchor,
			RightAnchor:   r.RightAnchor,
			Clue:          r.Clue,
		}, nil
	})

	select {
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		info, ok := res.Val.(*game.RoundInfo)
		if !ok {
			return nil, fmt.Errorf("unexpected result type from singleflight")
		}
		return info, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}
