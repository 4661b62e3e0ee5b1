package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shenminzhang/wavelengthwalfie/internal/game"
	"github.com/shenminzhang/wavelengthwalfie/internal/generator"
	"github.com/shenminzhang/wavelengthwalfie/internal/storage"
)

type mockRepo struct {
	rounds map[string]*game.Round
}

func newMockRepo() *mockRepo {
	return &mockRepo{rounds: map[string]*game.Round{}}
}

func (m *mockRepo) CreateRound(r *game.Round) error {
	m.rounds[r.RoundID] = r
	return nil
}

func (m *mockRepo) ConsumeRound(roundID string, now time.Time) (*game.Round, error) {
	r, ok := m.rounds[roundID]
	if !ok {
		return nil, storage.ErrRoundNotFound
	}
	delete(m.rounds, roundID)
	return r, nil
}

func (m *mockRepo) DeleteExpiredRounds(cutoff time.Time) (int64, error) { return 0, nil }

type mockGenerator struct {
	anchorsErr error
	clueErr    error
	gotTarget  int
}

func (m *mockGenerator) MakeAnchors(ctx context.Context, theme string) (*generator.Anchors, error) {
	if m.anchorsErr != nil {
		return nil, m.anchorsErr
	}
	return &generator.Anchors{LeftAnchor: "Cold", RightAnchor: "Hot", SpectrumLabel: "Temperature"}, nil
}

func (m *mockGenerator) MakeClue(ctx context.Context, theme string, a *generator.Anchors, target int) (string, error) {
	if m.clueErr != nil {
		return "", m.clueErr
	}
	m.gotTarget = target
	return "The surface of Venus", nil
}

func TestCreateRound(t *testing.T) {
	repo := newMockRepo()
	gen := &mockGenerator{}
	info, err := CreateRound(context.Background(), repo, gen, "  space ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if info.RoundID == "" {
		t.Fatalf("expected a round id")
	}
	if info.Theme != "space" || info.LeftAnchor != "Cold" || info.RightAnchor != "Hot" {
		t.Fatalf("unexpected info: %+v", info)
	}

	stored, ok := repo.rounds[info.RoundID]
	if !ok {
		t.Fatalf("round not stored")
	}
	if stored.Target < 0 || stored.Target > 100 {
		t.Fatalf("target out of range: %d", stored.Target)
	}
	if stored.Target != gen.gotTarget {
		t.Fatalf("clue generated for target %d but %d stored", gen.gotTarget, stored.Target)
	}
}

func TestCreateRound_EmptyTheme(t *testing.T) {
	repo := newMockRepo()
	if _, err := CreateRound(context.Background(), repo, &mockGenerator{}, "   "); !errors.Is(err, ErrThemeRequired) {
		t.Fatalf("expected ErrThemeRequired, got %v", err)
	}
	if len(repo.rounds) != 0 {
		t.Fatalf("no round should be stored")
	}
}

func TestCreateRound_GenerationFails(t *testing.T) {
	repo := newMockRepo()
	gen := &mockGenerator{anchorsErr: errors.New("model unavailable")}
	if _, err := CreateRound(context.Background(), repo, gen, "oceans"); err == nil {
		t.Fatalf("expected error")
	}
	if len(repo.rounds) != 0 {
		t.Fatalf("failed generation must not store a round")
	}
}
