package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/shenminzhang/wavelengthwalfie/internal/constants"
	"github.com/shenminzhang/wavelengthwalfie/internal/game"
	"github.com/shenminzhang/wavelengthwalfie/internal/generator"
	"github.com/shenminzhang/wavelengthwalfie/internal/storage"

	"github.com/gin-gonic/gin"
)

type mockRepo struct {
	rounds map[string]*game.Round
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

type mockGenerator struct{}

func (mockGenerator) MakeAnchors(ctx context.Context, theme string) (*generator.Anchors, error) {
	return &generator.Anchors{LeftAnchor: "Cold", RightAnchor: "Hot", SpectrumLabel: "Temperature"}, nil
}

func (mockGenerator) MakeClue(ctx context.Context, theme string, a *generator.Anchors, target int) (string, error) {
	return "The surface of Venus", nil
}

func newTestRouter(repo storage.Repository) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewRoundHandler(repo, mockGenerator{})
	router := gin.New()
	apiRoutes := router.Group(constants.RouteAPIPrefix)
	apiRoutes.GET(constants.RouteHealth, Health)
	apiRoutes.POST(constants.RouteRound, h.CreateRound)
	apiRoutes.POST(constants.RouteReveal, h.Reveal)
	return router
}

func doJSON(t *testing.T, router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(constants.HeaderContentType, constants.ContentTypeJSON)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestCreateAndRevealFlow(t *testing.T) {
	repo := &mockRepo{rounds: map[string]*game.Round{}}
	router := newTestRouter(repo)

	w := doJSON(t, router, http.MethodPost, "/api/round", `{"theme":"space"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("create round: status %d body %s", w.Code, w.Body.String())
	}
	var info game.RoundInfo
	if err := json.Unmarshal(w.Body.Bytes(), &info); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if info.RoundID == "" || info.LeftAnchor != "Cold" || info.Clue == "" {
		t.Fatalf("unexpected round info: %+v", info)
	}

	guess := repo.rounds[info.RoundID].Target // guaranteed win
	w = doJSON(t, router, http.MethodPost, "/api/reveal",
		`{"roundId":"`+info.RoundID+`","guess":`+jsonInt(guess)+`}`)
	if w.Code != http.StatusOK {
		t.Fatalf("reveal: status %d body %s", w.Code, w.Body.String())
	}
	var out game.RevealOutcome
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Distance != 0 || out.Score != game.ScoreWon {
		t.Fatalf("unexpected outcome: %+v", out)
	}

	// Second reveal of the same round must fail.
	w = doJSON(t, router, http.MethodPost, "/api/reveal",
		`{"roundId":"`+info.RoundID+`","guess":50}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("second reveal: status %d", w.Code)
	}
}

func TestCreateRound_MissingTheme(t *testing.T) {
	router := newTestRouter(&mockRepo{rounds: map[string]*game.Round{}})
	for _, body := range []string{`{}`, `{"theme":"  "}`, ``} {
		w := doJSON(t, router, http.MethodPost, "/api/round", body)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("body %q: status %d", body, w.Code)
		}
		if !strings.Contains(w.Body.String(), constants.ErrThemeRequired) {
			t.Fatalf("body %q: unexpected error payload %s", body, w.Body.String())
		}
	}
}

func TestReveal_Validation(t *testing.T) {
	repo := &mockRepo{rounds: map[string]*game.Round{
		"r1": {RoundID: "r1", Target: 80},
	}}
	router := newTestRouter(repo)

	cases := []struct {
		body    string
		wantErr string
	}{
		{`{"guess":50}`, constants.ErrUnknownOrExpiredRound},
		{`{"roundId":"nope","guess":50}`, constants.ErrUnknownOrExpiredRound},
		{`{"roundId":"r1"}`, constants.ErrGuessRequired},
		{`{"roundId":"r1","guess":"high"}`, constants.ErrGuessNotInteger},
		{`{"roundId":"r1","guess":101}`, constants.ErrGuessOutOfRange},
		{`{"roundId":"r1","guess":-1}`, constants.ErrGuessOutOfRange},
	}
	for _, c := range cases {
		w := doJSON(t, router, http.MethodPost, "/api/reveal", c.body)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("body %q: status %d", c.body, w.Code)
		}
		if !strings.Contains(w.Body.String(), c.wantErr) {
			t.Fatalf("body %q: got %s, want %q", c.body, w.Body.String(), c.wantErr)
		}
	}

	if _, ok := repo.rounds["r1"]; !ok {
		t.Fatalf("rejected requests must not consume the round")
	}
}

func TestHealth(t *testing.T) {
	router := newTestRouter(&mockRepo{rounds: map[string]*game.Round{}})
	w := doJSON(t, router, http.MethodGet, "/api/health", "")
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), `"ok":true`) {
		t.Fatalf("health: status %d body %s", w.Code, w.Body.String())
	}
}

func jsonInt(v int) string {
	b, _ := json.Marshal(v)
	return string(b)
}
