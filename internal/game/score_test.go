package game

import (
	"encoding/json"
	"testing"
)

func TestScoreRound(t *testing.T) {
	cases := []struct {
		guess, target int
		wantDistance  int
		wantScore     string
	}{
		{80, 80, 0, ScoreWon},
		{61, 80, 19, ScoreWon},
		{60, 80, 20, ScoreLost},
		{0, 100, 100, ScoreLost},
		{100, 0, 100, ScoreLost},
		{72, 80, 8, ScoreWon},
	}
	for _, c := range cases {
		d, s := ScoreRound(c.guess, c.target)
		if d != c.wantDistance || s != c.wantScore {
			t.Fatalf("ScoreRound(%d,%d) = (%d,%q), want (%d,%q)", c.guess, c.target, d, s, c.wantDistance, c.wantScore)
		}
	}
}

func TestScoreValue_String(t *testing.T) {
	var res RevealResult
	if err := json.Unmarshal([]byte(`{"target":80,"score":"You Won!"}`), &res); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Score.String() != "You Won!" {
		t.Fatalf("string score: got %q", res.Score.String())
	}

	if err := json.Unmarshal([]byte(`{"target":80,"score":3}`), &res); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Score.String() != "3" {
		t.Fatalf("numeric score: got %q", res.Score.String())
	}

	var empty ScoreValue
	if empty.String() != "" {
		t.Fatalf("zero score should render empty, got %q", empty.String())
	}
}
