package game

import (
	"encoding/json"

	"gorm.io/gorm"
)

// Round is the server-side record of one generated round. The target is
// never sent to the client until the reveal request arrives; the
// descriptive fields are kept so operators can inspect what was generated.
type Round struct {
	gorm.Model
	// RoundID is the opaque public identifier handed to the client and
	// echoed back by the reveal request.
	RoundID       string `json:"round_id" gorm:"uniqueIndex;size:36"`
	Theme         string `json:"theme"`
	SpectrumLabel string `json:"spectrum_label"`
	LeftAnchor    string `json:"left_anchor"`
	RightAnchor   string `json:"right_anchor"`
	Clue          string `json:"clue"`
	Target        int    `json:"target"`
}

// RoundInfo is the wire shape returned by POST /api/round. The camelCase
// field names are part of the public contract shared with the frontend.
type RoundInfo struct {
	RoundID       string `json:"roundId"`
	Theme         string `json:"theme"`
	SpectrumLabel string `json:"spectrumLabel"`
	LeftAnchor    string `json:"leftAnchor"`
	RightAnchor   string `json:"rightAnchor"`
	Clue          string `json:"clue"`
}

// RevealOutcome is the wire shape returned by POST /api/reveal.
type RevealOutcome struct {
	Target   int    `json:"target"`
	Distance int    `json:"distance"`
	Score    string `json:"score"`
}

// RevealResult is the client-side view of a reveal response. Clients must
// not assume anything about the score beyond "printable": the server owns
// its semantics and may change its type, so it is carried verbatim.
type RevealResult struct {
	Target   float64    `json:"target"`
	Distance *int       `json:"distance,omitempty"`
	Score    ScoreValue `json:"score"`
}

// ScoreValue holds a score exactly as the server sent it. It survives
// strings, numbers or richer JSON without interpreting them.
type ScoreValue struct {
	raw json.RawMessage
}

// NewScoreValue wraps raw JSON bytes as an opaque score.
func NewScoreValue(raw []byte) ScoreValue {
	return ScoreValue{raw: append(json.RawMessage(nil), raw...)}
}

func (s *ScoreValue) UnmarshalJSON(b []byte) error {
	s.raw = append(s.raw[:0], b...)
	return nil
}

func (s ScoreValue) MarshalJSON() ([]byte, error) {
	if len(s.raw) == 0 {
		return []byte("null"), nil
	}
	return s.raw, nil
}

// String returns a display form: unquoted for JSON strings, the raw JSON
// text otherwise.
func (s ScoreValue) String() string {
	if len(s.raw) == 0 {
		return ""
	}
	var str string
	if err := json.Unmarshal(s.raw, &str); err == nil {
		return str
	}
	return string(s.raw)
}
