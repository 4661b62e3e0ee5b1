// Package roundclient is the HTTP implementation of the round service the
// session engine talks to. It speaks the /api/round and /api/reveal JSON
// contracts and reduces every failure to a single human-readable error.
package roundclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/shenminzhang/wavelengthwalfie/internal/constants"
	"github.com/shenminzhang/wavelengthwalfie/internal/game"
)

// Client calls the round-generation and reveal endpoints of a running
// server. It implements session.RoundService.
type Client struct {
	baseURL string
	http    *http.Client
}

// New creates a client for the given base URL (e.g. "http://127.0.0.1:8080").
func New(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		// Round generation waits on two model calls; keep the timeout
		// generous.
		http: &http.Client{Timeout: 60 * time.Second},
	}
}

type createRoundRequest struct {
	Theme string `json:"theme"`
}

type revealRequest struct {
	RoundID string `json:"roundId"`
	Guess   int    `json:"guess"`
}

// revealResponse uses a pointer target so an absent field is
// distinguishable from a real zero.
type revealResponse struct {
	Target   *float64        `json:"target"`
	Distance *int            `json:"distance"`
	Score    game.ScoreValue `json:"score"`
}

// CreateRound asks the server to generate a round for the theme.
func (c *Client) CreateRound(ctx context.Context, theme string) (*game.RoundInfo, error) {
	var info game.RoundInfo
	if err := c.postJSON(ctx, constants.RouteAPIPrefix+constants.RouteRound, createRoundRequest{Theme: theme}, &info); err != nil {
		return nil, err
	}
	if info.RoundID == "" || info.LeftAnchor == "" || info.RightAnchor == "" || info.Clue == "" {
		return nil, fmt.Errorf("%s: incomplete round in response", constants.ErrRoundServiceFailed)
	}
	return &info, nil
}

// Reveal submits the frozen guess for the given round and returns the
// target and opaque score.
func (c *Client) Reveal(ctx context.Context, roundID string, guess int) (*game.RevealResult, error) {
	var resp revealResponse
	if err := c.postJSON(ctx, constants.RouteAPIPrefix+constants.RouteReveal, revealRequest{RoundID: roundID, Guess: guess}, &resp); err != nil {
		return nil, err
	}
	if resp.Target == nil {
		return nil, fmt.Errorf("%s: missing target in response", constants.ErrRoundServiceFailed)
	}
	return &game.RevealResult{Target: *resp.Target, Distance: resp.Distance, Score: resp.Score}, nil
}

// postJSON posts the request body and decodes a success response into out.
// Non-2xx responses surface the server's error field verbatim when present
// and fall back to a generic message otherwise.
func (c *Client) postJSON(ctx context.Context, path string, body, out interface{}) error {
	b, err := json.Marshal(body)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(b))
	if err != nil {
		return err
	}
	req.Header.Set(constants.HeaderContentType, constants.ContentTypeJSON)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s: %w", constants.ErrRoundServiceFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var apiErr struct {
			Error string `json:"error"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&apiErr); err == nil && apiErr.Error != "" {
			return errors.New(apiErr.Error)
		}
		return fmt.Errorf("%s (status %d)", constants.ErrRoundServiceFailed, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%s: %w", constants.ErrRoundServiceFailed, err)
	}
	return nil
}
