// Package generator produces the descriptive half of a round (spectrum
// anchors and a clue) through the OpenAI Chat Completions API.
package generator

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/shenminzhang/wavelengthwalfie/internal/constants"
	"github.com/shenminzhang/wavelengthwalfie/internal/logging"
)

// anchorsPromptTemplate can be set at application startup to customize the
// prompt used when requesting spectrum anchors. Use the token "{{theme}}"
// where the player's theme should be substituted.
var anchorsPromptTemplate string

// cluePromptTemplate customizes the clue request. Available tokens:
// {{theme}}, {{left}}, {{right}}, {{target}}.
var cluePromptTemplate string

// SetAnchorsPromptTemplate sets a custom prompt template for anchor
// generation. Call from main after loading configuration.
func SetAnchorsPromptTemplate(t string) {
	anchorsPromptTemplate = strings.TrimSpace(t)
}

// SetCluePromptTemplate sets a custom prompt template for clue generation.
// Call from main after loading configuration.
func SetCluePromptTemplate(t string) {
	cluePromptTemplate = strings.TrimSpace(t)
}

// Anchors describes the two extremes of a round's spectrum plus a short
// label for what the spectrum is about. Field names match the model's
// required output schema and the public API.
type Anchors struct {
	LeftAnchor    string `json:"leftAnchor"`
	RightAnchor   string `json:"rightAnchor"`
	SpectrumLabel string `json:"spectrumLabel"`
}

// Client generates anchors and clues. A zero-config Client reads the API
// key and model from the environment on every call so tests can swap them.
type Client struct{}

// New returns a generator Client.
func New() *Client { return &Client{} }

// MakeAnchors asks the model for opposite anchors fitting the theme.
func (c *Client) MakeAnchors(ctx context.Context, theme string) (*Anchors, error) {
	prompt := anchorsPromptTemplate
	if prompt == "" {
		prompt = "Theme: {{theme}}\n\n" +
			"Return short, clear opposite anchors for a spectrum.\n" +
			"Rules:\n" +
			"- Anchors must be true opposites and broadly understandable.\n" +
			"- Avoid politics unless the theme explicitly demands it.\n" +
			"- Keep anchors 1-4 words each.\n" +
			"- spectrumLabel should be 1-4 words describing what the anchors are about.\n" +
			"Return JSON with keys: leftAnchor, rightAnchor, spectrumLabel"
	}
	prompt = strings.ReplaceAll(prompt, "{{theme}}", theme)

	system := "You design a single round of a Wavelength-style spectrum guessing game. " +
		"Output must be a JSON object with exactly the requested keys."

	content, err := callChat(ctx, system, prompt)
	if err != nil {
		return nil, err
	}

	var a Anchors
	if err := json.Unmarshal([]byte(content), &a); err != nil {
		return nil, fmt.Errorf("failed to parse anchors from model output: %w", err)
	}
	if err := ValidateAnchors(&a); err != nil {
		return nil, err
	}
	return &a, nil
}

// MakeClue asks the model for one clue sentence implying the target
// position without naming it.
func (c *Client) MakeClue(ctx context.Context, theme string, a *Anchors, target int) (string, error) {
	prompt := cluePromptTemplate
	if prompt == "" {
		prompt = "Theme: {{theme}}\n" +
			"Spectrum: '{{left}}' (0) <-> '{{right}}' (100)\n" +
			"Target position: {{target}}/100\n\n" +
			"Write ONE sentence as the clue that implies something near the target.\n" +
			"It is best to reference specific scenarios related to the theme.\n" +
			"Example: If the spectrum is 'Hot' (0) <-> 'Cold' (100) and the target position is 0/100, the clue may be 'Lava' or 'Concrete on a summer day'.\n" +
			"Example: If the spectrum is 'Sandwich' (0) <-> 'Not a Sandwich' (100) and the target position is 50/100, the clue may be 'Hot dog'.\n" +
			"Do NOT mention numbers, percent, target, wheel, slider, or position.\n" +
			"Return JSON with key: clue"
	}
	prompt = strings.ReplaceAll(prompt, "{{theme}}", theme)
	prompt = strings.ReplaceAll(prompt, "{{left}}", a.LeftAnchor)
	prompt = strings.ReplaceAll(prompt, "{{right}}", a.RightAnchor)
	prompt = strings.ReplaceAll(prompt, "{{target}}", fmt.Sprintf("%d", target))

	system := "You write a single clue for a Wavelength-style guessing round. " +
		"Output must be a JSON object with exactly the requested keys."

	content, err := callChat(ctx, system, prompt)
	if err != nil {
		return "", err
	}

	var out struct {
		Clue string `json:"clue"`
	}
	if err := json.Unmarshal([]byte(content), &out); err != nil {
		return "", fmt.Errorf("failed to parse clue from model output: %w", err)
	}
	clue, err := ValidateClue(out.Clue)
	if err != nil {
		return "", err
	}
	return clue, nil
}

// ValidateAnchors enforces the output schema limits: anchors 2-40 chars,
// label 1-20 chars, all after trimming.
func ValidateAnchors(a *Anchors) error {
	a.LeftAnchor = strings.TrimSpace(a.LeftAnchor)
	a.RightAnchor = strings.TrimSpace(a.RightAnchor)
	a.SpectrumLabel = strings.TrimSpace(a.SpectrumLabel)
	for _, anchor := range []string{a.LeftAnchor, a.RightAnchor} {
		if n := len(anchor); n < 2 || n > 40 {
			return fmt.Errorf("anchor must be 2-40 chars, got %q", anchor)
		}
	}
	if n := len(a.SpectrumLabel); n < 1 || n > 20 {
		return fmt.Errorf("label must be 1-20 chars, got %q", a.SpectrumLabel)
	}
	return nil
}

// ValidateClue trims the clue and enforces the 5-140 char limit.
func ValidateClue(clue string) (string, error) {
	clue = strings.TrimSpace(clue)
	if n := len(clue); n < 5 || n > 140 {
		return "", fmt.Errorf("clue must be 5-140 chars, got %q", clue)
	}
	return clue, nil
}

// chatModel returns the configured model name, defaulting when OPENAI_MODEL
// is unset.
func chatModel() string {
	if m := os.Getenv(constants.EnvOpenAIModel); m != "" {
		return m
	}
	return constants.OpenAIChatModelDefault
}

// callChat invokes the OpenAI Chat Completions API in JSON mode and
// returns the first choice's message content.
func callChat(ctx context.Context, system, user string) (string, error) {
	apiKey := os.Getenv(constants.EnvOpenAIAPIKey)
	if apiKey == "" {
		return "", fmt.Errorf("%s not set", constants.EnvOpenAIAPIKey)
	}

	payload := map[string]interface{}{
		"model": chatModel(),
		"messages": []map[string]string{
			{"role": "system", "content": system},
			{"role": "user", "content": user},
		},
		"response_format": map[string]string{"type": "json_object"},
	}

	b, _ := json.Marshal(payload)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, constants.OpenAIBaseURL+constants.OpenAIChatCompletionsPath, bytes.NewBuffer(b))
	if err != nil {
		return "", err
	}
	req.Header.Set(constants.HeaderAuthorization, constants.BearerPrefix+apiKey)
	req.Header.Set(constants.HeaderContentType, constants.ContentTypeJSON)

	client := &http.Client{Timeout: 30 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("openai error: %d %s", resp.StatusCode, string(body))
	}

	var out struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", err
	}
	if len(out.Choices) == 0 {
		return "", fmt.Errorf("empty response from OpenAI")
	}

	content := strings.TrimSpace(out.Choices[0].Message.Content)
	if content == "" {
		logging.Error("openai returned empty content", fmt.Errorf("empty"), nil)
		return "", fmt.Errorf("empty response from OpenAI")
	}
	return content, nil
}
