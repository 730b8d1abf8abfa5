// Package advice asks Gemini for short mentor tips seeded by the user's
// current record counts. The advisor never fails upward: every error path
// lands on a fixed fallback tip list, logged for diagnostics only.
package advice

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"google.golang.org/genai"

	"github.com/trackwise/trackwise/pkg/domain"
)

const (
	tipsModel   = "gemini-3-flash-preview"
	readmeModel = "gemini-3-pro-preview"
)

// Fallback is returned whenever tips cannot be fetched or parsed.
var Fallback = []string{
	"Focus on MVP features first.",
	"Network with other participants.",
	"Document your progress frequently.",
}

// Advisor wraps the Gemini client. A nil *Advisor is valid and always
// serves the fallback list, so callers need no key-present check.
type Advisor struct {
	log *zap.Logger

	// generate performs one model call and returns the response text.
	// Swapped out in tests.
	generate func(ctx context.Context, model, prompt string, jsonArray bool) (string, error)
}

// New builds an advisor backed by the Gemini API.
func New(ctx context.Context, apiKey string, log *zap.Logger) (*Advisor, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("advice.New: api key is empty")
	}
	if log == nil {
		log = zap.NewNop()
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: apiKey})
	if err != nil {
		return nil, fmt.Errorf("advice.New: %w", err)
	}

	a := &Advisor{log: log}
	a.generate = func(ctx context.Context, model, prompt string, jsonArray bool) (string, error) {
		var cfg *genai.GenerateContentConfig
		if jsonArray {
			cfg = &genai.GenerateContentConfig{
				ResponseMIMEType: "application/json",
				ResponseSchema: &genai.Schema{
					Type:  genai.TypeArray,
					Items: &genai.Schema{Type: genai.TypeString},
				},
			}
		}
		resp, err := client.Models.GenerateContent(ctx, model, genai.Text(prompt), cfg)
		if err != nil {
			return "", err
		}
		return resp.Text(), nil
	}
	return a, nil
}

// Tips returns actionable tips for the given context string and record kind.
// Any failure (nil advisor, transport error, non-array payload, empty
// array) yields the fallback list.
func (a *Advisor) Tips(ctx context.Context, contextStr string, kind domain.Kind) []string {
	if a == nil {
		return Fallback
	}

	prompt := fmt.Sprintf(`I am building Trackwise, a tracker for my professional journey. `+
		`Act as a senior engineering mentor. Based on my current %s details: %q, `+
		`give me 3 actionable tips to improve my chances of success or to build faster. `+
		`Keep each tip concise. Format as a JSON array of strings.`, kind, contextStr)

	text, err := a.generate(ctx, tipsModel, prompt, true)
	if err != nil {
		a.log.Warn("advice fetch failed", zap.String("kind", string(kind)), zap.Error(err))
		return Fallback
	}

	var tips []string
	if err := json.Unmarshal([]byte(text), &tips); err != nil {
		a.log.Warn("advice payload not a string array", zap.Error(err))
		return Fallback
	}
	if len(tips) == 0 {
		a.log.Warn("advice payload empty")
		return Fallback
	}
	return tips
}

// Readme generates short Markdown README content for a project. Unlike
// Tips this is user-initiated with a visible result, so errors propagate.
func (a *Advisor) Readme(ctx context.Context, title, description string) (string, error) {
	if a == nil {
		return "", fmt.Errorf("advice.Readme: no API key configured")
	}

	prompt := fmt.Sprintf(`Generate a short, professional Markdown README content for a `+
		`project titled %q with this description: %q. Include sections for Features and `+
		`Tech Stack ideas.`, title, description)

	text, err := a.generate(ctx, readmeModel, prompt, false)
	if err != nil {
		a.log.Warn("readme generation failed", zap.String("title", title), zap.Error(err))
		return "", fmt.Errorf("advice.Readme: %w", err)
	}
	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("advice.Readme: empty response")
	}
	return text, nil
}
