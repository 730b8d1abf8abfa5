package advice

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/trackwise/trackwise/pkg/domain"
)

func testLogger() *zap.Logger {
	return zap.NewNop()
}

// stubAdvisor returns an advisor whose model call is replaced by fn.
func stubAdvisor(fn func(model, prompt string) (string, error)) *Advisor {
	return &Advisor{
		log: testLogger(),
		generate: func(_ context.Context, model, prompt string, _ bool) (string, error) {
			return fn(model, prompt)
		},
	}
}

func TestTipsParsesArray(t *testing.T) {
	a := stubAdvisor(func(model, prompt string) (string, error) {
		assert.Equal(t, tipsModel, model)
		assert.Contains(t, prompt, "project")
		return `["Ship a demo.","Write the README.","Ask for feedback."]`, nil
	})

	tips := a.Tips(context.Background(), "2 projects, 1 hackathon", domain.KindProject)
	require.Len(t, tips, 3)
	assert.Equal(t, "Ship a demo.", tips[0])
}

func TestTipsFallbackOnTransportError(t *testing.T) {
	a := stubAdvisor(func(string, string) (string, error) {
		return "", fmt.Errorf("network unreachable")
	})

	tips := a.Tips(context.Background(), "ctx", domain.KindHackathon)
	assert.Equal(t, Fallback, tips, "failure must yield exactly the fixed fallback list")
}

func TestTipsFallbackOnMalformedPayload(t *testing.T) {
	payloads := []string{
		`{"tips": ["nope"]}`, // object, not array
		`not json at all`,
		`[1, 2, 3]`, // array of the wrong element type
	}
	for _, payload := range payloads {
		a := stubAdvisor(func(string, string) (string, error) { return payload, nil })
		assert.Equal(t, Fallback, a.Tips(context.Background(), "ctx", domain.KindInternship),
			"payload %q must fall back", payload)
	}
}

func TestTipsFallbackOnEmptyArray(t *testing.T) {
	a := stubAdvisor(func(string, string) (string, error) { return `[]`, nil })
	assert.Equal(t, Fallback, a.Tips(context.Background(), "ctx", domain.KindProject),
		"an empty tip list is never shown")
}

func TestTipsNilAdvisor(t *testing.T) {
	var a *Advisor
	assert.Equal(t, Fallback, a.Tips(context.Background(), "ctx", domain.KindProject))
}

func TestReadme(t *testing.T) {
	a := stubAdvisor(func(model, prompt string) (string, error) {
		assert.Equal(t, readmeModel, model)
		assert.Contains(t, prompt, "trackwise")
		return "# trackwise\n\nA tracker.", nil
	})

	md, err := a.Readme(context.Background(), "trackwise", "terminal tracker")
	require.NoError(t, err)
	assert.Contains(t, md, "# trackwise")
}

func TestReadmeErrorsPropagate(t *testing.T) {
	a := stubAdvisor(func(string, string) (string, error) {
		return "", fmt.Errorf("quota exceeded")
	})

	_, err := a.Readme(context.Background(), "t", "d")
	assert.Error(t, err)

	var nilAdvisor *Advisor
	_, err = nilAdvisor.Readme(context.Background(), "t", "d")
	assert.Error(t, err, "readme generation needs a configured advisor")
}

func TestNewRequiresKey(t *testing.T) {
	_, err := New(context.Background(), "", nil)
	assert.Error(t, err)
}
