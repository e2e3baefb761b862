package intent

import (
	"AssistantGolang/pkg/gemini"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeGemini struct {
	text  string
	err   error
	calls int
}

func (f *fakeGemini) GenerateText(_ context.Context, _ string) (string, error) {
	f.calls++
	return f.text, f.err
}

func TestParseRecord(t *testing.T) {
	t.Run("strict JSON", func(t *testing.T) {
		rec := ParseRecord(`{"type":"joke","userInput":"tell me a joke","response":"Here it is"}`, "tell me a joke")
		assert.Equal(t, "joke", rec.Type)
		assert.Equal(t, "tell me a joke", rec.UserInput)
		assert.Equal(t, "Here it is", rec.Response)
		assert.NotNil(t, rec.Parameters)
	})

	t.Run("fenced JSON", func(t *testing.T) {
		raw := "```json\n{\"type\":\"google_search\",\"userInput\":\"search cats\",\"response\":\"Searching\",\"searchQuery\":\"cats\"}\n```"
		rec := ParseRecord(raw, "search cats")
		assert.Equal(t, "google_search", rec.Type)
		assert.Equal(t, "cats", rec.SearchQuery)
	})

	t.Run("bare fence without language tag", func(t *testing.T) {
		raw := "```\n{\"type\":\"fact\",\"userInput\":\"x\",\"response\":\"y\"}\n```"
		rec := ParseRecord(raw, "x")
		assert.Equal(t, "fact", rec.Type)
	})

	t.Run("JSON embedded in prose", func(t *testing.T) {
		raw := `Sure! Here is the result: {"type":"weather","userInput":"weather","response":"Sunny"} hope that helps`
		rec := ParseRecord(raw, "weather")
		assert.Equal(t, "weather", rec.Type)
		assert.Equal(t, "Sunny", rec.Response)
	})

	t.Run("extracted JSON with missing fields gets defaults", func(t *testing.T) {
		raw := `prefix {"searchQuery":"cats"} suffix`
		rec := ParseRecord(raw, "find cats")
		assert.Equal(t, TypeGeneral, rec.Type)
		assert.Equal(t, "find cats", rec.UserInput)
		assert.Equal(t, "I understand your request.", rec.Response)
		assert.Equal(t, "cats", rec.SearchQuery)
	})

	t.Run("unparseable text falls back to echo", func(t *testing.T) {
		rec := ParseRecord("I cannot help with that", "turn on the lights")
		assert.Equal(t, TypeGeneral, rec.Type)
		assert.Equal(t, "turn on the lights", rec.UserInput)
		assert.Equal(t, "I heard you say: turn on the lights", rec.Response)
	})

	t.Run("fallback echo is truncated", func(t *testing.T) {
		long := strings.Repeat("a", 150)
		rec := ParseRecord("garbage", long)
		assert.Equal(t, "I heard you say: "+strings.Repeat("a", 100), rec.Response)
		assert.Equal(t, long, rec.UserInput)
	})

	t.Run("strict JSON missing response is repaired", func(t *testing.T) {
		rec := ParseRecord(`{"type":"joke","userInput":"tell me a joke"}`, "tell me a joke")
		assert.Equal(t, "joke", rec.Type)
		assert.Equal(t, "I understand your request.", rec.Response)
	})
}

func TestClassifier(t *testing.T) {
	taxonomy, err := LoadTaxonomy()
	require.NoError(t, err)

	logger := logrus.New()

	t.Run("valid model output", func(t *testing.T) {
		llm := &fakeGemini{text: `{"type":"time_current","userInput":"what time is it","response":"Let me check"}`}
		c := NewClassifier(llm, taxonomy, logger)

		rec, err := c.Classify(context.Background(), "what time is it", "Jarvis", "Alice")
		require.NoError(t, err)
		require.NotNil(t, rec)
		assert.Equal(t, "time_current", rec.Type)
		assert.Equal(t, 1, llm.calls)
	})

	t.Run("quota errors propagate", func(t *testing.T) {
		llm := &fakeGemini{err: gemini.ErrQuotaExceeded}
		c := NewClassifier(llm, taxonomy, logger)

		rec, err := c.Classify(context.Background(), "hello", "Jarvis", "Alice")
		assert.Nil(t, rec)
		assert.ErrorIs(t, err, gemini.ErrQuotaExceeded)
	})

	t.Run("transport errors degrade to nil record", func(t *testing.T) {
		llm := &fakeGemini{err: errors.New("connection reset")}
		c := NewClassifier(llm, taxonomy, logger)

		rec, err := c.Classify(context.Background(), "hello", "Jarvis", "Alice")
		assert.Nil(t, rec)
		assert.NoError(t, err)
	})

	t.Run("garbage output yields fallback record", func(t *testing.T) {
		llm := &fakeGemini{text: "no json here"}
		c := NewClassifier(llm, taxonomy, logger)

		rec, err := c.Classify(context.Background(), "do something", "Jarvis", "Alice")
		require.NoError(t, err)
		require.NotNil(t, rec)
		assert.Equal(t, TypeGeneral, rec.Type)
	})
}

func TestTaxonomy(t *testing.T) {
	taxonomy, err := LoadTaxonomy()
	require.NoError(t, err)

	t.Run("knows core intent types", func(t *testing.T) {
		for _, tag := range []string{
			"time_current", "weather", "google_search", "youtube_play",
			"app_open", "greeting", "calculation", "settings_open",
		} {
			assert.True(t, taxonomy.HasType(tag), "missing type %q", tag)
		}
		assert.False(t, taxonomy.HasType("nonexistent_type"))
	})

	t.Run("prompt carries names, groups and command", func(t *testing.T) {
		prompt := taxonomy.BuildPrompt("what time is it", "Jarvis", "Alice")

		assert.Contains(t, prompt, `"Jarvis"`)
		assert.Contains(t, prompt, "Alice")
		assert.Contains(t, prompt, "ONLY valid JSON")
		assert.Contains(t, prompt, "--- INFORMATION TYPES ---")
		assert.Contains(t, prompt, "RULES:")
		assert.Contains(t, prompt, `Now process: "what time is it"`)
	})

	t.Run("rules interpolate the user name", func(t *testing.T) {
		prompt := taxonomy.BuildPrompt("hi", "Jarvis", "Alice")
		assert.NotContains(t, prompt, "the user by name")
	})
}
