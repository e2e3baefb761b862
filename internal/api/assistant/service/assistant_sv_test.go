package assistantService

import (
	"AssistantGolang/internal/api/assistant"
	"AssistantGolang/internal/entity"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetCurrentUser(t *testing.T) {
	fx := newDispatchFixture(t, &fakeClassifier{}, defaultConfig())
	fx.repo.users.user.Password = "hashed"

	user, err := fx.service.GetCurrentUser(context.Background(), "user-1")
	require.NoError(t, err)

	assert.Equal(t, "Alice", user.Name)
	assert.Empty(t, user.Password)
}

func TestGetHistory(t *testing.T) {
	fx := newDispatchFixture(t, &fakeClassifier{}, defaultConfig())
	fx.repo.history.entries = []entity.HistoryEntry{
		{ID: "1", Command: "hello"},
		{ID: "2", Command: "what time is it"},
	}

	entries, total, err := fx.service.GetHistory(context.Background(), "user-1", 0, 500)
	require.NoError(t, err)

	assert.Len(t, entries, 2)
	assert.Equal(t, 2, total)
}

func TestClearHistory(t *testing.T) {
	fx := newDispatchFixture(t, &fakeClassifier{}, defaultConfig())
	fx.repo.history.entries = []entity.HistoryEntry{{ID: "1"}}

	require.NoError(t, fx.service.ClearHistory(context.Background(), "user-1"))
	assert.Empty(t, fx.repo.history.entries)
}

func TestGetUsageStats(t *testing.T) {
	lastActive := time.Date(2024, time.March, 21, 12, 0, 0, 0, time.UTC)

	fx := newDispatchFixture(t, &fakeClassifier{}, defaultConfig())
	fx.repo.users.user.LastActive = lastActive
	fx.repo.history.entries = []entity.HistoryEntry{{ID: "1"}, {ID: "2"}, {ID: "3"}}

	stats, err := fx.service.GetUsageStats(context.Background(), "user-1")
	require.NoError(t, err)

	assert.Equal(t, 3, stats.TotalCommands)
	assert.Equal(t, lastActive, stats.LastActive)
}

func TestShortcuts(t *testing.T) {
	fx := newDispatchFixture(t, &fakeClassifier{}, defaultConfig())

	err := fx.service.AddShortcut(context.Background(), "user-1", assistant.AddShortcutRequest{
		Keyword: "news",
		Action:  "open_url",
		URL:     "https://news.ycombinator.com",
	})
	require.NoError(t, err)

	shortcuts, err := fx.service.GetShortcuts(context.Background(), "user-1")
	require.NoError(t, err)

	require.Len(t, shortcuts, 1)
	assert.Equal(t, "news", shortcuts[0].Keyword)
	assert.Equal(t, "user-1", shortcuts[0].UserID)
	assert.NotEmpty(t, shortcuts[0].ID)
}

func TestUpdateAssistantWithoutImage(t *testing.T) {
	fx := newDispatchFixture(t, &fakeClassifier{}, defaultConfig())

	user, err := fx.service.UpdateAssistant(context.Background(), "user-1", assistant.UpdateAssistantRequest{
		AssistantName: "Friday",
	}, nil)
	require.NoError(t, err)

	assert.Equal(t, "Alice", user.Name)
	assert.Empty(t, user.Password)
}
