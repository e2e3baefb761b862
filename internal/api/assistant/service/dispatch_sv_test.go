package assistantService

import (
	"AssistantGolang/internal/api/assistant"
	assistantRepository "AssistantGolang/internal/api/assistant/repository"
	"AssistantGolang/internal/entity"
	"AssistantGolang/pkg/enrich"
	"AssistantGolang/pkg/gemini"
	"AssistantGolang/pkg/intent"
	"AssistantGolang/pkg/response"
	"AssistantGolang/pkg/utils"
	"AssistantGolang/pkg/weather"
	"context"
	"errors"
	"math/rand"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUsers struct {
	user           entity.User
	missing        bool
	lastActiveErr  error
	lastActiveSets int
}

func (f *fakeUsers) GetUserByID(_ context.Context, _ string) (entity.User, error) {
	if f.missing {
		return entity.User{}, assistant.ErrUserNotFound
	}
	return f.user, nil
}

func (f *fakeUsers) UpdateLastActive(_ context.Context, _ string) error {
	f.lastActiveSets++
	return f.lastActiveErr
}

func (f *fakeUsers) UpdateAssistant(_ context.Context, _, _, _ string, _ *entity.Preferences) error {
	return nil
}

type fakeHistory struct {
	entries   []entity.HistoryEntry
	keeps     []int
	appendErr error
}

func (f *fakeHistory) AppendHistory(_ context.Context, entry entity.HistoryEntry, keep int) error {
	if f.appendErr != nil {
		return f.appendErr
	}
	f.entries = append(f.entries, entry)
	f.keeps = append(f.keeps, keep)
	return nil
}

func (f *fakeHistory) GetHistoryByUserID(_ context.Context, _ string, _, _ int) ([]entity.HistoryEntry, int, error) {
	return f.entries, len(f.entries), nil
}

func (f *fakeHistory) ClearHistory(_ context.Context, _ string) error {
	f.entries = nil
	return nil
}

func (f *fakeHistory) GetUsageStats(_ context.Context, _ string) (entity.UsageStats, error) {
	return entity.UsageStats{TotalCommands: len(f.entries)}, nil
}

type fakeShortcuts struct {
	shortcuts []entity.Shortcut
}

func (f *fakeShortcuts) CreateShortcut(_ context.Context, shortcut entity.Shortcut) error {
	f.shortcuts = append(f.shortcuts, shortcut)
	return nil
}

func (f *fakeShortcuts) GetShortcutsByUserID(_ context.Context, _ string) ([]entity.Shortcut, error) {
	return f.shortcuts, nil
}

type fakeRepo struct {
	users     *fakeUsers
	history   *fakeHistory
	shortcuts *fakeShortcuts
}

func (f *fakeRepo) NewClient(_ bool) (assistantRepository.Client, error) {
	return assistantRepository.Client{
		Users:     f.users,
		History:   f.history,
		Shortcuts: f.shortcuts,
		Commit:    func() error { return nil },
		Rollback:  func() error { return nil },
	}, nil
}

type fakeClassifier struct {
	record *intent.Record
	err    error
	calls  int
}

func (f *fakeClassifier) Classify(_ context.Context, _, _, _ string) (*intent.Record, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.record, nil
}

type fixedWeather struct{}

func (fixedWeather) Lookup(_ context.Context, location string) (*weather.Info, error) {
	return &weather.Info{
		Location:    location,
		Condition:   "Sunny",
		Temperature: "25°C",
		Humidity:    "60%",
		Wind:        "10 km/h",
	}, nil
}

type dispatchFixture struct {
	service    IAssistantService
	repo       *fakeRepo
	classifier *fakeClassifier
}

func newDispatchFixture(t *testing.T, classifier *fakeClassifier, config Config) *dispatchFixture {
	t.Helper()

	repo := &fakeRepo{
		users: &fakeUsers{user: entity.User{
			ID:            "user-1",
			Name:          "Alice",
			AssistantName: "Jarvis",
		}},
		history:   &fakeHistory{},
		shortcuts: &fakeShortcuts{},
	}

	logger := logrus.New()
	enrichers := enrich.NewRegistryWithClock(
		fixedWeather{},
		logger,
		rand.New(rand.NewSource(1)),
		func() time.Time { return time.Date(2024, time.March, 21, 15, 4, 5, 0, time.UTC) },
	)

	svc := New(logger, repo, classifier, enrichers, nil, utils.New(), config)

	return &dispatchFixture{service: svc, repo: repo, classifier: classifier}
}

func defaultConfig() Config {
	return Config{HistoryLimit: 50}
}

func statusOf(t *testing.T, err error) int {
	t.Helper()
	var respErr *response.Error
	require.ErrorAs(t, err, &respErr)
	return respErr.Code
}

func TestAskEmptyCommand(t *testing.T) {
	classifier := &fakeClassifier{}
	fx := newDispatchFixture(t, classifier, defaultConfig())

	resp, err := fx.service.Ask(context.Background(), "user-1", "   ")

	require.NotNil(t, resp)
	assert.Equal(t, 400, statusOf(t, err))
	assert.Equal(t, intent.TypeError, resp.Type)
	assert.Equal(t, "Please provide a command.", resp.Response)
	assert.Zero(t, classifier.calls)
	assert.Empty(t, fx.repo.history.entries)
}

func TestAskUnknownUser(t *testing.T) {
	classifier := &fakeClassifier{}
	fx := newDispatchFixture(t, classifier, defaultConfig())
	fx.repo.users.missing = true

	resp, err := fx.service.Ask(context.Background(), "ghost", "what time is it")

	require.NotNil(t, resp)
	assert.Equal(t, 404, statusOf(t, err))
	assert.Equal(t, intent.TypeAuthError, resp.Type)
	assert.Zero(t, classifier.calls)
}

func TestAskQuotaExceeded(t *testing.T) {
	classifier := &fakeClassifier{err: gemini.ErrQuotaExceeded}
	fx := newDispatchFixture(t, classifier, defaultConfig())

	resp, err := fx.service.Ask(context.Background(), "user-1", "tell me a joke")

	require.NotNil(t, resp)
	assert.Equal(t, 429, statusOf(t, err))
	assert.Equal(t, intent.TypeQuotaError, resp.Type)
	assert.Empty(t, fx.repo.history.entries)
}

func TestAskTimeCurrent(t *testing.T) {
	classifier := &fakeClassifier{record: &intent.Record{
		Type:       "time_current",
		UserInput:  "what time is it",
		Response:   "Let me check the time",
		Parameters: map[string]interface{}{},
	}}
	fx := newDispatchFixture(t, classifier, defaultConfig())

	resp, err := fx.service.Ask(context.Background(), "user-1", "what time is it")
	require.NoError(t, err)
	require.NotNil(t, resp)

	assert.Equal(t, "time_current", resp.Type)
	assert.Equal(t, "The current time is 03:04 PM", resp.Response)
	assert.Equal(t, "15:04:05", resp.Parameters["time"])
	assert.False(t, resp.RequiresAction)
	assert.Empty(t, resp.ActionURL)
	assert.Equal(t, "Jarvis", resp.AssistantName)
	assert.Equal(t, 1, fx.repo.users.lastActiveSets)

	_, parseErr := time.Parse(time.RFC3339, resp.Timestamp)
	assert.NoError(t, parseErr)

	require.Len(t, fx.repo.history.entries, 1)
	entry := fx.repo.history.entries[0]
	assert.Equal(t, "user-1", entry.UserID)
	assert.Equal(t, "what time is it", entry.Command)
	assert.Equal(t, "The current time is 03:04 PM", entry.Response)
	assert.False(t, entry.ActionTaken)
	assert.Equal(t, []int{50}, fx.repo.history.keeps)
}

func TestAskSearchIntent(t *testing.T) {
	classifier := &fakeClassifier{record: &intent.Record{
		Type:        "google_search",
		UserInput:   "search for pasta recipe",
		Response:    "Searching Google for pasta recipe",
		SearchQuery: "pasta recipe",
		Parameters:  map[string]interface{}{},
	}}
	fx := newDispatchFixture(t, classifier, defaultConfig())

	resp, err := fx.service.Ask(context.Background(), "user-1", "search for pasta recipe")
	require.NoError(t, err)

	assert.Equal(t, "https://www.google.com/search?q=pasta+recipe", resp.ActionURL)
	assert.True(t, resp.RequiresAction)
	assert.Equal(t, "Searching Google for pasta recipe", resp.Response)

	require.Len(t, fx.repo.history.entries, 1)
	assert.True(t, fx.repo.history.entries[0].ActionTaken)
	assert.Equal(t, "pasta recipe", fx.repo.history.entries[0].SearchQuery)
}

func TestAskSettingsOpenOverride(t *testing.T) {
	classifier := &fakeClassifier{record: &intent.Record{
		Type:       "settings_open",
		UserInput:  "open settings",
		Response:   "Opening settings",
		Parameters: map[string]interface{}{},
	}}
	fx := newDispatchFixture(t, classifier, defaultConfig())

	resp, err := fx.service.Ask(context.Background(), "user-1", "open settings")
	require.NoError(t, err)

	assert.Empty(t, resp.ActionURL)
	assert.False(t, resp.RequiresAction)
	assert.Equal(t, "I can't open system settings directly, but you can access them from your device's settings menu.", resp.Response)
}

func TestAskDegradedClassifier(t *testing.T) {
	t.Run("default config skips history", func(t *testing.T) {
		classifier := &fakeClassifier{}
		fx := newDispatchFixture(t, classifier, defaultConfig())

		resp, err := fx.service.Ask(context.Background(), "user-1", "do something odd")
		require.NoError(t, err)

		assert.Equal(t, intent.TypeGeneral, resp.Type)
		assert.NotEmpty(t, resp.Response)
		assert.Equal(t, "Jarvis", resp.AssistantName)
		assert.Empty(t, fx.repo.history.entries)
	})

	t.Run("opt-in records the exchange", func(t *testing.T) {
		classifier := &fakeClassifier{}
		fx := newDispatchFixture(t, classifier, Config{HistoryLimit: 50, LogDegradedHistory: true})

		resp, err := fx.service.Ask(context.Background(), "user-1", "do something odd")
		require.NoError(t, err)
		require.NotNil(t, resp)

		require.Len(t, fx.repo.history.entries, 1)
		assert.Equal(t, intent.TypeGeneral, fx.repo.history.entries[0].Type)
	})
}

func TestAskHistoryFailure(t *testing.T) {
	classifier := &fakeClassifier{record: &intent.Record{
		Type:       "joke",
		UserInput:  "tell me a joke",
		Response:   "placeholder",
		Parameters: map[string]interface{}{},
	}}
	fx := newDispatchFixture(t, classifier, defaultConfig())
	fx.repo.history.appendErr = errors.New("disk full")

	resp, err := fx.service.Ask(context.Background(), "user-1", "tell me a joke")

	require.NotNil(t, resp)
	assert.Equal(t, 500, statusOf(t, err))
	assert.Equal(t, intent.TypeError, resp.Type)
	assert.Equal(t, "An unexpected error occurred. Please try again.", resp.Response)
}

func TestAskLastActiveFailureIsBestEffort(t *testing.T) {
	classifier := &fakeClassifier{record: &intent.Record{
		Type:       "status_check",
		UserInput:  "how are you",
		Response:   "placeholder",
		Parameters: map[string]interface{}{},
	}}
	fx := newDispatchFixture(t, classifier, defaultConfig())
	fx.repo.users.lastActiveErr = errors.New("timeout")

	resp, err := fx.service.Ask(context.Background(), "user-1", "how are you")
	require.NoError(t, err)
	assert.Equal(t, "I'm doing great, thanks for asking! Ready to help you with anything you need.", resp.Response)
}
