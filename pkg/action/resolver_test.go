package action

import (
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveSearchIntents(t *testing.T) {
	cases := []struct {
		intentType string
		query      string
		wantPrefix string
	}{
		{"google_search", "golang tutorials", "https://www.google.com/search?q="},
		{"youtube_search", "lo-fi beats", "https://www.youtube.com/results?search_query="},
		{"youtube_play", "bohemian rhapsody", "https://www.youtube.com/results?search_query="},
		{"music_play", "jazz", "https://www.youtube.com/results?search_query="},
		{"video_play", "cat videos", "https://www.youtube.com/results?search_query="},
		{"wikipedia_search", "alan turing", "https://en.wikipedia.org/wiki/Special:Search?search="},
		{"amazon_search", "mechanical keyboard", "https://www.amazon.com/s?k="},
		{"map_search", "coffee near me", "https://www.google.com/maps/search/"},
		{"image_search", "sunsets", "https://www.google.com/search?tbm=isch&q="},
		{"movie_search", "inception", "https://www.imdb.com/find?q="},
	}

	for _, tc := range cases {
		t.Run(tc.intentType, func(t *testing.T) {
			res := Resolve(tc.intentType, tc.query, nil)
			assert.True(t, strings.HasPrefix(res.URL, tc.wantPrefix), "got %q", res.URL)
			assert.True(t, res.RequiresAction())
			assert.Empty(t, res.ResponseOverride)

			// The query must survive an unescape round trip
			escaped := strings.TrimPrefix(res.URL, tc.wantPrefix)
			unescaped, err := url.QueryUnescape(escaped)
			require.NoError(t, err)
			assert.Equal(t, tc.query, unescaped)
		})
	}
}

func TestResolveRecipeSearch(t *testing.T) {
	res := Resolve("recipe_search", "pasta", nil)
	assert.Equal(t, "https://www.google.com/search?q=pasta+recipe", res.URL)
	assert.True(t, res.RequiresAction())
}

func TestResolveOpenIntents(t *testing.T) {
	cases := map[string]string{
		"calculator_open": "https://www.google.com/search?q=calculator",
		"calendar_open":   "https://calendar.google.com",
		"GooglePay_open":  "https://googlepay.google.com",
		"email_open":      "https://mail.google.com",
		"instagram_open":  "https://instagram.com",
		"facebook_open":   "https://facebook.com",
		"twitter_open":    "https://twitter.com",
		"whatsapp_open":   "https://web.whatsapp.com",
		"linkedin_open":   "https://linkedin.com",
		"reddit_open":     "https://reddit.com",
		"discord_open":    "https://discord.com/app",
	}

	for intentType, wantURL := range cases {
		t.Run(intentType, func(t *testing.T) {
			res := Resolve(intentType, "", nil)
			assert.Equal(t, wantURL, res.URL)
			assert.True(t, res.RequiresAction())
		})
	}
}

func TestResolveSettingsOpen(t *testing.T) {
	res := Resolve("settings_open", "", nil)
	assert.Empty(t, res.URL)
	assert.False(t, res.RequiresAction())
	assert.Equal(t, "I can't open system settings directly, but you can access them from your device's settings menu.", res.ResponseOverride)
}

func TestResolveAppOpen(t *testing.T) {
	t.Run("notepad override", func(t *testing.T) {
		res := Resolve("app_open", "", map[string]interface{}{"app": "notepad"})
		assert.Empty(t, res.URL)
		assert.Equal(t, "Opening text editor... (Use your system's text editor)", res.ResponseOverride)
	})

	t.Run("photos override", func(t *testing.T) {
		res := Resolve("app_open", "", map[string]interface{}{"app": "Photos"})
		assert.Equal(t, "Opening photos app... (Use your system's photo viewer)", res.ResponseOverride)
	})

	t.Run("music opens youtube music", func(t *testing.T) {
		res := Resolve("app_open", "", map[string]interface{}{"app": "music"})
		assert.Equal(t, "https://music.youtube.com", res.URL)
	})

	t.Run("maps opens google maps", func(t *testing.T) {
		res := Resolve("app_open", "", map[string]interface{}{"app": "maps"})
		assert.Equal(t, "https://maps.google.com", res.URL)
	})

	t.Run("unknown app gets generic override", func(t *testing.T) {
		res := Resolve("app_open", "", map[string]interface{}{"app": "spotify"})
		assert.Equal(t, "I'll open spotify for you.", res.ResponseOverride)
	})

	t.Run("missing app parameter resolves to nothing", func(t *testing.T) {
		res := Resolve("app_open", "", map[string]interface{}{})
		assert.Empty(t, res.URL)
		assert.Empty(t, res.ResponseOverride)
	})
}

func TestResolveUnmappedIntents(t *testing.T) {
	t.Run("conversational type with query", func(t *testing.T) {
		res := Resolve("greeting", "hello there", nil)
		assert.Empty(t, res.URL)
		assert.False(t, res.RequiresAction())
	})

	t.Run("conversational type without query", func(t *testing.T) {
		res := Resolve("joke", "", nil)
		assert.Empty(t, res.URL)
	})
}

func TestResolveIsPure(t *testing.T) {
	params := map[string]interface{}{"app": "music"}
	first := Resolve("google_search", "pasta recipe", params)
	second := Resolve("google_search", "pasta recipe", params)
	assert.Equal(t, first, second)
	assert.Equal(t, "music", params["app"])
}
