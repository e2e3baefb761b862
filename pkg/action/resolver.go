package action

import (
	"fmt"
	"net/url"
	"strings"
)

// Resolution is the outcome of mapping an intent to an external URL. A
// non-empty ResponseOverride replaces the spoken response (some intents
// explain themselves instead of opening anything).
type Resolution struct {
	URL              string
	ResponseOverride string
}

// RequiresAction reports whether the client should open a URL.
func (r Resolution) RequiresAction() bool {
	return r.URL != ""
}

var searchURLTemplates = map[string]string{
	"google_search":    "https://www.google.com/search?q=%s",
	"youtube_search":   "https://www.youtube.com/results?search_query=%s",
	"youtube_play":     "https://www.youtube.com/results?search_query=%s",
	"music_play":       "https://www.youtube.com/results?search_query=%s",
	"video_play":       "https://www.youtube.com/results?search_query=%s",
	"wikipedia_search": "https://en.wikipedia.org/wiki/Special:Search?search=%s",
	"amazon_search":    "https://www.amazon.com/s?k=%s",
	"map_search":       "https://www.google.com/maps/search/%s",
	"image_search":     "https://www.google.com/search?tbm=isch&q=%s",
	"recipe_search":    "https://www.google.com/search?q=%s+recipe",
	"movie_search":     "https://www.imdb.com/find?q=%s",
}

var openURLs = map[string]string{
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

// Resolve maps an intent type plus its extracted query or parameters to the
// URL the client should open. Pure function of its inputs.
func Resolve(intentType, searchQuery string, parameters map[string]interface{}) Resolution {
	if searchQuery != "" {
		template, ok := searchURLTemplates[intentType]
		if !ok {
			return Resolution{}
		}
		return Resolution{URL: fmt.Sprintf(template, url.QueryEscape(searchQuery))}
	}

	if target, ok := openURLs[intentType]; ok {
		return Resolution{URL: target}
	}

	switch intentType {
	case "settings_open":
		return Resolution{
			ResponseOverride: "I can't open system settings directly, but you can access them from your device's settings menu.",
		}
	case "app_open":
		return resolveAppOpen(parameters)
	}

	return Resolution{}
}

func resolveAppOpen(parameters map[string]interface{}) Resolution {
	app, _ := parameters["app"].(string)
	if app == "" {
		return Resolution{}
	}

	switch strings.ToLower(app) {
	case "notepad":
		return Resolution{ResponseOverride: "Opening text editor... (Use your system's text editor)"}
	case "photos":
		return Resolution{ResponseOverride: "Opening photos app... (Use your system's photo viewer)"}
	case "music":
		return Resolution{URL: "https://music.youtube.com"}
	case "maps":
		return Resolution{URL: "https://maps.google.com"}
	default:
		return Resolution{ResponseOverride: fmt.Sprintf("I'll open %s for you.", app)}
	}
}
