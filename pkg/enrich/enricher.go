package enrich

import (
	"AssistantGolang/pkg/intent"
	"AssistantGolang/pkg/weather"
	"context"
	"fmt"
	"math/rand"
	"regexp"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

// UserContext carries the names interpolated into templated responses.
type UserContext struct {
	UserName      string
	AssistantName string
}

// Func overrides or augments a classified record with locally computed data.
// Implementations mutate rec.Response and rec.Parameters in place.
type Func func(ctx context.Context, rec *intent.Record, command string, uc UserContext)

// Registry maps intent types to their enrichment functions. Types without an
// entry pass through unchanged. New intent types get an entry via Register,
// the dispatch pipeline itself never changes.
type Registry struct {
	handlers map[string]Func
	weather  weather.IWeather
	log      *logrus.Logger
	now      func() time.Time

	mu  sync.Mutex
	rng *rand.Rand
}

func NewRegistry(weatherProvider weather.IWeather, log *logrus.Logger) *Registry {
	return NewRegistryWithClock(weatherProvider, log, rand.New(rand.NewSource(time.Now().UnixNano())), time.Now)
}

// NewRegistryWithClock allows tests to fix the RNG seed and the clock.
func NewRegistryWithClock(weatherProvider weather.IWeather, log *logrus.Logger, rng *rand.Rand, now func() time.Time) *Registry {
	r := &Registry{
		handlers: make(map[string]Func),
		weather:  weatherProvider,
		log:      log,
		now:      now,
		rng:      rng,
	}
	r.registerDefaults()
	return r
}

func (r *Registry) Register(intentType string, fn Func) {
	r.handlers[intentType] = fn
}

// Apply runs the enricher registered for rec.Type. Unknown types are left
// untouched. Enrichment failures degrade the response, never the pipeline.
func (r *Registry) Apply(ctx context.Context, rec *intent.Record, command string, uc UserContext) {
	fn, ok := r.handlers[rec.Type]
	if !ok {
		return
	}
	if rec.Parameters == nil {
		rec.Parameters = map[string]interface{}{}
	}
	fn(ctx, rec, command, uc)
}

// FallbackPhrase returns a random generic phrase for the branch where the
// classifier produced nothing at all.
func (r *Registry) FallbackPhrase() string {
	return r.pick(fallbackPhrases)
}

func (r *Registry) pick(list []string) string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return list[r.rng.Intn(len(list))]
}

var calculationGuard = regexp.MustCompile(`\d+[+\-*/]\d+`)

func (r *Registry) registerDefaults() {
	r.Register("time_current", func(_ context.Context, rec *intent.Record, _ string, _ UserContext) {
		now := r.now()
		rec.Response = fmt.Sprintf("The current time is %s", now.Format("03:04 PM"))
		rec.Parameters["time"] = now.Format("15:04:05")
	})

	r.Register("date_current", func(_ context.Context, rec *intent.Record, _ string, _ UserContext) {
		now := r.now()
		rec.Response = fmt.Sprintf("Today's date is %s", formatOrdinalDate(now))
		rec.Parameters["date"] = now.Format("2006-01-02")
	})

	r.Register("day_current", func(_ context.Context, rec *intent.Record, _ string, _ UserContext) {
		day := r.now().Format("Monday")
		rec.Response = fmt.Sprintf("Today is %s", day)
		rec.Parameters["day"] = day
	})

	r.Register("month_current", func(_ context.Context, rec *intent.Record, _ string, _ UserContext) {
		month := r.now().Format("January")
		rec.Response = fmt.Sprintf("We are in the month of %s", month)
		rec.Parameters["month"] = month
	})

	r.Register("year_current", func(_ context.Context, rec *intent.Record, _ string, _ UserContext) {
		year := r.now().Format("2006")
		rec.Response = fmt.Sprintf("The current year is %s", year)
		rec.Parameters["year"] = year
	})

	r.Register("weather", r.enrichWeather)

	r.Register("fact", func(_ context.Context, rec *intent.Record, _ string, _ UserContext) {
		rec.Response = "Here's an interesting fact: " + r.pick(facts)
	})

	r.Register("joke", func(_ context.Context, rec *intent.Record, _ string, _ UserContext) {
		rec.Response = r.pick(jokes)
	})

	r.Register("quote", func(_ context.Context, rec *intent.Record, _ string, _ UserContext) {
		rec.Response = r.pick(quotes)
	})

	r.Register("definition", func(_ context.Context, rec *intent.Record, _ string, _ UserContext) {
		term := rec.SearchQuery
		if term == "" {
			term = "that term"
		}
		rec.Response = fmt.Sprintf("I would search for the definition of %q for you.", term)
	})

	r.Register("calculation", r.enrichCalculation)

	r.Register("greeting", func(_ context.Context, rec *intent.Record, _ string, uc UserContext) {
		rec.Response = fmt.Sprintf(r.pick(greetings), uc.UserName)
	})

	r.Register("farewell", func(_ context.Context, rec *intent.Record, _ string, _ UserContext) {
		rec.Response = r.pick(farewells)
	})

	r.Register("thanks", func(_ context.Context, rec *intent.Record, _ string, _ UserContext) {
		rec.Response = "You're welcome! I'm happy to help."
	})

	r.Register("self_intro", func(_ context.Context, rec *intent.Record, _ string, uc UserContext) {
		rec.Response = fmt.Sprintf("I'm %s, your personal virtual assistant created by %s. I'm here to help you with tasks, answer questions, and make your day easier!", uc.AssistantName, uc.UserName)
	})

	r.Register("creator_info", func(_ context.Context, rec *intent.Record, _ string, uc UserContext) {
		rec.Response = fmt.Sprintf("I was created by %s. They're the one who brought me to life!", uc.UserName)
	})

	r.Register("capabilities", func(_ context.Context, rec *intent.Record, _ string, _ UserContext) {
		rec.Response = capabilitiesResponse
	})

	r.Register("status_check", func(_ context.Context, rec *intent.Record, _ string, _ UserContext) {
		rec.Response = "I'm doing great, thanks for asking! Ready to help you with anything you need."
	})

	r.Register("help_request", func(_ context.Context, rec *intent.Record, _ string, _ UserContext) {
		rec.Response = helpResponse
	})
}

func (r *Registry) enrichWeather(ctx context.Context, rec *intent.Record, _ string, _ UserContext) {
	location := "your location"
	if loc, ok := rec.Parameters["location"].(string); ok && loc != "" {
		location = loc
	}

	info, err := r.weather.Lookup(ctx, location)
	if err != nil || info == nil {
		if err != nil && r.log != nil {
			r.log.WithFields(logrus.Fields{
				"location": location,
				"error":    err.Error(),
			}).Warn("Weather lookup failed")
		}
		return
	}

	rec.Response = fmt.Sprintf(
		"The weather in %s is %s with a temperature of %s. Humidity is %s and wind speed is %s.",
		info.Location, info.Condition, info.Temperature, info.Humidity, info.Wind,
	)
	rec.Parameters["weatherData"] = info
}

func (r *Registry) enrichCalculation(_ context.Context, rec *intent.Record, command string, _ UserContext) {
	if !calculationGuard.MatchString(command) {
		return
	}

	result, err := Evaluate(command)
	if err != nil {
		rec.Response = "Could not calculate that expression."
		return
	}

	rec.Response = fmt.Sprintf("The result is %s", result)
	rec.Parameters["result"] = result
}

func formatOrdinalDate(t time.Time) string {
	return fmt.Sprintf("%s %s, %d", t.Format("January"), ordinal(t.Day()), t.Year())
}

func ordinal(day int) string {
	suffix := "th"
	switch {
	case day%100 >= 11 && day%100 <= 13:
		suffix = "th"
	case day%10 == 1:
		suffix = "st"
	case day%10 == 2:
		suffix = "nd"
	case day%10 == 3:
		suffix = "rd"
	}
	return fmt.Sprintf("%d%s", day, suffix)
}
