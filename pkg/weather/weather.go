package weather

import (
	"context"
	"fmt"
	"math/rand"
	"sync"
	"time"
)

type Info struct {
	Location    string `json:"location"`
	Condition   string `json:"condition"`
	Temperature string `json:"temperature"`
	Humidity    string `json:"humidity"`
	Wind        string `json:"wind"`
}

// IWeather looks up current conditions for a location. The default provider is
// a randomized stand-in that can be swapped for a real weather API.
type IWeather interface {
	Lookup(ctx context.Context, location string) (*Info, error)
}

var conditions = []struct {
	name        string
	temperature string
}{
	{"Sunny", "25°C"},
	{"Cloudy", "20°C"},
	{"Rainy", "15°C"},
	{"Snowy", "0°C"},
	{"Windy", "18°C"},
}

type randomProvider struct {
	mu  sync.Mutex
	rng *rand.Rand
}

func New() IWeather {
	return NewWithSource(rand.New(rand.NewSource(time.Now().UnixNano())))
}

// NewWithSource takes an explicit RNG so tests can pin the forecast.
func NewWithSource(rng *rand.Rand) IWeather {
	return &randomProvider{rng: rng}
}

func (p *randomProvider) Lookup(_ context.Context, location string) (*Info, error) {
	if location == "" {
		location = "your area"
	}

	p.mu.Lock()
	condition := conditions[p.rng.Intn(len(conditions))]
	humidity := p.rng.Intn(30) + 50
	wind := p.rng.Intn(20) + 5
	p.mu.Unlock()

	return &Info{
		Location:    location,
		Condition:   condition.name,
		Temperature: condition.temperature,
		Humidity:    fmt.Sprintf("%d%%", humidity),
		Wind:        fmt.Sprintf("%d km/h", wind),
	}, nil
}
