package weather

import (
	"context"
	"fmt"
	"math/rand"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookup(t *testing.T) {
	provider := NewWithSource(rand.New(rand.NewSource(7)))

	t.Run("returns one of the known conditions", func(t *testing.T) {
		info, err := provider.Lookup(context.Background(), "London")
		require.NoError(t, err)

		assert.Equal(t, "London", info.Location)
		assert.Contains(t, []string{"Sunny", "Cloudy", "Rainy", "Snowy", "Windy"}, info.Condition)
		assert.Regexp(t, regexp.MustCompile(`^-?\d+°C$`), info.Temperature)
		assert.Regexp(t, regexp.MustCompile(`^\d+%$`), info.Humidity)
		assert.Regexp(t, regexp.MustCompile(`^\d+ km/h$`), info.Wind)
	})

	t.Run("humidity and wind stay in range", func(t *testing.T) {
		for i := 0; i < 50; i++ {
			info, err := provider.Lookup(context.Background(), "Berlin")
			require.NoError(t, err)

			var humidity, wind int
			_, err = fmt.Sscanf(info.Humidity, "%d%%", &humidity)
			require.NoError(t, err)
			_, err = fmt.Sscanf(info.Wind, "%d km/h", &wind)
			require.NoError(t, err)

			assert.GreaterOrEqual(t, humidity, 50)
			assert.Less(t, humidity, 80)
			assert.GreaterOrEqual(t, wind, 5)
			assert.Less(t, wind, 25)
		}
	})

	t.Run("empty location gets a default", func(t *testing.T) {
		info, err := provider.Lookup(context.Background(), "")
		require.NoError(t, err)
		assert.Equal(t, "your area", info.Location)
	})

	t.Run("seeded providers agree", func(t *testing.T) {
		a := NewWithSource(rand.New(rand.NewSource(42)))
		b := NewWithSource(rand.New(rand.NewSource(42)))

		infoA, err := a.Lookup(context.Background(), "Paris")
		require.NoError(t, err)
		infoB, err := b.Lookup(context.Background(), "Paris")
		require.NoError(t, err)

		assert.Equal(t, infoA, infoB)
	})
}
