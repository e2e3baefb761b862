package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewULIDFromTimestamp(t *testing.T) {
	u := New()

	first, err := u.NewULIDFromTimestamp(time.Now())
	require.NoError(t, err)
	assert.Len(t, first, 26)

	second, err := u.NewULIDFromTimestamp(time.Now())
	require.NoError(t, err)
	assert.NotEqual(t, first, second)
}

func TestTruncateCommand(t *testing.T) {
	u := New()

	assert.Equal(t, "hello", u.TruncateCommand("hello", 100))
	assert.Equal(t, "hel", u.TruncateCommand("hello", 3))
	assert.Equal(t, "hello", u.TruncateCommand("hello", 0))
	assert.Equal(t, "", u.TruncateCommand("", 10))
}

func TestValidateImageFile(t *testing.T) {
	u := New()
	assert.Error(t, u.ValidateImageFile(nil))
}
