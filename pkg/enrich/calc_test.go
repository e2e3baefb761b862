package enrich

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluate(t *testing.T) {
	t.Run("simple addition", func(t *testing.T) {
		result, err := Evaluate("12+30")
		require.NoError(t, err)
		assert.Equal(t, "42", result)
	})

	t.Run("addition inside a sentence", func(t *testing.T) {
		result, err := Evaluate("what is 12+30")
		require.NoError(t, err)
		assert.Equal(t, "42", result)
	})

	t.Run("operator precedence", func(t *testing.T) {
		result, err := Evaluate("2+3*4")
		require.NoError(t, err)
		assert.Equal(t, "14", result)
	})

	t.Run("parentheses", func(t *testing.T) {
		result, err := Evaluate("(2+3)*4")
		require.NoError(t, err)
		assert.Equal(t, "20", result)
	})

	t.Run("division", func(t *testing.T) {
		result, err := Evaluate("10/4")
		require.NoError(t, err)
		assert.Equal(t, "2.5", result)
	})

	t.Run("whole number division drops decimals", func(t *testing.T) {
		result, err := Evaluate("84/2")
		require.NoError(t, err)
		assert.Equal(t, "42", result)
	})

	t.Run("division by zero", func(t *testing.T) {
		_, err := Evaluate("2/0")
		assert.Error(t, err)
	})

	t.Run("empty expression", func(t *testing.T) {
		_, err := Evaluate("")
		assert.Error(t, err)
	})

	t.Run("letters only", func(t *testing.T) {
		_, err := Evaluate("hello world")
		assert.Error(t, err)
	})

	t.Run("unary minus", func(t *testing.T) {
		result, err := Evaluate("-5+10")
		require.NoError(t, err)
		assert.Equal(t, "5", result)
	})

	t.Run("decimal operands", func(t *testing.T) {
		result, err := Evaluate("1.5*2")
		require.NoError(t, err)
		assert.Equal(t, "3", result)
	})

	t.Run("unbalanced parenthesis", func(t *testing.T) {
		_, err := Evaluate("(2+3")
		assert.Error(t, err)
	})
}
