package translation

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractCleanJSON(t *testing.T) {
	t.Run("Should parse bare JSON", func(t *testing.T) {
		parsed, err := ExtractCleanJSON(`{"bio_title": "Bio"}`)
		require.NoError(t, err)
		assert.Contains(t, parsed, "bio_title")
	})

	t.Run("Should strip a json code fence", func(t *testing.T) {
		raw := "Here is the translation:\n```json\n{\"bio_title\": \"Lebenslauf\"}\n```\nEnjoy!"
		parsed, err := ExtractCleanJSON(raw)
		require.NoError(t, err)

		var title string
		require.NoError(t, json.Unmarshal(parsed["bio_title"], &title))
		assert.Equal(t, "Lebenslauf", title)
	})

	t.Run("Should strip a plain code fence", func(t *testing.T) {
		raw := "```\n{\"skills_title\": \"Habilidades\"}\n```"
		parsed, err := ExtractCleanJSON(raw)
		require.NoError(t, err)
		assert.Contains(t, parsed, "skills_title")
	})

	t.Run("Should repair trailing commas", func(t *testing.T) {
		parsed, err := ExtractCleanJSON(`{"a": 1,}`)
		require.NoError(t, err)
		assert.Contains(t, parsed, "a")
	})

	t.Run("Should repair trailing commas inside fences", func(t *testing.T) {
		raw := "```json\n{\"projects\": [{\"project_name\": \"X\", \"project_description\": \"Y\",},],}\n```"
		parsed, err := ExtractCleanJSON(raw)
		require.NoError(t, err)
		assert.Contains(t, parsed, "projects")
	})

	t.Run("Should fail on non-JSON text", func(t *testing.T) {
		_, err := ExtractCleanJSON("I'm sorry, I cannot translate that.")
		assert.ErrorIs(t, err, ErrBadResponse)
	})

	t.Run("Should fail on empty input", func(t *testing.T) {
		_, err := ExtractCleanJSON("")
		assert.ErrorIs(t, err, ErrBadResponse)
	})
}
