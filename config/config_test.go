package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	for _, key := range []string{
		"PORT", "JWT_TTL_HOURS", "TRANSLATION_MODEL",
		"TRANSLATION_TIMEOUT_SECONDS", "TRANSLATING_LANGUAGES",
	} {
		// t.Setenv registers the restore; unset so the fallback applies.
		t.Setenv(key, "")
		os.Unsetenv(key)
	}

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, 24, cfg.JWTTTLHours)
	assert.Equal(t, "gemini-2.5-flash", cfg.TranslationModel)
	assert.Equal(t, 30*time.Second, cfg.TranslationTimeout)
	assert.Equal(t, DefaultLanguages, cfg.TranslatingLanguages)
	assert.Len(t, cfg.TranslatingLanguages, 17)
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("JWT_TTL_HOURS", "1")
	t.Setenv("TRANSLATION_TIMEOUT_SECONDS", "5")
	t.Setenv("TRANSLATING_LANGUAGES", "French, German ,,Spanish")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, 1, cfg.JWTTTLHours)
	assert.Equal(t, 5*time.Second, cfg.TranslationTimeout)
	assert.Equal(t, []string{"French", "German", "Spanish"}, cfg.TranslatingLanguages)
}

func TestGetEnvIntIgnoresGarbage(t *testing.T) {
	t.Setenv("JWT_TTL_HOURS", "not-a-number")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, 24, cfg.JWTTTLHours)
}
