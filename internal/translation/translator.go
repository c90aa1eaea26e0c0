package translation

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"go-cv-backend/internal/domain"
	"go-cv-backend/pkg/logger"
)

var (
	// ErrServiceFailure marks a failed call to the text-generation service.
	ErrServiceFailure = errors.New("translation service call failed")
	// ErrBadResponse marks a response that could not be parsed as JSON even
	// after cleanup.
	ErrBadResponse = errors.New("translation response is not valid JSON")
)

const translatorInstructions = "You are a professional translator."

// Options configures the translation pipeline.
type Options struct {
	// Timeout bounds each translation call so a slow model cannot hold a
	// request open indefinitely.
	Timeout time.Duration
}

// Translator rewrites the whitelisted CV display strings into a target
// language via a Generator.
type Translator struct {
	gen     Generator
	timeout time.Duration
}

func NewTranslator(gen Generator, opts Options) *Translator {
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Translator{gen: gen, timeout: timeout}
}

// TranslateContext runs the full pipeline: serialize the whitelist, call the
// service, extract JSON from the response and merge the translated keys onto
// a copy of the context. The input context is never modified.
func (t *Translator) TranslateContext(ctx context.Context, language string, dc *domain.DisplayContext) (*domain.DisplayContext, error) {
	content := ContentFromContext(dc)
	payload, err := json.MarshalIndent(content, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to serialize CV content: %w", err)
	}

	prompt := fmt.Sprintf(
		"You are a professional translator.\n"+
			"Translate the following JSON to %s.\n"+
			"Return only valid JSON without comments or extra text.\n\n%s",
		language, payload,
	)

	callCtx, cancel := context.WithTimeout(ctx, t.timeout)
	defer cancel()

	raw, err := t.gen.Generate(callCtx, translatorInstructions, prompt)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrServiceFailure, err)
	}

	parsed, err := ExtractCleanJSON(raw)
	if err != nil {
		logger.Log.Error("Failed to parse translation response",
			"language", language, "error", err, "raw", raw)
		return nil, err
	}

	return MergeIntoContext(dc, parsed), nil
}
