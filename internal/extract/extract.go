package extract

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/centavo/backend/internal/models"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

// ErrExtractionFailed is returned when no candidate transaction could be
// extracted from a message. Chain exhaustion, empty or garbled model
// output and schema violations all wrap this error.
var ErrExtractionFailed = errors.New("could not extract a transaction from the message")

var generationAttempts = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "generation_attempts_total",
		Help: "How many text generation attempts were made, partitioned by model and outcome.",
	},
	[]string{"model", "outcome"},
)

// Candidate is a validated transaction candidate extracted from a
// message. The category name is still unresolved.
type Candidate struct {
	Description  string
	Amount       decimal.Decimal
	Kind         models.TransactionKind
	CategoryName string
}

// Extractor extracts transaction candidates from free-text messages.
type Extractor struct {
	generator Generator
	models    []string
}

// New returns an Extractor that attempts generation against the model
// identifiers in order until one succeeds.
func New(generator Generator, modelNames []string) *Extractor {
	return &Extractor{
		generator: generator,
		models:    modelNames,
	}
}

// Extract runs a single extraction attempt for a message: one prompt,
// one pass through the model fallback chain, one parse. There are no
// retries beyond the chain.
func (e *Extractor) Extract(ctx context.Context, message string, categories []string) (Candidate, error) {
	prompt := buildPrompt(message, categories)

	raw, err := e.generate(ctx, prompt)
	if err != nil {
		return Candidate{}, err
	}

	return parseCandidate(raw)
}

// generate attempts the models of the fallback chain in order and
// returns the output of the first one that succeeds. Attempts are
// strictly sequential to bound cost.
func (e *Extractor) generate(ctx context.Context, prompt string) (string, error) {
	var lastErr error

	for _, model := range e.models {
		raw, err := e.generator.Generate(ctx, model, prompt)
		if err != nil {
			generationAttempts.WithLabelValues(model, "failure").Inc()
			log.Warn().Str("model", model).Err(err).Msg("generation attempt failed")
			lastErr = err
			continue
		}

		generationAttempts.WithLabelValues(model, "success").Inc()
		return raw, nil
	}

	return "", fmt.Errorf("%w: all models failed, last error: %v", ErrExtractionFailed, lastErr)
}

// parseCandidate parses and validates raw model output.
//
// The output is treated as an untyped document checked against an
// explicit schema: all four keys present, amount a non-negative number,
// type one of the recognized kinds. Anything else fails, there are no
// partial candidates.
func parseCandidate(raw string) (Candidate, error) {
	clean := cleanModelJSON(raw)
	if clean == "" {
		return Candidate{}, fmt.Errorf("%w: empty model output", ErrExtractionFailed)
	}

	var doc map[string]any
	if err := json.Unmarshal([]byte(clean), &doc); err != nil {
		return Candidate{}, fmt.Errorf("%w: unmarshal model output: %v", ErrExtractionFailed, err)
	}

	description, err := stringField(doc, "description")
	if err != nil {
		return Candidate{}, err
	}

	categoryName, err := stringField(doc, "category_name")
	if err != nil {
		return Candidate{}, err
	}

	kindString, err := stringField(doc, "type")
	if err != nil {
		return Candidate{}, err
	}

	kind := models.TransactionKind(kindString)
	if !kind.Valid() {
		return Candidate{}, fmt.Errorf("%w: %q is not a valid transaction type", ErrExtractionFailed, kindString)
	}

	amountRaw, ok := doc["amount"]
	if !ok {
		return Candidate{}, fmt.Errorf("%w: missing key %q", ErrExtractionFailed, "amount")
	}

	amountNumber, ok := amountRaw.(float64)
	if !ok {
		return Candidate{}, fmt.Errorf("%w: key %q is %T, want a number", ErrExtractionFailed, "amount", amountRaw)
	}

	amount := decimal.NewFromFloat(amountNumber)
	if amount.IsNegative() {
		return Candidate{}, fmt.Errorf("%w: the amount must not be negative", ErrExtractionFailed)
	}

	return Candidate{
		Description:  description,
		Amount:       amount,
		Kind:         kind,
		CategoryName: categoryName,
	}, nil
}

func stringField(doc map[string]any, key string) (string, error) {
	raw, ok := doc[key]
	if !ok {
		return "", fmt.Errorf("%w: missing key %q", ErrExtractionFailed, key)
	}

	value, ok := raw.(string)
	if !ok {
		return "", fmt.Errorf("%w: key %q is %T, want a string", ErrExtractionFailed, key, raw)
	}

	return value, nil
}

// cleanModelJSON strips Markdown fences and surrounding junk when the
// model ignored the formatting instructions.
func cleanModelJSON(raw string) string {
	s := strings.TrimSpace(raw)

	// Handle ```json ... ``` or ``` ... ``` wrappers.
	if strings.HasPrefix(s, "```") {
		// Drop the first line (``` or ```json).
		if idx := strings.Index(s, "\n"); idx != -1 {
			s = s[idx+1:]
		} else {
			return s
		}
		s = strings.TrimSpace(s)
	}

	// Remove trailing ``` if present.
	if idx := strings.LastIndex(s, "```"); idx != -1 {
		s = s[:idx]
	}

	s = strings.TrimSpace(s)

	// Extra safety: if there is still junk around the JSON object,
	// keep only from the first '{' to the last '}'.
	if start := strings.Index(s, "{"); start != -1 {
		if end := strings.LastIndex(s, "}"); end != -1 && end > start {
			s = strings.TrimSpace(s[start : end+1])
		}
	}

	return s
}
