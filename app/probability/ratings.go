package probability

import (
	"context"
	"encoding/json"
	"fmt"
	"math"

	"github.com/oddsmith/punt/models"
)

// Context keys the ratings model reads. rating_for and rating_against are
// required; home_edge is optional and added to the offered side's rating.
const (
	ContextKeyRatingFor     = "rating_for"
	ContextKeyRatingAgainst = "rating_against"
	ContextKeyHomeEdge      = "home_edge"
)

const defaultRatingScale = 400.0

// RatingsSource derives a win probability from two power ratings using the
// logistic curve p = 1 / (1 + 10^((against-for)/scale)). A required rating
// missing from the context is a hard failure; it is never defaulted to zero,
// since a zero rating silently skews every downstream stake.
type RatingsSource struct {
	name  string
	scale float64
}

// NewRatingsSource returns a ratings model with the given logistic scale.
// A non-positive scale falls back to the classic 400-point curve.
func NewRatingsSource(name string, scale float64) *RatingsSource {
	if name == "" {
		name = "power-ratings"
	}
	if scale <= 0 {
		scale = defaultRatingScale
	}
	return &RatingsSource{name: name, scale: scale}
}

// Name identifies the source.
func (s *RatingsSource) Name() string {
	return s.name
}

// Predict computes the logistic win probability for the offered side.
func (s *RatingsSource) Predict(_ context.Context, _ string, betCtx models.BetContext) (Prediction, error) {
	ratingFor, err := contextFloat(betCtx, ContextKeyRatingFor)
	if err != nil {
		return Prediction{}, err
	}
	ratingAgainst, err := contextFloat(betCtx, ContextKeyRatingAgainst)
	if err != nil {
		return Prediction{}, err
	}

	if _, ok := betCtx[ContextKeyHomeEdge]; ok {
		edge, err := contextFloat(betCtx, ContextKeyHomeEdge)
		if err != nil {
			return Prediction{}, err
		}
		ratingFor += edge
	}

	diff := ratingAgainst - ratingFor
	p := 1.0 / (1.0 + math.Pow(10, diff/s.scale))

	return Prediction{PModel: p, ModelName: s.name}, nil
}

// contextFloat reads a numeric context value, accepting the types a context
// bundle can arrive with after JSON decoding or jsonb rehydration.
func contextFloat(betCtx models.BetContext, key string) (float64, error) {
	raw, ok := betCtx[key]
	if !ok {
		return 0, fmt.Errorf("context key %q is required", key)
	}

	switch v := raw.(type) {
	case float64:
		return v, nil
	case float32:
		return float64(v), nil
	case int:
		return float64(v), nil
	case int64:
		return float64(v), nil
	case json.Number:
		f, err := v.Float64()
		if err != nil {
			return 0, fmt.Errorf("context key %q is not numeric: %w", key, err)
		}
		return f, nil
	default:
		return 0, fmt.Errorf("context key %q is not numeric (got %T)", key, raw)
	}
}
