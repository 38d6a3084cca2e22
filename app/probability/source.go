// Package probability provides the model collaborators the betting agent
// consults for win/cover probabilities. Sources are opaque to the engine:
// they receive a market lane and the offer's context bundle and answer with
// a probability and the name of the model that produced it.
package probability

import (
	"context"
	"fmt"
	"math"

	"github.com/oddsmith/punt/models"
)

// Prediction is a single probability estimate for one side of a market offer.
type Prediction struct {
	PModel    float64 `json:"p_model"`
	ModelName string  `json:"model_name"`
}

// Validate enforces the collaborator contract: the probability must be a
// real number in [0, 1].
func (p Prediction) Validate() error {
	if math.IsNaN(p.PModel) || math.IsInf(p.PModel, 0) || p.PModel < 0 || p.PModel > 1 {
		return fmt.Errorf("%w: got %v", models.ErrInvalidProbability, p.PModel)
	}
	return nil
}

// Source produces probability estimates for a market lane. Implementations
// may perform I/O; the context carries the caller's deadline across that
// boundary. Errors are propagated to the agent unchanged and are never
// retried there.
type Source interface {
	// Name identifies the source for logging and as the fallback model name.
	Name() string

	// Predict returns the model probability for the side described by the
	// offer context. The context bundle is read-only to the source.
	Predict(ctx context.Context, market string, betCtx models.BetContext) (Prediction, error)
}
