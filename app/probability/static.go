package probability

import (
	"context"
	"fmt"

	"github.com/oddsmith/punt/models"
)

// StaticSource answers every prediction with a fixed probability. It exists
// for development lanes and for exercising the decision pipeline without a
// real model behind it.
type StaticSource struct {
	name   string
	pModel float64
}

// NewStaticSource returns a source pinned at the given probability.
func NewStaticSource(name string, pModel float64) (*StaticSource, error) {
	if name == "" {
		name = "static"
	}
	p := Prediction{PModel: pModel, ModelName: name}
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("static source %q: %w", name, err)
	}
	return &StaticSource{name: name, pModel: pModel}, nil
}

// Name identifies the source.
func (s *StaticSource) Name() string {
	return s.name
}

// Predict returns the fixed probability regardless of market or context.
func (s *StaticSource) Predict(_ context.Context, _ string, _ models.BetContext) (Prediction, error) {
	return Prediction{PModel: s.pModel, ModelName: s.name}, nil
}
