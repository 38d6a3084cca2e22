package probability

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/oddsmith/punt/models"
)

// MockSource is a mock implementation of the Source interface
type MockSource struct {
	mock.Mock
}

func (m *MockSource) Name() string {
	args := m.Called()
	return args.String(0)
}

func (m *MockSource) Predict(ctx context.Context, market string, betCtx models.BetContext) (Prediction, error) {
	args := m.Called(ctx, market, betCtx)
	pred, _ := args.Get(0).(Prediction)
	return pred, args.Error(1)
}
