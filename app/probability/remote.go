package probability

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/oddsmith/punt/models"
)

const defaultRemoteTimeout = 5 * time.Second

type predictRequest struct {
	Market  string            `json:"market"`
	Context models.BetContext `json:"context"`
}

type predictResponse struct {
	PModel    float64 `json:"p_model"`
	ModelName string  `json:"model_name"`
}

// RemoteSource asks an external model service for predictions over HTTP.
// The service contract is POST {base}/predict with {market, context} and a
// {p_model, model_name} reply. Failures propagate to the caller; retry and
// fallback policy belong to the service operator, not here.
type RemoteSource struct {
	name   string
	client *resty.Client
}

// NewRemoteSource returns a source backed by the model service at baseURL.
func NewRemoteSource(name, baseURL string, timeout time.Duration) *RemoteSource {
	if name == "" {
		name = "remote"
	}
	if timeout <= 0 {
		timeout = defaultRemoteTimeout
	}

	client := resty.New().
		SetBaseURL(strings.TrimSuffix(baseURL, "/")).
		SetTimeout(timeout).
		SetHeader("Accept", "application/json")

	return &RemoteSource{name: name, client: client}
}

// Name identifies the source.
func (s *RemoteSource) Name() string {
	return s.name
}

// Predict posts the market and context to the model service.
func (s *RemoteSource) Predict(ctx context.Context, market string, betCtx models.BetContext) (Prediction, error) {
	var out predictResponse

	resp, err := s.client.R().
		SetContext(ctx).
		SetBody(predictRequest{Market: market, Context: betCtx}).
		SetResult(&out).
		Post("/predict")
	if err != nil {
		return Prediction{}, fmt.Errorf("model service request failed: %w", err)
	}
	if resp.IsError() {
		return Prediction{}, fmt.Errorf("model service returned %s", resp.Status())
	}

	pred := Prediction{PModel: out.PModel, ModelName: out.ModelName}
	if pred.ModelName == "" {
		pred.ModelName = s.name
	}
	return pred, nil
}
