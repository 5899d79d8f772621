package services

import (
	"encoding/json"
	"fmt"
	"os"
)

// ModelService wraps the pre-trained linear scoring model. It satisfies the
// scoring engine's Predictor interface. The weights file is read once at
// startup; if it is absent the service cannot be built and the caller runs
// the whole deployment in fallback scoring mode.
type ModelService interface {
	Predict(features []float32) (float64, error)
	FeatureCount() int
}

type modelWeights struct {
	Bias    float64   `json:"bias"`
	Weights []float64 `json:"weights"`
}

type modelService struct {
	bias    float64
	weights []float64
}

func NewModelService(weightsPath string) (ModelService, error) {
	data, err := os.ReadFile(weightsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read model weights: %w", err)
	}

	var mw modelWeights
	if err := json.Unmarshal(data, &mw); err != nil {
		return nil, fmt.Errorf("failed to parse model weights: %w", err)
	}

	if len(mw.Weights) == 0 {
		return nil, fmt.Errorf("model weights file has no weights")
	}

	return &modelService{
		bias:    mw.Bias,
		weights: mw.Weights,
	}, nil
}

// Predict implements ModelService. The feature vector must match the weight
// vector exactly; a mismatch means the embedding dimensionality changed
// underneath the trained model and the prediction would be garbage.
func (m *modelService) Predict(features []float32) (float64, error) {
	if len(features) != len(m.weights) {
		return 0, fmt.Errorf("feature count mismatch: got %d, model expects %d", len(features), len(m.weights))
	}

	score := m.bias
	for i, w := range m.weights {
		score += w * float64(features[i])
	}

	return score, nil
}

// FeatureCount implements ModelService.
func (m *modelService) FeatureCount() int {
	return len(m.weights)
}
