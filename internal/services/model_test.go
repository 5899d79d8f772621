package services

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeWeightsFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "weights.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestNewModelService_MissingFile(t *testing.T) {
	_, err := NewModelService(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestNewModelService_EmptyWeights(t *testing.T) {
	path := writeWeightsFile(t, `{"bias": 1.0, "weights": []}`)
	_, err := NewModelService(path)
	assert.Error(t, err)
}

func TestModelService_Predict(t *testing.T) {
	path := writeWeightsFile(t, `{"bias": 10.0, "weights": [2.0, 3.0, 0.5]}`)
	model, err := NewModelService(path)
	require.NoError(t, err)

	assert.Equal(t, 3, model.FeatureCount())

	// 10 + 2*1 + 3*2 + 0.5*4 = 20
	score, err := model.Predict([]float32{1, 2, 4})
	require.NoError(t, err)
	assert.InDelta(t, 20.0, score, 1e-9)
}

func TestModelService_PredictDimensionMismatch(t *testing.T) {
	path := writeWeightsFile(t, `{"bias": 0, "weights": [1.0, 1.0]}`)
	model, err := NewModelService(path)
	require.NoError(t, err)

	_, err = model.Predict([]float32{1, 2, 3})
	assert.Error(t, err)
}
