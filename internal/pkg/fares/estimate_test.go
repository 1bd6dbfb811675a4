package fares

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wakapath/wakapath/app/models"
)

func samplesFromAmounts(amounts ...uint) []models.StepFare {
	samples := make([]models.StepFare, len(amounts))
	for i, a := range amounts {
		samples[i] = models.StepFare{Amount: a}
	}
	return samples
}

func TestFromSamplesFiveValues(t *testing.T) {
	est := FromSamples(samplesFromAmounts(100, 200, 300, 400, 500))
	require.NotNil(t, est)

	assert.Equal(t, uint(200), est.Min)
	assert.Equal(t, uint(500), est.Max)
	assert.Equal(t, 5, est.SampleSize)
	assert.Equal(t, "NGN", est.Currency)
}

func TestFromSamplesTooFew(t *testing.T) {
	assert.Nil(t, FromSamples(nil))
	assert.Nil(t, FromSamples(samplesFromAmounts(100)))
	assert.Nil(t, FromSamples(samplesFromAmounts(100, 900)))
}

func TestFromSamplesUnsortedInput(t *testing.T) {
	est := FromSamples(samplesFromAmounts(500, 100, 400, 200, 300))
	require.NotNil(t, est)

	assert.Equal(t, uint(200), est.Min)
	assert.Equal(t, uint(500), est.Max)
}

func TestFromSamplesExactMinimum(t *testing.T) {
	est := FromSamples(samplesFromAmounts(300, 100, 200))
	require.NotNil(t, est)

	assert.Equal(t, uint(100), est.Min)
	assert.Equal(t, uint(300), est.Max)
	assert.Equal(t, 3, est.SampleSize)
}
