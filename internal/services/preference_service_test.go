package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"tripscore/pkg/utils"
)

type fixedClassifier struct {
	label utils.SentimentLabel
	err   error
}

func (f fixedClassifier) ClassifySentiment(context.Context, string) (utils.SentimentLabel, error) {
	return f.label, f.err
}

func TestSentimentPreference(t *testing.T) {
	cases := map[utils.SentimentLabel]float64{
		utils.SentimentPositive: 0.8,
		utils.SentimentNeutral:  0.6,
		utils.SentimentNegative: 0.3,
		"mixed":                 0.6,
	}
	for label, want := range cases {
		got, err := NewSentimentPreference(fixedClassifier{label: label}).InferPreference(context.Background(), "text")
		assert.NoError(t, err)
		assert.Equal(t, want, got, string(label))
	}
}

func TestSentimentPreference_Error(t *testing.T) {
	_, err := NewSentimentPreference(fixedClassifier{err: errors.New("boom")}).InferPreference(context.Background(), "text")
	assert.Error(t, err)
}
