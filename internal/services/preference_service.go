package services

import (
	"context"

	"tripscore/pkg/utils"
)

// PreferenceInferrer turns itinerary text into a preference alignment in [0, 1].
type PreferenceInferrer interface {
	InferPreference(ctx context.Context, text string) (float64, error)
}

var sentimentAlignment = map[utils.SentimentLabel]float64{
	utils.SentimentPositive: 0.8,
	utils.SentimentNeutral:  0.6,
	utils.SentimentNegative: 0.3,
}

// SentimentPreference maps a sentiment label to a fixed alignment value.
type SentimentPreference struct {
	classifier utils.SentimentClassifierInterface
}

func NewSentimentPreference(classifier utils.SentimentClassifierInterface) *SentimentPreference {
	return &SentimentPreference{classifier: classifier}
}

func (s *SentimentPreference) InferPreference(ctx context.Context, text string) (float64, error) {
	label, err := s.classifier.ClassifySentiment(ctx, text)
	if err != nil {
		return 0, err
	}
	if v, ok := sentimentAlignment[label]; ok {
		return v, nil
	}
	return sentimentAlignment[utils.SentimentNeutral], nil
}
