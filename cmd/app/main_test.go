package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tripscore/internal/models/request_models"
	"tripscore/internal/models/response_models"
)

type recordingService struct {
	entities  []request_models.Entity
	itinerary *request_models.ItineraryInfo
}

func (r *recordingService) BuildItinerary(context.Context, string, []request_models.Entity) (request_models.ItineraryInfo, error) {
	return request_models.ItineraryInfo{}, nil
}

func (r *recordingService) ScoreItinerary(_ context.Context, info request_models.ItineraryInfo) (response_models.ScoreResult, error) {
	r.itinerary = &info
	return response_models.ScoreResult{OverallScore: 0.5, Grade: response_models.GradeDecent}, nil
}

func (r *recordingService) ScoreEntities(_ context.Context, _ string, entities []request_models.Entity) (response_models.ScoreResult, error) {
	r.entities = entities
	return response_models.ScoreResult{OverallScore: 0.9, Grade: response_models.GradeExcellent}, nil
}

func writeRequest(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "request.json")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestScoreOnce_Entities(t *testing.T) {
	svc := &recordingService{}
	path := writeRequest(t, `{"text":"Taj Mahal then Agra Fort","entities":[{"text":"Taj Mahal","label":"LOCATION"}]}`)

	var out bytes.Buffer
	require.NoError(t, scoreOnce(context.Background(), path, svc, &out))

	require.Len(t, svc.entities, 1)
	assert.Equal(t, "Taj Mahal", svc.entities[0].Text)
	assert.Nil(t, svc.itinerary)

	var res response_models.ScoreResult
	require.NoError(t, json.Unmarshal(out.Bytes(), &res))
	assert.Equal(t, response_models.GradeExcellent, res.Grade)
}

func TestScoreOnce_Itinerary(t *testing.T) {
	svc := &recordingService{}
	path := writeRequest(t, `{"itinerary":{"visited_places":[{"name":"Hawa Mahal","city":"Jaipur"}]}}`)

	var out bytes.Buffer
	require.NoError(t, scoreOnce(context.Background(), path, svc, &out))

	require.NotNil(t, svc.itinerary)
	require.Len(t, svc.itinerary.VisitedPlaces, 1)
	assert.Equal(t, "Jaipur", svc.itinerary.VisitedPlaces[0].City)
	assert.Contains(t, out.String(), `"grade": "Decent"`)
}

func TestScoreOnce_BadInput(t *testing.T) {
	svc := &recordingService{}

	err := scoreOnce(context.Background(), writeRequest(t, `not json`), svc, &bytes.Buffer{})
	assert.Error(t, err)

	err = scoreOnce(context.Background(), writeRequest(t, `{"entities":[{"text":"","label":"LOCATION"}]}`), svc, &bytes.Buffer{})
	assert.Error(t, err)
	assert.Nil(t, svc.entities)

	err = scoreOnce(context.Background(), filepath.Join(t.TempDir(), "missing.json"), svc, &bytes.Buffer{})
	assert.Error(t, err)
}
