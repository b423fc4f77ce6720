package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/ridelink/ridelink/internal/pkg/apperrors"
	"github.com/ridelink/ridelink/internal/pkg/models"
	"github.com/ridelink/ridelink/services/match/mocks"
	"github.com/stretchr/testify/assert"
)

func matchConfig() *models.Config {
	return &models.Config{
		Match: models.MatchConfig{RadiusMeters: 1000},
	}
}

func sampleQuery() *models.MatchQuery {
	return &models.MatchQuery{
		Origin:      &models.GeoPoint{Lat: -1.9441, Lng: 30.0619},
		Destination: &models.GeoPoint{Lat: -2.5969, Lng: 29.7389},
		Window: models.TimeWindow{
			Start: time.Date(2024, 6, 11, 6, 0, 0, 0, time.UTC),
			End:   time.Date(2024, 6, 11, 10, 0, 0, 0, time.UTC),
		},
	}
}

func TestFindMatches_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockMatchRepo(ctrl)
	mockGW := mocks.NewMockMatchGW(ctrl)
	uc := NewMatchUC(matchConfig(), mockRepo, mockGW)

	query := sampleQuery()
	rows := []models.MatchCandidate{
		{TripID: "trip-1", DriverID: "driver-1", SeatsAvailable: 3, DistanceMeters: 420},
		{TripID: "trip-2", DriverID: "driver-2", SeatsAvailable: 1, DistanceMeters: 880},
	}

	mockRepo.EXPECT().
		FindMatchingTrips(gomock.Any(), query, 1000.0).
		Return(rows, nil)
	mockGW.EXPECT().
		PublishMatchSearched(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, event models.MatchSearchedEvent) error {
			assert.Equal(t, 2, event.Results)
			assert.Equal(t, -1.9441, event.Origin.Lat)
			return nil
		})

	matches, err := uc.FindMatches(context.Background(), query)

	assert.NoError(t, err)
	assert.Len(t, matches, 2)
	assert.Equal(t, "trip-1", matches[0].TripID)
}

func TestFindMatches_NilQueryIsValidationError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc := NewMatchUC(matchConfig(), mocks.NewMockMatchRepo(ctrl), mocks.NewMockMatchGW(ctrl))

	matches, err := uc.FindMatches(context.Background(), nil)

	assert.Nil(t, matches)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestFindMatches_MissingOriginIsValidationError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc := NewMatchUC(matchConfig(), mocks.NewMockMatchRepo(ctrl), mocks.NewMockMatchGW(ctrl))

	matches, err := uc.FindMatches(context.Background(), &models.MatchQuery{})

	assert.Nil(t, matches)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
	assert.Contains(t, err.Error(), "missing location data")
}

func TestFindMatches_EmptyResultIsNotAnError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockMatchRepo(ctrl)
	mockGW := mocks.NewMockMatchGW(ctrl)
	uc := NewMatchUC(matchConfig(), mockRepo, mockGW)

	// The store returns no rows for an inverted departure window
	query := sampleQuery()
	query.Window.Start, query.Window.End = query.Window.End, query.Window.Start

	mockRepo.EXPECT().
		FindMatchingTrips(gomock.Any(), query, 1000.0).
		Return(nil, nil)
	mockGW.EXPECT().
		PublishMatchSearched(gomock.Any(), gomock.Any()).
		Return(nil)

	matches, err := uc.FindMatches(context.Background(), query)

	assert.NoError(t, err)
	assert.NotNil(t, matches)
	assert.Empty(t, matches)
}

func TestFindMatches_StoreErrorPropagates(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockMatchRepo(ctrl)
	mockGW := mocks.NewMockMatchGW(ctrl)
	uc := NewMatchUC(matchConfig(), mockRepo, mockGW)

	storeErr := fmt.Errorf("%w: find_matching_trips: connection reset", apperrors.ErrStore)
	mockRepo.EXPECT().
		FindMatchingTrips(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, storeErr)

	matches, err := uc.FindMatches(context.Background(), sampleQuery())

	assert.Nil(t, matches)
	assert.ErrorIs(t, err, apperrors.ErrStore)
}

func TestFindMatches_PublishFailureDoesNotFailSearch(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockMatchRepo(ctrl)
	mockGW := mocks.NewMockMatchGW(ctrl)
	uc := NewMatchUC(matchConfig(), mockRepo, mockGW)

	mockRepo.EXPECT().
		FindMatchingTrips(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]models.MatchCandidate{{TripID: "trip-1"}}, nil)
	mockGW.EXPECT().
		PublishMatchSearched(gomock.Any(), gomock.Any()).
		Return(errors.New("nats: connection closed"))

	matches, err := uc.FindMatches(context.Background(), sampleQuery())

	assert.NoError(t, err)
	assert.Len(t, matches, 1)
}
