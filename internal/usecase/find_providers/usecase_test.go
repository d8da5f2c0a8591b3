package find_providers

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-MatchingService/internal/domain"
	"github.com/m04kA/SMC-MatchingService/internal/service/matching"
	"github.com/m04kA/SMC-MatchingService/pkg/ptr"
	"github.com/m04kA/SMC-MatchingService/pkg/types"
)

// nopLogger заглушка логгера для тестов
type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

// fakeSearcher источник кандидатов с фиксированным ответом
type fakeSearcher struct {
	candidates []domain.ProviderCandidate
	err        error

	calls        int
	gotLat       float64
	gotLon       float64
	gotRadiusMtr float64
}

func (f *fakeSearcher) SearchWithinRadius(_ context.Context, lat, lon, radiusMeters float64) ([]domain.ProviderCandidate, error) {
	f.calls++
	f.gotLat = lat
	f.gotLon = lon
	f.gotRadiusMtr = radiusMeters
	return f.candidates, f.err
}

var testDate = time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC)

func testBooking() *domain.BookingRequest {
	return &domain.BookingRequest{
		ServiceID: "cleaning",
		Date:      testDate,
		TimeSlot: domain.TimeSlot{
			StartTime: types.TimeString("10:00"),
			EndTime:   types.TimeString("12:00"),
		},
		Location: domain.Location{Latitude: 55.7558, Longitude: 37.6173},
	}
}

func testCandidate(id string, distance float64) domain.ProviderCandidate {
	return domain.ProviderCandidate{
		Provider: domain.Provider{
			ID:            id,
			Rating:        4.5,
			CompletedJobs: 50,
			Capabilities: []domain.Capability{
				{ServiceID: "cleaning", SkillLevel: domain.SkillAdvanced},
			},
			Availability: []domain.AvailabilityWindow{
				{Date: testDate, StartTime: "08:00", EndTime: "20:00"},
			},
			MaxTravelDistance: 30,
			Location:          domain.Location{Latitude: 55.76, Longitude: 37.62},
		},
		Distance: distance,
	}
}

func TestExecute_RanksCandidatesFromSearcher(t *testing.T) {
	searcher := &fakeSearcher{
		candidates: []domain.ProviderCandidate{
			testCandidate("far", 25),
			testCandidate("near", 2),
		},
	}
	uc := NewUseCase(searcher, matching.NewService(nopLogger{}), nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{Booking: testBooking()})

	require.NoError(t, err)
	require.Len(t, resp.Matches, 2)
	assert.Equal(t, "near", resp.Matches[0].Provider.ID)
	assert.Equal(t, "far", resp.Matches[1].Provider.ID)
	assert.Equal(t, 2, resp.Candidates)
	assert.Equal(t, 1, searcher.calls)
	assert.InDelta(t, 55.7558, searcher.gotLat, 1e-9)
	assert.InDelta(t, 37.6173, searcher.gotLon, 1e-9)
}

func TestExecute_CandidatesCountsPreFilterSet(t *testing.T) {
	// Кандидат с distance > maxTravelDistance отсекается фильтрами,
	// но учитывается в счетчике кандидатов до фильтрации
	searcher := &fakeSearcher{
		candidates: []domain.ProviderCandidate{
			testCandidate("near", 2),
			testCandidate("mid", 10),
			testCandidate("too-far", 40),
		},
	}
	uc := NewUseCase(searcher, matching.NewService(nopLogger{}), nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{Booking: testBooking()})

	require.NoError(t, err)
	assert.Len(t, resp.Matches, 2)
	assert.Equal(t, 3, resp.Candidates)
}

func TestExecute_DefaultRadiusIs50Miles(t *testing.T) {
	searcher := &fakeSearcher{candidates: []domain.ProviderCandidate{testCandidate("p1", 2)}}
	uc := NewUseCase(searcher, matching.NewService(nopLogger{}), nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{Booking: testBooking()})

	require.NoError(t, err)
	assert.InDelta(t, 80467, searcher.gotRadiusMtr, 1)
}

func TestExecute_RadiusFromOptionsMaxDistance(t *testing.T) {
	searcher := &fakeSearcher{candidates: []domain.ProviderCandidate{testCandidate("p1", 2)}}
	uc := NewUseCase(searcher, matching.NewService(nopLogger{}), nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{
		Booking: testBooking(),
		Options: &domain.MatchingOptions{MaxDistance: ptr.Ptr(10.0)},
	})

	require.NoError(t, err)
	assert.InDelta(t, 16093.4, searcher.gotRadiusMtr, 0.1)
}

func TestExecute_EmptySearchResult(t *testing.T) {
	searcher := &fakeSearcher{candidates: []domain.ProviderCandidate{}}
	uc := NewUseCase(searcher, matching.NewService(nopLogger{}), nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{Booking: testBooking()})

	assert.ErrorIs(t, err, matching.ErrNoProvidersAvailable)
}

func TestExecute_SearcherError(t *testing.T) {
	searcher := &fakeSearcher{err: errors.New("connection refused")}
	uc := NewUseCase(searcher, matching.NewService(nopLogger{}), nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{Booking: testBooking()})

	require.ErrorIs(t, err, matching.ErrMatching)
	assert.Contains(t, err.Error(), "connection refused")
}

func TestExecute_ValidationBeforeSearch(t *testing.T) {
	searcher := &fakeSearcher{candidates: []domain.ProviderCandidate{testCandidate("p1", 2)}}
	uc := NewUseCase(searcher, matching.NewService(nopLogger{}), nopLogger{})

	booking := testBooking()
	booking.TimeSlot.StartTime = "25:99"

	_, err := uc.Execute(context.Background(), &Request{Booking: booking})

	assert.ErrorIs(t, err, matching.ErrInvalidInput)
	assert.Equal(t, 0, searcher.calls, "searcher must not be called for invalid input")
}

func TestExecute_NilRequest(t *testing.T) {
	uc := NewUseCase(&fakeSearcher{}, matching.NewService(nopLogger{}), nopLogger{})

	_, err := uc.Execute(context.Background(), nil)

	assert.ErrorIs(t, err, matching.ErrInvalidInput)
}
