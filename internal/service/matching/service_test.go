package matching

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-MatchingService/internal/domain"
	"github.com/m04kA/SMC-MatchingService/pkg/ptr"
	"github.com/m04kA/SMC-MatchingService/pkg/types"
)

// nopLogger заглушка логгера для тестов
type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

var testDate = time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC)

// testRequest запрос из центра Москвы на уборку 10:00-12:00
func testRequest() *domain.BookingRequest {
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

// testProvider доступный весь день исполнитель рядом с точкой запроса
func testProvider(id string, rating float64, jobs int, skill domain.SkillLevel) domain.Provider {
	return domain.Provider{
		ID:            id,
		Rating:        rating,
		CompletedJobs: jobs,
		Capabilities: []domain.Capability{
			{ServiceID: "cleaning", SkillLevel: skill},
		},
		Availability: []domain.AvailabilityWindow{
			{Date: testDate, StartTime: "08:00", EndTime: "20:00"},
		},
		MaxTravelDistance: 30,
		Location:          domain.Location{Latitude: 55.76, Longitude: 37.62},
	}
}

func TestFindMatches_Determinism(t *testing.T) {
	svc := NewService(nopLogger{})
	providers := []domain.Provider{
		testProvider("p1", 4.5, 50, domain.SkillAdvanced),
		testProvider("p2", 4.5, 50, domain.SkillAdvanced),
		testProvider("p3", 3.9, 120, domain.SkillExpert),
	}

	first, err := svc.FindMatches(context.Background(), providers, testRequest(), nil)
	require.NoError(t, err)

	for i := 0; i < 5; i++ {
		again, err := svc.FindMatches(context.Background(), providers, testRequest(), nil)
		require.NoError(t, err)
		require.Equal(t, len(first), len(again))
		for j := range first {
			assert.Equal(t, first[j].Provider.ID, again[j].Provider.ID)
			assert.Equal(t, first[j].MatchScore, again[j].MatchScore)
		}
	}
}

func TestFindMatches_ScoreBounds(t *testing.T) {
	svc := NewService(nopLogger{})
	providers := []domain.Provider{
		testProvider("p1", 5.0, 1000, domain.SkillExpert),
		testProvider("p2", 3.0, 10, domain.SkillBeginner),
		testProvider("p3", 4.2, 77, domain.SkillIntermediate),
	}

	matches, err := svc.FindMatches(context.Background(), providers, testRequest(), nil)
	require.NoError(t, err)

	for _, m := range matches {
		assert.GreaterOrEqual(t, m.MatchScore, 0.0)
		assert.LessOrEqual(t, m.MatchScore, 100.0)
		for _, score := range []float64{m.Scores.Distance, m.Scores.Rating, m.Scores.Experience, m.Scores.SkillLevel} {
			assert.GreaterOrEqual(t, score, 0.0)
			assert.LessOrEqual(t, score, 100.0)
		}
	}
}

func TestFindMatches_FiltersByRating(t *testing.T) {
	svc := NewService(nopLogger{})
	providers := []domain.Provider{
		testProvider("low", 2.5, 50, domain.SkillExpert), // ниже дефолтного минимума 3
		testProvider("ok", 4.0, 50, domain.SkillExpert),
	}

	matches, err := svc.FindMatches(context.Background(), providers, testRequest(), nil)
	require.NoError(t, err)

	require.Len(t, matches, 1)
	assert.Equal(t, "ok", matches[0].Provider.ID)
}

func TestFindMatches_FiltersByCapability(t *testing.T) {
	svc := NewService(nopLogger{})

	plumber := testProvider("plumber", 4.8, 300, domain.SkillExpert)
	plumber.Capabilities = []domain.Capability{{ServiceID: "plumbing", SkillLevel: domain.SkillExpert}}

	providers := []domain.Provider{
		plumber,
		testProvider("cleaner", 4.0, 50, domain.SkillAdvanced),
	}

	matches, err := svc.FindMatches(context.Background(), providers, testRequest(), nil)
	require.NoError(t, err)

	require.Len(t, matches, 1)
	assert.Equal(t, "cleaner", matches[0].Provider.ID)
}

func TestFindMatches_RequiredSkillLevel(t *testing.T) {
	svc := NewService(nopLogger{})
	providers := []domain.Provider{
		testProvider("novice", 4.5, 80, domain.SkillBeginner),
		testProvider("pro", 4.5, 80, domain.SkillAdvanced),
		testProvider("master", 4.5, 80, domain.SkillExpert),
	}

	opts := &domain.MatchingOptions{RequiredSkillLevel: ptr.Ptr(domain.SkillExpert)}

	matches, err := svc.FindMatches(context.Background(), providers, testRequest(), opts)
	require.NoError(t, err)

	require.Len(t, matches, 1)
	assert.Equal(t, "master", matches[0].Provider.ID)
}

func TestFindMatches_ExcludedProviders(t *testing.T) {
	svc := NewService(nopLogger{})
	providers := []domain.Provider{
		testProvider("p1", 4.5, 80, domain.SkillAdvanced),
		testProvider("p2", 4.5, 80, domain.SkillAdvanced),
		testProvider("p3", 4.5, 80, domain.SkillAdvanced),
	}

	req := testRequest()
	req.ExcludedProviders = []string{"p1", "p3"}

	matches, err := svc.FindMatches(context.Background(), providers, req, nil)
	require.NoError(t, err)

	require.Len(t, matches, 1)
	assert.Equal(t, "p2", matches[0].Provider.ID)
}

func TestFindMatches_PreferredOverridesScore(t *testing.T) {
	svc := NewService(nopLogger{})

	// weak проигрывает по всем факторам, но предпочтён клиентом
	weak := testProvider("weak", 3.2, 15, domain.SkillBeginner)
	strong := testProvider("strong", 5.0, 500, domain.SkillExpert)

	req := testRequest()
	req.PreferredProviders = []string{"weak"}

	matches, err := svc.FindMatches(context.Background(), []domain.Provider{strong, weak}, req, nil)
	require.NoError(t, err)

	require.Len(t, matches, 2)
	assert.Equal(t, "weak", matches[0].Provider.ID)
	assert.Equal(t, "strong", matches[1].Provider.ID)
	// Балл при этом не меняется
	assert.Less(t, matches[0].MatchScore, matches[1].MatchScore)
}

func TestFindMatches_DistanceMonotonicity(t *testing.T) {
	svc := NewService(nopLogger{})

	near := testProvider("near", 4.0, 50, domain.SkillAdvanced)
	near.Location = domain.Location{Latitude: 55.76, Longitude: 37.62}

	far := testProvider("far", 4.0, 50, domain.SkillAdvanced)
	far.Location = domain.Location{Latitude: 55.90, Longitude: 37.62}

	matches, err := svc.FindMatches(context.Background(), []domain.Provider{far, near}, testRequest(), nil)
	require.NoError(t, err)

	require.Len(t, matches, 2)
	assert.Equal(t, "near", matches[0].Provider.ID)
	assert.Greater(t, matches[0].Scores.Distance, matches[1].Scores.Distance)
}

func TestFindMatches_MaxTravelDistanceBinds(t *testing.T) {
	svc := NewService(nopLogger{})

	// Исполнитель в ~10 милях, но с радиусом выезда 5 миль
	homebody := testProvider("homebody", 4.5, 80, domain.SkillAdvanced)
	homebody.Location = domain.Location{Latitude: 55.90, Longitude: 37.62}
	homebody.MaxTravelDistance = 5

	_, err := svc.FindMatches(context.Background(), []domain.Provider{homebody}, testRequest(), nil)
	assert.ErrorIs(t, err, ErrNoProvidersAvailable)
}

func TestFindMatches_OptionsMaxDistanceBinds(t *testing.T) {
	svc := NewService(nopLogger{})

	// Радиус выезда позволяет, но лимит запроса строже
	p := testProvider("p1", 4.5, 80, domain.SkillAdvanced)
	p.Location = domain.Location{Latitude: 55.90, Longitude: 37.62} // ~10 миль

	opts := &domain.MatchingOptions{MaxDistance: ptr.Ptr(3.0)}

	_, err := svc.FindMatches(context.Background(), []domain.Provider{p}, testRequest(), opts)
	assert.ErrorIs(t, err, ErrNoProvidersAvailable)
}

func TestFindMatches_NoProvidersAvailable(t *testing.T) {
	svc := NewService(nopLogger{})

	busy := testProvider("busy", 4.5, 80, domain.SkillAdvanced)
	busy.Availability = []domain.AvailabilityWindow{
		{Date: testDate.AddDate(0, 0, 1), StartTime: "08:00", EndTime: "20:00"},
	}

	_, err := svc.FindMatches(context.Background(), []domain.Provider{busy}, testRequest(), nil)
	assert.ErrorIs(t, err, ErrNoProvidersAvailable)
}

func TestFindMatches_InvalidInput(t *testing.T) {
	svc := NewService(nopLogger{})
	providers := []domain.Provider{testProvider("p1", 4.5, 80, domain.SkillAdvanced)}

	tests := []struct {
		name   string
		mutate func(req *domain.BookingRequest, opts *domain.MatchingOptions)
	}{
		{
			name:   "malformed start time",
			mutate: func(req *domain.BookingRequest, _ *domain.MatchingOptions) { req.TimeSlot.StartTime = "25:99" },
		},
		{
			name:   "empty service id",
			mutate: func(req *domain.BookingRequest, _ *domain.MatchingOptions) { req.ServiceID = "" },
		},
		{
			name:   "latitude out of range",
			mutate: func(req *domain.BookingRequest, _ *domain.MatchingOptions) { req.Location.Latitude = 91 },
		},
		{
			name:   "zero date",
			mutate: func(req *domain.BookingRequest, _ *domain.MatchingOptions) { req.Date = time.Time{} },
		},
		{
			name:   "rating above five",
			mutate: func(_ *domain.BookingRequest, opts *domain.MatchingOptions) { opts.MinRating = ptr.Ptr(5.5) },
		},
		{
			name:   "non-positive max distance",
			mutate: func(_ *domain.BookingRequest, opts *domain.MatchingOptions) { opts.MaxDistance = ptr.Ptr(0.0) },
		},
		{
			name:   "negative min jobs",
			mutate: func(_ *domain.BookingRequest, opts *domain.MatchingOptions) { opts.MinCompletedJobs = ptr.Ptr(-1) },
		},
		{
			name: "both priorities set",
			mutate: func(_ *domain.BookingRequest, opts *domain.MatchingOptions) {
				opts.PrioritizeRating = true
				opts.PrioritizeExperience = true
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := testRequest()
			opts := &domain.MatchingOptions{}
			tt.mutate(req, opts)

			_, err := svc.FindMatches(context.Background(), providers, req, opts)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestRankCandidates_ConsistentWithFindMatches(t *testing.T) {
	svc := NewService(nopLogger{})
	providers := []domain.Provider{
		testProvider("p1", 4.8, 200, domain.SkillExpert),
		testProvider("p2", 4.1, 40, domain.SkillIntermediate),
		testProvider("p3", 3.6, 90, domain.SkillAdvanced),
	}

	local, err := svc.FindMatches(context.Background(), providers, testRequest(), nil)
	require.NoError(t, err)

	// Те же исполнители с расстояниями, посчитанными "на стороне данных"
	candidates := make([]domain.ProviderCandidate, 0, len(local))
	for _, m := range local {
		candidates = append(candidates, domain.ProviderCandidate{Provider: m.Provider, Distance: m.Distance})
	}

	remote, err := svc.RankCandidates(context.Background(), candidates, testRequest(), nil)
	require.NoError(t, err)

	require.Equal(t, len(local), len(remote))
	for i := range local {
		assert.Equal(t, local[i].Provider.ID, remote[i].Provider.ID)
		assert.InDelta(t, local[i].MatchScore, remote[i].MatchScore, 1e-9)
	}
}
