package providers

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-MatchingService/internal/domain"
)

func TestRepository_GetByID_NotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("SELECT .+ FROM providers WHERE id = \\$1").
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	repo := NewRepository(db)
	_, err = repo.GetByID(context.Background(), "missing")

	assert.ErrorIs(t, err, ErrProviderNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetByID_LoadsDetails(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	now := time.Now()
	date := time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery("SELECT .+ FROM providers WHERE id = \\$1").
		WithArgs("p1").
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "name", "rating", "completed_jobs", "max_travel_distance",
			"latitude", "longitude", "created_at", "updated_at",
		}).AddRow("p1", "Анна К.", 4.7, 120, 25.0, 55.76, 37.62, now, now))

	mock.ExpectQuery("SELECT provider_id, service_id, skill_level FROM provider_capabilities").
		WillReturnRows(sqlmock.NewRows([]string{"provider_id", "service_id", "skill_level"}).
			AddRow("p1", "cleaning", "expert").
			AddRow("p1", "windows", "intermediate"))

	mock.ExpectQuery("SELECT provider_id, date, start_time, end_time FROM provider_availability").
		WillReturnRows(sqlmock.NewRows([]string{"provider_id", "date", "start_time", "end_time"}).
			AddRow("p1", date, "09:00", "18:00"))

	repo := NewRepository(db)
	provider, err := repo.GetByID(context.Background(), "p1")
	require.NoError(t, err)

	assert.Equal(t, "p1", provider.ID)
	assert.InDelta(t, 4.7, provider.Rating, 1e-9)
	require.Len(t, provider.Capabilities, 2)
	assert.Equal(t, domain.SkillExpert, provider.Capabilities[0].SkillLevel)
	require.Len(t, provider.Availability, 1)
	assert.Equal(t, "09:00", provider.Availability[0].StartTime.String())

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetByID_UnknownSkillLevel(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	now := time.Now()

	mock.ExpectQuery("SELECT .+ FROM providers WHERE id = \\$1").
		WithArgs("p1").
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "name", "rating", "completed_jobs", "max_travel_distance",
			"latitude", "longitude", "created_at", "updated_at",
		}).AddRow("p1", "Анна К.", 4.7, 120, 25.0, 55.76, 37.62, now, now))

	mock.ExpectQuery("SELECT provider_id, service_id, skill_level FROM provider_capabilities").
		WillReturnRows(sqlmock.NewRows([]string{"provider_id", "service_id", "skill_level"}).
			AddRow("p1", "cleaning", "grandmaster"))

	repo := NewRepository(db)
	_, err = repo.GetByID(context.Background(), "p1")

	assert.ErrorIs(t, err, ErrInvalidSkillLevel)
}

func TestRepository_SearchWithinRadius(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	date := time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery("SELECT .+ AS distance_miles FROM providers WHERE .+ ORDER BY distance_miles ASC").
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "name", "rating", "completed_jobs", "max_travel_distance",
			"latitude", "longitude", "distance_miles",
		}).
			AddRow("near", "Анна К.", 4.7, 120, 25.0, 55.76, 37.62, 1.2).
			AddRow("far", "Борис М.", 4.1, 45, 40.0, 55.90, 37.60, 9.8))

	mock.ExpectQuery("SELECT provider_id, service_id, skill_level FROM provider_capabilities").
		WillReturnRows(sqlmock.NewRows([]string{"provider_id", "service_id", "skill_level"}).
			AddRow("near", "cleaning", "advanced").
			AddRow("far", "cleaning", "beginner"))

	mock.ExpectQuery("SELECT provider_id, date, start_time, end_time FROM provider_availability").
		WillReturnRows(sqlmock.NewRows([]string{"provider_id", "date", "start_time", "end_time"}).
			AddRow("near", date, "08:00", "20:00"))

	repo := NewRepository(db)
	result, err := repo.SearchWithinRadius(context.Background(), 55.7558, 37.6173, 80467)
	require.NoError(t, err)

	require.Len(t, result, 2)
	assert.Equal(t, "near", result[0].Provider.ID)
	assert.InDelta(t, 1.2, result[0].Distance, 1e-9)
	require.Len(t, result[0].Provider.Capabilities, 1)
	assert.Equal(t, domain.SkillAdvanced, result[0].Provider.Capabilities[0].SkillLevel)
	assert.Empty(t, result[1].Provider.Availability)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_SearchWithinRadius_Empty(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("SELECT .+ FROM providers").
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "name", "rating", "completed_jobs", "max_travel_distance",
			"latitude", "longitude", "distance_miles",
		}))

	repo := NewRepository(db)
	result, err := repo.SearchWithinRadius(context.Background(), 55.7558, 37.6173, 80467)

	require.NoError(t, err)
	assert.Empty(t, result)
	assert.NoError(t, mock.ExpectationsWereMet())
}
