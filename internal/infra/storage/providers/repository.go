package providers

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-MatchingService/internal/domain"
	"github.com/m04kA/SMC-MatchingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-MatchingService/pkg/geo"
	"github.com/m04kA/SMC-MatchingService/pkg/psqlbuilder"
	"github.com/m04kA/SMC-MatchingService/pkg/types"
)

// haversineSQL вычисление расстояния в милях средствами PostgreSQL
// Повторяет формулу pkg/geo; least(1.0, ...) защищает acos от ошибок округления
const haversineSQL = `3958.8 * acos(least(1.0, ` +
	`cos(radians(?)) * cos(radians(latitude)) * cos(radians(longitude) - radians(?)) + ` +
	`sin(radians(?)) * sin(radians(latitude))))`

// Repository репозиторий исполнителей и их справочных данных
// (услуги с уровнями квалификации, окна доступности)
type Repository struct {
	db DBExecutor
}

// NewRepository создает репозиторий исполнителей
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByID получает исполнителя со всеми справочными данными
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Provider, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"name",
		"rating",
		"completed_jobs",
		"max_travel_distance",
		"latitude",
		"longitude",
		"created_at",
		"updated_at",
	).
		From("providers").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var provider domain.Provider
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&provider.ID,
		&provider.Name,
		&provider.Rating,
		&provider.CompletedJobs,
		&provider.MaxTravelDistance,
		&provider.Location.Latitude,
		&provider.Location.Longitude,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrProviderNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan provider: %v", ErrScanRow, err)
	}

	provider.CreatedAt = createdAt.Time
	provider.UpdatedAt = updatedAt.Time

	if err := r.loadDetails(ctx, executor, map[string]*domain.Provider{provider.ID: &provider}); err != nil {
		return nil, err
	}

	return &provider, nil
}

// SearchWithinRadius возвращает исполнителей в радиусе radiusMeters от точки,
// с расстоянием до каждого, посчитанным на стороне БД
// Радиусный пре-фильтр для больших списков: скоринг остается на стороне сервиса
func (r *Repository) SearchWithinRadius(ctx context.Context, lat, lon, radiusMeters float64) ([]domain.ProviderCandidate, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	radiusMiles := geo.MetersToMiles(radiusMeters)

	query, args, err := psqlbuilder.Select(
		"id",
		"name",
		"rating",
		"completed_jobs",
		"max_travel_distance",
		"latitude",
		"longitude",
	).
		Column(squirrel.Alias(squirrel.Expr(haversineSQL, lat, lon, lat), "distance_miles")).
		From("providers").
		Where(squirrel.Expr(haversineSQL+" <= ?", lat, lon, lat, radiusMiles)).
		OrderBy("distance_miles ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: SearchWithinRadius - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: SearchWithinRadius - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	result := make([]domain.ProviderCandidate, 0)
	byID := make(map[string]*domain.Provider)

	for rows.Next() {
		var item domain.ProviderCandidate
		if err := rows.Scan(
			&item.Provider.ID,
			&item.Provider.Name,
			&item.Provider.Rating,
			&item.Provider.CompletedJobs,
			&item.Provider.MaxTravelDistance,
			&item.Provider.Location.Latitude,
			&item.Provider.Location.Longitude,
			&item.Distance,
		); err != nil {
			return nil, fmt.Errorf("%w: SearchWithinRadius - scan provider: %v", ErrScanRow, err)
		}
		result = append(result, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: SearchWithinRadius - iterate rows: %v", ErrExecQuery, err)
	}

	for i := range result {
		byID[result[i].Provider.ID] = &result[i].Provider
	}

	if len(byID) > 0 {
		if err := r.loadDetails(ctx, executor, byID); err != nil {
			return nil, err
		}
	}

	return result, nil
}

// Upsert создает или обновляет исполнителя вместе со справочными данными
// Услуги и окна доступности перезаписываются целиком. Вызывается внутри
// транзакции (txmanager), чтобы все три таблицы менялись атомарно
func (r *Repository) Upsert(ctx context.Context, provider *domain.Provider) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("providers").
		Columns(
			"id",
			"name",
			"rating",
			"completed_jobs",
			"max_travel_distance",
			"latitude",
			"longitude",
		).
		Values(
			provider.ID,
			provider.Name,
			provider.Rating,
			provider.CompletedJobs,
			provider.MaxTravelDistance,
			provider.Location.Latitude,
			provider.Location.Longitude,
		).
		Suffix(`ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			rating = EXCLUDED.rating,
			completed_jobs = EXCLUDED.completed_jobs,
			max_travel_distance = EXCLUDED.max_travel_distance,
			latitude = EXCLUDED.latitude,
			longitude = EXCLUDED.longitude,
			updated_at = now()
		RETURNING created_at, updated_at`).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Upsert - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&createdAt, &updatedAt); err != nil {
		return fmt.Errorf("%w: Upsert - execute insert: %v", ErrExecQuery, err)
	}
	provider.CreatedAt = createdAt.Time
	provider.UpdatedAt = updatedAt.Time

	if err := r.replaceCapabilities(ctx, executor, provider.ID, provider.Capabilities); err != nil {
		return err
	}

	return r.replaceAvailability(ctx, executor, provider.ID, provider.Availability)
}

// replaceCapabilities перезаписывает услуги исполнителя
func (r *Repository) replaceCapabilities(ctx context.Context, executor DBExecutor, providerID string, capabilities []domain.Capability) error {
	query, args, err := psqlbuilder.Delete("provider_capabilities").
		Where(squirrel.Eq{"provider_id": providerID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: replaceCapabilities - build delete query: %v", ErrBuildQuery, err)
	}
	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: replaceCapabilities - execute delete: %v", ErrExecQuery, err)
	}

	if len(capabilities) == 0 {
		return nil
	}

	insert := psqlbuilder.Insert("provider_capabilities").
		Columns("provider_id", "service_id", "skill_level")
	for _, c := range capabilities {
		insert = insert.Values(providerID, c.ServiceID, c.SkillLevel.String())
	}

	query, args, err = insert.ToSql()
	if err != nil {
		return fmt.Errorf("%w: replaceCapabilities - build insert query: %v", ErrBuildQuery, err)
	}
	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: replaceCapabilities - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}

// replaceAvailability перезаписывает окна доступности исполнителя
func (r *Repository) replaceAvailability(ctx context.Context, executor DBExecutor, providerID string, windows []domain.AvailabilityWindow) error {
	query, args, err := psqlbuilder.Delete("provider_availability").
		Where(squirrel.Eq{"provider_id": providerID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: replaceAvailability - build delete query: %v", ErrBuildQuery, err)
	}
	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: replaceAvailability - execute delete: %v", ErrExecQuery, err)
	}

	if len(windows) == 0 {
		return nil
	}

	insert := psqlbuilder.Insert("provider_availability").
		Columns("provider_id", "date", "start_time", "end_time")
	for _, w := range windows {
		insert = insert.Values(providerID, w.Date, w.StartTime.String(), w.EndTime.String())
	}

	query, args, err = insert.ToSql()
	if err != nil {
		return fmt.Errorf("%w: replaceAvailability - build insert query: %v", ErrBuildQuery, err)
	}
	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: replaceAvailability - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}

// loadDetails догружает услуги и окна доступности для набора исполнителей
func (r *Repository) loadDetails(ctx context.Context, executor DBExecutor, byID map[string]*domain.Provider) error {
	ids := make([]string, 0, len(byID))
	for id := range byID {
		ids = append(ids, id)
	}

	if err := r.loadCapabilities(ctx, executor, byID, ids); err != nil {
		return err
	}
	return r.loadAvailability(ctx, executor, byID, ids)
}

func (r *Repository) loadCapabilities(ctx context.Context, executor DBExecutor, byID map[string]*domain.Provider, ids []string) error {
	query, args, err := psqlbuilder.Select("provider_id", "service_id", "skill_level").
		From("provider_capabilities").
		Where(squirrel.Eq{"provider_id": ids}).
		OrderBy("provider_id", "service_id").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: loadCapabilities - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: loadCapabilities - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	for rows.Next() {
		var providerID, serviceID, skillRaw string
		if err := rows.Scan(&providerID, &serviceID, &skillRaw); err != nil {
			return fmt.Errorf("%w: loadCapabilities - scan row: %v", ErrScanRow, err)
		}

		skill, ok := domain.ParseSkillLevel(skillRaw)
		if !ok {
			return fmt.Errorf("%w: %q for provider %s", ErrInvalidSkillLevel, skillRaw, providerID)
		}

		if p, ok := byID[providerID]; ok {
			p.Capabilities = append(p.Capabilities, domain.Capability{
				ServiceID:  serviceID,
				SkillLevel: skill,
			})
		}
	}

	return rows.Err()
}

func (r *Repository) loadAvailability(ctx context.Context, executor DBExecutor, byID map[string]*domain.Provider, ids []string) error {
	query, args, err := psqlbuilder.Select("provider_id", "date", "start_time", "end_time").
		From("provider_availability").
		Where(squirrel.Eq{"provider_id": ids}).
		OrderBy("provider_id", "date", "start_time").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: loadAvailability - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: loadAvailability - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	for rows.Next() {
		var providerID string
		var date time.Time
		var startTime, endTime string
		if err := rows.Scan(&providerID, &date, &startTime, &endTime); err != nil {
			return fmt.Errorf("%w: loadAvailability - scan row: %v", ErrScanRow, err)
		}

		if p, ok := byID[providerID]; ok {
			p.Availability = append(p.Availability, domain.AvailabilityWindow{
				Date:      date,
				StartTime: types.TimeString(startTime),
				EndTime:   types.TimeString(endTime),
			})
		}
	}

	return rows.Err()
}
