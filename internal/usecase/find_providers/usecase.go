package find_providers

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-MatchingService/internal/domain"
	"github.com/m04kA/SMC-MatchingService/internal/service/matching"
	"github.com/m04kA/SMC-MatchingService/pkg/geo"
)

// UseCase use case подбора исполнителей через радиусный источник данных
// Пре-фильтр по расстоянию выполняется на стороне источника (БД или
// удаленный сервис гео-поиска), ранжирование — движком matching
type UseCase struct {
	searcher ProviderSearcher
	matcher  Matcher
	logger   Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(searcher ProviderSearcher, matcher Matcher, logger Logger) *UseCase {
	return &UseCase{
		searcher: searcher,
		matcher:  matcher,
		logger:   logger,
	}
}

// Execute выполняет подбор и ранжирование исполнителей
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if req == nil || req.Booking == nil {
		return nil, fmt.Errorf("%w: request is required", matching.ErrInvalidInput)
	}

	uc.logger.Info("FindProviders: service=%s, date=%s, location=(%.4f, %.4f)",
		req.Booking.ServiceID, req.Booking.Date.Format(domain.DateFormat),
		req.Booking.Location.Latitude, req.Booking.Location.Longitude)

	// 1. Валидация до обращения к источнику данных
	if err := matching.ValidateQuery(req.Booking, req.Options); err != nil {
		uc.logger.Warn("FindProviders: validation failed: %v", err)
		return nil, err
	}

	// 2. Радиус поиска в метрах: options.maxDistance или дефолтные 50 миль
	radiusMiles := domain.DefaultMaxDistanceMiles
	if req.Options != nil && req.Options.MaxDistance != nil {
		radiusMiles = *req.Options.MaxDistance
	}
	radiusMeters := geo.MilesToMeters(radiusMiles)

	// 3. Пре-фильтр по расстоянию на стороне источника данных
	candidates, err := uc.searcher.SearchWithinRadius(
		ctx,
		req.Booking.Location.Latitude,
		req.Booking.Location.Longitude,
		radiusMeters,
	)
	if err != nil {
		uc.logger.Error("FindProviders: radius search failed: %v", err)
		return nil, fmt.Errorf("%w: radius search failed: %v", matching.ErrMatching, err)
	}

	if len(candidates) == 0 {
		uc.logger.Info("FindProviders: no providers within %.0f meters", radiusMeters)
		return nil, matching.ErrNoProvidersAvailable
	}

	// 4. Тот же конвейер фильтрации и скоринга, что и при локальном подборе
	matches, err := uc.matcher.RankCandidates(ctx, candidates, req.Booking, req.Options)
	if err != nil {
		return nil, err
	}

	uc.logger.Info("FindProviders: ranked %d of %d candidates for service=%s",
		len(matches), len(candidates), req.Booking.ServiceID)

	return &Response{Matches: matches, Candidates: len(candidates)}, nil
}
