package find_providers

import (
	"context"

	"github.com/m04kA/SMC-MatchingService/internal/domain"
)

// ProviderSearcher интерфейс радиусного источника кандидатов
// Реализуется репозиторием (поиск в PostgreSQL) и клиентом сервиса
// гео-поиска (удаленный RPC) — выбор зависит от конфигурации
type ProviderSearcher interface {
	// SearchWithinRadius возвращает исполнителей в радиусе radiusMeters
	// от точки, с уже посчитанным расстоянием до каждого
	SearchWithinRadius(ctx context.Context, lat, lon, radiusMeters float64) ([]domain.ProviderCandidate, error)
}

// Matcher интерфейс движка ранжирования
type Matcher interface {
	// RankCandidates ранжирует кандидатов с известными расстояниями
	RankCandidates(ctx context.Context, candidates []domain.ProviderCandidate, req *domain.BookingRequest, opts *domain.MatchingOptions) ([]domain.ProviderMatch, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
