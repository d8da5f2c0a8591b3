package upsert_provider

import (
	"context"

	"github.com/m04kA/SMC-MatchingService/internal/domain"
)

type ProvidersService interface {
	Upsert(ctx context.Context, provider *domain.Provider) (*domain.Provider, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
