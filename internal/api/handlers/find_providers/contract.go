package find_providers

import (
	"context"

	findProviders "github.com/m04kA/SMC-MatchingService/internal/usecase/find_providers"
)

type FindProvidersUseCase interface {
	Execute(ctx context.Context, req *findProviders.Request) (*findProviders.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
