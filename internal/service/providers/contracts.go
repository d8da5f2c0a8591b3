package providers

import (
	"context"

	"github.com/m04kA/SMC-MatchingService/internal/domain"
)

// ProviderRepository интерфейс репозитория исполнителей
type ProviderRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Provider, error)
	Upsert(ctx context.Context, provider *domain.Provider) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
