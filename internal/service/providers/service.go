package providers

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-MatchingService/internal/domain"
	providerRepo "github.com/m04kA/SMC-MatchingService/internal/infra/storage/providers"
)

// Service сервис для работы с исполнителями
type Service struct {
	repo      ProviderRepository
	txManager TransactionManager
	logger    Logger
}

// NewService создает новый экземпляр сервиса исполнителей
func NewService(repo ProviderRepository, txManager TransactionManager, logger Logger) *Service {
	return &Service{
		repo:      repo,
		txManager: txManager,
		logger:    logger,
	}
}

// GetByID получает исполнителя со справочными данными
func (s *Service) GetByID(ctx context.Context, id string) (*domain.Provider, error) {
	s.logger.Info("GetByID: fetching provider id=%s", id)

	if id == "" {
		return nil, fmt.Errorf("%w: provider id is required", ErrInvalidInput)
	}

	provider, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, providerRepo.ErrProviderNotFound) {
			s.logger.Warn("GetByID: provider id=%s not found", id)
			return nil, ErrProviderNotFound
		}
		s.logger.Error("GetByID: repository error for provider id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return provider, nil
}

// Upsert создает или обновляет исполнителя вместе с услугами и окнами
// доступности. Пустой ID означает создание: идентификатор генерируется
// Все три таблицы меняются в одной транзакции
func (s *Service) Upsert(ctx context.Context, provider *domain.Provider) (*domain.Provider, error) {
	if err := validateProvider(provider); err != nil {
		s.logger.Warn("Upsert: validation failed: %v", err)
		return nil, err
	}

	if provider.ID == "" {
		provider.ID = uuid.NewString()
		s.logger.Info("Upsert: creating provider id=%s name=%s", provider.ID, provider.Name)
	} else {
		s.logger.Info("Upsert: updating provider id=%s name=%s", provider.ID, provider.Name)
	}

	// Перезапись трех таблиц должна быть атомарной и не гоняться
	// с конкурентным обновлением того же исполнителя
	err := s.txManager.DoSerializable(ctx, func(ctx context.Context) error {
		return s.repo.Upsert(ctx, provider)
	})
	if err != nil {
		s.logger.Error("Upsert: transaction failed for provider id=%s: %v", provider.ID, err)
		return nil, fmt.Errorf("%w: Upsert - transaction failed: %v", ErrInternal, err)
	}

	s.logger.Info("Upsert: saved provider id=%s (%d capabilities, %d availability windows)",
		provider.ID, len(provider.Capabilities), len(provider.Availability))

	return provider, nil
}

// validateProvider валидирует исполнителя перед сохранением
func validateProvider(p *domain.Provider) error {
	if p == nil {
		return fmt.Errorf("%w: provider is required", ErrInvalidInput)
	}

	if p.Name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}

	if p.Rating < 0 || p.Rating > domain.MaxAllowedRating {
		return fmt.Errorf("%w: rating must be between 0 and %v", ErrInvalidInput, domain.MaxAllowedRating)
	}

	if p.CompletedJobs < 0 {
		return fmt.Errorf("%w: completedJobs must be non-negative", ErrInvalidInput)
	}

	if p.MaxTravelDistance <= 0 {
		return fmt.Errorf("%w: maxTravelDistance must be positive", ErrInvalidInput)
	}

	if !p.Location.IsValid() {
		return fmt.Errorf("%w: location out of range: lat=%f, lon=%f",
			ErrInvalidInput, p.Location.Latitude, p.Location.Longitude)
	}

	for _, c := range p.Capabilities {
		if c.ServiceID == "" {
			return fmt.Errorf("%w: capability serviceID is required", ErrInvalidInput)
		}
		if !c.SkillLevel.IsValid() {
			return fmt.Errorf("%w: unknown skill level %d for service %s", ErrInvalidInput, c.SkillLevel, c.ServiceID)
		}
	}

	for _, w := range p.Availability {
		if w.Date.IsZero() {
			return fmt.Errorf("%w: availability window date is required", ErrInvalidInput)
		}
		if err := w.StartTime.Validate(); err != nil {
			return fmt.Errorf("%w: invalid availability startTime: %v", ErrInvalidInput, err)
		}
		if err := w.EndTime.Validate(); err != nil {
			return fmt.Errorf("%w: invalid availability endTime: %v", ErrInvalidInput, err)
		}
	}

	return nil
}
