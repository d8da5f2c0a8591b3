package matching

import (
	"context"
	"sort"

	"github.com/m04kA/SMC-MatchingService/internal/domain"
	"github.com/m04kA/SMC-MatchingService/pkg/geo"
)

// Service движок подбора и ранжирования исполнителей
// Чистое синхронное вычисление над данными в памяти: без состояния,
// без кэшей, без ретраев. Результат детерминирован для фиксированного входа
type Service struct {
	logger Logger
}

// NewService создает движок подбора
func NewService(logger Logger) *Service {
	return &Service{logger: logger}
}

// FindMatches подбирает и ранжирует исполнителей из переданного списка
// Путь для небольших списков: расстояния вычисляются локально
func (s *Service) FindMatches(
	ctx context.Context,
	providers []domain.Provider,
	req *domain.BookingRequest,
	opts *domain.MatchingOptions,
) ([]domain.ProviderMatch, error) {
	// 1. Валидация до любой работы
	if err := validateRequest(req); err != nil {
		return nil, err
	}
	if err := validateOptions(opts); err != nil {
		return nil, err
	}

	// 2. Считаем расстояние до каждого исполнителя
	candidates := make([]domain.ProviderCandidate, 0, len(providers))
	for _, p := range providers {
		candidates = append(candidates, domain.ProviderCandidate{
			Provider: p,
			Distance: geo.DistanceMiles(
				req.Location.Latitude, req.Location.Longitude,
				p.Location.Latitude, p.Location.Longitude,
			),
		})
	}

	// 3. Общий конвейер фильтрации, скоринга и ранжирования
	return s.rank(candidates, req, opts)
}

// RankCandidates ранжирует кандидатов с уже известными расстояниями
// Путь для больших списков: радиусный пре-фильтр выполнен на стороне
// источника данных, дальше работает тот же конвейер, что и в FindMatches
func (s *Service) RankCandidates(
	ctx context.Context,
	candidates []domain.ProviderCandidate,
	req *domain.BookingRequest,
	opts *domain.MatchingOptions,
) ([]domain.ProviderMatch, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}
	if err := validateOptions(opts); err != nil {
		return nil, err
	}

	return s.rank(candidates, req, opts)
}

// rank общий конвейер: фильтрация -> скоринг -> сортировка -> предпочтения
func (s *Service) rank(
	candidates []domain.ProviderCandidate,
	req *domain.BookingRequest,
	opts *domain.MatchingOptions,
) ([]domain.ProviderMatch, error) {
	constraints := resolveConstraints(opts)
	weights := resolveWeights(opts)
	excluded := toSet(req.ExcludedProviders)

	matches := make([]domain.ProviderMatch, 0, len(candidates))

	for _, c := range candidates {
		capability, ok := s.passesFilters(c, req, constraints, excluded)
		if !ok {
			continue
		}

		score, scores := scoreCandidate(c, capability, weights)
		matches = append(matches, domain.ProviderMatch{
			Provider:   c.Provider,
			Distance:   c.Distance,
			MatchScore: score,
			Scores:     scores,
		})
	}

	if len(matches) == 0 {
		s.logger.Warn("Matching: no providers available for service=%s, date=%s",
			req.ServiceID, req.Date.Format(domain.DateFormat))
		return nil, ErrNoProvidersAvailable
	}

	// Стабильная сортировка по убыванию балла: порядок при равных баллах
	// детерминирован и совпадает с порядком входа
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].MatchScore > matches[j].MatchScore
	})

	// Предпочтённые исполнители поднимаются в начало выдачи жестко,
	// без изменения баллов; относительный порядок внутри групп сохраняется
	if len(req.PreferredProviders) > 0 {
		matches = promotePreferred(matches, toSet(req.PreferredProviders))
	}

	s.logger.Info("Matching: ranked %d of %d candidates for service=%s",
		len(matches), len(candidates), req.ServiceID)

	return matches, nil
}

// passesFilters проверяет кандидата по всем ограничениям конвейера
// Возвращает запись о владении запрошенной услугой для последующего скоринга
func (s *Service) passesFilters(
	c domain.ProviderCandidate,
	req *domain.BookingRequest,
	constraints effectiveConstraints,
	excluded map[string]struct{},
) (domain.Capability, bool) {
	p := &c.Provider

	// 1. Явно исключенные
	if _, ok := excluded[p.ID]; ok {
		return domain.Capability{}, false
	}

	// 2. Владение запрошенной услугой
	capability, ok := p.CapabilityFor(req.ServiceID)
	if !ok {
		return domain.Capability{}, false
	}

	// 3. Требуемый уровень квалификации
	if constraints.requiredSkill != nil && capability.SkillLevel < *constraints.requiredSkill {
		return domain.Capability{}, false
	}

	// 4. Минимальный рейтинг
	if p.Rating < constraints.minRating {
		return domain.Capability{}, false
	}

	// 5. Минимальный опыт
	if p.CompletedJobs < constraints.minCompletedJobs {
		return domain.Capability{}, false
	}

	// 6. Расстояние: действуют оба ограничения - радиус выезда исполнителя
	// и лимит запроса; связывает более строгое
	if c.Distance > p.MaxTravelDistance || c.Distance > constraints.maxDistance {
		return domain.Capability{}, false
	}

	// 7. Доступность в запрошенный интервал
	if !isAvailable(p, req.Date, req.TimeSlot.StartTime, req.TimeSlot.EndTime) {
		return domain.Capability{}, false
	}

	return capability, true
}

// promotePreferred стабильно переносит предпочтённых исполнителей в начало
func promotePreferred(matches []domain.ProviderMatch, preferred map[string]struct{}) []domain.ProviderMatch {
	result := make([]domain.ProviderMatch, 0, len(matches))
	rest := make([]domain.ProviderMatch, 0, len(matches))

	for _, m := range matches {
		if _, ok := preferred[m.Provider.ID]; ok {
			result = append(result, m)
		} else {
			rest = append(rest, m)
		}
	}

	return append(result, rest...)
}

func toSet(ids []string) map[string]struct{} {
	if len(ids) == 0 {
		return nil
	}
	set := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set
}
