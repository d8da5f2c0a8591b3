package find_providers

import (
	"github.com/m04kA/SMC-MatchingService/internal/domain"
)

// Request модель запроса на подбор исполнителей
type Request struct {
	Booking *domain.BookingRequest  // Запрос клиента (услуга, дата, слот, координаты)
	Options *domain.MatchingOptions // Опциональные ограничения и веса
}

// Response модель ответа с ранжированным списком исполнителей
type Response struct {
	Matches []domain.ProviderMatch // Отсортированы по убыванию matchScore

	// Candidates сколько кандидатов вернул радиусный пре-фильтр
	// до фильтрации и скоринга (для метрик)
	Candidates int
}
